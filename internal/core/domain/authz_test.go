package domain

import "testing"

func TestRole_Can(t *testing.T) {
	if !RoleAdmin.Can(ActionManageAnyProfile) {
		t.Fatalf("admin should manage any profile")
	}
	if !RoleAdmin.Can(ActionChangeRole) {
		t.Fatalf("admin should change roles")
	}
	if RoleUser.Can(ActionManageAnyProfile) {
		t.Fatalf("user should not manage other profiles")
	}
	if RoleUser.Can(ActionChangeRole) {
		t.Fatalf("user should not change roles")
	}
	if Role("superuser").Can(ActionChangeRole) {
		t.Fatalf("unknown role should hold no capabilities")
	}
}

func TestRole_Valid(t *testing.T) {
	for _, r := range []Role{RoleUser, RoleAdmin} {
		if !r.Valid() {
			t.Fatalf("expected %q to be valid", r)
		}
	}
	for _, r := range []Role{"", "root", "Admin"} {
		if r.Valid() {
			t.Fatalf("expected %q to be invalid", r)
		}
	}
}

func TestCanActOnProfile(t *testing.T) {
	cases := []struct {
		name     string
		actor    Actor
		targetID int64
		want     bool
	}{
		{"admin on other", Actor{ID: 1, Role: RoleAdmin}, 2, true},
		{"admin on self", Actor{ID: 1, Role: RoleAdmin}, 1, true},
		{"user on self", Actor{ID: 3, Role: RoleUser}, 3, true},
		{"user on other", Actor{ID: 3, Role: RoleUser}, 4, false},
	}
	for _, tc := range cases {
		if got := CanActOnProfile(tc.actor, tc.targetID); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestCanChangeRole(t *testing.T) {
	admin := Actor{ID: 1, Role: RoleAdmin}
	user := Actor{ID: 2, Role: RoleUser}

	if !CanChangeRole(admin, true) {
		t.Fatalf("admin should be allowed to change roles")
	}
	if CanChangeRole(user, true) {
		t.Fatalf("user should not be allowed to change roles")
	}
	if !CanChangeRole(user, false) {
		t.Fatalf("update without role field should always be allowed")
	}
}

func TestCanDeleteSelfAsAdmin(t *testing.T) {
	admin := Actor{ID: 1, Role: RoleAdmin}
	user := Actor{ID: 2, Role: RoleUser}

	if CanDeleteSelfAsAdmin(admin, 1, 1) {
		t.Fatalf("sole admin deleting self must be refused")
	}
	if !CanDeleteSelfAsAdmin(admin, 1, 2) {
		t.Fatalf("admin deleting self with another admin present is allowed")
	}
	if !CanDeleteSelfAsAdmin(admin, 2, 1) {
		t.Fatalf("admin deleting someone else is not guarded here")
	}
	if !CanDeleteSelfAsAdmin(user, 2, 0) {
		t.Fatalf("non-admin self-delete is not guarded here")
	}
}
