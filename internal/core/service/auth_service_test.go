package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/userhub/users-api/internal/core/domain"
)

type stubRevoker struct {
	revoked map[string]time.Duration
}

func newStubRevoker() *stubRevoker {
	return &stubRevoker{revoked: make(map[string]time.Duration)}
}

func (r *stubRevoker) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	r.revoked[tokenID] = ttl
	return nil
}

func (r *stubRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := r.revoked[tokenID]
	return ok, nil
}

func newAuthService(repo *stubUserRepo, revoked *stubRevoker) *AuthService {
	return NewAuthService(repo, revoked, "secret", time.Hour, zerolog.Nop())
}

func TestAuthService_SignUp_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, newStubRevoker())

	user, token, err := svc.SignUp(context.Background(), "Alice", "alice@example.com", "pass123", domain.RoleUser)
	if err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}
}

func TestAuthService_SignUp_Validation(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), newStubRevoker())

	if _, _, err := svc.SignUp(context.Background(), "", "a@example.com", "pass123", domain.RoleUser); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty name, got %v", err)
	}
	if _, _, err := svc.SignUp(context.Background(), "Bob", "b@example.com", "pass123", "wizard"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for bad role, got %v", err)
	}
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, newStubRevoker())

	if _, _, err := svc.SignUp(context.Background(), "Bob", "bob@example.com", "pass123", domain.RoleUser); err != nil {
		t.Fatalf("first sign-up failed: %v", err)
	}
	if _, _, err := svc.SignUp(context.Background(), "Bobby", "bob@example.com", "pass456", domain.RoleUser); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_SignIn_TokenClaims(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, newStubRevoker())

	created, _, err := svc.SignUp(context.Background(), "Carol", "carol@example.com", "s3cret", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("sign-up failed: %v", err)
	}

	user, token, err := svc.SignIn(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}
	if user.ID != created.ID {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if int64(claims["id"].(float64)) != created.ID {
		t.Fatalf("expected id claim %d, got %v", created.ID, claims["id"])
	}
	if claims["email"] != "carol@example.com" {
		t.Fatalf("unexpected email claim: %v", claims["email"])
	}
	if claims["role"] != string(domain.RoleAdmin) {
		t.Fatalf("unexpected role claim: %v", claims["role"])
	}
	if jti, _ := claims["jti"].(string); jti == "" {
		t.Fatalf("expected jti claim")
	}
}

func TestAuthService_SignIn_InvalidPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, newStubRevoker())

	_, _, _ = svc.SignUp(context.Background(), "Dave", "dave@example.com", "goodpass", domain.RoleUser)
	if _, _, err := svc.SignIn(context.Background(), "dave@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_SignIn_UserNotFound(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), newStubRevoker())

	if _, _, err := svc.SignIn(context.Background(), "ghost@example.com", "pass"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_SignOut_RevokesToken(t *testing.T) {
	repo := newStubUserRepo()
	revoked := newStubRevoker()
	svc := newAuthService(repo, revoked)

	_, token, err := svc.SignUp(context.Background(), "Erin", "erin@example.com", "pass123", domain.RoleUser)
	if err != nil {
		t.Fatalf("sign-up failed: %v", err)
	}

	if err := svc.SignOut(context.Background(), token); err != nil {
		t.Fatalf("SignOut returned error: %v", err)
	}
	if len(revoked.revoked) != 1 {
		t.Fatalf("expected 1 revoked token, got %d", len(revoked.revoked))
	}
	for _, ttl := range revoked.revoked {
		if ttl <= 0 || ttl > time.Hour {
			t.Fatalf("unexpected revocation ttl: %v", ttl)
		}
	}
}

func TestAuthService_SignOut_GarbageToken(t *testing.T) {
	revoked := newStubRevoker()
	svc := newAuthService(newStubUserRepo(), revoked)

	if err := svc.SignOut(context.Background(), "not-a-token"); err != nil {
		t.Fatalf("SignOut should be a no-op for garbage tokens, got %v", err)
	}
	if len(revoked.revoked) != 0 {
		t.Fatalf("nothing should be revoked")
	}
}
