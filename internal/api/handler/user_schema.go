package handler

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// errorResponse is the standard envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

var errInvalidUserID = errors.New("ID must be a positive integer")

// ParseUserID parses a path id segment into a positive integer.
func ParseUserID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errInvalidUserID
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidUserID
	}
	return id, nil
}

// --- Request types ---

// updateUserRequest is the partial update body. Pointer fields distinguish
// absent from empty; unknown fields are dropped by the JSON bind.
type updateUserRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=2,max=255"`
	Email    *string `json:"email"    validate:"omitempty,email,max=255"`
	Password *string `json:"password" validate:"omitempty,min=6,max=128"`
	Role     *string `json:"role"     validate:"omitempty,oneof=user admin"`
}

// normalize trims name and lowercases email before validation, mirroring the
// persisted form.
func (r *updateUserRequest) normalize() {
	if r.Name != nil {
		trimmed := strings.TrimSpace(*r.Name)
		r.Name = &trimmed
	}
	if r.Email != nil {
		cleaned := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &cleaned
	}
}

func (r updateUserRequest) empty() bool {
	return r.Name == nil && r.Email == nil && r.Password == nil && r.Role == nil
}

// --- Response types ---

type userResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// deletedUserResponse intentionally omits the timestamps.
type deletedUserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type listUsersResponse struct {
	Message string         `json:"message"`
	Users   []userResponse `json:"users"`
	Count   int            `json:"count"`
}

type userEnvelope struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

type deletedUserEnvelope struct {
	Message string              `json:"message"`
	User    deletedUserResponse `json:"user"`
}
