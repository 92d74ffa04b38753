package ports

import (
	"context"
	"time"

	"github.com/userhub/users-api/internal/core/domain"
)

type AuthService interface {
	SignUp(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, string, error)
	SignIn(ctx context.Context, email, password string) (*domain.User, string, error)
	SignOut(ctx context.Context, token string) error
	// TokenTTL is the lifetime of issued tokens; the transport layer uses it
	// for the cookie Max-Age.
	TokenTTL() time.Duration
}
