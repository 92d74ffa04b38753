package ports

import (
	"context"

	"github.com/userhub/users-api/internal/core/domain"
)

// UpdateUserInput carries the validated partial update from the transport
// layer. Password is the raw value; the service hashes it before persisting.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
	Role     *domain.Role
}

type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	UpdateUser(ctx context.Context, id int64, in UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id int64) (*domain.User, error)
	CountAdmins(ctx context.Context) (int64, error)
}
