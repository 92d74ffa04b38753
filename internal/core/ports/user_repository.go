package ports

import (
	"context"

	"github.com/userhub/users-api/internal/core/domain"
)

// UserUpdate is the partial field set applied by Update. Nil fields are left
// untouched. PasswordHash carries the bcrypt hash, never the raw password.
type UserUpdate struct {
	Name         *string
	Email        *string
	PasswordHash *string
	Role         *domain.Role
}

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, id int64, update UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id int64) (*domain.User, error)
	CountByRole(ctx context.Context, role domain.Role) (int64, error)
}
