package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/userhub/users-api/internal/core/domain"
	"github.com/userhub/users-api/internal/core/ports"
)

// UserService orchestrates user lookups and mutations. Existence checks and
// writes are separate round-trips to the store; a row deleted in between
// surfaces as ErrUserNotFound from the repository.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list users")
		return nil, err
	}
	return users, nil
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateUser applies a partial update. A present password is replaced by its
// bcrypt hash before persisting; updated_at is refreshed on every successful
// update regardless of which fields changed.
func (s *UserService) UpdateUser(ctx context.Context, id int64, in ports.UpdateUserInput) (*domain.User, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	update := ports.UserUpdate{
		Name:  in.Name,
		Email: in.Email,
		Role:  in.Role,
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		h := string(hash)
		update.PasswordHash = &h
	}

	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", id).Msg("failed to update user")
		return nil, err
	}

	s.logger.Info().Int64("user_id", id).Str("email", updated.Email).Msg("user updated")
	return updated, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id int64) (*domain.User, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", id).Msg("failed to delete user")
		return nil, err
	}

	s.logger.Info().Int64("user_id", id).Str("email", deleted.Email).Msg("user deleted")
	return deleted, nil
}

// CountAdmins returns the live number of admin accounts. Used by the delete
// handler for the last-admin guard.
func (s *UserService) CountAdmins(ctx context.Context) (int64, error) {
	return s.repo.CountByRole(ctx, domain.RoleAdmin)
}
