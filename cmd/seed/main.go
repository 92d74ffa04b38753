// Command seed bootstraps the initial admin account so the service never
// starts with an empty admin set. It is a no-op when an admin already exists.
package main

import (
	"context"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/userhub/users-api/internal/core/domain"
	"github.com/userhub/users-api/internal/infrastructure/config"
	mongostore "github.com/userhub/users-api/internal/infrastructure/db/mongo"
	"github.com/userhub/users-api/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	ctx := context.Background()

	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongostore.EnsureUserIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	repo := mongostore.NewUserRepository(db)

	adminCount, err := repo.CountByRole(ctx, domain.RoleAdmin)
	if err != nil {
		log.Fatal().Err(err).Msg("admin count failed")
	}
	if adminCount > 0 {
		log.Info().Int64("admins", adminCount).Msg("admin account already present, nothing to do")
		return
	}

	email := getenv("ADMIN_EMAIL", "admin@example.com")
	name := getenv("ADMIN_NAME", "Administrator")
	password := getenv("ADMIN_PASSWORD", "changeme123")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("password hashing failed")
	}

	now := time.Now().UTC()
	admin, err := repo.Create(ctx, &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("admin creation failed")
	}

	log.Info().Int64("user_id", admin.ID).Str("email", admin.Email).Msg("admin account created")
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
