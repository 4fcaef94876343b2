// seeduser creates the first Manager account so that someone can log in and
// manage the rest of the users through the API.
//
// Usage: go run ./cmd/seeduser <username> <email> [password]
// The password falls back to SEED_PASSWORD. Nothing is written when an
// account with that email already exists.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/karibu-groceries/kgl-api/internal/application/auth"
	"github.com/karibu-groceries/kgl-api/internal/application/dto"
	"github.com/karibu-groceries/kgl-api/internal/domain/entity"
	"github.com/karibu-groceries/kgl-api/internal/infrastructure/postgres"
	"github.com/karibu-groceries/kgl-api/pkg/config"
	"github.com/karibu-groceries/kgl-api/pkg/logger"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: seeduser <username> <email> [password]")
		os.Exit(2)
	}
	username, email := os.Args[1], os.Args[2]
	password := os.Getenv("SEED_PASSWORD")
	if len(os.Args) > 3 {
		password = os.Args[3]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()
	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("apply migrations")
	}

	users := postgres.NewUserRepository(pool)
	existing, err := users.FindByEmail(ctx, email)
	if err != nil {
		log.Fatal().Err(err).Msg("look up user")
	}
	if existing != nil {
		log.Info().Str("email", email).Str("id", existing.ID).Msg("user already exists, nothing to do")
		return
	}

	authUC := auth.NewAuthUseCase(users, auth.JWTConfig{Secret: cfg.JWT.Secret})
	created, err := authUC.RegisterUser(ctx, dto.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
		Role:     entity.RoleManager,
		Status:   entity.StatusActive,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("create manager")
	}
	log.Info().Str("id", created.ID).Str("email", created.Email).Msg("manager account created")
}
