package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/riskwatch/internal/app/models"
	appRepos "github.com/yigit/riskwatch/internal/app/repositories"
	"github.com/yigit/riskwatch/internal/pkg/apperrors"
	"github.com/yigit/riskwatch/internal/pkg/auth"
)

// InitialUser holds the credentials of the account created on first start
type InitialUser struct {
	Username string
	Password string
}

// CreateDefaultData creates the initial user if it does not exist yet.
// An empty username or password disables seeding.
func CreateDefaultData(ctx context.Context, userRepo appRepos.IUserRepository, initial InitialUser, lgr zerolog.Logger) error {
	if initial.Username == "" || initial.Password == "" {
		lgr.Debug().Msg("No initial user configured, skipping seed")
		return nil
	}

	exists, err := userRepo.UsernameExists(ctx, initial.Username)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if initial user exists")
		return fmt.Errorf("error checking initial user: %w", err)
	}
	if exists {
		lgr.Info().Str("username", initial.Username).Msg("Initial user already exists, skipping creation")
		return nil
	}

	hash, err := auth.HashPassword(initial.Password)
	if err != nil {
		return fmt.Errorf("error hashing initial user password: %w", err)
	}

	id, err := userRepo.Create(ctx, &appModels.User{Username: initial.Username, PasswordHash: hash})
	if err != nil {
		// Another instance may have seeded concurrently
		if errors.Is(err, apperrors.ErrUsernameTaken) {
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating initial user")
		return fmt.Errorf("error creating initial user: %w", err)
	}

	lgr.Info().Int64("userID", id).Str("username", initial.Username).Msg("Initial user created")
	return nil
}
