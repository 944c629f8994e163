package seeder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"QR-Code-Tracker/models"
	"QR-Code-Tracker/pkg/logging"
	"QR-Code-Tracker/pkg/password"
	"QR-Code-Tracker/repository"
)

const (
	DemoUsername = "demo"
	DemoEmail    = "demo@example.com"
	DemoPassword = "Password123"
)

// SeedDemoUser creates the demo account unless one with the same email
// already exists. It reports whether a user was created.
func SeedDemoUser(ctx context.Context, userRepo repository.UserRepository, log logging.Logger) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	existing, err := userRepo.FindUserByEmail(ctx, DemoEmail)
	if err != nil {
		return false, fmt.Errorf("failed to look up demo user: %w", err)
	}
	if existing != nil {
		log.Info(ctx, "demo user already exists, seeding skipped", "email", DemoEmail)
		return false, nil
	}

	hashedPassword, err := password.HashPassword(DemoPassword)
	if err != nil {
		return false, fmt.Errorf("failed to hash demo password: %w", err)
	}

	userID, err := userRepo.CreateUser(ctx, &models.User{
		Username:     DemoUsername,
		Email:        DemoEmail,
		PasswordHash: hashedPassword,
	})
	if err != nil {
		// Lost a race with another instance seeding the same account.
		if errors.Is(err, repository.ErrEmailExists) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create demo user: %w", err)
	}

	log.Info(ctx, "demo user created", "email", DemoEmail, "user_id", userID.Hex())
	return true, nil
}
