package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"hrms/internal/domain/auth"
)

// Seed creates the bootstrap ADMIN account unless a user with that email
// already exists.
func Seed(ctx context.Context, users auth.StoreAPI, email, password string) error {
	_, err := users.FindUserByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, auth.ErrUserNotFound) {
		return fmt.Errorf("look up seed admin: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	if _, err := users.CreateUser(ctx, auth.User{Email: email, Password: hash, Role: auth.RoleAdmin}); err != nil {
		return fmt.Errorf("create seed admin: %w", err)
	}
	slog.Info("seed admin created", "email", email)
	return nil
}
