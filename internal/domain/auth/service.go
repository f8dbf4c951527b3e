package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

const minPasswordLength = 8

type Service struct {
	Store    StoreAPI
	Secret   string
	TokenTTL time.Duration
}

func NewService(store StoreAPI, secret string, ttl time.Duration) *Service {
	return &Service{Store: store, Secret: secret, TokenTTL: ttl}
}

// Login verifies credentials and issues an access token. Unknown emails and
// wrong passwords both report ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, creds LoginCredentials) (LoginResult, error) {
	user, err := s.Store.FindUserByEmail(ctx, creds.Email)
	if errors.Is(err, ErrUserNotFound) {
		return LoginResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return LoginResult{}, err
	}
	if err := CheckPassword(user.Password, creds.Password); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	payload := AuthPayload{UserID: user.ID, Email: user.Email, Role: user.Role, EmployeeID: user.EmployeeID}
	token, err := GenerateToken(s.Secret, ClaimsFor(payload), s.TokenTTL)
	if err != nil {
		return LoginResult{}, fmt.Errorf("issue token: %w", err)
	}
	return LoginResult{Token: token, User: payload}, nil
}

func (s *Service) Register(ctx context.Context, input RegisterInput) (User, error) {
	if !input.Role.Valid() {
		return User{}, ErrInvalidRole
	}
	if len(input.Password) < minPasswordLength {
		return User{}, ErrWeakPassword
	}
	hash, err := HashPassword(input.Password)
	if err != nil {
		return User{}, err
	}
	return s.Store.CreateUser(ctx, User{
		Email:      strings.ToLower(strings.TrimSpace(input.Email)),
		Password:   hash,
		Role:       input.Role,
		EmployeeID: input.EmployeeID,
	})
}

func (s *Service) ChangePassword(ctx context.Context, userID string, input ChangePasswordInput) error {
	user, err := s.Store.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := CheckPassword(user.Password, input.CurrentPassword); err != nil {
		return ErrInvalidCredentials
	}
	if len(input.NewPassword) < minPasswordLength {
		return ErrWeakPassword
	}
	hash, err := HashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	return s.Store.UpdatePassword(ctx, userID, hash)
}

func (s *Service) Me(ctx context.Context, userID string) (User, error) {
	return s.Store.GetUser(ctx, userID)
}
