package auth

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeStore struct {
	users map[string]User
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: map[string]User{}}
}

func (f *fakeStore) FindUserByEmail(_ context.Context, email string) (User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrUserNotFound
}

func (f *fakeStore) GetUser(_ context.Context, userID string) (User, error) {
	u, ok := f.users[userID]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return u, nil
}

func (f *fakeStore) CreateUser(_ context.Context, user User) (User, error) {
	for _, u := range f.users {
		if u.Email == user.Email {
			return User{}, ErrEmailTaken
		}
	}
	user.ID = "user-" + user.Email
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeStore) UpdatePassword(_ context.Context, userID, hash string) error {
	u, ok := f.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	u.Password = hash
	f.users[userID] = u
	return nil
}

func TestRegisterAndLogin(t *testing.T) {
	svc := NewService(newFakeStore(), "secret", time.Hour)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{Email: " HR@Example.com ", Password: "long-enough", Role: RoleHR})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "hr@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}

	result, err := svc.Login(ctx, LoginCredentials{Email: "hr@example.com", Password: "long-enough"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := ParseToken("secret", result.Token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Payload().UserID != user.ID || claims.Role != RoleHR {
		t.Fatalf("unexpected claims %+v", claims.Payload())
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewService(newFakeStore(), "secret", time.Hour)
	ctx := context.Background()
	if _, err := svc.Register(ctx, RegisterInput{Email: "a@example.com", Password: "long-enough", Role: RoleEmployee}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Login(ctx, LoginCredentials{Email: "a@example.com", Password: "nope"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if _, err := svc.Login(ctx, LoginCredentials{Email: "ghost@example.com", Password: "long-enough"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for unknown user, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := NewService(newFakeStore(), "secret", time.Hour)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Email: "x@example.com", Password: "long-enough", Role: "ROOT"}); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected invalid role, got %v", err)
	}
	if _, err := svc.Register(ctx, RegisterInput{Email: "x@example.com", Password: "short", Role: RoleHR}); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected weak password, got %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	svc := NewService(newFakeStore(), "secret", time.Hour)
	ctx := context.Background()
	user, err := svc.Register(ctx, RegisterInput{Email: "c@example.com", Password: "first-pass", Role: RoleEmployee})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.ChangePassword(ctx, user.ID, ChangePasswordInput{CurrentPassword: "wrong-pass", NewPassword: "second-pass"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if err := svc.ChangePassword(ctx, user.ID, ChangePasswordInput{CurrentPassword: "first-pass", NewPassword: "second-pass"}); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if _, err := svc.Login(ctx, LoginCredentials{Email: "c@example.com", Password: "second-pass"}); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
}
