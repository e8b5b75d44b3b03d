package services

import (
	"context"
	"errors"
	"testing"

	"smartlining-api/internal/adapters/persistence/models"
	"smartlining-api/internal/config"
	"smartlining-api/internal/pkg/password"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			AccessTokenHours: 24,
			RefreshTokenDays: 7,
		},
	}
}

func testUsuario(t *testing.T, activo bool) *models.Usuario {
	t.Helper()
	hash, err := password.Hash("empleado123")
	if err != nil {
		t.Fatal(err)
	}
	return &models.Usuario{
		ID:           1,
		Nombre:       "Empleado Uno",
		Email:        "empleado1@smartlining.com",
		PasswordHash: hash,
		Rol:          models.RolEmpleado,
		Activo:       activo,
	}
}

func TestLoginSuccess(t *testing.T) {
	svc := NewAuthService(newFakeUsuarioRepo(testUsuario(t, true)), newFakeRefreshTokenRepo(), testConfig())

	result, err := svc.Login(context.Background(), &LoginInput{
		Email:    "empleado1@smartlining.com",
		Password: "empleado123",
	})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if result.Token == "" {
		t.Error("expected access token")
	}
	if result.RefreshToken == "" {
		t.Error("expected refresh token")
	}
	if result.User == nil || result.User.Email != "empleado1@smartlining.com" {
		t.Error("expected user in response")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewAuthService(newFakeUsuarioRepo(testUsuario(t, true)), newFakeRefreshTokenRepo(), testConfig())

	_, err := svc.Login(context.Background(), &LoginInput{
		Email:    "empleado1@smartlining.com",
		Password: "incorrecta",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(newFakeUsuarioRepo(), newFakeRefreshTokenRepo(), testConfig())

	_, err := svc.Login(context.Background(), &LoginInput{
		Email:    "nadie@smartlining.com",
		Password: "whatever1",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginInactiveAccount(t *testing.T) {
	svc := NewAuthService(newFakeUsuarioRepo(testUsuario(t, false)), newFakeRefreshTokenRepo(), testConfig())

	// Even with the correct password the inactive error wins, so the
	// handler can answer 403 instead of 401.
	_, err := svc.Login(context.Background(), &LoginInput{
		Email:    "empleado1@smartlining.com",
		Password: "empleado123",
	})
	if !errors.Is(err, ErrUsuarioInactive) {
		t.Errorf("expected ErrUsuarioInactive, got %v", err)
	}
}

func TestRefreshRotatesToken(t *testing.T) {
	tokenRepo := newFakeRefreshTokenRepo()
	svc := NewAuthService(newFakeUsuarioRepo(testUsuario(t, true)), tokenRepo, testConfig())
	ctx := context.Background()

	login, err := svc.Login(ctx, &LoginInput{Email: "empleado1@smartlining.com", Password: "empleado123"})
	if err != nil {
		t.Fatal(err)
	}

	refreshed, err := svc.Refresh(ctx, login.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	if refreshed.RefreshToken == login.RefreshToken {
		t.Error("refresh must rotate the token")
	}

	// The first token is single use
	if _, err := svc.Refresh(ctx, login.RefreshToken); !errors.Is(err, ErrTokenRevoked) {
		t.Errorf("expected ErrTokenRevoked on reuse, got %v", err)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	tokenRepo := newFakeRefreshTokenRepo()
	svc := NewAuthService(newFakeUsuarioRepo(testUsuario(t, true)), tokenRepo, testConfig())
	ctx := context.Background()

	login, err := svc.Login(ctx, &LoginInput{Email: "empleado1@smartlining.com", Password: "empleado123"})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Logout(ctx, login.RefreshToken); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if _, err := svc.Refresh(ctx, login.RefreshToken); !errors.Is(err, ErrTokenRevoked) {
		t.Errorf("expected ErrTokenRevoked after logout, got %v", err)
	}
}
