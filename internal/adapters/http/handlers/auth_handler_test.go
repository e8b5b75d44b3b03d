package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"smartlining-api/internal/adapters/persistence/models"
	"smartlining-api/internal/config"
	"smartlining-api/internal/core/services"
	"smartlining-api/internal/pkg/password"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type stubUsuarioRepo struct {
	usuario *models.Usuario
}

func (r *stubUsuarioRepo) Create(context.Context, *models.Usuario) error { return nil }

func (r *stubUsuarioRepo) GetByID(_ context.Context, id uint) (*models.Usuario, error) {
	if r.usuario != nil && r.usuario.ID == id {
		return r.usuario, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) GetByEmail(_ context.Context, email string) (*models.Usuario, error) {
	if r.usuario != nil && r.usuario.Email == email {
		return r.usuario, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) Update(context.Context, *models.Usuario) error { return nil }
func (r *stubUsuarioRepo) Delete(context.Context, uint) error { return nil }

func (r *stubUsuarioRepo) List(context.Context, int, int) ([]*models.Usuario, int64, error) {
	return nil, 0, nil
}

func (r *stubUsuarioRepo) ExistsByEmail(context.Context, string) (bool, error) {
	return false, nil
}

type stubRefreshTokenRepo struct{}

func (r *stubRefreshTokenRepo) Create(context.Context, *models.RefreshToken) error { return nil }

func (r *stubRefreshTokenRepo) GetByTokenHash(context.Context, string) (*models.RefreshToken, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRefreshTokenRepo) Revoke(context.Context, uint) error { return nil }
func (r *stubRefreshTokenRepo) RevokeByTokenHash(context.Context, string) error { return nil }
func (r *stubRefreshTokenRepo) DeleteExpired(context.Context) (int64, error) { return 0, nil }

func newLoginApp(t *testing.T, activo bool) *fiber.App {
	t.Helper()
	hash, err := password.Hash("empleado123")
	if err != nil {
		t.Fatal(err)
	}
	usuarioRepo := &stubUsuarioRepo{usuario: &models.Usuario{
		ID:           1,
		Nombre:       "Empleado Uno",
		Email:        "empleado1@smartlining.com",
		PasswordHash: hash,
		Rol:          models.RolEmpleado,
		Activo:       activo,
	}}
	cfg := &config.Config{JWT: config.JWTConfig{
		Secret:           "test-secret",
		AccessTokenHours: 24,
		RefreshTokenDays: 7,
	}}
	authService := services.NewAuthService(usuarioRepo, &stubRefreshTokenRepo{}, cfg)
	handler := NewAuthHandler(authService)

	app := fiber.New()
	app.Post("/api/auth/login", handler.Login)
	return app
}

func postLogin(t *testing.T, app *fiber.App, body map[string]string) (int, map[string]interface{}) {
	t.Helper()
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, int(5*time.Second/time.Millisecond))
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	defer resp.Body.Close()

	var out map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return resp.StatusCode, out
}

func TestLoginEndpointSuccess(t *testing.T) {
	app := newLoginApp(t, true)

	status, out := postLogin(t, app, map[string]string{
		"email":    "empleado1@smartlining.com",
		"password": "empleado123",
	})

	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	data, ok := out["data"].(map[string]interface{})
	if !ok {
		t.Fatal("expected data object")
	}
	if data["token"] == nil || data["token"] == "" {
		t.Error("expected token in response")
	}
	if data["user"] == nil {
		t.Error("expected user in response")
	}
}

func TestLoginEndpointInvalidCredentials(t *testing.T) {
	app := newLoginApp(t, true)

	status, out := postLogin(t, app, map[string]string{
		"email":    "empleado1@smartlining.com",
		"password": "incorrecta",
	})

	if status != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", status)
	}
	if out["error"] != "INVALID_CREDENTIALS" {
		t.Errorf("error code = %v, want INVALID_CREDENTIALS", out["error"])
	}
}

func TestLoginEndpointInactiveAccount(t *testing.T) {
	app := newLoginApp(t, false)

	status, out := postLogin(t, app, map[string]string{
		"email":    "empleado1@smartlining.com",
		"password": "empleado123",
	})

	if status != fiber.StatusForbidden {
		t.Fatalf("status = %d, want 403", status)
	}
	if out["error"] != "ACCOUNT_INACTIVE" {
		t.Errorf("error code = %v, want ACCOUNT_INACTIVE", out["error"])
	}
}

func TestLoginEndpointMissingFields(t *testing.T) {
	app := newLoginApp(t, true)

	status, _ := postLogin(t, app, map[string]string{"email": "empleado1@smartlining.com"})
	if status != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", status)
	}
}
