package services

import (
	"context"
	"errors"
	"log"

	"smartlining-api/internal/adapters/persistence/models"
	"smartlining-api/internal/adapters/persistence/repositories"
	"smartlining-api/internal/config"
	"smartlining-api/internal/pkg/jwt"
	"smartlining-api/internal/pkg/password"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Auth errors
var (
	ErrUsuarioNotFound    = errors.New("usuario not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsuarioInactive    = errors.New("usuario account is inactive")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenRevoked       = errors.New("token revoked")
)

// AuthService handles authentication business logic
type AuthService struct {
	usuarioRepo      repositories.UsuarioRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	cfg              *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(
	usuarioRepo repositories.UsuarioRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		usuarioRepo:      usuarioRepo,
		refreshTokenRepo: refreshTokenRepo,
		cfg:              cfg,
	}
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents authentication response. Token is the access
// token the SPA stores; RefreshToken supports rotation.
type AuthResponse struct {
	User         *models.UsuarioResponse `json:"user"`
	Token        string                  `json:"token"`
	RefreshToken string                  `json:"refresh_token"`
}

// Login authenticates an employee or administrator
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	usuario, err := s.usuarioRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// Inactive accounts are rejected before the password check so the
	// caller can distinguish ACCOUNT_INACTIVE from INVALID_CREDENTIALS.
	if !usuario.Activo {
		return nil, ErrUsuarioInactive
	}

	if !password.Verify(input.Password, usuario.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	tokens, err := s.generateTokens(usuario)
	if err != nil {
		return nil, err
	}

	if err := s.storeRefreshToken(ctx, usuario.ID, tokens.RefreshToken); err != nil {
		return nil, err
	}

	log.Printf("Usuario logged in: %s", usuario.Email)

	return &AuthResponse{
		User:         usuario.ToResponse(),
		Token:        tokens.Token,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// Refresh rotates a refresh token and issues a new access token
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	claims, err := jwt.ValidateRefreshToken(refreshToken, s.cfg.JWT.Secret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	tokenHash := password.HashToken(refreshToken)
	stored, err := s.refreshTokenRepo.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	if stored.IsRevoked() {
		return nil, ErrTokenRevoked
	}
	if stored.IsExpired() {
		return nil, ErrTokenExpired
	}

	usuario, err := s.usuarioRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrUsuarioNotFound
	}
	if !usuario.Activo {
		return nil, ErrUsuarioInactive
	}

	// Token rotation: the presented refresh token is single use
	if err := s.refreshTokenRepo.Revoke(ctx, stored.ID); err != nil {
		return nil, err
	}

	tokens, err := s.generateTokens(usuario)
	if err != nil {
		return nil, err
	}

	if err := s.storeRefreshToken(ctx, usuario.ID, tokens.RefreshToken); err != nil {
		return nil, err
	}

	return &AuthResponse{
		User:         usuario.ToResponse(),
		Token:        tokens.Token,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// Logout revokes the presented refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	tokenHash := password.HashToken(refreshToken)
	return s.refreshTokenRepo.RevokeByTokenHash(ctx, tokenHash)
}

// GetUsuarioByID gets an account by ID
func (s *AuthService) GetUsuarioByID(ctx context.Context, id uint) (*models.Usuario, error) {
	usuario, err := s.usuarioRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUsuarioNotFound
		}
		return nil, err
	}
	return usuario, nil
}

type tokenPair struct {
	Token        string
	RefreshToken string
}

func (s *AuthService) generateTokens(usuario *models.Usuario) (*tokenPair, error) {
	accessToken, err := jwt.GenerateAccessToken(
		usuario.ID,
		usuario.Email,
		usuario.Nombre,
		usuario.Rol,
		s.cfg.JWT.Secret,
		s.cfg.JWT.AccessTokenHours,
	)
	if err != nil {
		return nil, err
	}

	tokenID := uuid.New().String()
	refreshToken, err := jwt.GenerateRefreshToken(
		usuario.ID,
		tokenID,
		s.cfg.JWT.Secret,
		s.cfg.JWT.RefreshTokenDays,
	)
	if err != nil {
		return nil, err
	}

	return &tokenPair{Token: accessToken, RefreshToken: refreshToken}, nil
}

func (s *AuthService) storeRefreshToken(ctx context.Context, usuarioID uint, refreshToken string) error {
	token := &models.RefreshToken{
		UsuarioID: usuarioID,
		TokenHash: password.HashToken(refreshToken),
		ExpiresAt: jwt.GetExpiryTime(s.cfg.JWT.RefreshTokenDays),
	}
	return s.refreshTokenRepo.Create(ctx, token)
}
