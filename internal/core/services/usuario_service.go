package services

import (
	"context"
	"errors"
	"strings"

	"smartlining-api/internal/adapters/persistence/models"
	"smartlining-api/internal/adapters/persistence/repositories"
	"smartlining-api/internal/pkg/password"

	"gorm.io/gorm"
)

// Account errors
var (
	ErrEmailTaken      = errors.New("email already registered")
	ErrInvalidRol      = errors.New("rol must be ADMINISTRADOR or EMPLEADO")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters")
)

// UsuarioService manages staff accounts
type UsuarioService struct {
	usuarioRepo repositories.UsuarioRepository
}

// NewUsuarioService creates a new account service
func NewUsuarioService(usuarioRepo repositories.UsuarioRepository) *UsuarioService {
	return &UsuarioService{usuarioRepo: usuarioRepo}
}

// CreateUsuarioInput represents an account creation request
type CreateUsuarioInput struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Rol      string `json:"rol"`
}

// Create registers a staff account
func (s *UsuarioService) Create(ctx context.Context, input *CreateUsuarioInput) (*models.Usuario, error) {
	if input.Rol != models.RolAdministrador && input.Rol != models.RolEmpleado {
		return nil, ErrInvalidRol
	}
	if !password.ValidatePassword(input.Password) {
		return nil, ErrPasswordTooWeak
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	exists, err := s.usuarioRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	usuario := &models.Usuario{
		Nombre:       strings.TrimSpace(input.Nombre),
		Email:        email,
		PasswordHash: hash,
		Rol:          input.Rol,
		Activo:       true,
	}

	if err := s.usuarioRepo.Create(ctx, usuario); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return usuario, nil
}

// GetByID returns an account
func (s *UsuarioService) GetByID(ctx context.Context, id uint) (*models.Usuario, error) {
	usuario, err := s.usuarioRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUsuarioNotFound
		}
		return nil, err
	}
	return usuario, nil
}

// List returns accounts with pagination
func (s *UsuarioService) List(ctx context.Context, offset, limit int) ([]*models.Usuario, int64, error) {
	return s.usuarioRepo.List(ctx, offset, limit)
}

// UpdateUsuarioInput represents an account patch request
type UpdateUsuarioInput struct {
	Nombre   *string `json:"nombre"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Rol      *string `json:"rol"`
	Activo   *bool   `json:"activo"`
}

// Update patches account fields
func (s *UsuarioService) Update(ctx context.Context, id uint, input *UpdateUsuarioInput) (*models.Usuario, error) {
	usuario, err := s.usuarioRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUsuarioNotFound
		}
		return nil, err
	}

	if input.Nombre != nil {
		usuario.Nombre = strings.TrimSpace(*input.Nombre)
	}
	if input.Email != nil {
		usuario.Email = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if input.Rol != nil {
		if *input.Rol != models.RolAdministrador && *input.Rol != models.RolEmpleado {
			return nil, ErrInvalidRol
		}
		usuario.Rol = *input.Rol
	}
	if input.Activo != nil {
		usuario.Activo = *input.Activo
	}
	if input.Password != nil {
		if !password.ValidatePassword(*input.Password) {
			return nil, ErrPasswordTooWeak
		}
		hash, err := password.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		usuario.PasswordHash = hash
	}

	if err := s.usuarioRepo.Update(ctx, usuario); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return usuario, nil
}

// Delete soft-deletes an account
func (s *UsuarioService) Delete(ctx context.Context, id uint) error {
	if _, err := s.usuarioRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUsuarioNotFound
		}
		return err
	}
	return s.usuarioRepo.Delete(ctx, id)
}
