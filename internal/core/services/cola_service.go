package services

import (
	"context"
	"errors"
	"strings"

	"smartlining-api/internal/adapters/persistence/models"
	"smartlining-api/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Queue errors
var (
	ErrColaNombreTaken = errors.New("cola nombre already in use")
	ErrColaNombreEmpty = errors.New("cola nombre is required")
)

// ColaService manages the queue registry
type ColaService struct {
	colaRepo repositories.ColaRepository
}

// NewColaService creates a new queue service
func NewColaService(colaRepo repositories.ColaRepository) *ColaService {
	return &ColaService{colaRepo: colaRepo}
}

// CreateColaInput represents a queue creation request
type CreateColaInput struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// Create registers a new queue
func (s *ColaService) Create(ctx context.Context, input *CreateColaInput) (*models.Cola, error) {
	nombre := strings.TrimSpace(input.Nombre)
	if nombre == "" {
		return nil, ErrColaNombreEmpty
	}

	cola := &models.Cola{
		Nombre:      nombre,
		Descripcion: input.Descripcion,
		Activa:      true,
	}

	if err := s.colaRepo.Create(ctx, cola); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrColaNombreTaken
		}
		return nil, err
	}
	return cola, nil
}

// GetByID returns a queue with its schedule
func (s *ColaService) GetByID(ctx context.Context, id uint) (*models.Cola, error) {
	cola, err := s.colaRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrColaNotFound
		}
		return nil, err
	}
	return cola, nil
}

// List returns queues with pagination
func (s *ColaService) List(ctx context.Context, offset, limit int) ([]models.Cola, int64, error) {
	return s.colaRepo.List(ctx, offset, limit)
}

// ListActivas returns only active queues
func (s *ColaService) ListActivas(ctx context.Context, offset, limit int) ([]models.Cola, int64, error) {
	return s.colaRepo.ListActivas(ctx, offset, limit)
}

// UpdateColaInput represents a queue patch request
type UpdateColaInput struct {
	Nombre      *string `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	Activa      *bool   `json:"activa"`
}

// Update patches queue fields
func (s *ColaService) Update(ctx context.Context, id uint, input *UpdateColaInput) (*models.Cola, error) {
	cola, err := s.colaRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrColaNotFound
		}
		return nil, err
	}

	if input.Nombre != nil {
		nombre := strings.TrimSpace(*input.Nombre)
		if nombre == "" {
			return nil, ErrColaNombreEmpty
		}
		cola.Nombre = nombre
	}
	if input.Descripcion != nil {
		cola.Descripcion = *input.Descripcion
	}
	if input.Activa != nil {
		cola.Activa = *input.Activa
	}

	if err := s.colaRepo.Update(ctx, cola); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrColaNombreTaken
		}
		return nil, err
	}
	return cola, nil
}

// Delete removes a queue
func (s *ColaService) Delete(ctx context.Context, id uint) error {
	if _, err := s.colaRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrColaNotFound
		}
		return err
	}
	return s.colaRepo.Delete(ctx, id)
}
