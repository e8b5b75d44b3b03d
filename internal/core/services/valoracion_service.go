package services

import (
	"context"
	"errors"
	"log"

	"smartlining-api/internal/adapters/persistence/models"
	"smartlining-api/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Rating errors
var (
	ErrValoracionNotFound  = errors.New("valoracion not found")
	ErrDuplicateValoracion = errors.New("turno already has a valoracion")
	ErrInvalidPuntuacion   = errors.New("puntuacion must be between 1 and 5")
)

// ValoracionService collects post-service customer ratings
type ValoracionService struct {
	valoracionRepo repositories.ValoracionRepository
	turnoRepo      repositories.TurnoRepository
}

// NewValoracionService creates a new rating service
func NewValoracionService(
	valoracionRepo repositories.ValoracionRepository,
	turnoRepo repositories.TurnoRepository,
) *ValoracionService {
	return &ValoracionService{
		valoracionRepo: valoracionRepo,
		turnoRepo:      turnoRepo,
	}
}

// CreateValoracionInput represents a rating creation request
type CreateValoracionInput struct {
	TurnoID    uint    `json:"id_turno"`
	Puntuacion int     `json:"puntuacion"`
	Comentario *string `json:"comentario"`
}

// Create validates the ticket and score, then inserts the rating.
// The check-then-create is backstopped by the unique index on
// id_turno, so a concurrent duplicate still comes back as a conflict.
func (s *ValoracionService) Create(ctx context.Context, input *CreateValoracionInput) (*models.Valoracion, error) {
	if input.Puntuacion < 1 || input.Puntuacion > 5 {
		return nil, ErrInvalidPuntuacion
	}

	if _, err := s.turnoRepo.GetByID(ctx, input.TurnoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTurnoNotFound
		}
		return nil, err
	}

	if _, err := s.valoracionRepo.GetByTurnoID(ctx, input.TurnoID); err == nil {
		return nil, ErrDuplicateValoracion
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	valoracion := &models.Valoracion{
		TurnoID:    input.TurnoID,
		Puntuacion: input.Puntuacion,
		Comentario: input.Comentario,
	}

	if err := s.valoracionRepo.Create(ctx, valoracion); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateValoracion
		}
		return nil, err
	}

	log.Printf("Valoracion recorded: turno=%d puntuacion=%d", valoracion.TurnoID, valoracion.Puntuacion)
	return valoracion, nil
}

// GetByID returns a rating
func (s *ValoracionService) GetByID(ctx context.Context, id uint) (*models.Valoracion, error) {
	valoracion, err := s.valoracionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrValoracionNotFound
		}
		return nil, err
	}
	return valoracion, nil
}

// GetByTurnoID returns the rating attached to a ticket
func (s *ValoracionService) GetByTurnoID(ctx context.Context, turnoID uint) (*models.Valoracion, error) {
	valoracion, err := s.valoracionRepo.GetByTurnoID(ctx, turnoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrValoracionNotFound
		}
		return nil, err
	}
	return valoracion, nil
}

// UpdateValoracionInput represents a rating patch request
type UpdateValoracionInput struct {
	Puntuacion *int    `json:"puntuacion"`
	Comentario *string `json:"comentario"`
}

// Update patches score and/or comment
func (s *ValoracionService) Update(ctx context.Context, id uint, input *UpdateValoracionInput) (*models.Valoracion, error) {
	valoracion, err := s.valoracionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrValoracionNotFound
		}
		return nil, err
	}

	if input.Puntuacion != nil {
		if *input.Puntuacion < 1 || *input.Puntuacion > 5 {
			return nil, ErrInvalidPuntuacion
		}
		valoracion.Puntuacion = *input.Puntuacion
	}
	if input.Comentario != nil {
		valoracion.Comentario = input.Comentario
	}

	if err := s.valoracionRepo.Update(ctx, valoracion); err != nil {
		return nil, err
	}
	return valoracion, nil
}

// Delete removes a rating
func (s *ValoracionService) Delete(ctx context.Context, id uint) error {
	err := s.valoracionRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrValoracionNotFound
	}
	return err
}

// List returns ratings with pagination
func (s *ValoracionService) List(ctx context.Context, offset, limit int) ([]models.Valoracion, int64, error) {
	return s.valoracionRepo.List(ctx, offset, limit)
}
