package services

import (
	"context"
	"errors"
	"log"

	"smartlining-api/internal/adapters/persistence/models"
	"smartlining-api/internal/adapters/persistence/repositories"
	"smartlining-api/internal/core/domain"

	"gorm.io/gorm"
)

// Attention errors
var (
	ErrEmpleadoNotFound  = errors.New("empleado not found")
	ErrAtencionNotFound  = errors.New("atencion not found")
	ErrDuplicateAtencion = errors.New("turno already has an atencion")
	ErrInvalidResultado  = errors.New("resultado must be ATENDIDO or CANCELADO")
	ErrInvalidDuracion   = errors.New("duracion_atencion must be a non-negative number of seconds")
)

// AtencionService records service outcomes for tickets
type AtencionService struct {
	atencionRepo repositories.AtencionRepository
	turnoRepo    repositories.TurnoRepository
	usuarioRepo  repositories.UsuarioRepository
}

// NewAtencionService creates a new attention service
func NewAtencionService(
	atencionRepo repositories.AtencionRepository,
	turnoRepo repositories.TurnoRepository,
	usuarioRepo repositories.UsuarioRepository,
) *AtencionService {
	return &AtencionService{
		atencionRepo: atencionRepo,
		turnoRepo:    turnoRepo,
		usuarioRepo:  usuarioRepo,
	}
}

// CreateAtencionInput represents an attention creation request
type CreateAtencionInput struct {
	TurnoID    uint   `json:"id_turno"`
	EmpleadoID uint   `json:"id_empleado"`
	Resultado  string `json:"resultado"`
}

// Create validates ticket and employee, then records the outcome. The
// insert and the ticket's terminal transition commit atomically.
func (s *AtencionService) Create(ctx context.Context, input *CreateAtencionInput) (*models.Atencion, error) {
	if input.Resultado != models.ResultadoAtendido && input.Resultado != models.ResultadoCancelado {
		return nil, ErrInvalidResultado
	}

	turno, err := s.turnoRepo.GetByID(ctx, input.TurnoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTurnoNotFound
		}
		return nil, err
	}

	// The outcome implies the ticket's terminal state, which still has
	// to be reachable from its current state.
	terminal := models.EstadoFinalizado
	if input.Resultado == models.ResultadoCancelado {
		terminal = models.EstadoCancelado
	}
	if !domain.CanTransition(turno.Estado, terminal) {
		return nil, ErrInvalidTransition
	}

	if _, err := s.usuarioRepo.GetByID(ctx, input.EmpleadoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmpleadoNotFound
		}
		return nil, err
	}

	atencion := &models.Atencion{
		TurnoID:    input.TurnoID,
		EmpleadoID: input.EmpleadoID,
		Resultado:  input.Resultado,
	}

	if err := s.atencionRepo.CreateAndFinalize(ctx, atencion); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateAtencion
		}
		return nil, err
	}

	log.Printf("Atencion recorded: turno=%d resultado=%s", atencion.TurnoID, atencion.Resultado)
	return atencion, nil
}

// GetByID returns an attention record with relations
func (s *AtencionService) GetByID(ctx context.Context, id uint) (*models.Atencion, error) {
	atencion, err := s.atencionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAtencionNotFound
		}
		return nil, err
	}
	return atencion, nil
}

// UpdateAtencionInput represents an attention patch request
type UpdateAtencionInput struct {
	DuracionAtencion *int    `json:"duracion_atencion"`
	Resultado        *string `json:"resultado"`
}

// Update patches duration and/or result
func (s *AtencionService) Update(ctx context.Context, id uint, input *UpdateAtencionInput) (*models.Atencion, error) {
	if input.DuracionAtencion == nil && input.Resultado == nil {
		return nil, ErrInvalidResultado
	}

	atencion, err := s.atencionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAtencionNotFound
		}
		return nil, err
	}

	if input.DuracionAtencion != nil {
		if *input.DuracionAtencion < 0 {
			return nil, ErrInvalidDuracion
		}
		atencion.DuracionAtencion = input.DuracionAtencion
	}

	if input.Resultado != nil {
		if *input.Resultado != models.ResultadoAtendido && *input.Resultado != models.ResultadoCancelado {
			return nil, ErrInvalidResultado
		}
		atencion.Resultado = *input.Resultado
	}

	if err := s.atencionRepo.Update(ctx, atencion); err != nil {
		return nil, err
	}
	return atencion, nil
}

// List returns attention records with pagination
func (s *AtencionService) List(ctx context.Context, offset, limit int) ([]models.Atencion, int64, error) {
	return s.atencionRepo.List(ctx, offset, limit)
}
