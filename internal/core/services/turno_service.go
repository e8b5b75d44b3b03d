package services

import (
	"context"
	"errors"
	"log"
	"time"

	"smartlining-api/internal/adapters/persistence/models"
	"smartlining-api/internal/adapters/persistence/repositories"
	"smartlining-api/internal/core/domain"

	"gorm.io/gorm"
)

// Ticket errors
var (
	ErrColaNotFound      = errors.New("cola not found")
	ErrClienteNotFound   = errors.New("cliente not found")
	ErrTurnoNotFound     = errors.New("turno not found")
	ErrInvalidEstado     = errors.New("invalid turno estado")
	ErrInvalidTransition = errors.New("invalid turno state transition")
)

// TurnoService handles ticket lifecycle business logic
type TurnoService struct {
	turnoRepo   repositories.TurnoRepository
	colaRepo    repositories.ColaRepository
	clienteRepo repositories.ClienteRepository
}

// NewTurnoService creates a new ticket service
func NewTurnoService(
	turnoRepo repositories.TurnoRepository,
	colaRepo repositories.ColaRepository,
	clienteRepo repositories.ClienteRepository,
) *TurnoService {
	return &TurnoService{
		turnoRepo:   turnoRepo,
		colaRepo:    colaRepo,
		clienteRepo: clienteRepo,
	}
}

// CreateInput represents a ticket creation request
type CreateTurnoInput struct {
	ColaID    uint `json:"id_cola"`
	ClienteID uint `json:"id_cliente"`
}

// Create validates queue and customer, then inserts the ticket with
// the next per-queue sequential number
func (s *TurnoService) Create(ctx context.Context, input *CreateTurnoInput) (*models.Turno, error) {
	if _, err := s.colaRepo.GetByID(ctx, input.ColaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrColaNotFound
		}
		return nil, err
	}

	if _, err := s.clienteRepo.GetByID(ctx, input.ClienteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClienteNotFound
		}
		return nil, err
	}

	turno, err := s.turnoRepo.CreateNext(ctx, input.ColaID, input.ClienteID)
	if err != nil {
		return nil, err
	}

	log.Printf("Turno created: cola=%d numero=%d", turno.ColaID, turno.NumeroTurno)
	return turno, nil
}

// GetByID returns a ticket with attention and rating details
func (s *TurnoService) GetByID(ctx context.Context, id uint) (*models.Turno, error) {
	turno, err := s.turnoRepo.GetByIDWithDetails(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTurnoNotFound
		}
		return nil, err
	}
	return turno, nil
}

// List returns tickets filtered by estado and/or cola with pagination
func (s *TurnoService) List(ctx context.Context, filter repositories.TurnoFilter, offset, limit int) ([]models.Turno, int64, error) {
	if filter.Estado != "" && !domain.ValidEstado(filter.Estado) {
		return nil, 0, ErrInvalidEstado
	}
	return s.turnoRepo.List(ctx, filter, offset, limit)
}

// UpdateTurnoInput represents a ticket patch request
type UpdateTurnoInput struct {
	Estado                  string     `json:"estado"`
	FechaHoraLlamada        *time.Time `json:"fecha_hora_llamada"`
	FechaHoraInicioAtencion *time.Time `json:"fecha_hora_inicio_atencion"`
	FechaHoraFinAtencion    *time.Time `json:"fecha_hora_fin_atencion"`
}

// Update patches ticket timestamps and, when estado changes, enforces
// the lifecycle state machine: EN_ESPERA -> EN_ATENCION ->
// FINALIZADO/CANCELADO, with EN_ESPERA -> CANCELADO for abandoned
// tickets. Terminal states accept no further transition.
func (s *TurnoService) Update(ctx context.Context, id uint, input *UpdateTurnoInput) (*models.Turno, error) {
	turno, err := s.turnoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTurnoNotFound
		}
		return nil, err
	}

	if input.Estado != "" && input.Estado != turno.Estado {
		if !domain.ValidEstado(input.Estado) {
			return nil, ErrInvalidEstado
		}
		if !domain.CanTransition(turno.Estado, input.Estado) {
			return nil, ErrInvalidTransition
		}
		s.applyTransition(turno, input.Estado)
	}

	if input.FechaHoraLlamada != nil {
		turno.FechaHoraLlamada = input.FechaHoraLlamada
	}
	if input.FechaHoraInicioAtencion != nil {
		turno.FechaHoraInicioAtencion = input.FechaHoraInicioAtencion
	}
	if input.FechaHoraFinAtencion != nil {
		turno.FechaHoraFinAtencion = input.FechaHoraFinAtencion
	}

	if err := s.turnoRepo.Update(ctx, turno); err != nil {
		return nil, err
	}

	log.Printf("Turno %d -> %s", turno.ID, turno.Estado)
	return turno, nil
}

// applyTransition sets the estado and stamps the timestamps the new
// state implies, unless the caller supplied explicit values
func (s *TurnoService) applyTransition(turno *models.Turno, estado string) {
	now := time.Now()
	switch estado {
	case models.EstadoEnAtencion:
		if turno.FechaHoraLlamada == nil {
			turno.FechaHoraLlamada = &now
		}
		if turno.FechaHoraInicioAtencion == nil {
			turno.FechaHoraInicioAtencion = &now
		}
	case models.EstadoFinalizado, models.EstadoCancelado:
		if turno.FechaHoraFinAtencion == nil {
			turno.FechaHoraFinAtencion = &now
		}
	}
	turno.Estado = estado
}

// Delete removes a ticket
func (s *TurnoService) Delete(ctx context.Context, id uint) error {
	err := s.turnoRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrTurnoNotFound
	}
	return err
}
