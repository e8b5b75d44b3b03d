package services

import (
	"context"
	"errors"
	"regexp"

	"smartlining-api/internal/adapters/persistence/models"
	"smartlining-api/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Schedule errors
var (
	ErrHorarioNotFound  = errors.New("horario not found")
	ErrDuplicateHorario = errors.New("horario for this day already exists")
	ErrInvalidDiaSemana = errors.New("dia_semana must be one of LUNES..DOMINGO")
	ErrInvalidHora      = errors.New("hora must be in HH:MM format")
)

var horaPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// HorarioService manages per-weekday operating windows for queues
type HorarioService struct {
	horarioRepo *repositories.HorarioRepository
	colaRepo    repositories.ColaRepository
}

// NewHorarioService creates a new schedule service
func NewHorarioService(horarioRepo *repositories.HorarioRepository, colaRepo repositories.ColaRepository) *HorarioService {
	return &HorarioService{
		horarioRepo: horarioRepo,
		colaRepo:    colaRepo,
	}
}

// CreateHorarioInput represents a schedule creation request
type CreateHorarioInput struct {
	DiaSemana  string `json:"dia_semana"`
	HoraInicio string `json:"hora_inicio"`
	HoraFin    string `json:"hora_fin"`
}

// Create adds a weekday window to a queue. The composite unique index
// on (id_cola, dia_semana) rejects a second window for the same day.
func (s *HorarioService) Create(ctx context.Context, colaID uint, input *CreateHorarioInput) (*models.HorarioCola, error) {
	if !models.ValidDiaSemana(input.DiaSemana) {
		return nil, ErrInvalidDiaSemana
	}
	if !horaPattern.MatchString(input.HoraInicio) || !horaPattern.MatchString(input.HoraFin) {
		return nil, ErrInvalidHora
	}

	if _, err := s.colaRepo.GetByID(ctx, colaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrColaNotFound
		}
		return nil, err
	}

	horario := &models.HorarioCola{
		ColaID:     colaID,
		DiaSemana:  input.DiaSemana,
		HoraInicio: input.HoraInicio,
		HoraFin:    input.HoraFin,
	}

	if err := s.horarioRepo.Create(ctx, horario); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateHorario
		}
		return nil, err
	}
	return horario, nil
}

// ListByCola returns a queue's schedule ordered by weekday
func (s *HorarioService) ListByCola(ctx context.Context, colaID uint) ([]models.HorarioCola, error) {
	if _, err := s.colaRepo.GetByID(ctx, colaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrColaNotFound
		}
		return nil, err
	}
	return s.horarioRepo.ListByCola(ctx, colaID)
}

// UpdateHorarioInput represents a schedule patch request
type UpdateHorarioInput struct {
	HoraInicio *string `json:"hora_inicio"`
	HoraFin    *string `json:"hora_fin"`
}

// Update patches a window's start and/or end time
func (s *HorarioService) Update(ctx context.Context, id uint, input *UpdateHorarioInput) (*models.HorarioCola, error) {
	horario, err := s.horarioRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHorarioNotFound
		}
		return nil, err
	}

	if input.HoraInicio != nil {
		if !horaPattern.MatchString(*input.HoraInicio) {
			return nil, ErrInvalidHora
		}
		horario.HoraInicio = *input.HoraInicio
	}
	if input.HoraFin != nil {
		if !horaPattern.MatchString(*input.HoraFin) {
			return nil, ErrInvalidHora
		}
		horario.HoraFin = *input.HoraFin
	}

	if err := s.horarioRepo.Update(ctx, horario); err != nil {
		return nil, err
	}
	return horario, nil
}

// Delete removes a window
func (s *HorarioService) Delete(ctx context.Context, id uint) error {
	if _, err := s.horarioRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHorarioNotFound
		}
		return err
	}
	return s.horarioRepo.Delete(ctx, id)
}
