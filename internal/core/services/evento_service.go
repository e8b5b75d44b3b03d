package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"smartlining-api/internal/adapters/persistence/models"
	"smartlining-api/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Event errors
var (
	ErrEventoNotFound    = errors.New("evento not found")
	ErrEventoNombreTaken = errors.New("evento nombre already in use")
	ErrInvalidTipoEvento = errors.New("tipo must be PROMOCION, FESTIVO or EVENTO")
	ErrInvalidFechas     = errors.New("fecha_inicio and fecha_fin must be YYYY-MM-DD with inicio <= fin")
	ErrEventoNombreEmpty = errors.New("evento nombre is required")
)

const fechaLayout = "2006-01-02"

// EventoService manages the promotional/holiday calendar
type EventoService struct {
	eventoRepo *repositories.EventoRepository
	colaRepo   repositories.ColaRepository
}

// NewEventoService creates a new event service
func NewEventoService(eventoRepo *repositories.EventoRepository, colaRepo repositories.ColaRepository) *EventoService {
	return &EventoService{
		eventoRepo: eventoRepo,
		colaRepo:   colaRepo,
	}
}

func validTipoEvento(tipo string) bool {
	return tipo == models.TipoPromocion || tipo == models.TipoFestivo || tipo == models.TipoEvento
}

// CreateEventoInput represents an event creation request
type CreateEventoInput struct {
	Tipo        string `json:"tipo"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	FechaInicio string `json:"fecha_inicio"`
	FechaFin    string `json:"fecha_fin"`
	ColaIDs     []uint `json:"cola_ids"`
}

// Create registers a new event and its queue associations
func (s *EventoService) Create(ctx context.Context, input *CreateEventoInput) (*models.Evento, error) {
	nombre := strings.TrimSpace(input.Nombre)
	if nombre == "" {
		return nil, ErrEventoNombreEmpty
	}
	if !validTipoEvento(input.Tipo) {
		return nil, ErrInvalidTipoEvento
	}

	inicio, fin, err := parseFechas(input.FechaInicio, input.FechaFin)
	if err != nil {
		return nil, err
	}

	if err := s.checkColas(ctx, input.ColaIDs); err != nil {
		return nil, err
	}

	evento := &models.Evento{
		Tipo:        input.Tipo,
		Nombre:      nombre,
		Descripcion: input.Descripcion,
		FechaInicio: inicio,
		FechaFin:    fin,
	}

	if err := s.eventoRepo.Create(ctx, evento, input.ColaIDs); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEventoNombreTaken
		}
		return nil, err
	}
	return s.eventoRepo.GetByID(ctx, evento.ID)
}

// GetByID returns an event with its associated queues
func (s *EventoService) GetByID(ctx context.Context, id uint) (*models.Evento, error) {
	evento, err := s.eventoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventoNotFound
		}
		return nil, err
	}
	return evento, nil
}

// List returns events with pagination
func (s *EventoService) List(ctx context.Context, offset, limit int) ([]models.Evento, int64, error) {
	return s.eventoRepo.List(ctx, offset, limit)
}

// UpdateEventoInput represents an event patch request
type UpdateEventoInput struct {
	Tipo        *string `json:"tipo"`
	Nombre      *string `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	FechaInicio *string `json:"fecha_inicio"`
	FechaFin    *string `json:"fecha_fin"`
	ColaIDs     []uint  `json:"cola_ids"`
}

// Update patches event fields; when cola_ids is present the join rows
// are replaced wholesale.
func (s *EventoService) Update(ctx context.Context, id uint, input *UpdateEventoInput) (*models.Evento, error) {
	evento, err := s.eventoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventoNotFound
		}
		return nil, err
	}

	if input.Tipo != nil {
		if !validTipoEvento(*input.Tipo) {
			return nil, ErrInvalidTipoEvento
		}
		evento.Tipo = *input.Tipo
	}
	if input.Nombre != nil {
		nombre := strings.TrimSpace(*input.Nombre)
		if nombre == "" {
			return nil, ErrEventoNombreEmpty
		}
		evento.Nombre = nombre
	}
	if input.Descripcion != nil {
		evento.Descripcion = *input.Descripcion
	}
	if input.FechaInicio != nil {
		t, err := time.Parse(fechaLayout, *input.FechaInicio)
		if err != nil {
			return nil, ErrInvalidFechas
		}
		evento.FechaInicio = t
	}
	if input.FechaFin != nil {
		t, err := time.Parse(fechaLayout, *input.FechaFin)
		if err != nil {
			return nil, ErrInvalidFechas
		}
		evento.FechaFin = t
	}
	if evento.FechaFin.Before(evento.FechaInicio) {
		return nil, ErrInvalidFechas
	}

	if input.ColaIDs != nil {
		if err := s.checkColas(ctx, input.ColaIDs); err != nil {
			return nil, err
		}
	}

	if err := s.eventoRepo.Update(ctx, evento, input.ColaIDs); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEventoNombreTaken
		}
		return nil, err
	}
	return s.eventoRepo.GetByID(ctx, evento.ID)
}

// Delete removes an event and its join rows
func (s *EventoService) Delete(ctx context.Context, id uint) error {
	if _, err := s.eventoRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventoNotFound
		}
		return err
	}
	return s.eventoRepo.Delete(ctx, id)
}

func (s *EventoService) checkColas(ctx context.Context, colaIDs []uint) error {
	for _, colaID := range colaIDs {
		if _, err := s.colaRepo.GetByID(ctx, colaID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrColaNotFound
			}
			return err
		}
	}
	return nil
}

func parseFechas(inicioStr, finStr string) (time.Time, time.Time, error) {
	inicio, err := time.Parse(fechaLayout, inicioStr)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidFechas
	}
	fin, err := time.Parse(fechaLayout, finStr)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidFechas
	}
	if fin.Before(inicio) {
		return time.Time{}, time.Time{}, ErrInvalidFechas
	}
	return inicio, fin, nil
}
