package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"smartlining-api/internal/adapters/persistence/models"
	"smartlining-api/internal/adapters/persistence/repositories"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// TiempoPromedioPorTurno is the assumed minutes of service per ticket.
// The estimate is a static heuristic, not derived from history.
const TiempoPromedioPorTurno = 5

// queueInfoCacheTTL keeps cached snapshots fresher than the SPA's 3s
// polling interval.
const queueInfoCacheTTL = 2 * time.Second

// QueueInfoService computes queue position and wait estimates
type QueueInfoService struct {
	colaRepo  repositories.ColaRepository
	turnoRepo repositories.TurnoRepository
	cache     *redis.Client
}

// NewQueueInfoService creates a new estimator service. cache may be
// nil; the service then always reads from the database.
func NewQueueInfoService(
	colaRepo repositories.ColaRepository,
	turnoRepo repositories.TurnoRepository,
	cache *redis.Client,
) *QueueInfoService {
	return &QueueInfoService{
		colaRepo:  colaRepo,
		turnoRepo: turnoRepo,
		cache:     cache,
	}
}

// QueueSummary is the queue header of a queue-info response
type QueueSummary struct {
	ID          uint   `json:"id_cola"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Activa      bool   `json:"activa"`
}

// TurnoActual identifies the ticket currently being served
type TurnoActual struct {
	ID     uint `json:"id_turno"`
	Numero int  `json:"numero"`
}

// QueueStats summarizes the active tickets of a queue
type QueueStats struct {
	TotalEnEspera   int          `json:"totalEnEspera"`
	TotalEnAtencion int          `json:"totalEnAtencion"`
	TurnoActual     *TurnoActual `json:"turnoActual"`
}

// UserQueueInfo is the caller's own position within the queue
type UserQueueInfo struct {
	TurnoID               uint   `json:"turnoId"`
	NumeroDeTurno         int    `json:"numeroDeTurno"`
	Estado                string `json:"estado"`
	MiPosicion            int    `json:"miPosicion"`
	TiempoEstimadoMinutos int    `json:"tiempoEstimadoMinutos"`
}

// QueueInfo is the full queue-info response payload
type QueueInfo struct {
	Queue    QueueSummary   `json:"queue"`
	Stats    QueueStats     `json:"stats"`
	UserInfo *UserQueueInfo `json:"userInfo"`
}

// Get returns queue stats and, when turnoID is nonzero, the position
// and wait estimate for that ticket. Snapshots are served from redis
// for the polling hot path when a cache client is configured.
func (s *QueueInfoService) Get(ctx context.Context, colaID, turnoID uint) (*QueueInfo, error) {
	cacheKey := fmt.Sprintf("queue-info:%d:%d", colaID, turnoID)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Bytes(); err == nil {
			var info QueueInfo
			if err := json.Unmarshal(cached, &info); err == nil {
				return &info, nil
			}
		}
	}

	cola, err := s.colaRepo.GetByID(ctx, colaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrColaNotFound
		}
		return nil, err
	}

	activos, err := s.turnoRepo.ListActivos(ctx, colaID)
	if err != nil {
		return nil, err
	}

	var miTurno *models.Turno
	if turnoID != 0 {
		miTurno, err = s.turnoRepo.GetByID(ctx, turnoID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	info := ComputeQueueInfo(cola, activos, miTurno)

	if s.cache != nil {
		if payload, err := json.Marshal(info); err == nil {
			s.cache.Set(ctx, cacheKey, payload, queueInfoCacheTTL)
		}
	}

	return info, nil
}

// ComputeQueueInfo derives stats and the caller's position from the
// active tickets of a queue, ordered by creation time ascending.
//
// Position counts waiting tickets created at or before the target's
// creation time, so the target counts itself; the estimate is
// (position-1) * TiempoPromedioPorTurno minutes. A target ticket that
// does not belong to the queue yields a nil UserInfo.
func ComputeQueueInfo(cola *models.Cola, activos []models.Turno, miTurno *models.Turno) *QueueInfo {
	stats := QueueStats{}
	var enEspera []models.Turno

	for _, t := range activos {
		switch t.Estado {
		case models.EstadoEnAtencion:
			stats.TotalEnAtencion++
			if stats.TurnoActual == nil {
				stats.TurnoActual = &TurnoActual{ID: t.ID, Numero: t.NumeroTurno}
			}
		case models.EstadoEnEspera:
			stats.TotalEnEspera++
			enEspera = append(enEspera, t)
		}
	}

	info := &QueueInfo{
		Queue: QueueSummary{
			ID:          cola.ID,
			Nombre:      cola.Nombre,
			Descripcion: cola.Descripcion,
			Activa:      cola.Activa,
		},
		Stats: stats,
	}

	if miTurno == nil || miTurno.ColaID != cola.ID {
		return info
	}

	posicion := 0
	for _, t := range enEspera {
		if !t.FechaHoraCreacion.After(miTurno.FechaHoraCreacion) {
			posicion++
		}
	}

	tiempoEstimado := 0
	if posicion > 0 {
		tiempoEstimado = (posicion - 1) * TiempoPromedioPorTurno
	}

	info.UserInfo = &UserQueueInfo{
		TurnoID:               miTurno.ID,
		NumeroDeTurno:         miTurno.NumeroTurno,
		Estado:                miTurno.Estado,
		MiPosicion:            posicion,
		TiempoEstimadoMinutos: tiempoEstimado,
	}

	return info
}
