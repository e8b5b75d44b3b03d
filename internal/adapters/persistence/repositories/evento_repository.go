package repositories

import (
	"context"

	"smartlining-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// EventoRepository handles event-related database operations
type EventoRepository struct {
	db *gorm.DB
}

// NewEventoRepository creates a new event repository
func NewEventoRepository(db *gorm.DB) *EventoRepository {
	return &EventoRepository{db: db}
}

// Create inserts an event and its queue associations in one transaction
func (r *EventoRepository) Create(ctx context.Context, evento *models.Evento, colaIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(evento).Error; err != nil {
			return err
		}
		return replaceEventoColas(tx, evento.ID, colaIDs)
	})
}

// GetByID returns an event with its associated queues
func (r *EventoRepository) GetByID(ctx context.Context, id uint) (*models.Evento, error) {
	var evento models.Evento
	err := r.db.WithContext(ctx).Where("id_evento = ?", id).First(&evento).Error
	if err != nil {
		return nil, err
	}
	if err := r.loadColas(ctx, &evento); err != nil {
		return nil, err
	}
	return &evento, nil
}

// GetByNombre returns an event by its unique name
func (r *EventoRepository) GetByNombre(ctx context.Context, nombre string) (*models.Evento, error) {
	var evento models.Evento
	err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&evento).Error
	if err != nil {
		return nil, err
	}
	return &evento, nil
}

// List returns events with pagination, each with its queues attached
func (r *EventoRepository) List(ctx context.Context, offset, limit int) ([]models.Evento, int64, error) {
	var eventos []models.Evento
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Evento{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("fecha_inicio ASC").
		Offset(offset).Limit(limit).
		Find(&eventos).Error
	if err != nil {
		return nil, 0, err
	}

	for i := range eventos {
		if err := r.loadColas(ctx, &eventos[i]); err != nil {
			return nil, 0, err
		}
	}

	return eventos, total, nil
}

// Update saves event fields and replaces its queue associations when
// colaIDs is non-nil
func (r *EventoRepository) Update(ctx context.Context, evento *models.Evento, colaIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(evento).Error; err != nil {
			return err
		}
		if colaIDs == nil {
			return nil
		}
		return replaceEventoColas(tx, evento.ID, colaIDs)
	})
}

// Delete removes an event and its join rows
func (r *EventoRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id_evento = ?", id).Delete(&models.EventoCola{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Evento{}, "id_evento = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *EventoRepository) loadColas(ctx context.Context, evento *models.Evento) error {
	return r.db.WithContext(ctx).
		Joins("JOIN eventos_colas ec ON ec.id_cola = colas.id_cola").
		Where("ec.id_evento = ?", evento.ID).
		Find(&evento.Colas).Error
}

func replaceEventoColas(tx *gorm.DB, eventoID uint, colaIDs []uint) error {
	if err := tx.Where("id_evento = ?", eventoID).Delete(&models.EventoCola{}).Error; err != nil {
		return err
	}
	for _, colaID := range colaIDs {
		join := models.EventoCola{IDEvento: eventoID, IDCola: colaID}
		if err := tx.Create(&join).Error; err != nil {
			return err
		}
	}
	return nil
}
