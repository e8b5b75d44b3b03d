package repositories

import (
	"context"
	"time"

	"smartlining-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// atencionRepository implements AtencionRepository
type atencionRepository struct {
	db *gorm.DB
}

// NewAtencionRepository creates a new attention repository
func NewAtencionRepository(db *gorm.DB) AtencionRepository {
	return &atencionRepository{db: db}
}

// CreateAndFinalize inserts the attention record and moves the ticket
// to its terminal state in one transaction, so the two writes cannot
// diverge when one of them fails.
func (r *atencionRepository) CreateAndFinalize(ctx context.Context, atencion *models.Atencion) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(atencion).Error; err != nil {
			return err
		}

		estado := models.EstadoFinalizado
		if atencion.Resultado == models.ResultadoCancelado {
			estado = models.EstadoCancelado
		}

		now := time.Now()
		return tx.Model(&models.Turno{}).
			Where("id_turno = ?", atencion.TurnoID).
			Updates(map[string]interface{}{
				"estado":                  estado,
				"fecha_hora_fin_atencion": now,
			}).Error
	})
}

func (r *atencionRepository) GetByID(ctx context.Context, id uint) (*models.Atencion, error) {
	var atencion models.Atencion
	err := r.db.WithContext(ctx).
		Preload("Turno").
		Preload("Empleado").
		Where("id_atencion = ?", id).
		First(&atencion).Error
	if err != nil {
		return nil, err
	}
	return &atencion, nil
}

func (r *atencionRepository) GetByTurnoID(ctx context.Context, turnoID uint) (*models.Atencion, error) {
	var atencion models.Atencion
	err := r.db.WithContext(ctx).Where("id_turno = ?", turnoID).First(&atencion).Error
	if err != nil {
		return nil, err
	}
	return &atencion, nil
}

func (r *atencionRepository) Update(ctx context.Context, atencion *models.Atencion) error {
	return r.db.WithContext(ctx).Save(atencion).Error
}

func (r *atencionRepository) List(ctx context.Context, offset, limit int) ([]models.Atencion, int64, error) {
	var atenciones []models.Atencion
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Atencion{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Empleado").
		Order("id_atencion DESC").
		Offset(offset).Limit(limit).
		Find(&atenciones).Error
	if err != nil {
		return nil, 0, err
	}

	return atenciones, total, nil
}
