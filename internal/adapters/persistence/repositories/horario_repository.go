package repositories

import (
	"context"

	"smartlining-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// HorarioRepository handles weekly schedule database operations
type HorarioRepository struct {
	db *gorm.DB
}

// NewHorarioRepository creates a new schedule repository
func NewHorarioRepository(db *gorm.DB) *HorarioRepository {
	return &HorarioRepository{db: db}
}

// Create inserts a schedule entry. The composite unique index on
// (id_cola, dia_semana) rejects a second window for the same weekday.
func (r *HorarioRepository) Create(ctx context.Context, horario *models.HorarioCola) error {
	return r.db.WithContext(ctx).Create(horario).Error
}

// GetByID returns a schedule entry
func (r *HorarioRepository) GetByID(ctx context.Context, id uint) (*models.HorarioCola, error) {
	var horario models.HorarioCola
	err := r.db.WithContext(ctx).Where("id_horario = ?", id).First(&horario).Error
	if err != nil {
		return nil, err
	}
	return &horario, nil
}

// ListByCola returns all schedule entries for a queue
func (r *HorarioRepository) ListByCola(ctx context.Context, colaID uint) ([]models.HorarioCola, error) {
	var horarios []models.HorarioCola
	err := r.db.WithContext(ctx).
		Where("id_cola = ?", colaID).
		Order("FIELD(dia_semana, 'LUNES','MARTES','MIERCOLES','JUEVES','VIERNES','SABADO','DOMINGO')").
		Find(&horarios).Error
	return horarios, err
}

// Update saves a schedule entry
func (r *HorarioRepository) Update(ctx context.Context, horario *models.HorarioCola) error {
	return r.db.WithContext(ctx).Save(horario).Error
}

// Delete removes a schedule entry
func (r *HorarioRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.HorarioCola{}, "id_horario = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
