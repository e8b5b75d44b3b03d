package repositories

import (
	"context"

	"smartlining-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// valoracionRepository implements ValoracionRepository
type valoracionRepository struct {
	db *gorm.DB
}

// NewValoracionRepository creates a new rating repository
func NewValoracionRepository(db *gorm.DB) ValoracionRepository {
	return &valoracionRepository{db: db}
}

// Create inserts a rating. The unique index on id_turno rejects a
// second rating for the same ticket with gorm.ErrDuplicatedKey.
func (r *valoracionRepository) Create(ctx context.Context, valoracion *models.Valoracion) error {
	return r.db.WithContext(ctx).Create(valoracion).Error
}

func (r *valoracionRepository) GetByID(ctx context.Context, id uint) (*models.Valoracion, error) {
	var valoracion models.Valoracion
	err := r.db.WithContext(ctx).Where("id_valoracion = ?", id).First(&valoracion).Error
	if err != nil {
		return nil, err
	}
	return &valoracion, nil
}

func (r *valoracionRepository) GetByTurnoID(ctx context.Context, turnoID uint) (*models.Valoracion, error) {
	var valoracion models.Valoracion
	err := r.db.WithContext(ctx).Where("id_turno = ?", turnoID).First(&valoracion).Error
	if err != nil {
		return nil, err
	}
	return &valoracion, nil
}

func (r *valoracionRepository) Update(ctx context.Context, valoracion *models.Valoracion) error {
	return r.db.WithContext(ctx).Save(valoracion).Error
}

func (r *valoracionRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Valoracion{}, "id_valoracion = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *valoracionRepository) List(ctx context.Context, offset, limit int) ([]models.Valoracion, int64, error) {
	var valoraciones []models.Valoracion
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Valoracion{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("fecha_valoracion DESC").
		Offset(offset).Limit(limit).
		Find(&valoraciones).Error
	if err != nil {
		return nil, 0, err
	}

	return valoraciones, total, nil
}
