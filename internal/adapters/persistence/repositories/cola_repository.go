package repositories

import (
	"context"

	"smartlining-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// colaRepository implements ColaRepository
type colaRepository struct {
	db *gorm.DB
}

// NewColaRepository creates a new queue repository
func NewColaRepository(db *gorm.DB) ColaRepository {
	return &colaRepository{db: db}
}

func (r *colaRepository) Create(ctx context.Context, cola *models.Cola) error {
	return r.db.WithContext(ctx).Create(cola).Error
}

func (r *colaRepository) GetByID(ctx context.Context, id uint) (*models.Cola, error) {
	var cola models.Cola
	err := r.db.WithContext(ctx).
		Preload("Horarios").
		Where("id_cola = ?", id).
		First(&cola).Error
	if err != nil {
		return nil, err
	}
	return &cola, nil
}

func (r *colaRepository) GetByNombre(ctx context.Context, nombre string) (*models.Cola, error) {
	var cola models.Cola
	err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&cola).Error
	if err != nil {
		return nil, err
	}
	return &cola, nil
}

func (r *colaRepository) List(ctx context.Context, offset, limit int) ([]models.Cola, int64, error) {
	var colas []models.Cola
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Cola{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("id_cola ASC").
		Offset(offset).Limit(limit).
		Find(&colas).Error
	if err != nil {
		return nil, 0, err
	}

	return colas, total, nil
}

func (r *colaRepository) ListActivas(ctx context.Context, offset, limit int) ([]models.Cola, int64, error) {
	var colas []models.Cola
	var total int64

	base := r.db.WithContext(ctx).Model(&models.Cola{}).Where("activa = ?", true)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Where("activa = ?", true).
		Order("id_cola ASC").
		Offset(offset).Limit(limit).
		Find(&colas).Error
	if err != nil {
		return nil, 0, err
	}

	return colas, total, nil
}

func (r *colaRepository) Update(ctx context.Context, cola *models.Cola) error {
	return r.db.WithContext(ctx).Save(cola).Error
}

func (r *colaRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Cola{}, "id_cola = ?", id).Error
}
