package repositories

import (
	"context"

	"smartlining-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// clienteRepository implements ClienteRepository
type clienteRepository struct {
	db *gorm.DB
}

// NewClienteRepository creates a new customer repository
func NewClienteRepository(db *gorm.DB) ClienteRepository {
	return &clienteRepository{db: db}
}

func (r *clienteRepository) Create(ctx context.Context, cliente *models.Cliente) error {
	return r.db.WithContext(ctx).Create(cliente).Error
}

func (r *clienteRepository) GetByID(ctx context.Context, id uint) (*models.Cliente, error) {
	var cliente models.Cliente
	err := r.db.WithContext(ctx).Where("id_cliente = ?", id).First(&cliente).Error
	if err != nil {
		return nil, err
	}
	return &cliente, nil
}
