package services

import (
	"context"
	"errors"

	"smartlining-api/internal/adapters/persistence/models"
	"smartlining-api/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// ClienteService registers anonymous customers joining via QR
type ClienteService struct {
	clienteRepo repositories.ClienteRepository
}

// NewClienteService creates a new customer service
func NewClienteService(clienteRepo repositories.ClienteRepository) *ClienteService {
	return &ClienteService{clienteRepo: clienteRepo}
}

// Create registers a customer; origen defaults to QR
func (s *ClienteService) Create(ctx context.Context, origen string) (*models.Cliente, error) {
	cliente := &models.Cliente{}
	if origen != "" {
		cliente.Origen = origen
	}
	if err := s.clienteRepo.Create(ctx, cliente); err != nil {
		return nil, err
	}
	return cliente, nil
}

// GetByID returns a customer
func (s *ClienteService) GetByID(ctx context.Context, id uint) (*models.Cliente, error) {
	cliente, err := s.clienteRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClienteNotFound
		}
		return nil, err
	}
	return cliente, nil
}
