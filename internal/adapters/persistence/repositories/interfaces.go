package repositories

import (
	"context"

	"smartlining-api/internal/adapters/persistence/models"
)

// UsuarioRepository defines account repository operations
type UsuarioRepository interface {
	Create(ctx context.Context, usuario *models.Usuario) error
	GetByID(ctx context.Context, id uint) (*models.Usuario, error)
	GetByEmail(ctx context.Context, email string) (*models.Usuario, error)
	Update(ctx context.Context, usuario *models.Usuario) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*models.Usuario, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// RefreshTokenRepository defines refresh token repository operations
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// ClienteRepository defines customer repository operations
type ClienteRepository interface {
	Create(ctx context.Context, cliente *models.Cliente) error
	GetByID(ctx context.Context, id uint) (*models.Cliente, error)
}

// ColaRepository defines queue repository operations
type ColaRepository interface {
	Create(ctx context.Context, cola *models.Cola) error
	GetByID(ctx context.Context, id uint) (*models.Cola, error)
	GetByNombre(ctx context.Context, nombre string) (*models.Cola, error)
	List(ctx context.Context, offset, limit int) ([]models.Cola, int64, error)
	ListActivas(ctx context.Context, offset, limit int) ([]models.Cola, int64, error)
	Update(ctx context.Context, cola *models.Cola) error
	Delete(ctx context.Context, id uint) error
}

// TurnoRepository defines ticket repository operations.
// CreateNext assigns the per-queue sequential number inside a
// transaction that serializes concurrent creations for the same queue.
type TurnoRepository interface {
	CreateNext(ctx context.Context, colaID, clienteID uint) (*models.Turno, error)
	GetByID(ctx context.Context, id uint) (*models.Turno, error)
	GetByIDWithDetails(ctx context.Context, id uint) (*models.Turno, error)
	List(ctx context.Context, filter TurnoFilter, offset, limit int) ([]models.Turno, int64, error)
	ListActivos(ctx context.Context, colaID uint) ([]models.Turno, error)
	Update(ctx context.Context, turno *models.Turno) error
	Delete(ctx context.Context, id uint) error
	CancelWaiting(ctx context.Context) (int64, error)
}

// TurnoFilter narrows ticket listings
type TurnoFilter struct {
	Estado    string
	ColaID    uint
	ClienteID uint
}

// AtencionRepository defines attention record repository operations
type AtencionRepository interface {
	CreateAndFinalize(ctx context.Context, atencion *models.Atencion) error
	GetByID(ctx context.Context, id uint) (*models.Atencion, error)
	GetByTurnoID(ctx context.Context, turnoID uint) (*models.Atencion, error)
	Update(ctx context.Context, atencion *models.Atencion) error
	List(ctx context.Context, offset, limit int) ([]models.Atencion, int64, error)
}

// ValoracionRepository defines rating repository operations
type ValoracionRepository interface {
	Create(ctx context.Context, valoracion *models.Valoracion) error
	GetByID(ctx context.Context, id uint) (*models.Valoracion, error)
	GetByTurnoID(ctx context.Context, turnoID uint) (*models.Valoracion, error)
	Update(ctx context.Context, valoracion *models.Valoracion) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]models.Valoracion, int64, error)
}
