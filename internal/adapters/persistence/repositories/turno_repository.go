package repositories

import (
	"context"
	"errors"

	"smartlining-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// createRetries bounds the duplicate-key retry loop in CreateNext.
const createRetries = 3

// turnoRepository implements TurnoRepository
type turnoRepository struct {
	db *gorm.DB
}

// NewTurnoRepository creates a new ticket repository
func NewTurnoRepository(db *gorm.DB) TurnoRepository {
	return &turnoRepository{db: db}
}

// CreateNext inserts a ticket with the next sequential number for the
// queue. The parent queue row is locked for the duration of the
// transaction so concurrent joins to the same queue serialize; the
// composite unique index on (id_cola, numero_turno) backstops the lock
// and any duplicate-key conflict is retried.
func (r *turnoRepository) CreateNext(ctx context.Context, colaID, clienteID uint) (*models.Turno, error) {
	var turno *models.Turno
	var err error

	for attempt := 0; attempt < createRetries; attempt++ {
		turno, err = r.createNextOnce(ctx, colaID, clienteID)
		if err == nil {
			return turno, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}
	return nil, err
}

func (r *turnoRepository) createNextOnce(ctx context.Context, colaID, clienteID uint) (*models.Turno, error) {
	turno := &models.Turno{
		ColaID:    colaID,
		ClienteID: clienteID,
		Estado:    models.EstadoEnEspera,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cola models.Cola
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id_cola = ?", colaID).
			First(&cola).Error; err != nil {
			return err
		}

		var lastNumero int
		if err := tx.Model(&models.Turno{}).
			Where("id_cola = ?", colaID).
			Select("COALESCE(MAX(numero_turno), 0)").
			Scan(&lastNumero).Error; err != nil {
			return err
		}

		turno.NumeroTurno = lastNumero + 1
		return tx.Create(turno).Error
	})
	if err != nil {
		return nil, err
	}
	return turno, nil
}

func (r *turnoRepository) GetByID(ctx context.Context, id uint) (*models.Turno, error) {
	var turno models.Turno
	err := r.db.WithContext(ctx).Where("id_turno = ?", id).First(&turno).Error
	if err != nil {
		return nil, err
	}
	return &turno, nil
}

func (r *turnoRepository) GetByIDWithDetails(ctx context.Context, id uint) (*models.Turno, error) {
	var turno models.Turno
	err := r.db.WithContext(ctx).
		Preload("Cola").
		Preload("Cliente").
		Preload("Atencion").
		Preload("Valoracion").
		Where("id_turno = ?", id).
		First(&turno).Error
	if err != nil {
		return nil, err
	}
	return &turno, nil
}

func (r *turnoRepository) List(ctx context.Context, filter TurnoFilter, offset, limit int) ([]models.Turno, int64, error) {
	var turnos []models.Turno
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Turno{})
	order := "fecha_hora_creacion DESC"

	if filter.Estado != "" {
		query = query.Where("estado = ?", filter.Estado)
	}
	if filter.ColaID != 0 {
		query = query.Where("id_cola = ?", filter.ColaID)
		order = "numero_turno DESC"
	}
	if filter.ClienteID != 0 {
		query = query.Where("id_cliente = ?", filter.ClienteID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order(order).Offset(offset).Limit(limit).Find(&turnos).Error
	if err != nil {
		return nil, 0, err
	}

	return turnos, total, nil
}

// ListActivos returns waiting and in-service tickets for a queue,
// oldest first. Input for the position estimator.
func (r *turnoRepository) ListActivos(ctx context.Context, colaID uint) ([]models.Turno, error) {
	var turnos []models.Turno
	err := r.db.WithContext(ctx).
		Where("id_cola = ? AND estado IN ?", colaID,
			[]string{models.EstadoEnEspera, models.EstadoEnAtencion}).
		Order("fecha_hora_creacion ASC").
		Find(&turnos).Error
	return turnos, err
}

func (r *turnoRepository) Update(ctx context.Context, turno *models.Turno) error {
	return r.db.WithContext(ctx).Save(turno).Error
}

func (r *turnoRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Turno{}, "id_turno = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CancelWaiting cancels every ticket still waiting. Run at end of day
// by the cron service so stale tickets do not leak into the next day.
func (r *turnoRepository) CancelWaiting(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Turno{}).
		Where("estado = ?", models.EstadoEnEspera).
		Update("estado", models.EstadoCancelado)
	return result.RowsAffected, result.Error
}
