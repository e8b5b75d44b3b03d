package repositories

import (
	"context"

	"smartlining-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// usuarioRepository implements UsuarioRepository
type usuarioRepository struct {
	db *gorm.DB
}

// NewUsuarioRepository creates a new account repository
func NewUsuarioRepository(db *gorm.DB) UsuarioRepository {
	return &usuarioRepository{db: db}
}

func (r *usuarioRepository) Create(ctx context.Context, usuario *models.Usuario) error {
	return r.db.WithContext(ctx).Create(usuario).Error
}

func (r *usuarioRepository) GetByID(ctx context.Context, id uint) (*models.Usuario, error) {
	var usuario models.Usuario
	err := r.db.WithContext(ctx).Where("id_usuario = ?", id).First(&usuario).Error
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepository) GetByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	var usuario models.Usuario
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&usuario).Error
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepository) Update(ctx context.Context, usuario *models.Usuario) error {
	return r.db.WithContext(ctx).Save(usuario).Error
}

// Delete soft deletes an account
func (r *usuarioRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Usuario{}, id).Error
}

func (r *usuarioRepository) List(ctx context.Context, offset, limit int) ([]*models.Usuario, int64, error) {
	var usuarios []*models.Usuario
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Usuario{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("id_usuario ASC").
		Offset(offset).Limit(limit).
		Find(&usuarios).Error
	if err != nil {
		return nil, 0, err
	}

	return usuarios, total, nil
}

func (r *usuarioRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Usuario{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}
