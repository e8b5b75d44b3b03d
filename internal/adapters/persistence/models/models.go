package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Accounts & Auth Tables
// ============================================================

// User roles
const (
	RolAdministrador = "ADMINISTRADOR"
	RolEmpleado      = "EMPLEADO"
)

// Usuario represents an employee or administrator account
type Usuario struct {
	ID            uint           `gorm:"column:id_usuario;primaryKey" json:"id_usuario"`
	Nombre        string         `gorm:"size:100;not null" json:"nombre"`
	Email         string         `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash  string         `gorm:"column:password_hash;size:255;not null" json:"-"`
	Rol           string         `gorm:"size:20;default:'EMPLEADO'" json:"rol"`
	Activo        bool           `gorm:"default:true" json:"activo"`
	FechaCreacion time.Time      `gorm:"autoCreateTime" json:"fecha_creacion"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"-"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Usuario) TableName() string {
	return "usuarios"
}

// UsuarioResponse DTO
type UsuarioResponse struct {
	ID            uint      `json:"id_usuario"`
	Nombre        string    `json:"nombre"`
	Email         string    `json:"email"`
	Rol           string    `json:"rol"`
	Activo        bool      `json:"activo"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

func (u *Usuario) ToResponse() *UsuarioResponse {
	return &UsuarioResponse{
		ID:            u.ID,
		Nombre:        u.Nombre,
		Email:         u.Email,
		Rol:           u.Rol,
		Activo:        u.Activo,
		FechaCreacion: u.FechaCreacion,
	}
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UsuarioID uint       `gorm:"column:id_usuario;index;not null" json:"id_usuario"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	Usuario   Usuario    `gorm:"foreignKey:UsuarioID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// Cliente represents an anonymous customer who joined a queue,
// typically by scanning a QR code.
type Cliente struct {
	ID            uint      `gorm:"column:id_cliente;primaryKey" json:"id_cliente"`
	Origen        string    `gorm:"size:20;default:'QR'" json:"origen"`
	FechaRegistro time.Time `gorm:"autoCreateTime" json:"fecha_registro"`
}

func (Cliente) TableName() string {
	return "clientes"
}
