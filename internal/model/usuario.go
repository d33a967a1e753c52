package model

import (
	"time"

	"github.com/google/uuid"
)

// Usuario stores system users with role-based access.
// Role: "administración" | "compras" | "ventas" (any other value is a plain
// order-creating role with no special privileges).
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"uniqueIndex;not null"`
	Name         string    `gorm:"not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"type:varchar(30);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides GORM's default pluralization (usuarios → users): the
// schema predates this service and all queries target the "users" table.
func (Usuario) TableName() string { return "users" }
