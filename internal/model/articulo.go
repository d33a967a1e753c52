package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Articulo is a stock-keeping unit. Stock is mutated by direct edits and by
// purchase-order completion; sales-order creation only reads it to compute
// the shortfall snapshot.
type Articulo struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Codigo      string          `gorm:"index;not null"`
	Descripcion string          `gorm:"index;not null"`
	Sector      string          `gorm:"index"`
	Stock       int             `gorm:"not null;default:100"`
	StockMinimo int             `gorm:"not null;default:10"`
	Precio      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Imagen      *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides GORM's default pluralization (articulos, not articuloes).
func (Articulo) TableName() string { return "articulos" }
