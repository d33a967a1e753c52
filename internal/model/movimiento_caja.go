package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovimientoCaja is an entry in the cash ledger.
// Tipo: "Ingreso" | "Egreso". Append-mostly: entries are never updated and
// only administración may delete them.
type MovimientoCaja struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Tipo          string          `gorm:"type:varchar(10);not null;index"`
	Categoria     string          `gorm:"not null;default:'General'"`
	Concepto      string          `gorm:"not null"`
	Monto         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	MetodoPago    string          `gorm:"type:varchar(30);not null;default:'Efectivo'"`
	Observaciones string
	UserID        uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt     time.Time `gorm:"index"`

	Usuario *Usuario `gorm:"foreignKey:UserID"`
}

// TableName overrides GORM's pluralization (movimiento_cajas → movimientos_caja).
func (MovimientoCaja) TableName() string { return "movimientos_caja" }
