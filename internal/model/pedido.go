package model

import (
	"time"

	"github.com/google/uuid"
)

// Pedido is a customer sales order. It carries two independent status axes:
// Status tracks fulfilment ("Pendiente" | "En Proceso" | "Finalizado") and
// ApprovalStatus tracks the compras approval decision
// ("Pendiente" | "Aprobado" | "Rechazado").
type Pedido struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClientName      string    `gorm:"not null"`
	Description     string
	ImageURL        *string
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status          string     `gorm:"type:varchar(20);not null;default:'Pendiente'"`
	ApprovalStatus  string     `gorm:"type:varchar(20);not null;default:'Pendiente'"`
	ApprovedBy      *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt      *time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Usuario *Usuario     `gorm:"foreignKey:UserID"`
	Items   []PedidoItem `gorm:"foreignKey:PedidoID"`
}

// PedidoItem links a pedido to an articulo. StockDisponible is a snapshot of
// the articulo's stock taken at creation time — it is never updated afterwards.
type PedidoItem struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PedidoID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ArticuloID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Cantidad        int       `gorm:"not null"`
	StockDisponible int       `gorm:"not null"`
	CreatedAt       time.Time

	Articulo *Articulo `gorm:"foreignKey:ArticuloID"`
}

// TableName keeps the historical table name used by the frontend queries.
func (PedidoItem) TableName() string { return "pedidos_items" }
