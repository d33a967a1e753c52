package model

import (
	"time"

	"github.com/google/uuid"
)

// Estados de una orden de compra.
const (
	OrdenPendiente  = "Pendiente"
	OrdenEnProceso  = "En Proceso"
	OrdenCompletada = "Completada"
	OrdenCancelada  = "Cancelada"
)

// OrdenCompra is a purchase order raised to replenish stock. Orders created
// automatically during pedido creation carry a back-reference in PedidoID.
// At most one open (Pendiente / En Proceso) order may exist per articulo —
// enforced by a partial unique index, see infra.applySchemaPatches.
type OrdenCompra struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ArticuloID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Cantidad      int       `gorm:"not null"`
	Proveedor     string    `gorm:"not null;default:'Por definir'"`
	Observaciones string
	SolicitadoPor uuid.UUID  `gorm:"type:uuid;not null"`
	PedidoID      *uuid.UUID `gorm:"type:uuid;index"`
	Status        string     `gorm:"type:varchar(20);not null;default:'Pendiente'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Articulo    *Articulo `gorm:"foreignKey:ArticuloID"`
	Solicitante *Usuario  `gorm:"foreignKey:SolicitadoPor"`
}

// TableName overrides GORM's pluralization (orden_compras → ordenes_compra).
func (OrdenCompra) TableName() string { return "ordenes_compra" }
