package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearOrdenCompraRequest struct {
	ArticuloID    string `json:"articulo_id"   validate:"required,uuid"`
	Cantidad      int    `json:"cantidad"      validate:"required,gt=0"`
	Proveedor     string `json:"proveedor"`
	Observaciones string `json:"observaciones"`
}

// ActualizarOrdenCompraRequest allow-lists the mutable orden columns.
type ActualizarOrdenCompraRequest struct {
	ID            string  `json:"id"            validate:"required,uuid"`
	Cantidad      *int    `json:"cantidad"      validate:"omitempty,gt=0"`
	Proveedor     *string `json:"proveedor"`
	Observaciones *string `json:"observaciones"`
	Status        *string `json:"status"        validate:"omitempty,oneof=Pendiente 'En Proceso' Completada Cancelada"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type OrdenCompraFilter struct {
	Status string `form:"status"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SolicitanteResumen struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type OrdenCompraResponse struct {
	ID            string              `json:"id"`
	ArticuloID    string              `json:"articulo_id"`
	Cantidad      int                 `json:"cantidad"`
	Proveedor     string              `json:"proveedor"`
	Observaciones string              `json:"observaciones"`
	PedidoID      *string             `json:"pedido_id"`
	Status        string              `json:"status"`
	CreatedAt     string              `json:"created_at"`
	UpdatedAt     string              `json:"updated_at"`
	Articulo      *ArticuloResumen    `json:"articulo"`
	SolicitadoPor *SolicitanteResumen `json:"solicitado_por"`
}
