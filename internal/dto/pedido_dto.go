package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type PedidoItemRequest struct {
	ArticuloID string `json:"articulo_id" validate:"required,uuid"`
	Cantidad   int    `json:"cantidad"    validate:"required,gt=0"`
}

type CrearPedidoRequest struct {
	ClientName  string              `json:"client_name" validate:"required,min=2,max=120"`
	Description string              `json:"description"`
	ImageURL    *string             `json:"image_url"`
	Items       []PedidoItemRequest `json:"items" validate:"dive"`
}

// ActualizarPedidoRequest allow-lists the mutable pedido columns. Approval
// fields (approved_by / approved_at) are stamped server-side, never accepted
// from the request body.
type ActualizarPedidoRequest struct {
	ID              string  `json:"id"              validate:"required,uuid"`
	ClientName      *string `json:"client_name"     validate:"omitempty,min=2,max=120"`
	Description     *string `json:"description"`
	ImageURL        *string `json:"image_url"`
	Status          *string `json:"status"          validate:"omitempty,oneof=Pendiente 'En Proceso' Finalizado"`
	ApprovalStatus  *string `json:"approval_status" validate:"omitempty,oneof=Pendiente Aprobado Rechazado"`
	RejectionReason *string `json:"rejection_reason"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

// "all" (or empty) disables a filter, matching the SPA's query conventions.
type PedidoFilter struct {
	ApprovalStatus string `form:"approval_status"`
	Status         string `form:"status"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PedidoResponse struct {
	ID              string  `json:"id"`
	ClientName      string  `json:"client_name"`
	Description     string  `json:"description"`
	ImageURL        *string `json:"image_url"`
	UserID          string  `json:"user_id"`
	UserName        string  `json:"user_name,omitempty"`
	UserRole        string  `json:"user_role,omitempty"`
	Status          string  `json:"status"`
	ApprovalStatus  string  `json:"approval_status"`
	ApprovedBy      *string `json:"approved_by"`
	ApprovedAt      *string `json:"approved_at"`
	RejectionReason *string `json:"rejection_reason"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

type PedidoItemResponse struct {
	ID              string              `json:"id"`
	PedidoID        string              `json:"pedido_id"`
	ArticuloID      string              `json:"articulo_id"`
	Cantidad        int                 `json:"cantidad"`
	StockDisponible int                 `json:"stock_disponible"`
	Articulo        *ArticuloResumen    `json:"articulo"`
}

// ArticuloResumen carries the live articulo fields joined into item listings.
type ArticuloResumen struct {
	ID          string `json:"id"`
	Codigo      string `json:"codigo"`
	Descripcion string `json:"descripcion"`
	Stock       int    `json:"stock"`
}
