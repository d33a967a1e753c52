package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearArticuloRequest struct {
	Codigo      string           `json:"codigo"       validate:"required,min=1,max=60"`
	Descripcion string           `json:"descripcion"  validate:"required,min=2,max=200"`
	Sector      string           `json:"sector"`
	Stock       *int             `json:"stock"        validate:"omitempty,min=0"`
	StockMinimo *int             `json:"stock_minimo" validate:"omitempty,min=0"`
	Precio      *decimal.Decimal `json:"precio"`
	Imagen      *string          `json:"imagen"`
}

// ActualizarArticuloRequest is the explicit allow-list for partial updates:
// only these columns can ever be written, regardless of what the client sends.
type ActualizarArticuloRequest struct {
	ID          string           `json:"id"           validate:"required,uuid"`
	Codigo      *string          `json:"codigo"       validate:"omitempty,min=1,max=60"`
	Descripcion *string          `json:"descripcion"  validate:"omitempty,min=2,max=200"`
	Sector      *string          `json:"sector"`
	Stock       *int             `json:"stock"        validate:"omitempty,min=0"`
	StockMinimo *int             `json:"stock_minimo" validate:"omitempty,min=0"`
	Precio      *decimal.Decimal `json:"precio"`
	Imagen      *string          `json:"imagen"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type ArticuloFilter struct {
	Search string `form:"search"`
	Sector string `form:"sector"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ArticuloResponse struct {
	ID          string          `json:"id"`
	Codigo      string          `json:"codigo"`
	Descripcion string          `json:"descripcion"`
	Sector      string          `json:"sector"`
	Stock       int             `json:"stock"`
	StockMinimo int             `json:"stock_minimo"`
	Precio      decimal.Decimal `json:"precio"`
	Imagen      *string         `json:"imagen"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}
