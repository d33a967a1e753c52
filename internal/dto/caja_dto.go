package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearMovimientoRequest struct {
	Tipo          string          `json:"tipo"        validate:"required,oneof=Ingreso Egreso"`
	Categoria     string          `json:"categoria"`
	Concepto      string          `json:"concepto"    validate:"required,min=2"`
	Monto         decimal.Decimal `json:"monto"       validate:"required,gt=0"`
	MetodoPago    string          `json:"metodo_pago"`
	Observaciones string          `json:"observaciones"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type MovimientoFilter struct {
	Tipo       string `form:"tipo"`
	FechaDesde string `form:"fecha_desde"`
	FechaHasta string `form:"fecha_hasta"`
	Summary    bool   `form:"summary"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MovimientoResponse struct {
	ID            string              `json:"id"`
	Tipo          string              `json:"tipo"`
	Categoria     string              `json:"categoria"`
	Concepto      string              `json:"concepto"`
	Monto         decimal.Decimal     `json:"monto"`
	MetodoPago    string              `json:"metodo_pago"`
	Observaciones string              `json:"observaciones"`
	UserID        string              `json:"user_id"`
	Usuario       *SolicitanteResumen `json:"usuario"`
	CreatedAt     string              `json:"created_at"`
}

type ResumenCaja struct {
	TotalIngresos decimal.Decimal `json:"total_ingresos"`
	TotalEgresos  decimal.Decimal `json:"total_egresos"`
	SaldoActual   decimal.Decimal `json:"saldo_actual"`
}

type ResumenHoy struct {
	Ingreso decimal.Decimal `json:"Ingreso"`
	Egreso  decimal.Decimal `json:"Egreso"`
}

type ResumenCajaResponse struct {
	Resumen ResumenCaja `json:"resumen"`
	Hoy     ResumenHoy  `json:"hoy"`
}
