package repository

import (
	"context"
	"time"

	"github.com/webplotcentersj-hash/stock2/internal/dto"
	"github.com/webplotcentersj-hash/stock2/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CajaRepository defines the data access contract for the cash ledger.
type CajaRepository interface {
	Create(ctx context.Context, m *model.MovimientoCaja) error
	// List returns the most recent movements matching the filter, capped at limit.
	List(ctx context.Context, filter dto.MovimientoFilter, limit int) ([]model.MovimientoCaja, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// SumByTipo aggregates SUM(monto) grouped by tipo, optionally restricted to
	// rows created at or after `since`. Aggregation happens in SQL — the full
	// ledger is never loaded into memory.
	SumByTipo(ctx context.Context, since *time.Time) (map[string]decimal.Decimal, error)
}

type cajaRepo struct{ db *gorm.DB }

func NewCajaRepository(db *gorm.DB) CajaRepository { return &cajaRepo{db: db} }

func (r *cajaRepo) Create(ctx context.Context, m *model.MovimientoCaja) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *cajaRepo) List(ctx context.Context, filter dto.MovimientoFilter, limit int) ([]model.MovimientoCaja, error) {
	var movs []model.MovimientoCaja

	q := r.db.WithContext(ctx).Model(&model.MovimientoCaja{}).Preload("Usuario")
	if filter.Tipo != "" && filter.Tipo != "all" {
		q = q.Where("tipo = ?", filter.Tipo)
	}
	if filter.FechaDesde != "" {
		q = q.Where("created_at >= ?", filter.FechaDesde)
	}
	if filter.FechaHasta != "" {
		q = q.Where("created_at <= ?", filter.FechaHasta)
	}

	err := q.Order("created_at DESC").Limit(limit).Find(&movs).Error
	return movs, err
}

func (r *cajaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.MovimientoCaja{}, "id = ?", id).Error
}

func (r *cajaRepo) SumByTipo(ctx context.Context, since *time.Time) (map[string]decimal.Decimal, error) {
	type row struct {
		Tipo  string
		Total decimal.Decimal
	}
	var rows []row

	q := r.db.WithContext(ctx).Model(&model.MovimientoCaja{}).
		Select("tipo, COALESCE(SUM(monto), 0) AS total").
		Group("tipo")
	if since != nil {
		q = q.Where("created_at >= ?", *since)
	}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}

	sums := map[string]decimal.Decimal{
		"Ingreso": decimal.Zero,
		"Egreso":  decimal.Zero,
	}
	for _, r := range rows {
		sums[r.Tipo] = r.Total
	}
	return sums, nil
}
