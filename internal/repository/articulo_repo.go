package repository

import (
	"context"

	"github.com/webplotcentersj-hash/stock2/internal/dto"
	"github.com/webplotcentersj-hash/stock2/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ArticuloRepository defines the data access contract for stock items.
type ArticuloRepository interface {
	Create(ctx context.Context, a *model.Articulo) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Articulo, error)
	List(ctx context.Context, filter dto.ArticuloFilter) ([]model.Articulo, error)
	// UpdateFields applies an allow-listed column map; updated_at is always stamped.
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountStockBajo(ctx context.Context) (int64, error)

	// Used inside transactions — callers pass the tx instance.
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Articulo, error)
	IncrementStockTx(tx *gorm.DB, id uuid.UUID, delta int) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type articuloRepo struct{ db *gorm.DB }

func NewArticuloRepository(db *gorm.DB) ArticuloRepository { return &articuloRepo{db: db} }

func (r *articuloRepo) Create(ctx context.Context, a *model.Articulo) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *articuloRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Articulo, error) {
	var a model.Articulo
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	return &a, err
}

func (r *articuloRepo) List(ctx context.Context, filter dto.ArticuloFilter) ([]model.Articulo, error) {
	var articulos []model.Articulo

	q := r.db.WithContext(ctx).Model(&model.Articulo{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("descripcion ILIKE ? OR codigo ILIKE ?", pattern, pattern)
	}
	if filter.Sector != "" && filter.Sector != "all" {
		q = q.Where("sector = ?", filter.Sector)
	}

	err := q.Order("descripcion ASC").Find(&articulos).Error
	return articulos, err
}

func (r *articuloRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	fields["updated_at"] = gorm.Expr("NOW()")
	return r.db.WithContext(ctx).Model(&model.Articulo{}).Where("id = ?", id).Updates(fields).Error
}

func (r *articuloRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Articulo{}, "id = ?", id).Error
}

func (r *articuloRepo) CountStockBajo(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Articulo{}).
		Where("stock <= stock_minimo").Count(&count).Error
	return count, err
}

func (r *articuloRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Articulo, error) {
	var a model.Articulo
	err := tx.First(&a, "id = ?", id).Error
	return &a, err
}

func (r *articuloRepo) IncrementStockTx(tx *gorm.DB, id uuid.UUID, delta int) error {
	return tx.Model(&model.Articulo{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"stock":      gorm.Expr("stock + ?", delta),
			"updated_at": gorm.Expr("NOW()"),
		}).Error
}

func (r *articuloRepo) DB() *gorm.DB { return r.db }
