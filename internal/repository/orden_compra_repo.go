package repository

import (
	"context"

	"github.com/webplotcentersj-hash/stock2/internal/dto"
	"github.com/webplotcentersj-hash/stock2/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrdenCompraRepository defines the data access contract for purchase orders.
type OrdenCompraRepository interface {
	Create(ctx context.Context, o *model.OrdenCompra) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.OrdenCompra, error)
	List(ctx context.Context, filter dto.OrdenCompraFilter) ([]model.OrdenCompra, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Used inside transactions — callers pass the tx instance.
	ExistsAbiertaTx(tx *gorm.DB, articuloID uuid.UUID) (bool, error)
	CreateTx(tx *gorm.DB, o *model.OrdenCompra) error
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.OrdenCompra, error)
	UpdateFieldsTx(tx *gorm.DB, id uuid.UUID, fields map[string]interface{}) error

	DB() *gorm.DB
}

type ordenCompraRepo struct{ db *gorm.DB }

func NewOrdenCompraRepository(db *gorm.DB) OrdenCompraRepository { return &ordenCompraRepo{db: db} }

func (r *ordenCompraRepo) Create(ctx context.Context, o *model.OrdenCompra) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *ordenCompraRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.OrdenCompra, error) {
	var o model.OrdenCompra
	err := r.db.WithContext(ctx).Preload("Articulo").Preload("Solicitante").First(&o, "id = ?", id).Error
	return &o, err
}

func (r *ordenCompraRepo) List(ctx context.Context, filter dto.OrdenCompraFilter) ([]model.OrdenCompra, error) {
	var ordenes []model.OrdenCompra

	q := r.db.WithContext(ctx).Model(&model.OrdenCompra{}).
		Preload("Articulo").Preload("Solicitante")
	if filter.Status != "" && filter.Status != "all" {
		q = q.Where("status = ?", filter.Status)
	}

	err := q.Order("created_at DESC").Find(&ordenes).Error
	return ordenes, err
}

func (r *ordenCompraRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	fields["updated_at"] = gorm.Expr("NOW()")
	return r.db.WithContext(ctx).Model(&model.OrdenCompra{}).Where("id = ?", id).Updates(fields).Error
}

func (r *ordenCompraRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.OrdenCompra{}, "id = ?", id).Error
}

func (r *ordenCompraRepo) ExistsAbiertaTx(tx *gorm.DB, articuloID uuid.UUID) (bool, error) {
	var count int64
	err := tx.Model(&model.OrdenCompra{}).
		Where("articulo_id = ? AND status IN ?", articuloID, []string{model.OrdenPendiente, model.OrdenEnProceso}).
		Count(&count).Error
	return count > 0, err
}

func (r *ordenCompraRepo) CreateTx(tx *gorm.DB, o *model.OrdenCompra) error {
	return tx.Create(o).Error
}

func (r *ordenCompraRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.OrdenCompra, error) {
	var o model.OrdenCompra
	err := tx.First(&o, "id = ?", id).Error
	return &o, err
}

func (r *ordenCompraRepo) UpdateFieldsTx(tx *gorm.DB, id uuid.UUID, fields map[string]interface{}) error {
	fields["updated_at"] = gorm.Expr("NOW()")
	return tx.Model(&model.OrdenCompra{}).Where("id = ?", id).Updates(fields).Error
}

func (r *ordenCompraRepo) DB() *gorm.DB { return r.db }
