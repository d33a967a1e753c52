package repository

import (
	"context"
	"time"

	"github.com/webplotcentersj-hash/stock2/internal/dto"
	"github.com/webplotcentersj-hash/stock2/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PedidoRepository defines the data access contract for sales orders and
// their items.
type PedidoRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error)
	// List returns pedidos joined with the creator; when userID is non-nil the
	// result is scoped to that creator (non-privileged roles).
	List(ctx context.Context, filter dto.PedidoFilter, userID *uuid.UUID) ([]model.Pedido, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error

	ListItems(ctx context.Context, pedidoID uuid.UUID) ([]model.PedidoItem, error)

	// Dashboard queries
	CountByStatus(ctx context.Context, status string) (int64, error)
	ListSince(ctx context.Context, since time.Time) ([]model.Pedido, error)
	ListRecent(ctx context.Context, limit int) ([]model.Pedido, error)

	// Used inside the creation transaction — callers pass the tx instance.
	CreateTx(tx *gorm.DB, p *model.Pedido) error
	CreateItemTx(tx *gorm.DB, item *model.PedidoItem) error

	DB() *gorm.DB
}

type pedidoRepo struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository { return &pedidoRepo{db: db} }

func (r *pedidoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.WithContext(ctx).Preload("Usuario").First(&p, "id = ?", id).Error
	return &p, err
}

func (r *pedidoRepo) List(ctx context.Context, filter dto.PedidoFilter, userID *uuid.UUID) ([]model.Pedido, error) {
	var pedidos []model.Pedido

	q := r.db.WithContext(ctx).Model(&model.Pedido{}).Preload("Usuario")
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}
	if filter.ApprovalStatus != "" && filter.ApprovalStatus != "all" {
		q = q.Where("approval_status = ?", filter.ApprovalStatus)
	}
	if filter.Status != "" && filter.Status != "all" {
		q = q.Where("status = ?", filter.Status)
	}

	err := q.Order("created_at DESC").Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	fields["updated_at"] = gorm.Expr("NOW()")
	return r.db.WithContext(ctx).Model(&model.Pedido{}).Where("id = ?", id).Updates(fields).Error
}

func (r *pedidoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Pedido{}, "id = ?", id).Error
}

func (r *pedidoRepo) ListItems(ctx context.Context, pedidoID uuid.UUID) ([]model.PedidoItem, error) {
	var items []model.PedidoItem
	err := r.db.WithContext(ctx).Preload("Articulo").
		Where("pedido_id = ?", pedidoID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *pedidoRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Pedido{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *pedidoRepo) ListSince(ctx context.Context, since time.Time) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := r.db.WithContext(ctx).Where("created_at >= ?", since).Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) ListRecent(ctx context.Context, limit int) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) CreateTx(tx *gorm.DB, p *model.Pedido) error {
	return tx.Create(p).Error
}

func (r *pedidoRepo) CreateItemTx(tx *gorm.DB, item *model.PedidoItem) error {
	return tx.Create(item).Error
}

func (r *pedidoRepo) DB() *gorm.DB { return r.db }
