package service_test

// In-memory repository stubs shared by the service tests. Each stub keeps its
// rows in a map and ignores the *gorm.DB argument of the Tx variants — the
// services run their transaction closures with tx == nil in unit-test mode.

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/webplotcentersj-hash/stock2/internal/dto"
	"github.com/webplotcentersj-hash/stock2/internal/model"
	"github.com/webplotcentersj-hash/stock2/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var errNotFound = errors.New("not found")

// ── Usuario ───────────────────────────────────────────────────────────────────

type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, errNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errNotFound
}

func (r *stubUsuarioRepo) ListExcept(_ context.Context, id uuid.UUID) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.usuarios {
		if u.ID != id {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

// ── Articulo ──────────────────────────────────────────────────────────────────

type stubArticuloRepo struct {
	articulos map[uuid.UUID]*model.Articulo
}

func newStubArticuloRepo() *stubArticuloRepo {
	return &stubArticuloRepo{articulos: make(map[uuid.UUID]*model.Articulo)}
}

func (r *stubArticuloRepo) Create(_ context.Context, a *model.Articulo) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.articulos[a.ID] = a
	return nil
}

func (r *stubArticuloRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Articulo, error) {
	a, ok := r.articulos[id]
	if !ok {
		return nil, errNotFound
	}
	return a, nil
}

func (r *stubArticuloRepo) List(_ context.Context, filter dto.ArticuloFilter) ([]model.Articulo, error) {
	var out []model.Articulo
	for _, a := range r.articulos {
		if filter.Search != "" &&
			!strings.Contains(strings.ToLower(a.Descripcion), strings.ToLower(filter.Search)) &&
			!strings.Contains(strings.ToLower(a.Codigo), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.Sector != "" && filter.Sector != "all" && a.Sector != filter.Sector {
			continue
		}
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Descripcion < out[j].Descripcion })
	return out, nil
}

func (r *stubArticuloRepo) UpdateFields(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
	a, ok := r.articulos[id]
	if !ok {
		return errNotFound
	}
	applyArticuloFields(a, fields)
	return nil
}

func (r *stubArticuloRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.articulos, id)
	return nil
}

func (r *stubArticuloRepo) CountStockBajo(_ context.Context) (int64, error) {
	var n int64
	for _, a := range r.articulos {
		if a.Stock <= a.StockMinimo {
			n++
		}
	}
	return n, nil
}

func (r *stubArticuloRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Articulo, error) {
	a, ok := r.articulos[id]
	if !ok {
		return nil, errNotFound
	}
	return a, nil
}

func (r *stubArticuloRepo) IncrementStockTx(_ *gorm.DB, id uuid.UUID, delta int) error {
	a, ok := r.articulos[id]
	if !ok {
		return errNotFound
	}
	a.Stock += delta
	return nil
}

func (r *stubArticuloRepo) DB() *gorm.DB { return nil }

var _ repository.ArticuloRepository = (*stubArticuloRepo)(nil)

func applyArticuloFields(a *model.Articulo, fields map[string]interface{}) {
	for k, v := range fields {
		switch k {
		case "codigo":
			a.Codigo = v.(string)
		case "descripcion":
			a.Descripcion = v.(string)
		case "sector":
			a.Sector = v.(string)
		case "stock":
			a.Stock = v.(int)
		case "stock_minimo":
			a.StockMinimo = v.(int)
		case "precio":
			a.Precio = v.(decimal.Decimal)
		case "imagen":
			img := v.(string)
			a.Imagen = &img
		}
	}
}

// ── Pedido ────────────────────────────────────────────────────────────────────

type stubPedidoRepo struct {
	pedidos map[uuid.UUID]*model.Pedido
	items   []model.PedidoItem
}

func newStubPedidoRepo() *stubPedidoRepo {
	return &stubPedidoRepo{pedidos: make(map[uuid.UUID]*model.Pedido)}
}

func (r *stubPedidoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Pedido, error) {
	p, ok := r.pedidos[id]
	if !ok {
		return nil, errNotFound
	}
	return p, nil
}

func (r *stubPedidoRepo) List(_ context.Context, filter dto.PedidoFilter, userID *uuid.UUID) ([]model.Pedido, error) {
	var out []model.Pedido
	for _, p := range r.pedidos {
		if userID != nil && p.UserID != *userID {
			continue
		}
		if filter.ApprovalStatus != "" && filter.ApprovalStatus != "all" && p.ApprovalStatus != filter.ApprovalStatus {
			continue
		}
		if filter.Status != "" && filter.Status != "all" && p.Status != filter.Status {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubPedidoRepo) UpdateFields(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
	p, ok := r.pedidos[id]
	if !ok {
		return errNotFound
	}
	for k, v := range fields {
		switch k {
		case "client_name":
			p.ClientName = v.(string)
		case "description":
			p.Description = v.(string)
		case "image_url":
			url := v.(string)
			p.ImageURL = &url
		case "status":
			p.Status = v.(string)
		case "approval_status":
			p.ApprovalStatus = v.(string)
		case "approved_by":
			id := v.(uuid.UUID)
			p.ApprovedBy = &id
		case "approved_at":
			at := v.(time.Time)
			p.ApprovedAt = &at
		case "rejection_reason":
			if v == nil {
				p.RejectionReason = nil
			} else {
				motivo := v.(string)
				p.RejectionReason = &motivo
			}
		}
	}
	return nil
}

func (r *stubPedidoRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.pedidos[id]; !ok {
		return errNotFound
	}
	delete(r.pedidos, id)
	return nil
}

func (r *stubPedidoRepo) ListItems(_ context.Context, pedidoID uuid.UUID) ([]model.PedidoItem, error) {
	var out []model.PedidoItem
	for _, item := range r.items {
		if item.PedidoID == pedidoID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *stubPedidoRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	var n int64
	for _, p := range r.pedidos {
		if p.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *stubPedidoRepo) ListSince(_ context.Context, since time.Time) ([]model.Pedido, error) {
	var out []model.Pedido
	for _, p := range r.pedidos {
		if !p.CreatedAt.Before(since) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPedidoRepo) ListRecent(_ context.Context, limit int) ([]model.Pedido, error) {
	var out []model.Pedido
	for _, p := range r.pedidos {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubPedidoRepo) CreateTx(_ *gorm.DB, p *model.Pedido) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	r.pedidos[p.ID] = p
	return nil
}

func (r *stubPedidoRepo) CreateItemTx(_ *gorm.DB, item *model.PedidoItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.items = append(r.items, *item)
	return nil
}

func (r *stubPedidoRepo) DB() *gorm.DB { return nil }

var _ repository.PedidoRepository = (*stubPedidoRepo)(nil)

// ── OrdenCompra ───────────────────────────────────────────────────────────────

type stubOrdenRepo struct {
	ordenes map[uuid.UUID]*model.OrdenCompra
}

func newStubOrdenRepo() *stubOrdenRepo {
	return &stubOrdenRepo{ordenes: make(map[uuid.UUID]*model.OrdenCompra)}
}

func (r *stubOrdenRepo) Create(_ context.Context, o *model.OrdenCompra) error {
	return r.CreateTx(nil, o)
}

func (r *stubOrdenRepo) FindByID(_ context.Context, id uuid.UUID) (*model.OrdenCompra, error) {
	return r.FindByIDTx(nil, id)
}

func (r *stubOrdenRepo) List(_ context.Context, filter dto.OrdenCompraFilter) ([]model.OrdenCompra, error) {
	var out []model.OrdenCompra
	for _, o := range r.ordenes {
		if filter.Status != "" && filter.Status != "all" && o.Status != filter.Status {
			continue
		}
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubOrdenRepo) UpdateFields(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.UpdateFieldsTx(nil, id, fields)
}

func (r *stubOrdenRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.ordenes, id)
	return nil
}

func (r *stubOrdenRepo) ExistsAbiertaTx(_ *gorm.DB, articuloID uuid.UUID) (bool, error) {
	for _, o := range r.ordenes {
		if o.ArticuloID == articuloID &&
			(o.Status == model.OrdenPendiente || o.Status == model.OrdenEnProceso) {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubOrdenRepo) CreateTx(_ *gorm.DB, o *model.OrdenCompra) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}
	r.ordenes[o.ID] = o
	return nil
}

func (r *stubOrdenRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.OrdenCompra, error) {
	o, ok := r.ordenes[id]
	if !ok {
		return nil, errNotFound
	}
	return o, nil
}

func (r *stubOrdenRepo) UpdateFieldsTx(_ *gorm.DB, id uuid.UUID, fields map[string]interface{}) error {
	o, ok := r.ordenes[id]
	if !ok {
		return errNotFound
	}
	for k, v := range fields {
		switch k {
		case "cantidad":
			o.Cantidad = v.(int)
		case "proveedor":
			o.Proveedor = v.(string)
		case "observaciones":
			o.Observaciones = v.(string)
		case "status":
			o.Status = v.(string)
		}
	}
	return nil
}

func (r *stubOrdenRepo) DB() *gorm.DB { return nil }

var _ repository.OrdenCompraRepository = (*stubOrdenRepo)(nil)

// ── Caja ──────────────────────────────────────────────────────────────────────

type stubCajaRepo struct {
	movimientos []model.MovimientoCaja
}

func (r *stubCajaRepo) Create(_ context.Context, m *model.MovimientoCaja) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	r.movimientos = append(r.movimientos, *m)
	return nil
}

func (r *stubCajaRepo) List(_ context.Context, filter dto.MovimientoFilter, limit int) ([]model.MovimientoCaja, error) {
	var out []model.MovimientoCaja
	for _, m := range r.movimientos {
		if filter.Tipo != "" && filter.Tipo != "all" && m.Tipo != filter.Tipo {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubCajaRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, m := range r.movimientos {
		if m.ID == id {
			r.movimientos = append(r.movimientos[:i], r.movimientos[i+1:]...)
			return nil
		}
	}
	return errNotFound
}

func (r *stubCajaRepo) SumByTipo(_ context.Context, since *time.Time) (map[string]decimal.Decimal, error) {
	sums := map[string]decimal.Decimal{"Ingreso": decimal.Zero, "Egreso": decimal.Zero}
	for _, m := range r.movimientos {
		if since != nil && m.CreatedAt.Before(*since) {
			continue
		}
		sums[m.Tipo] = sums[m.Tipo].Add(m.Monto)
	}
	return sums, nil
}

var _ repository.CajaRepository = (*stubCajaRepo)(nil)

// ── Seed helpers ──────────────────────────────────────────────────────────────

func seedUsuario(r *stubUsuarioRepo, name, email, role string) *model.Usuario {
	u := &model.Usuario{ID: uuid.New(), Email: email, Name: name, Role: role}
	r.usuarios[u.ID] = u
	return u
}

func seedArticulo(r *stubArticuloRepo, codigo, descripcion string, stock, stockMinimo int) *model.Articulo {
	a := &model.Articulo{
		ID:          uuid.New(),
		Codigo:      codigo,
		Descripcion: descripcion,
		Stock:       stock,
		StockMinimo: stockMinimo,
		Precio:      decimal.Zero,
	}
	r.articulos[a.ID] = a
	return a
}
