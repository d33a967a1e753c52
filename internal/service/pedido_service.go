package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/webplotcentersj-hash/stock2/internal/authz"
	"github.com/webplotcentersj-hash/stock2/internal/dto"
	"github.com/webplotcentersj-hash/stock2/internal/model"
	"github.com/webplotcentersj-hash/stock2/internal/repository"
	"github.com/webplotcentersj-hash/stock2/internal/worker"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPedidoNoEncontrado = errors.New("Pedido no encontrado")
	ErrMotivoRequerido    = errors.New("Debe indicar un motivo de rechazo")
)

type PedidoService interface {
	Crear(ctx context.Context, usuario *model.Usuario, req dto.CrearPedidoRequest) (*dto.PedidoResponse, error)
	Listar(ctx context.Context, usuario *model.Usuario, filter dto.PedidoFilter) ([]dto.PedidoResponse, error)
	ListarItems(ctx context.Context, pedidoID uuid.UUID) ([]dto.PedidoItemResponse, error)
	Actualizar(ctx context.Context, usuario *model.Usuario, req dto.ActualizarPedidoRequest) (*dto.PedidoResponse, error)
	Eliminar(ctx context.Context, usuario *model.Usuario, id uuid.UUID) error
}

type pedidoService struct {
	repo       repository.PedidoRepository
	articulos  repository.ArticuloRepository
	ordenes    repository.OrdenCompraRepository
	dispatcher *worker.Dispatcher
}

func NewPedidoService(
	repo repository.PedidoRepository,
	articulos repository.ArticuloRepository,
	ordenes repository.OrdenCompraRepository,
	dispatcher *worker.Dispatcher,
) PedidoService {
	return &pedidoService{repo: repo, articulos: articulos, ordenes: ordenes, dispatcher: dispatcher}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── Crear ─────────────────────────────────────────────────────────────────────
// One ACID transaction covering:
//  1. insert pedido (status y approval_status arrancan en Pendiente)
//  2. per item: resolve articulo, insert PedidoItem with the stock snapshot
//  3. per under-stocked articulo without an open orden: insert the auto
//     OrdenCompra for the shortfall, back-referencing the pedido
// An unknown articulo rolls the whole pedido back. Email notifications are
// enqueued only after the commit succeeds.

func (s *pedidoService) Crear(ctx context.Context, usuario *model.Usuario, req dto.CrearPedidoRequest) (*dto.PedidoResponse, error) {
	if err := authz.Authorize(usuario.Role, authz.ActionCrearPedido, uuid.Nil, usuario.ID); err != nil {
		return nil, err
	}

	var pedido model.Pedido
	var notificaciones []worker.NotificacionOrdenPayload

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		pedido = model.Pedido{
			ClientName:     req.ClientName,
			Description:    req.Description,
			ImageURL:       req.ImageURL,
			UserID:         usuario.ID,
			Status:         "Pendiente",
			ApprovalStatus: "Pendiente",
		}
		if err := s.repo.CreateTx(tx, &pedido); err != nil {
			return err
		}

		for _, item := range req.Items {
			articuloID, err := uuid.Parse(item.ArticuloID)
			if err != nil {
				return errEntrada("articulo_id inválido: %v", err)
			}
			articulo, err := s.articulos.FindByIDTx(tx, articuloID)
			if err != nil {
				return errEntrada("artículo %s no encontrado", item.ArticuloID)
			}

			if err := s.repo.CreateItemTx(tx, &model.PedidoItem{
				PedidoID:        pedido.ID,
				ArticuloID:      articulo.ID,
				Cantidad:        item.Cantidad,
				StockDisponible: articulo.Stock,
			}); err != nil {
				return err
			}

			faltante := item.Cantidad - articulo.Stock
			if faltante <= 0 {
				continue
			}

			// One open orden per articulo; the partial unique index backs this
			// check up against concurrent inserts.
			abierta, err := s.ordenes.ExistsAbiertaTx(tx, articulo.ID)
			if err != nil {
				return err
			}
			if abierta {
				continue
			}

			pedidoRef := pedido.ID
			orden := model.OrdenCompra{
				ArticuloID: articulo.ID,
				Cantidad:   faltante,
				Proveedor:  "Por definir",
				Observaciones: fmt.Sprintf(
					"Orden automática por pedido #%s - Cliente: %s. Faltante: %d unidades.",
					pedido.ID, req.ClientName, faltante),
				SolicitadoPor: usuario.ID,
				PedidoID:      &pedidoRef,
				Status:        model.OrdenPendiente,
			}
			if err := s.ordenes.CreateTx(tx, &orden); err != nil {
				return err
			}

			notificaciones = append(notificaciones, worker.NotificacionOrdenPayload{
				OrdenID:    orden.ID.String(),
				PedidoID:   pedido.ID.String(),
				ClientName: req.ClientName,
				Articulo:   articulo.Descripcion,
				Faltante:   faltante,
			})
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	// Best-effort async work — the pedido is already committed.
	if s.dispatcher != nil {
		for _, n := range notificaciones {
			_ = s.dispatcher.EnqueueNotificacionOrden(ctx, n)
		}
		_ = s.dispatcher.EnqueueInvalidacionDashboard(ctx)
	}

	pedido.Usuario = usuario
	return pedidoToResponse(&pedido), nil
}

// Listar scopes the result set by role: administración and compras see every
// pedido, everyone else only their own.
func (s *pedidoService) Listar(ctx context.Context, usuario *model.Usuario, filter dto.PedidoFilter) ([]dto.PedidoResponse, error) {
	var scope *uuid.UUID
	if err := authz.Authorize(usuario.Role, authz.ActionVerTodosPedidos, uuid.Nil, usuario.ID); err != nil {
		scope = &usuario.ID
	}

	pedidos, err := s.repo.List(ctx, filter, scope)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PedidoResponse, 0, len(pedidos))
	for i := range pedidos {
		out = append(out, *pedidoToResponse(&pedidos[i]))
	}
	return out, nil
}

func (s *pedidoService) ListarItems(ctx context.Context, pedidoID uuid.UUID) ([]dto.PedidoItemResponse, error) {
	items, err := s.repo.ListItems(ctx, pedidoID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PedidoItemResponse, 0, len(items))
	for i := range items {
		out = append(out, *pedidoItemToResponse(&items[i]))
	}
	return out, nil
}

// Actualizar applies an allow-listed partial update. Approval decisions are a
// compras-only path: Aprobado/Rechazado stamp approved_by/approved_at
// server-side and a rejection always carries its motivo.
func (s *pedidoService) Actualizar(ctx context.Context, usuario *model.Usuario, req dto.ActualizarPedidoRequest) (*dto.PedidoResponse, error) {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, errEntrada("id inválido")
	}
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrPedidoNoEncontrado
	}

	fields := map[string]interface{}{}
	if req.ClientName != nil {
		fields["client_name"] = *req.ClientName
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}

	if req.ApprovalStatus != nil && *req.ApprovalStatus != pedido.ApprovalStatus {
		if err := authz.Authorize(usuario.Role, authz.ActionAprobarPedido, pedido.UserID, usuario.ID); err != nil {
			return nil, err
		}
		fields["approval_status"] = *req.ApprovalStatus
		switch *req.ApprovalStatus {
		case "Aprobado":
			fields["approved_by"] = usuario.ID
			fields["approved_at"] = time.Now()
			fields["rejection_reason"] = nil
		case "Rechazado":
			if req.RejectionReason == nil || *req.RejectionReason == "" {
				return nil, ErrMotivoRequerido
			}
			fields["approved_by"] = usuario.ID
			fields["approved_at"] = time.Now()
			fields["rejection_reason"] = *req.RejectionReason
		}
	} else if req.RejectionReason != nil {
		// The motivo belongs to the approval decision, so rewriting it alone
		// needs the same permission as the decision itself.
		if err := authz.Authorize(usuario.Role, authz.ActionAprobarPedido, pedido.UserID, usuario.ID); err != nil {
			return nil, err
		}
		fields["rejection_reason"] = *req.RejectionReason
	}

	if len(fields) == 0 {
		return nil, ErrSinCampos
	}
	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueInvalidacionDashboard(ctx)
	}

	actualizado, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return pedidoToResponse(actualizado), nil
}

func (s *pedidoService) Eliminar(ctx context.Context, usuario *model.Usuario, id uuid.UUID) error {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ErrPedidoNoEncontrado
	}
	if err := authz.Authorize(usuario.Role, authz.ActionEliminarPedido, pedido.UserID, usuario.ID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueInvalidacionDashboard(ctx)
	}
	return nil
}

func pedidoToResponse(p *model.Pedido) *dto.PedidoResponse {
	resp := &dto.PedidoResponse{
		ID:              p.ID.String(),
		ClientName:      p.ClientName,
		Description:     p.Description,
		ImageURL:        p.ImageURL,
		UserID:          p.UserID.String(),
		Status:          p.Status,
		ApprovalStatus:  p.ApprovalStatus,
		RejectionReason: p.RejectionReason,
		CreatedAt:       p.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:       p.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if p.Usuario != nil {
		resp.UserName = p.Usuario.Name
		resp.UserRole = p.Usuario.Role
	}
	if p.ApprovedBy != nil {
		v := p.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if p.ApprovedAt != nil {
		v := p.ApprovedAt.Format("2006-01-02T15:04:05Z")
		resp.ApprovedAt = &v
	}
	return resp
}

func pedidoItemToResponse(item *model.PedidoItem) *dto.PedidoItemResponse {
	resp := &dto.PedidoItemResponse{
		ID:              item.ID.String(),
		PedidoID:        item.PedidoID.String(),
		ArticuloID:      item.ArticuloID.String(),
		Cantidad:        item.Cantidad,
		StockDisponible: item.StockDisponible,
	}
	if item.Articulo != nil {
		resp.Articulo = &dto.ArticuloResumen{
			ID:          item.Articulo.ID.String(),
			Codigo:      item.Articulo.Codigo,
			Descripcion: item.Articulo.Descripcion,
			Stock:       item.Articulo.Stock,
		}
	}
	return resp
}
