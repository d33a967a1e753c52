package service

import (
	"context"
	"errors"

	"github.com/webplotcentersj-hash/stock2/internal/dto"
	"github.com/webplotcentersj-hash/stock2/internal/infra"
	"github.com/webplotcentersj-hash/stock2/internal/model"
	"github.com/webplotcentersj-hash/stock2/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrOrdenNoEncontrada = errors.New("Orden de compra no encontrada")
	ErrOrdenYaCompletada = errors.New("La orden ya fue completada")
)

// swappable for tests — rendering needs a writable storage dir
var infraGeneratePDF = infra.GenerateOrdenCompraPDF

// statusRemap translates the legacy lowercase query values still sent by the
// frontend to the canonical status names.
var statusRemap = map[string]string{
	"pendiente": model.OrdenPendiente,
	"aprobada":  model.OrdenEnProceso,
	"recibida":  model.OrdenCompletada,
}

type CompraService interface {
	Crear(ctx context.Context, usuario *model.Usuario, req dto.CrearOrdenCompraRequest) (*dto.OrdenCompraResponse, error)
	Listar(ctx context.Context, filter dto.OrdenCompraFilter) ([]dto.OrdenCompraResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.OrdenCompraResponse, error)
	Actualizar(ctx context.Context, req dto.ActualizarOrdenCompraRequest) (*dto.OrdenCompraResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	// GenerarPDF renders the printable purchase order and returns the file path.
	GenerarPDF(ctx context.Context, id uuid.UUID) (string, error)
}

type compraService struct {
	repo        repository.OrdenCompraRepository
	articulos   repository.ArticuloRepository
	storagePath string
}

func NewCompraService(repo repository.OrdenCompraRepository, articulos repository.ArticuloRepository, storagePath string) CompraService {
	return &compraService{repo: repo, articulos: articulos, storagePath: storagePath}
}

func (s *compraService) Crear(ctx context.Context, usuario *model.Usuario, req dto.CrearOrdenCompraRequest) (*dto.OrdenCompraResponse, error) {
	articuloID, err := uuid.Parse(req.ArticuloID)
	if err != nil {
		return nil, errEntrada("articulo_id inválido")
	}
	if _, err := s.articulos.FindByID(ctx, articuloID); err != nil {
		return nil, errEntrada("Artículo no encontrado")
	}

	orden := model.OrdenCompra{
		ArticuloID:    articuloID,
		Cantidad:      req.Cantidad,
		Proveedor:     "Por definir",
		Observaciones: req.Observaciones,
		SolicitadoPor: usuario.ID,
		Status:        model.OrdenPendiente,
	}
	if req.Proveedor != "" {
		orden.Proveedor = req.Proveedor
	}

	if err := s.repo.Create(ctx, &orden); err != nil {
		return nil, err
	}
	creada, err := s.repo.FindByID(ctx, orden.ID)
	if err != nil {
		return ordenToResponse(&orden), nil
	}
	return ordenToResponse(creada), nil
}

func (s *compraService) Listar(ctx context.Context, filter dto.OrdenCompraFilter) ([]dto.OrdenCompraResponse, error) {
	if canonical, ok := statusRemap[filter.Status]; ok {
		filter.Status = canonical
	}
	ordenes, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrdenCompraResponse, 0, len(ordenes))
	for i := range ordenes {
		out = append(out, *ordenToResponse(&ordenes[i]))
	}
	return out, nil
}

func (s *compraService) Obtener(ctx context.Context, id uuid.UUID) (*dto.OrdenCompraResponse, error) {
	orden, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrOrdenNoEncontrada
	}
	return ordenToResponse(orden), nil
}

// Actualizar applies an allow-listed partial update. The transition to
// Completada is special-cased: status change and stock increment commit in the
// same transaction, and an already-completed orden is rejected so stock can
// never be counted twice.
func (s *compraService) Actualizar(ctx context.Context, req dto.ActualizarOrdenCompraRequest) (*dto.OrdenCompraResponse, error) {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, errEntrada("id inválido")
	}

	fields := map[string]interface{}{}
	if req.Cantidad != nil {
		fields["cantidad"] = *req.Cantidad
	}
	if req.Proveedor != nil {
		fields["proveedor"] = *req.Proveedor
	}
	if req.Observaciones != nil {
		fields["observaciones"] = *req.Observaciones
	}

	completar := req.Status != nil && *req.Status == model.OrdenCompletada
	if req.Status != nil && !completar {
		fields["status"] = *req.Status
	}
	if len(fields) == 0 && !completar {
		return nil, ErrSinCampos
	}

	if completar {
		txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
			orden, err := s.repo.FindByIDTx(tx, id)
			if err != nil {
				return ErrOrdenNoEncontrada
			}
			if orden.Status == model.OrdenCompletada {
				return ErrOrdenYaCompletada
			}

			cantidad := orden.Cantidad
			if req.Cantidad != nil {
				cantidad = *req.Cantidad
			}
			fields["status"] = model.OrdenCompletada
			if err := s.repo.UpdateFieldsTx(tx, id, fields); err != nil {
				return err
			}
			return s.articulos.IncrementStockTx(tx, orden.ArticuloID, cantidad)
		})
		if txErr != nil {
			return nil, txErr
		}
	} else {
		if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
			return nil, err
		}
	}

	orden, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrOrdenNoEncontrada
	}
	return ordenToResponse(orden), nil
}

func (s *compraService) Eliminar(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *compraService) GenerarPDF(ctx context.Context, id uuid.UUID) (string, error) {
	orden, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", ErrOrdenNoEncontrada
	}
	return infraGeneratePDF(orden, s.storagePath)
}

func ordenToResponse(o *model.OrdenCompra) *dto.OrdenCompraResponse {
	resp := &dto.OrdenCompraResponse{
		ID:            o.ID.String(),
		ArticuloID:    o.ArticuloID.String(),
		Cantidad:      o.Cantidad,
		Proveedor:     o.Proveedor,
		Observaciones: o.Observaciones,
		Status:        o.Status,
		CreatedAt:     o.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:     o.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if o.PedidoID != nil {
		v := o.PedidoID.String()
		resp.PedidoID = &v
	}
	if o.Articulo != nil {
		resp.Articulo = &dto.ArticuloResumen{
			ID:          o.Articulo.ID.String(),
			Codigo:      o.Articulo.Codigo,
			Descripcion: o.Articulo.Descripcion,
			Stock:       o.Articulo.Stock,
		}
	}
	if o.Solicitante != nil {
		resp.SolicitadoPor = &dto.SolicitanteResumen{
			ID:   o.Solicitante.ID.String(),
			Name: o.Solicitante.Name,
		}
	}
	return resp
}
