package service

import (
	"context"
	"errors"

	"github.com/webplotcentersj-hash/stock2/internal/dto"
	"github.com/webplotcentersj-hash/stock2/internal/model"
	"github.com/webplotcentersj-hash/stock2/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Defaults applied when the creation request omits the field.
const (
	stockInicialDefault = 100
	stockMinimoDefault  = 10
)

// ErrSinCampos is returned by partial updates whose request carries the id and
// nothing else.
var ErrSinCampos = errors.New("No hay campos para actualizar")

type StockService interface {
	Crear(ctx context.Context, req dto.CrearArticuloRequest) (*dto.ArticuloResponse, error)
	Listar(ctx context.Context, filter dto.ArticuloFilter) ([]dto.ArticuloResponse, error)
	Actualizar(ctx context.Context, req dto.ActualizarArticuloRequest) (*dto.ArticuloResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type stockService struct {
	repo repository.ArticuloRepository
}

func NewStockService(repo repository.ArticuloRepository) StockService {
	return &stockService{repo: repo}
}

func (s *stockService) Crear(ctx context.Context, req dto.CrearArticuloRequest) (*dto.ArticuloResponse, error) {
	a := model.Articulo{
		Codigo:      req.Codigo,
		Descripcion: req.Descripcion,
		Sector:      req.Sector,
		Stock:       stockInicialDefault,
		StockMinimo: stockMinimoDefault,
		Precio:      decimal.Zero,
		Imagen:      req.Imagen,
	}
	if req.Stock != nil {
		a.Stock = *req.Stock
	}
	if req.StockMinimo != nil {
		a.StockMinimo = *req.StockMinimo
	}
	if req.Precio != nil {
		a.Precio = *req.Precio
	}

	if err := s.repo.Create(ctx, &a); err != nil {
		return nil, err
	}
	return articuloToResponse(&a), nil
}

func (s *stockService) Listar(ctx context.Context, filter dto.ArticuloFilter) ([]dto.ArticuloResponse, error) {
	articulos, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ArticuloResponse, 0, len(articulos))
	for i := range articulos {
		out = append(out, *articuloToResponse(&articulos[i]))
	}
	return out, nil
}

func (s *stockService) Actualizar(ctx context.Context, req dto.ActualizarArticuloRequest) (*dto.ArticuloResponse, error) {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, errEntrada("id inválido")
	}

	// Only columns named here can ever be written.
	fields := map[string]interface{}{}
	if req.Codigo != nil {
		fields["codigo"] = *req.Codigo
	}
	if req.Descripcion != nil {
		fields["descripcion"] = *req.Descripcion
	}
	if req.Sector != nil {
		fields["sector"] = *req.Sector
	}
	if req.Stock != nil {
		fields["stock"] = *req.Stock
	}
	if req.StockMinimo != nil {
		fields["stock_minimo"] = *req.StockMinimo
	}
	if req.Precio != nil {
		fields["precio"] = *req.Precio
	}
	if req.Imagen != nil {
		fields["imagen"] = *req.Imagen
	}
	if len(fields) == 0 {
		return nil, ErrSinCampos
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return articuloToResponse(a), nil
}

func (s *stockService) Eliminar(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func articuloToResponse(a *model.Articulo) *dto.ArticuloResponse {
	return &dto.ArticuloResponse{
		ID:          a.ID.String(),
		Codigo:      a.Codigo,
		Descripcion: a.Descripcion,
		Sector:      a.Sector,
		Stock:       a.Stock,
		StockMinimo: a.StockMinimo,
		Precio:      a.Precio,
		Imagen:      a.Imagen,
		CreatedAt:   a.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:   a.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
