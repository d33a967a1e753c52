package service

import (
	"context"

	"github.com/webplotcentersj-hash/stock2/internal/authz"
	"github.com/webplotcentersj-hash/stock2/internal/dto"
	"github.com/webplotcentersj-hash/stock2/internal/model"
	"github.com/webplotcentersj-hash/stock2/internal/repository"

	"github.com/google/uuid"
)

// listLimit caps GET /v1/caja: the ledger grows forever but the UI only shows
// the most recent page.
const listLimit = 100

// tipoRemap accepts the legacy lowercase query values.
var tipoRemap = map[string]string{
	"ingreso": "Ingreso",
	"egreso":  "Egreso",
}

type CajaService interface {
	Crear(ctx context.Context, usuario *model.Usuario, req dto.CrearMovimientoRequest) (*dto.MovimientoResponse, error)
	Listar(ctx context.Context, filter dto.MovimientoFilter) ([]dto.MovimientoResponse, error)
	Resumen(ctx context.Context) (*dto.ResumenCajaResponse, error)
	Eliminar(ctx context.Context, usuario *model.Usuario, id uuid.UUID) error
}

type cajaService struct {
	repo repository.CajaRepository
}

func NewCajaService(repo repository.CajaRepository) CajaService {
	return &cajaService{repo: repo}
}

func (s *cajaService) Crear(ctx context.Context, usuario *model.Usuario, req dto.CrearMovimientoRequest) (*dto.MovimientoResponse, error) {
	mov := model.MovimientoCaja{
		Tipo:          req.Tipo,
		Categoria:     "General",
		Concepto:      req.Concepto,
		Monto:         req.Monto,
		MetodoPago:    "Efectivo",
		Observaciones: req.Observaciones,
		UserID:        usuario.ID,
	}
	if req.Categoria != "" {
		mov.Categoria = req.Categoria
	}
	if req.MetodoPago != "" {
		mov.MetodoPago = req.MetodoPago
	}

	if err := s.repo.Create(ctx, &mov); err != nil {
		return nil, err
	}
	mov.Usuario = usuario
	return movimientoToResponse(&mov), nil
}

func (s *cajaService) Listar(ctx context.Context, filter dto.MovimientoFilter) ([]dto.MovimientoResponse, error) {
	if canonical, ok := tipoRemap[filter.Tipo]; ok {
		filter.Tipo = canonical
	}
	movimientos, err := s.repo.List(ctx, filter, listLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovimientoResponse, 0, len(movimientos))
	for i := range movimientos {
		out = append(out, *movimientoToResponse(&movimientos[i]))
	}
	return out, nil
}

// Resumen aggregates in SQL: lifetime totals plus the breakdown since local
// midnight. saldo_actual is always ingresos − egresos.
func (s *cajaService) Resumen(ctx context.Context) (*dto.ResumenCajaResponse, error) {
	totales, err := s.repo.SumByTipo(ctx, nil)
	if err != nil {
		return nil, err
	}

	medianoche := hoyMedianoche()
	hoy, err := s.repo.SumByTipo(ctx, &medianoche)
	if err != nil {
		return nil, err
	}

	ingresos := totales["Ingreso"]
	egresos := totales["Egreso"]
	return &dto.ResumenCajaResponse{
		Resumen: dto.ResumenCaja{
			TotalIngresos: ingresos,
			TotalEgresos:  egresos,
			SaldoActual:   ingresos.Sub(egresos),
		},
		Hoy: dto.ResumenHoy{
			Ingreso: hoy["Ingreso"],
			Egreso:  hoy["Egreso"],
		},
	}, nil
}

func (s *cajaService) Eliminar(ctx context.Context, usuario *model.Usuario, id uuid.UUID) error {
	if err := authz.Authorize(usuario.Role, authz.ActionEliminarCaja, uuid.Nil, usuario.ID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func movimientoToResponse(m *model.MovimientoCaja) *dto.MovimientoResponse {
	resp := &dto.MovimientoResponse{
		ID:            m.ID.String(),
		Tipo:          m.Tipo,
		Categoria:     m.Categoria,
		Concepto:      m.Concepto,
		Monto:         m.Monto,
		MetodoPago:    m.MetodoPago,
		Observaciones: m.Observaciones,
		UserID:        m.UserID.String(),
		CreatedAt:     m.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if m.Usuario != nil {
		resp.Usuario = &dto.SolicitanteResumen{ID: m.Usuario.ID.String(), Name: m.Usuario.Name}
	}
	return resp
}
