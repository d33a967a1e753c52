package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/webplotcentersj-hash/stock2/internal/dto"
	"github.com/webplotcentersj-hash/stock2/internal/repository"
	"github.com/webplotcentersj-hash/stock2/internal/worker"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const dashboardCacheTTL = 60 * time.Second

type DashboardService interface {
	Obtener(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	pedidos   repository.PedidoRepository
	articulos repository.ArticuloRepository
	rdb       *redis.Client
}

// NewDashboardService builds the dashboard aggregator. rdb may be nil (tests);
// caching is then skipped and every call recomputes.
func NewDashboardService(pedidos repository.PedidoRepository, articulos repository.ArticuloRepository, rdb *redis.Client) DashboardService {
	return &dashboardService{pedidos: pedidos, articulos: articulos, rdb: rdb}
}

func (s *dashboardService) Obtener(ctx context.Context) (*dto.DashboardResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, worker.DashboardCacheKey).Bytes(); err == nil {
			var resp dto.DashboardResponse
			if json.Unmarshal(cached, &resp) == nil {
				return &resp, nil
			}
		}
	}

	resp, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, worker.DashboardCacheKey, data, dashboardCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("dashboard: failed to cache response")
			}
		}
	}
	return resp, nil
}

func (s *dashboardService) compute(ctx context.Context) (*dto.DashboardResponse, error) {
	medianoche := hoyMedianoche()

	// Today's stats.
	pedidosHoy, err := s.pedidos.ListSince(ctx, medianoche)
	if err != nil {
		return nil, err
	}
	stats := dto.StatsHoy{TotalPedidos: len(pedidosHoy)}
	for _, p := range pedidosHoy {
		if p.Status == "Finalizado" {
			stats.PedidosCompletados++
		}
	}

	pendientes, err := s.pedidos.CountByStatus(ctx, "Pendiente")
	if err != nil {
		return nil, err
	}
	stockBajo, err := s.articulos.CountStockBajo(ctx)
	if err != nil {
		return nil, err
	}

	// 7-day buckets: one flat range query, grouped in-process so the day keys
	// follow the server's local timezone rather than the DB's.
	inicioSemana := medianoche.AddDate(0, 0, -6)
	semana, err := s.pedidos.ListSince(ctx, inicioSemana)
	if err != nil {
		return nil, err
	}
	ventas := make([]dto.VentaDia, 0, 7)
	porDia := map[string]*dto.VentaDia{}
	for i := 0; i < 7; i++ {
		fecha := inicioSemana.AddDate(0, 0, i).Format("2006-01-02")
		dia := dto.VentaDia{Fecha: fecha}
		ventas = append(ventas, dia)
		porDia[fecha] = &ventas[i]
	}
	for _, p := range semana {
		dia, ok := porDia[p.CreatedAt.Local().Format("2006-01-02")]
		if !ok {
			continue
		}
		dia.Pedidos++
		if p.Status == "Finalizado" {
			dia.Completados++
		}
	}

	recientes, err := s.pedidos.ListRecent(ctx, 5)
	if err != nil {
		return nil, err
	}
	actividad := make([]dto.PedidoReciente, 0, len(recientes))
	for _, p := range recientes {
		actividad = append(actividad, dto.PedidoReciente{
			ID:         p.ID.String(),
			ClientName: p.ClientName,
			Status:     p.Status,
			CreatedAt:  p.CreatedAt.Format("2006-01-02T15:04:05Z"),
		})
	}

	return &dto.DashboardResponse{
		StatsToday:        stats,
		PedidosPendientes: pendientes,
		StockBajo:         stockBajo,
		VentasSemana:      ventas,
		ActividadReciente: actividad,
	}, nil
}

// hoyMedianoche returns today's local midnight.
func hoyMedianoche() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
