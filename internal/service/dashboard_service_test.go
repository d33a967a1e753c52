package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/webplotcentersj-hash/stock2/internal/model"
	"github.com/webplotcentersj-hash/stock2/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPedidoConFecha(r *stubPedidoRepo, status string, createdAt time.Time) *model.Pedido {
	p := &model.Pedido{
		ID:         uuid.New(),
		ClientName: "Cliente",
		UserID:     uuid.New(),
		Status:     status,
		CreatedAt:  createdAt,
	}
	r.pedidos[p.ID] = p
	return p
}

func TestDashboard_StatsDeHoy(t *testing.T) {
	pedidoRepo := newStubPedidoRepo()
	articuloRepo := newStubArticuloRepo()
	svc := service.NewDashboardService(pedidoRepo, articuloRepo, nil)

	seedPedidoConFecha(pedidoRepo, "Finalizado", time.Now())
	seedPedidoConFecha(pedidoRepo, "Pendiente", time.Now())
	seedPedidoConFecha(pedidoRepo, "Finalizado", time.Now().AddDate(0, 0, -10)) // out of range

	resp, err := svc.Obtener(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, resp.StatsToday.TotalPedidos)
	assert.Equal(t, 1, resp.StatsToday.PedidosCompletados)
	assert.Equal(t, int64(1), resp.PedidosPendientes)
}

func TestDashboard_StockBajo(t *testing.T) {
	pedidoRepo := newStubPedidoRepo()
	articuloRepo := newStubArticuloRepo()
	svc := service.NewDashboardService(pedidoRepo, articuloRepo, nil)

	seedArticulo(articuloRepo, "A-1", "Bajo stock", 5, 10)
	seedArticulo(articuloRepo, "A-2", "Justo", 10, 10) // boundary counts
	seedArticulo(articuloRepo, "A-3", "Sobrado", 100, 10)

	resp, err := svc.Obtener(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.StockBajo)
}

func TestDashboard_SieteDiasDeBuckets(t *testing.T) {
	pedidoRepo := newStubPedidoRepo()
	articuloRepo := newStubArticuloRepo()
	svc := service.NewDashboardService(pedidoRepo, articuloRepo, nil)

	seedPedidoConFecha(pedidoRepo, "Finalizado", time.Now())
	seedPedidoConFecha(pedidoRepo, "Pendiente", time.Now().AddDate(0, 0, -3))

	resp, err := svc.Obtener(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.VentasSemana, 7)

	hoy := time.Now().Format("2006-01-02")
	ultimo := resp.VentasSemana[6]
	assert.Equal(t, hoy, ultimo.Fecha)
	assert.Equal(t, 1, ultimo.Pedidos)
	assert.Equal(t, 1, ultimo.Completados)

	var total int
	for _, dia := range resp.VentasSemana {
		total += dia.Pedidos
	}
	assert.Equal(t, 2, total)
}

func TestDashboard_ActividadReciente(t *testing.T) {
	pedidoRepo := newStubPedidoRepo()
	articuloRepo := newStubArticuloRepo()
	svc := service.NewDashboardService(pedidoRepo, articuloRepo, nil)

	for i := 0; i < 8; i++ {
		seedPedidoConFecha(pedidoRepo, "Pendiente", time.Now().Add(-time.Duration(i)*time.Hour))
	}

	resp, err := svc.Obtener(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp.ActividadReciente, 5)
}
