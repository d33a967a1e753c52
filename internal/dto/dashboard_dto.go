package dto

// ─── Response DTOs ───────────────────────────────────────────────────────────

type StatsHoy struct {
	TotalPedidos       int `json:"total_pedidos"`
	PedidosCompletados int `json:"pedidos_completados"`
}

type VentaDia struct {
	Fecha       string `json:"fecha"`
	Pedidos     int    `json:"pedidos"`
	Completados int    `json:"completados"`
}

type PedidoReciente struct {
	ID         string `json:"id"`
	ClientName string `json:"client_name"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}

type DashboardResponse struct {
	StatsToday        StatsHoy         `json:"stats_today"`
	PedidosPendientes int64            `json:"pedidos_pendientes"`
	StockBajo         int64            `json:"stock_bajo"`
	VentasSemana      []VentaDia       `json:"ventas_semana"`
	ActividadReciente []PedidoReciente `json:"actividad_reciente"`
}
