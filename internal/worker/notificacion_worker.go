package worker

// notificacion_worker.go
// Processes jobs from QueueNotificacion: emails the compras inbox whenever a
// pedido auto-generates a purchase order for an under-stocked articulo.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/webplotcentersj-hash/stock2/internal/infra"

	"github.com/rs/zerolog/log"
)

// NotificacionOrdenPayload is the job envelope sent to QueueNotificacion.
type NotificacionOrdenPayload struct {
	OrdenID    string `json:"orden_id"`
	PedidoID   string `json:"pedido_id"`
	ClientName string `json:"client_name"`
	Articulo   string `json:"articulo"`
	Faltante   int    `json:"faltante"`
}

// NotificacionWorker sends purchase-order notification emails via SMTP.
type NotificacionWorker struct {
	mailer *infra.Mailer
	inbox  string
}

// NewNotificacionWorker creates a worker targeting the compras inbox.
func NewNotificacionWorker(mailer *infra.Mailer, inbox string) *NotificacionWorker {
	return &NotificacionWorker{mailer: mailer, inbox: inbox}
}

// Process sends the notification email. Returns an error so the pool can
// route the job to the DLQ when the relay is unreachable.
func (w *NotificacionWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload NotificacionOrdenPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("notificacion_worker: invalid payload")
		return nil // malformed jobs are dropped, not retried
	}
	if w.inbox == "" {
		log.Warn().Msg("notificacion_worker: no compras inbox configured — skipping")
		return nil
	}

	subject := fmt.Sprintf("Orden de compra automatica — %s", payload.Articulo)
	body := fmt.Sprintf(
		"Se genero una orden de compra automatica.\n\n"+
			"Articulo: %s\nFaltante: %d unidades\nPedido origen: %s\nCliente: %s\nOrden: %s\n",
		payload.Articulo, payload.Faltante, payload.PedidoID, payload.ClientName, payload.OrdenID)

	if err := w.mailer.SendNotificacion(w.inbox, subject, body, ""); err != nil {
		log.Error().Err(err).Str("orden_id", payload.OrdenID).Msg("notificacion_worker: failed to send email")
		return err
	}
	log.Info().Str("orden_id", payload.OrdenID).Msg("notificacion_worker: notification sent")
	return nil
}
