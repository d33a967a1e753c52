package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueueNotificacion = "jobs:notificacion"
	QueueCache        = "jobs:cache"
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueNotificacionOrden pushes an email-notification job for an
// auto-generated purchase order. Best-effort: callers ignore the error.
func (d *Dispatcher) EnqueueNotificacionOrden(ctx context.Context, payload NotificacionOrdenPayload) error {
	return d.enqueue(ctx, QueueNotificacion, "notificacion_orden", payload)
}

// EnqueueInvalidacionDashboard pushes a cache-invalidation job after any
// pedido or orden mutation that changes the dashboard aggregates.
func (d *Dispatcher) EnqueueInvalidacionDashboard(ctx context.Context) error {
	return d.enqueue(ctx, QueueCache, "invalidar_dashboard", struct{}{})
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// WorkerHandlers bundles the concrete processors wired by the composition root.
type WorkerHandlers struct {
	Notificacion *NotificacionWorker
	Cache        *CacheWorker
}

// StartWorkerPool launches numWorkers goroutines consuming both queues.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, handlers *WorkerHandlers, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, handlers, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, handlers *WorkerHandlers, id int) {
	queues := []string{QueueNotificacion, QueueCache}
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, queues...).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			processJob(ctx, rdb, handlers, result[0], result[1])
		}
	}
}

func processJob(ctx context.Context, rdb *redis.Client, handlers *WorkerHandlers, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		return
	}

	var err error
	switch queue {
	case QueueNotificacion:
		err = handlers.Notificacion.Process(ctx, job.Payload)
	case QueueCache:
		err = handlers.Cache.Process(ctx, job.Payload)
	default:
		log.Warn().Str("queue", queue).Msg("job from unknown queue — dropping")
		return
	}

	if err != nil {
		SendToDLQ(ctx, rdb, queue, job.Type, job.Payload, err.Error())
	}
}
