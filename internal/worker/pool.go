package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueueReconcile = "jobs:reconcile"

	maxAttempts = 3
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	Attempts int             `json:"attempts"`
}

// ReconcilePayload identifies the order whose total should be recomputed.
type ReconcilePayload struct {
	OrderID int64 `json:"order_id"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueReconcile pushes a total-reconciliation job for one order.
func (d *Dispatcher) EnqueueReconcile(ctx context.Context, orderID int64) error {
	return d.enqueue(ctx, QueueReconcile, "reconcile", ReconcilePayload{OrderID: orderID})
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

// WorkerHandlers holds the concrete job handlers, wired at the composition
// root so they have full access to infrastructure dependencies.
type WorkerHandlers struct {
	Reconcile *ReconcileWorker
}

// StartWorkerPool launches numWorkers goroutines consuming the job queue.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, handlers *WorkerHandlers, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, handlers, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, handlers *WorkerHandlers, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, QueueReconcile).Result()
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
	switch job.Type {
	case "reconcile":
		err = handlers.Reconcile.Handle(ctx, job.Payload)
	default:
		log.Warn().Str("type", job.Type).Msg("unknown job type, dropping")
		return
	}
	if err == nil {
		return
	}

	job.Attempts++
	if job.Attempts >= maxAttempts {
		SendToDLQ(ctx, rdb, queue, job.Type, job.Payload, err.Error(), job.Attempts)
		return
	}

	// Re-enqueue for another attempt
	encoded, marshalErr := json.Marshal(job)
	if marshalErr != nil {
		log.Error().Err(marshalErr).Msg("failed to re-marshal job for retry")
		return
	}
	if pushErr := rdb.LPush(ctx, queue, encoded).Err(); pushErr != nil {
		log.Error().Err(pushErr).Str("queue", queue).Msg("failed to re-enqueue job")
	}
}
