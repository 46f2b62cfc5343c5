package worker

// sweep_cron.go
// Background goroutine that periodically enqueues a reconcile job for every
// order. Synchronous reconciliation keeps totals consistent on the write
// path; the sweep repairs drift introduced by out-of-band writes (seed
// scripts, manual SQL, other services touching order_infos directly).

import (
	"context"
	"time"

	"orderdesk/internal/repository"

	"github.com/rs/zerolog/log"
)

const sweepPageSize = 200

// SweepCronConfig holds all dependencies for the sweep goroutine.
type SweepCronConfig struct {
	Orders     repository.OrderRepository
	Dispatcher *Dispatcher
	Interval   time.Duration
}

// StartSweepCron launches a background goroutine that ticks at the configured
// interval and enqueues one reconcile job per order, a page at a time.
// It respects the context for graceful shutdown.
func StartSweepCron(ctx context.Context, cfg SweepCronConfig) {
	go func() {
		ticker := time.NewTicker(cfg.Interval)
		defer ticker.Stop()

		log.Info().Dur("interval", cfg.Interval).Msg("sweep_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("sweep_cron: shutting down")
				return
			case <-ticker.C:
				runSweep(ctx, cfg)
			}
		}
	}()
}

func runSweep(ctx context.Context, cfg SweepCronConfig) {
	enqueued := 0
	for offset := 0; ; offset += sweepPageSize {
		ids, err := cfg.Orders.ListIDs(ctx, offset, sweepPageSize)
		if err != nil {
			log.Error().Err(err).Msg("sweep_cron: failed to page order ids")
			return
		}
		if len(ids) == 0 {
			break
		}
		for _, id := range ids {
			if err := cfg.Dispatcher.EnqueueReconcile(ctx, id); err != nil {
				log.Error().Int64("orderid", id).Err(err).Msg("sweep_cron: enqueue failed")
				continue
			}
			enqueued++
		}
	}
	log.Debug().Int("enqueued", enqueued).Msg("sweep_cron: pass complete")
}
