package worker

import (
	"context"
	"encoding/json"

	"orderdesk/internal/service"

	"github.com/rs/zerolog/log"
)

// ReconcileWorker recomputes one order's total from a queued job. The sweep
// cron feeds this queue; synchronous mutations never go through here.
type ReconcileWorker struct {
	totals service.OrderTotalService
}

func NewReconcileWorker(totals service.OrderTotalService) *ReconcileWorker {
	return &ReconcileWorker{totals: totals}
}

func (w *ReconcileWorker) Handle(ctx context.Context, payload json.RawMessage) error {
	var p ReconcilePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return err
	}

	total, err := w.totals.RecomputeTotal(ctx, p.OrderID)
	if err != nil {
		log.Error().Int64("orderid", p.OrderID).Err(err).Msg("reconcile job failed")
		return err
	}

	log.Debug().Int64("orderid", p.OrderID).Int64("total", total).Msg("order total reconciled")
	return nil
}
