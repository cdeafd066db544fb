package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"barberpro/internal/pkg/clock"
	"barberpro/internal/pkg/config"
	"barberpro/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

type InactiveCustomer struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	LastVisit time.Time
}

// CustomerSource feeds the sweep with customers overdue for a visit.
type CustomerSource interface {
	FindInactiveSince(ctx context.Context, cutoff time.Time) ([]InactiveCustomer, error)
}

// ReactivationWorker runs a daily sweep that enqueues a whatsapp nudge for
// every customer who has not visited within the inactivity window.
type ReactivationWorker struct {
	uow       shared.UnitOfWork
	source    CustomerSource
	clock     clock.Clock
	threshold time.Duration
	schedule  string
	cron      *cron.Cron
}

func NewReactivationWorker(
	uow shared.UnitOfWork,
	source CustomerSource,
	clk clock.Clock,
	policy config.PolicyConfig,
) *ReactivationWorker {
	return &ReactivationWorker{
		uow:       uow,
		source:    source,
		clock:     clk,
		threshold: time.Duration(policy.InactiveAfterDays) * 24 * time.Hour,
		schedule:  policy.ReactivationCron,
	}
}

func (w *ReactivationWorker) Start() error {
	w.cron = cron.New()
	_, err := w.cron.AddFunc(w.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := w.Sweep(ctx); err != nil {
			slog.Error("reactivation sweep failed", "error", err.Error())
		}
	})
	if err != nil {
		return err
	}
	w.cron.Start()
	slog.Info("reactivation worker started", "schedule", w.schedule)
	return nil
}

func (w *ReactivationWorker) Stop() {
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
	slog.Info("reactivation worker stopped")
}

// Sweep enqueues one reactivation job per overdue customer. Deduplication is
// the source's responsibility; a customer already nudged since their last
// visit is not returned again.
func (w *ReactivationWorker) Sweep(ctx context.Context) error {
	now := w.clock.Now()
	cutoff := now.Add(-w.threshold)

	candidates, err := w.source.FindInactiveSince(ctx, cutoff)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		slog.Debug("reactivation sweep found no overdue customers")
		return nil
	}

	err = w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, c := range candidates {
			payload, merr := json.Marshal(map[string]any{
				"customer_id":   c.ID.String(),
				"customer_name": c.Name,
				"phone":         c.Phone,
				"last_visit":    c.LastVisit,
			})
			if merr != nil {
				return merr
			}
			if cerr := tx.Notifications().CreateJob(ctx, tx.DB(), "whatsapp", "customer_reactivation", payload, now); cerr != nil {
				return cerr
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("reactivation sweep enqueued nudges", "customers", len(candidates))
	return nil
}
