package queries

import (
	"context"
	"time"

	"barberpro/internal/pkg/clock"
	"barberpro/internal/pkg/config"

	"github.com/google/uuid"
)

type CustomerReadStore interface {
	FindByShop(ctx context.Context, shopID uuid.UUID) ([]*CustomerView, error)
}

type CustomerQueries interface {
	// ListByShop returns the shop's customers with the inactivity flag
	// computed; onlyInactive narrows to customers overdue for a visit.
	ListByShop(ctx context.Context, shopID uuid.UUID, onlyInactive bool) ([]*CustomerView, error)
}

type customerQueriesImpl struct {
	store     CustomerReadStore
	clock     clock.Clock
	threshold time.Duration
}

func NewCustomerQueries(store CustomerReadStore, clk clock.Clock, policy config.PolicyConfig) CustomerQueries {
	return &customerQueriesImpl{
		store:     store,
		clock:     clk,
		threshold: time.Duration(policy.InactiveAfterDays) * 24 * time.Hour,
	}
}

func (q *customerQueriesImpl) ListByShop(ctx context.Context, shopID uuid.UUID, onlyInactive bool) ([]*CustomerView, error) {
	rows, err := q.store.FindByShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	result := make([]*CustomerView, 0, len(rows))
	for _, row := range rows {
		// Strictly greater: a customer seen exactly threshold ago is
		// still considered active.
		row.Inactive = now.Sub(row.LastVisit) > q.threshold
		if onlyInactive && !row.Inactive {
			continue
		}
		result = append(result, row)
	}
	return result, nil
}
