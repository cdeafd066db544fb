package queries

import (
	"context"

	"github.com/google/uuid"
)

type FinanceReadStore interface {
	FindByShop(ctx context.Context, shopID uuid.UUID) ([]*FinancialRecordView, error)
	SummaryByShop(ctx context.Context, shopID uuid.UUID) (*FinanceSummaryView, error)
	LeaderboardByShop(ctx context.Context, shopID uuid.UUID) ([]*PerformanceRowView, error)
}

type FinanceQueries interface {
	Summary(ctx context.Context, shopID uuid.UUID) (*FinanceSummaryView, error)
}

type PerformanceQueries interface {
	// Leaderboard ranks the shop's barbers by settled revenue.
	Leaderboard(ctx context.Context, shopID uuid.UUID) ([]*PerformanceRowView, error)
}

type financeQueriesImpl struct {
	store FinanceReadStore
}

func NewFinanceQueries(store FinanceReadStore) FinanceQueries {
	return &financeQueriesImpl{store: store}
}

func (q *financeQueriesImpl) Summary(ctx context.Context, shopID uuid.UUID) (*FinanceSummaryView, error) {
	return q.store.SummaryByShop(ctx, shopID)
}

type performanceQueriesImpl struct {
	store FinanceReadStore
}

func NewPerformanceQueries(store FinanceReadStore) PerformanceQueries {
	return &performanceQueriesImpl{store: store}
}

func (q *performanceQueriesImpl) Leaderboard(ctx context.Context, shopID uuid.UUID) ([]*PerformanceRowView, error) {
	return q.store.LeaderboardByShop(ctx, shopID)
}
