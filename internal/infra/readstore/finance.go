package readstore

import (
	"context"

	"barberpro/internal/infra"
	"barberpro/internal/infra/db"
	"barberpro/internal/usecase/queries"

	"github.com/google/uuid"
)

type FinanceReadStore struct {
	db db.DBTX
}

func NewFinanceReadStore(dbtx db.DBTX) *FinanceReadStore {
	return &FinanceReadStore{db: dbtx}
}

func (s *FinanceReadStore) FindByShop(ctx context.Context, shopID uuid.UUID) ([]*queries.FinancialRecordView, error) {
	const q = `
		SELECT f.id, f.barber_id, f.amount_cents, f.house_cents, f.barber_cents, f.settled_at, f.description
		FROM financial_records f
		JOIN users b ON b.id = f.barber_id
		WHERE b.shop_id = $1
		ORDER BY f.settled_at DESC`

	rows, err := s.db.Query(ctx, q, shopID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list financial records", err)
	}
	defer rows.Close()

	records := make([]*queries.FinancialRecordView, 0)
	for rows.Next() {
		var v queries.FinancialRecordView
		err := rows.Scan(&v.ID, &v.BarberID, &v.AmountCents, &v.HouseCents, &v.BarberCents, &v.SettledAt, &v.Description)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan financial record", err)
		}
		records = append(records, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate financial records", err)
	}
	return records, nil
}

// SummaryByShop aggregates settled revenue in SQL so totals stay exact
// regardless of how many records the shop has accumulated.
func (s *FinanceReadStore) SummaryByShop(ctx context.Context, shopID uuid.UUID) (*queries.FinanceSummaryView, error) {
	const q = `
		SELECT f.barber_id, b.name,
		       COALESCE(SUM(f.amount_cents), 0),
		       COALESCE(SUM(f.barber_cents), 0),
		       COALESCE(SUM(f.house_cents), 0)
		FROM financial_records f
		JOIN users b ON b.id = f.barber_id
		WHERE b.shop_id = $1
		GROUP BY f.barber_id, b.name
		ORDER BY SUM(f.amount_cents) DESC`

	rows, err := s.db.Query(ctx, q, shopID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to summarize finances", err)
	}
	defer rows.Close()

	summary := &queries.FinanceSummaryView{PerBarber: make([]*queries.BarberFinanceView, 0)}
	for rows.Next() {
		var v queries.BarberFinanceView
		err := rows.Scan(&v.BarberID, &v.BarberName, &v.AmountCents, &v.BarberCents, &v.HouseCents)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan finance summary row", err)
		}
		summary.TotalCents += v.AmountCents
		summary.BarbersCents += v.BarberCents
		summary.HouseCents += v.HouseCents
		summary.PerBarber = append(summary.PerBarber, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate finance summary", err)
	}
	return summary, nil
}

func (s *FinanceReadStore) LeaderboardByShop(ctx context.Context, shopID uuid.UUID) ([]*queries.PerformanceRowView, error) {
	const q = `
		SELECT f.barber_id, b.name,
		       COALESCE(SUM(f.amount_cents), 0),
		       COUNT(*)
		FROM financial_records f
		JOIN users b ON b.id = f.barber_id
		WHERE b.shop_id = $1
		GROUP BY f.barber_id, b.name
		ORDER BY SUM(f.amount_cents) DESC, COUNT(*) DESC`

	rows, err := s.db.Query(ctx, q, shopID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build leaderboard", err)
	}
	defer rows.Close()

	board := make([]*queries.PerformanceRowView, 0)
	for rows.Next() {
		var v queries.PerformanceRowView
		if err := rows.Scan(&v.BarberID, &v.BarberName, &v.RevenueCents, &v.CompletedCuts); err != nil {
			return nil, infra.WrapRepoErr("failed to scan leaderboard row", err)
		}
		board = append(board, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate leaderboard", err)
	}
	return board, nil
}
