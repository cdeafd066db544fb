package readstore

import (
	"context"

	"barberpro/internal/infra"
	"barberpro/internal/infra/db"
	"barberpro/internal/pkg/pgconv"
	"barberpro/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	const q = `
		SELECT id, name, email, role, shop_id, commission, is_active
		FROM users
		WHERE id = $1`

	var (
		v      queries.UserView
		shopID pgtype.UUID
	)
	err := s.db.QueryRow(ctx, q, id).Scan(
		&v.ID, &v.Name, &v.Email, &v.Role, &shopID, &v.Commission, &v.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	v.ShopID = pgconv.UUIDPtrFromPgtype(shopID)
	return &v, nil
}

func (s *UserReadStore) FindTeamByShop(ctx context.Context, shopID uuid.UUID) ([]*queries.UserView, error) {
	const q = `
		SELECT id, name, email, role, shop_id, commission, is_active
		FROM users
		WHERE shop_id = $1
		ORDER BY created_at`

	rows, err := s.db.Query(ctx, q, shopID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list team", err)
	}
	defer rows.Close()

	team := make([]*queries.UserView, 0)
	for rows.Next() {
		var (
			v   queries.UserView
			sid pgtype.UUID
		)
		if err := rows.Scan(&v.ID, &v.Name, &v.Email, &v.Role, &sid, &v.Commission, &v.IsActive); err != nil {
			return nil, infra.WrapRepoErr("failed to scan team member", err)
		}
		v.ShopID = pgconv.UUIDPtrFromPgtype(sid)
		team = append(team, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate team", err)
	}
	return team, nil
}
