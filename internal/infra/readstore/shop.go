package readstore

import (
	"context"

	"barberpro/internal/infra"
	"barberpro/internal/infra/db"
	"barberpro/internal/pkg/pgconv"
	"barberpro/internal/usecase/queries"

	"github.com/google/uuid"
)

type ShopReadStore struct {
	db db.DBTX
}

func NewShopReadStore(dbtx db.DBTX) *ShopReadStore {
	return &ShopReadStore{db: dbtx}
}

func (s *ShopReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ShopView, error) {
	const q = `
		SELECT id, name, address, whatsapp, owner_id, invite_code, created_at
		FROM shops
		WHERE id = $1`

	var v queries.ShopView
	err := s.db.QueryRow(ctx, q, id).Scan(
		&v.ID, &v.Name, &v.Address, &v.Whatsapp, &v.OwnerID, &v.InviteCode, &v.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("shop not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find shop", err)
	}
	return &v, nil
}
