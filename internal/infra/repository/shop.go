package repository

import (
	"context"

	"barberpro/internal/domain/shop"
	"barberpro/internal/infra"
	"barberpro/internal/infra/db"

	"github.com/google/uuid"
)

type ShopRepository struct{}

func NewShopRepository() *ShopRepository {
	return &ShopRepository{}
}

func (r *ShopRepository) Create(ctx context.Context, tx db.DBTX, s *shop.Shop) (uuid.UUID, error) {
	const q = `
		INSERT INTO shops (id, name, address, whatsapp, owner_id, invite_code)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, q,
		s.ID(), s.Name(), s.Address(), s.Whatsapp(), s.OwnerID(), s.InviteCode().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create shop", err)
	}
	return id, nil
}
