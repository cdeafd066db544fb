package repository

import (
	"context"

	"barberpro/internal/domain/user"
	"barberpro/internal/infra"
	"barberpro/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error) {
	const q = `
		INSERT INTO users (id, name, email, password_hash, role, shop_id, commission, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, q,
		u.ID(), u.Name(), u.Email().String(), u.PasswordHash(),
		u.Role().String(), u.ShopID(), u.Commission().Float64(), u.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) BindShop(ctx context.Context, tx db.DBTX, userID, shopID uuid.UUID, role user.Role) error {
	const q = `
		UPDATE users
		SET shop_id = $2, role = $3, updated_at = now()
		WHERE id = $1 AND shop_id IS NULL`

	tag, err := tx.Exec(ctx, q, userID, shopID, role.String())
	if err != nil {
		return infra.WrapRepoErr("failed to bind user to shop", err)
	}
	if tag.RowsAffected() == 0 {
		// Either the user vanished or another request affiliated them first.
		return infra.WrapRepoErr("user not found or already affiliated", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) SetCommission(ctx context.Context, tx db.DBTX, userID uuid.UUID, rate user.Rate) error {
	const q = `
		UPDATE users
		SET commission = $2, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, q, userID, rate.Float64())
	if err != nil {
		return infra.WrapRepoErr("failed to set commission", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
