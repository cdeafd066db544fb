//go:build unit

package commands_test

import (
	"context"
	"testing"

	"barberpro/internal/domain/user"
	"barberpro/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetCommission(t *testing.T) {
	ctx := context.Background()

	t.Run("オーナーは自店スタッフの歩合を変更できる", func(t *testing.T) {
		store := newFakeStore()
		shopID := uuid.New()
		ownerID := store.addUser(user.RoleOwner, &shopID, 0.5)
		barberID := store.addUser(user.RoleStaff, &shopID, 0.5)
		uc := commands.NewCommissionUseCase(newFakeUoW(store))

		require.NoError(t, uc.SetCommission(ctx, ownerID, barberID, 0.3))
		assert.InDelta(t, 0.3, store.users[barberID].Commission, 1e-9)
	})

	t.Run("スタッフは変更できない", func(t *testing.T) {
		store := newFakeStore()
		shopID := uuid.New()
		staffID := store.addUser(user.RoleStaff, &shopID, 0.5)
		barberID := store.addUser(user.RoleStaff, &shopID, 0.5)
		uc := commands.NewCommissionUseCase(newFakeUoW(store))

		err := uc.SetCommission(ctx, staffID, barberID, 0.3)
		assert.ErrorIs(t, err, commands.ErrNotAuthorized)
		assert.InDelta(t, 0.5, store.users[barberID].Commission, 1e-9)
	})

	t.Run("他店のオーナーは変更できない", func(t *testing.T) {
		store := newFakeStore()
		shopA := uuid.New()
		shopB := uuid.New()
		ownerID := store.addUser(user.RoleOwner, &shopA, 0.5)
		barberID := store.addUser(user.RoleStaff, &shopB, 0.5)
		uc := commands.NewCommissionUseCase(newFakeUoW(store))

		assert.ErrorIs(t, uc.SetCommission(ctx, ownerID, barberID, 0.3), commands.ErrNotAuthorized)
	})

	t.Run("範囲外の歩合NG", func(t *testing.T) {
		store := newFakeStore()
		shopID := uuid.New()
		ownerID := store.addUser(user.RoleOwner, &shopID, 0.5)
		barberID := store.addUser(user.RoleStaff, &shopID, 0.5)
		uc := commands.NewCommissionUseCase(newFakeUoW(store))

		assert.ErrorIs(t, uc.SetCommission(ctx, ownerID, barberID, 1.5), commands.ErrInvalidInput)
		assert.ErrorIs(t, uc.SetCommission(ctx, ownerID, barberID, -0.1), commands.ErrInvalidInput)
	})

	t.Run("存在しないスタッフNG", func(t *testing.T) {
		store := newFakeStore()
		shopID := uuid.New()
		ownerID := store.addUser(user.RoleOwner, &shopID, 0.5)
		uc := commands.NewCommissionUseCase(newFakeUoW(store))

		assert.ErrorIs(t, uc.SetCommission(ctx, ownerID, uuid.New(), 0.3), commands.ErrBarberNotFound)
	})
}
