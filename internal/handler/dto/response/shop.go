package response

import (
	"barberpro/internal/usecase/commands"

	"github.com/google/uuid"
)

type ShopCreatedResponse struct {
	ShopID     uuid.UUID `json:"shop_id"`
	InviteCode string    `json:"invite_code"`
}

func FromCreateShopResult(r *commands.CreateShopResult) *ShopCreatedResponse {
	return &ShopCreatedResponse{
		ShopID:     r.ShopID,
		InviteCode: r.InviteCode,
	}
}
