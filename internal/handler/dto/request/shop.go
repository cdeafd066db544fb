package request

import "strings"

type CreateShopRequest struct {
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address"`
	Whatsapp string `json:"whatsapp"`
}

type JoinShopRequest struct {
	InviteCode string `json:"invite_code" binding:"required"`
}

func (r JoinShopRequest) NormalizedCode() string {
	return strings.ToUpper(strings.TrimSpace(r.InviteCode))
}
