package response

import (
	"barberpro/internal/usecase/commands"

	"github.com/google/uuid"
)

type AuthResponse struct {
	UserID uuid.UUID `json:"user_id"`
	Token  string    `json:"token"`
}

func FromAuthResult(r *commands.AuthResult) *AuthResponse {
	return &AuthResponse{
		UserID: r.UserID,
		Token:  r.Token,
	}
}
