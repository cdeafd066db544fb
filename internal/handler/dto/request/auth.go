package request

import (
	"encoding/json"
	"strings"
)

// EmailAddress lower-cases and trims the address while decoding, so binding
// validation and everything downstream see the canonical form.
type EmailAddress string

func (e *EmailAddress) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = EmailAddress(strings.ToLower(strings.TrimSpace(raw)))
	return nil
}

type RegisterRequest struct {
	Name     string       `json:"name" binding:"required"`
	Email    EmailAddress `json:"email" binding:"required,email"`
	Password string       `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    EmailAddress `json:"email" binding:"required,email"`
	Password string       `json:"password" binding:"required"`
}
