package shop

import (
	"errors"
	"strings"
)

var (
	ErrInvalidInviteCode = errors.New("invalid invite code")
	ErrEmptyName         = errors.New("shop name cannot be empty")
)

// InviteCode is the shop's join code. Stored and compared uppercase so that
// lookups are case-insensitive.
type InviteCode struct {
	value string
}

func NewInviteCode(value string) (InviteCode, error) {
	value = strings.ToUpper(strings.TrimSpace(value))
	if value == "" {
		return InviteCode{}, ErrInvalidInviteCode
	}
	return InviteCode{value: value}, nil
}

func (c InviteCode) String() string {
	return c.value
}

func (c InviteCode) Equals(other InviteCode) bool {
	return c.value == other.value
}
