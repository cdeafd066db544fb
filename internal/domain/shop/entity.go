package shop

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Shop is the tenant unit owning professionals, customers and appointments.
// The invite code is generated once and never changes.
type Shop struct {
	id         uuid.UUID
	name       string
	address    string
	whatsapp   string
	ownerID    uuid.UUID
	inviteCode InviteCode
	createdAt  time.Time
	updatedAt  time.Time
}

func NewShop(name, address, whatsapp string, ownerID uuid.UUID, inviteCode InviteCode) (*Shop, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Shop{
		id:         uuid.New(),
		name:       name,
		address:    strings.TrimSpace(address),
		whatsapp:   strings.TrimSpace(whatsapp),
		ownerID:    ownerID,
		inviteCode: inviteCode,
	}, nil
}

func ReconstructShop(
	id uuid.UUID,
	name, address, whatsapp string,
	ownerID uuid.UUID,
	inviteCode InviteCode,
	createdAt, updatedAt time.Time,
) *Shop {
	return &Shop{
		id:         id,
		name:       name,
		address:    address,
		whatsapp:   whatsapp,
		ownerID:    ownerID,
		inviteCode: inviteCode,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (s *Shop) ID() uuid.UUID          { return s.id }
func (s *Shop) Name() string           { return s.name }
func (s *Shop) Address() string        { return s.address }
func (s *Shop) Whatsapp() string       { return s.whatsapp }
func (s *Shop) OwnerID() uuid.UUID     { return s.ownerID }
func (s *Shop) InviteCode() InviteCode { return s.inviteCode }
func (s *Shop) CreatedAt() time.Time   { return s.createdAt }
func (s *Shop) UpdatedAt() time.Time   { return s.updatedAt }
