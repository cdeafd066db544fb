package customer

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName      = errors.New("customer name cannot be empty")
	ErrNegativeAmount = errors.New("visit amount cannot be negative")
)

// Customer is owned by the professional who serves them. Total spend is
// monotonically non-decreasing and customers are never deleted.
type Customer struct {
	id                  uuid.UUID
	name                string
	phone               string
	responsibleBarberID uuid.UUID
	totalSpentCents     int64
	lastVisit           time.Time
	createdAt           time.Time
	updatedAt           time.Time
}

func NewCustomer(name, phone string, responsibleBarberID uuid.UUID, now time.Time) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Customer{
		id:                  uuid.New(),
		name:                name,
		phone:               strings.TrimSpace(phone),
		responsibleBarberID: responsibleBarberID,
		totalSpentCents:     0,
		lastVisit:           now,
	}, nil
}

func ReconstructCustomer(
	id uuid.UUID,
	name, phone string,
	responsibleBarberID uuid.UUID,
	totalSpentCents int64,
	lastVisit time.Time,
	createdAt, updatedAt time.Time,
) *Customer {
	return &Customer{
		id:                  id,
		name:                name,
		phone:               phone,
		responsibleBarberID: responsibleBarberID,
		totalSpentCents:     totalSpentCents,
		lastVisit:           lastVisit,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}
}

// RecordVisit adds a completed-service amount to the cumulative spend and
// stamps the visit time.
func (c *Customer) RecordVisit(amountCents int64, at time.Time) error {
	if amountCents < 0 {
		return ErrNegativeAmount
	}
	c.totalSpentCents += amountCents
	c.lastVisit = at
	return nil
}

// IsInactive reports whether strictly more than threshold has elapsed since
// the last visit. Exactly threshold elapsed still counts as active.
func (c *Customer) IsInactive(now time.Time, threshold time.Duration) bool {
	return now.Sub(c.lastVisit) > threshold
}

func (c *Customer) ID() uuid.UUID                  { return c.id }
func (c *Customer) Name() string                   { return c.name }
func (c *Customer) Phone() string                  { return c.phone }
func (c *Customer) ResponsibleBarberID() uuid.UUID { return c.responsibleBarberID }
func (c *Customer) TotalSpentCents() int64         { return c.totalSpentCents }
func (c *Customer) LastVisit() time.Time           { return c.lastVisit }
func (c *Customer) CreatedAt() time.Time           { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time           { return c.updatedAt }
