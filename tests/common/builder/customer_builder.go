//go:build unit || e2e

package builder

import (
	"time"

	"barberpro/internal/domain/customer"

	"github.com/google/uuid"
)

type CustomerBuilder struct {
	Name                string
	Phone               string
	ResponsibleBarberID uuid.UUID
	Now                 time.Time
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		Name:                "João Pereira",
		Phone:               "+5511999990000",
		ResponsibleBarberID: uuid.New(),
		Now:                 time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (c *CustomerBuilder) With(mutate func(*CustomerBuilder)) *CustomerBuilder {
	mutate(c)
	return c
}

func (c *CustomerBuilder) BuildDomain() (*customer.Customer, error) {
	return customer.NewCustomer(c.Name, c.Phone, c.ResponsibleBarberID, c.Now)
}

func (c *CustomerBuilder) WithName(name string) *CustomerBuilder {
	c.Name = name
	return c
}

func (c *CustomerBuilder) WithNow(now time.Time) *CustomerBuilder {
	c.Now = now
	return c
}
