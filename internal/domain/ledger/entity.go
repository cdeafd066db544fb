package ledger

import (
	"time"

	"barberpro/internal/domain/appointment"
	"barberpro/internal/domain/user"

	"github.com/google/uuid"
)

// FinancialRecord is the immutable settlement of one completed appointment.
// Exactly one record exists per completion.
type FinancialRecord struct {
	id          uuid.UUID
	barberID    uuid.UUID
	amount      appointment.Money
	houseShare  appointment.Money
	barberShare appointment.Money
	settledAt   time.Time
	description string
}

// NewFinancialRecord settles the gross amount with the professional's current
// commission rate and stamps the settlement time.
func NewFinancialRecord(
	barberID uuid.UUID,
	gross appointment.Money,
	rate user.Rate,
	settledAt time.Time,
	description string,
) (*FinancialRecord, error) {
	house, barber, err := Settle(gross, rate)
	if err != nil {
		return nil, err
	}
	return &FinancialRecord{
		id:          uuid.New(),
		barberID:    barberID,
		amount:      gross,
		houseShare:  house,
		barberShare: barber,
		settledAt:   settledAt,
		description: description,
	}, nil
}

func ReconstructFinancialRecord(
	id, barberID uuid.UUID,
	amount, houseShare, barberShare appointment.Money,
	settledAt time.Time,
	description string,
) *FinancialRecord {
	return &FinancialRecord{
		id:          id,
		barberID:    barberID,
		amount:      amount,
		houseShare:  houseShare,
		barberShare: barberShare,
		settledAt:   settledAt,
		description: description,
	}
}

func (f *FinancialRecord) ID() uuid.UUID                  { return f.id }
func (f *FinancialRecord) BarberID() uuid.UUID            { return f.barberID }
func (f *FinancialRecord) Amount() appointment.Money      { return f.amount }
func (f *FinancialRecord) HouseShare() appointment.Money  { return f.houseShare }
func (f *FinancialRecord) BarberShare() appointment.Money { return f.barberShare }
func (f *FinancialRecord) SettledAt() time.Time           { return f.settledAt }
func (f *FinancialRecord) Description() string            { return f.description }
