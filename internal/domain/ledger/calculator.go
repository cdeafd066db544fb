// Package ledger computes the revenue split between the house and the
// servicing professional.
package ledger

import (
	"errors"
	"math"

	"barberpro/internal/domain/appointment"
	"barberpro/internal/domain/user"
)

var ErrNegativeAmount = errors.New("gross amount cannot be negative")

// Settle splits a gross amount by the professional's commission rate. The
// barber share is rounded to whole cents and the house share is derived by
// subtraction, so the two shares always sum exactly to the gross amount.
// Pure and safe for concurrent use.
func Settle(gross appointment.Money, rate user.Rate) (house, barber appointment.Money, err error) {
	if gross.Cents() < 0 {
		return appointment.Money{}, appointment.Money{}, ErrNegativeAmount
	}

	barberCents := int64(math.Round(float64(gross.Cents()) * rate.Float64()))
	houseCents := gross.Cents() - barberCents

	barber, err = appointment.NewMoney(barberCents)
	if err != nil {
		return appointment.Money{}, appointment.Money{}, err
	}
	house, err = appointment.NewMoney(houseCents)
	if err != nil {
		return appointment.Money{}, appointment.Money{}, err
	}
	return house, barber, nil
}
