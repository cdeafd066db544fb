package appointment

import "errors"

var ErrNegativePrice = errors.New("price cannot be negative")

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Reais() float64 {
	return float64(m.cents) / 100.0
}
