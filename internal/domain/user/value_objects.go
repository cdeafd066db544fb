package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidRole  = errors.New("invalid role")
	ErrInvalidRate  = errors.New("commission rate must be between 0 and 1")
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" || !emailPattern.MatchString(value) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: value}, nil
}

func (e Email) String() string {
	return e.value
}

// Rate is a commission fraction retained by the professional.
type Rate struct {
	value float64
}

func NewRate(value float64) (Rate, error) {
	if value < 0 || value > 1 {
		return Rate{}, ErrInvalidRate
	}
	return Rate{value: value}, nil
}

func (r Rate) Float64() float64 {
	return r.value
}
