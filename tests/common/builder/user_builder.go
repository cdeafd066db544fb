//go:build unit || e2e

package builder

import (
	"barberpro/internal/domain/user"
)

type UserBuilder struct {
	Name         string
	Email        string
	PasswordHash string
	Commission   float64
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Name:         "Carlos Silva",
		Email:        "carlos@example.com",
		PasswordHash: "hashed_password",
		Commission:   0.5,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	rate, err := user.NewRate(u.Commission)
	if err != nil {
		return nil, err
	}

	return user.NewUser(u.Name, email, u.PasswordHash, rate), nil
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithCommission(rate float64) *UserBuilder {
	u.Commission = rate
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}
