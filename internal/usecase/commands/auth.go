package commands

import (
	"context"

	"barberpro/internal/domain/user"
	"barberpro/internal/infra"
	"barberpro/internal/pkg/config"
	"barberpro/internal/pkg/errs"
	"barberpro/internal/pkg/jwt"
	"barberpro/internal/pkg/password"
	"barberpro/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken         = errs.New("email already registered")
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrUserInactive       = errs.New("user account is inactive")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type RegisterRequest struct {
	Name     string
	Email    string
	Password string
}

type AuthResult struct {
	UserID uuid.UUID
	Token  string
}

type AuthCommands interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, email, plainPassword string) (*AuthResult, error)
}

type authUseCaseImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	policy     config.PolicyConfig
}

func NewAuthUseCase(uow shared.UnitOfWork, jwtService *jwt.Service, policy config.PolicyConfig) AuthCommands {
	return &authUseCaseImpl{
		uow:        uow,
		jwtService: jwtService,
		policy:     policy,
	}
}

func (a *authUseCaseImpl) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}

	// New accounts start as unaffiliated STAFF with the default rate.
	rate, err := user.NewRate(a.policy.DefaultCommissionRate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}

	entity := user.NewUser(req.Name, email, hash, rate)

	var userID uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, cerr := tx.Users().Create(ctx, tx.DB(), entity)
		if cerr != nil {
			if infra.IsKind(cerr, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return cerr
		}
		userID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := a.jwtService.GenerateToken(userID, entity.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &AuthResult{UserID: userID, Token: token}, nil
}

func (a *authUseCaseImpl) Login(ctx context.Context, email, plainPassword string) (*AuthResult, error) {
	normalized, err := user.NewEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	creds, err := a.uow.CommandReads().CredentialsByEmail(ctx, normalized.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !creds.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.Compare(creds.PasswordHash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(creds.Role)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(creds.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &AuthResult{UserID: creds.ID, Token: token}, nil
}
