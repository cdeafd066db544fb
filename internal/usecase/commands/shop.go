package commands

import (
	"context"
	"log/slog"

	"barberpro/internal/domain/shop"
	"barberpro/internal/domain/user"
	"barberpro/internal/infra"
	"barberpro/internal/pkg/config"
	"barberpro/internal/pkg/errs"
	"barberpro/internal/pkg/invite"
	"barberpro/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound        = errs.New("user not found")
	ErrShopNotFound        = errs.New("shop not found")
	ErrAlreadyAffiliated   = errs.New("user is already affiliated with a shop")
	ErrDuplicateInviteCode = errs.New("invite code collision")
)

type CreateShopRequest struct {
	Name     string
	Address  string
	Whatsapp string
}

type CreateShopResult struct {
	ShopID     uuid.UUID
	InviteCode string
}

type ShopCommands interface {
	CreateShop(ctx context.Context, ownerID uuid.UUID, req CreateShopRequest) (*CreateShopResult, error)
	JoinShop(ctx context.Context, userID uuid.UUID, code string) error
}

type shopUseCaseImpl struct {
	uow    shared.UnitOfWork
	policy config.PolicyConfig
}

func NewShopUseCase(uow shared.UnitOfWork, policy config.PolicyConfig) ShopCommands {
	return &shopUseCaseImpl{uow: uow, policy: policy}
}

func (s *shopUseCaseImpl) CreateShop(ctx context.Context, ownerID uuid.UUID, req CreateShopRequest) (*CreateShopResult, error) {
	owner, err := s.uow.CommandReads().UserByID(ctx, ownerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if owner.ShopID != nil {
		return nil, ErrAlreadyAffiliated
	}

	// Invite codes are random; a collision is possible but vanishingly rare,
	// so generation retries a few times before surfacing the failure.
	retries := s.policy.InviteCodeRetries
	if retries < 1 {
		retries = 1
	}

	var lastErr error
	for attempt := 0; attempt < retries; attempt++ {
		result, cerr := s.tryCreateShop(ctx, ownerID, req)
		if cerr == nil {
			return result, nil
		}
		if !errs.Is(cerr, ErrDuplicateInviteCode) {
			return nil, cerr
		}
		slog.Warn("invite code collision, regenerating", "attempt", attempt+1)
		lastErr = cerr
	}
	return nil, lastErr
}

func (s *shopUseCaseImpl) tryCreateShop(ctx context.Context, ownerID uuid.UUID, req CreateShopRequest) (*CreateShopResult, error) {
	rawCode, err := invite.NewCode()
	if err != nil {
		return nil, err
	}
	code, err := shop.NewInviteCode(rawCode)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}

	entity, err := shop.NewShop(req.Name, req.Address, req.Whatsapp, ownerID, code)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}

	var shopID uuid.UUID
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, cerr := tx.Shops().Create(ctx, tx.DB(), entity)
		if cerr != nil {
			if infra.IsKind(cerr, infra.KindDuplicateKey) {
				return errs.Mark(cerr, ErrDuplicateInviteCode)
			}
			return cerr
		}
		shopID = id
		// Creator becomes OWNER of the new shop in the same transaction.
		return tx.Users().BindShop(ctx, tx.DB(), ownerID, id, user.RoleOwner)
	})
	if err != nil {
		return nil, err
	}

	return &CreateShopResult{ShopID: shopID, InviteCode: code.String()}, nil
}

func (s *shopUseCaseImpl) JoinShop(ctx context.Context, userID uuid.UUID, code string) error {
	normalized, err := shop.NewInviteCode(code)
	if err != nil {
		return ErrShopNotFound
	}

	target, err := s.uow.CommandReads().ShopByInviteCode(ctx, normalized.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrShopNotFound
		}
		return err
	}

	joining, err := s.uow.CommandReads().UserByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if joining.ShopID != nil {
		return ErrAlreadyAffiliated
	}

	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().BindShop(ctx, tx.DB(), userID, target.ID, user.RoleStaff)
	})
}
