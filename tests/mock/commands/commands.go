//go:build unit

// Package commandsmock provides hand-written testify mocks for the command
// interfaces consumed by the HTTP handlers.
package commandsmock

import (
	"context"

	"barberpro/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockAuthCommands struct {
	mock.Mock
}

func (m *MockAuthCommands) Register(ctx context.Context, req commands.RegisterRequest) (*commands.AuthResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commands.AuthResult), args.Error(1)
}

func (m *MockAuthCommands) Login(ctx context.Context, email, plainPassword string) (*commands.AuthResult, error) {
	args := m.Called(ctx, email, plainPassword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commands.AuthResult), args.Error(1)
}

type MockAppointmentCommands struct {
	mock.Mock
}

func (m *MockAppointmentCommands) CreateAppointment(ctx context.Context, actorID uuid.UUID, req commands.CreateAppointmentRequest) (*commands.CreateAppointmentResult, error) {
	args := m.Called(ctx, actorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commands.CreateAppointmentResult), args.Error(1)
}

func (m *MockAppointmentCommands) CompleteAppointment(ctx context.Context, actorID, appointmentID uuid.UUID) (*commands.SettlementResult, error) {
	args := m.Called(ctx, actorID, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commands.SettlementResult), args.Error(1)
}

func (m *MockAppointmentCommands) CancelAppointment(ctx context.Context, actorID, appointmentID uuid.UUID) error {
	args := m.Called(ctx, actorID, appointmentID)
	return args.Error(0)
}

type MockShopCommands struct {
	mock.Mock
}

func (m *MockShopCommands) CreateShop(ctx context.Context, ownerID uuid.UUID, req commands.CreateShopRequest) (*commands.CreateShopResult, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commands.CreateShopResult), args.Error(1)
}

func (m *MockShopCommands) JoinShop(ctx context.Context, userID uuid.UUID, code string) error {
	args := m.Called(ctx, userID, code)
	return args.Error(0)
}
