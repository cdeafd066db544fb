//go:build unit

// Package queriesmock provides hand-written testify mocks for the read-side
// interfaces consumed by the HTTP handlers.
package queriesmock

import (
	"context"

	"barberpro/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockUserReadStore struct {
	mock.Mock
}

func (m *MockUserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.UserView), args.Error(1)
}

func (m *MockUserReadStore) FindTeamByShop(ctx context.Context, shopID uuid.UUID) ([]*queries.UserView, error) {
	args := m.Called(ctx, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*queries.UserView), args.Error(1)
}

type MockSyncQueries struct {
	mock.Mock
}

func (m *MockSyncQueries) Workspace(ctx context.Context, userID uuid.UUID) (*queries.WorkspaceView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.WorkspaceView), args.Error(1)
}

type MockAppointmentQueries struct {
	mock.Mock
}

func (m *MockAppointmentQueries) Queue(ctx context.Context, shopID uuid.UUID) ([]*queries.AppointmentView, error) {
	args := m.Called(ctx, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*queries.AppointmentView), args.Error(1)
}
