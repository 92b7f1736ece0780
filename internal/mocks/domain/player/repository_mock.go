package playermock

import (
	context "context"

	player "github.com/riskibarqy/football-pulse/internal/domain/player"
	mock "github.com/stretchr/testify/mock"
)

// Repository is a mock type for the Repository type
type Repository struct {
	mock.Mock
}

// GetPlayer provides a mock function with given fields: ctx, playerID
func (_m *Repository) GetPlayer(ctx context.Context, playerID int64) (player.Profile, error) {
	ret := _m.Called(ctx, playerID)

	if len(ret) == 0 {
		panic("no return value specified for GetPlayer")
	}

	var r0 player.Profile
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (player.Profile, error)); ok {
		return rf(ctx, playerID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) player.Profile); ok {
		r0 = rf(ctx, playerID)
	} else {
		r0 = ret.Get(0).(player.Profile)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, playerID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewRepository creates a new instance of Repository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *Repository {
	m := &Repository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
