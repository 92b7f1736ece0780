package competitionmock

import (
	context "context"

	competition "github.com/riskibarqy/football-pulse/internal/domain/competition"
	mock "github.com/stretchr/testify/mock"
)

// Repository is a mock type for the Repository type
type Repository struct {
	mock.Mock
}

// ListCompetitions provides a mock function with given fields: ctx
func (_m *Repository) ListCompetitions(ctx context.Context) ([]competition.Competition, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ListCompetitions")
	}

	var r0 []competition.Competition
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]competition.Competition, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []competition.Competition); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]competition.Competition)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
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
