package teammock

import (
	context "context"

	team "github.com/riskibarqy/football-pulse/internal/domain/team"
	mock "github.com/stretchr/testify/mock"
)

// Repository is a mock type for the Repository type
type Repository struct {
	mock.Mock
}

// ListTeamsByCompetition provides a mock function with given fields: ctx, competitionID
func (_m *Repository) ListTeamsByCompetition(ctx context.Context, competitionID string) ([]team.Team, error) {
	ret := _m.Called(ctx, competitionID)

	if len(ret) == 0 {
		panic("no return value specified for ListTeamsByCompetition")
	}

	var r0 []team.Team
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) ([]team.Team, error)); ok {
		return rf(ctx, competitionID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) []team.Team); ok {
		r0 = rf(ctx, competitionID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]team.Team)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, competitionID)
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
