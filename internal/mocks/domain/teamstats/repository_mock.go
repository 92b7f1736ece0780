package teamstatsmock

import (
	context "context"

	teamstats "github.com/riskibarqy/football-pulse/internal/domain/teamstats"
	mock "github.com/stretchr/testify/mock"
)

// Repository is a mock type for the Repository type
type Repository struct {
	mock.Mock
}

// GetTeamStatistics provides a mock function with given fields: ctx, competitionID, teamID
func (_m *Repository) GetTeamStatistics(ctx context.Context, competitionID string, teamID int64) (teamstats.TeamStats, error) {
	ret := _m.Called(ctx, competitionID, teamID)

	if len(ret) == 0 {
		panic("no return value specified for GetTeamStatistics")
	}

	var r0 teamstats.TeamStats
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, int64) (teamstats.TeamStats, error)); ok {
		return rf(ctx, competitionID, teamID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, int64) teamstats.TeamStats); ok {
		r0 = rf(ctx, competitionID, teamID)
	} else {
		r0 = ret.Get(0).(teamstats.TeamStats)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, int64) error); ok {
		r1 = rf(ctx, competitionID, teamID)
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
