package scorermock

import (
	context "context"

	scorer "github.com/riskibarqy/football-pulse/internal/domain/scorer"
	mock "github.com/stretchr/testify/mock"
)

// Repository is a mock type for the Repository type
type Repository struct {
	mock.Mock
}

// ListScorersByCompetition provides a mock function with given fields: ctx, competitionID
func (_m *Repository) ListScorersByCompetition(ctx context.Context, competitionID string) ([]scorer.Scorer, error) {
	ret := _m.Called(ctx, competitionID)

	if len(ret) == 0 {
		panic("no return value specified for ListScorersByCompetition")
	}

	var r0 []scorer.Scorer
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) ([]scorer.Scorer, error)); ok {
		return rf(ctx, competitionID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) []scorer.Scorer); ok {
		r0 = rf(ctx, competitionID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]scorer.Scorer)
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
