package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-pulse/internal/domain/competition"
)

// FeaturedCompetitions is how many competitions the home page highlights.
const FeaturedCompetitions = 5

type CompetitionService struct {
	repo competition.Repository
}

func NewCompetitionService(repo competition.Repository) *CompetitionService {
	return &CompetitionService{repo: repo}
}

func (s *CompetitionService) List(ctx context.Context) ([]competition.Competition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.List")
	defer span.End()

	items, err := s.repo.ListCompetitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list competitions: %w", err)
	}
	return items, nil
}

// Featured returns the first n competitions in provider order.
func (s *CompetitionService) Featured(ctx context.Context, n int) ([]competition.Competition, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return competition.Featured(items, n), nil
}
