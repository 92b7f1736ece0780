package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/football-pulse/internal/domain/match"
)

type MatchService struct {
	repo match.Repository
}

func NewMatchService(repo match.Repository) *MatchService {
	return &MatchService{repo: repo}
}

// List returns the matches of a competition, or the provider's default match
// list when competitionID is empty.
func (s *MatchService) List(ctx context.Context, competitionID string) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.List", competitionAttr(competitionID))
	defer span.End()

	if strings.TrimSpace(competitionID) == "" {
		items, err := s.repo.ListMatches(ctx)
		if err != nil {
			return nil, fmt.Errorf("list matches: %w", err)
		}
		return items, nil
	}

	id, err := normalizeCompetitionID(competitionID)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ListMatchesByCompetition(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list matches by competition: %w", err)
	}
	return items, nil
}
