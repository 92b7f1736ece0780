package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-pulse/internal/domain/team"
)

type TeamService struct {
	repo team.Repository
}

func NewTeamService(repo team.Repository) *TeamService {
	return &TeamService{repo: repo}
}

func (s *TeamService) ListByCompetition(ctx context.Context, competitionID string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListByCompetition", competitionAttr(competitionID))
	defer span.End()

	id, err := normalizeCompetitionID(competitionID)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ListTeamsByCompetition(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list teams by competition: %w", err)
	}
	return items, nil
}
