package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-pulse/internal/domain/player"
)

type PlayerService struct {
	repo player.Repository
}

func NewPlayerService(repo player.Repository) *PlayerService {
	return &PlayerService{repo: repo}
}

func (s *PlayerService) GetProfile(ctx context.Context, playerID string) (player.Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetProfile", entityAttr("player", playerID))
	defer span.End()

	id, err := parsePlayerID(playerID)
	if err != nil {
		return player.Profile{}, err
	}

	profile, err := s.repo.GetPlayer(ctx, id)
	if err != nil {
		return player.Profile{}, fmt.Errorf("get player profile: %w", err)
	}
	return profile, nil
}
