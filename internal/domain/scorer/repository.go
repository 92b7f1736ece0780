package scorer

import "context"

type Repository interface {
	ListScorersByCompetition(ctx context.Context, competitionID string) ([]Scorer, error)
}
