package match

import "context"

// Repository describes match reads needed by use cases.
type Repository interface {
	ListMatches(ctx context.Context) ([]Match, error)
	ListMatchesByCompetition(ctx context.Context, competitionID string) ([]Match, error)
}
