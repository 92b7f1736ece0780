package team

import "context"

// Repository describes team reads needed by use cases.
type Repository interface {
	ListTeamsByCompetition(ctx context.Context, competitionID string) ([]Team, error)
}
