package standing

import "context"

type Repository interface {
	// ListStandingsByCompetition returns the table of the first standings group.
	ListStandingsByCompetition(ctx context.Context, competitionID string) ([]Standing, error)
}
