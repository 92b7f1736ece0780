package teamstats

import "context"

type Repository interface {
	GetTeamStatistics(ctx context.Context, competitionID string, teamID int64) (TeamStats, error)
}
