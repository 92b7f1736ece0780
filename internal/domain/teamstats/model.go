package teamstats

import "github.com/riskibarqy/football-pulse/internal/domain/team"

// TeamStats is the season summary of one team inside a competition.
type TeamStats struct {
	Team          team.Ref
	CleanSheets   int
	GoalsScored   int
	GoalsConceded int
	YellowCards   int
	RedCards      int
}
