package standing

import "github.com/riskibarqy/football-pulse/internal/domain/team"

// Standing is one row of a league table.
type Standing struct {
	Position       int
	Team           team.Ref
	PlayedGames    int
	Won            int
	Draw           int
	Lost           int
	Points         int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
}

// TopN returns the first n rows of table, or the whole table when it is shorter.
func TopN(table []Standing, n int) []Standing {
	if n <= 0 {
		return []Standing{}
	}
	if len(table) < n {
		n = len(table)
	}
	out := make([]Standing, n)
	copy(out, table[:n])
	return out
}
