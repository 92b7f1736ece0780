package scorer

import "github.com/riskibarqy/football-pulse/internal/domain/team"

type PlayerRef struct {
	ID          int64
	Name        string
	Nationality string
}

// Scorer is one row of a competition's top scorers list.
type Scorer struct {
	Player  PlayerRef
	Team    team.Ref
	Goals   int
	Assists int
}
