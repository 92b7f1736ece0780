package team

import "github.com/riskibarqy/football-pulse/internal/domain/player"

// Team is a club taking part in a competition.
type Team struct {
	ID         int64
	Name       string
	ShortName  string
	TLA        string
	Crest      string
	Address    string
	Website    string
	Founded    int
	ClubColors string
	Venue      string
	Squad      []player.Player
}

// Ref is the short team reference embedded in matches, scorers and standings.
type Ref struct {
	ID    int64
	Name  string
	Crest string
}

func (t Team) Ref() Ref {
	return Ref{ID: t.ID, Name: t.Name, Crest: t.Crest}
}

// RosterSize is the number of players known for the team.
func (t Team) RosterSize() int {
	return len(t.Squad)
}
