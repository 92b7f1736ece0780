package footballdata

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/football-pulse/internal/domain/competition"
	"github.com/riskibarqy/football-pulse/internal/domain/match"
	"github.com/riskibarqy/football-pulse/internal/domain/player"
	"github.com/riskibarqy/football-pulse/internal/domain/scorer"
	"github.com/riskibarqy/football-pulse/internal/domain/standing"
	"github.com/riskibarqy/football-pulse/internal/domain/team"
	"github.com/riskibarqy/football-pulse/internal/domain/teamstats"
)

type competitionsEnvelope struct {
	Competitions []competitionPayload `json:"competitions" validate:"required,dive"`
}

type seasonPayload struct {
	ID              int64  `json:"id"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	CurrentMatchday *int   `json:"currentMatchday"`
}

type competitionPayload struct {
	ID            int64          `json:"id" validate:"required"`
	Name          string         `json:"name" validate:"required"`
	Code          string         `json:"code"`
	Emblem        string         `json:"emblem"`
	CurrentSeason *seasonPayload `json:"currentSeason"`
}

type teamsEnvelope struct {
	Teams []teamPayload `json:"teams" validate:"required,dive"`
}

type teamPayload struct {
	ID         int64           `json:"id" validate:"required"`
	Name       string          `json:"name" validate:"required"`
	ShortName  string          `json:"shortName"`
	TLA        string          `json:"tla"`
	Crest      string          `json:"crest"`
	Address    string          `json:"address"`
	Website    string          `json:"website"`
	Founded    *int            `json:"founded"`
	ClubColors string          `json:"clubColors"`
	Venue      string          `json:"venue"`
	Squad      []playerPayload `json:"squad" validate:"omitempty,dive"`
}

type playerPayload struct {
	ID          int64  `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Position    string `json:"position"`
	DateOfBirth string `json:"dateOfBirth"`
	Nationality string `json:"nationality"`
	ShirtNumber *int   `json:"shirtNumber"`
	LastUpdated string `json:"lastUpdated"`
}

type teamRefPayload struct {
	ID    int64  `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Crest string `json:"crest"`
}

// matchTeamPayload is a side of a fixture. Knockout fixtures list their teams
// as null until the previous round is decided.
type matchTeamPayload struct {
	ID    *int64  `json:"id"`
	Name  *string `json:"name"`
	Crest string  `json:"crest"`
}

type matchesEnvelope struct {
	Matches []matchPayload `json:"matches" validate:"required,dive"`
}

type fullTimePayload struct {
	Home *int `json:"home" validate:"omitempty,gte=0"`
	Away *int `json:"away" validate:"omitempty,gte=0"`
}

type scorePayload struct {
	FullTime fullTimePayload `json:"fullTime"`
}

type matchPayload struct {
	ID          int64 `json:"id" validate:"required"`
	Competition struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"competition"`
	HomeTeam matchTeamPayload `json:"homeTeam"`
	AwayTeam matchTeamPayload `json:"awayTeam"`
	Score    scorePayload     `json:"score"`
	UTCDate  time.Time        `json:"utcDate" validate:"required"`
	Status   string           `json:"status" validate:"required"`
}

type scorersEnvelope struct {
	Scorers []scorerPayload `json:"scorers" validate:"required,dive"`
}

type scorerPayload struct {
	Player struct {
		ID          int64  `json:"id" validate:"required"`
		Name        string `json:"name" validate:"required"`
		Nationality string `json:"nationality"`
	} `json:"player"`
	Team    teamRefPayload `json:"team"`
	Goals   *int           `json:"goals" validate:"required,gte=0"`
	Assists *int           `json:"assists" validate:"omitempty,gte=0"`
}

type standingsEnvelope struct {
	Standings []standingGroupPayload `json:"standings" validate:"required,dive"`
}

type standingGroupPayload struct {
	Stage string            `json:"stage"`
	Type  string            `json:"type"`
	Group *string           `json:"group"`
	Table []standingPayload `json:"table" validate:"required,dive"`
}

type standingPayload struct {
	Position       int            `json:"position" validate:"gte=1"`
	Team           teamRefPayload `json:"team"`
	PlayedGames    int            `json:"playedGames" validate:"gte=0"`
	Won            int            `json:"won" validate:"gte=0"`
	Draw           int            `json:"draw" validate:"gte=0"`
	Lost           int            `json:"lost" validate:"gte=0"`
	Points         int            `json:"points"`
	GoalsFor       int            `json:"goalsFor" validate:"gte=0"`
	GoalsAgainst   int            `json:"goalsAgainst" validate:"gte=0"`
	GoalDifference int            `json:"goalDifference"`
}

type teamStatisticsEnvelope struct {
	Statistics struct {
		Team       teamRefPayload `json:"team"`
		Statistics struct {
			CleanSheets   int `json:"cleanSheets" validate:"gte=0"`
			GoalsScored   int `json:"goalsScored" validate:"gte=0"`
			GoalsConceded int `json:"goalsConceded" validate:"gte=0"`
			YellowCards   int `json:"yellowCards" validate:"gte=0"`
			RedCards      int `json:"redCards" validate:"gte=0"`
		} `json:"statistics"`
	} `json:"statistics"`
}

type careerPayload struct {
	Team         string `json:"team"`
	Period       string `json:"period"`
	Role         string `json:"role"`
	Achievements string `json:"achievements"`
}

type personPayload struct {
	ID           int64           `json:"id" validate:"required"`
	Name         string          `json:"name" validate:"required"`
	Position     string          `json:"position"`
	DateOfBirth  string          `json:"dateOfBirth"`
	Nationality  string          `json:"nationality"`
	ShirtNumber  *int            `json:"shirtNumber"`
	LastUpdated  string          `json:"lastUpdated"`
	Photo        string          `json:"photo"`
	Team         *teamRefPayload `json:"team"`
	CurrentTeam  *teamRefPayload `json:"currentTeam"`
	Statistics   map[string]any  `json:"statistics"`
	Achievements []string        `json:"achievements"`
	Career       []careerPayload `json:"career"`
}

func (p competitionPayload) toDomain() competition.Competition {
	out := competition.Competition{
		ID:     p.ID,
		Name:   p.Name,
		Code:   p.Code,
		Emblem: p.Emblem,
	}
	if p.CurrentSeason != nil {
		out.CurrentSeason = &competition.Season{
			ID:              p.CurrentSeason.ID,
			StartDate:       p.CurrentSeason.StartDate,
			EndDate:         p.CurrentSeason.EndDate,
			CurrentMatchday: derefInt(p.CurrentSeason.CurrentMatchday),
		}
	}
	return out
}

func (p teamPayload) toDomain() team.Team {
	out := team.Team{
		ID:         p.ID,
		Name:       p.Name,
		ShortName:  p.ShortName,
		TLA:        p.TLA,
		Crest:      p.Crest,
		Address:    p.Address,
		Website:    p.Website,
		Founded:    derefInt(p.Founded),
		ClubColors: p.ClubColors,
		Venue:      p.Venue,
	}
	if len(p.Squad) > 0 {
		out.Squad = make([]player.Player, 0, len(p.Squad))
		for _, item := range p.Squad {
			out.Squad = append(out.Squad, item.toDomain())
		}
	}
	return out
}

func (p playerPayload) toDomain() player.Player {
	return player.Player{
		ID:          p.ID,
		Name:        p.Name,
		Position:    p.Position,
		DateOfBirth: p.DateOfBirth,
		Nationality: p.Nationality,
		ShirtNumber: p.ShirtNumber,
		LastUpdated: p.LastUpdated,
	}
}

func (p teamRefPayload) toDomain() team.Ref {
	return team.Ref{ID: p.ID, Name: p.Name, Crest: p.Crest}
}

func (p matchTeamPayload) toDomain() team.Ref {
	out := team.Ref{Name: match.UndecidedTeam, Crest: p.Crest}
	if p.ID != nil {
		out.ID = *p.ID
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) != "" {
		out.Name = *p.Name
	}
	return out
}

func (p matchPayload) toDomain() match.Match {
	return match.Match{
		ID:          p.ID,
		Competition: match.CompetitionRef{ID: p.Competition.ID, Name: p.Competition.Name},
		HomeTeam:    p.HomeTeam.toDomain(),
		AwayTeam:    p.AwayTeam.toDomain(),
		FullTime:    match.FullTime{Home: p.Score.FullTime.Home, Away: p.Score.FullTime.Away},
		UTCDate:     p.UTCDate.UTC(),
		Status:      match.Status(p.Status),
	}
}

func (p scorerPayload) toDomain() scorer.Scorer {
	return scorer.Scorer{
		Player: scorer.PlayerRef{
			ID:          p.Player.ID,
			Name:        p.Player.Name,
			Nationality: p.Player.Nationality,
		},
		Team:    p.Team.toDomain(),
		Goals:   derefInt(p.Goals),
		Assists: derefInt(p.Assists),
	}
}

func (p standingPayload) toDomain() standing.Standing {
	return standing.Standing{
		Position:       p.Position,
		Team:           p.Team.toDomain(),
		PlayedGames:    p.PlayedGames,
		Won:            p.Won,
		Draw:           p.Draw,
		Lost:           p.Lost,
		Points:         p.Points,
		GoalsFor:       p.GoalsFor,
		GoalsAgainst:   p.GoalsAgainst,
		GoalDifference: p.GoalDifference,
	}
}

func (p teamStatisticsEnvelope) toDomain() teamstats.TeamStats {
	stats := p.Statistics.Statistics
	return teamstats.TeamStats{
		Team:          p.Statistics.Team.toDomain(),
		CleanSheets:   stats.CleanSheets,
		GoalsScored:   stats.GoalsScored,
		GoalsConceded: stats.GoalsConceded,
		YellowCards:   stats.YellowCards,
		RedCards:      stats.RedCards,
	}
}

func (p personPayload) toDomain() player.Profile {
	out := player.Profile{
		Player: player.Player{
			ID:          p.ID,
			Name:        p.Name,
			Position:    p.Position,
			DateOfBirth: p.DateOfBirth,
			Nationality: p.Nationality,
			ShirtNumber: p.ShirtNumber,
			LastUpdated: p.LastUpdated,
		},
		Photo:        p.Photo,
		Achievements: p.Achievements,
		Statistics:   parseStatistics(p.Statistics),
	}

	club := p.Team
	if club == nil {
		club = p.CurrentTeam
	}
	if club != nil {
		out.Team = &player.Club{ID: club.ID, Name: club.Name, Crest: club.Crest}
	}

	for _, item := range p.Career {
		out.Career = append(out.Career, player.CareerEntry{
			Team:         strings.TrimSpace(item.Team),
			Period:       strings.TrimSpace(item.Period),
			Role:         strings.TrimSpace(item.Role),
			Achievements: strings.TrimSpace(item.Achievements),
		})
	}
	return out
}

// parseStatistics keeps numeric values only; anything else in the map is ignored.
func parseStatistics(raw map[string]any) player.Statistics {
	out := player.Statistics{}
	if len(raw) == 0 {
		return out
	}

	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value, ok := toFloat(raw[key])
		if !ok {
			continue
		}
		switch key {
		case "goals":
			out.Goals = int(value)
		case "assists":
			out.Assists = int(value)
		case "minutesPlayed":
			out.MinutesPlayed = int(value)
		}
		out.Entries = append(out.Entries, player.StatEntry{
			Key:   key,
			Label: player.HumanizeKey(key),
			Value: value,
		})
	}
	return out
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
