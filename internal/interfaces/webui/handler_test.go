package webui

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/football-pulse/internal/domain/competition"
	"github.com/riskibarqy/football-pulse/internal/domain/match"
	"github.com/riskibarqy/football-pulse/internal/domain/player"
	"github.com/riskibarqy/football-pulse/internal/domain/scorer"
	"github.com/riskibarqy/football-pulse/internal/domain/standing"
	"github.com/riskibarqy/football-pulse/internal/domain/team"
	"github.com/riskibarqy/football-pulse/internal/domain/teamstats"
	competitionmock "github.com/riskibarqy/football-pulse/internal/mocks/domain/competition"
	matchmock "github.com/riskibarqy/football-pulse/internal/mocks/domain/match"
	playermock "github.com/riskibarqy/football-pulse/internal/mocks/domain/player"
	scorermock "github.com/riskibarqy/football-pulse/internal/mocks/domain/scorer"
	standingmock "github.com/riskibarqy/football-pulse/internal/mocks/domain/standing"
	teammock "github.com/riskibarqy/football-pulse/internal/mocks/domain/team"
	teamstatsmock "github.com/riskibarqy/football-pulse/internal/mocks/domain/teamstats"
	"github.com/riskibarqy/football-pulse/internal/platform/logging"
	"github.com/riskibarqy/football-pulse/internal/usecase"
	"github.com/stretchr/testify/mock"
)

type fixture struct {
	competitions *competitionmock.Repository
	teams        *teammock.Repository
	matches      *matchmock.Repository
	scorers      *scorermock.Repository
	standings    *standingmock.Repository
	teamStats    *teamstatsmock.Repository
	players      *playermock.Repository
	mux          *http.ServeMux
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		competitions: competitionmock.NewRepository(t),
		teams:        teammock.NewRepository(t),
		matches:      matchmock.NewRepository(t),
		scorers:      scorermock.NewRepository(t),
		standings:    standingmock.NewRepository(t),
		teamStats:    teamstatsmock.NewRepository(t),
		players:      playermock.NewRepository(t),
		mux:          http.NewServeMux(),
	}

	h, err := NewHandler(Services{
		Competitions: usecase.NewCompetitionService(f.competitions),
		Teams:        usecase.NewTeamService(f.teams),
		Matches:      usecase.NewMatchService(f.matches),
		Statistics: usecase.NewStatisticsService(f.scorers, f.standings, f.teamStats, usecase.StatisticsServiceConfig{
			TopTeams:      5,
			FanoutWorkers: 5,
		}),
		Players: usecase.NewPlayerService(f.players),
	}, Config{AppName: "Football Pulse", Theme: ThemeDark, Location: time.UTC}, logging.NewNop())
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	h.Register(f.mux)
	return f
}

func (f *fixture) get(t *testing.T, target string) (int, string) {
	t.Helper()

	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	body, _ := io.ReadAll(rec.Result().Body)
	return rec.Code, string(body)
}

func sampleCompetitions() []competition.Competition {
	return []competition.Competition{
		{ID: 2021, Name: "Premier League", Code: "PL"},
		{ID: 2014, Name: "Primera Division", Code: "PD"},
	}
}

func intPtr(v int) *int { return &v }

func TestPageShells_RenderLoadingWithoutUpstreamCalls(t *testing.T) {
	f := newFixture(t)

	for _, target := range []string{"/", "/teams", "/matches?competition=2021", "/statistics", "/players/44"} {
		code, body := f.get(t, target)
		if code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", target, code)
		}
		if !strings.Contains(body, `data-phase="loading"`) {
			t.Fatalf("%s: expected loading shell, got %s", target, body)
		}
		if !strings.Contains(body, `data-theme="dark"`) {
			t.Fatalf("%s: expected configured theme", target)
		}
	}

	_, body := f.get(t, "/matches?competition=2021")
	if !strings.Contains(body, `data-fragment="/view/matches?competition=2021"`) {
		t.Fatalf("expected fragment url to carry selection, got %s", body)
	}
}

func TestPageShells_HighlightOnlyCurrentNavLink(t *testing.T) {
	f := newFixture(t)

	_, body := f.get(t, "/teams")
	if strings.Count(body, `aria-current="page"`) != 1 {
		t.Fatalf("expected exactly one active link, got %s", body)
	}
	if !strings.Contains(body, `<a href="/teams" class="nav-link active" aria-current="page">Teams</a>`) {
		t.Fatalf("expected teams link active, got %s", body)
	}

	_, body = f.get(t, "/players/44")
	if strings.Contains(body, `aria-current="page"`) {
		t.Fatalf("expected no active link on player page")
	}
}

func TestHomeView_ShowsFeaturedCompetitions(t *testing.T) {
	f := newFixture(t)

	items := make([]competition.Competition, 0, 7)
	for i := 0; i < 7; i++ {
		items = append(items, competition.Competition{ID: int64(2000 + i), Name: "League"})
	}
	f.competitions.On("ListCompetitions", mock.Anything).Return(items, nil).Once()

	_, body := f.get(t, "/view/home")
	if got := strings.Count(body, "data-entry"); got != usecase.FeaturedCompetitions {
		t.Fatalf("expected %d featured competitions, got %d", usecase.FeaturedCompetitions, got)
	}
	if !strings.Contains(body, `data-phase="ready"`) {
		t.Fatalf("expected ready phase, got %s", body)
	}
}

func TestTeamsView_PromptsWithoutSelection(t *testing.T) {
	f := newFixture(t)
	f.competitions.On("ListCompetitions", mock.Anything).Return(sampleCompetitions(), nil).Once()

	_, body := f.get(t, "/view/teams")
	if !strings.Contains(body, "Select a competition to see its teams.") {
		t.Fatalf("expected prompt, got %s", body)
	}
	f.teams.AssertNotCalled(t, "ListTeamsByCompetition", mock.Anything, mock.Anything)
}

func TestTeamsView_RendersOneCardPerTeam(t *testing.T) {
	f := newFixture(t)
	f.competitions.On("ListCompetitions", mock.Anything).Return(sampleCompetitions(), nil).Once()
	f.teams.On("ListTeamsByCompetition", mock.Anything, "2021").Return([]team.Team{
		{ID: 57, Name: "Arsenal FC", Founded: 1886, Venue: "Emirates Stadium", ClubColors: "Red / White", Squad: []player.Player{{ID: 1}, {ID: 2}}},
		{ID: 61, Name: "Chelsea FC", Founded: 1905, Venue: "Stamford Bridge"},
		{ID: 64, Name: "Liverpool FC", Founded: 1892, Venue: "Anfield"},
	}, nil).Once()

	_, body := f.get(t, "/view/teams?competition=2021")
	if got := strings.Count(body, "data-entry"); got != 3 {
		t.Fatalf("expected 3 team cards, got %d", got)
	}
	for _, want := range []string{"Emirates Stadium", "1886", "Red / White", "2 players", `<option value="2021" selected>`} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in %s", want, body)
		}
	}
}

func TestTeamsView_FailureRendersStaticMessage(t *testing.T) {
	f := newFixture(t)
	f.competitions.On("ListCompetitions", mock.Anything).Return(sampleCompetitions(), nil).Once()
	f.teams.On("ListTeamsByCompetition", mock.Anything, "2021").Return(nil, errors.New("connection reset")).Once()

	_, body := f.get(t, "/view/teams?competition=2021")
	if !strings.Contains(body, "Failed to load teams. Please try again later.") {
		t.Fatalf("expected static failure message, got %s", body)
	}
	if strings.Contains(body, "connection reset") {
		t.Fatalf("cause must not leak to the page")
	}
	if !strings.Contains(body, `data-phase="error"`) {
		t.Fatalf("expected error phase")
	}
}

func TestMatchesView_AllMatchesWithoutSelection(t *testing.T) {
	f := newFixture(t)
	f.competitions.On("ListCompetitions", mock.Anything).Return(sampleCompetitions(), nil).Once()
	f.matches.On("ListMatches", mock.Anything).Return([]match.Match{
		{
			ID:       1,
			HomeTeam: team.Ref{ID: 57, Name: "Arsenal FC"},
			AwayTeam: team.Ref{ID: 61, Name: "Chelsea FC"},
			UTCDate:  time.Date(2026, 10, 18, 15, 0, 0, 0, time.UTC),
			Status:   match.StatusScheduled,
		},
		{
			ID:       2,
			HomeTeam: team.Ref{ID: 64, Name: "Liverpool FC"},
			AwayTeam: team.Ref{ID: 65, Name: "Manchester City FC"},
			FullTime: match.FullTime{Home: intPtr(2), Away: intPtr(1)},
			UTCDate:  time.Date(2026, 10, 17, 19, 30, 0, 0, time.UTC),
			Status:   match.StatusFinished,
		},
	}, nil).Once()

	_, body := f.get(t, "/view/matches")
	for _, want := range []string{">vs<", ">2 - 1<", "chip-success", "Sun, 18 Oct 2026 15:00", `data-kickoff datetime="2026-10-18T15:00:00Z"`, `<option value="" selected>All competitions</option>`} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in %s", want, body)
		}
	}
}

func TestMatchesView_SelectionReplacesPreviousData(t *testing.T) {
	f := newFixture(t)
	f.competitions.On("ListCompetitions", mock.Anything).Return(sampleCompetitions(), nil).Twice()
	f.matches.On("ListMatchesByCompetition", mock.Anything, "2021").Return([]match.Match{
		{ID: 1, HomeTeam: team.Ref{Name: "Arsenal FC"}, AwayTeam: team.Ref{Name: "Chelsea FC"}, Status: match.StatusTimed},
	}, nil).Once()
	f.matches.On("ListMatchesByCompetition", mock.Anything, "2014").Return([]match.Match{
		{ID: 2, HomeTeam: team.Ref{Name: "Real Madrid CF"}, AwayTeam: team.Ref{Name: "FC Barcelona"}, Status: match.StatusTimed},
	}, nil).Once()

	_, first := f.get(t, "/view/matches?competition=2021")
	_, second := f.get(t, "/view/matches?competition=2014")

	if !strings.Contains(first, "Arsenal FC") {
		t.Fatalf("expected first selection data")
	}
	if strings.Contains(second, "Arsenal FC") || !strings.Contains(second, "Real Madrid CF") {
		t.Fatalf("expected second fragment to hold only the new selection, got %s", second)
	}
	if strings.Count(second, "data-entry") != 1 {
		t.Fatalf("expected one match after replace")
	}
}

func TestStatisticsView_DefaultsToFirstCompetition(t *testing.T) {
	f := newFixture(t)
	f.competitions.On("ListCompetitions", mock.Anything).Return(sampleCompetitions(), nil).Once()
	f.scorers.On("ListScorersByCompetition", mock.Anything, "2021").Return([]scorer.Scorer{
		{Player: scorer.PlayerRef{ID: 44, Name: "Erling Haaland"}, Team: team.Ref{Name: "Manchester City FC"}, Goals: 12, Assists: 2},
	}, nil).Once()

	table := make([]standing.Standing, 0, 8)
	for i := 1; i <= 8; i++ {
		table = append(table, standing.Standing{Position: i, Team: team.Ref{ID: int64(100 + i), Name: "Club"}, Points: 30 - i})
	}
	f.standings.On("ListStandingsByCompetition", mock.Anything, "2021").Return(table, nil).Once()
	f.teamStats.On("GetTeamStatistics", mock.Anything, "2021", mock.AnythingOfType("int64")).
		Return(func(_ context.Context, _ string, teamID int64) (teamstats.TeamStats, error) {
			return teamstats.TeamStats{Team: team.Ref{ID: teamID, Name: "Club"}, CleanSheets: 3}, nil
		}).Times(5)

	_, body := f.get(t, "/view/statistics?tab=standings")
	if !strings.Contains(body, `<option value="2021" selected>`) {
		t.Fatalf("expected first competition selected, got %s", body)
	}
	if got := strings.Count(body, "data-team-stat"); got != 5 {
		t.Fatalf("expected 5 team statistics rows, got %d", got)
	}
	if !strings.Contains(body, `<a href="/players/44">Erling Haaland</a>`) {
		t.Fatalf("expected scorer link, got %s", body)
	}
	if !strings.Contains(body, `data-panel="scorers" hidden`) || strings.Contains(body, `data-panel="standings" hidden`) {
		t.Fatalf("expected standings tab to be the visible panel")
	}
}

func TestStatisticsView_FanoutFailureIsWholePageError(t *testing.T) {
	f := newFixture(t)
	f.competitions.On("ListCompetitions", mock.Anything).Return(sampleCompetitions(), nil).Once()
	f.scorers.On("ListScorersByCompetition", mock.Anything, "2014").Return([]scorer.Scorer{}, nil).Once()
	f.standings.On("ListStandingsByCompetition", mock.Anything, "2014").Return([]standing.Standing{
		{Position: 1, Team: team.Ref{ID: 86, Name: "Real Madrid CF"}},
	}, nil).Once()
	f.teamStats.On("GetTeamStatistics", mock.Anything, "2014", int64(86)).
		Return(teamstats.TeamStats{}, usecase.ErrUpstream).Once()

	_, body := f.get(t, "/view/statistics?competition=2014")
	if !strings.Contains(body, "Failed to load statistics. Please try again later.") {
		t.Fatalf("expected statistics failure, got %s", body)
	}
	if strings.Contains(body, "data-panel") {
		t.Fatalf("expected no partial tables")
	}
}

func TestPlayerView_RendersProfileTabs(t *testing.T) {
	f := newFixture(t)
	f.players.On("GetPlayer", mock.Anything, int64(44)).Return(player.Profile{
		Player: player.Player{ID: 44, Name: "Erling Haaland", Position: "Offence", Nationality: "Norway", ShirtNumber: intPtr(9)},
		Statistics: player.Statistics{
			Goals:         10,
			Assists:       3,
			MinutesPlayed: 1710,
			Entries:       []player.StatEntry{{Key: "yellowCards", Label: "Yellow Cards", Value: 1}},
		},
		Career: []player.CareerEntry{{Team: "Borussia Dortmund", Period: "2020-2022"}},
	}, nil).Once()

	_, body := f.get(t, "/view/players/44?tab=career")
	for _, want := range []string{"Erling Haaland", "#9", "width: 50%", "Yellow Cards", "Borussia Dortmund", "No achievements recorded."} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in %s", want, body)
		}
	}
	if strings.Contains(body, `data-panel="career" hidden`) {
		t.Fatalf("expected career tab visible")
	}
}

func TestPlayerView_InvalidIDIsErrorState(t *testing.T) {
	f := newFixture(t)

	_, body := f.get(t, "/view/players/abc")
	if !strings.Contains(body, "Failed to load player profile. Please try again later.") {
		t.Fatalf("expected error state, got %s", body)
	}
}

func TestStatic_ServesEmbeddedAssets(t *testing.T) {
	f := newFixture(t)

	for _, target := range []string{"/static/app.js", "/static/app.css"} {
		code, body := f.get(t, target)
		if code != http.StatusOK || body == "" {
			t.Fatalf("%s: expected asset, got %d", target, code)
		}
	}
}
