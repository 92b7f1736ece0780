package webui

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/riskibarqy/football-pulse/internal/domain/competition"
	"github.com/riskibarqy/football-pulse/internal/domain/match"
	"github.com/riskibarqy/football-pulse/internal/domain/player"
	"github.com/riskibarqy/football-pulse/internal/domain/team"
	"github.com/riskibarqy/football-pulse/internal/usecase"
)

type featureCard struct {
	Title       string
	Description string
	Path        string
}

var homeFeatures = []featureCard{
	{Title: "Teams", Description: "Browse clubs by competition, with venue, colours and squad size.", Path: "/teams"},
	{Title: "Matches", Description: "Follow fixtures and results with live status.", Path: "/matches"},
	{Title: "Statistics", Description: "Top scorers, the league table and team form at a glance.", Path: "/statistics"},
}

type homeView struct {
	Featured View[[]competition.Competition]
	Features []featureCard
}

func (h *Handler) HomeView(w http.ResponseWriter, r *http.Request) {
	featured := load(r.Context(), h.logger, "home", "competitions", func(ctx context.Context) ([]competition.Competition, error) {
		return h.services.Competitions.Featured(ctx, usecase.FeaturedCompetitions)
	})
	h.write(w, r, "view-home", homeView{Featured: featured, Features: homeFeatures})
}

type teamsView struct {
	Selector selectorView
	Teams    View[[]team.Team]
	Prompt   bool
}

func (h *Handler) TeamsView(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	selected := selectedCompetition(r)

	view := teamsView{
		Selector: selectorView{
			Page:         "/teams",
			Competitions: h.loadCompetitions(ctx, "teams"),
			Selected:     selected,
			Placeholder:  "Select a competition",
		},
		Prompt: selected == "",
	}
	if !view.Prompt {
		view.Teams = load(ctx, h.logger, "teams", "teams", func(ctx context.Context) ([]team.Team, error) {
			return h.services.Teams.ListByCompetition(ctx, selected)
		}, "competition_id", selected)
	}
	h.write(w, r, "view-teams", view)
}

type matchesView struct {
	Selector selectorView
	Matches  View[[]match.Match]
}

func (h *Handler) MatchesView(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	selected := selectedCompetition(r)

	view := matchesView{
		Selector: selectorView{
			Page:         "/matches",
			Competitions: h.loadCompetitions(ctx, "matches"),
			Selected:     selected,
			Placeholder:  "All competitions",
		},
	}
	view.Matches = load(ctx, h.logger, "matches", "matches", func(ctx context.Context) ([]match.Match, error) {
		return h.services.Matches.List(ctx, selected)
	}, "competition_id", selected)
	h.write(w, r, "view-matches", view)
}

type tabLink struct {
	Key    string
	Label  string
	Href   string
	Active bool
}

func buildTabs(page string, query url.Values, active string, tabs [][2]string) ([]tabLink, string) {
	if !tabKnown(active, tabs) {
		active = tabs[0][0]
	}
	out := make([]tabLink, 0, len(tabs))
	for _, tab := range tabs {
		q := url.Values{}
		for key, values := range query {
			q[key] = values
		}
		q.Set("tab", tab[0])
		out = append(out, tabLink{
			Key:    tab[0],
			Label:  tab[1],
			Href:   page + "?" + q.Encode(),
			Active: tab[0] == active,
		})
	}
	return out, active
}

func tabKnown(key string, tabs [][2]string) bool {
	for _, tab := range tabs {
		if tab[0] == key {
			return true
		}
	}
	return false
}

var statisticsTabs = [][2]string{
	{"scorers", "Top Scorers"},
	{"standings", "League Table"},
	{"teams", "Team Statistics"},
}

type statisticsView struct {
	Selector   selectorView
	Statistics View[usecase.CompetitionStatistics]
	Prompt     bool
	Tabs       []tabLink
	Tab        string
}

// StatisticsView defaults to the first competition when none is selected.
func (h *Handler) StatisticsView(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	selected := selectedCompetition(r)

	competitions := h.loadCompetitions(ctx, "statistics")
	if selected == "" && competitions.IsReady() && len(competitions.Data) > 0 {
		selected = competitionKey(competitions.Data[0])
	}

	view := statisticsView{
		Selector: selectorView{
			Page:         "/statistics",
			Competitions: competitions,
			Selected:     selected,
		},
		Prompt: selected == "",
	}

	query := url.Values{}
	if selected != "" {
		query.Set("competition", selected)
	}
	view.Tabs, view.Tab = buildTabs("/statistics", query, strings.TrimSpace(r.URL.Query().Get("tab")), statisticsTabs)

	if !view.Prompt {
		view.Statistics = load(ctx, h.logger, "statistics", "statistics", func(ctx context.Context) (usecase.CompetitionStatistics, error) {
			return h.services.Statistics.GetByCompetition(ctx, selected)
		}, "competition_id", selected)
	}
	h.write(w, r, "view-statistics", view)
}

var playerTabs = [][2]string{
	{"overview", "Overview"},
	{"statistics", "Statistics"},
	{"career", "Career"},
}

type playerView struct {
	Profile View[player.Profile]
	Tabs    []tabLink
	Tab     string
}

func (h *Handler) PlayerView(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	view := playerView{}
	view.Tabs, view.Tab = buildTabs("/players/"+url.PathEscape(id), url.Values{}, strings.TrimSpace(r.URL.Query().Get("tab")), playerTabs)
	view.Profile = load(r.Context(), h.logger, "player", "player profile", func(ctx context.Context) (player.Profile, error) {
		return h.services.Players.GetProfile(ctx, id)
	}, "player_id", id)

	h.write(w, r, "view-player", view)
}
