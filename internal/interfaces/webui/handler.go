package webui

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/football-pulse/internal/domain/competition"
	"github.com/riskibarqy/football-pulse/internal/domain/match"
	"github.com/riskibarqy/football-pulse/internal/domain/player"
	"github.com/riskibarqy/football-pulse/internal/domain/team"
	"github.com/riskibarqy/football-pulse/internal/platform/logging"
	"github.com/riskibarqy/football-pulse/internal/usecase"
)

type CompetitionService interface {
	List(ctx context.Context) ([]competition.Competition, error)
	Featured(ctx context.Context, n int) ([]competition.Competition, error)
}

type TeamService interface {
	ListByCompetition(ctx context.Context, competitionID string) ([]team.Team, error)
}

type MatchService interface {
	List(ctx context.Context, competitionID string) ([]match.Match, error)
}

type StatisticsService interface {
	GetByCompetition(ctx context.Context, competitionID string) (usecase.CompetitionStatistics, error)
}

type PlayerService interface {
	GetProfile(ctx context.Context, playerID string) (player.Profile, error)
}

type Services struct {
	Competitions CompetitionService
	Teams        TeamService
	Matches      MatchService
	Statistics   StatisticsService
	Players      PlayerService
}

type Config struct {
	AppName  string
	Theme    string
	Location *time.Location
}

// Handler serves the dashboard. Every page is a shell rendered in its loading phase;
// the browser then pulls the matching /view/ fragment, which is where upstream
// calls happen. No page state outlives a request.
type Handler struct {
	services Services
	logger   *logging.Logger
	renderer *renderer
	appName  string
	theme    string
}

func NewHandler(services Services, cfg Config, logger *logging.Logger) (*Handler, error) {
	r, err := newRenderer(cfg.Location)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.Default()
	}
	appName := strings.TrimSpace(cfg.AppName)
	if appName == "" {
		appName = "Football Pulse"
	}

	return &Handler{
		services: services,
		logger:   logger.Named("webui"),
		renderer: r,
		appName:  appName,
		theme:    normalizeTheme(cfg.Theme),
	}, nil
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.Handle("GET /static/", staticHandler())

	mux.HandleFunc("GET /{$}", h.HomePage)
	mux.HandleFunc("GET /teams", h.TeamsPage)
	mux.HandleFunc("GET /matches", h.MatchesPage)
	mux.HandleFunc("GET /statistics", h.StatisticsPage)
	mux.HandleFunc("GET /players/{id}", h.PlayerPage)

	mux.HandleFunc("GET /view/home", h.HomeView)
	mux.HandleFunc("GET /view/teams", h.TeamsView)
	mux.HandleFunc("GET /view/matches", h.MatchesView)
	mux.HandleFunc("GET /view/statistics", h.StatisticsView)
	mux.HandleFunc("GET /view/players/{id}", h.PlayerView)
}

type shellData struct {
	AppName     string
	Title       string
	Theme       string
	Nav         []NavLink
	FragmentURL string
	Phase       Phase
}

func (h *Handler) HomePage(w http.ResponseWriter, r *http.Request) {
	h.renderShell(w, r, "Home", "/view/home")
}

func (h *Handler) TeamsPage(w http.ResponseWriter, r *http.Request) {
	h.renderShell(w, r, "Teams", fragmentURL("/view/teams", r.URL.Query(), "competition"))
}

func (h *Handler) MatchesPage(w http.ResponseWriter, r *http.Request) {
	h.renderShell(w, r, "Matches", fragmentURL("/view/matches", r.URL.Query(), "competition"))
}

func (h *Handler) StatisticsPage(w http.ResponseWriter, r *http.Request) {
	h.renderShell(w, r, "Statistics", fragmentURL("/view/statistics", r.URL.Query(), "competition", "tab"))
}

func (h *Handler) PlayerPage(w http.ResponseWriter, r *http.Request) {
	base := "/view/players/" + url.PathEscape(r.PathValue("id"))
	h.renderShell(w, r, "Player", fragmentURL(base, r.URL.Query(), "tab"))
}

func (h *Handler) renderShell(w http.ResponseWriter, r *http.Request, title, fragment string) {
	data := shellData{
		AppName:     h.appName,
		Title:       title,
		Theme:       h.theme,
		Nav:         BuildNav(r.URL.Path),
		FragmentURL: fragment,
		Phase:       PhaseLoading,
	}
	h.write(w, r, "shell", data)
}

// fragmentURL carries the whitelisted query keys from the page URL to its fragment.
func fragmentURL(base string, query url.Values, keys ...string) string {
	out := url.Values{}
	for _, key := range keys {
		if v := strings.TrimSpace(query.Get(key)); v != "" {
			out.Set(key, v)
		}
	}
	if len(out) == 0 {
		return base
	}
	return base + "?" + out.Encode()
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, name string, data any) {
	if err := h.renderer.render(r.Context(), w, name, data); err != nil {
		h.logger.ErrorContext(r.Context(), "render template failed", "template", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// selectorView drives the competition dropdown shared by Teams, Matches and Statistics.
type selectorView struct {
	Page         string
	Competitions View[[]competition.Competition]
	Selected     string
	Placeholder  string
}

// IsSelected matches the selection against the numeric id or the competition code.
func (s selectorView) IsSelected(c competition.Competition) bool {
	if s.Selected == "" {
		return false
	}
	return s.Selected == competitionKey(c) || (c.Code != "" && strings.EqualFold(s.Selected, c.Code))
}

func competitionKey(c competition.Competition) string {
	return strconv.FormatInt(c.ID, 10)
}

func (h *Handler) loadCompetitions(ctx context.Context, page string) View[[]competition.Competition] {
	return load(ctx, h.logger, page, "competitions", h.services.Competitions.List)
}

func selectedCompetition(r *http.Request) string {
	return strings.TrimSpace(r.URL.Query().Get("competition"))
}
