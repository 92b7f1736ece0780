package footballdata

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"github.com/riskibarqy/football-pulse/internal/domain/competition"
	"github.com/riskibarqy/football-pulse/internal/domain/match"
	"github.com/riskibarqy/football-pulse/internal/domain/player"
	"github.com/riskibarqy/football-pulse/internal/domain/scorer"
	"github.com/riskibarqy/football-pulse/internal/domain/standing"
	"github.com/riskibarqy/football-pulse/internal/domain/team"
	"github.com/riskibarqy/football-pulse/internal/domain/teamstats"
	"github.com/riskibarqy/football-pulse/internal/platform/logging"
	"github.com/riskibarqy/football-pulse/internal/platform/resilience"
	"github.com/riskibarqy/football-pulse/internal/usecase"
)

const (
	defaultBaseURL = "https://api.football-data.org/v4"
	defaultTimeout = 20 * time.Second
	authHeader     = "X-Auth-Token"
	breakerName    = "football-data"
)

var (
	// ErrDecode marks a response body that is not the expected JSON.
	ErrDecode = crerr.New("football-data: malformed response")
	// ErrValidation marks a decoded response that breaks the payload contract.
	ErrValidation = crerr.New("football-data: response failed validation")

	errTransient = crerr.New("football-data: transient failure")
)

// StatusError is a non-2xx upstream answer.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("provider status=%d body=%s", e.StatusCode, e.Body)
}

type ClientConfig struct {
	HTTPClient     *http.Client
	Transport      Transport
	TransportKind  string
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads football-data.org v4 resources. It satisfies every domain
// repository interface.
type Client struct {
	transport      Transport
	baseURL        string
	apiKey         string
	timeout        time.Duration
	logger         *logging.Logger
	validate       *validator.Validate
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         singleflight.Group
	tracer         trace.Tracer
}

var (
	_ competition.Repository = (*Client)(nil)
	_ team.Repository        = (*Client)(nil)
	_ match.Repository       = (*Client)(nil)
	_ scorer.Repository      = (*Client)(nil)
	_ standing.Repository    = (*Client)(nil)
	_ teamstats.Repository   = (*Client)(nil)
	_ player.Repository      = (*Client)(nil)
)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("footballdata")

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	transport := cfg.Transport
	if transport == nil {
		switch strings.ToLower(strings.TrimSpace(cfg.TransportKind)) {
		case TransportFastHTTP:
			transport = NewFastHTTPTransport(timeout)
		default:
			transport = NewNetHTTPTransport(cfg.HTTPClient, timeout)
		}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		logger.Warn("football-data api key is not configured, requests are sent without " + authHeader)
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)
	breaker := resilience.NewCircuitBreaker(breakerName, breakerCfg, func(name string, from, to resilience.CircuitState) {
		logger.Warn("circuit breaker state changed", "breaker", name, "from", from, "to", to)
	})

	return &Client{
		transport:      transport,
		baseURL:        baseURL,
		apiKey:         apiKey,
		timeout:        timeout,
		logger:         logger,
		validate:       newValidator(),
		breaker:        breaker,
		circuitEnabled: breakerCfg.Enabled,
		tracer:         otel.Tracer("github.com/riskibarqy/football-pulse/external/footballdata"),
	}
}

// CircuitState reports the breaker state, or "disabled" when it is switched off.
func (c *Client) CircuitState() string {
	if !c.circuitEnabled {
		return "disabled"
	}
	return string(c.breaker.State())
}

func (c *Client) ListCompetitions(ctx context.Context) ([]competition.Competition, error) {
	var payload competitionsEnvelope
	if err := c.doJSON(ctx, "/competitions", &payload); err != nil {
		return nil, fmt.Errorf("list competitions: %w", err)
	}

	out := make([]competition.Competition, 0, len(payload.Competitions))
	for _, item := range payload.Competitions {
		out = append(out, item.toDomain())
	}
	return out, nil
}

func (c *Client) ListTeamsByCompetition(ctx context.Context, competitionID string) ([]team.Team, error) {
	var payload teamsEnvelope
	if err := c.doJSON(ctx, "/competitions/"+url.PathEscape(competitionID)+"/teams", &payload); err != nil {
		return nil, fmt.Errorf("list teams competition_id=%s: %w", competitionID, err)
	}

	out := make([]team.Team, 0, len(payload.Teams))
	for _, item := range payload.Teams {
		out = append(out, item.toDomain())
	}
	return out, nil
}

func (c *Client) ListMatches(ctx context.Context) ([]match.Match, error) {
	var payload matchesEnvelope
	if err := c.doJSON(ctx, "/matches", &payload); err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return mapMatches(payload), nil
}

func (c *Client) ListMatchesByCompetition(ctx context.Context, competitionID string) ([]match.Match, error) {
	var payload matchesEnvelope
	if err := c.doJSON(ctx, "/competitions/"+url.PathEscape(competitionID)+"/matches", &payload); err != nil {
		return nil, fmt.Errorf("list matches competition_id=%s: %w", competitionID, err)
	}
	return mapMatches(payload), nil
}

func (c *Client) ListScorersByCompetition(ctx context.Context, competitionID string) ([]scorer.Scorer, error) {
	var payload scorersEnvelope
	if err := c.doJSON(ctx, "/competitions/"+url.PathEscape(competitionID)+"/scorers", &payload); err != nil {
		return nil, fmt.Errorf("list scorers competition_id=%s: %w", competitionID, err)
	}

	out := make([]scorer.Scorer, 0, len(payload.Scorers))
	for _, item := range payload.Scorers {
		out = append(out, item.toDomain())
	}
	return out, nil
}

// ListStandingsByCompetition returns the first group's table. Competitions with
// several groups (cups) only expose their first group here.
func (c *Client) ListStandingsByCompetition(ctx context.Context, competitionID string) ([]standing.Standing, error) {
	var payload standingsEnvelope
	if err := c.doJSON(ctx, "/competitions/"+url.PathEscape(competitionID)+"/standings", &payload); err != nil {
		return nil, fmt.Errorf("list standings competition_id=%s: %w", competitionID, err)
	}
	if len(payload.Standings) == 0 {
		return []standing.Standing{}, nil
	}

	table := payload.Standings[0].Table
	out := make([]standing.Standing, 0, len(table))
	for _, row := range table {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (c *Client) GetTeamStatistics(ctx context.Context, competitionID string, teamID int64) (teamstats.TeamStats, error) {
	path := "/competitions/" + url.PathEscape(competitionID) + "/teams/" + strconv.FormatInt(teamID, 10) + "/statistics"

	var payload teamStatisticsEnvelope
	if err := c.doJSON(ctx, path, &payload); err != nil {
		return teamstats.TeamStats{}, fmt.Errorf("get team statistics competition_id=%s team_id=%d: %w", competitionID, teamID, err)
	}
	return payload.toDomain(), nil
}

func (c *Client) GetPlayer(ctx context.Context, playerID int64) (player.Profile, error) {
	var payload personPayload
	if err := c.doJSON(ctx, "/persons/"+strconv.FormatInt(playerID, 10), &payload); err != nil {
		return player.Profile{}, fmt.Errorf("get player player_id=%d: %w", playerID, err)
	}
	return payload.toDomain(), nil
}

// FetchRaw returns the upstream body for path unchanged. The caller owns the
// allow-list of paths.
func (c *Client) FetchRaw(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}
	return c.get(ctx, path)
}

func mapMatches(payload matchesEnvelope) []match.Match {
	out := make([]match.Match, 0, len(payload.Matches))
	for _, item := range payload.Matches {
		out = append(out, item.toDomain())
	}
	return out
}

func (c *Client) doJSON(ctx context.Context, path string, target any) error {
	raw, err := c.get(ctx, path)
	if err != nil {
		return err
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		err = fmt.Errorf("%w: %w: %v", usecase.ErrUpstream, ErrDecode, err)
		c.logger.WarnContext(ctx, "decode football-data response failed", "path", path, "error", err)
		return err
	}
	if err := c.validate.StructCtx(ctx, target); err != nil {
		err = fmt.Errorf("%w: %w: %v", usecase.ErrUpstream, ErrValidation, err)
		c.logger.WarnContext(ctx, "football-data response failed validation", "path", path, "error", err)
		return err
	}
	return nil
}

// get shares one upstream call between concurrent callers of the same path.
// The shared call is detached from any single caller's cancellation and bounded
// by the client timeout; each caller still stops waiting when its own ctx ends.
// The breaker sees one Allow and one outcome per upstream call.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	ctx, span := c.tracer.Start(ctx, "footballdata.get", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(attribute.String("footballdata.path", path))

	flightCtx := context.WithoutCancel(ctx)
	results := c.flight.DoChan(path, func() (any, error) {
		return c.guardedRequest(flightCtx, path)
	})

	select {
	case <-ctx.Done():
		err := fmt.Errorf("%w: %w", usecase.ErrUpstream, ctx.Err())
		span.RecordError(err)
		span.SetStatus(codes.Error, "caller cancelled")
		return nil, err
	case res := <-results:
		span.SetAttributes(attribute.Bool("footballdata.shared", res.Shared))
		if res.Err != nil {
			span.RecordError(res.Err)
			span.SetStatus(codes.Error, "request failed")
			return nil, res.Err
		}
		raw, ok := res.Val.([]byte)
		if !ok {
			return nil, fmt.Errorf("unexpected response payload type %T", res.Val)
		}
		return raw, nil
	}
}

func (c *Client) guardedRequest(ctx context.Context, path string) ([]byte, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "football-data circuit breaker rejected request", "path", path, "state", c.breaker.State())
			return nil, fmt.Errorf("%w: football data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	raw, err := c.executeRequest(reqCtx, c.baseURL+path)
	if c.circuitEnabled {
		if err != nil && stderrors.Is(err, errTransient) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}
	return raw, err
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	headers := map[string]string{"Accept": "application/json"}
	if c.apiKey != "" {
		headers[authHeader] = c.apiKey
	}

	resp, err := c.transport.Get(ctx, fullURL, headers)
	if err != nil {
		err = fmt.Errorf("%w: %w: send request: %w", usecase.ErrUpstream, errTransient, err)
		c.logger.WarnContext(ctx, "football-data request failed", "url", fullURL, "error", err)
		return nil, err
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp.Body, nil
	}

	statusErr := &StatusError{StatusCode: resp.StatusCode, Body: abbreviateBody(resp.Body)}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		err = fmt.Errorf("%w: %w", usecase.ErrNotFound, statusErr)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		err = fmt.Errorf("%w: %w: %w", usecase.ErrUpstream, errTransient, statusErr)
	default:
		err = fmt.Errorf("%w: %w", usecase.ErrUpstream, statusErr)
	}
	c.logger.WarnContext(ctx, "football-data request failed", "url", fullURL, "status", resp.StatusCode, "error", err)
	return nil, err
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
