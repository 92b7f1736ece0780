package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/riskibarqy/football-pulse/external/footballdata"
	"github.com/riskibarqy/football-pulse/internal/config"
	"github.com/riskibarqy/football-pulse/internal/interfaces/httpapi"
	"github.com/riskibarqy/football-pulse/internal/interfaces/webui"
	"github.com/riskibarqy/football-pulse/internal/platform/logging"
	"github.com/riskibarqy/football-pulse/internal/platform/resilience"
	"github.com/riskibarqy/football-pulse/internal/usecase"
)

// NewHTTPServer wires the football-data client, services, pages and API routes.
// Telemetry globals must already be configured so the client and router pick
// up the right tracer provider.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	client := footballdata.NewClient(footballdata.ClientConfig{
		TransportKind: cfg.FootballDataTransport,
		BaseURL:       cfg.FootballDataBaseURL,
		APIKey:        cfg.FootballDataAPIKey,
		Timeout:       cfg.FootballDataTimeout,
		Logger:        logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.FootballDataCircuitEnabled,
			FailureThreshold: cfg.FootballDataCircuitFailureCount,
			OpenTimeout:      cfg.FootballDataCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.FootballDataCircuitHalfOpenMaxReq,
		},
	})

	pages, err := webui.NewHandler(webui.Services{
		Competitions: usecase.NewCompetitionService(client),
		Teams:        usecase.NewTeamService(client),
		Matches:      usecase.NewMatchService(client),
		Statistics: usecase.NewStatisticsService(client, client, client, usecase.StatisticsServiceConfig{
			TopTeams:      cfg.StatsTopTeams,
			FanoutWorkers: cfg.StatsFanoutWorkers,
		}),
		Players: usecase.NewPlayerService(client),
	}, webui.Config{
		AppName:  "Football Pulse",
		Theme:    cfg.UITheme,
		Location: time.UTC,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("build pages: %w", err)
	}

	api := httpapi.NewHandler(usecase.NewPassthroughService(client), client, httpapi.HandlerConfig{
		ServiceName:    cfg.ServiceName,
		ServiceVersion: cfg.ServiceVersion,
	}, logger)

	router := httpapi.NewRouter(api, pages, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
	}, nil
}
