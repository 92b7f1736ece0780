package httpapi

import (
	"context"
	"net/url"

	"github.com/riskibarqy/football-pulse/internal/platform/logging"
	"github.com/riskibarqy/football-pulse/internal/usecase"
)

// Passthrough returns upstream JSON documents for allow-listed resources.
type Passthrough interface {
	Competitions(ctx context.Context, query url.Values) ([]byte, error)
	CompetitionCollection(ctx context.Context, competitionID string, resource usecase.CompetitionResource, query url.Values) ([]byte, error)
	TeamStatistics(ctx context.Context, competitionID, teamID string, query url.Values) ([]byte, error)
	Matches(ctx context.Context, query url.Values) ([]byte, error)
	Team(ctx context.Context, teamID string, query url.Values) ([]byte, error)
	Person(ctx context.Context, personID string, query url.Values) ([]byte, error)
}

// UpstreamStatus reports the football-data circuit state for health checks.
type UpstreamStatus interface {
	CircuitState() string
}

type HandlerConfig struct {
	ServiceName    string
	ServiceVersion string
}

type Handler struct {
	passthrough Passthrough
	upstream    UpstreamStatus
	logger      *logging.Logger
	service     HandlerConfig
}

func NewHandler(passthrough Passthrough, upstream UpstreamStatus, cfg HandlerConfig, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		passthrough: passthrough,
		upstream:    upstream,
		logger:      logger.Named("httpapi"),
		service:     cfg,
	}
}
