package observability

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-pulse/internal/config"
	"github.com/riskibarqy/football-pulse/internal/platform/logging"
)

// Runtime owns the process-wide telemetry sinks started at boot.
type Runtime struct {
	logger          *logging.Logger
	shutdownUptrace func(context.Context) error
	stopPyroscope   func() error
	pprof           *http.Server
}

// Start brings up tracing, profiling and pprof according to cfg. On error,
// anything already started is torn down before returning.
func Start(cfg config.Config, logger *logging.Logger) (*Runtime, error) {
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("observability")

	shutdownUptrace, err := InitUptrace(cfg, logger)
	if err != nil {
		return nil, errors.Wrap(err, "init uptrace")
	}

	stopPyroscope, err := InitPyroscope(cfg, logger)
	if err != nil {
		_ = shutdownUptrace(context.Background())
		return nil, errors.Wrap(err, "init pyroscope")
	}

	return &Runtime{
		logger:          logger,
		shutdownUptrace: shutdownUptrace,
		stopPyroscope:   stopPyroscope,
		pprof:           StartPprofServer(cfg, logger),
	}, nil
}

// Shutdown flushes and stops every sink, reporting all failures together.
func (r *Runtime) Shutdown(ctx context.Context) error {
	if r == nil {
		return nil
	}

	var err error
	if stopErr := StopPprofServer(ctx, r.pprof, r.logger); stopErr != nil {
		err = errors.CombineErrors(err, errors.Wrap(stopErr, "stop pprof"))
	}
	if stopErr := r.stopPyroscope(); stopErr != nil {
		err = errors.CombineErrors(err, errors.Wrap(stopErr, "stop pyroscope"))
	}
	if stopErr := r.shutdownUptrace(ctx); stopErr != nil {
		err = errors.CombineErrors(err, errors.Wrap(stopErr, "shutdown uptrace"))
	}
	return err
}
