package observability

import (
	"context"
	"testing"

	"github.com/riskibarqy/football-pulse/internal/config"
	"github.com/riskibarqy/football-pulse/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "football-pulse-web",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	shutdown, err := InitUptrace(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestStart_AllSinksDisabled(t *testing.T) {
	rt, err := Start(config.Config{ServiceName: "football-pulse-web", AppEnv: config.EnvDev}, logging.NewNop())
	if err != nil {
		t.Fatalf("start observability: %v", err)
	}
	if rt.pprof != nil {
		t.Fatalf("expected pprof server to stay off")
	}
	if err := rt.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestPprofMux_ServesIndex(t *testing.T) {
	mux := pprofMux()
	if _, pattern := mux.Handler(mustRequest(t, "/debug/pprof/")); pattern == "" {
		t.Fatalf("expected pprof index route")
	}
}
