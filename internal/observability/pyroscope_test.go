package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/riskibarqy/football-pulse/internal/config"
	"github.com/riskibarqy/football-pulse/internal/platform/logging"
)

func TestInitPyroscope_DisabledIsNoop(t *testing.T) {
	stop, err := InitPyroscope(config.Config{PyroscopeEnabled: false}, logging.NewNop())
	if err != nil {
		t.Fatalf("init pyroscope: %v", err)
	}
	if err := stop(); err != nil {
		t.Fatalf("stop: %v", err)
	}
}

func TestProfilerConfig_Tags(t *testing.T) {
	cfg := config.Config{
		AppEnv:                "prod",
		ServiceName:           "football-pulse-web",
		ServiceVersion:        "1.4.0",
		FootballDataTransport: "fasthttp",
		StatsFanoutWorkers:    5,
		PyroscopeAppName:      "football-pulse-web",
	}

	got := profilerConfig(cfg, logging.NewNop())
	want := map[string]string{
		"env":            "prod",
		"service":        "football-pulse-web",
		"version":        "1.4.0",
		"transport":      "fasthttp",
		"fanout_workers": "5",
	}
	for key, value := range want {
		if got.Tags[key] != value {
			t.Fatalf("tag %s = %q, want %q", key, got.Tags[key], value)
		}
	}
	if got.ApplicationName != "football-pulse-web" {
		t.Fatalf("unexpected application name %q", got.ApplicationName)
	}
}

func TestPyroscopeLogger_ErrorsBecomeWarnings(t *testing.T) {
	var buf bytes.Buffer
	l := pyroscopeLogger{logger: logging.NewJSONWriter(&buf, logging.LevelWarn)}

	l.Infof("upload %d", 1)
	l.Errorf("upload failed: %s", "timeout")

	out := buf.String()
	if strings.Contains(out, "upload 1") {
		t.Fatalf("expected info diagnostics below warn to be dropped: %s", out)
	}
	if !strings.Contains(out, "upload failed: timeout") || !strings.Contains(out, `"level":"WARN"`) {
		t.Fatalf("expected error diagnostic as warning, got %s", out)
	}
}
