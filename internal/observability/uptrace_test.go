package observability

import (
	"context"
	"testing"

	"github.com/joaquinrs/poker-league/internal/config"
	"github.com/joaquinrs/poker-league/internal/platform/logging"
)

func TestSetupTracing_Off(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{
			name: "disabled by flag",
			cfg:  config.Config{UptraceEnabled: false},
		},
		{
			name: "enabled without dsn",
			cfg:  config.Config{UptraceEnabled: true, UptraceDSN: "  "},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			shutdown := SetupTracing(tc.cfg, logging.NewNop())
			if shutdown == nil {
				t.Fatal("expected a shutdown hook")
			}
			if err := shutdown(context.Background()); err != nil {
				t.Fatalf("shutdown: %v", err)
			}
		})
	}
}

func TestStartDebugServer_Off(t *testing.T) {
	d := StartDebugServer(config.Config{PprofEnabled: false}, logging.NewNop())
	if d != nil {
		t.Fatal("expected nil debug server when pprof is off")
	}
	if err := d.Shutdown(0); err != nil {
		t.Fatalf("nil shutdown: %v", err)
	}
}
