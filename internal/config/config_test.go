package config

import (
	"testing"
	"time"
)

func setEnv(t *testing.T, env map[string]string) {
	t.Helper()
	for k, v := range env {
		t.Setenv(k, v)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "unknown app env",
			env:  map[string]string{"APP_ENV": "production!"},
		},
		{
			name: "uptrace without dsn",
			env:  map[string]string{"UPTRACE_ENABLED": "true", "UPTRACE_DSN": ""},
		},
		{
			name: "pyroscope without server",
			env:  map[string]string{"PYROSCOPE_ENABLED": "true", "PYROSCOPE_SERVER_ADDRESS": ""},
		},
		{
			name: "negative drop threshold",
			env:  map[string]string{"RANKING_DROP_AFTER_DATES": "-1"},
		},
		{
			name: "unparsable drop threshold",
			env:  map[string]string{"RANKING_DROP_AFTER_DATES": "nine"},
		},
		{
			name: "zero overview workers",
			env:  map[string]string{"OVERVIEW_WORKERS": "0"},
		},
		{
			name: "bad read timeout",
			env:  map[string]string{"APP_READ_TIMEOUT": "soon"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			setEnv(t, tc.env)
			if _, err := Load(); err == nil {
				t.Fatal("expected a load error")
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "APP_HTTP_ADDR", "CORS_ALLOWED_ORIGINS",
		"RANKING_DROP_AFTER_DATES", "OVERVIEW_WORKERS",
		"APP_READ_TIMEOUT", "APP_WRITE_TIMEOUT",
		"DB_DISABLE_PREPARED_BINARY_RESULT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.AppEnv != EnvDev {
		t.Errorf("AppEnv = %q, want %q", cfg.AppEnv, EnvDev)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q, want :8080", cfg.HTTPAddr)
	}
	if cfg.RankingDropAfterDates != 9 {
		t.Errorf("RankingDropAfterDates = %d, want 9", cfg.RankingDropAfterDates)
	}
	if cfg.OverviewWorkers != 4 {
		t.Errorf("OverviewWorkers = %d, want 4", cfg.OverviewWorkers)
	}
	if cfg.ReadTimeout != 10*time.Second || cfg.WriteTimeout != 15*time.Second {
		t.Errorf("timeouts = %s/%s, want 10s/15s", cfg.ReadTimeout, cfg.WriteTimeout)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Errorf("CORSAllowedOrigins = %v, want wildcard", cfg.CORSAllowedOrigins)
	}
	if !cfg.DBDisablePreparedBinary {
		t.Error("DBDisablePreparedBinary should default on")
	}
}

func TestLoad_Overrides(t *testing.T) {
	setEnv(t, map[string]string{
		"APP_ENV":                  EnvProd,
		"APP_SERVICE_NAME":         "liga-api",
		"CORS_ALLOWED_ORIGINS":     " https://liga.example.com, http://localhost:5173 ",
		"RANKING_DROP_AFTER_DATES": "12",
		"OVERVIEW_WORKERS":         "8",
		"APP_READ_TIMEOUT":         "7s",
		"APP_WRITE_TIMEOUT":        "21s",
		"PPROF_ENABLED":            "true",
		"PPROF_ADDR":               "  ",
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.AppEnv != EnvProd {
		t.Errorf("AppEnv = %q, want %q", cfg.AppEnv, EnvProd)
	}
	want := []string{"https://liga.example.com", "http://localhost:5173"}
	if len(cfg.CORSAllowedOrigins) != len(want) {
		t.Fatalf("CORSAllowedOrigins = %v, want %v", cfg.CORSAllowedOrigins, want)
	}
	for i := range want {
		if cfg.CORSAllowedOrigins[i] != want[i] {
			t.Errorf("origin[%d] = %q, want %q", i, cfg.CORSAllowedOrigins[i], want[i])
		}
	}
	if cfg.RankingDropAfterDates != 12 {
		t.Errorf("RankingDropAfterDates = %d, want 12", cfg.RankingDropAfterDates)
	}
	if cfg.OverviewWorkers != 8 {
		t.Errorf("OverviewWorkers = %d, want 8", cfg.OverviewWorkers)
	}
	if cfg.ReadTimeout != 7*time.Second || cfg.WriteTimeout != 21*time.Second {
		t.Errorf("timeouts = %s/%s, want 7s/21s", cfg.ReadTimeout, cfg.WriteTimeout)
	}
	// Blank PPROF_ADDR still falls back to the default listener.
	if cfg.PprofAddr != ":6060" {
		t.Errorf("PprofAddr = %q, want :6060", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeAppNameFallsBackToServiceName(t *testing.T) {
	setEnv(t, map[string]string{
		"APP_SERVICE_NAME":         "liga-api",
		"PYROSCOPE_ENABLED":        "true",
		"PYROSCOPE_SERVER_ADDRESS": "http://localhost:4040",
		"PYROSCOPE_APP_NAME":       "",
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.PyroscopeAppName != "liga-api" {
		t.Fatalf("PyroscopeAppName = %q, want liga-api", cfg.PyroscopeAppName)
	}
}
