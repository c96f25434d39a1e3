package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joaquinrs/poker-league/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the service. Everything comes
// from the environment; there is no config file.
type Config struct {
	AppEnv                     string
	ServiceName                string
	ServiceVersion             string
	HTTPAddr                   string
	DBURL                      string
	DBDisablePreparedBinary    bool
	CORSAllowedOrigins         []string
	ReadTimeout                time.Duration
	WriteTimeout               time.Duration
	PprofEnabled               bool
	PprofAddr                  string
	UptraceEnabled             bool
	UptraceDSN                 string
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
	RankingDropAfterDates      int
	OverviewWorkers            int
	LogLevel                   logging.Level
}

// env reads variables and remembers the first failure, so Load can read
// everything in one pass and report a single error.
type env struct {
	err error
}

func (e *env) str(key, fallback string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

func (e *env) trimmed(key, fallback string) string {
	return strings.TrimSpace(e.str(key, fallback))
}

func (e *env) boolean(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		e.fail(fmt.Errorf("parse %s: %w", key, err))
		return fallback
	}
	return parsed
}

func (e *env) integer(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		e.fail(fmt.Errorf("parse %s: %w", key, err))
		return fallback
	}
	return parsed
}

func (e *env) duration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		e.fail(fmt.Errorf("parse %s: %w", key, err))
		return fallback
	}
	return parsed
}

func (e *env) csv(key, fallback string) []string {
	parts := strings.Split(e.str(key, fallback), ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if item := strings.TrimSpace(p); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func (e *env) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

func Load() (Config, error) {
	var e env

	cfg := Config{
		ServiceName:                e.str("APP_SERVICE_NAME", "poker-league-api"),
		ServiceVersion:             e.str("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                   e.str("APP_HTTP_ADDR", ":8080"),
		DBURL:                      e.str("DB_URL", ""),
		DBDisablePreparedBinary:    e.boolean("DB_DISABLE_PREPARED_BINARY_RESULT", true),
		CORSAllowedOrigins:         e.csv("CORS_ALLOWED_ORIGINS", "*"),
		ReadTimeout:                e.duration("APP_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:               e.duration("APP_WRITE_TIMEOUT", 15*time.Second),
		PprofEnabled:               e.boolean("PPROF_ENABLED", false),
		PprofAddr:                  e.trimmed("PPROF_ADDR", ":6060"),
		UptraceEnabled:             e.boolean("UPTRACE_ENABLED", false),
		UptraceDSN:                 e.trimmed("UPTRACE_DSN", ""),
		PyroscopeEnabled:           e.boolean("PYROSCOPE_ENABLED", false),
		PyroscopeServerAddress:     e.trimmed("PYROSCOPE_SERVER_ADDRESS", ""),
		PyroscopeAuthToken:         e.trimmed("PYROSCOPE_AUTH_TOKEN", ""),
		PyroscopeBasicAuthUser:     e.trimmed("PYROSCOPE_BASIC_AUTH_USER", ""),
		PyroscopeBasicAuthPassword: e.trimmed("PYROSCOPE_BASIC_AUTH_PASSWORD", ""),
		PyroscopeUploadRate:        e.duration("PYROSCOPE_UPLOAD_RATE", 15*time.Second),
		RankingDropAfterDates:      e.integer("RANKING_DROP_AFTER_DATES", 9),
		OverviewWorkers:            e.integer("OVERVIEW_WORKERS", 4),
		LogLevel:                   logging.ParseLevel(e.trimmed("APP_LOG_LEVEL", "info")),
	}

	appEnv := strings.ToLower(e.trimmed("APP_ENV", EnvDev))
	switch appEnv {
	case EnvDev, EnvStage, EnvProd:
		cfg.AppEnv = appEnv
	default:
		e.fail(fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", appEnv, EnvDev, EnvStage, EnvProd))
	}

	cfg.PyroscopeAppName = e.trimmed("PYROSCOPE_APP_NAME", cfg.ServiceName)

	if e.err != nil {
		return Config{}, e.err
	}
	return cfg, validate(cfg)
}

func validate(cfg Config) error {
	switch {
	case cfg.UptraceEnabled && cfg.UptraceDSN == "":
		return fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	case cfg.PprofEnabled && cfg.PprofAddr == "":
		return fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	case cfg.PyroscopeEnabled && cfg.PyroscopeServerAddress == "":
		return fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	case cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "":
		return fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	case cfg.PyroscopeUploadRate <= 0:
		return fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	case len(cfg.CORSAllowedOrigins) == 0:
		return fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	case cfg.RankingDropAfterDates < 0:
		return fmt.Errorf("RANKING_DROP_AFTER_DATES must be >= 0")
	case cfg.OverviewWorkers < 1:
		return fmt.Errorf("OVERVIEW_WORKERS must be >= 1")
	}
	return nil
}
