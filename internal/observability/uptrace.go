package observability

import (
	"context"
	"strings"

	"github.com/joaquinrs/poker-league/internal/config"
	"github.com/joaquinrs/poker-league/internal/platform/logging"
	"github.com/uptrace/uptrace-go/uptrace"
)

// SetupTracing wires the global OpenTelemetry providers to Uptrace and
// returns the shutdown hook. When tracing is off the hook is a no-op,
// so callers can always defer it.
func SetupTracing(cfg config.Config, logger *logging.Logger) func(context.Context) error {
	if logger == nil {
		logger = logging.Default()
	}

	noop := func(context.Context) error { return nil }

	switch {
	case !cfg.UptraceEnabled:
		logger.Info("tracing off", "reason", "UPTRACE_ENABLED=false")
		return noop
	case strings.TrimSpace(cfg.UptraceDSN) == "":
		logger.Info("tracing off", "reason", "empty UPTRACE_DSN")
		return noop
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
	)

	logger.Info("tracing on",
		"service_name", cfg.ServiceName,
		"service_version", cfg.ServiceVersion,
		"environment", cfg.AppEnv,
	)

	return uptrace.Shutdown
}
