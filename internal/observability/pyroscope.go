package observability

import (
	"github.com/grafana/pyroscope-go"
	"github.com/joaquinrs/poker-league/internal/config"
	"github.com/joaquinrs/poker-league/internal/platform/logging"
)

// SetupProfiling starts continuous profiling against Pyroscope and
// returns the stop hook, a no-op when profiling is off.
func SetupProfiling(cfg config.Config, logger *logging.Logger) (func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	if !cfg.PyroscopeEnabled {
		logger.Info("profiling off", "reason", "PYROSCOPE_ENABLED=false")
		return func() error { return nil }, nil
	}

	profile := pyroscope.Config{
		ApplicationName:   cfg.PyroscopeAppName,
		ServerAddress:     cfg.PyroscopeServerAddress,
		AuthToken:         cfg.PyroscopeAuthToken,
		BasicAuthUser:     cfg.PyroscopeBasicAuthUser,
		BasicAuthPassword: cfg.PyroscopeBasicAuthPassword,
		UploadRate:        cfg.PyroscopeUploadRate,
		Tags:              map[string]string{"env": cfg.AppEnv, "service": cfg.ServiceName},
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileGoroutines,
			pyroscope.ProfileAllocObjects,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseObjects,
			pyroscope.ProfileInuseSpace,
		},
	}

	profiler, err := pyroscope.Start(profile)
	if err != nil {
		return nil, err
	}

	logger.Info("profiling on",
		"server_address", cfg.PyroscopeServerAddress,
		"application", cfg.PyroscopeAppName,
	)

	return profiler.Stop, nil
}
