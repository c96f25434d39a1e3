package observability

import (
	"context"
	"errors"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/joaquinrs/poker-league/internal/config"
	"github.com/joaquinrs/poker-league/internal/platform/logging"
)

// DebugServer serves the pprof handlers on a separate listener so the
// profiling surface never shares a port with the API.
type DebugServer struct {
	srv    *http.Server
	logger *logging.Logger
}

// StartDebugServer returns nil when pprof is off; DebugServer methods
// tolerate a nil receiver for that case.
func StartDebugServer(cfg config.Config, logger *logging.Logger) *DebugServer {
	if logger == nil {
		logger = logging.Default()
	}

	if !cfg.PprofEnabled {
		logger.Info("pprof off", "reason", "PPROF_ENABLED=false")
		return nil
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	d := &DebugServer{
		srv: &http.Server{
			Addr:              cfg.PprofAddr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}

	go func() {
		logger.Info("pprof listening", "addr", cfg.PprofAddr)
		if err := d.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("pprof server failed", "error", err)
		}
	}()

	return d
}

func (d *DebugServer) Shutdown(timeout time.Duration) error {
	if d == nil || d.srv == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := d.srv.Shutdown(ctx); err != nil {
		return err
	}
	d.logger.Info("pprof stopped")

	return nil
}
