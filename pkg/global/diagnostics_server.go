package global

import (
	"context"
	"net/http"
	"sync/atomic"

	"github.com/buildbarn/bb-montecarlo/pkg/configuration"
	"github.com/buildbarn/bb-montecarlo/pkg/program"
	"github.com/buildbarn/bb-montecarlo/pkg/util"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DiagnosticsServer is returned by ApplyConfiguration. It can be used by
// the caller to report whether the estimation run is in progress.
type DiagnosticsServer struct {
	config  *configuration.DiagnosticsHTTPServerConfiguration
	serving atomic.Bool
}

// NewDiagnosticsServer creates a DiagnosticsServer. If no
// configuration is provided, no web server is launched.
func NewDiagnosticsServer(config *configuration.DiagnosticsHTTPServerConfiguration) *DiagnosticsServer {
	return &DiagnosticsServer{
		config: config,
	}
}

// NewHandler returns the HTTP handler that exposes health checks,
// Prometheus metrics and pprof endpoints.
func (ds *DiagnosticsServer) NewHandler() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/-/healthy", func(http.ResponseWriter, *http.Request) {})
	router.HandleFunc("/-/ready", func(w http.ResponseWriter, _ *http.Request) {
		if ds.serving.Load() {
			w.WriteHeader(http.StatusOK)
		} else {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		}
	})
	if ds.config.EnablePrometheus {
		router.Handle("/metrics", promhttp.Handler())
	}
	if ds.config.EnablePprof {
		router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)
	}
	return router
}

// Run the diagnostics web server until the context is canceled. This
// function has the signature of a program.Routine, so that it can be
// launched as a dependency of the estimation run.
func (ds *DiagnosticsServer) Run(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
	if ds.config == nil {
		<-ctx.Done()
		return nil
	}

	server := &http.Server{
		Addr:    ds.config.ListenAddress,
		Handler: ds.NewHandler(),
	}
	go func() {
		<-ctx.Done()
		ds.SetNotServing()
		if err := server.Shutdown(context.Background()); err != nil {
			util.DefaultErrorLogger.Log(util.StatusWrap(err, "Failed to shut down diagnostics server"))
		}
	}()
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return util.StatusWrap(err, "Diagnostics server")
	}
	return nil
}

// SetReady updates the health probe to report healthy and ready.
func (ds *DiagnosticsServer) SetReady() {
	ds.serving.Store(true)
}

// SetNotServing updates the health probe to report healthy but not ready.
func (ds *DiagnosticsServer) SetNotServing() {
	ds.serving.Store(false)
}
