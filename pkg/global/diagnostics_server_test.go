package global_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/buildbarn/bb-montecarlo/pkg/configuration"
	"github.com/buildbarn/bb-montecarlo/pkg/global"
	"github.com/stretchr/testify/require"
)

func getStatusCode(handler http.Handler, path string) int {
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
	return recorder.Code
}

func TestDiagnosticsServer(t *testing.T) {
	t.Run("Readiness", func(t *testing.T) {
		diagnosticsServer := global.NewDiagnosticsServer(&configuration.DiagnosticsHTTPServerConfiguration{})
		handler := diagnosticsServer.NewHandler()

		// The process is healthy, but not ready until the
		// estimation run is in progress.
		require.Equal(t, http.StatusOK, getStatusCode(handler, "/-/healthy"))
		require.Equal(t, http.StatusServiceUnavailable, getStatusCode(handler, "/-/ready"))

		diagnosticsServer.SetReady()
		require.Equal(t, http.StatusOK, getStatusCode(handler, "/-/ready"))

		diagnosticsServer.SetNotServing()
		require.Equal(t, http.StatusServiceUnavailable, getStatusCode(handler, "/-/ready"))
	})

	t.Run("OptionalEndpoints", func(t *testing.T) {
		handler := global.NewDiagnosticsServer(&configuration.DiagnosticsHTTPServerConfiguration{}).NewHandler()
		require.Equal(t, http.StatusNotFound, getStatusCode(handler, "/metrics"))
		require.Equal(t, http.StatusNotFound, getStatusCode(handler, "/debug/pprof/"))

		handler = global.NewDiagnosticsServer(&configuration.DiagnosticsHTTPServerConfiguration{
			EnablePrometheus: true,
			EnablePprof:      true,
		}).NewHandler()
		require.Equal(t, http.StatusOK, getStatusCode(handler, "/metrics"))
		require.Equal(t, http.StatusOK, getStatusCode(handler, "/debug/pprof/"))
	})
}

func TestDiagnosticsServerRun(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		require.NoError(t, global.NewDiagnosticsServer(nil).Run(ctx, nil, nil))
	})

	t.Run("ShutdownOnCancel", func(t *testing.T) {
		// Canceling the context should shut down the web server
		// gracefully, causing Run() to return without an error.
		diagnosticsServer := global.NewDiagnosticsServer(&configuration.DiagnosticsHTTPServerConfiguration{
			ListenAddress: "127.0.0.1:0",
		})
		diagnosticsServer.SetReady()
		ctx, cancel := context.WithCancel(context.Background())
		errChannel := make(chan error, 1)
		go func() {
			errChannel <- diagnosticsServer.Run(ctx, nil, nil)
		}()
		cancel()
		require.NoError(t, <-errChannel)
	})
}
