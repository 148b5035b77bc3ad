package workers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const shutdownTimeout = 5 * time.Second

// apiServer serves the history API. Constructing it binds nothing; the
// listener opens only in Start.
type apiServer struct {
	addr    string
	handler http.Handler
}

func NewAPIServer(addr string, handler http.Handler) *apiServer {
	return &apiServer{
		addr:    addr,
		handler: handler,
	}
}

func (a *apiServer) Name() string { return "api_server" }

func (a *apiServer) Start(ctx context.Context) error {
	slog.Info("Starting service", "name", a.Name(), "addr", a.addr)
	defer slog.Info("Service stopped", "name", a.Name())

	server := &http.Server{
		Addr:    a.addr,
		Handler: a.handler,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serving api: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancelFn := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelFn()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down api server: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving api: %w", err)
	}
	return nil
}
