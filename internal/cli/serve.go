package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	httpAdapter "github.com/aretw0/runoff/pkg/adapters/http"
)

// shutdownTimeout gives outstanding requests a deadline for completion.
const shutdownTimeout = 5 * time.Second

// Serve runs the HTTP adapter until ctx is cancelled.
func Serve(ctx context.Context, addr string, workers int, logLevel string) error {
	logger, err := CreateLogger(logLevel)
	if err != nil {
		return err
	}

	// Refuse to start with a broken API description.
	doc, err := httpAdapter.LoadSpec(ctx)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           httpAdapter.NewHandler(httpAdapter.WithLogger(logger), httpAdapter.WithTallyWorkers(workers)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("runoff server listening", "address", addr, "api_version", doc.Info.Version)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		logger.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			if cerr := srv.Close(); cerr != nil {
				logger.Error("could not kill server", "error", cerr)
			}
			return fmt.Errorf("graceful shutdown did not complete in %v: %w", shutdownTimeout, err)
		}
		logger.Info("runoff server stopped gracefully")
		return nil
	}
}
