package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/runoff/internal/logging"
)

// CreateLogger configures the application logger from a --log-level value.
// "off" discards everything; other values follow logging.ParseLevel.
// Logs always go to Stderr so Stdout only carries election results.
func CreateLogger(level string) (*slog.Logger, error) {
	if level == "off" {
		return logging.NewNop(), nil
	}
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return logging.New(lvl), nil
}
