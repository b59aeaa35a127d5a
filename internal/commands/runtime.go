package commands

import (
	"context"
	"time"

	"github.com/goliatone/go-blogkit/internal/logging"
	"github.com/goliatone/go-blogkit/pkg/interfaces"
)

// DefaultCommandTimeout bounds a single command run. A sync walks every page
// of the database, so this sits well above the slow-run warning.
const DefaultCommandTimeout = 10 * time.Minute

// runContext derives the context a command executes under. A nil parent is
// replaced with context.Background and a non-positive timeout adds no deadline.
func runContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	if timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}

// EnsureLogger returns logger, or a no-op logger when it is nil.
func EnsureLogger(logger interfaces.Logger) interfaces.Logger {
	if logger == nil {
		return logging.NoOp()
	}
	return logger
}
