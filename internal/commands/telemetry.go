package commands

import (
	"context"
	"errors"
	"time"

	command "github.com/goliatone/go-command"
	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-blogkit/internal/logging"
	"github.com/goliatone/go-blogkit/pkg/interfaces"
)

// TelemetryStatus is the outcome class of a command run.
type TelemetryStatus string

const (
	TelemetryStatusSuccess      TelemetryStatus = "success"
	TelemetryStatusFailed       TelemetryStatus = "failed"
	TelemetryStatusContextError TelemetryStatus = "context_error"
)

// SlowCommandThreshold is the run time above which DefaultTelemetry warns.
const SlowCommandThreshold = 2 * time.Minute

// TelemetryInfo describes one command run. Error is the categorised error
// returned to the caller and Code its go-errors text code.
type TelemetryInfo struct {
	Command   string
	Operation string
	Fields    map[string]any
	Duration  time.Duration
	Error     error
	Code      string
	Status    TelemetryStatus
	Logger    interfaces.Logger
}

// Telemetry is invoked after every run in place of the built-in outcome log.
type Telemetry[T command.Message] func(ctx context.Context, msg T, info TelemetryInfo)

// DefaultTelemetry logs outcomes to logger and flags runs slower than
// SlowCommandThreshold.
func DefaultTelemetry[T command.Message](logger interfaces.Logger) Telemetry[T] {
	logger = EnsureLogger(logger)
	return func(ctx context.Context, _ T, info TelemetryInfo) {
		entry := logging.WithFields(logger.WithContext(ctx), info.Fields)
		logOutcome(entry, info)
		if info.Duration > SlowCommandThreshold {
			entry.Warn("command.execute.slow", "duration_ms", info.Duration.Milliseconds(), "threshold_ms", SlowCommandThreshold.Milliseconds())
		}
	}
}

func logOutcome(logger interfaces.Logger, info TelemetryInfo) {
	logger = EnsureLogger(logger)
	args := []any{"duration_ms", info.Duration.Milliseconds()}
	switch info.Status {
	case TelemetryStatusSuccess:
		logger.Info("command.execute.success", args...)
	case TelemetryStatusContextError:
		logger.Error("command.execute.context_error", append(args, "error", info.Error, "code", info.Code)...)
	default:
		logger.Error("command.execute.failed", append(args, "error", info.Error, "code", info.Code)...)
	}
}

func textCode(err error) string {
	var wrapped *goerrors.Error
	if errors.As(err, &wrapped) {
		return wrapped.TextCode
	}
	return ""
}
