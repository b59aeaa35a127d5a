package interfaces

import "context"

// Logger is the leveled logger passed to sync, i18n, posts and preview code.
// Arguments after msg are alternating key/value pairs. The method set matches
// go-logger's glog.Logger.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	WithContext(ctx context.Context) Logger
}

// LoggerProvider hands out a logger per module name, such as blogkit.sync.
type LoggerProvider interface {
	GetLogger(name string) Logger
}

// FieldsLogger is implemented by loggers that can return a child carrying
// extra fields. Use logging.WithFields rather than asserting it directly.
type FieldsLogger interface {
	WithFields(fields map[string]any) Logger
}
