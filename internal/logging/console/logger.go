// Package console writes one terminal line per log entry:
//
//	2024-03-14T15:09:26Z INFO  blogkit.sync sync.page.created notion_id=abc
//
// Logger fields come first in key order, then context fields, then the
// arguments of the call in the order given.
package console

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-blogkit/internal/logging"
	"github.com/goliatone/go-blogkit/pkg/interfaces"
)

// Level is the severity of an entry.
type Level int8

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelNames = [...]string{
	LevelTrace: "TRACE",
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
	LevelFatal: "FATAL",
}

// badKey labels arguments that are not preceded by a string key.
const badKey = "!BADKEY"

func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return levelNames[LevelInfo]
	}
	return levelNames[l]
}

// ParseLevel maps a configured level name to a Level, case-insensitively.
// Unknown names yield LevelInfo.
func ParseLevel(value string) Level {
	name := strings.ToUpper(strings.TrimSpace(value))
	if name == "WARNING" {
		name = "WARN"
	}
	if i := slices.Index(levelNames[:], name); i >= 0 {
		return Level(i)
	}
	return LevelInfo
}

// Options configures NewProvider. The zero value writes DEBUG and above to
// stdout with RFC 3339 timestamps.
type Options struct {
	Writer     io.Writer
	TimeFunc   func() time.Time
	MinLevel   *Level
	TimeLayout string
}

type sink struct {
	mu     sync.Mutex
	out    io.Writer
	now    func() time.Time
	layout string
	min    Level
}

// NewProvider returns a LoggerProvider whose loggers share one writer.
func NewProvider(opts Options) interfaces.LoggerProvider {
	s := &sink{
		out:    opts.Writer,
		now:    opts.TimeFunc,
		layout: opts.TimeLayout,
		min:    LevelDebug,
	}
	if s.out == nil {
		s.out = os.Stdout
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.layout == "" {
		s.layout = time.RFC3339
	}
	if opts.MinLevel != nil {
		s.min = *opts.MinLevel
	}
	return s
}

func (s *sink) GetLogger(name string) interfaces.Logger {
	return &lineLogger{sink: s, name: name}
}

type lineLogger struct {
	sink   *sink
	name   string
	fields map[string]any
	ctx    context.Context
}

var (
	_ interfaces.Logger       = (*lineLogger)(nil)
	_ interfaces.FieldsLogger = (*lineLogger)(nil)
)

func (l *lineLogger) Trace(msg string, args ...any) { l.write(LevelTrace, msg, args) }
func (l *lineLogger) Debug(msg string, args ...any) { l.write(LevelDebug, msg, args) }
func (l *lineLogger) Info(msg string, args ...any)  { l.write(LevelInfo, msg, args) }
func (l *lineLogger) Warn(msg string, args ...any)  { l.write(LevelWarn, msg, args) }
func (l *lineLogger) Error(msg string, args ...any) { l.write(LevelError, msg, args) }
func (l *lineLogger) Fatal(msg string, args ...any) { l.write(LevelFatal, msg, args) }

func (l *lineLogger) WithFields(fields map[string]any) interfaces.Logger {
	if len(fields) == 0 {
		return l
	}
	next := *l
	next.fields = make(map[string]any, len(l.fields)+len(fields))
	maps.Copy(next.fields, l.fields)
	maps.Copy(next.fields, fields)
	return &next
}

func (l *lineLogger) WithContext(ctx context.Context) interfaces.Logger {
	next := *l
	next.ctx = ctx
	return &next
}

func (l *lineLogger) write(level Level, msg string, args []any) {
	if level < l.sink.min {
		return
	}

	var b strings.Builder
	b.WriteString(l.sink.now().UTC().Format(l.sink.layout))
	fmt.Fprintf(&b, " %-5s ", level)
	if l.name != "" {
		b.WriteString(l.name)
		b.WriteByte(' ')
	}
	b.WriteString(msg)

	appendSorted(&b, l.fields)
	appendSorted(&b, logging.ContextFields(l.ctx))
	for len(args) > 0 {
		key, ok := args[0].(string)
		switch {
		case !ok:
			appendPair(&b, badKey, args[0])
			args = args[1:]
		case len(args) == 1:
			appendPair(&b, badKey, key)
			args = nil
		default:
			appendPair(&b, key, args[1])
			args = args[2:]
		}
	}
	b.WriteByte('\n')

	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	// write errors are dropped
	_, _ = io.WriteString(l.sink.out, b.String())
}

func appendSorted(b *strings.Builder, fields map[string]any) {
	for _, key := range slices.Sorted(maps.Keys(fields)) {
		appendPair(b, key, fields[key])
	}
}

func appendPair(b *strings.Builder, key string, value any) {
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(render(value))
}

func render(value any) string {
	var text string
	switch v := value.(type) {
	case nil:
		return "<nil>"
	case string:
		text = v
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	case time.Duration:
		return v.String()
	case error:
		text = v.Error()
	case fmt.Stringer:
		text = v.String()
	default:
		text = fmt.Sprint(v)
	}
	if text == "" || strings.ContainsFunc(text, func(r rune) bool { return r <= ' ' || r == '=' || r == '"' }) {
		return strconv.Quote(text)
	}
	return text
}
