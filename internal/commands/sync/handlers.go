package synccmd

import (
	"context"
	"time"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-blogkit/internal/commands"
	"github.com/goliatone/go-blogkit/internal/logging"
	"github.com/goliatone/go-blogkit/internal/notion"
	"github.com/goliatone/go-blogkit/internal/notionsync"
	"github.com/goliatone/go-blogkit/pkg/interfaces"
)

const syncOperation = "sync.posts"

// Text codes attached to sync failures.
const (
	CodeCredentialsInvalid = "SYNC_CREDENTIALS_INVALID"
	CodeSourceUnavailable  = "SYNC_SOURCE_UNAVAILABLE"
	CodePostDirUnavailable = "SYNC_POST_DIR_UNAVAILABLE"
)

var (
	_ command.Commander[SyncPostsCommand] = (*SyncPostsHandler)(nil)
	_ command.CronCommand                 = (*SyncPostsHandler)(nil)
)

// SourceFactory builds the remote page source for a validated command.
type SourceFactory func(msg SyncPostsCommand) (interfaces.NotionSource, error)

// NotionSourceFactory connects to the Notion API with the command credentials.
func NotionSourceFactory(msg SyncPostsCommand) (interfaces.NotionSource, error) {
	return notion.NewClient(notion.Options{
		Token:      msg.Token,
		DatabaseID: msg.DatabaseID,
		PageSize:   msg.PageSize,
	})
}

// Options carries the language settings applied to every run.
type Options struct {
	DefaultLang string
	Languages   []string
	Now         func() time.Time
	// OnResult receives the summary of each completed run.
	OnResult func(*notionsync.Result)
	// Schedule is the cron metadata exposed through CronOptions. An empty
	// expression defaults to DefaultSchedule.
	Schedule command.HandlerConfig
	// Scheduled is the message executed by CronHandler.
	Scheduled SyncPostsCommand
}

// DefaultSchedule runs the sync once an hour.
const DefaultSchedule = "@hourly"

// SyncPostsHandler runs the Notion reconciler through the shared command handler.
type SyncPostsHandler struct {
	inner     *commands.Handler[SyncPostsCommand]
	schedule  command.HandlerConfig
	scheduled SyncPostsCommand
}

// NewSyncPostsHandler creates a handler that builds a source per run.
func NewSyncPostsHandler(factory SourceFactory, opts Options, logger interfaces.Logger, handlerOpts ...commands.HandlerOption[SyncPostsCommand]) *SyncPostsHandler {
	if factory == nil {
		factory = NotionSourceFactory
	}
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg SyncPostsCommand) error {
		source, err := factory(msg)
		if err != nil {
			return err
		}
		reconciler, err := notionsync.NewReconciler(source, notionsync.Options{
			PostDir:     msg.PostDir,
			DefaultLang: opts.DefaultLang,
			Languages:   opts.Languages,
			Now:         opts.Now,
			Logger:      baseLogger,
		})
		if err != nil {
			return err
		}

		result, err := reconciler.Run(ctx)
		if result != nil {
			logging.WithFields(baseLogger, map[string]any{
				"processed_count": result.Processed,
				"created_count":   result.Created,
				"updated_count":   result.Updated,
				"moved_count":     result.Moved,
				"deleted_count":   result.Deleted,
				"skipped_count":   result.Skipped,
				"failed_count":    result.Failed,
			}).Info("sync.command.posts.completed")
			if opts.OnResult != nil {
				opts.OnResult(result)
			}
		}
		return err
	}

	base := []commands.HandlerOption[SyncPostsCommand]{
		commands.WithLogger[SyncPostsCommand](baseLogger),
		// sync runs without a deadline
		commands.WithTimeout[SyncPostsCommand](0),
		commands.WithOperation[SyncPostsCommand](syncOperation),
		commands.WithMessageFields[SyncPostsCommand](func(msg SyncPostsCommand) map[string]any {
			return map[string]any{
				"database_id": msg.DatabaseID,
				"post_dir":    msg.PostDir,
			}
		}),
		commands.WithTelemetry[SyncPostsCommand](commands.DefaultTelemetry[SyncPostsCommand](baseLogger)),
		commands.WithErrorCodes[SyncPostsCommand](
			commands.ErrorCode{Target: notion.ErrTokenRequired, Code: CodeCredentialsInvalid},
			commands.ErrorCode{Target: notion.ErrDatabaseIDRequired, Code: CodeCredentialsInvalid},
			commands.ErrorCode{Target: notionsync.ErrSourceRequired, Code: CodeSourceUnavailable},
			commands.ErrorCode{Target: notionsync.ErrPostDirUnavailable, Code: CodePostDirUnavailable},
		),
	}

	schedule := opts.Schedule
	if schedule.Expression == "" {
		schedule.Expression = DefaultSchedule
	}

	return &SyncPostsHandler{
		inner:     commands.NewHandler(exec, append(base, handlerOpts...)...),
		schedule:  schedule,
		scheduled: opts.Scheduled,
	}
}

// Execute satisfies command.Commander[SyncPostsCommand].
func (h *SyncPostsHandler) Execute(ctx context.Context, msg SyncPostsCommand) error {
	return h.inner.Execute(ctx, msg)
}

// CronHandler satisfies command.CronCommand by running the scheduled message.
func (h *SyncPostsHandler) CronHandler() func() error {
	return func() error {
		return h.Execute(context.Background(), h.scheduled)
	}
}

// CronOptions satisfies command.CronCommand.
func (h *SyncPostsHandler) CronOptions() command.HandlerConfig {
	return h.schedule
}
