package notionsync

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goliatone/go-blogkit/internal/logging"
	"github.com/goliatone/go-blogkit/internal/markdown"
	"github.com/goliatone/go-blogkit/internal/notion"
	"github.com/goliatone/go-blogkit/pkg/interfaces"
)

// Action names the change a page produced on disk.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionMoved   Action = "moved"
	ActionDeleted Action = "deleted"
	ActionSkipped Action = "skipped"
	ActionFailed  Action = "failed"
)

var (
	ErrSourceRequired  = errors.New("notionsync: notion source is required")
	ErrPostDirRequired = errors.New("notionsync: post directory is required")
	// ErrPostDirUnavailable wraps failures to scan or create the post directory.
	ErrPostDirUnavailable = errors.New("notionsync: post directory unavailable")
)

// Options configures a Reconciler.
type Options struct {
	PostDir     string
	DefaultLang string
	Languages   []string
	// Now supplies the publish date for pages without one.
	Now    func() time.Time
	Logger interfaces.Logger
}

// PageResult records what happened to a single remote page.
type PageResult struct {
	NotionID string
	Path     string
	Action   Action
	Err      error
}

// Result summarises a run. Processed counts every page returned by the
// source, including failed ones.
type Result struct {
	Processed int
	Created   int
	Updated   int
	Moved     int
	Deleted   int
	Skipped   int
	Failed    int
	// SourceErr is set when listing failed and the run saw zero pages.
	SourceErr error
	Pages     []PageResult
}

func (r *Result) record(page PageResult) {
	r.Pages = append(r.Pages, page)
	switch page.Action {
	case ActionCreated:
		r.Created++
	case ActionUpdated:
		r.Updated++
	case ActionMoved:
		r.Moved++
	case ActionDeleted:
		r.Deleted++
	case ActionSkipped:
		r.Skipped++
	case ActionFailed:
		r.Failed++
	}
}

// Reconciler mirrors the published pages of a Notion database into a post
// directory, one file per page id.
type Reconciler struct {
	source interfaces.NotionSource
	opts   Options
	logger interfaces.Logger
}

// NewReconciler validates opts.
func NewReconciler(source interfaces.NotionSource, opts Options) (*Reconciler, error) {
	if source == nil {
		return nil, ErrSourceRequired
	}
	if strings.TrimSpace(opts.PostDir) == "" {
		return nil, ErrPostDirRequired
	}
	opts.PostDir = filepath.Clean(opts.PostDir)
	if opts.Now == nil {
		opts.Now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Reconciler{source: source, opts: opts, logger: logger}, nil
}

// Run processes every remote page in order. Listing failures are logged and
// treated as an empty listing; per-page failures are logged, counted and
// skipped. Only local index failures and cancellation abort the run.
func (r *Reconciler) Run(ctx context.Context) (*Result, error) {
	result := &Result{}
	runLogger := r.logger.WithContext(ctx)

	pages, err := r.source.SearchPages(ctx)
	if err != nil {
		fields := map[string]any{"error": err.Error()}
		if hint := notion.Hint(err); hint != "" {
			fields["hint"] = hint
		}
		logging.WithFields(runLogger, fields).Error("sync.search.failed")
		result.SourceErr = err
		pages = nil
	}
	result.Processed = len(pages)
	runLogger.Info("sync.search.complete", "pages", len(pages))

	index, err := BuildFileIndex(r.opts.PostDir)
	if err != nil {
		return result, fmt.Errorf("%w: index %s: %w", ErrPostDirUnavailable, r.opts.PostDir, err)
	}
	if err := os.MkdirAll(r.opts.PostDir, 0o755); err != nil {
		return result, fmt.Errorf("%w: create %s: %w", ErrPostDirUnavailable, r.opts.PostDir, err)
	}

	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		outcome := r.reconcile(ctx, index, page)
		result.record(outcome)

		logger := logging.WithSyncContext(runLogger, outcome.NotionID, outcome.Path, string(outcome.Action))
		if outcome.Err != nil {
			logger.Error("sync.page.failed", "error", outcome.Err)
			continue
		}
		logger.Info("sync.page." + string(outcome.Action))
	}

	return result, nil
}

func (r *Reconciler) reconcile(ctx context.Context, index *FileIndex, page interfaces.RemotePage) PageResult {
	meta := notion.ExtractMetadata(page, notion.MetadataOptions{
		DefaultLang: r.opts.DefaultLang,
		Languages:   r.opts.Languages,
		Now:         r.opts.Now,
	})
	target, dir := OutputPaths(r.opts.PostDir, meta.Slug, meta.Lang, r.opts.DefaultLang)
	existing, mapped := index.Get(page.ID)

	out := PageResult{NotionID: page.ID, Path: target}
	fail := func(err error) PageResult {
		out.Action = ActionFailed
		out.Err = err
		return out
	}

	if !meta.Published {
		if !mapped {
			out.Action = ActionSkipped
			out.Path = ""
			return out
		}
		if err := RemoveFileAndEmptyDirs(existing, r.opts.PostDir); err != nil {
			out.Path = existing
			return fail(fmt.Errorf("remove unpublished %s: %w", existing, err))
		}
		index.Delete(page.ID)
		out.Action = ActionDeleted
		out.Path = existing
		return out
	}

	if !WithinDir(r.opts.PostDir, target) {
		return fail(fmt.Errorf("%w: slug %q", ErrPathOutsidePostDir, meta.Slug))
	}

	content, err := r.render(ctx, page, meta)
	if err != nil {
		return fail(err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fail(fmt.Errorf("create %s: %w", dir, err))
	}

	out.Action = ActionCreated
	if mapped {
		out.Action = ActionUpdated
		if existing != target {
			if err := RemoveFileAndEmptyDirs(existing, r.opts.PostDir); err != nil {
				return fail(fmt.Errorf("remove moved %s: %w", existing, err))
			}
			out.Action = ActionMoved
		}
	} else if _, err := os.Stat(target); err == nil {
		occupant, ok := markdown.ReadNotionIDFile(target)
		switch {
		case ok && notion.NormalizeID(occupant) != notion.NormalizeID(page.ID):
			if err := RemoveFileAndEmptyDirs(target, r.opts.PostDir); err != nil {
				return fail(fmt.Errorf("remove occupant %s: %w", target, err))
			}
			index.Delete(occupant)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fail(fmt.Errorf("create %s: %w", dir, err))
			}
			r.logger.Warn("sync.page.replaced_occupant", "path", target, "occupant_id", occupant, "notion_id", page.ID)
		case !ok:
			r.logger.Warn("sync.page.overwrite_unmanaged", "path", target, "slug", meta.Slug)
		}
	}

	if err := os.WriteFile(target, content, 0o644); err != nil {
		return fail(fmt.Errorf("write %s: %w", target, err))
	}
	index.Set(page.ID, target)
	return out
}

func (r *Reconciler) render(ctx context.Context, page interfaces.RemotePage, meta notion.Metadata) ([]byte, error) {
	blocks, err := r.source.ListBlocks(ctx, page.ID)
	if err != nil {
		return nil, err
	}

	fm := interfaces.FrontMatter{
		Title:       meta.Title,
		Description: meta.Description,
		PublishDate: meta.PublishDate,
		Tags:        meta.Tags,
		Lang:        meta.Lang,
		NotionID:    page.ID,
	}
	if meta.HeroImage != "" {
		fm.CoverImage = &interfaces.CoverImage{Src: meta.HeroImage, Alt: meta.Title}
	}
	return markdown.RenderPost(fm, markdown.BlocksToMarkdown(blocks))
}
