package posts

import (
	"context"
	"fmt"

	"github.com/goliatone/go-blogkit/internal/logging"
	"github.com/goliatone/go-blogkit/internal/markdown"
	"github.com/goliatone/go-blogkit/pkg/interfaces"
)

// Repository reads a post collection from disk.
type Repository struct {
	loader      *markdown.Loader
	defaultLang string
	logger      interfaces.Logger
}

// NewRepository wraps loader. A nil logger discards output.
func NewRepository(loader *markdown.Loader, defaultLang string, logger interfaces.Logger) *Repository {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Repository{loader: loader, defaultLang: defaultLang, logger: logger}
}

// All returns the posts of lang, or of every language when lang is empty.
// Drafts are dropped unless includeDrafts is set.
func (r *Repository) All(ctx context.Context, lang string, includeDrafts bool) ([]Post, error) {
	docs, err := r.loader.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("posts: load collection: %w", err)
	}

	out := make([]Post, 0, len(docs))
	for _, doc := range docs {
		if doc.FrontMatter.Draft && !includeDrafts {
			continue
		}
		post := FromDocument(doc)
		if post.PublishDate.IsZero() {
			r.logger.Warn("posts.publish_date.invalid", "id", post.ID, "value", doc.FrontMatter.PublishDate)
		}
		out = append(out, post)
	}
	r.logger.Debug("posts.loaded", "count", len(out), "lang", lang)

	if lang == "" {
		return out, nil
	}
	return FilterByLang(out, lang, r.defaultLang), nil
}
