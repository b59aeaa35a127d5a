package markdown

import (
	"context"
	"fmt"
	"os"

	"github.com/goliatone/go-blogkit/pkg/interfaces"
)

// Config controls how the Markdown service renders previews.
type Config struct {
	Parser interfaces.ParseOptions
}

// Preview is a rendered post: its front matter and the HTML body.
type Preview struct {
	FrontMatter interfaces.FrontMatter
	HTML        []byte
}

// Service renders post files to HTML for inspection.
type Service struct {
	cfg    Config
	parser interfaces.MarkdownParser
}

// NewService constructs a Markdown service. When parser is nil, a Goldmark
// parser with the configured options is created.
func NewService(cfg Config, parser interfaces.MarkdownParser) *Service {
	if parser == nil {
		parser = NewGoldmarkParser(cfg.Parser)
	}
	return &Service{cfg: cfg, parser: parser}
}

// Render parses Markdown bytes into HTML using the configured parser.
func (s *Service) Render(ctx context.Context, markdown []byte, opts interfaces.ParseOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.parser.ParseWithOptions(markdown, mergeParseOptions(s.cfg.Parser, opts))
}

// Preview splits the front matter from source and renders the body.
func (s *Service) Preview(ctx context.Context, source []byte, opts interfaces.ParseOptions) (*Preview, error) {
	fm, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, err
	}
	html, err := s.Render(ctx, body, opts)
	if err != nil {
		return nil, err
	}
	return &Preview{FrontMatter: fm, HTML: html}, nil
}

// PreviewFile reads path and renders it.
func (s *Service) PreviewFile(ctx context.Context, path string, opts interfaces.ParseOptions) (*Preview, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("markdown service: read %s: %w", path, err)
	}
	preview, err := s.Preview(ctx, source, opts)
	if err != nil {
		return nil, fmt.Errorf("markdown service: render %s: %w", path, err)
	}
	return preview, nil
}

func mergeParseOptions(base, override interfaces.ParseOptions) interfaces.ParseOptions {
	result := base
	if len(override.Extensions) > 0 {
		result.Extensions = append([]string(nil), override.Extensions...)
	}
	if override.Sanitize {
		result.Sanitize = true
	}
	if override.HardWraps {
		result.HardWraps = true
	}
	if override.SafeMode {
		result.SafeMode = true
	}
	return result
}
