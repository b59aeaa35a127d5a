package markdown

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/goliatone/go-blogkit/pkg/interfaces"
)

// ErrUnknownExtension is returned when ParseOptions names an extension the
// parser does not provide.
var ErrUnknownExtension = errors.New("markdown: unknown extension")

// defaultExtensions apply when ParseOptions names none.
var defaultExtensions = []string{"gfm", "linkify", "tasklist"}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
	"typographer":   extension.Typographer,
}

// GoldmarkParser renders post bodies with goldmark. Engines are built once
// per option set and reused, so a parser is safe to share.
type GoldmarkParser struct {
	defaults interfaces.ParseOptions
	policy   *bluemonday.Policy

	mu      sync.Mutex
	engines map[string]goldmark.Markdown
}

var _ interfaces.MarkdownParser = (*GoldmarkParser)(nil)

// NewGoldmarkParser returns a parser whose Parse uses defaults.
func NewGoldmarkParser(defaults interfaces.ParseOptions) *GoldmarkParser {
	return &GoldmarkParser{
		defaults: defaults,
		policy:   postPolicy(),
		engines:  map[string]goldmark.Markdown{},
	}
}

// postPolicy is the bluemonday UGC policy plus the language class goldmark
// puts on fenced code blocks.
func postPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(regexp.MustCompile(`^language-[\w+#-]+$`)).OnElements("code")
	return policy
}

// Parse renders markdown with the parser defaults.
func (p *GoldmarkParser) Parse(markdown []byte) ([]byte, error) {
	return p.ParseWithOptions(markdown, p.defaults)
}

// ParseWithOptions renders markdown with opts. Sanitize filters the result
// through the post policy.
func (p *GoldmarkParser) ParseWithOptions(markdown []byte, opts interfaces.ParseOptions) ([]byte, error) {
	engine, err := p.engine(opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := engine.Convert(markdown, &buf); err != nil {
		return nil, fmt.Errorf("markdown parse: %w", err)
	}
	if opts.Sanitize {
		return p.policy.SanitizeBytes(buf.Bytes()), nil
	}
	return buf.Bytes(), nil
}

func (p *GoldmarkParser) engine(opts interfaces.ParseOptions) (goldmark.Markdown, error) {
	names, err := extensionNames(opts.Extensions)
	if err != nil {
		return nil, err
	}
	key := fmt.Sprintf("%t|%t|%s", opts.HardWraps, opts.SafeMode, strings.Join(names, ","))

	p.mu.Lock()
	defer p.mu.Unlock()
	if engine, ok := p.engines[key]; ok {
		return engine, nil
	}

	renderOpts := []renderer.Option{}
	if opts.HardWraps {
		renderOpts = append(renderOpts, html.WithHardWraps())
	}
	if !opts.SafeMode {
		renderOpts = append(renderOpts, html.WithUnsafe())
	}
	extenders := make([]goldmark.Extender, 0, len(names))
	for _, name := range names {
		extenders = append(extenders, extensionRegistry[name])
	}

	engine := goldmark.New(
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(renderOpts...),
		goldmark.WithExtensions(extenders...),
	)
	p.engines[key] = engine
	return engine, nil
}

// extensionNames normalizes names and drops duplicates, keeping first use.
func extensionNames(names []string) ([]string, error) {
	if len(names) == 0 {
		return defaultExtensions, nil
	}
	out := make([]string, 0, len(names))
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" || slices.Contains(out, key) {
			continue
		}
		if _, ok := extensionRegistry[key]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownExtension, name)
		}
		out = append(out, key)
	}
	return out, nil
}
