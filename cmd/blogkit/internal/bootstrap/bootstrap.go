package bootstrap

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/goliatone/go-blogkit/internal/i18n"
	"github.com/goliatone/go-blogkit/internal/logging"
	"github.com/goliatone/go-blogkit/internal/logging/console"
	"github.com/goliatone/go-blogkit/internal/logging/gologger"
	"github.com/goliatone/go-blogkit/internal/markdown"
	"github.com/goliatone/go-blogkit/internal/posts"
	"github.com/goliatone/go-blogkit/internal/runtimeconfig"
	"github.com/goliatone/go-blogkit/pkg/interfaces"
)

// Collection names accepted by Module.Collection.
const (
	CollectionPosts = "posts"
	CollectionNotes = "notes"
)

// Options captures the persistent CLI flags.
type Options struct {
	ConfigFile string
	EnvFile    string
	LogLevel   string
	LogFormat  string
	// LogOutput receives console provider output. Defaults to stderr.
	LogOutput io.Writer
	// Viper overrides the configuration registry, mostly for tests.
	Viper *viper.Viper
}

// Module bundles the loaded configuration with the logger provider shared by
// every subcommand.
type Module struct {
	Config   runtimeconfig.Config
	Provider interfaces.LoggerProvider
	Logger   interfaces.Logger
}

// BuildModule loads configuration, applies flag overrides and selects the
// logger provider.
func BuildModule(opts Options) (*Module, error) {
	cfg, err := runtimeconfig.Load(opts.Viper, runtimeconfig.LoadOptions{
		ConfigFile: opts.ConfigFile,
		EnvFile:    opts.EnvFile,
	})
	if err != nil {
		return nil, err
	}
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.Logging.Level = level
	}
	if format := strings.TrimSpace(opts.LogFormat); format != "" {
		cfg.Logging.Format = format
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	out := opts.LogOutput
	if out == nil {
		out = os.Stderr
	}
	provider, err := NewLoggerProvider(cfg.Logging, out)
	if err != nil {
		return nil, err
	}

	return &Module{
		Config:   cfg,
		Provider: provider,
		Logger:   logging.ModuleLogger(provider, "cli"),
	}, nil
}

// NewLoggerProvider returns the provider named by cfg.Provider.
func NewLoggerProvider(cfg runtimeconfig.LoggingConfig, out io.Writer) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", "console":
		level := console.ParseLevel(cfg.Level)
		return console.NewProvider(console.Options{Writer: out, MinLevel: &level}), nil
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
		if err != nil {
			return nil, err
		}
		return provider, nil
	default:
		return nil, fmt.Errorf("bootstrap: unsupported logging provider %q", cfg.Provider)
	}
}

// Resolver indexes the localized page tree and builds the path resolver.
func (m *Module) Resolver() (*i18n.Resolver, error) {
	cfg := m.Config
	index, err := i18n.BuildPageIndex(os.DirFS(pagesDir(cfg)), i18n.PageIndexOptions{
		Root:          ".",
		DefaultLocale: cfg.DefaultLocale,
		Locales:       cfg.Locales,
		Extensions:    cfg.Pages.Extensions,
	})
	if err != nil {
		return nil, fmt.Errorf("bootstrap: index pages: %w", err)
	}
	logging.I18NLogger(m.Provider).Debug("i18n.pages.indexed", "dir", cfg.Pages.Dir)

	return i18n.NewResolver(i18n.ResolverConfig{
		Config: i18n.FromModuleConfig(cfg.DefaultLocale, cfg.Locales, cfg.ShowDefaultLocale),
		Routes: cfg.Routes,
		Pages:  index,
	})
}

// Links builds absolute link helpers rooted at the configured site origin.
func (m *Module) Links(resolver *i18n.Resolver) (*i18n.Links, error) {
	return i18n.NewLinks(m.Config.Site.BaseURL, resolver)
}

// Posts returns a repository over the configured post collection.
func (m *Module) Posts() *posts.Repository {
	dir := strings.TrimSpace(m.Config.Collections.PostDir)
	if dir == "" {
		dir = m.Config.Sync.PostDir
	}
	return m.collection(dir, logging.PostsLogger(m.Provider))
}

// Notes returns the repository over the notes collection.
func (m *Module) Notes() *posts.Repository {
	return m.collection(strings.TrimSpace(m.Config.Collections.NoteDir), logging.NotesLogger(m.Provider))
}

// Collection returns the repository named by name: posts or notes.
func (m *Module) Collection(name string) (*posts.Repository, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", CollectionPosts:
		return m.Posts(), nil
	case CollectionNotes:
		if strings.TrimSpace(m.Config.Collections.NoteDir) == "" {
			return nil, fmt.Errorf("bootstrap: collections.note_dir is not set")
		}
		return m.Notes(), nil
	default:
		return nil, fmt.Errorf("bootstrap: unknown collection %q", name)
	}
}

func (m *Module) collection(dir string, logger interfaces.Logger) *posts.Repository {
	loader := markdown.NewLoader(os.DirFS(dir), markdown.LoaderConfig{Root: "."})
	return posts.NewRepository(loader, m.Config.DefaultLocale, logger)
}

// MarkdownService returns the preview renderer. Sanitizing is decided per
// command so the base options leave it off.
func (m *Module) MarkdownService() *markdown.Service {
	opts := m.Config.Preview
	opts.Sanitize = false
	return markdown.NewService(markdown.Config{Parser: opts}, nil)
}

func pagesDir(cfg runtimeconfig.Config) string {
	if dir := strings.TrimSpace(cfg.Pages.Dir); dir != "" {
		return dir
	}
	return "."
}
