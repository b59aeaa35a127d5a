package runtimeconfig

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/goliatone/go-blogkit/pkg/interfaces"
)

var ErrDefaultLocaleRequired = errors.New("blogkit config: default locale is required")
var ErrDefaultLocaleNotListed = errors.New("blogkit config: default locale must be listed in locales")

// ErrRouteTableMissing indicates the default locale has no route table.
var ErrRouteTableMissing = errors.New("blogkit config: default locale route table is required")

// ErrRouteKeyUnknown indicates a locale route table names a key the default table lacks.
var ErrRouteKeyUnknown = errors.New("blogkit config: route key is not defined for the default locale")
var ErrRouteLocaleUnknown = errors.New("blogkit config: route table configured for an unsupported locale")
var ErrSyncTokenRequired = errors.New("blogkit config: NOTION_TOKEN is required")
var ErrSyncDatabaseRequired = errors.New("blogkit config: NOTION_DATABASE_ID is required")
var ErrSyncPostDirRequired = errors.New("blogkit config: sync post directory is required")
var ErrSyncPageSizeInvalid = errors.New("blogkit config: sync page size must be between 1 and 100")
var ErrLoggingProviderUnknown = errors.New("blogkit config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("blogkit config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("blogkit config: logging format is invalid")

// MaxSyncPageSize is the largest page size accepted by the Notion API.
const MaxSyncPageSize = 100

// Config aggregates locale routing, sync and logging settings. Fields use
// simple types so the viper loader can populate them from files and env.
type Config struct {
	DefaultLocale     string                       `mapstructure:"default_locale"`
	Locales           []string                     `mapstructure:"locales"`
	ShowDefaultLocale bool                         `mapstructure:"show_default_locale"`
	Routes            map[string]map[string]string `mapstructure:"routes"`
	Pages             PagesConfig                  `mapstructure:"pages"`
	Collections       CollectionsConfig            `mapstructure:"collections"`
	Site              SiteConfig                   `mapstructure:"site"`
	Sync              SyncConfig                   `mapstructure:"sync"`
	Preview           interfaces.ParseOptions      `mapstructure:"preview"`
	Logging           LoggingConfig                `mapstructure:"logging"`
}

// PagesConfig points at the page tree scanned to discover localized pages.
type PagesConfig struct {
	Dir        string   `mapstructure:"dir"`
	Extensions []string `mapstructure:"extensions"`
}

// CollectionsConfig locates the markdown content collections.
type CollectionsConfig struct {
	PostDir string `mapstructure:"post_dir"`
	NoteDir string `mapstructure:"note_dir"`
}

// SiteConfig holds the public origin used for absolute links.
type SiteConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// SyncConfig captures the Notion sync job settings.
type SyncConfig struct {
	Token      string `mapstructure:"token"`
	DatabaseID string `mapstructure:"database_id"`
	PostDir    string `mapstructure:"post_dir"`
	PageSize   int    `mapstructure:"page_size"`
	// Schedule is the cron expression hosts use to run the sync.
	Schedule string `mapstructure:"schedule"`
}

// LoggingConfig selects the logger provider.
type LoggingConfig struct {
	Provider string `mapstructure:"provider"`
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
	// Focus and AddSource apply to the gologger provider only.
	Focus     []string `mapstructure:"focus"`
	AddSource bool     `mapstructure:"add_source"`
}

// DefaultConfig returns the settings of the bilingual blog the tooling was
// built for.
func DefaultConfig() Config {
	routes := func() map[string]string {
		return map[string]string{
			"home":  "",
			"about": "about",
			"blog":  "posts",
			"notes": "notes",
			"tags":  "tags",
		}
	}
	return Config{
		DefaultLocale:     "en",
		Locales:           []string{"en", "uk"},
		ShowDefaultLocale: false,
		Routes: map[string]map[string]string{
			"en": routes(),
			"uk": routes(),
		},
		Pages: PagesConfig{
			Dir:        "./src/pages",
			Extensions: []string{".astro", ".md", ".mdx"},
		},
		Collections: CollectionsConfig{
			PostDir: "./src/content/post",
			NoteDir: "./src/content/note",
		},
		Site: SiteConfig{
			BaseURL: "http://localhost:4321",
		},
		Sync: SyncConfig{
			PostDir:  "./src/content/post",
			PageSize: MaxSyncPageSize,
			Schedule: "@hourly",
		},
		Preview: interfaces.ParseOptions{
			Sanitize: true,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate performs the static consistency checks needed before the
// resolver or the CLI are constructed.
func (cfg Config) Validate() error {
	def := strings.TrimSpace(cfg.DefaultLocale)
	if def == "" {
		return ErrDefaultLocaleRequired
	}
	if !slices.Contains(cfg.Locales, def) {
		return fmt.Errorf("%w: %s", ErrDefaultLocaleNotListed, def)
	}
	base, ok := cfg.Routes[def]
	if !ok || len(base) == 0 {
		return ErrRouteTableMissing
	}
	for locale, table := range cfg.Routes {
		if !slices.Contains(cfg.Locales, locale) {
			return fmt.Errorf("%w: %s", ErrRouteLocaleUnknown, locale)
		}
		for key := range table {
			if _, ok := base[key]; !ok {
				return fmt.Errorf("%w: %s.%s", ErrRouteKeyUnknown, locale, key)
			}
		}
	}

	provider := strings.ToLower(strings.TrimSpace(cfg.Logging.Provider))
	if !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, cfg.Logging.Provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == "gologger" {
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

// ValidateSync checks the settings the sync job needs before any network
// call is made.
func (cfg Config) ValidateSync() error {
	if strings.TrimSpace(cfg.Sync.Token) == "" {
		return ErrSyncTokenRequired
	}
	if strings.TrimSpace(cfg.Sync.DatabaseID) == "" {
		return ErrSyncDatabaseRequired
	}
	if strings.TrimSpace(cfg.Sync.PostDir) == "" {
		return ErrSyncPostDirRequired
	}
	if cfg.Sync.PageSize < 1 || cfg.Sync.PageSize > MaxSyncPageSize {
		return fmt.Errorf("%w: %d", ErrSyncPageSizeInvalid, cfg.Sync.PageSize)
	}
	return nil
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
