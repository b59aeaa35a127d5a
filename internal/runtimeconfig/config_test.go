package runtimeconfig_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/goliatone/go-blogkit/internal/runtimeconfig"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := runtimeconfig.DefaultConfig().Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*runtimeconfig.Config)
		want   error
	}{
		{
			name:   "default locale required",
			mutate: func(c *runtimeconfig.Config) { c.DefaultLocale = " " },
			want:   runtimeconfig.ErrDefaultLocaleRequired,
		},
		{
			name:   "default locale listed",
			mutate: func(c *runtimeconfig.Config) { c.Locales = []string{"uk"} },
			want:   runtimeconfig.ErrDefaultLocaleNotListed,
		},
		{
			name:   "default route table",
			mutate: func(c *runtimeconfig.Config) { delete(c.Routes, "en") },
			want:   runtimeconfig.ErrRouteTableMissing,
		},
		{
			name:   "unknown route key",
			mutate: func(c *runtimeconfig.Config) { c.Routes["uk"]["projects"] = "proekty" },
			want:   runtimeconfig.ErrRouteKeyUnknown,
		},
		{
			name:   "unknown route locale",
			mutate: func(c *runtimeconfig.Config) { c.Routes["de"] = map[string]string{"home": ""} },
			want:   runtimeconfig.ErrRouteLocaleUnknown,
		},
		{
			name:   "logging provider",
			mutate: func(c *runtimeconfig.Config) { c.Logging.Provider = "syslog" },
			want:   runtimeconfig.ErrLoggingProviderUnknown,
		},
		{
			name:   "logging level",
			mutate: func(c *runtimeconfig.Config) { c.Logging.Level = "loud" },
			want:   runtimeconfig.ErrLoggingLevelInvalid,
		},
		{
			name: "logging format",
			mutate: func(c *runtimeconfig.Config) {
				c.Logging.Provider = "gologger"
				c.Logging.Format = "xml"
			},
			want: runtimeconfig.ErrLoggingFormatInvalid,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := runtimeconfig.DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestConfigValidate_AllowsPartialLocaleTable(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	delete(cfg.Routes["uk"], "notes")

	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected untranslated route to be allowed, got %v", err)
	}
}

func TestConfigValidateSync(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	if err := cfg.ValidateSync(); !errors.Is(err, runtimeconfig.ErrSyncTokenRequired) {
		t.Fatalf("expected ErrSyncTokenRequired, got %v", err)
	}

	cfg.Sync.Token = "secret"
	if err := cfg.ValidateSync(); !errors.Is(err, runtimeconfig.ErrSyncDatabaseRequired) {
		t.Fatalf("expected ErrSyncDatabaseRequired, got %v", err)
	}

	cfg.Sync.DatabaseID = "db"
	cfg.Sync.PageSize = 101
	if err := cfg.ValidateSync(); !errors.Is(err, runtimeconfig.ErrSyncPageSizeInvalid) {
		t.Fatalf("expected ErrSyncPageSizeInvalid, got %v", err)
	}

	cfg.Sync.PageSize = 50
	if err := cfg.ValidateSync(); err != nil {
		t.Fatalf("expected valid sync config, got %v", err)
	}
}

func TestLoadReadsNotionEnvironment(t *testing.T) {
	t.Setenv("NOTION_TOKEN", "secret_token")
	t.Setenv("NOTION_DATABASE_ID", "0123456789abcdef0123456789abcdef")
	t.Setenv("BLOGKIT_LOGGING_LEVEL", "debug")

	cfg, err := runtimeconfig.Load(viper.New(), runtimeconfig.LoadOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Sync.Token != "secret_token" {
		t.Fatalf("expected token from env, got %q", cfg.Sync.Token)
	}
	if cfg.Sync.DatabaseID != "0123456789abcdef0123456789abcdef" {
		t.Fatalf("expected database id from env, got %q", cfg.Sync.DatabaseID)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected prefixed env override, got %q", cfg.Logging.Level)
	}
	if cfg.DefaultLocale != "en" || cfg.Sync.PageSize != runtimeconfig.MaxSyncPageSize {
		t.Fatalf("expected defaults to survive, got %+v", cfg)
	}
	if cfg.Routes["uk"]["blog"] != "posts" {
		t.Fatalf("expected default routes, got %v", cfg.Routes)
	}
}

func TestLoadExportsEnvFileWithoutOverriding(t *testing.T) {
	t.Setenv("NOTION_TOKEN", "from_process")
	t.Setenv("NOTION_DATABASE_ID", "")
	os.Unsetenv("NOTION_DATABASE_ID")

	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "NOTION_TOKEN=from_file\nNOTION_DATABASE_ID=abcdef\n"
	if err := os.WriteFile(envFile, []byte(content), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := runtimeconfig.Load(viper.New(), runtimeconfig.LoadOptions{EnvFile: envFile})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Sync.Token != "from_process" {
		t.Fatalf("expected process env to win, got %q", cfg.Sync.Token)
	}
	if cfg.Sync.DatabaseID != "abcdef" {
		t.Fatalf("expected env file value, got %q", cfg.Sync.DatabaseID)
	}
}

func TestLoadIgnoresMissingEnvFile(t *testing.T) {
	_, err := runtimeconfig.Load(viper.New(), runtimeconfig.LoadOptions{
		EnvFile: filepath.Join(t.TempDir(), "missing.env"),
	})
	if err != nil {
		t.Fatalf("expected missing env file to be ignored, got %v", err)
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blogkit.yaml")
	content := `
site:
  base_url: https://example.dev
show_default_locale: true
sync:
  post_dir: content/posts
logging:
  provider: gologger
  focus: [blogkit.sync]
  add_source: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := runtimeconfig.Load(viper.New(), runtimeconfig.LoadOptions{ConfigFile: path})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Site.BaseURL != "https://example.dev" || !cfg.ShowDefaultLocale || cfg.Sync.PostDir != "content/posts" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Logging.Provider != "gologger" || !cfg.Logging.AddSource || len(cfg.Logging.Focus) != 1 || cfg.Logging.Focus[0] != "blogkit.sync" {
		t.Fatalf("unexpected logging config %+v", cfg.Logging)
	}
}
