package runtimeconfig

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces blogkit environment overrides (BLOGKIT_LOGGING_LEVEL, ...).
const EnvPrefix = "BLOGKIT"

// LoadOptions locates optional configuration sources.
type LoadOptions struct {
	// ConfigFile is a YAML/JSON/TOML file read when non-empty.
	ConfigFile string
	// EnvFile is a dotenv file whose values are exported for variables not
	// already present in the environment. Missing files are ignored.
	EnvFile string
}

// Load layers DefaultConfig, the optional config file, the optional env file
// and the process environment, in increasing precedence.
func Load(v *viper.Viper, opts LoadOptions) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	if err := loadEnvFile(opts.EnvFile); err != nil {
		return Config{}, err
	}

	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("sync.token", "NOTION_TOKEN", EnvPrefix+"_SYNC_TOKEN")
	_ = v.BindEnv("sync.database_id", "NOTION_DATABASE_ID", EnvPrefix+"_SYNC_DATABASE_ID")

	if path := strings.TrimSpace(opts.ConfigFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("blogkit config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("blogkit config: unmarshal: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("default_locale", cfg.DefaultLocale)
	v.SetDefault("locales", cfg.Locales)
	v.SetDefault("show_default_locale", cfg.ShowDefaultLocale)
	v.SetDefault("routes", cfg.Routes)
	v.SetDefault("pages.dir", cfg.Pages.Dir)
	v.SetDefault("pages.extensions", cfg.Pages.Extensions)
	v.SetDefault("collections.post_dir", cfg.Collections.PostDir)
	v.SetDefault("collections.note_dir", cfg.Collections.NoteDir)
	v.SetDefault("site.base_url", cfg.Site.BaseURL)
	v.SetDefault("sync.token", cfg.Sync.Token)
	v.SetDefault("sync.database_id", cfg.Sync.DatabaseID)
	v.SetDefault("sync.post_dir", cfg.Sync.PostDir)
	v.SetDefault("sync.page_size", cfg.Sync.PageSize)
	v.SetDefault("sync.schedule", cfg.Sync.Schedule)
	v.SetDefault("preview.extensions", cfg.Preview.Extensions)
	v.SetDefault("preview.sanitize", cfg.Preview.Sanitize)
	v.SetDefault("preview.hard_wraps", cfg.Preview.HardWraps)
	v.SetDefault("preview.safe_mode", cfg.Preview.SafeMode)
	v.SetDefault("logging.provider", cfg.Logging.Provider)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
}

// loadEnvFile exports dotenv entries without overriding variables that are
// already set, matching the behaviour of the usual dotenv loaders.
func loadEnvFile(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("blogkit config: stat env file %s: %w", path, err)
	}

	env := viper.New()
	env.SetConfigFile(path)
	env.SetConfigType("env")
	if err := env.ReadInConfig(); err != nil {
		return fmt.Errorf("blogkit config: read env file %s: %w", path, err)
	}

	for _, key := range env.AllKeys() {
		name := strings.ToUpper(key)
		if _, exists := os.LookupEnv(name); exists {
			continue
		}
		if err := os.Setenv(name, env.GetString(key)); err != nil {
			return fmt.Errorf("blogkit config: export %s: %w", name, err)
		}
	}
	return nil
}
