package i18n

import (
	"slices"
	"strings"
)

// Config lists the supported locales and how the default one is addressed.
type Config struct {
	DefaultLocale string
	Locales       []string
	// ShowDefaultLocale prefixes default-locale paths with /{locale} when true.
	ShowDefaultLocale bool
}

// FromModuleConfig builds a Config from runtime settings.
func FromModuleConfig(defaultLocale string, locales []string, showDefault bool) Config {
	return Config{
		DefaultLocale:     strings.TrimSpace(defaultLocale),
		Locales:           slices.Clone(locales),
		ShowDefaultLocale: showDefault,
	}
}

// IsLocale reports whether code is one of the configured locales.
func (c Config) IsLocale(code string) bool {
	return code != "" && slices.Contains(c.Locales, code)
}
