package interfaces

// SlugChecker reports whether content exists for a (locale, slug) pair.
// Implementations are read-only lookups built ahead of any path translation.
type SlugChecker interface {
	HasPage(locale, slug string) bool
}

// PathTranslator converts root-relative URL paths between locales.
type PathTranslator interface {
	TranslatePath(path, targetLocale string) string
}

// Translator resolves UI strings for a locale.
type Translator interface {
	Translate(locale, key string) string
}
