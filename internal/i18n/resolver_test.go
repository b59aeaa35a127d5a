package i18n

import (
	"testing"
)

func siteRoutes() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {"home": "", "about": "about", "blog": "posts", "notes": "notes", "tags": "tags"},
		"uk": {"home": "", "about": "about", "blog": "posts", "notes": "notes"},
	}
}

func newTestResolver(t *testing.T, showDefault bool) *Resolver {
	t.Helper()
	resolver, err := NewResolver(ResolverConfig{
		Config: Config{DefaultLocale: "en", Locales: []string{"en", "uk"}, ShowDefaultLocale: showDefault},
		Routes: siteRoutes(),
		Pages:  NewPageIndex("en", map[string][]string{"uk": {"", "posts", "about"}}),
	})
	if err != nil {
		t.Fatalf("new resolver: %v", err)
	}
	return resolver
}

func TestTranslatePath(t *testing.T) {
	resolver := newTestResolver(t, false)

	cases := []struct {
		name   string
		path   string
		target string
		want   string
	}{
		{name: "posts to uk keeps trailing slash", path: "/posts/", target: "uk", want: "/uk/posts/"},
		{name: "root to uk", path: "/", target: "uk", want: "/uk/"},
		{name: "nested uk to en", path: "/uk/posts/hello", target: "en", want: "/posts/hello"},
		{name: "locale root to default", path: "/uk", target: "en", want: "/"},
		{name: "unknown route passes through", path: "/random/page", target: "uk", want: "/random/page"},
		{name: "untranslated route passes through", path: "/tags/go", target: "uk", want: "/tags/go"},
		{name: "route without localized content passes through", path: "/notes/", target: "uk", want: "/notes/"},
		{name: "remainder kept", path: "/posts/2024/hello/", target: "uk", want: "/uk/posts/2024/hello/"},
		{name: "repeated slashes collapsed", path: "//posts//hello", target: "uk", want: "/uk/posts/hello"},
		{name: "default to default", path: "/about", target: "en", want: "/about"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolver.TranslatePath(tc.path, tc.target); got != tc.want {
				t.Fatalf("TranslatePath(%q, %q) = %q, want %q", tc.path, tc.target, got, tc.want)
			}
		})
	}
}

func TestTranslatePathIsIdempotent(t *testing.T) {
	resolver := newTestResolver(t, false)
	paths := []string{"/", "/posts/", "/posts/hello", "/about", "/uk/posts/x/", "/random", "/tags/"}
	for _, locale := range []string{"en", "uk"} {
		for _, p := range paths {
			once := resolver.TranslatePath(p, locale)
			twice := resolver.TranslatePath(once, locale)
			if once != twice {
				t.Fatalf("not idempotent for %q -> %s: %q then %q", p, locale, once, twice)
			}
		}
	}
}

func TestTranslatePathRoundTrip(t *testing.T) {
	resolver, err := NewResolver(ResolverConfig{
		Config: Config{DefaultLocale: "en", Locales: []string{"en", "uk"}},
		Routes: map[string]map[string]string{
			"en": {"home": "", "blog": "posts"},
			"uk": {"home": "", "blog": "dopysy"},
		},
		Pages: NewPageIndex("en", map[string][]string{"uk": {"dopysy"}}),
	})
	if err != nil {
		t.Fatalf("new resolver: %v", err)
	}

	for _, p := range []string{"/posts/", "/posts/hello", "/posts"} {
		uk := resolver.TranslatePath(p, "uk")
		if uk == p {
			t.Fatalf("expected %q to translate", p)
		}
		if back := resolver.TranslatePath(uk, "en"); back != p {
			t.Fatalf("round trip %q -> %q -> %q", p, uk, back)
		}
	}
	if got := resolver.TranslatePath("/posts/hello", "uk"); got != "/uk/dopysy/hello" {
		t.Fatalf("expected localized segment, got %q", got)
	}
}

func TestTranslatePathShowDefaultLocale(t *testing.T) {
	resolver := newTestResolver(t, true)
	if got := resolver.TranslatePath("/uk/posts/hello", "en"); got != "/en/posts/hello" {
		t.Fatalf("expected prefixed default locale, got %q", got)
	}
	if got := resolver.TranslatePath("/en/about/", "uk"); got != "/uk/about/" {
		t.Fatalf("expected uk path, got %q", got)
	}
}

func TestTranslatorDefaultsToCurrentLocale(t *testing.T) {
	resolver := newTestResolver(t, false)
	translate := resolver.Translator("uk")
	if got := translate("/posts/"); got != "/uk/posts/" {
		t.Fatalf("expected current locale, got %q", got)
	}
	if got := translate("/uk/posts/", "en"); got != "/posts/" {
		t.Fatalf("expected explicit target, got %q", got)
	}
}

func TestLangAndRouteFromPath(t *testing.T) {
	resolver := newTestResolver(t, false)

	if got := resolver.LangFromPath("/uk/posts/"); got != "uk" {
		t.Fatalf("expected uk, got %q", got)
	}
	if got := resolver.LangFromPath("/posts/"); got != "en" {
		t.Fatalf("expected default locale, got %q", got)
	}

	cases := map[string]string{
		"/":               HomeRoute,
		"/uk/":            HomeRoute,
		"/posts/hello":    "blog",
		"/uk/posts/hello": "blog",
		"/uk/about":       "about",
		"/en/":            HomeRoute,
		"/en/posts/hello": "blog",
	}
	for path, want := range cases {
		got, ok := resolver.RouteFromPath(path)
		if !ok || got != want {
			t.Fatalf("RouteFromPath(%q) = %q, %v; want %q", path, got, ok, want)
		}
	}
	if _, ok := resolver.RouteFromPath("/random"); ok {
		t.Fatalf("expected unknown route")
	}

	if key, ok := resolver.RouteKeyFromPath("/posts/"); !ok || key != "blog" {
		t.Fatalf("RouteKeyFromPath = %q, %v", key, ok)
	}
	if _, ok := resolver.RouteKeyFromPath("/posts/hello"); ok {
		t.Fatalf("expected nested path to miss")
	}
}

func TestNewResolverWithoutPagesTreatsLocalesAsUntranslated(t *testing.T) {
	resolver, err := NewResolver(ResolverConfig{
		Config: Config{DefaultLocale: "en", Locales: []string{"en", "uk"}},
		Routes: siteRoutes(),
	})
	if err != nil {
		t.Fatalf("new resolver: %v", err)
	}
	if got := resolver.TranslatePath("/posts/", "uk"); got != "/posts/" {
		t.Fatalf("expected passthrough, got %q", got)
	}
}
