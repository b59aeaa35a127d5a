package i18n

import (
	"strings"

	"github.com/goliatone/go-blogkit/pkg/interfaces"
)

// ResolverConfig wires the static inputs of a Resolver.
type ResolverConfig struct {
	Config
	Routes map[string]map[string]string
	// Pages answers whether a locale has content for a slug. A nil checker
	// treats every non-default locale as untranslated.
	Pages interfaces.SlugChecker
}

// Resolver translates URL paths between locales. It only reads tables
// built in NewResolver and is safe for concurrent use.
type Resolver struct {
	cfg    Config
	routes *RouteTable
	pages  interfaces.SlugChecker
}

var _ interfaces.PathTranslator = (*Resolver)(nil)

// NewResolver validates the route table and returns a ready resolver.
func NewResolver(cfg ResolverConfig) (*Resolver, error) {
	routes, err := NewRouteTable(cfg.DefaultLocale, cfg.Routes)
	if err != nil {
		return nil, err
	}
	pages := cfg.Pages
	if pages == nil {
		pages = NewPageIndex(cfg.DefaultLocale, nil)
	}
	return &Resolver{
		cfg:    cfg.Config,
		routes: routes,
		pages:  pages,
	}, nil
}

// Config returns the locale configuration.
func (r *Resolver) Config() Config {
	return r.cfg
}

// Routes exposes the route table.
func (r *Resolver) Routes() *RouteTable {
	return r.routes
}

// HasPage forwards to the injected slug checker.
func (r *Resolver) HasPage(locale, slug string) bool {
	return r.pages.HasPage(locale, slug)
}

type parsedPath struct {
	slug           string
	locale         string
	explicitLocale bool
	base           string
	remainder      []string
	trailingSlash  bool
}

func (r *Resolver) parse(p string) parsedPath {
	out := parsedPath{
		trailingSlash: strings.HasSuffix(p, "/") && p != "/",
		locale:        r.cfg.DefaultLocale,
	}
	out.slug = trimPath(p)

	var segments []string
	if out.slug != "" {
		segments = strings.Split(out.slug, "/")
	}
	if len(segments) > 0 && r.cfg.IsLocale(segments[0]) {
		out.locale = segments[0]
		out.explicitLocale = true
		segments = segments[1:]
	}
	if len(segments) > 0 {
		out.base = segments[0]
		out.remainder = segments[1:]
	}
	return out
}

// routeKey finds the key for the parsed base segment. A locale-prefixed
// path is looked up in its own table first so localized segments resolve.
func (r *Resolver) routeKey(pp parsedPath) (string, bool) {
	if pp.explicitLocale && pp.locale != r.cfg.DefaultLocale {
		if key, ok := r.routes.Key(pp.locale, pp.base); ok {
			return key, true
		}
	}
	if key, ok := r.routes.Key(r.cfg.DefaultLocale, pp.base); ok {
		return key, true
	}
	if pp.slug == "" {
		return HomeRoute, true
	}
	return "", false
}

// TranslatePath returns the equivalent of path in target. Unknown routes,
// untranslated routes and routes without localized content are returned
// unchanged so callers never produce a dead link.
func (r *Resolver) TranslatePath(path, target string) string {
	pp := r.parse(path)

	key, ok := r.routeKey(pp)
	if !ok {
		return path
	}

	var segment string
	if target == r.cfg.DefaultLocale {
		segment, _ = r.routes.Segment(r.cfg.DefaultLocale, key)
	} else {
		translated, ok := r.routes.Segment(target, key)
		if !ok || !r.pages.HasPage(target, translated) {
			return path
		}
		segment = translated
	}

	slug := segment
	if len(pp.remainder) > 0 {
		slug = strings.TrimPrefix(segment+"/"+strings.Join(pp.remainder, "/"), "/")
	}
	localized := "/" + slug

	if target == r.cfg.DefaultLocale && !r.cfg.ShowDefaultLocale {
		return applyTrailingSlash(localized, pp.trailingSlash)
	}
	return applyTrailingSlash("/"+target+localized, pp.trailingSlash)
}

// Translator binds the resolver to the current locale, mirroring how page
// templates call it: an omitted target means the current locale.
func (r *Resolver) Translator(current string) func(path string, target ...string) string {
	return func(path string, target ...string) string {
		locale := current
		if len(target) > 0 && target[0] != "" {
			locale = target[0]
		}
		return r.TranslatePath(path, locale)
	}
}

// LangFromPath returns the locale named by the first path segment, or the
// default locale.
func (r *Resolver) LangFromPath(path string) string {
	first, _, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	if r.cfg.IsLocale(first) {
		return first
	}
	return r.cfg.DefaultLocale
}

// RouteFromPath returns the route key of the page path belongs to, using the
// table of the locale the path is in. The bare locale root maps to home.
func (r *Resolver) RouteFromPath(path string) (string, bool) {
	locale := r.LangFromPath(path)
	segments := splitSegments(path)

	index := 0
	if locale != r.cfg.DefaultLocale || (len(segments) > 0 && segments[0] == locale) {
		index = 1
	}
	segment := ""
	if index < len(segments) {
		segment = segments[index]
	}
	if key, ok := r.routes.Key(locale, segment); ok {
		return key, true
	}
	if segment == "" {
		return HomeRoute, true
	}
	return "", false
}

// RouteKeyFromPath looks the whole normalized path up in the default
// locale's table.
func (r *Resolver) RouteKeyFromPath(path string) (string, bool) {
	return r.routes.Key(r.cfg.DefaultLocale, trimPath(path))
}

func splitSegments(path string) []string {
	parts := strings.Split(path, "/")
	out := parts[:0]
	for _, part := range parts {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func applyTrailingSlash(path string, keep bool) string {
	if !keep || path == "/" || strings.HasSuffix(path, "/") {
		return path
	}
	return path + "/"
}
