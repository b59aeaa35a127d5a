package i18n

import (
	"fmt"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"
)

const siteGroup = "site"

// Links builds absolute URLs for route keys through a go-urlkit route
// manager with one group per locale.
type Links struct {
	resolver *Resolver
	manager  *urlkit.RouteManager
}

// NewLinks registers the resolver's route table under baseURL.
func NewLinks(baseURL string, resolver *Resolver) (*Links, error) {
	if resolver == nil {
		return nil, fmt.Errorf("i18n: links require a resolver")
	}
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("i18n: links require a base url")
	}

	cfg := resolver.Config()
	routes := resolver.Routes()

	root := urlkit.GroupConfig{
		Name:    siteGroup,
		BaseURL: baseURL,
		Paths:   map[string]string{},
	}
	for _, locale := range cfg.Locales {
		if locale == cfg.DefaultLocale && !cfg.ShowDefaultLocale {
			root.Paths = routePaths(routes, locale)
			continue
		}
		root.Groups = append(root.Groups, urlkit.GroupConfig{
			Name:  locale,
			Path:  "/" + locale,
			Paths: routePaths(routes, locale),
		})
	}

	return &Links{
		resolver: resolver,
		manager:  urlkit.NewRouteManager(&urlkit.Config{Groups: []urlkit.GroupConfig{root}}),
	}, nil
}

// URL returns the absolute URL of key in locale with remainder appended.
func (l *Links) URL(locale, key, remainder string) (string, error) {
	group, err := l.group(locale)
	if err != nil {
		return "", err
	}
	builder, err := safeBuilder(group, key)
	if err != nil {
		return "", err
	}
	url, err := builder.Build()
	if err != nil {
		return "", err
	}
	if remainder = trimPath(remainder); remainder != "" {
		url = strings.TrimSuffix(url, "/") + "/" + remainder
	}
	return url, nil
}

// Alternates maps every locale that has an equivalent of path to its
// absolute URL. Paths outside the route table yield nil.
func (l *Links) Alternates(path string) map[string]string {
	pp := l.resolver.parse(path)
	key, ok := l.resolver.routeKey(pp)
	if !ok {
		return nil
	}
	remainder := strings.Join(pp.remainder, "/")
	cfg := l.resolver.Config()

	out := make(map[string]string, len(cfg.Locales))
	for _, locale := range cfg.Locales {
		if locale != cfg.DefaultLocale {
			segment, ok := l.resolver.Routes().Segment(locale, key)
			if !ok || !l.resolver.HasPage(locale, segment) {
				continue
			}
		}
		url, err := l.URL(locale, key, remainder)
		if err != nil {
			continue
		}
		out[locale] = applyTrailingSlash(url, pp.trailingSlash)
	}
	return out
}

func (l *Links) group(locale string) (*urlkit.Group, error) {
	root, err := lookupGroup(l.manager, siteGroup)
	if err != nil {
		return nil, err
	}
	cfg := l.resolver.Config()
	if locale == cfg.DefaultLocale && !cfg.ShowDefaultLocale {
		return root, nil
	}
	return lookupChildGroup(root, locale)
}

func routePaths(routes *RouteTable, locale string) map[string]string {
	paths := make(map[string]string)
	for _, key := range routes.Keys() {
		segment, ok := routes.Segment(locale, key)
		if !ok {
			continue
		}
		paths[key] = "/" + segment
	}
	return paths
}

func safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("i18n: route %q not found", route)
		}
	}()
	builder = group.Builder(route)
	return builder, err
}

func lookupGroup(manager *urlkit.RouteManager, name string) (group *urlkit.Group, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("i18n: route group %q not found", name)
		}
	}()
	group = manager.Group(name)
	return group, err
}

func lookupChildGroup(parent *urlkit.Group, name string) (group *urlkit.Group, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("i18n: route group %q not found", name)
		}
	}()
	group = parent.Group(name)
	return group, err
}
