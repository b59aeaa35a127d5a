package i18n

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrDefaultRoutesMissing = errors.New("i18n: default locale route table is required")
	ErrUnknownRouteKey      = errors.New("i18n: route key is not defined for the default locale")
	ErrDuplicateSegment     = errors.New("i18n: segment is mapped by more than one route key")
)

// HomeRoute is the route key used for the empty path.
const HomeRoute = "home"

// RouteTable maps route keys to per-locale path segments in both
// directions. The default locale defines the key set; other locales may
// omit keys to mark the page as untranslated.
type RouteTable struct {
	defaultLocale string
	keys          []string
	segments      map[string]map[string]string
	reverse       map[string]map[string]string
}

// NewRouteTable validates routes and builds the forward and reverse
// indexes. A segment may only be claimed by one key per locale.
func NewRouteTable(defaultLocale string, routes map[string]map[string]string) (*RouteTable, error) {
	base, ok := routes[defaultLocale]
	if !ok || len(base) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrDefaultRoutesMissing, defaultLocale)
	}

	table := &RouteTable{
		defaultLocale: defaultLocale,
		keys:          make([]string, 0, len(base)),
		segments:      make(map[string]map[string]string, len(routes)),
		reverse:       make(map[string]map[string]string, len(routes)),
	}
	for key := range base {
		table.keys = append(table.keys, key)
	}
	sort.Strings(table.keys)

	for locale, entries := range routes {
		forward := make(map[string]string, len(entries))
		reverse := make(map[string]string, len(entries))
		for key, segment := range entries {
			if _, known := base[key]; !known {
				return nil, fmt.Errorf("%w: %s.%s", ErrUnknownRouteKey, locale, key)
			}
			segment = trimPath(segment)
			if other, taken := reverse[segment]; taken {
				return nil, fmt.Errorf("%w: %s %q (%s, %s)", ErrDuplicateSegment, locale, segment, other, key)
			}
			forward[key] = segment
			reverse[segment] = key
		}
		table.segments[locale] = forward
		table.reverse[locale] = reverse
	}
	return table, nil
}

// DefaultLocale returns the locale whose table defines the key set.
func (t *RouteTable) DefaultLocale() string {
	return t.defaultLocale
}

// Keys returns the route keys in lexical order.
func (t *RouteTable) Keys() []string {
	return append([]string(nil), t.keys...)
}

// Segment returns the path segment for key in locale. ok is false when the
// locale does not translate the route.
func (t *RouteTable) Segment(locale, key string) (string, bool) {
	segment, ok := t.segments[locale][key]
	return segment, ok
}

// Key returns the route key owning segment in locale.
func (t *RouteTable) Key(locale, segment string) (string, bool) {
	key, ok := t.reverse[locale][segment]
	return key, ok
}
