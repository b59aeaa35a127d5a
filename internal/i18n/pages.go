package i18n

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/goliatone/go-blogkit/pkg/interfaces"
)

var (
	dynamicSegmentPattern = regexp.MustCompile(`\[[^\[\]]+\]`)
	repeatedSlashPattern  = regexp.MustCompile(`/+`)
)

// DefaultPageExtensions are the page source files the site framework routes.
var DefaultPageExtensions = []string{".astro", ".md", ".mdx"}

// PageIndex records which slugs have localized page sources. It is built
// once and only read afterwards.
type PageIndex struct {
	defaultLocale string
	slugs         map[string]map[string]struct{}
}

var _ interfaces.SlugChecker = (*PageIndex)(nil)

// PageIndexOptions configures BuildPageIndex.
type PageIndexOptions struct {
	// Root is the pages directory inside the filesystem ("." when empty).
	Root          string
	DefaultLocale string
	Locales       []string
	Extensions    []string
}

// NewPageIndex builds an index from explicit slug lists keyed by locale.
func NewPageIndex(defaultLocale string, slugs map[string][]string) *PageIndex {
	idx := &PageIndex{
		defaultLocale: defaultLocale,
		slugs:         make(map[string]map[string]struct{}, len(slugs)),
	}
	for locale, list := range slugs {
		set := make(map[string]struct{}, len(list))
		for _, slug := range list {
			set[normalizeSlug(slug)] = struct{}{}
		}
		idx.slugs[locale] = set
	}
	return idx
}

// BuildPageIndex walks <root>/<locale> for every non-default locale and
// records the slug of each page source found there. Missing locale
// directories produce an empty set.
func BuildPageIndex(fsys fs.FS, opts PageIndexOptions) (*PageIndex, error) {
	root := path.Clean(strings.TrimSpace(opts.Root))
	if root == "" {
		root = "."
	}
	extensions := opts.Extensions
	if len(extensions) == 0 {
		extensions = DefaultPageExtensions
	}

	found := make(map[string][]string, len(opts.Locales))
	for _, locale := range opts.Locales {
		if locale == opts.DefaultLocale {
			continue
		}
		dir := path.Join(root, locale)
		found[locale] = []string{}

		err := fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if d.IsDir() || !slices.Contains(extensions, path.Ext(p)) {
				return nil
			}
			found[locale] = append(found[locale], slugFromPagePath(strings.TrimPrefix(p, dir)))
			return nil
		})
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("i18n: scan pages %s: %w", dir, err)
		}
	}

	return NewPageIndex(opts.DefaultLocale, found), nil
}

// HasPage reports whether locale has content for slug, either exactly or
// through the slug's first segment. The default locale always has content.
func (i *PageIndex) HasPage(locale, slug string) bool {
	if i == nil {
		return false
	}
	if locale == i.defaultLocale {
		return true
	}
	set, ok := i.slugs[locale]
	if !ok {
		return false
	}
	normalized := normalizeSlug(slug)
	if _, ok := set[normalized]; ok {
		return true
	}
	base, _, _ := strings.Cut(normalized, "/")
	if base == "" {
		return false
	}
	_, ok = set[base]
	return ok
}

// Slugs returns the sorted slugs discovered for locale.
func (i *PageIndex) Slugs(locale string) []string {
	if i == nil {
		return nil
	}
	out := make([]string, 0, len(i.slugs[locale]))
	for slug := range i.slugs[locale] {
		out = append(out, slug)
	}
	sort.Strings(out)
	return out
}

func slugFromPagePath(rel string) string {
	rel = strings.TrimSuffix(rel, path.Ext(rel))
	if rel == "index" || strings.HasSuffix(rel, "/index") {
		rel = strings.TrimSuffix(rel, "index")
	}
	return normalizeSlug(rel)
}

// normalizeSlug drops dynamic [param] segments and trims slashes.
func normalizeSlug(slug string) string {
	return trimPath(dynamicSegmentPattern.ReplaceAllString(slug, ""))
}

// trimPath collapses repeated slashes and trims the leading and trailing
// slash.
func trimPath(p string) string {
	p = repeatedSlashPattern.ReplaceAllString(p, "/")
	p = strings.TrimPrefix(p, "/")
	return strings.TrimSuffix(p, "/")
}
