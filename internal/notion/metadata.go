package notion

import (
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/goliatone/go-blogkit/pkg/interfaces"
)

const defaultTitle = "Untitled"

var nonAlphaNumPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Metadata is the normalized description of a remote post.
type Metadata struct {
	Title       string
	Description string
	PublishDate string
	HeroImage   string
	Slug        string
	Tags        []string
	Lang        string
	Published   bool
}

// MetadataOptions controls language defaults and the clock used for
// missing publish dates.
type MetadataOptions struct {
	DefaultLang string
	Languages   []string
	Now         func() time.Time
}

// ExtractMetadata applies the defaults for missing columns: an untitled
// post published today in the default language, slugged from its title.
func ExtractMetadata(page interfaces.RemotePage, opts MetadataOptions) Metadata {
	props := page.Properties

	meta := Metadata{
		Title:       strings.TrimSpace(props.Title),
		Description: props.Description,
		PublishDate: strings.TrimSpace(props.PublishedDate),
		HeroImage:   strings.TrimSpace(props.HeroImage),
		Slug:        strings.TrimSpace(props.Slug),
		Tags:        slices.Clone(props.Tags),
		Lang:        resolveLang(props.Language, opts),
		Published:   props.Published,
	}
	if meta.Title == "" {
		meta.Title = defaultTitle
	}
	if meta.PublishDate == "" {
		now := time.Now
		if opts.Now != nil {
			now = opts.Now
		}
		meta.PublishDate = now().UTC().Format(time.DateOnly)
	}
	if meta.Slug == "" {
		meta.Slug = slugFromTitle(meta.Title)
	}
	if meta.Slug == "" {
		meta.Slug = NormalizeID(page.ID)
	}
	return meta
}

// NormalizeID lower-cases an identifier and strips its dashes so hyphenated
// and compact forms compare equal.
func NormalizeID(id string) string {
	id = strings.TrimSpace(id)
	if parsed, err := uuid.Parse(id); err == nil {
		id = parsed.String()
	}
	return strings.ToLower(strings.ReplaceAll(id, "-", ""))
}

func resolveLang(raw string, opts MetadataOptions) string {
	lang := strings.ToLower(strings.TrimSpace(raw))
	if lang != "" && slices.Contains(opts.Languages, lang) {
		return lang
	}
	return opts.DefaultLang
}

func slugFromTitle(title string) string {
	if normalized, err := slug.Normalize(title); err == nil && normalized != "" {
		return normalized
	}
	return strings.Trim(nonAlphaNumPattern.ReplaceAllString(strings.ToLower(title), "-"), "-")
}
