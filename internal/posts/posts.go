package posts

import (
	"sort"
	"strings"
	"time"

	"github.com/goliatone/go-blogkit/pkg/interfaces"
)

// Listing limits for the post index pages.
const (
	MaxPostsPerPage = 10
	MaxTags         = 7
	MaxPinnedPosts  = 3
)

var dateLayouts = []string{time.DateOnly, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"}

// Post is a collection entry with its publish date resolved.
type Post struct {
	ID          string
	FilePath    string
	FrontMatter interfaces.FrontMatter
	Body        []byte
	PublishDate time.Time
}

// Lang returns the post language, defaulting to defaultLang.
func (p Post) Lang(defaultLang string) string {
	if p.FrontMatter.Lang == "" {
		return defaultLang
	}
	return p.FrontMatter.Lang
}

// FromDocument converts a loaded document. An unparsable date leaves
// PublishDate zero.
func FromDocument(doc *interfaces.Document) Post {
	return Post{
		ID:          doc.ID,
		FilePath:    doc.FilePath,
		FrontMatter: doc.FrontMatter,
		Body:        doc.Body,
		PublishDate: parseDate(doc.FrontMatter.PublishDate),
	}
}

// FilterByLang keeps the posts written in lang. Posts without a language
// belong to defaultLang.
func FilterByLang(posts []Post, lang, defaultLang string) []Post {
	out := make([]Post, 0, len(posts))
	for _, post := range posts {
		if post.Lang(defaultLang) == lang {
			out = append(out, post)
		}
	}
	return out
}

// StripLangFromSlug removes a leading "<lang>/" from an entry id.
func StripLangFromSlug(slug, lang string) string {
	return strings.TrimPrefix(slug, lang+"/")
}

// SortByDate orders posts newest first. Ties keep their id order.
func SortByDate(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PublishDate.After(posts[j].PublishDate)
	})
}

// AllTags returns every tag of every post, duplicates included.
func AllTags(posts []Post) []string {
	var tags []string
	for _, post := range posts {
		tags = append(tags, post.FrontMatter.Tags...)
	}
	return tags
}

// UniqueTags returns the distinct tags in order of first appearance.
func UniqueTags(posts []Post) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, tag := range AllTags(posts) {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// TagCount pairs a tag with the number of posts using it.
type TagCount struct {
	Tag   string
	Count int
}

// UniqueTagsWithCount counts tag usage, most used first. Equal counts keep
// first-appearance order.
func UniqueTagsWithCount(posts []Post) []TagCount {
	index := map[string]int{}
	var out []TagCount
	for _, tag := range AllTags(posts) {
		if i, ok := index[tag]; ok {
			out[i].Count++
			continue
		}
		index[tag] = len(out)
		out = append(out, TagCount{Tag: tag, Count: 1})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// GroupByYear buckets posts by publish year.
func GroupByYear(posts []Post) map[int][]Post {
	out := map[int][]Post{}
	for _, post := range posts {
		year := post.PublishDate.Year()
		out[year] = append(out[year], post)
	}
	return out
}

func parseDate(value string) time.Time {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
