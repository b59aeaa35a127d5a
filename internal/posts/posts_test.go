package posts

import (
	"context"
	"fmt"
	"testing"
	"testing/fstest"
	"time"

	"github.com/goliatone/go-blogkit/internal/markdown"
	"github.com/goliatone/go-blogkit/pkg/interfaces"
)

func post(id, lang, date string, tags ...string) Post {
	return FromDocument(&interfaces.Document{
		ID: id,
		FrontMatter: interfaces.FrontMatter{
			Title:       id,
			Lang:        lang,
			PublishDate: date,
			Tags:        tags,
		},
	})
}

func ids(posts []Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterByLangDefaultsMissingLanguage(t *testing.T) {
	all := []Post{post("a", "", "2024-01-01"), post("uk/b", "uk", "2024-01-02"), post("c", "en", "2024-01-03")}

	if got := ids(FilterByLang(all, "en", "en")); fmt.Sprint(got) != "[a c]" {
		t.Fatalf("unexpected en posts %v", got)
	}
	if got := ids(FilterByLang(all, "uk", "en")); fmt.Sprint(got) != "[uk/b]" {
		t.Fatalf("unexpected uk posts %v", got)
	}
}

func TestStripLangFromSlug(t *testing.T) {
	if got := StripLangFromSlug("uk/pryvit", "uk"); got != "pryvit" {
		t.Fatalf("expected stripped slug, got %q", got)
	}
	if got := StripLangFromSlug("ukraine-trip", "uk"); got != "ukraine-trip" {
		t.Fatalf("expected untouched slug, got %q", got)
	}
}

func TestTags(t *testing.T) {
	all := []Post{
		post("a", "en", "2024-01-01", "go", "notion"),
		post("b", "en", "2024-01-02", "astro", "notion"),
		post("c", "en", "2024-01-03", "notion", "astro"),
	}

	if got := UniqueTags(all); fmt.Sprint(got) != "[go notion astro]" {
		t.Fatalf("unexpected unique tags %v", got)
	}
	counts := UniqueTagsWithCount(all)
	want := []TagCount{{"notion", 3}, {"astro", 2}, {"go", 1}}
	if fmt.Sprint(counts) != fmt.Sprint(want) {
		t.Fatalf("unexpected counts %v", counts)
	}
}

func TestGroupByYear(t *testing.T) {
	groups := GroupByYear([]Post{
		post("a", "en", "2023-12-31"),
		post("b", "en", "2024-01-01"),
		post("c", "en", "2024-06-01T10:00:00Z"),
	})
	if len(groups[2023]) != 1 || len(groups[2024]) != 2 {
		t.Fatalf("unexpected groups %v", groups)
	}
}

func TestPaginate(t *testing.T) {
	var all []Post
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 23; i++ {
		p := post(fmt.Sprintf("p%02d", i), "en", start.AddDate(0, 0, i).Format(time.DateOnly), fmt.Sprintf("t%d", i))
		p.FrontMatter.Pinned = i%5 == 0
		all = append(all, p)
	}

	listing := Paginate(all, "en", "en")
	if len(listing.Pages) != 3 || listing.Pages[2].Last != 3 || len(listing.Pages[2].Posts) != 3 {
		t.Fatalf("unexpected pages %+v", listing.Pages)
	}
	if listing.Pages[0].Posts[0].ID != "p22" {
		t.Fatalf("expected newest first, got %s", listing.Pages[0].Posts[0].ID)
	}
	if len(listing.UniqueTags) != MaxTags {
		t.Fatalf("expected %d tags, got %d", MaxTags, len(listing.UniqueTags))
	}
	if got := ids(listing.Pinned); fmt.Sprint(got) != "[p20 p15 p10]" {
		t.Fatalf("unexpected pinned posts %v", got)
	}
	if listing.RedirectToDefault {
		t.Fatalf("default locale never redirects")
	}

	uk := Paginate(all, "uk", "en")
	if !uk.RedirectToDefault || len(uk.Pages) != 1 || len(uk.Pages[0].Posts) != 0 {
		t.Fatalf("expected redirect with one empty page, got %+v", uk)
	}
}

func TestDetailSlugs(t *testing.T) {
	slugs := DetailSlugs([]Post{post("uk/pryvit", "uk", "2024-01-01"), post("hello", "en", "2024-01-01")}, "uk", "en")
	if _, ok := slugs["pryvit"]; !ok || len(slugs) != 1 {
		t.Fatalf("unexpected slugs %v", slugs)
	}
}

func TestRepositoryAll(t *testing.T) {
	fsys := fstest.MapFS{
		"post/hello.md":           {Data: []byte("---\ntitle: Hello\nlang: en\npublishDate: '2024-03-14'\n---\nbody")},
		"post/uk/pryvit/index.md": {Data: []byte("---\ntitle: Привіт\nlang: uk\npublishDate: '2024-03-15'\n---\nтекст")},
		"post/draft.md":           {Data: []byte("---\ntitle: Draft\nlang: en\ndraft: true\npublishDate: '2024-03-16'\n---\n")},
	}
	repo := NewRepository(markdown.NewLoader(fsys, markdown.LoaderConfig{Root: "post"}), "en", nil)

	published, err := repo.All(context.Background(), "en", false)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if got := ids(published); fmt.Sprint(got) != "[hello]" {
		t.Fatalf("unexpected published posts %v", got)
	}

	everything, err := repo.All(context.Background(), "", true)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(everything) != 3 {
		t.Fatalf("expected drafts included, got %v", ids(everything))
	}
	if everything[0].PublishDate.IsZero() {
		t.Fatalf("expected parsed publish date")
	}
}
