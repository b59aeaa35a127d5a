package posts

// Page is one page of a paginated post index.
type Page struct {
	Number int
	Last   int
	Total  int
	Posts  []Post
}

// Listing is everything a localized post index needs.
type Listing struct {
	Lang       string
	Pages      []Page
	UniqueTags []string
	Pinned     []Post
	// RedirectToDefault is set for a non-default locale without posts.
	RedirectToDefault bool
}

// Paginate sorts the posts of lang newest first and splits them into pages
// of MaxPostsPerPage. An empty collection still yields one empty page.
func Paginate(all []Post, lang, defaultLang string) Listing {
	localized := FilterByLang(all, lang, defaultLang)
	SortByDate(localized)

	tags := UniqueTags(localized)
	if len(tags) > MaxTags {
		tags = tags[:MaxTags]
	}

	var pinned []Post
	for _, post := range localized {
		if len(pinned) == MaxPinnedPosts {
			break
		}
		if post.FrontMatter.Pinned {
			pinned = append(pinned, post)
		}
	}

	last := (len(localized) + MaxPostsPerPage - 1) / MaxPostsPerPage
	if last == 0 {
		last = 1
	}
	pages := make([]Page, 0, last)
	for n := 1; n <= last; n++ {
		start := (n - 1) * MaxPostsPerPage
		end := min(start+MaxPostsPerPage, len(localized))
		pages = append(pages, Page{
			Number: n,
			Last:   last,
			Total:  len(localized),
			Posts:  localized[start:end],
		})
	}

	return Listing{
		Lang:              lang,
		Pages:             pages,
		UniqueTags:        tags,
		Pinned:            pinned,
		RedirectToDefault: lang != defaultLang && len(localized) == 0,
	}
}

// DetailSlugs maps the route slug of every post in lang to the post.
func DetailSlugs(all []Post, lang, defaultLang string) map[string]Post {
	out := map[string]Post{}
	for _, post := range FilterByLang(all, lang, defaultLang) {
		out[StripLangFromSlug(post.ID, post.Lang(defaultLang))] = post
	}
	return out
}
