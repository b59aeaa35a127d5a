package interfaces

import "time"

// MarkdownParser defines how raw Markdown bytes are converted into HTML.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown parsing behaviour, keeping option names
// readable for configuration unmarshalling and CLI flags.
type ParseOptions struct {
	Extensions []string `mapstructure:"extensions"`
	Sanitize   bool     `mapstructure:"sanitize"`
	HardWraps  bool     `mapstructure:"hard_wraps"`
	SafeMode   bool     `mapstructure:"safe_mode"`
}

// Document represents a Markdown file from a content collection with its
// parsed front matter.
type Document struct {
	// ID is the collection-relative path without extension; index files
	// resolve to their directory (e.g. "uk/hello").
	ID           string
	FilePath     string
	FrontMatter  FrontMatter
	Body         []byte
	LastModified time.Time
}

// FrontMatter models the metadata block written at the top of synced posts.
type FrontMatter struct {
	Title       string      `yaml:"title"`
	Description string      `yaml:"description"`
	PublishDate string      `yaml:"publishDate"`
	CoverImage  *CoverImage `yaml:"coverImage,omitempty"`
	Tags        []string    `yaml:"tags,omitempty"`
	Lang        string      `yaml:"lang"`
	NotionID    string      `yaml:"notionId,omitempty"`
	Draft       bool        `yaml:"draft,omitempty"`
	Pinned      bool        `yaml:"pinned,omitempty"`
}

// CoverImage is the optional hero image attached to a post.
type CoverImage struct {
	Src string `yaml:"src"`
	Alt string `yaml:"alt"`
}
