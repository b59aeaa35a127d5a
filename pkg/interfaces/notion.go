package interfaces

import "context"

// NotionSource lists the pages of the configured database and the block
// tree of a single page. Implementations aggregate cursor pagination so
// callers always receive complete, ordered slices.
type NotionSource interface {
	SearchPages(ctx context.Context) ([]RemotePage, error)
	ListBlocks(ctx context.Context, pageID string) ([]Block, error)
}

// RemotePage is the subset of a Notion page the sync workflow needs.
type RemotePage struct {
	ID               string
	ParentDatabaseID string
	Properties       PageProperties
}

// PageProperties carries the database columns read from a page. Missing
// columns stay at their zero value.
type PageProperties struct {
	Title         string
	Description   string
	PublishedDate string
	HeroImage     string
	Slug          string
	Tags          []string
	Language      string
	Published     bool
}

// BlockType enumerates the block kinds the markdown converter understands.
type BlockType string

const (
	BlockParagraph        BlockType = "paragraph"
	BlockHeading1         BlockType = "heading_1"
	BlockHeading2         BlockType = "heading_2"
	BlockHeading3         BlockType = "heading_3"
	BlockBulletedListItem BlockType = "bulleted_list_item"
	BlockNumberedListItem BlockType = "numbered_list_item"
	BlockCode             BlockType = "code"
	BlockImage            BlockType = "image"
)

// Block is a flattened Notion block.
type Block struct {
	ID       string
	Type     BlockType
	RichText []RichText
	// Language is set for code blocks.
	Language string
	// URL is set for image blocks (external or hosted file).
	URL string
}

// RichText is a single annotated text run.
type RichText struct {
	Content string
	Link    string
	Bold    bool
	Italic  bool
	Code    bool
}
