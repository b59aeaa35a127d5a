package notion

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jomei/notionapi"

	"github.com/goliatone/go-blogkit/pkg/interfaces"
)

// MaxPageSize is the largest page size the Notion API accepts.
const MaxPageSize = 100

var (
	ErrTokenRequired      = errors.New("notion: api token is required")
	ErrDatabaseIDRequired = errors.New("notion: database id is required")
	ErrUnauthorized       = errors.New("notion: unauthorized")
	ErrAPI                = errors.New("notion: api error")
)

// Options configures Client.
type Options struct {
	Token      string
	DatabaseID string
	PageSize   int
}

// Client reads database pages and block trees through the Notion REST API.
type Client struct {
	api        *notionapi.Client
	databaseID string
	pageSize   int
}

var _ interfaces.NotionSource = (*Client)(nil)

// NewClient validates opts and builds an API client.
func NewClient(opts Options, clientOpts ...notionapi.ClientOption) (*Client, error) {
	token := strings.TrimSpace(opts.Token)
	if token == "" {
		return nil, ErrTokenRequired
	}
	databaseID := NormalizeID(opts.DatabaseID)
	if databaseID == "" {
		return nil, ErrDatabaseIDRequired
	}
	return &Client{
		api:        notionapi.NewClient(notionapi.Token(token), clientOpts...),
		databaseID: databaseID,
		pageSize:   clampPageSize(opts.PageSize),
	}, nil
}

// SearchPages runs a page search across the workspace, follows every cursor
// and keeps the pages whose parent is the configured database.
func (c *Client) SearchPages(ctx context.Context) ([]interfaces.RemotePage, error) {
	var (
		pages  []interfaces.RemotePage
		cursor notionapi.Cursor
	)
	for {
		resp, err := c.api.Search.Do(ctx, &notionapi.SearchRequest{
			Filter: notionapi.SearchFilter{
				Property: "object",
				Value:    "page",
			},
			StartCursor: cursor,
			PageSize:    c.pageSize,
		})
		if err != nil {
			return nil, classify(err)
		}
		for _, obj := range resp.Results {
			page, ok := obj.(*notionapi.Page)
			if !ok {
				continue
			}
			if NormalizeID(string(page.Parent.DatabaseID)) != c.databaseID {
				continue
			}
			pages = append(pages, mapPage(page))
		}
		if !resp.HasMore || resp.NextCursor == "" {
			return pages, nil
		}
		cursor = resp.NextCursor
	}
}

// ListBlocks returns the top-level blocks of pageID in order.
func (c *Client) ListBlocks(ctx context.Context, pageID string) ([]interfaces.Block, error) {
	var (
		blocks []interfaces.Block
		cursor string
	)
	for {
		resp, err := c.api.Block.GetChildren(ctx, notionapi.BlockID(pageID), &notionapi.Pagination{
			StartCursor: notionapi.Cursor(cursor),
			PageSize:    c.pageSize,
		})
		if err != nil {
			return nil, fmt.Errorf("list blocks %s: %w", pageID, classify(err))
		}
		for _, block := range resp.Results {
			if mapped, ok := mapBlock(block); ok {
				blocks = append(blocks, mapped)
			}
		}
		if !resp.HasMore || resp.NextCursor == "" {
			return blocks, nil
		}
		cursor = resp.NextCursor
	}
}

// Hint returns operator guidance for a listing failure.
func Hint(err error) string {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return "check that NOTION_TOKEN is valid and the integration is shared with the database"
	case errors.Is(err, ErrAPI):
		return "check that NOTION_DATABASE_ID is correct"
	default:
		return ""
	}
}

func classify(err error) error {
	var apiErr *notionapi.Error
	if !errors.As(err, &apiErr) {
		return err
	}
	if apiErr.Status == 401 || string(apiErr.Code) == "unauthorized" {
		return fmt.Errorf("%w: %s", ErrUnauthorized, apiErr.Message)
	}
	return fmt.Errorf("%w: %s (%s)", ErrAPI, apiErr.Message, apiErr.Code)
}

func clampPageSize(size int) int {
	if size <= 0 || size > MaxPageSize {
		return MaxPageSize
	}
	return size
}

func mapPage(page *notionapi.Page) interfaces.RemotePage {
	out := interfaces.RemotePage{
		ID:               string(page.ID),
		ParentDatabaseID: string(page.Parent.DatabaseID),
	}

	props := &out.Properties
	for name, prop := range page.Properties {
		switch name {
		case "Title":
			if p, ok := prop.(*notionapi.TitleProperty); ok {
				props.Title = firstText(p.Title)
			}
		case "Description":
			if p, ok := prop.(*notionapi.RichTextProperty); ok {
				props.Description = firstText(p.RichText)
			}
		case "Slug":
			if p, ok := prop.(*notionapi.RichTextProperty); ok {
				props.Slug = firstText(p.RichText)
			}
		case "Published Date":
			if p, ok := prop.(*notionapi.DateProperty); ok && p.Date != nil && p.Date.Start != nil {
				props.PublishedDate = time.Time(*p.Date.Start).Format(time.DateOnly)
			}
		case "Hero Image":
			if p, ok := prop.(*notionapi.URLProperty); ok {
				props.HeroImage = p.URL
			}
		case "Tags":
			if p, ok := prop.(*notionapi.MultiSelectProperty); ok {
				for _, option := range p.MultiSelect {
					props.Tags = append(props.Tags, option.Name)
				}
			}
		case "Language":
			switch p := prop.(type) {
			case *notionapi.SelectProperty:
				props.Language = p.Select.Name
			case *notionapi.RichTextProperty:
				props.Language = firstText(p.RichText)
			}
		case "Published":
			if p, ok := prop.(*notionapi.CheckboxProperty); ok {
				props.Published = p.Checkbox
			}
		}
	}
	return out
}

func mapBlock(block notionapi.Block) (interfaces.Block, bool) {
	out := interfaces.Block{ID: block.GetID().String()}
	switch b := block.(type) {
	case *notionapi.ParagraphBlock:
		out.Type = interfaces.BlockParagraph
		out.RichText = mapRichText(b.Paragraph.RichText)
	case *notionapi.Heading1Block:
		out.Type = interfaces.BlockHeading1
		out.RichText = mapRichText(b.Heading1.RichText)
	case *notionapi.Heading2Block:
		out.Type = interfaces.BlockHeading2
		out.RichText = mapRichText(b.Heading2.RichText)
	case *notionapi.Heading3Block:
		out.Type = interfaces.BlockHeading3
		out.RichText = mapRichText(b.Heading3.RichText)
	case *notionapi.BulletedListItemBlock:
		out.Type = interfaces.BlockBulletedListItem
		out.RichText = mapRichText(b.BulletedListItem.RichText)
	case *notionapi.NumberedListItemBlock:
		out.Type = interfaces.BlockNumberedListItem
		out.RichText = mapRichText(b.NumberedListItem.RichText)
	case *notionapi.CodeBlock:
		out.Type = interfaces.BlockCode
		out.RichText = mapRichText(b.Code.RichText)
		out.Language = b.Code.Language
	case *notionapi.ImageBlock:
		out.Type = interfaces.BlockImage
		switch {
		case b.Image.External != nil:
			out.URL = b.Image.External.URL
		case b.Image.File != nil:
			out.URL = b.Image.File.URL
		}
	default:
		return interfaces.Block{}, false
	}
	return out, true
}

func mapRichText(runs []notionapi.RichText) []interfaces.RichText {
	out := make([]interfaces.RichText, 0, len(runs))
	for _, run := range runs {
		text := interfaces.RichText{Content: run.PlainText}
		if run.Text != nil {
			text.Content = run.Text.Content
			if run.Text.Link != nil {
				text.Link = run.Text.Link.Url
			}
		}
		if run.Annotations != nil {
			text.Bold = run.Annotations.Bold
			text.Italic = run.Annotations.Italic
			text.Code = run.Annotations.Code
		}
		out = append(out, text)
	}
	return out
}

// firstText reads the content of the first run only, matching how the
// database columns are authored.
func firstText(runs []notionapi.RichText) string {
	if len(runs) == 0 {
		return ""
	}
	if runs[0].Text != nil {
		return runs[0].Text.Content
	}
	return runs[0].PlainText
}
