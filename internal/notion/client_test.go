package notion

import (
	"errors"
	"testing"
	"time"

	"github.com/jomei/notionapi"

	"github.com/goliatone/go-blogkit/pkg/interfaces"
)

func TestNewClientRequiresCredentials(t *testing.T) {
	if _, err := NewClient(Options{DatabaseID: "db"}); !errors.Is(err, ErrTokenRequired) {
		t.Fatalf("expected token error, got %v", err)
	}
	if _, err := NewClient(Options{Token: "secret"}); !errors.Is(err, ErrDatabaseIDRequired) {
		t.Fatalf("expected database error, got %v", err)
	}
	client, err := NewClient(Options{Token: "secret", DatabaseID: "DB-1", PageSize: 500})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if client.pageSize != MaxPageSize {
		t.Fatalf("expected page size clamp, got %d", client.pageSize)
	}
	if client.databaseID != "db1" {
		t.Fatalf("expected normalized database id, got %q", client.databaseID)
	}
}

func TestMapPage(t *testing.T) {
	published := notionapi.Date(time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC))
	page := &notionapi.Page{
		ID:     "page-1",
		Parent: notionapi.Parent{DatabaseID: "db-1"},
		Properties: notionapi.Properties{
			"Title": &notionapi.TitleProperty{Title: []notionapi.RichText{
				{Text: &notionapi.Text{Content: "Hello"}, PlainText: "Hello"},
				{Text: &notionapi.Text{Content: " ignored"}, PlainText: " ignored"},
			}},
			"Description":    &notionapi.RichTextProperty{RichText: []notionapi.RichText{{PlainText: "About things"}}},
			"Published Date": &notionapi.DateProperty{Date: &notionapi.DateObject{Start: &published}},
			"Hero Image":     &notionapi.URLProperty{URL: "https://example.com/a.png"},
			"Tags":           &notionapi.MultiSelectProperty{MultiSelect: []notionapi.Option{{Name: "go"}, {Name: "sync"}}},
			"Language":       &notionapi.SelectProperty{Select: notionapi.Option{Name: "UK"}},
			"Published":      &notionapi.CheckboxProperty{Checkbox: true},
		},
	}

	got := mapPage(page)
	want := interfaces.PageProperties{
		Title:         "Hello",
		Description:   "About things",
		PublishedDate: "2024-05-06",
		HeroImage:     "https://example.com/a.png",
		Tags:          []string{"go", "sync"},
		Language:      "UK",
		Published:     true,
	}
	if got.ID != "page-1" || got.ParentDatabaseID != "db-1" {
		t.Fatalf("unexpected ids %+v", got)
	}
	if got.Properties.Title != want.Title || got.Properties.Description != want.Description ||
		got.Properties.PublishedDate != want.PublishedDate || got.Properties.HeroImage != want.HeroImage ||
		got.Properties.Language != want.Language || got.Properties.Published != want.Published ||
		len(got.Properties.Tags) != 2 {
		t.Fatalf("unexpected properties %+v", got.Properties)
	}
}

func TestMapBlock(t *testing.T) {
	paragraph := &notionapi.ParagraphBlock{
		BasicBlock: notionapi.BasicBlock{ID: "b1"},
		Paragraph: notionapi.Paragraph{RichText: []notionapi.RichText{{
			Text:        &notionapi.Text{Content: "docs", Link: &notionapi.Link{Url: "https://go.dev"}},
			Annotations: &notionapi.Annotations{Bold: true},
		}}},
	}
	got, ok := mapBlock(paragraph)
	if !ok || got.Type != interfaces.BlockParagraph || got.ID != "b1" {
		t.Fatalf("unexpected paragraph %+v", got)
	}
	if len(got.RichText) != 1 || got.RichText[0].Link != "https://go.dev" || !got.RichText[0].Bold {
		t.Fatalf("unexpected rich text %+v", got.RichText)
	}

	image := &notionapi.ImageBlock{Image: notionapi.Image{File: &notionapi.FileObject{URL: "https://files/x.png"}}}
	if got, ok := mapBlock(image); !ok || got.URL != "https://files/x.png" {
		t.Fatalf("unexpected image %+v", got)
	}

	code := &notionapi.CodeBlock{Code: notionapi.Code{Language: "go", RichText: []notionapi.RichText{{PlainText: "x := 1"}}}}
	if got, ok := mapBlock(code); !ok || got.Language != "go" || got.RichText[0].Content != "x := 1" {
		t.Fatalf("unexpected code %+v", got)
	}

	if _, ok := mapBlock(&notionapi.DividerBlock{}); ok {
		t.Fatalf("expected unsupported block to be skipped")
	}
}

func TestClassify(t *testing.T) {
	if err := classify(&notionapi.Error{Status: 401, Code: "unauthorized", Message: "bad token"}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if err := classify(&notionapi.Error{Status: 400, Code: "validation_error", Message: "bad id"}); !errors.Is(err, ErrAPI) {
		t.Fatalf("expected api error, got %v", err)
	}
	plain := errors.New("dial tcp: timeout")
	if err := classify(plain); err != plain {
		t.Fatalf("expected passthrough, got %v", err)
	}
}
