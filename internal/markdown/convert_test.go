package markdown

import (
	"testing"

	"github.com/goliatone/go-blogkit/pkg/interfaces"
)

func TestRichTextToMarkdown(t *testing.T) {
	cases := []struct {
		name string
		run  interfaces.RichText
		want string
	}{
		{name: "plain", run: interfaces.RichText{Content: "x"}, want: "x"},
		{name: "bold", run: interfaces.RichText{Content: "x", Bold: true}, want: "**x**"},
		{name: "italic", run: interfaces.RichText{Content: "x", Italic: true}, want: "*x*"},
		{name: "bold italic", run: interfaces.RichText{Content: "x", Bold: true, Italic: true}, want: "***x***"},
		{name: "code wraps emphasis", run: interfaces.RichText{Content: "x", Bold: true, Code: true}, want: "`**x**`"},
		{name: "link wraps everything", run: interfaces.RichText{Content: "go", Code: true, Link: "https://go.dev"}, want: "[`go`](https://go.dev)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RichTextToMarkdown([]interfaces.RichText{tc.run}); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestBlocksToMarkdown(t *testing.T) {
	text := func(s string) []interfaces.RichText {
		return []interfaces.RichText{{Content: s}}
	}
	blocks := []interfaces.Block{
		{Type: interfaces.BlockHeading1, RichText: text("Title")},
		{Type: interfaces.BlockParagraph, RichText: text("Intro")},
		{Type: interfaces.BlockParagraph},
		{Type: interfaces.BlockHeading2, RichText: text("List")},
		{Type: interfaces.BlockBulletedListItem, RichText: text("a")},
		{Type: interfaces.BlockBulletedListItem, RichText: text("b")},
		{Type: interfaces.BlockNumberedListItem, RichText: text("one")},
		{Type: interfaces.BlockHeading3, RichText: text("Code")},
		{Type: interfaces.BlockCode, Language: "go", RichText: []interfaces.RichText{{Content: "x := 1", Bold: true}}},
		{Type: interfaces.BlockImage, URL: "https://example.com/a.png"},
		{Type: "divider"},
	}

	want := "# Title\n\n" +
		"Intro\n\n" +
		"## List\n\n" +
		"- a\n" +
		"- b\n" +
		"1. one\n" +
		"### Code\n\n" +
		"```go\nx := 1\n```\n\n" +
		"![Image](https://example.com/a.png)\n\n"

	if got := BlocksToMarkdown(blocks); got != want {
		t.Fatalf("unexpected markdown:\n%s\nwant:\n%s", got, want)
	}
}
