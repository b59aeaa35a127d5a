package markdown

import (
	"strings"

	"github.com/goliatone/go-blogkit/pkg/interfaces"
)

// RichTextToMarkdown joins annotated runs into inline markdown. Emphasis is
// applied first, then inline code, then the link wrapper.
func RichTextToMarkdown(runs []interfaces.RichText) string {
	var b strings.Builder
	for _, run := range runs {
		text := run.Content
		switch {
		case run.Bold && run.Italic:
			text = "***" + text + "***"
		case run.Bold:
			text = "**" + text + "**"
		case run.Italic:
			text = "*" + text + "*"
		}
		if run.Code {
			text = "`" + text + "`"
		}
		if run.Link != "" {
			text = "[" + text + "](" + run.Link + ")"
		}
		b.WriteString(text)
	}
	return b.String()
}

// BlocksToMarkdown renders blocks in order. Unsupported block types produce
// no output.
func BlocksToMarkdown(blocks []interfaces.Block) string {
	var b strings.Builder
	for _, block := range blocks {
		b.WriteString(blockToMarkdown(block))
	}
	return b.String()
}

func blockToMarkdown(block interfaces.Block) string {
	switch block.Type {
	case interfaces.BlockParagraph:
		text := RichTextToMarkdown(block.RichText)
		if text == "" {
			return ""
		}
		return text + "\n\n"
	case interfaces.BlockHeading1:
		return "# " + RichTextToMarkdown(block.RichText) + "\n\n"
	case interfaces.BlockHeading2:
		return "## " + RichTextToMarkdown(block.RichText) + "\n\n"
	case interfaces.BlockHeading3:
		return "### " + RichTextToMarkdown(block.RichText) + "\n\n"
	case interfaces.BlockBulletedListItem:
		return "- " + RichTextToMarkdown(block.RichText) + "\n"
	case interfaces.BlockNumberedListItem:
		return "1. " + RichTextToMarkdown(block.RichText) + "\n"
	case interfaces.BlockCode:
		var code strings.Builder
		for _, run := range block.RichText {
			code.WriteString(run.Content)
		}
		return "```" + block.Language + "\n" + code.String() + "\n```\n\n"
	case interfaces.BlockImage:
		return "![Image](" + block.URL + ")\n\n"
	default:
		return ""
	}
}
