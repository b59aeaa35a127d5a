// Package markdown converts Notion block trees into post markdown, reads and
// writes the post front matter, loads content collections from disk and
// renders previews through goldmark.
package markdown
