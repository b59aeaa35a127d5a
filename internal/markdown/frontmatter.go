package markdown

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-blogkit/pkg/interfaces"
)

const delimiter = "---\n"

var (
	frontMatterBlockPattern = regexp.MustCompile(`^---\s*\n((?s:.*?))\n---\s*`)
	notionIDPattern         = regexp.MustCompile(`(?i)notionId:\s*['"]?([0-9a-f-]{32,})['"]?`)
)

// ParseFrontMatter extracts metadata and Markdown body content from the
// provided source bytes.
func ParseFrontMatter(source []byte) (interfaces.FrontMatter, []byte, error) {
	var meta interfaces.FrontMatter

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	return meta, body, nil
}

// BuildDocument assembles an interfaces.Document from a collection file.
func BuildDocument(id, path string, source []byte, modified time.Time) (*interfaces.Document, error) {
	fm, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, err
	}
	return &interfaces.Document{
		ID:           id,
		FilePath:     path,
		FrontMatter:  fm,
		Body:         body,
		LastModified: modified,
	}, nil
}

// RenderFrontMatter encodes fm between --- delimiters.
func RenderFrontMatter(fm interfaces.FrontMatter) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(delimiter)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(fm); err != nil {
		return nil, fmt.Errorf("render frontmatter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("render frontmatter: %w", err)
	}

	buf.WriteString(delimiter)
	return buf.Bytes(), nil
}

// RenderPost returns the full post file: front matter, a blank line and body.
func RenderPost(fm interfaces.FrontMatter, body string) ([]byte, error) {
	header, err := RenderFrontMatter(fm)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(header)+1+len(body))
	out = append(out, header...)
	out = append(out, '\n')
	out = append(out, body...)
	return out, nil
}

// ReadNotionID returns the notionId recorded in the front matter of data.
func ReadNotionID(data []byte) (string, bool) {
	block := frontMatterBlockPattern.FindSubmatch(data)
	if block == nil {
		return "", false
	}
	match := notionIDPattern.FindSubmatch(block[1])
	if match == nil {
		return "", false
	}
	return string(match[1]), true
}

// ReadNotionIDFile reads path and extracts its notionId. Unreadable files
// report no id.
func ReadNotionIDFile(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return ReadNotionID(data)
}
