package markdown

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"sort"
	"strings"

	"github.com/goliatone/go-blogkit/pkg/interfaces"
)

// DefaultCollectionExtensions are the entry files a collection may contain.
var DefaultCollectionExtensions = []string{".md", ".mdx"}

// LoaderConfig configures how collection entries are discovered.
type LoaderConfig struct {
	// Root is the collection directory inside the filesystem.
	Root       string
	Extensions []string
}

// Loader turns collection files into documents with parsed front matter.
type Loader struct {
	fs         fs.FS
	root       string
	extensions []string
}

// NewLoader constructs a Loader over filesystem.
func NewLoader(filesystem fs.FS, cfg LoaderConfig) *Loader {
	root := path.Clean(strings.TrimSpace(cfg.Root))
	if root == "" {
		root = "."
	}
	extensions := cfg.Extensions
	if len(extensions) == 0 {
		extensions = DefaultCollectionExtensions
	}
	return &Loader{
		fs:         filesystem,
		root:       root,
		extensions: slices.Clone(extensions),
	}
}

// LoadFile reads and parses a single entry. rel is relative to the root.
func (l *Loader) LoadFile(ctx context.Context, rel string) (*interfaces.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	full := path.Join(l.root, rel)
	data, err := fs.ReadFile(l.fs, full)
	if err != nil {
		return nil, fmt.Errorf("markdown loader read %s: %w", full, err)
	}
	info, err := fs.Stat(l.fs, full)
	if err != nil {
		return nil, fmt.Errorf("markdown loader stat %s: %w", full, err)
	}

	doc, err := BuildDocument(EntryID(rel), full, data, info.ModTime())
	if err != nil {
		return nil, fmt.Errorf("markdown loader %s: %w", full, err)
	}
	return doc, nil
}

// LoadAll walks the collection and returns every entry sorted by id. A
// missing root yields no documents.
func (l *Loader) LoadAll(ctx context.Context) ([]*interfaces.Document, error) {
	if _, err := fs.Stat(l.fs, l.root); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("markdown loader stat %s: %w", l.root, err)
	}

	var docs []*interfaces.Document
	err := fs.WalkDir(l.fs, l.root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !slices.Contains(l.extensions, path.Ext(p)) {
			return nil
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(p, l.root), "/")
		if l.root == "." {
			rel = p
		}
		doc, err := l.LoadFile(ctx, rel)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].ID < docs[j].ID
	})
	return docs, nil
}

// EntryID derives the collection id of a file: the relative path without
// extension, with index files resolving to their directory.
func EntryID(rel string) string {
	rel = strings.TrimPrefix(path.Clean("/"+rel), "/")
	id := strings.TrimSuffix(rel, path.Ext(rel))
	if id == "index" {
		return ""
	}
	return strings.TrimSuffix(id, "/index")
}
