package notionsync

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goliatone/go-blogkit/internal/markdown"
	"github.com/goliatone/go-blogkit/internal/notion"
)

// FileIndex maps remote page ids to the local file carrying them. Ids are
// compared in their normalized form.
type FileIndex struct {
	paths map[string]string
}

// NewFileIndex returns an empty index.
func NewFileIndex() *FileIndex {
	return &FileIndex{paths: map[string]string{}}
}

// BuildFileIndex scans root recursively for .md files and records the
// notionId of each. A missing root yields an empty index.
func BuildFileIndex(root string) (*FileIndex, error) {
	index := NewFileIndex()
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		if id, ok := markdown.ReadNotionIDFile(path); ok {
			index.Set(id, path)
		}
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return index, nil
}

// Get returns the file recorded for id.
func (i *FileIndex) Get(id string) (string, bool) {
	path, ok := i.paths[notion.NormalizeID(id)]
	return path, ok
}

// Set records path for id.
func (i *FileIndex) Set(id, path string) {
	i.paths[notion.NormalizeID(id)] = path
}

// Delete forgets id.
func (i *FileIndex) Delete(id string) {
	delete(i.paths, notion.NormalizeID(id))
}

// Len returns the number of indexed files.
func (i *FileIndex) Len() int {
	return len(i.paths)
}

// Paths returns the indexed files in lexical order.
func (i *FileIndex) Paths() []string {
	out := make([]string, 0, len(i.paths))
	for _, path := range i.paths {
		out = append(out, path)
	}
	sort.Strings(out)
	return out
}
