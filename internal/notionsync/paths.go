package notionsync

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrPathOutsidePostDir is returned when a slug resolves to a file outside
// the post directory.
var ErrPathOutsidePostDir = errors.New("notionsync: output path outside post directory")

// OutputPaths returns the file a post is written to and the directory that
// must exist for it. Default-language posts are flat files; other languages
// nest under <lang>/<slug>/index.md.
func OutputPaths(postDir, slug, lang, defaultLang string) (target, dir string) {
	if lang == defaultLang {
		return filepath.Join(postDir, slug+".md"), filepath.Clean(postDir)
	}
	dir = filepath.Join(postDir, lang, slug)
	return filepath.Join(dir, "index.md"), dir
}

// WithinDir reports whether path lies strictly below root.
func WithinDir(root, path string) bool {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(path))
	if err != nil || rel == "." || filepath.IsAbs(rel) {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// RemoveFileAndEmptyDirs deletes path and then every ancestor directory left
// empty, stopping before root. A missing file is not an error.
func RemoveFileAndEmptyDirs(path, root string) error {
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	stop, err := filepath.Abs(root)
	if err != nil {
		return err
	}
	current, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return err
	}

	for current != stop && strings.HasPrefix(current, stop+string(filepath.Separator)) {
		entries, err := os.ReadDir(current)
		if err != nil || len(entries) > 0 {
			break
		}
		if err := os.Remove(current); err != nil {
			break
		}
		current = filepath.Dir(current)
	}
	return nil
}
