package notionsync

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOutputPaths(t *testing.T) {
	target, dir := OutputPaths("src/content/post", "hello", "en", "en")
	if target != filepath.Join("src/content/post", "hello.md") || dir != filepath.Clean("src/content/post") {
		t.Fatalf("unexpected default paths %q %q", target, dir)
	}

	target, dir = OutputPaths("src/content/post", "pryvit", "uk", "en")
	if target != filepath.Join("src/content/post", "uk", "pryvit", "index.md") {
		t.Fatalf("unexpected localized target %q", target)
	}
	if dir != filepath.Join("src/content/post", "uk", "pryvit") {
		t.Fatalf("unexpected localized dir %q", dir)
	}
}

func TestWithinDir(t *testing.T) {
	root := filepath.Join("src", "content", "post")
	cases := map[string]bool{
		filepath.Join(root, "hello.md"):                 true,
		filepath.Join(root, "uk", "pryvit", "index.md"): true,
		filepath.Join(root, "2024", "notes.md"):         true,
		filepath.Join(root, "..md"):                     true,
		root:                                            false,
		filepath.Join(root, "..", "escaped.md"):         false,
		filepath.Join(root, "..", "..", "..", "x.md"):   false,
		filepath.Join("src", "content", "postx.md"):     false,
	}
	for path, want := range cases {
		if got := WithinDir(root, path); got != want {
			t.Fatalf("WithinDir(%q, %q) = %t, want %t", root, path, got, want)
		}
	}
}

func TestRemoveFileAndEmptyDirs(t *testing.T) {
	root := filepath.Join(t.TempDir(), "post")
	file := filepath.Join(root, "uk", "a", "b", "index.md")
	sibling := filepath.Join(root, "uk", "keep.md")
	for _, path := range []string{file, sibling} {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	if err := RemoveFileAndEmptyDirs(file, root); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if exists(filepath.Join(root, "uk", "a")) {
		t.Fatalf("expected empty ancestors to be pruned")
	}
	if !exists(sibling) {
		t.Fatalf("expected non-empty ancestor to stay")
	}

	if err := RemoveFileAndEmptyDirs(sibling, root); err != nil {
		t.Fatalf("remove sibling: %v", err)
	}
	if exists(filepath.Join(root, "uk")) || !exists(root) {
		t.Fatalf("expected pruning to stop at root")
	}

	if err := RemoveFileAndEmptyDirs(filepath.Join(root, "missing.md"), root); err != nil {
		t.Fatalf("expected missing file to be ignored, got %v", err)
	}
}

func TestBuildFileIndex(t *testing.T) {
	root := filepath.Join(t.TempDir(), "post")
	files := map[string]string{
		filepath.Join(root, "hello.md"):                 "---\nnotionId: '" + idHello + "'\n---\n",
		filepath.Join(root, "uk", "pryvit", "index.md"): "---\nnotionId: " + idOther + "\n---\n",
		filepath.Join(root, "manual.md"):                "---\ntitle: manual\n---\n",
		filepath.Join(root, "notes.txt"):                "---\nnotionId: " + idHello + "\n---\n",
	}
	for path, content := range files {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	index, err := BuildFileIndex(root)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if index.Len() != 2 {
		t.Fatalf("expected 2 entries, got %v", index.Paths())
	}
	if got, ok := index.Get("11111111222233334444555555555555"); !ok || got != filepath.Join(root, "hello.md") {
		t.Fatalf("expected compact id lookup, got %q %v", got, ok)
	}

	missing, err := BuildFileIndex(filepath.Join(root, "absent"))
	if err != nil || missing.Len() != 0 {
		t.Fatalf("expected empty index for missing root, got %v %v", missing, err)
	}
}
