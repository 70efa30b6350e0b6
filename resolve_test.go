package uitext_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/voxelforge/uitext"
)

func writeTempFont(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "font.ttf")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolveRequestedFile(t *testing.T) {
	data := []byte("font bytes")
	path := writeTempFont(t, data)

	r := uitext.NewResolver(uitext.WithSystemFontPaths([]string{}))
	got, err := r.Resolve(path)
	if err != nil {
		t.Fatalf("Resolve(%q): %v", path, err)
	}
	if !bytes.Equal(got.Data, data) {
		t.Error("resolved data does not match file contents")
	}
	if got.Kind != uitext.SourceRequested || got.Fallback() {
		t.Errorf("expected requested source, got kind=%v fallback=%v", got.Kind, got.Fallback())
	}
	if got.Source != path {
		t.Errorf("source = %q, want %q", got.Source, path)
	}
}

func TestResolveResourceFS(t *testing.T) {
	data := []byte("embedded font")
	fsys := fstest.MapFS{
		"fonts/embedded.ttf": &fstest.MapFile{Data: data},
	}

	r := uitext.NewResolver(
		uitext.WithResourceFS(fsys),
		uitext.WithSystemFontPaths([]string{}),
	)

	// Leading separator must be normalized away for the resource lookup.
	got, err := r.Resolve("/fonts/embedded.ttf")
	if err != nil {
		t.Fatalf("Resolve resource path: %v", err)
	}
	if !bytes.Equal(got.Data, data) {
		t.Error("resolved data does not match embedded contents")
	}
	if got.Kind != uitext.SourceRequested {
		t.Errorf("kind = %v, want SourceRequested", got.Kind)
	}
}

func TestResolveSystemFallback(t *testing.T) {
	data := []byte("system font")
	sysPath := writeTempFont(t, data)

	r := uitext.NewResolver(uitext.WithSystemFontPaths([]string{sysPath}))
	got, err := r.Resolve("does/not/exist.ttf")
	if err != nil {
		t.Fatalf("Resolve with system fallback: %v", err)
	}
	if got.Kind != uitext.SourceSystem || !got.Fallback() {
		t.Errorf("expected system fallback, got kind=%v fallback=%v", got.Kind, got.Fallback())
	}
	if got.Source != sysPath {
		t.Errorf("source = %q, want %q", got.Source, sysPath)
	}
}

func TestResolveNotFound(t *testing.T) {
	r := uitext.NewResolver(uitext.WithSystemFontPaths([]string{}))
	_, err := r.Resolve("does/not/exist.ttf")
	if !errors.Is(err, uitext.ErrFontNotFound) {
		t.Errorf("err = %v, want ErrFontNotFound", err)
	}
}

func TestResolveEmptyRequestStillTriesFallbacks(t *testing.T) {
	data := []byte("system font")
	sysPath := writeTempFont(t, data)

	r := uitext.NewResolver(uitext.WithSystemFontPaths([]string{sysPath}))
	got, err := r.Resolve("")
	if err != nil {
		t.Fatalf("Resolve(\"\"): %v", err)
	}
	if got.Kind != uitext.SourceSystem {
		t.Errorf("kind = %v, want SourceSystem", got.Kind)
	}
}
