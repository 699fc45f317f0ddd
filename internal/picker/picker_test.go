// Package picker tests for the folder-backed media picker.
package picker

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/frameflow/frameflow-core/internal/models"
)

// writeFile drops a file with the given bytes into dir.
func writeFile(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

var (
	pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}
	// mimetype's AVI matcher requires at least one byte after "AVI LIST",
	// so include the LIST chunk size bytes.
	aviHeader = []byte("RIFF\x00\x00\x00\x00AVI LIST\x00\x00\x00\x00")
)

func TestFolderPickerClassifiesMedia(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.png", pngHeader)
	writeFile(t, dir, "b.avi", aviHeader)
	writeFile(t, dir, "notes.txt", []byte("not media"))

	p := &FolderPicker{Dir: dir}
	picked, err := p.Pick(context.Background())
	if err != nil {
		t.Fatalf("Pick failed: %v", err)
	}

	if len(picked) != 2 {
		t.Fatalf("expected 2 selections, got %d: %+v", len(picked), picked)
	}
	if picked[0].Type != models.MediaImage || !strings.HasSuffix(picked[0].URI, "/a.png") {
		t.Errorf("first selection = %+v, want the png as image", picked[0])
	}
	if picked[1].Type != models.MediaVideo || !strings.HasSuffix(picked[1].URI, "/b.avi") {
		t.Errorf("second selection = %+v, want the avi as video", picked[1])
	}
	for _, sel := range picked {
		if !strings.HasPrefix(sel.URI, "file://") {
			t.Errorf("selection uri must be a file uri, got %q", sel.URI)
		}
	}
}

func TestFolderPickerIgnoresSubdirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "nested"), 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, dir, "a.png", pngHeader)

	p := &FolderPicker{Dir: dir}
	picked, err := p.Pick(context.Background())
	if err != nil {
		t.Fatalf("Pick failed: %v", err)
	}
	if len(picked) != 1 {
		t.Errorf("expected 1 selection, got %d", len(picked))
	}
}

func TestFolderPickerEmptyFolder(t *testing.T) {
	p := &FolderPicker{Dir: t.TempDir()}
	picked, err := p.Pick(context.Background())
	if err != nil {
		t.Fatalf("Pick failed: %v", err)
	}
	if len(picked) != 0 {
		t.Errorf("expected no selections, got %+v", picked)
	}
}

func TestFolderPickerMissingFolder(t *testing.T) {
	p := &FolderPicker{Dir: filepath.Join(t.TempDir(), "nope")}
	if _, err := p.Pick(context.Background()); err == nil {
		t.Error("expected an error for a missing folder")
	}
}
