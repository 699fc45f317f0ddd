// Package picker abstracts the device media picker the import flows call
// before handing selections to the library store.
package picker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/frameflow/frameflow-core/internal/models"
)

// Selection is one picked resource: an opaque uri plus its media kind.
type Selection struct {
	URI  string
	Type models.MediaType
}

// Picker selects media resources from a device library. Implementations
// may prompt the user; returning an empty slice means the pick was
// cancelled or nothing matched.
type Picker interface {
	Pick(ctx context.Context) ([]Selection, error)
}

// FolderPicker treats a local directory as the device library: every image
// or video file in it (non-recursive) is picked, classified by sniffing
// content rather than trusting extensions.
type FolderPicker struct {
	Dir string
}

// Pick returns the media files in the folder as file:// selections, sorted
// by file name for a stable order.
func (p *FolderPicker) Pick(ctx context.Context) ([]Selection, error) {
	entries, err := os.ReadDir(p.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read media folder: %w", err)
	}

	var picked []Selection
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := filepath.Join(p.Dir, entry.Name())
		kind, ok := classifyFile(path)
		if !ok {
			continue
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
		}
		picked = append(picked, Selection{
			URI:  "file://" + filepath.ToSlash(abs),
			Type: kind,
		})
	}

	sort.Slice(picked, func(i, j int) bool { return picked[i].URI < picked[j].URI })
	return picked, nil
}

// classifyFile sniffs the file's type; non-media files are skipped.
func classifyFile(path string) (models.MediaType, bool) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return "", false
	}
	switch {
	case strings.HasPrefix(mtype.String(), "image/"):
		return models.MediaImage, true
	case strings.HasPrefix(mtype.String(), "video/"):
		return models.MediaVideo, true
	default:
		return "", false
	}
}
