package services

import (
	"context"
	"fmt"

	"github.com/frameflow/frameflow-core/internal/library"
	"github.com/frameflow/frameflow-core/internal/models"
	"github.com/frameflow/frameflow-core/internal/picker"
	"github.com/frameflow/frameflow-core/internal/selection"
)

// GalleryService drives the gallery screen's flows: importing photos from
// the device picker with per-photo tagging, filtered browsing, and bulk
// deletion of selected items.
type GalleryService struct {
	store    *library.Store
	picker   picker.Picker
	notifier Notifier
}

// NewGalleryService wires the gallery flows.
func NewGalleryService(store *library.Store, p picker.Picker, n Notifier) *GalleryService {
	return &GalleryService{store: store, picker: p, notifier: n}
}

// GalleryView is what the gallery renders: the filtered items plus the
// filter pills derived from the full library.
type GalleryView struct {
	Items         []models.MediaItem
	AvailableTags []string
	Total         int
}

// Browse loads the library and applies the tag and search filters.
func (g *GalleryService) Browse(ctx context.Context, tag, searchText string) (*GalleryView, error) {
	items, err := g.store.LoadMedia(ctx)
	if err != nil {
		return nil, err
	}
	return &GalleryView{
		Items:         library.FilterMedia(items, tag, searchText),
		AvailableTags: library.AvailableTags(items),
		Total:         len(items),
	}, nil
}

// ImportSession walks the user through tagging each picked photo in turn,
// saving one item per step the way the tagging modal does.
type ImportSession struct {
	pending  []picker.Selection
	index    int
	imported int
}

// Current returns the selection being tagged, or false when the session
// is finished.
func (s *ImportSession) Current() (picker.Selection, bool) {
	if s == nil || s.index >= len(s.pending) {
		return picker.Selection{}, false
	}
	return s.pending[s.index], true
}

// Remaining returns how many selections are left, including the current one.
func (s *ImportSession) Remaining() int {
	if s == nil {
		return 0
	}
	return len(s.pending) - s.index
}

// Imported returns how many selections have been saved so far.
func (s *ImportSession) Imported() int {
	if s == nil {
		return 0
	}
	return s.imported
}

// BeginImport opens the picker and starts a tagging session over the
// result. A cancelled or empty pick returns a nil session.
func (g *GalleryService) BeginImport(ctx context.Context) (*ImportSession, error) {
	selections, err := g.picker.Pick(ctx)
	if err != nil {
		g.notifier.Error("Permission Required", "Please grant camera roll access to import media.")
		return nil, err
	}
	if len(selections) == 0 {
		return nil, nil
	}
	return &ImportSession{pending: selections}, nil
}

// SaveCurrent imports the session's current selection with the given tags
// and advances. When the session completes through a save, the user is told
// how many photos made it in.
func (g *GalleryService) SaveCurrent(ctx context.Context, session *ImportSession, tags []string) error {
	current, ok := session.Current()
	if !ok {
		return nil
	}

	_, err := g.store.AddMedia(ctx, []models.NewMediaItem{{
		URI:  current.URI,
		Type: current.Type,
		Tags: tags,
	}})
	if err != nil {
		g.notifier.Error("Error", "Failed to save photo.")
		return err
	}

	session.imported++
	session.index++
	if _, more := session.Current(); !more {
		g.notifier.Success("Success", fmt.Sprintf("%d photo(s) imported!", session.imported))
	}
	return nil
}

// SkipCurrent advances past the current selection without saving it.
func (g *GalleryService) SkipCurrent(session *ImportSession) {
	if _, ok := session.Current(); ok {
		session.index++
	}
}

// DeleteSelected removes the tracker's selected photos from the library.
// The tracker returns to browsing regardless of outcome.
func (g *GalleryService) DeleteSelected(ctx context.Context, tracker *selection.Tracker) (int, error) {
	defer tracker.Cancel()

	ids := tracker.Selected()
	if len(ids) == 0 {
		return 0, nil
	}

	removed, err := g.store.DeleteMedia(ctx, ids)
	if err != nil {
		g.notifier.Error("Error", "Failed to delete photos.")
		return 0, err
	}
	g.notifier.Success("Success", fmt.Sprintf("%d %s deleted!", removed, photoWord(removed)))
	return removed, nil
}

// photoWord pluralizes the alert noun.
func photoWord(n int) string {
	if n == 1 {
		return "photo"
	}
	return "photos"
}
