package services

import (
	"context"

	"github.com/frameflow/frameflow-core/internal/library"
	"github.com/frameflow/frameflow-core/internal/models"
)

// HomeService builds the landing screen's derived views: headline stats
// and the tag-grouped collection previews.
type HomeService struct {
	store *library.Store
}

// NewHomeService wires the home screen flows.
func NewHomeService(store *library.Store) *HomeService {
	return &HomeService{store: store}
}

// Stats are the landing screen's headline numbers. Likes and saved are
// placeholder figures derived from the photo count.
type Stats struct {
	Photos int
	Likes  int
	Saved  int
}

// Preview is one tag-grouped collection card: the group name, its size and
// the first item as cover.
type Preview struct {
	Name  string
	Count int
	Cover models.MediaItem
}

// Overview is everything the landing screen shows.
type Overview struct {
	Stats    Stats
	Previews []Preview
}

// Load recomputes the overview from the current media library. The result
// is never cached: the underlying array can change between calls.
func (h *HomeService) Load(ctx context.Context) (*Overview, error) {
	items, err := h.store.LoadMedia(ctx)
	if err != nil {
		return nil, err
	}

	n := len(items)
	overview := &Overview{
		Stats: Stats{
			Photos: n,
			Likes:  n * 5 / 2, // floor(2.5 * photos)
			Saved:  n * 3 / 5, // floor(0.6 * photos)
		},
	}

	for _, group := range library.GroupByFirstTag(items) {
		overview.Previews = append(overview.Previews, Preview{
			Name:  group.Name,
			Count: len(group.Items),
			Cover: group.Items[0],
		})
	}
	return overview, nil
}
