package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/frameflow/frameflow-core/internal/library"
	"github.com/frameflow/frameflow-core/internal/models"
	"github.com/frameflow/frameflow-core/internal/selection"
)

// CollectionsService drives the collection screens: creating collections,
// adding and removing photo snapshots, and bulk-deleting collections.
type CollectionsService struct {
	store    *library.Store
	notifier Notifier
}

// NewCollectionsService wires the collection flows.
func NewCollectionsService(store *library.Store, n Notifier) *CollectionsService {
	return &CollectionsService{store: store, notifier: n}
}

// Create runs the create-collection flow, translating validation failures
// into the alerts the screens show.
func (c *CollectionsService) Create(ctx context.Context, name string, photos []models.MediaItem) (*models.Collection, error) {
	if strings.TrimSpace(name) == "" {
		c.notifier.Error("Name Required", "Please enter a collection name.")
	}

	created, err := c.store.CreateCollection(ctx, name, photos)
	if err != nil {
		if len(photos) == 0 && strings.TrimSpace(name) != "" {
			c.notifier.Error("No Photos", "Please select at least one photo for the collection.")
		} else if strings.TrimSpace(name) != "" {
			c.notifier.Error("Error", "Failed to create collection.")
		}
		return nil, err
	}

	c.notifier.Success("Success", fmt.Sprintf("Collection %q created!", created.Name))
	return created, nil
}

// AddPhotos appends photo snapshots to a collection.
func (c *CollectionsService) AddPhotos(ctx context.Context, collectionID string, photos []models.MediaItem) (*models.Collection, error) {
	if len(photos) == 0 {
		c.notifier.Error("No Photos", "Please select at least one photo.")
		return nil, nil
	}

	updated, err := c.store.AddPhotosToCollection(ctx, collectionID, photos)
	if err != nil {
		c.notifier.Error("Error", "Failed to add photos to collection.")
		return nil, err
	}

	c.notifier.Success("Success", fmt.Sprintf("%d photo(s) added to collection!", len(photos)))
	return updated, nil
}

// RemoveSelected removes the tracker's selected photos from a collection.
// The tracker returns to browsing regardless of outcome.
func (c *CollectionsService) RemoveSelected(ctx context.Context, collectionID string, tracker *selection.Tracker) (*models.Collection, error) {
	defer tracker.Cancel()

	ids := tracker.Selected()
	if len(ids) == 0 {
		return nil, nil
	}

	updated, err := c.store.RemovePhotosFromCollection(ctx, collectionID, ids)
	if err != nil {
		c.notifier.Error("Error", "Failed to delete photos.")
		return nil, err
	}
	c.notifier.Success("Success", fmt.Sprintf("%d %s deleted!", len(ids), photoWord(len(ids))))
	return updated, nil
}

// DeleteSelected removes the tracker's selected collections. The photos
// they snapshot stay in the media library. The tracker returns to browsing
// regardless of outcome.
func (c *CollectionsService) DeleteSelected(ctx context.Context, tracker *selection.Tracker) (int, error) {
	defer tracker.Cancel()

	ids := tracker.Selected()
	if len(ids) == 0 {
		return 0, nil
	}

	removed, err := c.store.DeleteCollections(ctx, ids)
	if err != nil {
		c.notifier.Error("Error", "Failed to delete collections.")
		return 0, err
	}
	c.notifier.Success("Success", fmt.Sprintf("%d collection(s) deleted!", removed))
	return removed, nil
}

// List returns all collections for the collections screen.
func (c *CollectionsService) List(ctx context.Context) ([]models.Collection, error) {
	return c.store.LoadCollections(ctx)
}
