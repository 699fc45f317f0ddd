package library

import (
	"context"
	"strings"

	apperrors "github.com/frameflow/frameflow-core/internal/errors"
	"github.com/frameflow/frameflow-core/internal/models"
)

// LoadCollections returns all stored collections in insertion order, with
// the same missing-vs-malformed semantics as LoadMedia.
func (s *Store) LoadCollections(ctx context.Context) ([]models.Collection, error) {
	raw, ok, err := s.kv.Get(ctx, collectionsKey)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageRead, "failed to load collections", err)
	}
	if !ok {
		return []models.Collection{}, nil
	}
	cols, err := models.DecodeCollections(raw)
	if err != nil {
		s.log.Warn("stored collections payload is malformed", map[string]interface{}{"key": collectionsKey})
		return nil, apperrors.Wrap(apperrors.ErrStorageRead, "stored collections payload is malformed", err)
	}
	return cols, nil
}

// CreateCollection appends a new collection holding snapshots of the given
// photos. The name must be non-empty after trimming; the photo set must be
// non-empty unless the store was configured with AllowEmptyOnCreate.
// Validation happens before any storage access.
func (s *Store) CreateCollection(ctx context.Context, name string, photos []models.MediaItem) (*models.Collection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.New(apperrors.ErrValidation, "collection name is required")
	}
	if len(photos) == 0 && !s.allowEmpty {
		return nil, apperrors.New(apperrors.ErrValidation, "a collection needs at least one photo")
	}

	existing, err := s.LoadCollections(ctx)
	if err != nil {
		return nil, err
	}

	col := models.Collection{
		ID:        s.newID(),
		Name:      name,
		Photos:    models.ClonePhotos(photos),
		CreatedAt: s.timestamp(),
	}

	if err := s.saveCollections(ctx, append(existing, col)); err != nil {
		return nil, err
	}
	s.log.Info("collection created", map[string]interface{}{"name": name, "photos": len(col.Photos)})
	out := col.Clone()
	return &out, nil
}

// AddPhotosToCollection appends photo snapshots to the collection with the
// given id and returns the updated collection. The same photo id may appear
// more than once; additions are not de-duplicated.
func (s *Store) AddPhotosToCollection(ctx context.Context, collectionID string, photos []models.MediaItem) (*models.Collection, error) {
	existing, err := s.LoadCollections(ctx)
	if err != nil {
		return nil, err
	}

	idx := findCollection(existing, collectionID)
	if idx < 0 {
		return nil, apperrors.New(apperrors.ErrNotFound, "collection "+collectionID+" does not exist")
	}

	existing[idx].Photos = append(existing[idx].Photos, models.ClonePhotos(photos)...)

	if err := s.saveCollections(ctx, existing); err != nil {
		return nil, err
	}
	out := existing[idx].Clone()
	return &out, nil
}

// RemovePhotosFromCollection removes the photos whose ids are in photoIDs
// from the collection and returns the updated collection. Removing an id
// that is not present is a no-op, not an error. The media library itself is
// never touched: collection photos are snapshots.
func (s *Store) RemovePhotosFromCollection(ctx context.Context, collectionID string, photoIDs []string) (*models.Collection, error) {
	existing, err := s.LoadCollections(ctx)
	if err != nil {
		return nil, err
	}

	idx := findCollection(existing, collectionID)
	if idx < 0 {
		return nil, apperrors.New(apperrors.ErrNotFound, "collection "+collectionID+" does not exist")
	}

	drop := make(map[string]struct{}, len(photoIDs))
	for _, id := range photoIDs {
		drop[id] = struct{}{}
	}

	kept := make([]models.MediaItem, 0, len(existing[idx].Photos))
	for _, p := range existing[idx].Photos {
		if _, gone := drop[p.ID]; !gone {
			kept = append(kept, p)
		}
	}
	existing[idx].Photos = kept

	if err := s.saveCollections(ctx, existing); err != nil {
		return nil, err
	}
	out := existing[idx].Clone()
	return &out, nil
}

// DeleteCollections removes whole collections by id and returns the number
// removed. The media array is never touched: deleting a collection does not
// delete the photos it snapshots.
func (s *Store) DeleteCollections(ctx context.Context, ids []string) (int, error) {
	existing, err := s.LoadCollections(ctx)
	if err != nil {
		return 0, err
	}

	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	kept := make([]models.Collection, 0, len(existing))
	for _, col := range existing {
		if _, gone := drop[col.ID]; !gone {
			kept = append(kept, col)
		}
	}
	removed := len(existing) - len(kept)
	if removed == 0 {
		return 0, nil
	}

	if err := s.saveCollections(ctx, kept); err != nil {
		return 0, err
	}
	s.log.Info("collections deleted", map[string]interface{}{"count": removed})
	return removed, nil
}

// findCollection returns the index of the collection with the given id,
// or -1 if absent.
func findCollection(cols []models.Collection, id string) int {
	for i := range cols {
		if cols[i].ID == id {
			return i
		}
	}
	return -1
}

// saveCollections persists the full collections array.
func (s *Store) saveCollections(ctx context.Context, cols []models.Collection) error {
	data, err := models.EncodeCollections(cols)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternal, "failed to encode collections", err)
	}
	if err := s.kv.Set(ctx, collectionsKey, data); err != nil {
		return apperrors.Wrap(apperrors.ErrStorageWrite, "failed to save collections", err)
	}
	return nil
}
