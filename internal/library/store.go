// Package library provides the single source of truth for media items and
// collections. Every mutation is a whole-array read-modify-write against
// the key-value backend: load the full array, change it in memory, persist
// the full array. There is no finer-grained transaction. Two overlapping
// writes can interleave so that the later write's read precedes the earlier
// write's persist, silently discarding the earlier effect. This last-write-wins
// race is an accepted property of the design, since the app issues one
// user-driven mutation at a time.
package library

import (
	"context"
	"time"

	apperrors "github.com/frameflow/frameflow-core/internal/errors"
	"github.com/frameflow/frameflow-core/internal/kv"
	"github.com/frameflow/frameflow-core/internal/logging"
	"github.com/frameflow/frameflow-core/internal/models"
	"github.com/frameflow/frameflow-core/internal/uuid"
)

// Fixed keys in the backing key-value store.
const (
	mediaKey       = "media"
	collectionsKey = "collections"
)

// Options tunes store policy.
type Options struct {
	// AllowEmptyOnCreate permits creating a collection with no photos.
	AllowEmptyOnCreate bool
}

// Store owns the media and collections arrays.
type Store struct {
	kv         kv.Store
	log        *logging.Logger
	allowEmpty bool

	// overridable for deterministic tests
	now   func() time.Time
	newID func() string
}

// New creates a Store over the given key-value backend.
func New(backend kv.Store, log *logging.Logger, opts Options) *Store {
	if log == nil {
		log = logging.Get()
	}
	return &Store{
		kv:         backend,
		log:        log,
		allowEmpty: opts.AllowEmptyOnCreate,
		now:        time.Now,
		newID:      uuid.New,
	}
}

// timestamp formats the creation time the way the stored records expect.
func (s *Store) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

// LoadMedia returns all stored media items in insertion order. A key that
// has never been written yields an empty slice; a present-but-malformed
// payload is a storage read error, not an empty list.
func (s *Store) LoadMedia(ctx context.Context) ([]models.MediaItem, error) {
	raw, ok, err := s.kv.Get(ctx, mediaKey)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageRead, "failed to load media", err)
	}
	if !ok {
		return []models.MediaItem{}, nil
	}
	items, err := models.DecodeMediaItems(raw)
	if err != nil {
		s.log.Warn("stored media payload is malformed", map[string]interface{}{"key": mediaKey})
		return nil, apperrors.Wrap(apperrors.ErrStorageRead, "stored media payload is malformed", err)
	}
	return items, nil
}

// AddMedia assigns each input a fresh id and creation timestamp, appends
// the resulting items to the stored sequence in input order, persists, and
// returns the created items. After a failed write nothing is committed and
// callers must re-fetch before retrying.
func (s *Store) AddMedia(ctx context.Context, inputs []models.NewMediaItem) ([]models.MediaItem, error) {
	for _, in := range inputs {
		if in.URI == "" {
			return nil, apperrors.New(apperrors.ErrValidation, "media item uri is required")
		}
		if in.Type != "" && !in.Type.Valid() {
			return nil, apperrors.New(apperrors.ErrValidation, "unknown media type "+string(in.Type))
		}
	}

	existing, err := s.LoadMedia(ctx)
	if err != nil {
		return nil, err
	}

	created := make([]models.MediaItem, 0, len(inputs))
	for _, in := range inputs {
		item := models.MediaItem{
			ID:        s.newID(),
			URI:       in.URI,
			Type:      in.Type,
			Tags:      append([]string{}, in.Tags...),
			Category:  in.Category,
			CreatedAt: s.timestamp(),
		}
		if item.Type == "" {
			item.Type = models.MediaImage
		}
		created = append(created, item)
	}

	if err := s.saveMedia(ctx, append(existing, created...)); err != nil {
		return nil, err
	}
	s.log.Info("media added", map[string]interface{}{"count": len(created)})
	return created, nil
}

// DeleteMedia removes every item whose id is in ids, preserving the order
// of the remainder, and returns the number removed. Deleting ids that do
// not exist is not an error; the call is idempotent.
func (s *Store) DeleteMedia(ctx context.Context, ids []string) (int, error) {
	existing, err := s.LoadMedia(ctx)
	if err != nil {
		return 0, err
	}

	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	kept := make([]models.MediaItem, 0, len(existing))
	for _, item := range existing {
		if _, gone := drop[item.ID]; !gone {
			kept = append(kept, item)
		}
	}
	removed := len(existing) - len(kept)
	if removed == 0 {
		return 0, nil
	}

	if err := s.saveMedia(ctx, kept); err != nil {
		return 0, err
	}
	s.log.Info("media deleted", map[string]interface{}{"count": removed})
	return removed, nil
}

// saveMedia persists the full media array.
func (s *Store) saveMedia(ctx context.Context, items []models.MediaItem) error {
	data, err := models.EncodeMediaItems(items)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternal, "failed to encode media", err)
	}
	if err := s.kv.Set(ctx, mediaKey, data); err != nil {
		return apperrors.Wrap(apperrors.ErrStorageWrite, "failed to save media", err)
	}
	return nil
}
