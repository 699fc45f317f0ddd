package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Collection is a named, user-curated group of photo snapshots.
// Photos are copies taken at add-time, not references into the media
// library: editing or deleting a library item never changes a collection.
type Collection struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Photos    []MediaItem `json:"photos"`
	CreatedAt string      `json:"createdAt"`
}

// CreatedAtTime returns CreatedAt parsed as time.Time.
func (c *Collection) CreatedAtTime() time.Time {
	ts, err := time.Parse(time.RFC3339, c.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return ts
}

// Clone returns a deep copy of the collection and its photo snapshots.
func (c Collection) Clone() Collection {
	out := c
	out.Photos = ClonePhotos(c.Photos)
	return out
}

// ClonePhotos deep-copies a photo slice. Used when taking snapshots into a
// collection and when returning collection contents to callers.
func ClonePhotos(photos []MediaItem) []MediaItem {
	out := make([]MediaItem, len(photos))
	for i, p := range photos {
		out[i] = p.Clone()
	}
	return out
}

// DecodeCollections parses a stored collections payload. Null photo entries
// are rejected as malformed: a collection's photos may be empty but no
// entry may be absent.
func DecodeCollections(data string) ([]Collection, error) {
	var raw []struct {
		ID        string       `json:"id"`
		Name      string       `json:"name"`
		Photos    []*MediaItem `json:"photos"`
		CreatedAt string       `json:"createdAt"`
	}
	if err := json.Unmarshal([]byte(data), &raw); err != nil {
		return nil, fmt.Errorf("malformed collections payload: %w", err)
	}
	cols := make([]Collection, len(raw))
	for i, rc := range raw {
		photos := make([]MediaItem, 0, len(rc.Photos))
		for _, p := range rc.Photos {
			if p == nil {
				return nil, fmt.Errorf("collection %s contains a null photo entry", rc.ID)
			}
			photos = append(photos, *p)
		}
		cols[i] = Collection{
			ID:        rc.ID,
			Name:      rc.Name,
			Photos:    photos,
			CreatedAt: rc.CreatedAt,
		}
	}
	return cols, nil
}

// EncodeCollections serializes the full collections array for persistence.
func EncodeCollections(cols []Collection) (string, error) {
	if cols == nil {
		cols = []Collection{}
	}
	data, err := json.Marshal(cols)
	if err != nil {
		return "", fmt.Errorf("failed to encode collections: %w", err)
	}
	return string(data), nil
}
