// Package models provides data model definitions for FrameFlow Core.
package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// MediaType identifies the kind of resource a media item references.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Valid reports whether the media type is one of the known kinds.
func (t MediaType) Valid() bool {
	return t == MediaImage || t == MediaVideo
}

// MediaItem represents a single imported photo or video reference.
// The URI is opaque to the store: it is never validated or dereferenced.
type MediaItem struct {
	ID        string    `json:"id"`
	URI       string    `json:"uri"`
	Type      MediaType `json:"type"`
	Tags      []string  `json:"tags"`
	Category  string    `json:"category,omitempty"`
	CreatedAt string    `json:"createdAt"` // ISO-8601, set once at creation
}

// CreatedAtTime returns CreatedAt parsed as time.Time.
// Returns the zero time if the timestamp is missing or not RFC 3339.
func (m *MediaItem) CreatedAtTime() time.Time {
	ts, err := time.Parse(time.RFC3339, m.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return ts
}

// HasTag reports whether the item carries the tag (case-sensitive).
func (m *MediaItem) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the item. Collections store snapshots of
// media items, so copies must not share tag slices with the original.
func (m MediaItem) Clone() MediaItem {
	out := m
	if m.Tags != nil {
		out.Tags = make([]string, len(m.Tags))
		copy(out.Tags, m.Tags)
	}
	return out
}

// Validate checks the stored-item invariant: non-empty id and uri.
func (m *MediaItem) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("media item has empty id")
	}
	if m.URI == "" {
		return fmt.Errorf("media item %s has empty uri", m.ID)
	}
	return nil
}

// NewMediaItem is the caller-supplied shape for importing media.
// Type defaults to image when left empty.
type NewMediaItem struct {
	URI      string    `json:"uri"`
	Type     MediaType `json:"type"`
	Tags     []string  `json:"tags"`
	Category string    `json:"category,omitempty"`
}

// DecodeMediaItems parses a stored media payload. A payload that is present
// but does not parse as a media array is malformed, which is distinct from
// the key never having been written.
func DecodeMediaItems(data string) ([]MediaItem, error) {
	var items []MediaItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, fmt.Errorf("malformed media payload: %w", err)
	}
	return items, nil
}

// EncodeMediaItems serializes the full media array for persistence.
func EncodeMediaItems(items []MediaItem) (string, error) {
	if items == nil {
		items = []MediaItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("failed to encode media items: %w", err)
	}
	return string(data), nil
}
