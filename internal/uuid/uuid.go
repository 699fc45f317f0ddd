// Package uuid provides id generation for media items and collections.
package uuid

import (
	"fmt"

	"github.com/google/uuid"
)

// New generates a new UUID v4 string. Ids are opaque to the rest of the
// module; the only requirement is uniqueness across the store's lifetime.
func New() string {
	return uuid.New().String()
}

// IsValid checks if a string is a well-formed UUID v4.
func IsValid(s string) bool {
	id, err := uuid.Parse(s)
	return err == nil && id.Version() == 4
}

// Validate returns an error if the string is not a valid UUID v4.
func Validate(s string) error {
	if !IsValid(s) {
		return fmt.Errorf("invalid UUID v4: %q", s)
	}
	return nil
}
