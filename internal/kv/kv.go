// Package kv provides the key-value persistence backends for FrameFlow Core.
package kv

import "context"

// Store is the minimal persistence surface the library store works against:
// fallible, asynchronous get/set of whole string payloads. The boolean on
// Get distinguishes a key that was never written from an empty value.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
