package kv

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "media")
	if err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}

	if err := store.Set(ctx, "media", "[]"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value, ok, err := store.Get(ctx, "media")
	if err != nil || !ok || value != "[]" {
		t.Errorf("round trip failed: %q %v %v", value, ok, err)
	}
}

func TestMemoryStoreFailureInjection(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.SetErr = errors.New("write refused")
	if err := store.Set(ctx, "media", "[]"); err == nil {
		t.Error("expected injected set error")
	}
	if _, ok, _ := store.Get(ctx, "media"); ok {
		t.Error("failed write should not leave data behind")
	}

	store.SetErr = nil
	store.GetErr = errors.New("read refused")
	if _, _, err := store.Get(ctx, "media"); err == nil {
		t.Error("expected injected get error")
	}
}

func TestMemoryStoreOnGetHook(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var seen []string
	store.OnGet = func(key string) { seen = append(seen, key) }

	store.Get(ctx, "media")
	store.Get(ctx, "collections")

	if len(seen) != 2 || seen[0] != "media" || seen[1] != "collections" {
		t.Errorf("hook observed %v", seen)
	}
}
