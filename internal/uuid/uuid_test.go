// Package uuid tests for id generation.
package uuid

import "testing"

func TestNewGeneratesValidIDs(t *testing.T) {
	id := New()
	if id == "" {
		t.Fatal("New returned an empty id")
	}
	if !IsValid(id) {
		t.Errorf("New returned an id that fails validation: %s", id)
	}
}

func TestNewGeneratesUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := New()
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"generated", New(), true},
		{"empty", "", false},
		{"garbage", "not-a-uuid", false},
		{"v1 uuid", "f47ac10b-58cc-1372-a567-0e02b2c3d479", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValid(tt.input); got != tt.valid {
				t.Errorf("IsValid(%q) = %v, want %v", tt.input, got, tt.valid)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(New()); err != nil {
		t.Errorf("Validate rejected a generated id: %v", err)
	}
	if err := Validate("nope"); err == nil {
		t.Error("Validate accepted a malformed id")
	}
}
