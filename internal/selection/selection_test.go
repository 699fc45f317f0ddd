// Package selection tests for the selection-mode state machine.
package selection

import (
	"reflect"
	"testing"
)

func TestInitialStateIsBrowsing(t *testing.T) {
	tr := NewTracker()
	if tr.Selecting() {
		t.Error("a new tracker must start in browsing mode")
	}
	if tr.Count() != 0 {
		t.Errorf("Count = %d, want 0", tr.Count())
	}
}

func TestLongPressEntersSelection(t *testing.T) {
	tr := NewTracker()
	tr.LongPress("x")

	if !tr.Selecting() {
		t.Fatal("long-press must enter selection mode")
	}
	if !tr.IsSelected("x") || tr.Count() != 1 {
		t.Errorf("expected only x selected, got %v", tr.Selected())
	}
}

func TestLongPressReplacesSelection(t *testing.T) {
	tr := NewTracker()
	tr.LongPress("x")
	tr.Tap("y")
	tr.LongPress("z")

	if !reflect.DeepEqual(tr.Selected(), []string{"z"}) {
		t.Errorf("long-press must reset the selection, got %v", tr.Selected())
	}
}

func TestTapTogglesMembership(t *testing.T) {
	tr := NewTracker()
	tr.LongPress("x")

	if !tr.Tap("y") {
		t.Error("tap in selection mode must be handled")
	}
	if !reflect.DeepEqual(tr.Selected(), []string{"x", "y"}) {
		t.Errorf("Selected = %v", tr.Selected())
	}

	tr.Tap("y")
	if tr.IsSelected("y") {
		t.Error("second tap must deselect the item")
	}
	if !tr.Selecting() {
		t.Error("tracker must stay selecting while members remain")
	}
}

func TestTogglingLastMemberReturnsToBrowsing(t *testing.T) {
	tr := NewTracker()
	tr.LongPress("x")
	tr.Tap("x")

	if tr.Selecting() {
		t.Error("toggling the last member out must return to browsing")
	}
	if tr.Count() != 0 {
		t.Errorf("Count = %d, want 0", tr.Count())
	}
}

func TestTapWhileBrowsingIsNotHandled(t *testing.T) {
	tr := NewTracker()
	if tr.Tap("x") {
		t.Error("tap in browsing mode must be left to the caller")
	}
	if tr.Selecting() || tr.Count() != 0 {
		t.Error("browsing tap must not change state")
	}
}

func TestCancelClearsSelection(t *testing.T) {
	tr := NewTracker()
	tr.LongPress("x")
	tr.Tap("y")
	tr.Cancel()

	if tr.Selecting() || tr.Count() != 0 {
		t.Error("cancel must clear the selection and return to browsing")
	}
}

// Scenario from the state machine contract: long-press X, tap X → browsing;
// long-press X, tap Y, cancel → browsing with nothing selected.
func TestSelectionScenarios(t *testing.T) {
	tr := NewTracker()

	tr.LongPress("X")
	if !tr.Selecting() || !tr.IsSelected("X") {
		t.Fatal("expected Selecting({X})")
	}
	tr.Tap("X")
	if tr.Selecting() {
		t.Fatal("expected browsing after deselecting X")
	}

	tr.LongPress("X")
	tr.Tap("Y")
	tr.Cancel()
	if tr.Selecting() || tr.Count() != 0 {
		t.Fatal("expected browsing with empty selection after cancel")
	}
}

func TestSelectedReturnsCopy(t *testing.T) {
	tr := NewTracker()
	tr.LongPress("x")

	got := tr.Selected()
	got[0] = "mutated"
	if !tr.IsSelected("x") {
		t.Error("mutating the returned slice must not affect the tracker")
	}
}
