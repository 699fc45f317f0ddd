// Package selection models the transient multi-select state shared by the
// gallery, collection-detail and collections-list flows.
package selection

// Tracker is the selection-mode state machine. It starts in browsing mode;
// a long-press enters selecting mode with that item, taps toggle membership
// while selecting, and the tracker drops back to browsing when the last
// member is toggled out or the selection is cancelled. Nothing here is
// persisted; the state only reflects the last user action.
type Tracker struct {
	selecting bool
	order     []string
	members   map[string]struct{}
}

// NewTracker creates a Tracker in browsing mode.
func NewTracker() *Tracker {
	return &Tracker{members: make(map[string]struct{})}
}

// Selecting reports whether the tracker is in selection mode.
func (t *Tracker) Selecting() bool {
	return t.selecting
}

// IsSelected reports whether the item is currently selected.
func (t *Tracker) IsSelected(id string) bool {
	_, ok := t.members[id]
	return ok
}

// Count returns the number of selected items.
func (t *Tracker) Count() int {
	return len(t.members)
}

// Selected returns the selected ids in the order they were chosen.
func (t *Tracker) Selected() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// LongPress enters selection mode with exactly the pressed item selected,
// replacing any previous selection.
func (t *Tracker) LongPress(id string) {
	t.selecting = true
	t.order = []string{id}
	t.members = map[string]struct{}{id: {}}
}

// Tap handles a tap on an item. In browsing mode it does nothing and
// returns false so the caller can open the item instead. In selection mode
// it toggles the item's membership and returns true; toggling the last
// member out returns the tracker to browsing mode.
func (t *Tracker) Tap(id string) bool {
	if !t.selecting {
		return false
	}
	if t.IsSelected(id) {
		delete(t.members, id)
		for i, existing := range t.order {
			if existing == id {
				t.order = append(t.order[:i], t.order[i+1:]...)
				break
			}
		}
		if len(t.members) == 0 {
			t.selecting = false
			t.order = nil
		}
		return true
	}
	t.members[id] = struct{}{}
	t.order = append(t.order, id)
	return true
}

// Cancel clears the selection and returns to browsing mode unconditionally.
func (t *Tracker) Cancel() {
	t.selecting = false
	t.order = nil
	t.members = make(map[string]struct{})
}
