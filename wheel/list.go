package wheel

// List is an ordered collection with a single optional cursor and wrap-around
// navigation. Insertion order defines adjacency. Invariants: an empty list has
// no selection, and a present selection is always a valid index.
//
// No operation fails; calls that cannot apply (empty list, no selection) are
// no-ops so a misbehaving caller can never crash the render loop.
type List[T any] struct {
	items    []T
	selected int // -1 = no selection
}

// NewList takes ownership of items.
func NewList[T any](items []T) *List[T] {
	return &List[T]{items: items, selected: -1}
}

// Len returns the number of items.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Advance moves the cursor forward by step, wrapping past the end. With no
// current selection it selects the first item regardless of step.
func (l *List[T]) Advance(step int) {
	if len(l.items) == 0 || step < 0 {
		return
	}
	if l.selected < 0 {
		l.selected = 0
		return
	}
	l.selected = (l.selected + step) % len(l.items)
}

// Retreat moves the cursor back one item, wrapping to the last. With no
// current selection it selects the first item.
func (l *List[T]) Retreat() {
	if len(l.items) == 0 {
		return
	}
	switch {
	case l.selected < 0:
		l.selected = 0
	case l.selected == 0:
		l.selected = len(l.items) - 1
	default:
		l.selected--
	}
}

// ClearSelection leaves the cursor on nothing.
func (l *List[T]) ClearSelection() {
	l.selected = -1
}

// Selected returns a copy of the item under the cursor.
func (l *List[T]) Selected() (T, bool) {
	var zero T
	if l.selected < 0 {
		return zero, false
	}
	return l.items[l.selected], true
}

// SelectedIndex returns the cursor position, -1 when nothing is selected.
func (l *List[T]) SelectedIndex() int {
	return l.selected
}

// UpdateSelected applies fn to the item under the cursor in place. Reports
// whether anything was selected.
func (l *List[T]) UpdateSelected(fn func(*T)) bool {
	if l.selected < 0 {
		return false
	}
	fn(&l.items[l.selected])
	return true
}

// RemoveSelected deletes the item under the cursor and clears the selection.
// Subsequent items shift down; no replacement is auto-selected.
func (l *List[T]) RemoveSelected() {
	if len(l.items) == 0 || l.selected < 0 {
		return
	}
	l.items = append(l.items[:l.selected], l.items[l.selected+1:]...)
	l.selected = -1
}

// At returns a copy of the item at index i.
func (l *List[T]) At(i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(l.items) {
		return zero, false
	}
	return l.items[i], true
}

// Items returns a snapshot copy of the collection.
func (l *List[T]) Items() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}
