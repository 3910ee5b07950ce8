// Package widget provides the list-selection state machines shared by the
// file pickers and option menus. The types here are pure state: they do no
// I/O and no rendering, which keeps them independent of the UI toolkit.
package widget

// ItemKind classifies a list row.
type ItemKind int

const (
	KindEntry ItemKind = iota
	KindDirectory
	KindParentMarker
)

// Item is one labeled row of a list. Immutable once constructed.
type Item struct {
	Label string
	Kind  ItemKind
}

// Row is one visible row produced by VisibleSlice.
type Row struct {
	Index    int
	Item     Item
	Selected bool
}

// List tracks a cursor and a visible window over an ordered item sequence.
type List struct {
	items  []Item
	cursor int
	offset int
	height int
}

// NewList returns a list with the given viewport height. Heights below one
// are raised to one so the cursor always has a visible row.
func NewList(height int) *List {
	l := &List{}
	l.SetHeight(height)
	return l
}

// SetHeight resizes the viewport and re-derives the window offset.
func (l *List) SetHeight(height int) {
	if height < 1 {
		height = 1
	}
	l.height = height
	l.recenter()
}

// SetItems replaces the item sequence. The cursor stays on the same index
// when possible and clamps to the last valid index otherwise, so a reloaded
// listing lands near where the user left off.
func (l *List) SetItems(items []Item) {
	l.items = items
	if l.cursor >= len(items) {
		l.cursor = len(items) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	l.recenter()
}

// MoveCursor moves the cursor by delta, clamped to the item range, and keeps
// the cursor inside the visible window. No-op on an empty list.
func (l *List) MoveCursor(delta int) {
	if len(l.items) == 0 {
		return
	}
	l.cursor += delta
	if l.cursor < 0 {
		l.cursor = 0
	}
	if l.cursor > len(l.items)-1 {
		l.cursor = len(l.items) - 1
	}
	l.recenter()
}

// ResetCursor moves the cursor back to the first item.
func (l *List) ResetCursor() {
	l.cursor = 0
	l.recenter()
}

// recenter keeps the cursor roughly centered in the viewport, clamped so the
// window never runs past either end of the list.
func (l *List) recenter() {
	maxOffset := len(l.items) - l.height
	if maxOffset < 0 {
		maxOffset = 0
	}
	l.offset = l.cursor - l.height/2
	if l.offset > maxOffset {
		l.offset = maxOffset
	}
	if l.offset < 0 {
		l.offset = 0
	}
	// Window invariant: offset <= cursor < offset+height.
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+l.height {
		l.offset = l.cursor - l.height + 1
	}
}

// VisibleSlice returns the rows covering exactly the current viewport.
// Safe to call on every redraw.
func (l *List) VisibleSlice() []Row {
	end := l.offset + l.height
	if end > len(l.items) {
		end = len(l.items)
	}
	if l.offset >= end {
		return nil
	}
	rows := make([]Row, 0, end-l.offset)
	for i := l.offset; i < end; i++ {
		rows = append(rows, Row{Index: i, Item: l.items[i], Selected: i == l.cursor})
	}
	return rows
}

// Cursor returns the current cursor index.
func (l *List) Cursor() int { return l.cursor }

// Offset returns the current viewport offset.
func (l *List) Offset() int { return l.offset }

// Len returns the number of items.
func (l *List) Len() int { return len(l.items) }

// Current returns the item under the cursor, if any.
func (l *List) Current() (Item, bool) {
	if len(l.items) == 0 {
		return Item{}, false
	}
	return l.items[l.cursor], true
}
