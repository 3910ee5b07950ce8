package widget

import "testing"

func makeItems(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{Label: string(rune('a' + i%26)), Kind: KindEntry}
	}
	return items
}

func checkWindowInvariant(t *testing.T, l *List, height int) {
	t.Helper()
	if l.Len() == 0 {
		return
	}
	if l.Cursor() < 0 || l.Cursor() >= l.Len() {
		t.Fatalf("cursor %d out of range [0,%d)", l.Cursor(), l.Len())
	}
	if l.Cursor() < l.Offset() {
		t.Fatalf("cursor %d above window offset %d", l.Cursor(), l.Offset())
	}
	if l.Cursor() >= l.Offset()+height {
		t.Fatalf("cursor %d below window [%d,%d)", l.Cursor(), l.Offset(), l.Offset()+height)
	}
	if l.Offset() < 0 {
		t.Fatalf("negative offset %d", l.Offset())
	}
}

func TestList_MoveCursorStaysInBounds(t *testing.T) {
	tests := []struct {
		name   string
		items  int
		height int
		moves  []int
		want   int
	}{
		{"down past end clamps", 5, 3, []int{10}, 4},
		{"up past start clamps", 5, 3, []int{3, -10}, 0},
		{"zigzag", 20, 5, []int{7, -2, 30, -40, 6}, 6},
		{"single item", 1, 3, []int{1, -1, 5}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewList(tt.height)
			l.SetItems(makeItems(tt.items))
			for _, d := range tt.moves {
				l.MoveCursor(d)
				checkWindowInvariant(t, l, tt.height)
			}
			if l.Cursor() != tt.want {
				t.Errorf("cursor = %d, want %d", l.Cursor(), tt.want)
			}
		})
	}
}

func TestList_MoveCursorEmptyIsNoop(t *testing.T) {
	l := NewList(5)
	l.MoveCursor(3)
	if l.Cursor() != 0 || l.Offset() != 0 {
		t.Errorf("empty list mutated: cursor=%d offset=%d", l.Cursor(), l.Offset())
	}
	if rows := l.VisibleSlice(); rows != nil {
		t.Errorf("VisibleSlice on empty list = %v, want nil", rows)
	}
}

func TestList_SetItemsKeepsCursorWhenPossible(t *testing.T) {
	l := NewList(4)
	l.SetItems(makeItems(10))
	l.MoveCursor(6)

	// Same-length reload: cursor stays put.
	l.SetItems(makeItems(10))
	if l.Cursor() != 6 {
		t.Errorf("cursor after equal-length SetItems = %d, want 6", l.Cursor())
	}

	// Shorter reload: clamp to last valid index.
	l.SetItems(makeItems(3))
	if l.Cursor() != 2 {
		t.Errorf("cursor after shrinking SetItems = %d, want 2", l.Cursor())
	}
	checkWindowInvariant(t, l, 4)
}

func TestList_VisibleSliceCoversViewport(t *testing.T) {
	l := NewList(3)
	l.SetItems(makeItems(10))
	l.MoveCursor(5)

	rows := l.VisibleSlice()
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}
	selected := 0
	for i, r := range rows {
		if r.Index != l.Offset()+i {
			t.Errorf("rows[%d].Index = %d, want %d", i, r.Index, l.Offset()+i)
		}
		if r.Selected {
			selected++
			if r.Index != l.Cursor() {
				t.Errorf("selected row index = %d, want cursor %d", r.Index, l.Cursor())
			}
		}
	}
	if selected != 1 {
		t.Errorf("selected rows = %d, want exactly 1", selected)
	}

	// Restartable: a second call yields the same rows.
	again := l.VisibleSlice()
	if len(again) != len(rows) || again[0].Index != rows[0].Index {
		t.Errorf("second VisibleSlice differs: %v vs %v", again, rows)
	}
}

func TestList_CenteringPrefersMiddle(t *testing.T) {
	l := NewList(5)
	l.SetItems(makeItems(100))
	l.MoveCursor(50)
	if got, want := l.Offset(), 50-5/2; got != want {
		t.Errorf("offset = %d, want centered %d", got, want)
	}
	// Near the end, the window clamps instead of centering.
	l.MoveCursor(49)
	if got, want := l.Offset(), 95; got != want {
		t.Errorf("offset at end = %d, want %d", got, want)
	}
	checkWindowInvariant(t, l, 5)
}
