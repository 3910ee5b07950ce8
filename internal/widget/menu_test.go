package widget

import (
	"errors"
	"testing"
)

func TestNewMenu_RejectsEmptyOptions(t *testing.T) {
	if _, err := NewMenu(nil, 0, 5); !errors.Is(err, ErrEmptyOptions) {
		t.Fatalf("NewMenu(nil) error = %v, want ErrEmptyOptions", err)
	}
}

func TestNewMenu_PreselectClamped(t *testing.T) {
	opts := []string{"a", "b", "c"}
	tests := []struct {
		name      string
		preselect int
		want      int
	}{
		{"negative clamps to first", -4, 0},
		{"in range kept", 1, 1},
		{"past end clamps to last", 99, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMenu(opts, tt.preselect, 5)
			if err != nil {
				t.Fatalf("NewMenu: %v", err)
			}
			if got := m.Index(); got != tt.want {
				t.Errorf("Index() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMenu_MoveCursorWrapsNothing(t *testing.T) {
	m, err := NewMenu([]string{"x", "y", "z"}, 0, 5)
	if err != nil {
		t.Fatalf("NewMenu: %v", err)
	}
	m.MoveCursor(-1)
	if got := m.Index(); got != 0 {
		t.Errorf("Index after moving above first = %d, want 0", got)
	}
	m.MoveCursor(10)
	if got := m.Index(); got != 2 {
		t.Errorf("Index after moving past last = %d, want 2", got)
	}
}
