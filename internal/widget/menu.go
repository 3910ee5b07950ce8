package widget

import "errors"

// ErrEmptyOptions reports a menu constructed without options. This is a
// programmer error: a menu must always offer at least one choice.
var ErrEmptyOptions = errors.New("menu requires at least one option")

// Menu is a flat, non-traversing selection from a fixed set of options.
type Menu struct {
	list *List
}

// NewMenu builds a menu over the given options with the cursor initialized
// to preselect (clamped into range). The preselection carries no other
// semantics; it is only a starting point for the cursor.
func NewMenu(options []string, preselect int, height int) (*Menu, error) {
	if len(options) == 0 {
		return nil, ErrEmptyOptions
	}
	items := make([]Item, len(options))
	for i, o := range options {
		items[i] = Item{Label: o, Kind: KindEntry}
	}
	l := NewList(height)
	l.SetItems(items)
	if preselect < 0 {
		preselect = 0
	}
	if preselect > len(options)-1 {
		preselect = len(options) - 1
	}
	l.MoveCursor(preselect)
	return &Menu{list: l}, nil
}

// Index returns the currently highlighted option index.
func (m *Menu) Index() int { return m.list.Cursor() }

// MoveCursor forwards to the underlying list.
func (m *Menu) MoveCursor(delta int) { m.list.MoveCursor(delta) }

// SetHeight forwards to the underlying list.
func (m *Menu) SetHeight(height int) { m.list.SetHeight(height) }

// VisibleSlice forwards to the underlying list.
func (m *Menu) VisibleSlice() []Row { return m.list.VisibleSlice() }
