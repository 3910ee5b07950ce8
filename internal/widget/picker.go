package widget

import (
	"path/filepath"
	"sort"
	"strings"
)

// PickerState is the lifecycle of a file picker. Selected and Cancelled are
// terminal: a finished picker answers no further navigation.
type PickerState int

const (
	Browsing PickerState = iota
	Selected
	Cancelled
)

// DirEntry is a single directory listing entry as returned by a Lister.
type DirEntry struct {
	Name  string
	IsDir bool
}

// Lister reads one directory. Injected so tests can browse a fake tree.
type Lister func(dir string) ([]DirEntry, error)

const parentLabel = ".."

// Picker lets the user browse directories and terminate with either a file
// path or a cancellation. Directories always appear regardless of the
// extension filter; only plain files are filtered.
type Picker struct {
	list   *List
	dir    string
	exts   map[string]struct{} // lowercase, with leading dot; empty = no filter
	lister Lister

	state PickerState
	path  string
}

// NewPicker returns a picker rooted at startDir showing only files whose
// extension (case-insensitive) is in exts; an empty exts slice disables
// filtering.
func NewPicker(startDir string, exts []string, lister Lister, height int) *Picker {
	set := make(map[string]struct{}, len(exts))
	for _, e := range exts {
		set[strings.ToLower(e)] = struct{}{}
	}
	p := &Picker{
		list:   NewList(height),
		dir:    filepath.Clean(startDir),
		exts:   set,
		lister: lister,
	}
	p.reload()
	return p
}

// reload re-reads the current directory. An unreadable directory degrades to
// a parent-marker-only listing so browsing never becomes unrecoverable.
func (p *Picker) reload() {
	entries, err := p.lister(p.dir)
	if err != nil {
		entries = nil
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	items := []Item{{Label: parentLabel, Kind: KindParentMarker}}
	for _, e := range entries {
		if e.IsDir {
			items = append(items, Item{Label: e.Name + "/", Kind: KindDirectory})
			continue
		}
		if len(p.exts) > 0 {
			ext := strings.ToLower(filepath.Ext(e.Name))
			if _, ok := p.exts[ext]; !ok {
				continue
			}
		}
		items = append(items, Item{Label: e.Name, Kind: KindEntry})
	}
	p.list.SetItems(items)
}

// Enter acts on the highlighted item: parent marker and directories change
// the current directory and stay Browsing, a file transitions to Selected.
// Entering the parent marker at the filesystem root is a no-op.
func (p *Picker) Enter() {
	if p.state != Browsing {
		return
	}
	item, ok := p.list.Current()
	if !ok {
		return
	}
	switch item.Kind {
	case KindParentMarker:
		p.changeDir(filepath.Dir(p.dir))
	case KindDirectory:
		p.changeDir(filepath.Join(p.dir, strings.TrimSuffix(item.Label, "/")))
	case KindEntry:
		p.state = Selected
		p.path = filepath.Join(p.dir, item.Label)
	}
}

func (p *Picker) changeDir(dir string) {
	p.dir = dir
	p.reload()
	p.list.ResetCursor()
}

// Cancel exits the whole picker regardless of depth.
func (p *Picker) Cancel() {
	if p.state == Browsing {
		p.state = Cancelled
	}
}

// MoveCursor forwards to the underlying list.
func (p *Picker) MoveCursor(delta int) { p.list.MoveCursor(delta) }

// SetHeight forwards to the underlying list.
func (p *Picker) SetHeight(height int) { p.list.SetHeight(height) }

// VisibleSlice forwards to the underlying list.
func (p *Picker) VisibleSlice() []Row { return p.list.VisibleSlice() }

// State returns the picker lifecycle state.
func (p *Picker) State() PickerState { return p.state }

// Path returns the selected file path; empty unless State is Selected.
func (p *Picker) Path() string { return p.path }

// Dir returns the directory currently being browsed.
func (p *Picker) Dir() string { return p.dir }
