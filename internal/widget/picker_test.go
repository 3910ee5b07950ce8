package widget

import (
	"errors"
	"testing"
)

// fakeTree maps directory paths to their entries.
type fakeTree map[string][]DirEntry

func (ft fakeTree) lister() Lister {
	return func(dir string) ([]DirEntry, error) {
		entries, ok := ft[dir]
		if !ok {
			return nil, errors.New("unreadable")
		}
		// Return a copy shuffled out of order to exercise sorting.
		out := make([]DirEntry, len(entries))
		copy(out, entries)
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
		return out, nil
	}
}

func labels(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Item.Label
	}
	return out
}

func newTestTree() fakeTree {
	return fakeTree{
		"/music": {
			{Name: "album", IsDir: true},
			{Name: "song.mp3", IsDir: false},
			{Name: "cover.png", IsDir: false},
			{Name: "notes.txt", IsDir: false},
			{Name: "band.MP3", IsDir: false},
		},
		"/music/album": {
			{Name: "track1.mp3", IsDir: false},
		},
		"/": {
			{Name: "music", IsDir: true},
		},
	}
}

func TestPicker_FiltersAndSorts(t *testing.T) {
	p := NewPicker("/music", []string{".mp3"}, newTestTree().lister(), 10)

	got := labels(p.VisibleSlice())
	// Parent marker first; dirs and files interleaved lexicographically;
	// extension filter is case-insensitive and skips non-directories only.
	want := []string{"..", "album/", "band.MP3", "song.mp3"}
	if len(got) != len(want) {
		t.Fatalf("listing = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("listing[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPicker_NoFilterShowsEverything(t *testing.T) {
	p := NewPicker("/music", nil, newTestTree().lister(), 10)
	if got := len(p.VisibleSlice()); got != 6 { // marker + 5 entries
		t.Errorf("unfiltered rows = %d, want 6", got)
	}
}

func TestPicker_EnterDescendsAndSelects(t *testing.T) {
	p := NewPicker("/music", []string{".mp3"}, newTestTree().lister(), 10)

	p.MoveCursor(1) // album/
	p.Enter()
	if p.State() != Browsing {
		t.Fatalf("state after descending = %v, want Browsing", p.State())
	}
	if p.Dir() != "/music/album" {
		t.Fatalf("dir = %q, want /music/album", p.Dir())
	}

	p.MoveCursor(1) // track1.mp3
	p.Enter()
	if p.State() != Selected {
		t.Fatalf("state = %v, want Selected", p.State())
	}
	if p.Path() != "/music/album/track1.mp3" {
		t.Errorf("path = %q, want /music/album/track1.mp3", p.Path())
	}

	// Terminal: further navigation is ignored.
	p.Enter()
	p.Cancel()
	if p.State() != Selected {
		t.Errorf("terminal state mutated to %v", p.State())
	}
}

func TestPicker_ParentMarkerAtRootIsNoop(t *testing.T) {
	p := NewPicker("/", nil, newTestTree().lister(), 10)
	p.Enter() // cursor starts on ".."
	if p.State() != Browsing {
		t.Fatalf("state = %v, want Browsing", p.State())
	}
	if p.Dir() != "/" {
		t.Errorf("dir = %q, want / (no-op)", p.Dir())
	}
}

func TestPicker_ParentResetsCursor(t *testing.T) {
	p := NewPicker("/music", nil, newTestTree().lister(), 10)
	p.MoveCursor(3)
	p.MoveCursor(-3) // back on ".."
	p.Enter()
	if p.Dir() != "/" {
		t.Fatalf("dir = %q, want /", p.Dir())
	}
	rows := p.VisibleSlice()
	if len(rows) == 0 || !rows[0].Selected {
		t.Errorf("cursor not reset to 0 after directory change")
	}
}

func TestPicker_UnreadableDirDegradesToParentMarker(t *testing.T) {
	tree := newTestTree()
	tree["/music"] = append(tree["/music"], DirEntry{Name: "locked", IsDir: true})
	p := NewPicker("/music", nil, tree.lister(), 10)

	// Descend into a directory the lister cannot read.
	for i := 0; i < p.list.Len(); i++ {
		if item, _ := p.list.Current(); item.Label == "locked/" {
			break
		}
		p.MoveCursor(1)
	}
	p.Enter()
	if p.State() != Browsing {
		t.Fatalf("state = %v, want Browsing", p.State())
	}
	got := labels(p.VisibleSlice())
	if len(got) != 1 || got[0] != ".." {
		t.Errorf("degraded listing = %v, want only the parent marker", got)
	}
	// Browsing stays recoverable: going up works.
	p.Enter()
	if p.Dir() != "/music" {
		t.Errorf("dir after recovery = %q, want /music", p.Dir())
	}
}

func TestPicker_CancelIsTerminal(t *testing.T) {
	p := NewPicker("/music", nil, newTestTree().lister(), 10)
	p.Cancel()
	if p.State() != Cancelled {
		t.Fatalf("state = %v, want Cancelled", p.State())
	}
	p.Enter()
	if p.State() != Cancelled || p.Path() != "" {
		t.Errorf("cancelled picker still navigates")
	}
}
