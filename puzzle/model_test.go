package puzzle

import (
	"reflect"
	"testing"
)

/*

Candidate set tests

*/

func TestVsetBasics(t *testing.T) {
	if fullVset.size() != 9 {
		t.Errorf("full set size: got %d, want 9", fullVset.size())
	}
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if got := fullVset.values(); !reflect.DeepEqual(got, want) {
		t.Errorf("full set values: got %v, want %v", got, want)
	}
	v := fullVset.remove(5).remove(1)
	if v.has(5) || v.has(1) || !v.has(9) {
		t.Errorf("membership wrong after removals: %b", v)
	}
	if got, want := v.values(), []int{2, 3, 4, 6, 7, 8, 9}; !reflect.DeepEqual(got, want) {
		t.Errorf("values after removals: got %v, want %v", got, want)
	}
	if got := v.insert(5).insert(1); got != fullVset {
		t.Errorf("re-insertion didn't restore the full set: %b", got)
	}
	if s := singleton(7); s.size() != 1 || !s.has(7) {
		t.Errorf("singleton(7) wrong: %b", s)
	}
	// inserting a present digit is a no-op
	if got := fullVset.insert(3); got != fullVset {
		t.Errorf("duplicate insert changed the set: %b", got)
	}
}

/*

State tests

*/

func TestNewStateDomains(t *testing.T) {
	g := Samples[0].Grid
	s := newState(g, NoDeadline, nil)
	for r := 0; r < SideLen; r++ {
		for c := 0; c < SideLen; c++ {
			if g[r][c] == 0 {
				if s.domains[r][c] != fullVset {
					t.Errorf("empty cell (%d, %d): domain %b, want full", r, c, s.domains[r][c])
				}
			} else if s.domains[r][c] != singleton(g[r][c]) {
				t.Errorf("given cell (%d, %d): domain %b, want singleton %d",
					r, c, s.domains[r][c], g[r][c])
			}
		}
	}
	if s.timed {
		t.Errorf("NoDeadline state has a deadline")
	}
}

func TestPropagateUndo(t *testing.T) {
	s := newState(Grid{}, NoDeadline, nil)
	before := s.domains

	log := s.propagate(4, 4, 5)
	if len(log) != 20 {
		t.Errorf("propagation log: %d removals, want 20", len(log))
	}
	for _, p := range peerTable[4][4] {
		if s.domains[p.row][p.col].has(5) {
			t.Errorf("peer (%d, %d) still has 5 after propagation", p.row, p.col)
		}
	}
	if s.domains[4][4] != fullVset {
		t.Errorf("propagation touched the placed cell's own domain")
	}

	s.undo(log)
	if s.domains != before {
		t.Errorf("domains after undo differ from domains before propagate")
	}
}

// A second propagation of the same digit from an overlapping
// cell must prune (and log) only the peers not already pruned,
// and the two undos must restore the starting domains exactly.
func TestPropagateOverlapUndo(t *testing.T) {
	s := newState(Grid{}, NoDeadline, nil)
	before := s.domains

	first := s.propagate(0, 0, 1)
	second := s.propagate(0, 8, 1)
	if len(first) != 20 {
		t.Errorf("first log: %d removals, want 20", len(first))
	}
	// (0,8) shares row 0 with (0,0): the 8 row peers of (0,8)
	// include 7 cells already pruned plus (0,0) itself, whose
	// domain still holds 1.  Column and box peers are untouched
	// by the first sweep except none overlap, so the second log
	// holds (0,0), 8 column peers, and 4 box peers: 13 cells.
	if len(second) != 13 {
		t.Errorf("second log: %d removals, want 13", len(second))
	}
	s.undo(second)
	s.undo(first)
	if s.domains != before {
		t.Errorf("domains after paired undos differ from the originals")
	}
}

// Propagate-then-undo is idempotent: repeating the pair any
// number of times leaves the domain map set-equal to the
// original, per cell.
func TestPropagateUndoIdempotent(t *testing.T) {
	s := newState(Samples[1].Grid, NoDeadline, nil)
	before := s.domains
	for i := 0; i < 3; i++ {
		s.undo(s.propagate(2, 3, 7))
		if s.domains != before {
			t.Fatalf("round %d: domains diverged from the originals", i+1)
		}
	}
}

func TestConsistent(t *testing.T) {
	var g Grid
	g[0][0] = 5 // row 0, column 0, box at origin
	g[4][4] = 7
	s := newState(g, NoDeadline, nil)
	cases := []struct {
		row, col, value int
		want            bool
	}{
		{0, 8, 5, false}, // same row as the 5
		{8, 0, 5, false}, // same column as the 5
		{2, 2, 5, false}, // same box as the 5
		{2, 2, 6, true},
		{0, 8, 4, true},
		{4, 0, 7, false}, // same row as the 7
		{3, 3, 7, false}, // same box as the 7
		{3, 3, 2, true},
		{8, 8, 7, true}, // (8,8) shares no group with (4,4)
	}
	for _, tc := range cases {
		if got := s.consistent(tc.row, tc.col, tc.value); got != tc.want {
			t.Errorf("consistent(%d, %d, %d): got %v, want %v",
				tc.row, tc.col, tc.value, got, tc.want)
		}
	}
}

func TestDegree(t *testing.T) {
	// On an empty grid every cell has 8 empty row mates and 8
	// empty column mates: degree 16.
	s := newState(Grid{}, NoDeadline, nil)
	if got := s.degree(4, 4); got != 16 {
		t.Errorf("degree on empty grid: got %d, want 16", got)
	}
	// Assigning cells in the row and column lowers the degree.
	var g Grid
	g[4][0], g[4][1] = 1, 2
	g[0][4] = 3
	s = newState(g, NoDeadline, nil)
	if got := s.degree(4, 4); got != 13 {
		t.Errorf("degree with 3 assigned mates: got %d, want 13", got)
	}
}

func TestWipeout(t *testing.T) {
	s := newState(Grid{}, NoDeadline, nil)
	if s.wipeout() {
		t.Errorf("fresh state reports a wipeout")
	}
	s.domains[3][7] = 0
	if !s.wipeout() {
		t.Errorf("emptied domain on an empty cell not reported as a wipeout")
	}
	// an emptied domain on an assigned cell is not a wipeout
	s.domains[3][7] = fullVset
	s.grid[5][5] = 9
	s.domains[5][5] = 0
	if s.wipeout() {
		t.Errorf("assigned cell's domain counted toward wipeout")
	}
}

func TestComplete(t *testing.T) {
	s := newState(oneStarSolution, NoDeadline, nil)
	if !s.complete() {
		t.Errorf("full grid not reported complete")
	}
	s.grid[8][8] = 0
	if s.complete() {
		t.Errorf("grid with an empty cell reported complete")
	}
}
