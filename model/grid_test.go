package model

import "testing"

func gridOf(t *testing.T, size GridSize, s string) *Grid {
	t.Helper()
	g, err := GridFromString(size, s)
	if err != nil {
		t.Fatalf("GridFromString(%q): %v", s, err)
	}
	return g
}

func TestCheckLandEquivalence(t *testing.T) {
	size := GridSize{Rows: 2, Cols: 3}
	solution := gridOf(t, size, "1x.xx1")

	cases := []struct {
		name    string
		working string
		want    bool
	}{
		{"exact labels", "1x.xx1", true},
		{"islands for clues", ".x.xx.", true},
		{"blanks for land", " x xx ", true},
		{"mixed land labels", "3x xx.", true},
		{"missing water", "1..xx1", false},
		{"extra water", "1xxxx1", false},
		{"all blank", "      ", false},
	}
	for _, tc := range cases {
		working := gridOf(t, size, tc.working)
		if got := working.Check(solution); got != tc.want {
			t.Errorf("%s: Check = %t, want %t", tc.name, got, tc.want)
		}
	}
}

func TestCheckSizeMismatch(t *testing.T) {
	a := NewGrid(GridSize{Rows: 2, Cols: 3})
	b := NewGrid(GridSize{Rows: 3, Cols: 2})
	if a.Check(b) {
		t.Errorf("grids of different sizes should never match")
	}
	// same cell count is not enough either
	c := NewGrid(GridSize{Rows: 1, Cols: 6})
	if a.Check(c) {
		t.Errorf("2x3 should not match 1x6")
	}
}

func TestGetClamps(t *testing.T) {
	size := GridSize{Rows: 2, Cols: 3}
	g := gridOf(t, size, "12345X")

	cases := []struct {
		row, col int
		want     CellState
	}{
		{0, 0, Value(1)},
		{1, 2, River},
		{5, 2, River},   // row clamped to 1
		{1, 9, River},   // col clamped to 2
		{-1, -1, Value(1)},
		{9, 9, River},
	}
	for _, tc := range cases {
		if got := g.Get(tc.row, tc.col); got != tc.want {
			t.Errorf("Get(%d,%d) = %q, want %q", tc.row, tc.col, got.Rune(), tc.want.Rune())
		}
	}
}

func TestSetOutOfRangePanics(t *testing.T) {
	g := NewGrid(GridSize{Rows: 2, Cols: 3})
	defer func() {
		if recover() == nil {
			t.Errorf("Set outside the grid should panic")
		}
	}()
	g.Set(2, 0, River)
}

func TestGridStringRoundTrip(t *testing.T) {
	size := GridSize{Rows: 2, Cols: 3}
	in := "2X. X "
	g := gridOf(t, size, in)
	if got := g.GridString(); got != in {
		t.Errorf("GridString = %q, want %q", got, in)
	}

	if _, err := GridFromString(size, "too short"); err == nil {
		t.Errorf("wrong-length grid string should fail")
	}
}
