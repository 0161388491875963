package formats

import (
	"errors"
	"testing"

	"github.com/cecilialau6776/nurikabe/model"
)

func TestSolutionParse(t *testing.T) {
	g, err := NewSolution().Parse([]byte("1x.\nxx1"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g.Size != (model.GridSize{Rows: 2, Cols: 3}) {
		t.Fatalf("size = %+v, want 2x3", g.Size)
	}

	want := [][]model.CellState{
		{model.Value(1), model.River, model.Island},
		{model.River, model.River, model.Value(1)},
	}
	for row := range want {
		for col := range want[row] {
			if got := g.Get(row, col); got != want[row][col] {
				t.Errorf("cell (%d,%d) = %q, want %q",
					row, col, got.Rune(), want[row][col].Rune())
			}
		}
	}
}

func TestSolutionParseTrailingNewline(t *testing.T) {
	g, err := NewSolution().Parse([]byte("1x.\nxx1\n"))
	if err != nil {
		t.Fatalf("Parse with trailing newline: %v", err)
	}
	if g.Size != (model.GridSize{Rows: 2, Cols: 3}) {
		t.Fatalf("size = %+v, want 2x3", g.Size)
	}
}

func TestSolutionParseAnythingElseIsLand(t *testing.T) {
	g, err := NewSolution().Parse([]byte("aX#"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	for col := 0; col < 3; col++ {
		if got := g.Get(0, col); got != model.Island {
			t.Errorf("cell (0,%d) = %q, want Island", col, got.Rune())
		}
	}
}

func TestSolutionParseErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", ErrEmptySolution},
		{"only newlines", "\n\n", ErrEmptySolution},
		{"short row", "1x.\nxx", ErrRaggedSolution},
		{"long row", "1x.\nxx1.", ErrRaggedSolution},
		{"zero clue", "0x.\nxx1", ErrZeroClue},
	}
	for _, tc := range cases {
		_, err := NewSolution().Parse([]byte(tc.in))
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestSolutionRoundTrip(t *testing.T) {
	in := []byte("1x.\nxx1\n")
	f := NewSolution()
	g, err := f.Parse(in)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	data, err := f.Render(g)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if string(data) != string(in) {
		t.Errorf("Render = %q, want %q", data, in)
	}
}
