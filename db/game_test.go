package db

import (
	"strings"
	"testing"

	"github.com/cecilialau6776/nurikabe/model"
)

func TestCellEncodingAvoidsSpaces(t *testing.T) {
	size := model.GridSize{Rows: 2, Cols: 3}
	g, err := model.GridFromString(size, "2     ")
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range g.GridString() {
		enc := encodeCell(r)
		if strings.TrimRight(enc, " ") != enc {
			t.Errorf("encodeCell(%q) = %q ends in a space", r, enc)
		}
		if dec := decodeCell(enc); dec != string(r) {
			t.Errorf("decodeCell(encodeCell(%q)) = %q", r, dec)
		}
	}
}

func TestDecodeCellStrippedValue(t *testing.T) {
	// a char column hands back "" for a stored space
	if dec := decodeCell(""); dec != " " {
		t.Errorf("decodeCell(\"\") = %q, want space", dec)
	}
	if dec := decodeCell("-"); dec != " " {
		t.Errorf("decodeCell(\"-\") = %q, want space", dec)
	}
}

// A fresh game grid must survive the store/retrieve cycle even when the
// database strips trailing spaces from every cell value.
func TestGameGridSurvivesCharStripping(t *testing.T) {
	size := model.GridSize{Rows: 2, Cols: 3}
	g, err := model.GridFromString(size, "2 X. 5")
	if err != nil {
		t.Fatal(err)
	}

	var gridstr strings.Builder
	for _, r := range g.GridString() {
		stored := strings.TrimRight(encodeCell(r), " ")
		gridstr.WriteString(decodeCell(stored))
	}

	back, err := model.GridFromString(size, gridstr.String())
	if err != nil {
		t.Fatalf("GridFromString after round trip: %v", err)
	}
	if back.GridString() != g.GridString() {
		t.Errorf("round trip changed the grid: %q -> %q",
			g.GridString(), back.GridString())
	}
}
