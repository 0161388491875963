package model

import (
	"fmt"
	"strings"
)

type GridSize struct {
	Rows int
	Cols int
}

// Grid is a fixed-size rectangular board of cells, stored row-major. It is
// never resized after construction.
type Grid struct {
	Size  GridSize
	cells []CellState
}

// NewGrid returns an all-Blank grid of the given size.
func NewGrid(size GridSize) *Grid {
	return &Grid{
		Size:  size,
		cells: make([]CellState, size.Rows*size.Cols),
	}
}

// GridFromString rebuilds a grid from its squashed one-rune-per-cell form.
func GridFromString(size GridSize, s string) (*Grid, error) {
	runes := []rune(s)
	if len(runes) != size.Rows*size.Cols {
		return nil, fmt.Errorf("grid string has %d cells, want %d",
			len(runes), size.Rows*size.Cols)
	}
	g := NewGrid(size)
	for i, r := range runes {
		c, err := CellFromRune(r)
		if err != nil {
			return nil, err
		}
		g.cells[i] = c
	}
	return g, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Get returns the cell at (row, col). Out-of-range coordinates are clamped
// onto the nearest border cell instead of failing; reads never mutate state,
// so a slightly off-grid read is tolerated.
func (g *Grid) Get(row, col int) CellState {
	row = clamp(row, 0, g.Size.Rows-1)
	col = clamp(col, 0, g.Size.Cols-1)
	return g.cells[row*g.Size.Cols+col]
}

// Set overwrites the cell at (row, col). Unlike Get, writes are strict: an
// out-of-range coordinate panics rather than landing on the wrong cell.
func (g *Grid) Set(row, col int, v CellState) {
	if row < 0 || row >= g.Size.Rows || col < 0 || col >= g.Size.Cols {
		panic(fmt.Sprintf("grid: set (%d,%d) outside %dx%d",
			row, col, g.Size.Rows, g.Size.Cols))
	}
	g.cells[row*g.Size.Cols+col] = v
}

// Check reports whether g matches solution under the land/water partition.
// Grids of different sizes never match.
func (g *Grid) Check(solution *Grid) bool {
	if g.Size != solution.Size {
		return false
	}
	for row := 0; row < g.Size.Rows; row++ {
		for col := 0; col < g.Size.Cols; col++ {
			if !g.Get(row, col).IsSame(solution.Get(row, col)) {
				return false
			}
		}
	}
	return true
}

// Copy returns an independent grid with the same cells.
func (g *Grid) Copy() *Grid {
	out := NewGrid(g.Size)
	copy(out.cells, g.cells)
	return out
}

// GridString squashes the grid into one rune per cell, row-major with no
// separators.
func (g *Grid) GridString() string {
	var b strings.Builder
	b.Grow(len(g.cells))
	for _, c := range g.cells {
		b.WriteRune(c.Rune())
	}
	return b.String()
}

func (g *Grid) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d rows and %d cols\n", g.Size.Rows, g.Size.Cols)
	for row := 0; row < g.Size.Rows; row++ {
		for col := 0; col < g.Size.Cols; col++ {
			b.WriteRune(g.Get(row, col).Rune())
		}
		b.WriteRune('\n')
	}
	return b.String()
}
