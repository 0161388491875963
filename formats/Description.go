package formats

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cecilialau6776/nurikabe/model"
)

var (
	ErrNoDimensions = errors.New("puzzle description: missing dimension line")
	ErrClueBounds   = errors.New("puzzle description: clue outside grid")
	ErrClueSize     = errors.New("puzzle description: clue size not in 1-9")
)

type description struct {
}

// NewDescription returns the puzzle description format: an ignored header
// line, a "cols,rows" dimension line, two more ignored lines, then one
// "size,row,col" clue per line with 1-based coordinates.
func NewDescription() Format {
	return &description{}
}

func (c *description) Parse(data []byte) (g *model.Grid, err error) {
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	if len(lines) < 2 {
		return nil, ErrNoDimensions
	}

	dims := strings.Split(lines[1], ",")
	if len(dims) != 2 {
		return nil, ErrNoDimensions
	}
	cols, err := strconv.Atoi(strings.TrimSpace(dims[0]))
	if err != nil {
		return nil, fmt.Errorf("puzzle description: bad column count: %v", err)
	}
	rows, err := strconv.Atoi(strings.TrimSpace(dims[1]))
	if err != nil {
		return nil, fmt.Errorf("puzzle description: bad row count: %v", err)
	}
	if cols < 0 || rows < 0 {
		return nil, ErrNoDimensions
	}

	g = model.NewGrid(model.GridSize{Rows: rows, Cols: cols})

	// Two separator lines follow the dimensions; clues start after them.
	for n, line := range lines {
		if n < 4 || strings.TrimSpace(line) == "" {
			continue
		}
		numbers := strings.Split(line, ",")
		if len(numbers) != 3 {
			return nil, fmt.Errorf("puzzle description: bad clue line %q", line)
		}
		var size, row, col int
		if size, err = strconv.Atoi(strings.TrimSpace(numbers[0])); err != nil {
			return nil, fmt.Errorf("puzzle description: bad clue size: %v", err)
		}
		if row, err = strconv.Atoi(strings.TrimSpace(numbers[1])); err != nil {
			return nil, fmt.Errorf("puzzle description: bad clue row: %v", err)
		}
		if col, err = strconv.Atoi(strings.TrimSpace(numbers[2])); err != nil {
			return nil, fmt.Errorf("puzzle description: bad clue col: %v", err)
		}
		// Clue values above 9 have no single-rune rendering, so they are
		// rejected here instead of truncated later.
		if size < 1 || size > 9 {
			return nil, ErrClueSize
		}
		if row < 1 || row > rows || col < 1 || col > cols {
			return nil, ErrClueBounds
		}
		g.Set(row-1, col-1, model.Value(size))
	}
	return g, nil
}

func (c *description) Render(g *model.Grid) (data []byte, err error) {
	var b strings.Builder
	fmt.Fprintf(&b, "#\n%d,%d\n\n\n", g.Size.Cols, g.Size.Rows)
	for row := 0; row < g.Size.Rows; row++ {
		for col := 0; col < g.Size.Cols; col++ {
			if state := g.Get(row, col); state.IsValue() {
				fmt.Fprintf(&b, "%d,%d,%d\n", state.TileIndex(), row+1, col+1)
			}
		}
	}
	return []byte(b.String()), nil
}
