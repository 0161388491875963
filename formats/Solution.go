package formats

import (
	"errors"
	"strings"

	"github.com/cecilialau6776/nurikabe/model"
)

var (
	ErrEmptySolution  = errors.New("solution: no rows")
	ErrRaggedSolution = errors.New("solution: rows differ in length")
	ErrZeroClue       = errors.New("solution: clue size must be 1-9")
)

type solution struct {
}

// NewSolution returns the solution raster format: one line per row, one
// character per cell. A digit is a clue, 'x' is water, anything else is
// land.
func NewSolution() Format {
	return &solution{}
}

func (c *solution) Parse(data []byte) (g *model.Grid, err error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil, ErrEmptySolution
	}
	lines := strings.Split(text, "\n")

	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(line)
		if len(rows[i]) != len(rows[0]) {
			return nil, ErrRaggedSolution
		}
	}

	g = model.NewGrid(model.GridSize{Rows: len(rows), Cols: len(rows[0])})
	for row, runes := range rows {
		for col, r := range runes {
			switch {
			// a zero-size island is meaningless, and Value(0) would
			// collapse into Blank
			case r == '0':
				return nil, ErrZeroClue
			case r >= '1' && r <= '9':
				g.Set(row, col, model.Value(int(r-'0')))
			case r == 'x':
				g.Set(row, col, model.River)
			default:
				g.Set(row, col, model.Island)
			}
		}
	}
	return g, nil
}

func (c *solution) Render(g *model.Grid) (data []byte, err error) {
	var b strings.Builder
	for row := 0; row < g.Size.Rows; row++ {
		for col := 0; col < g.Size.Cols; col++ {
			switch state := g.Get(row, col); {
			case state.IsValue():
				b.WriteRune(state.Rune())
			case state == model.River:
				b.WriteRune('x')
			default:
				b.WriteRune('.')
			}
		}
		b.WriteRune('\n')
	}
	return []byte(b.String()), nil
}
