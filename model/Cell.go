package model

import "fmt"

// CellState is the value of a single grid cell. A numeric clue n (1-9) is
// stored as CellState(n), so the integer value doubles as the index of the
// tile used to draw the cell.
type CellState int8

const (
	Blank  CellState = 0
	Island CellState = 10
	River  CellState = 11
)

// Value returns the fixed clue state for an island of size n.
func Value(n int) CellState {
	return CellState(n)
}

// IsValue reports whether c is a fixed numeric clue. Clue cells are never
// player-editable.
func (c CellState) IsValue() bool {
	return c >= 1 && c <= 9
}

// Next is the player-toggle transition: Blank -> River -> Island -> Blank.
// Clue cells are a fixed point.
func (c CellState) Next() CellState {
	switch c {
	case Blank:
		return River
	case River:
		return Island
	case Island:
		return Blank
	}
	return c
}

// IsSame is the per-cell win predicate. Only the land/water partition
// matters: Blank, Island and clue cells all match anything except River,
// and River matches only River.
func (c CellState) IsSame(other CellState) bool {
	if c == River {
		return other == River
	}
	return other != River
}

// TileIndex maps a state to its tile in the sprite sheet.
func (c CellState) TileIndex() int {
	return int(c)
}

// Rune renders a state as one character: space for Blank, '.' for Island,
// 'X' for River, the ASCII digit for a clue.
func (c CellState) Rune() rune {
	switch c {
	case Blank:
		return ' '
	case Island:
		return '.'
	case River:
		return 'X'
	}
	return rune('0' + c)
}

// CellFromRune is the inverse of Rune, used when reading a squashed grid
// back out of storage. Lowercase 'x' is accepted for River.
func CellFromRune(r rune) (CellState, error) {
	switch {
	case r == ' ':
		return Blank, nil
	case r == '.':
		return Island, nil
	case r == 'X' || r == 'x':
		return River, nil
	case r >= '1' && r <= '9':
		return CellState(r - '0'), nil
	}
	return Blank, fmt.Errorf("no cell state for %q", r)
}
