package model

import "errors"

var ErrSizeMismatch = errors.New("working and solution grids differ in size")

// ToggleResult tells the caller what a toggle did, in place of a queued
// state-change event.
type ToggleResult int

const (
	// ToggleNoChange means the target was a clue cell; nothing moved.
	ToggleNoChange ToggleResult = iota
	ToggleChanged
	// ToggleWon means this toggle completed the puzzle. It fires at most
	// once per session.
	ToggleWon
)

// PuzzleSession pairs the player's working grid with the fixed solution it
// must reproduce. The solution grid is never written after construction.
type PuzzleSession struct {
	Working  *Grid
	solution *Grid
	won      bool
}

func NewPuzzleSession(working, solution *Grid) (*PuzzleSession, error) {
	if working.Size != solution.Size {
		return nil, ErrSizeMismatch
	}
	return &PuzzleSession{
		Working:  working,
		solution: solution,
		won:      working.Check(solution),
	}, nil
}

// Toggle advances the cell at (row, col) through the Blank/River/Island
// cycle and re-checks the grid. Clue cells are left alone. Coordinates are
// clamped onto the grid the same way Get clamps reads, so the write lands
// on the cell the read saw.
func (s *PuzzleSession) Toggle(row, col int) ToggleResult {
	row = clamp(row, 0, s.Working.Size.Rows-1)
	col = clamp(col, 0, s.Working.Size.Cols-1)
	cur := s.Working.Get(row, col)
	if cur.IsValue() {
		return ToggleNoChange
	}
	s.Working.Set(row, col, cur.Next())
	if s.Working.Check(s.solution) && !s.won {
		s.won = true
		return ToggleWon
	}
	return ToggleChanged
}

// Reset forces every player cell back to Blank, leaving clue cells in place.
func (s *PuzzleSession) Reset() {
	for row := 0; row < s.Working.Size.Rows; row++ {
		for col := 0; col < s.Working.Size.Cols; col++ {
			if !s.Working.Get(row, col).IsValue() {
				s.Working.Set(row, col, Blank)
			}
		}
	}
}

// IsWon re-runs the full-grid check against the solution.
func (s *PuzzleSession) IsWon() bool {
	return s.Working.Check(s.solution)
}
