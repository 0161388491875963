package model

// Puzzle is a stored puzzle: the clue layout the player starts from, plus
// the target topology the working grid must reproduce.
type Puzzle struct {
	Id       string
	Title    string
	Size     GridSize
	Clues    *Grid
	Solution *Grid
}

// NewWorkingGrid returns the initial working grid for this puzzle: clue
// cells where declared, Blank everywhere else.
func (p *Puzzle) NewWorkingGrid() *Grid {
	return p.Clues.Copy()
}

// Game is one player's in-progress working grid for a puzzle.
type Game struct {
	Id       string
	PuzzleId string
	Version  int
	Won      bool
	Grid     *Grid
}

type PuzzleMetadata struct {
	Id    string
	Title string
	Size  GridSize
}
