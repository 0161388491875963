package service

import (
	"errors"
	"log"

	"github.com/cecilialau6776/nurikabe/model"
)

// Store is the slice of the db session the game service needs.
type Store interface {
	PuzzleGetById(id string) (model.Puzzle, error)
	GameCreate(g *model.Game) (string, error)
	GameGetById(id string) (model.Game, error)
	GameUpdate(g model.Game) (model.Game, error)
}

type GameService struct {
	store Store
}

// GameMutation is a player intent forwarded from the presentation layer:
// toggle one cell or reset the whole working grid.
type GameMutation struct {
	Id      string
	Version int
	Op      string // "toggle" or "reset"
	Row     int
	Col     int
}

// GameState is the squashed game snapshot sent back to clients.
type GameState struct {
	Id       string
	PuzzleId string
	Version  int
	Grid     string
	Won      bool
	// Result reports what the mutation did: "won" exactly on the toggle
	// that completes the puzzle, otherwise "changed", "none" or "stale".
	Result string
}

const (
	OpGet    = "get"
	OpToggle = "toggle"
	OpReset  = "reset"
)

var (
	ErrUnknownOp   = errors.New("unknown game operation")
	ErrOutOfBounds = errors.New("cell coordinates outside grid")
)

func GameServiceNew(store Store) (out *GameService) {
	return &GameService{store}
}

func stateOf(g *model.Game, result string) *GameState {
	return &GameState{
		Id:       g.Id,
		PuzzleId: g.PuzzleId,
		Version:  g.Version,
		Grid:     g.Grid.GridString(),
		Won:      g.Won,
		Result:   result,
	}
}

// Start creates a fresh game for a puzzle, with every player cell Blank.
func (s *GameService) Start(puzzleId string) (out *GameState, err error) {
	p, err := s.store.PuzzleGetById(puzzleId)
	if err != nil {
		return out, err
	}
	g := model.Game{
		PuzzleId: p.Id,
		Version:  1,
		Grid:     p.NewWorkingGrid(),
	}
	g.Id, err = s.store.GameCreate(&g)
	if err != nil {
		return out, err
	}
	return stateOf(&g, "none"), nil
}

func (s *GameService) Get(id string) (out *GameState, err error) {
	g, err := s.store.GameGetById(id)
	if err != nil {
		return out, err
	}
	return stateOf(&g, "none"), nil
}

// Apply runs one mutation against the stored game and persists the result.
func (s *GameService) Apply(u *GameMutation) (out *GameState, err error) {
	g, err := s.store.GameGetById(u.Id)
	if err != nil {
		return out, err
	}

	// subscribing clients ask for the current state first
	if u.Op == "" || u.Op == OpGet {
		return stateOf(&g, "none"), nil
	}

	// only accept mutations at least as new as the stored game
	if u.Version != 0 && u.Version < g.Version {
		return stateOf(&g, "stale"), nil
	}

	p, err := s.store.PuzzleGetById(g.PuzzleId)
	if err != nil {
		return out, err
	}
	sess, err := model.NewPuzzleSession(g.Grid, p.Solution)
	if err != nil {
		return out, err
	}

	result := "changed"
	switch u.Op {
	case OpToggle:
		if u.Row < 0 || u.Row >= g.Grid.Size.Rows ||
			u.Col < 0 || u.Col >= g.Grid.Size.Cols {
			return out, ErrOutOfBounds
		}
		switch sess.Toggle(u.Row, u.Col) {
		case model.ToggleNoChange:
			return stateOf(&g, "none"), nil
		case model.ToggleWon:
			// the won flag latches; only the first winning toggle
			// reports it
			if !g.Won {
				result = "won"
				g.Won = true
			}
		}
	case OpReset:
		sess.Reset()
	default:
		return out, ErrUnknownOp
	}

	g.Version++
	g, err = s.store.GameUpdate(g)
	if err != nil {
		return out, err
	}
	log.Printf("game %s: %s -> version %d won %t\n", g.Id, u.Op, g.Version, g.Won)
	return stateOf(&g, result), nil
}
