package formats

import (
	"github.com/cecilialau6776/nurikabe/model"
)

// Format parses a text block into a grid and renders a grid back out.
type Format interface {
	Parse(data []byte) (g *model.Grid, err error)
	Render(g *model.Grid) (data []byte, err error)
}
