package utility

import (
	"math"

	qt "github.com/frankban/quicktest"

	"github.com/cmars/diamondfarm/api"
)

// stubBoard overrides the move oracle of a real board.
type stubBoard struct {
	api.Board
	legal func(p api.Position, dx, dy int) bool
}

func (b *stubBoard) IsValidMove(p api.Position, dx, dy int) bool {
	return b.legal(p, dx, dy)
}

func openBoard(objs ...api.GameObject) *stubBoard {
	return &stubBoard{
		Board: api.Board{Objects: objs},
		legal: func(api.Position, int, int) bool { return true },
	}
}

func pos(x, y int) api.Position {
	return api.Position{X: x, Y: y}
}

func me(at, base api.Position, carried int) api.GameObject {
	return api.GameObject{
		ID:       1,
		Type:     api.TypeBot,
		Position: at,
		Properties: &api.Properties{
			Name:          api.String("me"),
			Diamonds:      api.Int(carried),
			InventorySize: api.Int(5),
			Base:          &base,
		},
	}
}

func rival(id int, name string, at api.Position, carried int, canTackle bool) api.GameObject {
	return api.GameObject{
		ID:       id,
		Type:     api.TypeBot,
		Position: at,
		Properties: &api.Properties{
			Name:      api.String(name),
			Diamonds:  api.Int(carried),
			CanTackle: api.Bool(canTackle),
		},
	}
}

func diamond(id int, at api.Position, points int) api.GameObject {
	return api.GameObject{
		ID:         id,
		Type:       api.TypeDiamond,
		Position:   at,
		Properties: &api.Properties{Points: api.Int(points)},
	}
}

func teleporter(id int, at api.Position, pair string) api.GameObject {
	obj := api.GameObject{ID: id, Type: api.TypeTeleporter, Position: at}
	if pair != "" {
		obj.Properties = &api.Properties{PairID: api.String(pair)}
	}
	return obj
}

func button(id int, at api.Position) api.GameObject {
	return api.GameObject{ID: id, Type: api.TypeDiamondButton, Position: at}
}

func assertNear(c *qt.C, got, want float64) {
	c.Helper()
	c.Assert(math.Abs(got-want) < 1e-9, qt.IsTrue, qt.Commentf("got %v, want %v", got, want))
}
