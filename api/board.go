package api

// Move is a single-step displacement. Exactly one of DX, DY is non-zero,
// or both are zero to hold position.
type Move struct {
	DX, DY int
}

// Hold keeps the bot where it is.
var Hold = Move{}

// CardinalMoves lists the four legal steps in canonical order.
var CardinalMoves = [4]Move{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Direction names the move the way the game engine expects it. The y axis
// grows southward.
func (m Move) Direction() string {
	switch m {
	case Move{1, 0}:
		return "EAST"
	case Move{-1, 0}:
		return "WEST"
	case Move{0, 1}:
		return "SOUTH"
	case Move{0, -1}:
		return "NORTH"
	}
	return "STAY"
}

func (m Move) response() *MoveResponse {
	return &MoveResponse{DX: m.DX, DY: m.DY, Direction: m.Direction()}
}

// Add returns the position reached by applying m to p.
func (p Position) Add(m Move) Position {
	return Position{X: p.X + m.DX, Y: p.Y + m.DY}
}

// IsValidMove reports whether a single cardinal step from p stays on the
// board.
func (b *Board) IsValidMove(p Position, dx, dy int) bool {
	if abs(dx)+abs(dy) != 1 {
		return false
	}
	next := p.Add(Move{dx, dy})
	if next.X < 0 || next.X >= b.Width {
		return false
	}
	if next.Y < 0 || next.Y >= b.Height {
		return false
	}
	return true
}

// GameObjects returns every object on the board in engine order.
func (b *Board) GameObjects() []GameObject {
	return b.Objects
}

// Diamonds returns the diamonds on the board in engine order.
func (b *Board) Diamonds() []GameObject {
	return b.ofType(TypeDiamond)
}

// Bots returns every bot on the board, including the caller's own.
func (b *Board) Bots() []GameObject {
	return b.ofType(TypeBot)
}

// Teleporters returns the teleporters on the board in engine order.
func (b *Board) Teleporters() []GameObject {
	return b.ofType(TypeTeleporter)
}

// DiamondButton returns the first diamond button on the board.
func (b *Board) DiamondButton() (GameObject, bool) {
	for _, obj := range b.Objects {
		if obj.Type == TypeDiamondButton {
			return obj, true
		}
	}
	return GameObject{}, false
}

func (b *Board) ofType(typ string) []GameObject {
	var objs []GameObject
	for _, obj := range b.Objects {
		if obj.Type == typ {
			objs = append(objs, obj)
		}
	}
	return objs
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
