package utility

import (
	"strconv"

	"github.com/cmars/diamondfarm/api"
)

// Board is the read-only snapshot the bot decides on. *api.Board satisfies
// it.
type Board interface {
	Diamonds() []api.GameObject
	Bots() []api.GameObject
	GameObjects() []api.GameObject
	IsValidMove(p api.Position, dx, dy int) bool
}

// The accessors below project optional engine properties into plain values.
// Each documents the value used when the engine did not send the field.

// DiamondsCarried defaults to 0.
func DiamondsCarried(obj api.GameObject) int {
	if p := obj.Properties; p != nil && p.Diamonds != nil && *p.Diamonds > 0 {
		return *p.Diamonds
	}
	return 0
}

// InventorySize defaults to def.
func InventorySize(obj api.GameObject, def int) int {
	if p := obj.Properties; p != nil && p.InventorySize != nil {
		return *p.InventorySize
	}
	return def
}

// CanTackle defaults to false.
func CanTackle(obj api.GameObject) bool {
	if p := obj.Properties; p != nil && p.CanTackle != nil {
		return *p.CanTackle
	}
	return false
}

// Points defaults to 1.
func Points(obj api.GameObject) int {
	if p := obj.Properties; p != nil && p.Points != nil {
		return *p.Points
	}
	return 1
}

// PairID defaults to "".
func PairID(obj api.GameObject) string {
	if p := obj.Properties; p != nil && p.PairID != nil {
		return *p.PairID
	}
	return ""
}

// Name defaults to "".
func Name(obj api.GameObject) string {
	if p := obj.Properties; p != nil && p.Name != nil {
		return *p.Name
	}
	return ""
}

// BaseOf reports the home base of a bot, if it has been assigned one.
func BaseOf(obj api.GameObject) (api.Position, bool) {
	if p := obj.Properties; p != nil && p.Base != nil {
		return *p.Base, true
	}
	return api.Position{}, false
}

// MillisecondsLeft reports the remaining time budget of a bot. A zero budget
// is treated as unknown; a negative one is overdue.
func MillisecondsLeft(obj api.GameObject) (int, bool) {
	if p := obj.Properties; p != nil && p.MillisecondsLeft != nil && *p.MillisecondsLeft != 0 {
		return *p.MillisecondsLeft, true
	}
	return 0, false
}

// IsRival reports whether other is a bot distinct from self. Bots without
// properties cannot be told apart and are ignored.
func IsRival(self, other api.GameObject) bool {
	return other.Properties != nil && Name(self) != Name(other)
}

// baseObject synthesizes a game object for a base so it can be scored like
// any other candidate.
func baseObject(base api.Position) api.GameObject {
	return api.GameObject{ID: api.BaseObjectID, Position: base, Type: api.TypeBase}
}

func objectsOfType(board Board, typ string) []api.GameObject {
	var objs []api.GameObject
	for _, obj := range board.GameObjects() {
		if obj.Type == typ {
			objs = append(objs, obj)
		}
	}
	return objs
}

func idString(obj api.GameObject) string {
	return strconv.Itoa(obj.ID)
}
