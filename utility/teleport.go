package utility

import (
	"math"

	"github.com/cmars/diamondfarm/api"
)

// TeleportRoute is the teleporter shortcut available from a position: walk
// to Entry, get dropped at Exit.
type TeleportRoute struct {
	Entry *api.GameObject
	Exit  *api.GameObject
	// EntryDistance is math.MaxInt when there is no teleporter at all.
	EntryDistance int
}

// Usable reports whether both ends of the route were resolved.
func (r TeleportRoute) Usable() bool {
	return r.Entry != nil && r.Exit != nil
}

// RouteTeleporters picks the teleporter nearest to from as the entry, the
// first in engine order on ties, and resolves its exit. The exit is the
// teleporter whose id matches the entry's pair id; failing that, when there
// are exactly two teleporters, it is the other one. The exit is never the
// entry itself.
func RouteTeleporters(teleporters []api.GameObject, from api.Position) TeleportRoute {
	if len(teleporters) == 0 {
		return TeleportRoute{EntryDistance: math.MaxInt}
	}

	entryAt := 0
	entryDist := StepsNeeded(from, teleporters[0].Position)
	for i := 1; i < len(teleporters); i++ {
		if d := StepsNeeded(from, teleporters[i].Position); d < entryDist {
			entryAt, entryDist = i, d
		}
	}
	entry := &teleporters[entryAt]
	route := TeleportRoute{Entry: entry, EntryDistance: entryDist}

	if pair := PairID(*entry); pair != "" {
		for i := range teleporters {
			if idString(teleporters[i]) == pair && teleporters[i].ID != entry.ID {
				route.Exit = &teleporters[i]
				break
			}
		}
	}
	if route.Exit == nil && len(teleporters) == 2 {
		route.Exit = &teleporters[1-entryAt]
	}
	return route
}
