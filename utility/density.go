package utility

import (
	"math"

	"github.com/cmars/diamondfarm/api"
)

// Density is the points-per-step value of walking from from to a diamond.
// Diamonds with no or zero points are worth nothing; standing on one is
// infinitely good.
func Density(diamond api.GameObject, from api.Position) float64 {
	p := diamond.Properties
	if p == nil || p.Points == nil || *p.Points == 0 {
		return 0
	}
	steps := StepsNeeded(from, diamond.Position)
	if steps == 0 {
		return math.Inf(1)
	}
	return float64(*p.Points) / float64(steps)
}

// BestDensityGoal compares the densest diamond reachable on foot with the
// densest one reachable through route, and returns where to walk: the diamond
// itself, or the route's entry teleporter. Walking wins ties.
func BestDensityGoal(diamonds []api.GameObject, from api.Position, route TeleportRoute) (api.Position, bool) {
	if len(diamonds) == 0 {
		return api.Position{}, false
	}

	bestDirect := -1.0
	var directGoal *api.Position
	for i := range diamonds {
		if d := Density(diamonds[i], from); d > bestDirect {
			bestDirect = d
			directGoal = &diamonds[i].Position
		}
	}

	bestTeleport := -1.0
	var teleportGoal *api.Position
	if route.Usable() {
		for _, diamond := range diamonds {
			p := diamond.Properties
			if p == nil || p.Points == nil {
				continue
			}
			steps := route.EntryDistance + 1 + StepsNeeded(route.Exit.Position, diamond.Position)
			d := math.Inf(1)
			if steps != 0 {
				d = float64(*p.Points) / float64(steps)
			}
			if d > bestTeleport {
				bestTeleport = d
				teleportGoal = &route.Entry.Position
			}
		}
	}

	switch {
	case directGoal == nil && teleportGoal == nil:
		return api.Position{}, false
	case directGoal == nil:
		return *teleportGoal, true
	case teleportGoal == nil:
		return *directGoal, true
	case bestDirect >= bestTeleport:
		return *directGoal, true
	}
	return *teleportGoal, true
}
