package utility

import "github.com/cmars/diamondfarm/api"

// StepsNeeded returns the Manhattan distance between a and b.
func StepsNeeded(a, b api.Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
