package utility

import "github.com/cmars/diamondfarm/api"

// StuckDetector counts consecutive ticks spent on the same square.
type StuckDetector struct {
	threshold int
	last      *api.Position
	counter   int
}

// NewStuckDetector returns a detector that reports stuck once the position
// has repeated threshold times in a row.
func NewStuckDetector(threshold int) *StuckDetector {
	return &StuckDetector{threshold: threshold}
}

// Observe records this tick's position and reports whether the bot is stuck.
func (d *StuckDetector) Observe(p api.Position) bool {
	if d.last != nil && *d.last == p {
		d.counter++
	} else {
		d.counter = 0
	}
	d.last = &p
	return d.counter >= d.threshold
}

// Count returns how many consecutive repeats have been seen.
func (d *StuckDetector) Count() int {
	return d.counter
}
