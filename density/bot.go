// Package density implements a density-first bot: it walks to whichever
// diamond yields the most points per step, on foot or through a teleporter,
// and heads home early rather than carrying a full load around.
package density

import (
	"fmt"
	"math/rand"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/cmars/diamondfarm/api"
	"github.com/cmars/diamondfarm/config"
	"github.com/cmars/diamondfarm/logging"
	"github.com/cmars/diamondfarm/utility"
)

// Carrying this many diamonds is enough risk; bank them.
const returnAt = 3

// Fewer diamonds than this left on the board makes the button attractive.
const scarceDiamonds = 3

// Head home when the clock gets this close to the walk back.
const (
	msPerStep     = 1000
	msSafetyDelay = 2000
	msEndgame     = 8000
)

// New returns a constructor of density bots, suitable for api.Router.
func New(cfg config.Config, logger log.Logger) func() api.Bot {
	return func() api.Bot {
		return &bot{cfg: cfg, logger: logger}
	}
}

type bot struct {
	cfg    config.Config
	logger log.Logger

	started bool
	rng     *rand.Rand
	stuck   *utility.StuckDetector
	goal    *api.Position
}

func (b *bot) Start(st *api.State) error {
	if b.started {
		return fmt.Errorf("cannot start a game in progress")
	}
	b.started = true
	b.rng = utility.NewRand()
	b.stuck = utility.NewStuckDetector(b.cfg.Thresholds.StuckThreshold)
	b.goal = nil
	return nil
}

func (b *bot) Move(st *api.State) (api.Move, error) {
	if !b.started {
		return api.Hold, fmt.Errorf("game not started")
	}
	logger := logging.ForTick(b.logger, st)
	m := b.next(st.Me, &st.Board)
	_ = level.Debug(logger).Log("msg", "density move", "dir", m.Direction())
	return m, nil
}

func (b *bot) End(st *api.State) error {
	if !b.started {
		return fmt.Errorf("game not started")
	}
	b.started = false
	return nil
}

func (b *bot) next(self api.GameObject, board *api.Board) api.Move {
	here := self.Position
	base, ok := utility.BaseOf(self)
	if !ok {
		return api.Hold
	}
	if b.stuck.Observe(here) {
		b.goal = nil
		return utility.RandomMove(here, board, b.rng)
	}

	route := utility.RouteTeleporters(board.Teleporters(), here)
	diamonds := board.Diamonds()
	carried := utility.DiamondsCarried(self)
	capacity := utility.InventorySize(self, b.cfg.Thresholds.MaxInventoryDefault)

	switch {
	case carried >= returnAt || b.outOfTime(self, base):
		b.goal = b.homeward(here, base, route)
	case b.pressButton(here, board, diamonds):
		btn, _ := board.DiamondButton()
		b.goal = &btn.Position
	case b.goal == nil || !onAny(*b.goal, diamonds):
		b.goal = nil
		if goal, ok := utility.BestDensityGoal(diamonds, here, route); ok {
			b.goal = &goal
		}
	case passingBase(here, base, carried):
		b.goal = &base
	}

	// Walking home with room to spare, grab a diamond right next to us.
	if b.goal != nil && *b.goal == base && carried < capacity {
		for _, d := range diamonds {
			if utility.StepsNeeded(here, d.Position) == 1 {
				b.goal = &d.Position
				break
			}
		}
	}

	if m, ok := b.chase(self, board); ok {
		return m
	}
	if b.goal == nil || *b.goal == here {
		b.goal = nil
		return api.Hold
	}
	return utility.Step(here, *b.goal, board)
}

// outOfTime reports whether the walk home should start now.
func (b *bot) outOfTime(self api.GameObject, base api.Position) bool {
	ms, ok := utility.MillisecondsLeft(self)
	if !ok {
		return false
	}
	return ms < msPerStep*utility.StepsNeeded(base, self.Position)+msSafetyDelay && ms < msEndgame
}

// homeward returns the entry teleporter when it shortens the way home, and
// the base otherwise.
func (b *bot) homeward(here, base api.Position, route utility.TeleportRoute) *api.Position {
	if route.Usable() && route.EntryDistance != 0 {
		viaTeleporter := route.EntryDistance + utility.StepsNeeded(route.Exit.Position, base)
		if viaTeleporter < utility.StepsNeeded(here, base) {
			return &route.Entry.Position
		}
	}
	return &base
}

// passingBase reports whether the base is close enough to bank what we carry
// on the way past.
func passingBase(here, base api.Position, carried int) bool {
	d := utility.StepsNeeded(here, base)
	return (d == 1 && carried > 0) || (d == 2 && carried > 2)
}

// pressButton reports whether to divert to the diamond button: the board is
// running dry and the button is closer than the current goal.
func (b *bot) pressButton(here api.Position, board *api.Board, diamonds []api.GameObject) bool {
	btn, ok := board.DiamondButton()
	if !ok || b.goal == nil || len(diamonds) >= scarceDiamonds {
		return false
	}
	return utility.StepsNeeded(here, *b.goal) > utility.StepsNeeded(here, btn.Position)
}

// chase steps toward a rival worth tackling: one right next to us, or a
// loaded one two steps away.
func (b *bot) chase(self api.GameObject, board *api.Board) (api.Move, bool) {
	if !utility.CanTackle(self) {
		return api.Hold, false
	}
	for _, rival := range board.Bots() {
		if !utility.IsRival(self, rival) {
			continue
		}
		d := utility.StepsNeeded(self.Position, rival.Position)
		if d == 1 || (d < 3 && utility.DiamondsCarried(rival) > 2) {
			return utility.Step(self.Position, rival.Position, board), true
		}
	}
	return api.Hold, false
}

func onAny(p api.Position, objs []api.GameObject) bool {
	for _, obj := range objs {
		if obj.Position == p {
			return true
		}
	}
	return false
}
