package utility

import (
	"fmt"
	"math/rand"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/cmars/diamondfarm/api"
	"github.com/cmars/diamondfarm/config"
	"github.com/cmars/diamondfarm/logging"
)

// Agent holds the continuation state of one bot across ticks. It is not safe
// for concurrent use; the engine asks it for one move at a time.
type Agent struct {
	cfg    config.Config
	logger log.Logger
	rng    *rand.Rand

	stuck     *StuckDetector
	committed *Score
}

// NewAgent returns an agent tuned by cfg. rng drives the stuck escape.
func NewAgent(cfg config.Config, logger log.Logger, rng *rand.Rand) *Agent {
	return &Agent{
		cfg:    cfg,
		logger: logger,
		rng:    rng,
		stuck:  NewStuckDetector(cfg.Thresholds.StuckThreshold),
	}
}

// Committed returns the objective the agent is currently committed to.
func (a *Agent) Committed() (Score, bool) {
	if a.committed == nil {
		return Score{}, false
	}
	return *a.committed, true
}

// NextMove decides this tick's move for self on board.
func (a *Agent) NextMove(self api.GameObject, board Board) api.Move {
	here := self.Position
	if _, ok := BaseOf(self); !ok {
		return api.Hold
	}

	if a.stuck.Observe(here) {
		a.committed = nil
		m := RandomMove(here, board, a.rng)
		_ = level.Info(a.logger).Log("msg", "stuck, escaping", "repeats", a.stuck.Count(), "dir", m.Direction())
		return m
	}

	best, ok := FindBest(a.cfg, self, board, a.committed)
	if !ok {
		a.committed = nil
		return api.Hold
	}
	a.committed = &best
	_ = level.Debug(a.logger).Log(
		"msg", "target chosen",
		"type", best.TargetType,
		"tx", best.ImmediateTarget.X,
		"ty", best.ImmediateTarget.Y,
		"total", best.Total,
	)

	if here == best.ImmediateTarget {
		a.committed = nil
		return api.Hold
	}
	return Step(here, best.ImmediateTarget, board)
}

// New returns a constructor of utility bots sharing cfg, suitable for
// api.Router.
func New(cfg config.Config, logger log.Logger) func() api.Bot {
	return func() api.Bot {
		return &bot{cfg: cfg, logger: logger}
	}
}

type bot struct {
	cfg    config.Config
	logger log.Logger
	agent  *Agent
}

func (b *bot) Start(st *api.State) error {
	if b.agent != nil {
		return fmt.Errorf("cannot start a game in progress")
	}
	b.agent = NewAgent(b.cfg, b.logger, NewRand())
	return nil
}

func (b *bot) Move(st *api.State) (api.Move, error) {
	if b.agent == nil {
		return api.Hold, fmt.Errorf("game not started")
	}
	b.agent.logger = logging.ForTick(b.logger, st)
	return b.agent.NextMove(st.Me, &st.Board), nil
}

func (b *bot) End(st *api.State) error {
	if b.agent == nil {
		return fmt.Errorf("game not started")
	}
	b.agent = nil
	return nil
}
