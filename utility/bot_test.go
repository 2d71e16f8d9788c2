package utility

import (
	"math/rand"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/go-kit/log"

	"github.com/cmars/diamondfarm/api"
	"github.com/cmars/diamondfarm/config"
)

func newTestAgent() *Agent {
	return NewAgent(config.Defaults(), log.NewNopLogger(), rand.New(rand.NewSource(7)))
}

func TestAgentHoldsWithoutBase(t *testing.T) {
	c := qt.New(t)
	a := newTestAgent()
	self := api.GameObject{ID: 1, Type: api.TypeBot, Position: pos(1, 1), Properties: &api.Properties{}}
	c.Assert(a.NextMove(self, openBoard(diamond(10, pos(1, 4), 1))), qt.Equals, api.Hold)
	_, committed := a.Committed()
	c.Assert(committed, qt.IsFalse)
}

func TestAgentHeadsForDiamond(t *testing.T) {
	c := qt.New(t)
	a := newTestAgent()
	board := &api.Board{Width: 10, Height: 10, Objects: []api.GameObject{diamond(10, pos(0, 3), 3)}}
	m := a.NextMove(me(pos(0, 0), pos(5, 5), 0), board)
	c.Assert(m, qt.Equals, api.Move{DY: 1})

	committed, ok := a.Committed()
	c.Assert(ok, qt.IsTrue)
	c.Assert(committed.TargetType, qt.Equals, TargetDiamond)
	c.Assert(committed.ImmediateTarget, qt.Equals, pos(0, 3))
}

func TestAgentFullHeadsHome(t *testing.T) {
	c := qt.New(t)
	a := newTestAgent()
	m := a.NextMove(me(pos(0, 0), pos(0, -2), 5), openBoard(diamond(10, pos(1, 0), 1)))
	c.Assert(m, qt.Equals, api.Move{DY: -1})
}

func TestAgentTakesTeleporter(t *testing.T) {
	c := qt.New(t)
	a := newTestAgent()
	board := &api.Board{Width: 15, Height: 15, Objects: []api.GameObject{
		teleporter(10, pos(10, 0), "11"),
		teleporter(11, pos(10, 10), "10"),
		diamond(20, pos(10, 10), 10),
		diamond(21, pos(1, 0), 1),
	}}
	c.Assert(a.NextMove(me(pos(9, 0), pos(0, 0), 0), board), qt.Equals, api.Move{DX: 1})
}

func TestAgentArrivedClearsCommitment(t *testing.T) {
	c := qt.New(t)
	a := newTestAgent()
	// Standing on an empty base with nothing else to do.
	c.Assert(a.NextMove(me(pos(3, 3), pos(3, 3), 0), openBoard()), qt.Equals, api.Hold)
	_, ok := a.Committed()
	c.Assert(ok, qt.IsFalse)
}

func TestAgentEscapesWhenStuck(t *testing.T) {
	c := qt.New(t)
	a := newTestAgent()
	self := me(pos(2, 2), pos(0, 0), 0)
	board := openBoard(diamond(10, pos(2, 6), 1))

	for i := 0; i < 3; i++ {
		c.Assert(a.NextMove(self, board), qt.Equals, api.Move{DY: 1})
	}
	_, ok := a.Committed()
	c.Assert(ok, qt.IsTrue)

	m := a.NextMove(self, board)
	c.Assert(m, qt.Not(qt.Equals), api.Hold)
	c.Assert(api.CardinalMoves[:], qt.Contains, m)
	_, ok = a.Committed()
	c.Assert(ok, qt.IsFalse)

	// Getting unstuck resumes normal play.
	self.Position = pos(2, 3)
	c.Assert(a.NextMove(self, board), qt.Equals, api.Move{DY: 1})
}

func TestBotLifecycle(t *testing.T) {
	c := qt.New(t)
	b := New(config.Defaults(), log.NewNopLogger())()
	st := &api.State{
		Board: api.Board{ID: 1, Width: 10, Height: 10, Objects: []api.GameObject{diamond(10, pos(0, 3), 3)}},
		Me:    me(pos(0, 0), pos(5, 5), 0),
	}

	_, err := b.Move(st)
	c.Assert(err, qt.ErrorMatches, "game not started")

	c.Assert(b.Start(st), qt.IsNil)
	c.Assert(b.Start(st), qt.ErrorMatches, "cannot start a game in progress")

	m, err := b.Move(st)
	c.Assert(err, qt.IsNil)
	c.Assert(m, qt.Equals, api.Move{DY: 1})

	c.Assert(b.End(st), qt.IsNil)
	_, err = b.Move(st)
	c.Assert(err, qt.ErrorMatches, "game not started")
	c.Assert(b.End(st), qt.ErrorMatches, "game not started")
}
