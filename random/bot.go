// Package random implements a bot that wanders: every tick it takes a
// uniformly random legal step. It is a baseline to spar against.
package random

import (
	"fmt"
	"math/rand"

	"github.com/cmars/diamondfarm/api"
	"github.com/cmars/diamondfarm/utility"
)

func New() api.Bot {
	return &bot{}
}

type bot struct {
	rng *rand.Rand
}

func (b *bot) Start(st *api.State) error {
	if b.rng != nil {
		return fmt.Errorf("cannot start a game in progress")
	}
	b.rng = utility.NewRand()
	return nil
}

func (b *bot) Move(st *api.State) (api.Move, error) {
	if b.rng == nil {
		return api.Hold, fmt.Errorf("game not started")
	}
	return utility.RandomMove(st.Me.Position, &st.Board, b.rng), nil
}

func (b *bot) End(st *api.State) error {
	if b.rng == nil {
		return fmt.Errorf("game not started")
	}
	b.rng = nil
	return nil
}
