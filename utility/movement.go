package utility

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"

	"github.com/cmars/diamondfarm/api"
)

// Step returns the first legal single step from current toward target. The
// axis with the longer way to go is tried first, then the other axis, then
// the remaining cardinal moves in canonical order. It holds when no move is
// legal.
func Step(current, target api.Position, board Board) api.Move {
	dx, dy := target.X-current.X, target.Y-current.Y
	preferred := make([]api.Move, 0, len(api.CardinalMoves))
	if abs(dx) >= abs(dy) {
		preferred = appendToward(preferred, api.Move{DX: sign(dx)})
		preferred = appendToward(preferred, api.Move{DY: sign(dy)})
	} else {
		preferred = appendToward(preferred, api.Move{DY: sign(dy)})
		preferred = appendToward(preferred, api.Move{DX: sign(dx)})
	}
	for _, m := range api.CardinalMoves {
		if !containsMove(preferred, m) {
			preferred = append(preferred, m)
		}
	}
	for _, m := range preferred {
		if board.IsValidMove(current, m.DX, m.DY) {
			return m
		}
	}
	return api.Hold
}

// RandomMove returns a uniformly random legal move from current, or holds
// when no move is legal.
func RandomMove(current api.Position, board Board, rng *rand.Rand) api.Move {
	moves := api.CardinalMoves
	rng.Shuffle(len(moves), func(i, j int) {
		moves[i], moves[j] = moves[j], moves[i]
	})
	for _, m := range moves {
		if board.IsValidMove(current, m.DX, m.DY) {
			return m
		}
	}
	return api.Hold
}

// NewRand returns a random source seeded from the system's entropy pool,
// falling back to the clock.
func NewRand() *rand.Rand {
	var b [8]byte
	var seed int64
	_, err := crand.Reader.Read(b[:])
	if err != nil {
		seed = time.Now().UTC().UnixNano()
	} else {
		seed, _ = binary.Varint(b[:])
	}
	return rand.New(rand.NewSource(seed))
}

func appendToward(moves []api.Move, m api.Move) []api.Move {
	if m == api.Hold {
		return moves
	}
	return append(moves, m)
}

func containsMove(moves []api.Move, m api.Move) bool {
	for _, have := range moves {
		if have == m {
			return true
		}
	}
	return false
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
