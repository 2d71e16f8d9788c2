package utility

import (
	"github.com/cmars/diamondfarm/api"
	"github.com/cmars/diamondfarm/config"
)

// Candidates lists the objectives worth scoring for self: its base always,
// the diamonds while it has room, the diamond button when there is one, and
// rivals carrying diamonds when self can tackle them.
func Candidates(cfg config.Config, self api.GameObject, board Board) []Candidate {
	var cands []Candidate
	if base, ok := BaseOf(self); ok {
		cands = append(cands, Candidate{Type: TargetBase, Object: baseObject(base)})
	}

	if DiamondsCarried(self) < InventorySize(self, cfg.Thresholds.MaxInventoryDefault) {
		for _, diamond := range board.Diamonds() {
			cands = append(cands, Candidate{Type: TargetDiamond, Object: diamond})
		}
	}

	if buttons := objectsOfType(board, api.TypeDiamondButton); len(buttons) > 0 {
		cands = append(cands, Candidate{Type: TargetDiamondButton, Object: buttons[0]})
	}

	if CanTackle(self) {
		for _, rival := range board.Bots() {
			if IsRival(self, rival) && DiamondsCarried(rival) > 0 {
				cands = append(cands, Candidate{Type: TargetEnemy, Object: rival})
			}
		}
	}
	return cands
}

// FindBest scores every candidate objective, on foot and through the nearest
// teleporter where that may pay off, and returns the best score. The first
// of equally good scores wins. It reports false when there is nothing to
// pursue.
func FindBest(cfg config.Config, self api.GameObject, board Board, committed *Score) (Score, bool) {
	cands := Candidates(cfg, self, board)
	if len(cands) == 0 {
		return Score{}, false
	}

	t := cfg.Thresholds
	here := self.Position
	carried := DiamondsCarried(self)
	nearlyFull := float64(carried) >= float64(InventorySize(self, t.MaxInventoryDefault))*t.ConsiderTPPathUrgentBaseInventoryRatio
	route := RouteTeleporters(objectsOfType(board, api.TypeTeleporter), here)

	var best Score
	found := false
	consider := func(s Score) {
		if !found || s.Total > best.Total {
			best, found = s, true
		}
	}

	for _, cand := range cands {
		target := cand.Object.Position
		direct := StepsNeeded(here, target)
		consider(ScoreCandidate(cfg, self, board, cand, Path{Immediate: target, Distance: direct}, committed))

		// Tackling is decided locally and the button is only ever walked to.
		if cand.Type == TargetEnemy || cand.Type == TargetDiamondButton || !route.Usable() {
			continue
		}
		viaTeleporter := route.EntryDistance + 1 + StepsNeeded(route.Exit.Position, target)
		shorter := float64(viaTeleporter) < float64(direct)*t.ConsiderTPPathDistanceFactor
		if !shorter && !(cand.Type == TargetBase && nearlyFull) {
			continue
		}
		consider(ScoreCandidate(cfg, self, board, cand, Path{
			Immediate:     route.Entry.Position,
			Distance:      viaTeleporter,
			ViaTeleporter: true,
		}, committed))
	}
	return best, found
}
