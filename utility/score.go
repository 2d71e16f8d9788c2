package utility

import (
	"math"

	"github.com/cmars/diamondfarm/api"
	"github.com/cmars/diamondfarm/config"
)

// TargetType names the kind of objective a candidate pursues.
type TargetType string

const (
	TargetBase          TargetType = "base"
	TargetDiamond       TargetType = "diamond"
	TargetEnemy         TargetType = "enemy"
	TargetDiamondButton TargetType = "diamond_button"
)

// Score is the utility breakdown of one way of reaching one objective.
// Total is the sum of the four components, plus the commitment bonus when
// the candidate continues last tick's choice.
type Score struct {
	Total           float64
	DistancePenalty float64
	RewardValue     float64
	RiskPenalty     float64
	UrgencyBonus    float64
	TargetType      TargetType
	// ImmediateTarget is where to walk this tick. It is a teleporter entry
	// when the objective is reached through a teleporter.
	ImmediateTarget api.Position
}

// Candidate is an objective worth scoring.
type Candidate struct {
	Type   TargetType
	Object api.GameObject
}

// Path describes how a candidate is reached.
type Path struct {
	Immediate     api.Position
	Distance      int
	ViaTeleporter bool
}

// Scoring terms that are not part of the tuning.
const (
	rewardEmptyReturn  = -5.0
	rewardSaturated    = -100.0
	rewardUselessChase = -1.0
	rewardEmptyEnemy   = -15.0
	urgencyTackle      = 5.0
	nearFullDampening  = 0.2
	riskPerDiamond     = 0.5
)

// ScoreCandidate computes the utility of reaching cand along path for the
// bot self. It reads board and committed but never modifies them, and equal
// inputs always yield equal scores.
func ScoreCandidate(cfg config.Config, self api.GameObject, board Board, cand Candidate, path Path, committed *Score) Score {
	w, t := cfg.Weights, cfg.Thresholds
	carried := DiamondsCarried(self)
	capacity := InventorySize(self, t.MaxInventoryDefault)

	s := Score{
		TargetType:      cand.Type,
		ImmediateTarget: path.Immediate,
		DistancePenalty: w.Distance * float64(path.Distance),
	}
	if path.ViaTeleporter {
		s.DistancePenalty += w.TeleporterUsageCost
	}

	switch cand.Type {
	case TargetBase:
		if carried > 0 {
			s.RewardValue = w.BaseReturn * math.Pow(float64(carried), 1.5)
			if capacity > 0 {
				s.UrgencyBonus = w.InventoryUrgency * float64(carried) / float64(capacity) * 10
			}
		} else {
			s.RewardValue = rewardEmptyReturn
		}

	case TargetDiamond:
		if carried >= capacity {
			s.RewardValue = rewardSaturated
			break
		}
		points := Points(cand.Object)
		s.RewardValue = w.DiamondValue * float64(points)
		if capacity > 0 {
			space := float64(capacity-carried) / float64(capacity)
			value := 0.1
			if points > 0 {
				value = float64(points) / 5.0
			}
			s.UrgencyBonus = space * 3.0 * value
		}

	case TargetEnemy:
		if cand.Object.Properties == nil {
			break
		}
		loot := DiamondsCarried(cand.Object)
		switch {
		case loot > 0 && CanTackle(self):
			s.RewardValue = w.TackleOpportunity * float64(loot)
			if capacity > 0 && carried+loot <= capacity {
				s.UrgencyBonus = urgencyTackle
			}
		case loot > 0:
			s.RewardValue = rewardUselessChase
		default:
			s.RewardValue = rewardEmptyEnemy
		}

	case TargetDiamondButton:
		s.RewardValue, s.UrgencyBonus = scoreButton(cfg, self, board)
	}

	s.RiskPenalty = riskAt(cfg, self, board, path.Immediate, carried)

	if cand.Type != TargetBase && cand.Type != TargetDiamondButton {
		if carried >= capacity {
			s.RewardValue = rewardSaturated
			s.UrgencyBonus = 0
		} else if float64(carried) >= float64(capacity)*t.ConsiderTPPathUrgentBaseInventoryRatio {
			s.RewardValue *= nearFullDampening
			s.UrgencyBonus *= nearFullDampening
		}
	}

	s.Total = s.RewardValue + s.DistancePenalty + s.RiskPenalty + s.UrgencyBonus
	if committed != nil && committed.ImmediateTarget == path.Immediate && committed.TargetType == cand.Type {
		s.Total += w.CommitmentBonus
	}
	return s
}

// scoreButton values pressing the diamond button, which respawns the
// diamonds. It pays off only when the board is running dry, and never when
// the game is about to end.
func scoreButton(cfg config.Config, self api.GameObject, board Board) (reward, urgency float64) {
	w, t := cfg.Weights, cfg.Thresholds
	remaining := len(board.Diamonds())
	if remaining < t.LowDiamondCountThreshold {
		reward = w.ResetButtonBaseReward
		switch {
		case remaining == 0:
			urgency = w.ResetButtonUrgencyFactor * 3
		case remaining < 2:
			urgency = w.ResetButtonUrgencyFactor * 1.5
		default:
			scarcity := float64(t.LowDiamondCountThreshold-remaining) / float64(t.LowDiamondCountThreshold)
			urgency = w.ResetButtonUrgencyFactor * scarcity
		}
	} else {
		reward = w.ResetPenaltyDiamondsOk
	}
	if ms, ok := MillisecondsLeft(self); ok && ms < t.MinTimeForResetBenefitMS {
		reward += w.ResetPenaltyTimeLow
	}
	return reward, urgency
}

// riskAt sums the threat of tackle-capable rivals near the square the bot is
// about to walk to. Closer rivals and a fuller inventory weigh more.
func riskAt(cfg config.Config, self api.GameObject, board Board, at api.Position, carried int) float64 {
	radius := cfg.Thresholds.EnemyDangerRadius
	risk := 0.0
	for _, rival := range board.Bots() {
		if !IsRival(self, rival) {
			continue
		}
		d := StepsNeeded(at, rival.Position)
		if d > radius || !CanTackle(rival) {
			continue
		}
		risk += cfg.Weights.EnemyRisk * float64(radius+1-d) * (1 + float64(carried)*riskPerDiamond)
	}
	return risk
}
