// Package advisor turns a hand-strength estimate into a stage-aware
// action recommendation. The engine is a pure threshold table: identical
// inputs always produce identical output, and the only input beyond stage
// and strength is the board texture, consulted at the flop.
package advisor

import (
	"fmt"

	"github.com/mananjp/Poker-Hand-Predictor/internal/classification"
	"github.com/mananjp/Poker-Hand-Predictor/internal/session"
)

// Action is the recommended move
type Action int

const (
	Fold Action = iota
	Call
	Raise
	Show
)

func (a Action) String() string {
	switch a {
	case Fold:
		return "FOLD"
	case Call:
		return "CALL"
	case Raise:
		return "RAISE"
	case Show:
		return "SHOW"
	default:
		return "UNKNOWN"
	}
}

// Recommendation is the advisor's decision record. Tag names the rule that
// fired and is stable for display and testing; Reason is the formatted
// explanation.
type Recommendation struct {
	Action     Action
	Confidence int // percent
	Tag        string
	Reason     string
	Strength   float64 // the strength percentage the decision was based on
}

// Recommend evaluates the stage's rule list in order and returns the first
// match. strengthPct is hand strength as a percentage (0-100); texture is
// only consulted on the flop.
func Recommend(stage session.Stage, strengthPct float64, texture classification.Texture) (Recommendation, error) {
	switch stage {
	case session.PreFlop:
		return preflop(strengthPct), nil
	case session.Flop:
		return flop(strengthPct, texture), nil
	case session.Turn:
		return turn(strengthPct), nil
	case session.River:
		return river(strengthPct), nil
	default:
		return Recommendation{}, fmt.Errorf("advisor: unknown stage %d", stage)
	}
}

func preflop(strength float64) Recommendation {
	switch {
	case strength >= 70:
		return rec(Raise, 95, "preflop-premium", strength,
			"Premium hand (%.1f%%) - raise aggressively")
	case strength >= 50:
		return rec(Call, 75, "preflop-good", strength,
			"Good hand (%.1f%%) - call to see flop")
	case strength >= 35:
		return rec(Call, 50, "preflop-marginal", strength,
			"Marginal (%.1f%%) - call cautiously")
	default:
		return rec(Fold, 80, "preflop-weak", strength,
			"Weak hand (%.1f%%) - fold")
	}
}

func flop(strength float64, texture classification.Texture) Recommendation {
	switch {
	case strength >= 80:
		r := rec(Raise, 90, "flop-strong", strength, "")
		r.Reason = fmt.Sprintf("Strong hand (%.1f%%) on %s board - bet for value", strength, texture)
		return r
	case strength >= 60 && texture == classification.Wet:
		return rec(Call, 70, "flop-wet-caution", strength,
			"Good hand (%.1f%%) on wet board - proceed cautiously")
	case strength >= 60:
		return rec(Raise, 75, "flop-value-bet", strength,
			"Good hand (%.1f%%) - bet for value")
	case strength >= 40:
		return rec(Call, 55, "flop-drawing", strength,
			"Drawing hand (%.1f%%) - see turn card")
	default:
		return rec(Fold, 75, "flop-weak", strength,
			"Weak (%.1f%%) - fold")
	}
}

func turn(strength float64) Recommendation {
	switch {
	case strength >= 75:
		return rec(Raise, 85, "turn-strong", strength,
			"Strong (%.1f%%) - value bet")
	case strength >= 55:
		return rec(Call, 70, "turn-good", strength,
			"Good hand (%.1f%%) - see river")
	case strength >= 35:
		return rec(Call, 50, "turn-drawing", strength,
			"Drawing (%.1f%%) - last card coming")
	default:
		return rec(Fold, 75, "turn-weak", strength,
			"Weak (%.1f%%) - fold")
	}
}

func river(strength float64) Recommendation {
	switch {
	case strength >= 75:
		return rec(Show, 85, "river-strong", strength,
			"Strong (%.1f%%) - go to showdown")
	case strength >= 50:
		return rec(Show, 65, "river-decent", strength,
			"Decent hand (%.1f%%) - showdown")
	default:
		return rec(Fold, 70, "river-weak", strength,
			"Weak (%.1f%%) - fold if facing bet")
	}
}

func rec(action Action, confidence int, tag string, strength float64, reasonFmt string) Recommendation {
	r := Recommendation{
		Action:     action,
		Confidence: confidence,
		Tag:        tag,
		Strength:   strength,
	}
	if reasonFmt != "" {
		r.Reason = fmt.Sprintf(reasonFmt, strength)
	}
	return r
}
