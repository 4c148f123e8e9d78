package evaluator

import (
	"github.com/mananjp/Poker-Hand-Predictor/internal/deck"
)

// Category enumerates hand categories from weakest to strongest
type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the display name of the category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// HandRank is the composite ordered value of an evaluated hand: the
// category dominates, and the tiebreak sequence (most significant rank
// first) decides between hands of the same category. The representation is
// explicit rather than a packed integer so the total order is portable and
// the tiebreakers stay visible to callers.
type HandRank struct {
	Category Category
	Tiebreak []deck.Rank
}

// Compare returns 1 if h outranks other, -1 if other outranks h, 0 on a
// tie. Tiebreak sequences are compared lexicographically only within the
// same category; hands of equal category always carry sequences of the
// same length.
func (h HandRank) Compare(other HandRank) int {
	if h.Category != other.Category {
		if h.Category > other.Category {
			return 1
		}
		return -1
	}
	for i := range h.Tiebreak {
		if i >= len(other.Tiebreak) {
			return 1
		}
		if h.Tiebreak[i] != other.Tiebreak[i] {
			if h.Tiebreak[i] > other.Tiebreak[i] {
				return 1
			}
			return -1
		}
	}
	if len(other.Tiebreak) > len(h.Tiebreak) {
		return -1
	}
	return 0
}

// String returns the category display name
func (h HandRank) String() string {
	return h.Category.String()
}
