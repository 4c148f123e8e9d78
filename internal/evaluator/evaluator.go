// Package evaluator ranks poker hands. The seven-card entry point
// enumerates all 21 five-card subsets and keeps the best under the
// HandRank total order.
package evaluator

import (
	"fmt"
	"sort"

	"github.com/mananjp/Poker-Hand-Predictor/internal/deck"
)

// EvaluateBest returns the strongest five-card hand makeable from exactly
// seven cards, along with the winning subset for display. The result is
// invariant to the order the cards are supplied in.
func EvaluateBest(cards []deck.Card) (HandRank, []deck.Card, error) {
	if len(cards) != 7 {
		return HandRank{}, nil, fmt.Errorf("evaluator: expected 7 cards, got %d", len(cards))
	}
	if err := deck.ValidateUnique(cards); err != nil {
		return HandRank{}, nil, err
	}

	var best HandRank
	var bestFive [5]deck.Card
	first := true

	// Each subset is the 7 cards minus the pair (i, j).
	var five [5]deck.Card
	for i := 0; i < 6; i++ {
		for j := i + 1; j < 7; j++ {
			n := 0
			for k := 0; k < 7; k++ {
				if k == i || k == j {
					continue
				}
				five[n] = cards[k]
				n++
			}
			rank := Evaluate5(five)
			if first || rank.Compare(best) > 0 {
				best = rank
				bestFive = five
				first = false
			}
		}
	}

	winning := make([]deck.Card, 5)
	copy(winning, bestFive[:])
	return best, winning, nil
}

// Evaluate5 classifies a five-card hand into its category and tiebreak
// sequence. Every five-card hand matches exactly one category.
func Evaluate5(cards [5]deck.Card) HandRank {
	ranks := make([]deck.Rank, 5)
	flush := true
	for i, c := range cards {
		ranks[i] = c.Rank
		if c.Suit != cards[0].Suit {
			flush = false
		}
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] > ranks[j] })

	straight, straightHigh := straightHigh(ranks)

	if straight && flush {
		if straightHigh == deck.Ace {
			return HandRank{Category: RoyalFlush, Tiebreak: []deck.Rank{straightHigh}}
		}
		return HandRank{Category: StraightFlush, Tiebreak: []deck.Rank{straightHigh}}
	}

	// Group ranks by multiplicity, highest rank first within each size.
	counts := make(map[deck.Rank]int, 5)
	for _, r := range ranks {
		counts[r]++
	}
	var quads, trips, pairs, singles []deck.Rank
	for _, r := range ranks {
		switch counts[r] {
		case 4:
			quads = appendOnce(quads, r)
		case 3:
			trips = appendOnce(trips, r)
		case 2:
			pairs = appendOnce(pairs, r)
		default:
			singles = append(singles, r)
		}
	}

	switch {
	case len(quads) == 1:
		return HandRank{Category: FourOfAKind, Tiebreak: []deck.Rank{quads[0], singles[0]}}
	case len(trips) == 1 && len(pairs) == 1:
		return HandRank{Category: FullHouse, Tiebreak: []deck.Rank{trips[0], pairs[0]}}
	case flush:
		return HandRank{Category: Flush, Tiebreak: ranks}
	case straight:
		return HandRank{Category: Straight, Tiebreak: []deck.Rank{straightHigh}}
	case len(trips) == 1:
		return HandRank{Category: ThreeOfAKind, Tiebreak: append([]deck.Rank{trips[0]}, singles...)}
	case len(pairs) == 2:
		return HandRank{Category: TwoPair, Tiebreak: []deck.Rank{pairs[0], pairs[1], singles[0]}}
	case len(pairs) == 1:
		return HandRank{Category: OnePair, Tiebreak: append([]deck.Rank{pairs[0]}, singles...)}
	default:
		return HandRank{Category: HighCard, Tiebreak: ranks}
	}
}

// straightHigh reports whether the descending rank list forms a straight
// and the high card of the run. The wheel (A-2-3-4-5) does not fall out of
// the consecutive test with the ace stored as 14, so it is matched
// explicitly and reported as a 5-high straight.
func straightHigh(desc []deck.Rank) (bool, deck.Rank) {
	distinct := true
	for i := 1; i < len(desc); i++ {
		if desc[i] == desc[i-1] {
			distinct = false
			break
		}
	}
	if !distinct {
		return false, 0
	}

	if desc[0]-desc[4] == 4 {
		return true, desc[0]
	}

	// Wheel: A,5,4,3,2 in descending order.
	if desc[0] == deck.Ace && desc[1] == deck.Five && desc[4] == deck.Two && desc[1]-desc[4] == 3 {
		return true, deck.Five
	}

	return false, 0
}

func appendOnce(list []deck.Rank, r deck.Rank) []deck.Rank {
	for _, have := range list {
		if have == r {
			return list
		}
	}
	return append(list, r)
}
