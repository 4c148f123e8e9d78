package evaluator

import (
	"testing"

	"github.com/mananjp/Poker-Hand-Predictor/internal/deck"
)

func TestHandRankCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b HandRank
		want int
	}{
		{
			name: "category dominates",
			a:    HandRank{Category: OnePair, Tiebreak: []deck.Rank{deck.Two, deck.Five, deck.Four, deck.Three}},
			b:    HandRank{Category: HighCard, Tiebreak: []deck.Rank{deck.Ace, deck.King, deck.Queen, deck.Jack, deck.Nine}},
			want: 1,
		},
		{
			name: "tiebreak most significant first",
			a:    HandRank{Category: FullHouse, Tiebreak: []deck.Rank{deck.Ten, deck.Four}},
			b:    HandRank{Category: FullHouse, Tiebreak: []deck.Rank{deck.Nine, deck.Ace}},
			want: 1,
		},
		{
			name: "later tiebreak breaks earlier tie",
			a:    HandRank{Category: TwoPair, Tiebreak: []deck.Rank{deck.Jack, deck.Four, deck.Nine}},
			b:    HandRank{Category: TwoPair, Tiebreak: []deck.Rank{deck.Jack, deck.Four, deck.Eight}},
			want: 1,
		},
		{
			name: "exact tie",
			a:    HandRank{Category: Straight, Tiebreak: []deck.Rank{deck.Nine}},
			b:    HandRank{Category: Straight, Tiebreak: []deck.Rank{deck.Nine}},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
			if got := tt.b.Compare(tt.a); got != -tt.want {
				t.Errorf("reverse Compare() = %d, want %d", got, -tt.want)
			}
		})
	}
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		category Category
		want     string
	}{
		{HighCard, "High Card"},
		{OnePair, "One Pair"},
		{TwoPair, "Two Pair"},
		{ThreeOfAKind, "Three of a Kind"},
		{Straight, "Straight"},
		{Flush, "Flush"},
		{FullHouse, "Full House"},
		{FourOfAKind, "Four of a Kind"},
		{StraightFlush, "Straight Flush"},
		{RoyalFlush, "Royal Flush"},
	}

	for _, tt := range tests {
		if got := tt.category.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.category, got, tt.want)
		}
	}
}
