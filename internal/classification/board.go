// Package classification labels community boards by draw density. The
// label feeds the flop-stage branch of the advisor: a wet board downgrades
// a good-but-not-great hand from a raise to a call.
package classification

import (
	"fmt"
	"sort"

	"github.com/mananjp/Poker-Hand-Predictor/internal/deck"
)

// Texture is the qualitative classification of a board
type Texture int

const (
	Dry Texture = iota
	Wet
	Coordinated
)

func (t Texture) String() string {
	switch t {
	case Dry:
		return "dry"
	case Wet:
		return "wet"
	case Coordinated:
		return "coordinated"
	default:
		return "unknown"
	}
}

// FlushInfo describes suit concentration on a board
type FlushInfo struct {
	MaxSuitCount int
	IsMonotone   bool // every card shares one suit
	IsRainbow    bool // no two cards share a suit
}

// ConnectivityInfo describes rank concentration on a board
type ConnectivityInfo struct {
	DistinctRanks int
	Span          int  // narrowest window holding the most distinct ranks
	OpenEnded     bool // >=3 distinct ranks inside a 4-rank window
	Paired        bool // some rank repeats
}

// ClassifyTexture labels a 3-5 card board. First matching rule wins:
// heavy suit concentration or straight-draw density makes the board wet; a
// board with neither that nor a pair is dry; everything else is
// coordinated.
func ClassifyTexture(board []deck.Card) (Texture, error) {
	if len(board) < 3 || len(board) > 5 {
		return 0, fmt.Errorf("classification: board must have 3-5 cards, got %d", len(board))
	}

	flush := AnalyzeFlushPotential(board)
	conn := AnalyzeConnectivity(board)

	switch {
	case flush.MaxSuitCount >= 3 || conn.OpenEnded:
		return Wet, nil
	case !conn.Paired:
		return Dry, nil
	default:
		return Coordinated, nil
	}
}

// AnalyzeFlushPotential counts suit concentration across the board
func AnalyzeFlushPotential(board []deck.Card) FlushInfo {
	var suitCounts [4]int
	for _, card := range board {
		suitCounts[card.Suit]++
	}

	maxCount := 0
	for _, count := range suitCounts {
		if count > maxCount {
			maxCount = count
		}
	}

	return FlushInfo{
		MaxSuitCount: maxCount,
		IsMonotone:   maxCount == len(board),
		IsRainbow:    maxCount == 1,
	}
}

// AnalyzeConnectivity measures how tightly the board's distinct ranks
// cluster. Span is the width of the narrowest window containing the
// largest number of distinct ranks; OpenEnded reports whether at least 3
// distinct ranks fit within any 4-rank window.
func AnalyzeConnectivity(board []deck.Card) ConnectivityInfo {
	seen := make(map[deck.Rank]int, len(board))
	for _, card := range board {
		seen[card.Rank]++
	}

	paired := false
	ranks := make([]int, 0, len(seen))
	for rank, count := range seen {
		if count > 1 {
			paired = true
		}
		ranks = append(ranks, int(rank))
	}
	sort.Ints(ranks)

	// Slide a window over the sorted distinct ranks; track the window
	// packing the most ranks, preferring the narrower span on ties.
	bestCount := 1
	bestSpan := 1
	openEnded := false
	for i := 0; i < len(ranks); i++ {
		for j := i; j < len(ranks); j++ {
			count := j - i + 1
			span := ranks[j] - ranks[i] + 1
			if count > bestCount || (count == bestCount && span < bestSpan) {
				bestCount = count
				bestSpan = span
			}
			if count >= 3 && span <= 4 {
				openEnded = true
			}
		}
	}

	return ConnectivityInfo{
		DistinctRanks: len(ranks),
		Span:          bestSpan,
		OpenEnded:     openEnded,
		Paired:        paired,
	}
}
