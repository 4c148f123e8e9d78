// Package session carries the per-hand state the simulator consumes: the
// hero's hole cards, the public board, and the opponent hands that were
// fixed when the hand began. Holding opponent hands here, rather than
// re-rolling them inside the simulator, keeps equity consistent across the
// stages of one hand.
package session

import (
	"errors"
	"fmt"
	rand "math/rand/v2"

	"github.com/mananjp/Poker-Hand-Predictor/internal/deck"
)

// Stage identifies how much of the board is public
type Stage int

const (
	PreFlop Stage = iota
	Flop
	Turn
	River
)

// String returns the lowercase stage name
func (s Stage) String() string {
	switch s {
	case PreFlop:
		return "pre-flop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	default:
		return "unknown"
	}
}

// UnsupportedStageError reports a board size that does not correspond to
// any stage of a hand.
type UnsupportedStageError struct {
	BoardSize int
}

func (e *UnsupportedStageError) Error() string {
	return fmt.Sprintf("session: no stage has a %d-card board", e.BoardSize)
}

// StageForBoard maps a board size to its stage (0, 3, 4 or 5 cards)
func StageForBoard(n int) (Stage, error) {
	switch n {
	case 0:
		return PreFlop, nil
	case 3:
		return Flop, nil
	case 4:
		return Turn, nil
	case 5:
		return River, nil
	default:
		return 0, &UnsupportedStageError{BoardSize: n}
	}
}

// regenAttempts bounds opponent-hand resampling when a revealed board card
// collides with a fixed opponent hand.
const regenAttempts = 100

// HandSession is the per-hand record. Hole cards and the board are never
// altered once set; opponent hands persist across stages and are
// regenerated individually only when a later board card collides with
// them.
type HandSession struct {
	Hole      [2]deck.Card
	Board     []deck.Card
	Opponents [][2]deck.Card

	rng *rand.Rand
}

// NewHandSession fixes the hero's hole cards and deals each of the
// numOpponents a persistent 2-card hand from the remaining pool.
func NewHandSession(rng *rand.Rand, hole [2]deck.Card, numOpponents int) (*HandSession, error) {
	if err := deck.ValidateUnique(hole[:]); err != nil {
		return nil, err
	}

	s := &HandSession{
		Hole: hole,
		rng:  rng,
	}
	for i := 0; i < numOpponents; i++ {
		hand, err := s.dealOpponent()
		if err != nil {
			return nil, err
		}
		s.Opponents = append(s.Opponents, hand)
	}
	return s, nil
}

// Stage returns the stage implied by the current board size
func (s *HandSession) Stage() Stage {
	stage, err := StageForBoard(len(s.Board))
	if err != nil {
		// Board sizes are validated on every mutation.
		panic(err)
	}
	return stage
}

// Known returns every card fixed in this session, scanning hero, board,
// then opponents in seat order.
func (s *HandSession) Known() []deck.Card {
	known := make([]deck.Card, 0, 2+len(s.Board)+2*len(s.Opponents))
	known = append(known, s.Hole[:]...)
	known = append(known, s.Board...)
	for _, opp := range s.Opponents {
		known = append(known, opp[:]...)
	}
	return known
}

// AdvanceBoard reveals the next stage's cards: 3 for the flop, then 1 for
// the turn and 1 for the river. The new cards must not collide with the
// hero's hole cards or the existing board; a collision with a fixed
// opponent hand regenerates only that opponent's hand.
func (s *HandSession) AdvanceBoard(cards []deck.Card) error {
	next := len(s.Board) + len(cards)
	if _, err := StageForBoard(next); err != nil {
		return err
	}
	want := 1
	if len(s.Board) == 0 {
		want = 3
	}
	if len(cards) != want {
		return &UnsupportedStageError{BoardSize: next}
	}

	if err := deck.ValidateUnique(s.Hole[:], s.Board, cards); err != nil {
		return err
	}

	s.Board = append(append([]deck.Card{}, s.Board...), cards...)

	// Board cards beat fixed opponent cards: any opponent holding one of
	// the revealed cards gets a fresh hand, one opponent at a time so the
	// others keep theirs.
	for i := range s.Opponents {
		if !collides(s.Opponents[i], cards) {
			continue
		}
		hand, err := s.redealOpponent(i)
		if err != nil {
			return err
		}
		s.Opponents[i] = hand
	}

	return nil
}

func collides(hand [2]deck.Card, cards []deck.Card) bool {
	for _, c := range cards {
		if c == hand[0] || c == hand[1] {
			return true
		}
	}
	return false
}

// dealOpponent draws a fresh 2-card hand excluding everything fixed so far
func (s *HandSession) dealOpponent() ([2]deck.Card, error) {
	d := deck.NewDeck(s.rng, s.Known()...)
	cards, err := d.DrawN(2)
	if err != nil {
		return [2]deck.Card{}, err
	}
	return [2]deck.Card{cards[0], cards[1]}, nil
}

// redealOpponent resamples opponent i's hand from the cards outside the
// hero's hand and the board, retrying while the sample collides with
// another opponent's fixed hand, bounded to regenAttempts.
func (s *HandSession) redealOpponent(i int) ([2]deck.Card, error) {
	others := make([]deck.Card, 0, 2*len(s.Opponents))
	for j, opp := range s.Opponents {
		if j != i {
			others = append(others, opp[:]...)
		}
	}

	var lastClash deck.Card
	for attempt := 0; attempt < regenAttempts; attempt++ {
		exclude := append(append([]deck.Card{}, s.Hole[:]...), s.Board...)
		d := deck.NewDeck(s.rng, exclude...)
		cards, err := d.DrawN(2)
		if err != nil {
			return [2]deck.Card{}, err
		}
		hand := [2]deck.Card{cards[0], cards[1]}

		err = deck.ValidateUnique(others, hand[:])
		if err == nil {
			return hand, nil
		}
		var dup *deck.DuplicateCardError
		if errors.As(err, &dup) {
			lastClash = dup.Card
		}
	}
	return [2]deck.Card{}, &deck.DuplicateCardError{Card: lastClash}
}
