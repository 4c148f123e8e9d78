package deck

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// String returns the single-letter suit code used in card tokens
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	case Clubs:
		return "C"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// Symbol returns the unicode suit symbol for display
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. Aces are high (14); the wheel straight
// treats the ace as low in the evaluator only.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the single-character rank code used in card tokens
func (r Rank) String() string {
	switch r {
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		if r >= Two && r <= Nine {
			return string(rune('0' + int(r)))
		}
		return "?"
	}
}

// Card represents a playing card. Immutable value type; equality is
// (Rank, Suit) equality.
type Card struct {
	Rank Rank
	Suit Suit
}

// String returns the two-character token for the card (e.g., "AH", "TD")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// ParseCard parses a two-character token like "AH" or "td" into a Card.
// The first character is the rank (2-9, T, J, Q, K, A), the second the
// suit (H, D, C, S). Anything else fails with InvalidFormatError.
func ParseCard(token string) (Card, error) {
	if len(token) != 2 {
		return Card{}, &InvalidFormatError{Token: token}
	}

	rank, ok := parseRank(token[0])
	if !ok {
		return Card{}, &InvalidFormatError{Token: token}
	}

	suit, ok := parseSuit(token[1])
	if !ok {
		return Card{}, &InvalidFormatError{Token: token}
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses a whitespace-separated list of card tokens ("AH KD 2C")
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, token := range fields {
		card, err := ParseCard(token)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards %q: %v", s, err))
	}
	return cards
}

func parseRank(c byte) (Rank, bool) {
	switch c {
	case 'A', 'a':
		return Ace, true
	case 'K', 'k':
		return King, true
	case 'Q', 'q':
		return Queen, true
	case 'J', 'j':
		return Jack, true
	case 'T', 't':
		return Ten, true
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return Rank(c - '0'), true
	default:
		return 0, false
	}
}

func parseSuit(c byte) (Suit, bool) {
	switch c {
	case 'H', 'h':
		return Hearts, true
	case 'D', 'd':
		return Diamonds, true
	case 'C', 'c':
		return Clubs, true
	case 'S', 's':
		return Spades, true
	default:
		return 0, false
	}
}
