package deck

import (
	"errors"
	"fmt"
)

// ErrInsufficientCards is returned when a draw is requested from an
// exhausted pool. Under normal 3-player constraints this never fires.
var ErrInsufficientCards = errors.New("deck: insufficient cards remaining")

// InvalidFormatError reports a malformed card token
type InvalidFormatError struct {
	Token string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("deck: invalid card format %q", e.Token)
}

// DuplicateCardError reports a card that collides with an already-known card
type DuplicateCardError struct {
	Card Card
}

func (e *DuplicateCardError) Error() string {
	return fmt.Sprintf("deck: duplicate card %s", e.Card)
}

// ValidateUnique checks that no card value appears twice across the given
// groups, scanning in input order so the reported duplicate is
// deterministic.
func ValidateUnique(groups ...[]Card) error {
	seen := make(map[Card]bool, 11)
	for _, group := range groups {
		for _, card := range group {
			if seen[card] {
				return &DuplicateCardError{Card: card}
			}
			seen[card] = true
		}
	}
	return nil
}
