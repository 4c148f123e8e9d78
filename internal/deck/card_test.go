package deck

import (
	"errors"
	"testing"
)

func TestParseCard(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected Card
		wantErr  bool
	}{
		{
			name:     "ace of hearts",
			token:    "AH",
			expected: Card{Rank: Ace, Suit: Hearts},
		},
		{
			name:     "ten of diamonds",
			token:    "TD",
			expected: Card{Rank: Ten, Suit: Diamonds},
		},
		{
			name:     "two of spades",
			token:    "2S",
			expected: Card{Rank: Two, Suit: Spades},
		},
		{
			name:     "lowercase",
			token:    "kc",
			expected: Card{Rank: King, Suit: Clubs},
		},
		{
			name:    "invalid rank and suit",
			token:   "ZZ",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			token:   "AX",
			wantErr: true,
		},
		{
			name:    "ten spelled out",
			token:   "10H",
			wantErr: true,
		},
		{
			name:    "one character",
			token:   "A",
			wantErr: true,
		},
		{
			name:    "empty",
			token:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCard(tt.token)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCard(%q) error = %v, wantErr %v", tt.token, err, tt.wantErr)
			}
			if tt.wantErr {
				var formatErr *InvalidFormatError
				if !errors.As(err, &formatErr) {
					t.Errorf("ParseCard(%q) error = %T, want *InvalidFormatError", tt.token, err)
				}
				return
			}
			if got != tt.expected {
				t.Errorf("ParseCard(%q) = %v, want %v", tt.token, got, tt.expected)
			}
		})
	}
}

func TestParseCards(t *testing.T) {
	cards, err := ParseCards("AH KD 2C")
	if err != nil {
		t.Fatalf("ParseCards() error = %v", err)
	}
	expected := []Card{
		{Rank: Ace, Suit: Hearts},
		{Rank: King, Suit: Diamonds},
		{Rank: Two, Suit: Clubs},
	}
	if len(cards) != len(expected) {
		t.Fatalf("ParseCards() returned %d cards, want %d", len(cards), len(expected))
	}
	for i := range expected {
		if cards[i] != expected[i] {
			t.Errorf("ParseCards()[%d] = %v, want %v", i, cards[i], expected[i])
		}
	}

	if _, err := ParseCards("AH XX"); err == nil {
		t.Error("ParseCards() with invalid token should fail")
	}
}

func TestCardStringRoundTrip(t *testing.T) {
	for suit := Hearts; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			card := Card{Rank: rank, Suit: suit}
			parsed, err := ParseCard(card.String())
			if err != nil {
				t.Fatalf("ParseCard(%q) error = %v", card.String(), err)
			}
			if parsed != card {
				t.Errorf("round trip %v -> %q -> %v", card, card.String(), parsed)
			}
		}
	}
}

func TestMustParseCardsPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParseCards() should panic on invalid input")
		}
	}()
	MustParseCards("bogus")
}
