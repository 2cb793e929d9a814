package games

import (
	"math/rand/v2"
	"testing"
)

func TestNewDeck(t *testing.T) {
	deck := NewDeck(rand.New(rand.NewPCG(1, 2)))

	if deck.Remaining() != 52 {
		t.Fatalf("expected 52 cards, got %d", deck.Remaining())
	}

	seen := make(map[string]bool)
	for deck.Remaining() > 0 {
		c := deck.Draw()
		key := c.Suit + c.Rank
		if seen[key] {
			t.Errorf("duplicate card %s", key)
		}
		seen[key] = true
		if c.Value != blackjackCardValue(c.Rank) {
			t.Errorf("card %s has value %d, expected %d", key, c.Value, blackjackCardValue(c.Rank))
		}
	}
	if len(seen) != 52 {
		t.Errorf("expected 52 distinct cards, got %d", len(seen))
	}
}

func TestDeckDrawsFromEnd(t *testing.T) {
	deck := deckOf(card("♠", "A"), card("♥", "K"), card("♦", "2"))

	if c := deck.Draw(); c.Rank != "A" {
		t.Errorf("expected A first, got %s", c.Rank)
	}
	if c := deck.Draw(); c.Rank != "K" {
		t.Errorf("expected K second, got %s", c.Rank)
	}
	if deck.Remaining() != 1 {
		t.Errorf("expected 1 remaining, got %d", deck.Remaining())
	}
}

func TestBlackjackCardValue(t *testing.T) {
	tests := []struct {
		rank     string
		expected int
	}{
		{"A", 11}, {"2", 2}, {"5", 5}, {"9", 9}, {"10", 10},
		{"J", 10}, {"Q", 10}, {"K", 10},
	}

	for _, tt := range tests {
		if got := blackjackCardValue(tt.rank); got != tt.expected {
			t.Errorf("blackjackCardValue(%s): expected %d, got %d", tt.rank, tt.expected, got)
		}
	}
}

func TestBaccaratCardValue(t *testing.T) {
	tests := []struct {
		rank     string
		expected int
	}{
		{"A", 1}, {"2", 2}, {"5", 5}, {"9", 9},
		{"10", 0}, {"J", 0}, {"Q", 0}, {"K", 0},
	}

	for _, tt := range tests {
		if got := baccaratCardValue(tt.rank); got != tt.expected {
			t.Errorf("baccaratCardValue(%s): expected %d, got %d", tt.rank, tt.expected, got)
		}
	}
}

func TestBlackjackHandValue(t *testing.T) {
	tests := []struct {
		name     string
		ranks    []string
		expected int
	}{
		{"double ace", []string{"A", "A"}, 12},
		{"blackjack", []string{"A", "K"}, 21},
		{"three kings", []string{"K", "K", "K"}, 30},
		{"soft 17", []string{"A", "6"}, 17},
		{"ace downgrade", []string{"A", "5", "8"}, 14},
		{"both aces downgrade", []string{"A", "A", "K"}, 12},
		{"hard bust", []string{"10", "5", "8"}, 23},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand := make([]Card, len(tt.ranks))
			for i, r := range tt.ranks {
				hand[i] = card("♠", r)
			}
			if got := blackjackHandValue(hand); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestBaccaratHandValue(t *testing.T) {
	tests := []struct {
		name     string
		ranks    []string
		expected int
	}{
		{"natural nine", []string{"A", "8"}, 9},
		{"twelve wraps to two", []string{"5", "7"}, 2},
		{"faces are zero", []string{"K", "K"}, 0},
		{"three cards", []string{"9", "9", "9"}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand := make([]Card, len(tt.ranks))
			for i, r := range tt.ranks {
				hand[i] = card("♥", r)
			}
			if got := baccaratHandValue(hand); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}
