package games

import "math/rand/v2"

// Card represents a playing card with suit, rank, and its blackjack point
// value. Value is tagged at deck-build time and is only meaningful for
// blackjack; baccarat derives its own point value from Rank and must never
// read Value.
type Card struct {
	Suit  string `json:"suit"`
	Rank  string `json:"rank"`
	Value int    `json:"value"`
}

// String returns a human-readable card representation like "♠A" or "♦10".
func (c Card) String() string {
	return c.Suit + c.Rank
}

// Suits in display order: ♠, ♥, ♦, ♣
var cardSuits = []string{"♠", "♥", "♦", "♣"}

// Ranks in order: A, 2-10, J, Q, K
var cardRanks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// blackjackCardValue returns the blackjack point value of a card rank.
// 2-10: face value, J/Q/K: 10, A: 11 (soft).
func blackjackCardValue(rank string) int {
	switch rank {
	case "A":
		return 11
	case "J", "Q", "K":
		return 10
	case "2":
		return 2
	case "3":
		return 3
	case "4":
		return 4
	case "5":
		return 5
	case "6":
		return 6
	case "7":
		return 7
	case "8":
		return 8
	case "9":
		return 9
	case "10":
		return 10
	default:
		return 0
	}
}

// baccaratCardValue returns the baccarat point value of a card rank.
// 2-9: face value, 10/J/Q/K: 0, A: 1.
func baccaratCardValue(rank string) int {
	switch rank {
	case "A":
		return 1
	case "2":
		return 2
	case "3":
		return 3
	case "4":
		return 4
	case "5":
		return 5
	case "6":
		return 6
	case "7":
		return 7
	case "8":
		return 8
	case "9":
		return 9
	default: // 10, J, Q, K
		return 0
	}
}

// blackjackHandValue calculates the best blackjack hand value, counting aces
// as 11 and downgrading them to 1 while the total busts. The returned total
// may exceed 21, which signals a bust.
func blackjackHandValue(cards []Card) int {
	total := 0
	aces := 0
	for _, c := range cards {
		total += c.Value
		if c.Rank == "A" {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

// baccaratHandValue calculates the baccarat hand value (sum of card point
// values mod 10), always in [0, 9].
func baccaratHandValue(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += baccaratCardValue(c.Rank)
	}
	return total % 10
}

// Deck is an ordered sequence of cards consumed by popping from the end.
type Deck struct {
	cards []Card
}

// NewDeck builds the full 52-card deck (4 suits x 13 ranks, no jokers) and
// permutes it with a Fisher-Yates shuffle from the given source.
func NewDeck(rng *rand.Rand) *Deck {
	cards := make([]Card, 0, 52)
	for _, suit := range cardSuits {
		for _, rank := range cardRanks {
			cards = append(cards, Card{Suit: suit, Rank: rank, Value: blackjackCardValue(rank)})
		}
	}
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return &Deck{cards: cards}
}

// Draw removes and returns the top card (end of the sequence). The deck must
// not be empty; callers guard with Remaining.
func (d *Deck) Draw() Card {
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c
}

// Remaining reports how many cards are left.
func (d *Deck) Remaining() int {
	return len(d.cards)
}
