package games

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// roundStage tags where a blackjack round is in its lifecycle.
type roundStage string

const (
	stageBetting  roundStage = "betting"
	stagePlaying  roundStage = "playing"
	stageResolved roundStage = "resolved"
)

// blackjackRound is the per-table mutable round state: the remaining deck,
// the dealer hand, and the active hands and bets keyed by player id. Only
// blackjack carries state between calls; roulette and baccarat rounds are
// fresh per invocation.
type blackjackRound struct {
	id     string
	deck   *Deck
	dealer []Card
	hands  map[string][]Card
	bets   map[string]decimal.Decimal
	stage  roundStage
}

// roundStore maps table id to round state. State is keyed strictly by table
// id so no state leaks across tables. No locking: see the Engine concurrency
// contract.
type roundStore struct {
	rounds map[string]*blackjackRound
}

func newRoundStore() *roundStore {
	return &roundStore{rounds: make(map[string]*blackjackRound)}
}

// getOrCreate returns the round for a table, initializing a fresh one with a
// shuffled deck and empty hands when absent. An existing round is reused
// as-is: the remaining deck carries over into the next bet.
func (s *roundStore) getOrCreate(tableID string, newDeck func() *Deck) *blackjackRound {
	if r, ok := s.rounds[tableID]; ok {
		return r
	}
	r := &blackjackRound{
		id:    uuid.NewString(),
		deck:  newDeck(),
		hands: make(map[string][]Card),
		bets:  make(map[string]decimal.Decimal),
		stage: stageBetting,
	}
	s.rounds[tableID] = r
	return r
}

// get returns the round for a table, or nil.
func (s *roundStore) get(tableID string) *blackjackRound {
	return s.rounds[tableID]
}

// snapshotHand copies a hand so callers never alias the mutable round state.
func snapshotHand(hand []Card) []Card {
	out := make([]Card, len(hand))
	copy(out, hand)
	return out
}
