package wallet

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
)

// MemoryStore is a mutex-guarded in-memory Gateway, used by tests and as the
// default store when no database is configured.
type MemoryStore struct {
	mu      sync.Mutex
	players map[string]*Player
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{players: make(map[string]*Player)}
}

// PutPlayer inserts or replaces a player.
func (s *MemoryStore) PutPlayer(p Player) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := p
	s.players[p.ID] = &cp
}

// GetPlayer returns a copy of the player, or ErrPlayerNotFound.
func (s *MemoryStore) GetPlayer(ctx context.Context, playerID string) (*Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.players[playerID]
	if !ok {
		return nil, ErrPlayerNotFound
	}
	cp := *p
	return &cp, nil
}

// AddBalance credits amount to the named ledger. The read-modify-write runs
// under the store mutex, so concurrent credits to the same player are atomic.
func (s *MemoryStore) AddBalance(ctx context.Context, playerID string, amount decimal.Decimal, currency Currency) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.players[playerID]
	if !ok {
		return ErrPlayerNotFound
	}
	switch currency {
	case GoldCoins:
		p.Balance.GoldCoins = p.Balance.GoldCoins.Add(amount)
	case SweepCoins:
		p.Balance.SweepCoins = p.Balance.SweepCoins.Add(amount)
	default:
		return ErrUnknownCurrency
	}
	return nil
}
