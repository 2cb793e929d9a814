package games

import (
	"context"
	crand "crypto/rand"
	"errors"
	"math/rand/v2"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/HowesGamingLLC/tablegames/internal/wallet"
)

// Engine is the table-games rules engine. It owns the fixed table catalog and
// the per-table blackjack round state, and settles payouts through the
// balance gateway.
//
// Blackjack round state is not locked: callers must serialize actions against
// the same table id. Roulette and baccarat are stateless per call and safe for
// concurrent invocations; the shared generator is guarded internally.
type Engine struct {
	tables map[string]Table
	rounds *roundStore
	wallet wallet.Gateway
	log    *zap.Logger

	// rng is shared across all games and is not goroutine-safe on its own;
	// every draw goes through rngMu so concurrent roulette/baccarat calls
	// cannot corrupt the generator state.
	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewEngine builds an engine over the given gateway and catalog. A nil logger
// disables logging.
func NewEngine(gw wallet.Gateway, tables []Table, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	byID := make(map[string]Table, len(tables))
	for _, t := range tables {
		byID[t.ID] = t
	}
	return &Engine{
		tables: byID,
		rounds: newRoundStore(),
		wallet: gw,
		rng:    rand.New(rand.NewChaCha8(randomSeed())),
		log:    log,
	}
}

// newDeck builds a freshly shuffled deck under the RNG lock.
func (e *Engine) newDeck() *Deck {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	return NewDeck(e.rng)
}

// intN draws a uniform int in [0, n) under the RNG lock.
func (e *Engine) intN(n int) int {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	return e.rng.IntN(n)
}

func randomSeed() [32]byte {
	var seed [32]byte
	// crypto/rand.Read never fails on supported platforms.
	if _, err := crand.Read(seed[:]); err != nil {
		panic(err)
	}
	return seed
}

// player resolves a player through the gateway, mapping absence to the
// engine's structured not-found error.
func (e *Engine) player(ctx context.Context, playerID string) (*wallet.Player, error) {
	p, err := e.wallet.GetPlayer(ctx, playerID)
	if err != nil {
		if errors.Is(err, wallet.ErrPlayerNotFound) {
			return nil, notFound("Player not found")
		}
		return nil, internal("Balance lookup failed", err)
	}
	return p, nil
}

// creditGoldCoins pays a positive amount to the player's gold-coin ledger.
// Table-game payouts only ever touch gold coins.
func (e *Engine) creditGoldCoins(ctx context.Context, playerID string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return nil
	}
	if err := e.wallet.AddBalance(ctx, playerID, amount, wallet.GoldCoins); err != nil {
		return internal("Payout failed", err)
	}
	e.log.Info("payout credited",
		zap.String("player_id", playerID),
		zap.String("amount", amount.String()),
		zap.String("currency", string(wallet.GoldCoins)),
	)
	return nil
}

// Join validates that the table and the player exist. Seat capacity against
// MaxPlayers is not enforced.
func (e *Engine) Join(ctx context.Context, tableID, playerID string) (Table, error) {
	t, err := e.Table(tableID)
	if err != nil {
		return Table{}, err
	}
	if _, err := e.player(ctx, playerID); err != nil {
		return Table{}, err
	}
	e.log.Info("player joined table",
		zap.String("table_id", tableID),
		zap.String("player_id", playerID),
	)
	return t, nil
}
