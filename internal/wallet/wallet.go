package wallet

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// Currency identifies one of the two independent player ledgers.
type Currency string

const (
	GoldCoins  Currency = "gold_coins"
	SweepCoins Currency = "sweep_coins"
)

// ErrPlayerNotFound is returned by stores when no player exists for an id.
var ErrPlayerNotFound = errors.New("player not found")

// ErrUnknownCurrency is returned when a credit names neither ledger.
var ErrUnknownCurrency = errors.New("unknown currency")

// Balance holds the two ledgers of a player.
type Balance struct {
	GoldCoins  decimal.Decimal `json:"goldCoins"`
	SweepCoins decimal.Decimal `json:"sweepCoins"`
}

// Player is the external player entity as seen by the games engine.
type Player struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Balance Balance `json:"balance"`
}

// Gateway is the balance collaborator the games engine runs payouts through.
// AddBalance must be atomic with respect to concurrent credits to the same
// player; that responsibility belongs to the implementation, not the engine.
type Gateway interface {
	// GetPlayer returns the player for the id, or ErrPlayerNotFound.
	GetPlayer(ctx context.Context, playerID string) (*Player, error)

	// AddBalance credits amount to the named ledger of the player.
	AddBalance(ctx context.Context, playerID string, amount decimal.Decimal, currency Currency) error
}
