package games

import (
	"sort"

	"github.com/shopspring/decimal"
)

// GameType tags a table with the game it hosts.
type GameType string

const (
	GameTypeBlackjack GameType = "blackjack"
	GameTypeRoulette  GameType = "roulette"
	GameTypeBaccarat  GameType = "baccarat"
)

// BetLimits holds per-currency bet ceilings for a table.
type BetLimits struct {
	GoldCoins  decimal.Decimal `json:"goldCoins"`
	SweepCoins decimal.Decimal `json:"sweepCoins"`
}

// Table is the static configuration of a single table. Tables are immutable
// after engine construction; the catalog is fixed at process start.
type Table struct {
	ID         string    `json:"id"`
	GameType   GameType  `json:"gameType"`
	Name       string    `json:"name"`
	MinBet     BetLimits `json:"minBet"`
	MaxBet     BetLimits `json:"maxBet"`
	MaxPlayers int       `json:"maxPlayers"`
	HouseEdge  float64   `json:"houseEdge"`
}

func limits(gc, sc int64) BetLimits {
	return BetLimits{GoldCoins: decimal.NewFromInt(gc), SweepCoins: decimal.NewFromInt(sc)}
}

// DefaultTables returns the product's fixed table catalog.
func DefaultTables() []Table {
	return []Table{
		{
			ID:         "blackjack-classic",
			GameType:   GameTypeBlackjack,
			Name:       "Classic Blackjack",
			MinBet:     limits(5, 1),
			MaxBet:     limits(500, 100),
			MaxPlayers: 5,
			HouseEdge:  0.005,
		},
		{
			ID:         "blackjack-highroller",
			GameType:   GameTypeBlackjack,
			Name:       "High Roller Blackjack",
			MinBet:     limits(100, 20),
			MaxBet:     limits(10000, 2000),
			MaxPlayers: 5,
			HouseEdge:  0.005,
		},
		{
			ID:         "roulette-european",
			GameType:   GameTypeRoulette,
			Name:       "European Roulette",
			MinBet:     limits(1, 1),
			MaxBet:     limits(1000, 200),
			MaxPlayers: 8,
			HouseEdge:  0.027,
		},
		{
			ID:         "baccarat-punto-banco",
			GameType:   GameTypeBaccarat,
			Name:       "Punto Banco Baccarat",
			MinBet:     limits(10, 2),
			MaxBet:     limits(2000, 400),
			MaxPlayers: 7,
			HouseEdge:  0.0106,
		},
	}
}

// Tables lists the catalog sorted by table id.
func (e *Engine) Tables() []Table {
	out := make([]Table, 0, len(e.tables))
	for _, t := range e.tables {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Table fetches one table by id.
func (e *Engine) Table(tableID string) (Table, error) {
	t, ok := e.tables[tableID]
	if !ok {
		return Table{}, notFound("Table not found")
	}
	return t, nil
}

// table looks up a table and checks its game type, reporting the
// game-specific not-found message on mismatch.
func (e *Engine) table(tableID string, gt GameType, message string) (Table, error) {
	t, ok := e.tables[tableID]
	if !ok || t.GameType != gt {
		return Table{}, notFound(message)
	}
	return t, nil
}
