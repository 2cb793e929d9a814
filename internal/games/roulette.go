package games

import (
	"context"
	"slices"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// RouletteBetType is the closed set of supported wager categories.
type RouletteBetType string

const (
	RouletteStraight RouletteBetType = "straight"
	RouletteRed      RouletteBetType = "red"
	RouletteBlack    RouletteBetType = "black"
	RouletteOdd      RouletteBetType = "odd"
	RouletteEven     RouletteBetType = "even"
	RouletteLow      RouletteBetType = "low"
	RouletteHigh     RouletteBetType = "high"
	RouletteDozen    RouletteBetType = "dozen"
	RouletteColumn   RouletteBetType = "column"
)

// Red numbers on a European wheel.
var rouletteRedNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true,
	12: true, 14: true, 16: true, 18: true, 19: true,
	21: true, 23: true, 25: true, 27: true, 30: true,
	32: true, 34: true, 36: true,
}

// RouletteBet is one typed wager. Payout is the caller-supplied multiplier;
// the engine trusts it verbatim and does not verify it against the category.
type RouletteBet struct {
	Type    RouletteBetType `json:"type"`
	Numbers []int           `json:"numbers,omitempty"`
	Amount  decimal.Decimal `json:"amount"`
	Payout  decimal.Decimal `json:"payout"`
}

// RouletteRequest is one spin with a list of wagers.
type RouletteRequest struct {
	PlayerID string
	TableID  string
	Bets     []RouletteBet
}

// RouletteSpin describes the wheel outcome: the pocket plus its derived
// color, parity, dozen, and column. Zero is green with dozen/column 0 and
// neither odd nor even.
type RouletteSpin struct {
	Number int    `json:"number"`
	Color  string `json:"color"`
	Odd    bool   `json:"odd"`
	Even   bool   `json:"even"`
	Dozen  int    `json:"dozen"`
	Column int    `json:"column"`
}

// RouletteBetResult is the per-bet settlement breakdown.
type RouletteBetResult struct {
	Type   RouletteBetType `json:"type"`
	Amount decimal.Decimal `json:"amount"`
	Won    bool            `json:"won"`
	Payout decimal.Decimal `json:"payout"`
}

// RouletteOutcome reports the spin, the per-bet breakdown, and the total
// payout credited.
type RouletteOutcome struct {
	Spin        RouletteSpin        `json:"spin"`
	Bets        []RouletteBetResult `json:"bets"`
	TotalPayout decimal.Decimal     `json:"totalPayout"`
}

// Roulette resolves one single-zero wheel spin against a list of bets. The
// call is stateless: nothing persists between spins. Bet amounts are not
// range-checked against the table limits.
func (e *Engine) Roulette(ctx context.Context, req RouletteRequest) (*RouletteOutcome, error) {
	if _, err := e.table(req.TableID, GameTypeRoulette, "Invalid roulette table"); err != nil {
		return nil, err
	}
	if _, err := e.player(ctx, req.PlayerID); err != nil {
		return nil, err
	}

	spin := e.spinWheel()
	results := make([]RouletteBetResult, 0, len(req.Bets))
	total := decimal.Zero
	for _, bet := range req.Bets {
		won := rouletteBetWins(bet, spin)
		payout := decimal.Zero
		if won {
			payout = bet.Amount.Mul(bet.Payout)
			total = total.Add(payout)
		}
		results = append(results, RouletteBetResult{
			Type:   bet.Type,
			Amount: bet.Amount,
			Won:    won,
			Payout: payout,
		})
	}

	if err := e.creditGoldCoins(ctx, req.PlayerID, total); err != nil {
		return nil, err
	}
	e.log.Info("roulette spin resolved",
		zap.String("table_id", req.TableID),
		zap.String("player_id", req.PlayerID),
		zap.Int("number", spin.Number),
		zap.String("color", spin.Color),
		zap.Int("bets", len(req.Bets)),
		zap.String("total_payout", total.String()),
	)
	return &RouletteOutcome{Spin: spin, Bets: results, TotalPayout: total}, nil
}

// spinWheel draws a uniform pocket in [0, 36] and derives its properties.
func (e *Engine) spinWheel() RouletteSpin {
	return classifyPocket(e.intN(37))
}

func classifyPocket(n int) RouletteSpin {
	spin := RouletteSpin{Number: n}
	if n == 0 {
		spin.Color = "green"
		return spin
	}
	if rouletteRedNumbers[n] {
		spin.Color = "red"
	} else {
		spin.Color = "black"
	}
	spin.Odd = n%2 == 1
	spin.Even = n%2 == 0
	spin.Dozen = (n-1)/12 + 1
	spin.Column = (n-1)%3 + 1
	return spin
}

// rouletteBetWins applies the category-specific win rule. Zero never wins
// odd/even/low/high. Dozen and column bets name their target index as the
// first listed number. Unknown categories lose.
func rouletteBetWins(bet RouletteBet, spin RouletteSpin) bool {
	switch bet.Type {
	case RouletteStraight:
		return slices.Contains(bet.Numbers, spin.Number)
	case RouletteRed:
		return spin.Color == "red"
	case RouletteBlack:
		return spin.Color == "black"
	case RouletteOdd:
		return spin.Odd
	case RouletteEven:
		return spin.Even
	case RouletteLow:
		return spin.Number >= 1 && spin.Number <= 18
	case RouletteHigh:
		return spin.Number >= 19 && spin.Number <= 36
	case RouletteDozen:
		return len(bet.Numbers) > 0 && bet.Numbers[0] == spin.Dozen
	case RouletteColumn:
		return len(bet.Numbers) > 0 && bet.Numbers[0] == spin.Column
	default:
		return false
	}
}
