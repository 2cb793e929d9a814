package games

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// BaccaratBetType is the closed set of baccarat wager categories.
type BaccaratBetType string

const (
	BaccaratPlayer BaccaratBetType = "player"
	BaccaratBanker BaccaratBetType = "banker"
	BaccaratTie    BaccaratBetType = "tie"
)

// ParseBaccaratBetType maps a wire bet type string to the closed set.
func ParseBaccaratBetType(s string) (BaccaratBetType, error) {
	switch s {
	case "player":
		return BaccaratPlayer, nil
	case "banker":
		return BaccaratBanker, nil
	case "tie":
		return BaccaratTie, nil
	default:
		return "", unrecognized("Invalid bet type")
	}
}

// Payout multipliers applied to the stake when the bet matches the winner.
// Banker pays 0.95:1 after the 5% commission; tie pays 8:1 net.
var baccaratPayouts = map[BaccaratBetType]decimal.Decimal{
	BaccaratPlayer: decimal.NewFromInt(2),
	BaccaratBanker: decimal.NewFromFloat(1.95),
	BaccaratTie:    decimal.NewFromInt(9),
}

// BaccaratRequest is a single bet on one fresh round.
type BaccaratRequest struct {
	PlayerID string
	TableID  string
	BetType  BaccaratBetType
	Amount   decimal.Decimal
}

// BaccaratHand is one side's final hand with its value and natural flag.
type BaccaratHand struct {
	Cards   []Card `json:"cards"`
	Value   int    `json:"value"`
	Natural bool   `json:"natural"`
}

// BaccaratOutcome reports both hands, the winner, and the settlement.
type BaccaratOutcome struct {
	PlayerHand BaccaratHand    `json:"playerHand"`
	BankerHand BaccaratHand    `json:"bankerHand"`
	Winner     BaccaratBetType `json:"winner"`
	Won        bool            `json:"won"`
	Payout     decimal.Decimal `json:"payout"`
}

// Baccarat resolves one Punto Banco round against a single bet. Each call
// deals from its own freshly shuffled deck, independent of any blackjack
// state. Bet amounts are not range-checked against the table limits.
func (e *Engine) Baccarat(ctx context.Context, req BaccaratRequest) (*BaccaratOutcome, error) {
	if _, err := e.table(req.TableID, GameTypeBaccarat, "Invalid baccarat table"); err != nil {
		return nil, err
	}
	if _, err := e.player(ctx, req.PlayerID); err != nil {
		return nil, err
	}
	if _, ok := baccaratPayouts[req.BetType]; !ok {
		return nil, unrecognized("Invalid bet type")
	}

	outcome := e.dealBaccarat(e.newDeck())

	payout := decimal.Zero
	if req.BetType == outcome.Winner {
		outcome.Won = true
		payout = req.Amount.Mul(baccaratPayouts[req.BetType])
	}
	outcome.Payout = payout
	if err := e.creditGoldCoins(ctx, req.PlayerID, payout); err != nil {
		return nil, err
	}

	e.log.Info("baccarat round resolved",
		zap.String("table_id", req.TableID),
		zap.String("player_id", req.PlayerID),
		zap.String("bet_type", string(req.BetType)),
		zap.String("winner", string(outcome.Winner)),
		zap.Int("player_value", outcome.PlayerHand.Value),
		zap.Int("banker_value", outcome.BankerHand.Value),
		zap.String("payout", payout.String()),
	)
	return outcome, nil
}

// dealBaccarat plays out one round from the given deck: initial two-card
// hands, the natural check, then the Punto Banco third-card rules.
func (e *Engine) dealBaccarat(deck *Deck) *BaccaratOutcome {
	// Standard deal order: player1, banker1, player2, banker2.
	p1 := deck.Draw()
	b1 := deck.Draw()
	p2 := deck.Draw()
	b2 := deck.Draw()
	player := []Card{p1, p2}
	banker := []Card{b1, b2}

	playerValue := baccaratHandValue(player)
	bankerValue := baccaratHandValue(banker)
	playerNatural := playerValue >= 8
	bankerNatural := bankerValue >= 8

	// A natural on either side ends the round with no further draws.
	if !playerNatural && !bankerNatural {
		playerDrew := false
		var third Card
		if playerValue <= 5 {
			third = deck.Draw()
			player = append(player, third)
			playerValue = baccaratHandValue(player)
			playerDrew = true
		}

		bankerDraws := false
		if playerDrew {
			bankerDraws = bankerShouldDraw(bankerValue, baccaratCardValue(third.Rank))
		} else {
			bankerDraws = bankerValue <= 5
		}
		if bankerDraws {
			banker = append(banker, deck.Draw())
			bankerValue = baccaratHandValue(banker)
		}
	}

	var winner BaccaratBetType
	switch {
	case playerValue > bankerValue:
		winner = BaccaratPlayer
	case bankerValue > playerValue:
		winner = BaccaratBanker
	default:
		winner = BaccaratTie
	}

	return &BaccaratOutcome{
		PlayerHand: BaccaratHand{Cards: player, Value: playerValue, Natural: playerNatural},
		BankerHand: BaccaratHand{Cards: banker, Value: bankerValue, Natural: bankerNatural},
		Winner:     winner,
		Payout:     decimal.Zero,
	}
}

// bankerShouldDraw implements the standard Punto Banco banker third-card
// table, keyed by the banker's two-card value and the point value of the
// player's third card.
func bankerShouldDraw(bankerValue, playerThirdCard int) bool {
	switch bankerValue {
	case 0, 1, 2:
		return true
	case 3:
		return playerThirdCard != 8
	case 4:
		return playerThirdCard >= 2 && playerThirdCard <= 7
	case 5:
		return playerThirdCard >= 4 && playerThirdCard <= 7
	case 6:
		return playerThirdCard == 6 || playerThirdCard == 7
	default: // 7
		return false
	}
}
