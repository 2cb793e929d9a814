package games

import (
	"context"

	"github.com/shopspring/decimal"
)

// PlayRequest is the tagged action surface a host routes into the engine.
// The game-type-specific fields beyond TableID and PlayerID are only read
// for the matching game.
type PlayRequest struct {
	GameType string          `json:"gameType"`
	TableID  string          `json:"tableId"`
	PlayerID string          `json:"playerId"`
	Action   string          `json:"action,omitempty"`
	Amount   decimal.Decimal `json:"amount,omitempty"`
	Bets     []RouletteBet   `json:"bets,omitempty"`
	BetType  string          `json:"betType,omitempty"`
}

// PlayResult carries the outcome of whichever game was played.
type PlayResult struct {
	GameType  GameType          `json:"gameType"`
	Blackjack *BlackjackOutcome `json:"blackjack,omitempty"`
	Roulette  *RouletteOutcome  `json:"roulette,omitempty"`
	Baccarat  *BaccaratOutcome  `json:"baccarat,omitempty"`
}

// Play routes a tagged request to the matching resolver. The wire strings
// are parsed into the closed per-game types at this boundary; everything past
// it is exhaustively matched.
func (e *Engine) Play(ctx context.Context, req PlayRequest) (*PlayResult, error) {
	switch GameType(req.GameType) {
	case GameTypeBlackjack:
		action, err := ParseBlackjackAction(req.Action)
		if err != nil {
			return nil, err
		}
		outcome, err := e.Blackjack(ctx, BlackjackRequest{
			PlayerID: req.PlayerID,
			TableID:  req.TableID,
			Action:   action,
			Amount:   req.Amount,
		})
		if err != nil {
			return nil, err
		}
		return &PlayResult{GameType: GameTypeBlackjack, Blackjack: outcome}, nil

	case GameTypeRoulette:
		outcome, err := e.Roulette(ctx, RouletteRequest{
			PlayerID: req.PlayerID,
			TableID:  req.TableID,
			Bets:     req.Bets,
		})
		if err != nil {
			return nil, err
		}
		return &PlayResult{GameType: GameTypeRoulette, Roulette: outcome}, nil

	case GameTypeBaccarat:
		betType, err := ParseBaccaratBetType(req.BetType)
		if err != nil {
			return nil, err
		}
		outcome, err := e.Baccarat(ctx, BaccaratRequest{
			PlayerID: req.PlayerID,
			TableID:  req.TableID,
			BetType:  betType,
			Amount:   req.Amount,
		})
		if err != nil {
			return nil, err
		}
		return &PlayResult{GameType: GameTypeBaccarat, Baccarat: outcome}, nil

	default:
		return nil, unrecognized("Unknown game type")
	}
}
