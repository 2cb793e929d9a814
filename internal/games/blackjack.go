package games

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// BlackjackAction is the closed set of blackjack operations.
type BlackjackAction int

const (
	BlackjackBet BlackjackAction = iota
	BlackjackHit
	BlackjackStand
	BlackjackDouble
)

// ParseBlackjackAction maps a wire action string to the closed action set.
func ParseBlackjackAction(s string) (BlackjackAction, error) {
	switch s {
	case "bet":
		return BlackjackBet, nil
	case "hit":
		return BlackjackHit, nil
	case "stand":
		return BlackjackStand, nil
	case "double":
		return BlackjackDouble, nil
	default:
		return 0, unrecognized("Invalid action")
	}
}

func (a BlackjackAction) String() string {
	switch a {
	case BlackjackBet:
		return "bet"
	case BlackjackHit:
		return "hit"
	case BlackjackStand:
		return "stand"
	case BlackjackDouble:
		return "double"
	default:
		return "unknown"
	}
}

// BlackjackResult is the round outcome from the player's perspective.
type BlackjackResult string

const (
	BlackjackWin  BlackjackResult = "win"
	BlackjackLose BlackjackResult = "lose"
	BlackjackPush BlackjackResult = "push"
)

// BlackjackRequest is one player action against a blackjack table. Amount is
// only read for the bet action.
type BlackjackRequest struct {
	PlayerID string
	TableID  string
	Action   BlackjackAction
	Amount   decimal.Decimal
}

// BlackjackOutcome reports the state visible to the player after an action.
// Dealer fields beyond the upcard are only populated once the round resolves.
type BlackjackOutcome struct {
	RoundID      string          `json:"roundId"`
	Stage        string          `json:"stage"`
	Hand         []Card          `json:"hand"`
	Score        int             `json:"score"`
	Bust         bool            `json:"bust,omitempty"`
	DealerUpcard *Card           `json:"dealerUpcard,omitempty"`
	DealerHand   []Card          `json:"dealerHand,omitempty"`
	DealerScore  int             `json:"dealerScore,omitempty"`
	Bet          decimal.Decimal `json:"bet"`
	Result       BlackjackResult `json:"result,omitempty"`
	Payout       decimal.Decimal `json:"payout"`
}

// Blackjack runs one action of the blackjack state machine
// (betting -> playing -> resolved) against a table's round state.
func (e *Engine) Blackjack(ctx context.Context, req BlackjackRequest) (*BlackjackOutcome, error) {
	switch req.Action {
	case BlackjackBet:
		return e.blackjackBet(ctx, req)
	case BlackjackHit:
		return e.blackjackHit(ctx, req)
	case BlackjackStand:
		return e.blackjackStand(ctx, req)
	case BlackjackDouble:
		return e.blackjackDouble(ctx, req)
	default:
		return nil, unrecognized("Invalid action")
	}
}

func (e *Engine) blackjackBet(ctx context.Context, req BlackjackRequest) (*BlackjackOutcome, error) {
	t, err := e.table(req.TableID, GameTypeBlackjack, "Invalid blackjack table")
	if err != nil {
		return nil, err
	}
	if _, err := e.player(ctx, req.PlayerID); err != nil {
		return nil, err
	}
	// Bounds are the gold-coin ceilings; sweep-coin betting is not wired
	// into the table-games paths.
	if req.Amount.LessThan(t.MinBet.GoldCoins) || req.Amount.GreaterThan(t.MaxBet.GoldCoins) {
		return nil, invalid("Invalid bet amount")
	}

	round := e.rounds.getOrCreate(req.TableID, e.newDeck)
	// A new bet reuses the table's round object: the remaining deck carries
	// over, only the hands are dealt fresh.
	hand := []Card{e.draw(round), e.draw(round)}
	round.hands[req.PlayerID] = hand
	round.dealer = []Card{e.draw(round), e.draw(round)}
	round.bets[req.PlayerID] = req.Amount
	round.stage = stagePlaying

	score := blackjackHandValue(hand)
	upcard := round.dealer[0]
	e.log.Info("blackjack bet placed",
		zap.String("round_id", round.id),
		zap.String("table_id", req.TableID),
		zap.String("player_id", req.PlayerID),
		zap.String("amount", req.Amount.String()),
		zap.Int("score", score),
	)
	return &BlackjackOutcome{
		RoundID:      round.id,
		Stage:        string(round.stage),
		Hand:         snapshotHand(hand),
		Score:        score,
		DealerUpcard: &upcard,
		Bet:          req.Amount,
		Payout:       decimal.Zero,
	}, nil
}

func (e *Engine) blackjackHit(ctx context.Context, req BlackjackRequest) (*BlackjackOutcome, error) {
	if _, err := e.table(req.TableID, GameTypeBlackjack, "Invalid blackjack table"); err != nil {
		return nil, err
	}
	round := e.rounds.get(req.TableID)
	if round == nil {
		return nil, invalid("No active hand")
	}
	hand, ok := round.hands[req.PlayerID]
	if !ok {
		return nil, invalid("No active hand")
	}

	hand = append(hand, e.draw(round))
	round.hands[req.PlayerID] = hand
	score := blackjackHandValue(hand)
	upcard := round.dealer[0]

	// A bust is reported but does not resolve the round; the caller must
	// still stand to trigger settlement.
	return &BlackjackOutcome{
		RoundID:      round.id,
		Stage:        string(round.stage),
		Hand:         snapshotHand(hand),
		Score:        score,
		Bust:         score > 21,
		DealerUpcard: &upcard,
		Bet:          round.bets[req.PlayerID],
		Payout:       decimal.Zero,
	}, nil
}

func (e *Engine) blackjackStand(ctx context.Context, req BlackjackRequest) (*BlackjackOutcome, error) {
	if _, err := e.table(req.TableID, GameTypeBlackjack, "Invalid blackjack table"); err != nil {
		return nil, err
	}
	round := e.rounds.get(req.TableID)
	if round == nil {
		return nil, invalid("No active hand")
	}
	if _, ok := round.hands[req.PlayerID]; !ok {
		return nil, invalid("No active hand")
	}
	return e.resolveBlackjack(ctx, round, req.TableID, req.PlayerID)
}

func (e *Engine) blackjackDouble(ctx context.Context, req BlackjackRequest) (*BlackjackOutcome, error) {
	if _, err := e.table(req.TableID, GameTypeBlackjack, "Invalid blackjack table"); err != nil {
		return nil, err
	}
	round := e.rounds.get(req.TableID)
	if round == nil {
		return nil, invalid("No active hand")
	}
	hand, ok := round.hands[req.PlayerID]
	if !ok {
		return nil, invalid("No active hand")
	}
	p, err := e.player(ctx, req.PlayerID)
	if err != nil {
		return nil, err
	}
	bet := round.bets[req.PlayerID]
	// Affordability is checked against the gold-coin balance only, not the
	// table ceiling, so a doubled bet may exceed MaxBet.
	if p.Balance.GoldCoins.LessThan(bet) {
		return nil, invalid("Insufficient funds to double")
	}

	round.bets[req.PlayerID] = bet.Add(bet)
	round.hands[req.PlayerID] = append(hand, e.draw(round))
	return e.resolveBlackjack(ctx, round, req.TableID, req.PlayerID)
}

// resolveBlackjack draws the dealer to 17 (hard 17 rule, no soft-17
// distinction), settles the player's bet, and credits any payout to the
// gold-coin ledger.
func (e *Engine) resolveBlackjack(ctx context.Context, round *blackjackRound, tableID, playerID string) (*BlackjackOutcome, error) {
	for blackjackHandValue(round.dealer) < 17 {
		round.dealer = append(round.dealer, e.draw(round))
	}

	hand := round.hands[playerID]
	bet := round.bets[playerID]
	playerScore := blackjackHandValue(hand)
	dealerScore := blackjackHandValue(round.dealer)

	var result BlackjackResult
	payout := decimal.Zero
	switch {
	case playerScore > 21:
		result = BlackjackLose
	case dealerScore > 21:
		result = BlackjackWin
		payout = bet.Mul(decimal.NewFromInt(2))
	case playerScore > dealerScore:
		result = BlackjackWin
		payout = bet.Mul(decimal.NewFromInt(2))
	case playerScore < dealerScore:
		result = BlackjackLose
	default:
		result = BlackjackPush
		payout = bet
	}

	if err := e.creditGoldCoins(ctx, playerID, payout); err != nil {
		return nil, err
	}
	round.stage = stageResolved

	e.log.Info("blackjack round resolved",
		zap.String("round_id", round.id),
		zap.String("table_id", tableID),
		zap.String("player_id", playerID),
		zap.Int("player_score", playerScore),
		zap.Int("dealer_score", dealerScore),
		zap.String("result", string(result)),
		zap.String("payout", payout.String()),
	)
	return &BlackjackOutcome{
		RoundID:     round.id,
		Stage:       string(round.stage),
		Hand:        snapshotHand(hand),
		Score:       playerScore,
		Bust:        playerScore > 21,
		DealerHand:  snapshotHand(round.dealer),
		DealerScore: dealerScore,
		Bet:         bet,
		Result:      result,
		Payout:      payout,
	}, nil
}

// draw pops the next card from the round's deck, replenishing with a fresh
// shuffled deck when it runs dry. A long-running table would otherwise hit
// the undefined empty-deck case.
func (e *Engine) draw(round *blackjackRound) Card {
	if round.deck.Remaining() == 0 {
		round.deck = e.newDeck()
	}
	return round.deck.Draw()
}
