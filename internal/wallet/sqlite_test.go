package wallet

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	if err := store.Migrate(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return store
}

func TestSQLiteStoreCreateAndGet(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	p := Player{
		ID:   "p1",
		Name: "Alice",
		Balance: Balance{
			GoldCoins:  decimal.NewFromInt(100),
			SweepCoins: decimal.RequireFromString("2.50"),
		},
	}
	if err := store.CreatePlayer(ctx, p); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := store.GetPlayer(ctx, "p1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != "Alice" {
		t.Errorf("expected name Alice, got %s", got.Name)
	}
	if !got.Balance.GoldCoins.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected 100 gold coins, got %s", got.Balance.GoldCoins)
	}
	if !got.Balance.SweepCoins.Equal(decimal.RequireFromString("2.50")) {
		t.Errorf("expected 2.50 sweep coins, got %s", got.Balance.SweepCoins)
	}

	if _, err := store.GetPlayer(ctx, "missing"); !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("expected ErrPlayerNotFound, got %v", err)
	}
}

func TestSQLiteStoreAddBalance(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	if err := store.CreatePlayer(ctx, Player{ID: "p1", Name: "Alice"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := store.AddBalance(ctx, "p1", decimal.RequireFromString("19.50"), GoldCoins); err != nil {
		t.Fatalf("add gold failed: %v", err)
	}
	if err := store.AddBalance(ctx, "p1", decimal.NewFromInt(4), SweepCoins); err != nil {
		t.Fatalf("add sweep failed: %v", err)
	}
	if err := store.AddBalance(ctx, "p1", decimal.RequireFromString("0.50"), GoldCoins); err != nil {
		t.Fatalf("second add gold failed: %v", err)
	}

	p, err := store.GetPlayer(ctx, "p1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !p.Balance.GoldCoins.Equal(decimal.NewFromInt(20)) {
		t.Errorf("expected 20 gold coins, got %s", p.Balance.GoldCoins)
	}
	if !p.Balance.SweepCoins.Equal(decimal.NewFromInt(4)) {
		t.Errorf("expected 4 sweep coins, got %s", p.Balance.SweepCoins)
	}

	if err := store.AddBalance(ctx, "missing", decimal.NewFromInt(1), GoldCoins); !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("expected ErrPlayerNotFound, got %v", err)
	}
	if err := store.AddBalance(ctx, "p1", decimal.NewFromInt(1), "doubloons"); !errors.Is(err, ErrUnknownCurrency) {
		t.Errorf("expected ErrUnknownCurrency, got %v", err)
	}
}
