package wallet

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMemoryStoreGetPlayer(t *testing.T) {
	store := NewMemoryStore()
	store.PutPlayer(Player{ID: "p1", Name: "Alice", Balance: Balance{GoldCoins: decimal.NewFromInt(100)}})

	p, err := store.GetPlayer(context.Background(), "p1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !p.Balance.GoldCoins.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected 100 gold coins, got %s", p.Balance.GoldCoins)
	}

	if _, err := store.GetPlayer(context.Background(), "missing"); !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("expected ErrPlayerNotFound, got %v", err)
	}
}

func TestMemoryStoreAddBalance(t *testing.T) {
	store := NewMemoryStore()
	store.PutPlayer(Player{ID: "p1", Balance: Balance{GoldCoins: decimal.NewFromInt(10), SweepCoins: decimal.NewFromInt(5)}})
	ctx := context.Background()

	if err := store.AddBalance(ctx, "p1", decimal.NewFromInt(15), GoldCoins); err != nil {
		t.Fatalf("add gold failed: %v", err)
	}
	if err := store.AddBalance(ctx, "p1", decimal.NewFromInt(3), SweepCoins); err != nil {
		t.Fatalf("add sweep failed: %v", err)
	}

	p, _ := store.GetPlayer(ctx, "p1")
	if !p.Balance.GoldCoins.Equal(decimal.NewFromInt(25)) {
		t.Errorf("expected 25 gold coins, got %s", p.Balance.GoldCoins)
	}
	if !p.Balance.SweepCoins.Equal(decimal.NewFromInt(8)) {
		t.Errorf("expected 8 sweep coins, got %s", p.Balance.SweepCoins)
	}

	if err := store.AddBalance(ctx, "missing", decimal.NewFromInt(1), GoldCoins); !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("expected ErrPlayerNotFound, got %v", err)
	}
	if err := store.AddBalance(ctx, "p1", decimal.NewFromInt(1), "doubloons"); !errors.Is(err, ErrUnknownCurrency) {
		t.Errorf("expected ErrUnknownCurrency, got %v", err)
	}
}

func TestMemoryStoreConcurrentCredits(t *testing.T) {
	store := NewMemoryStore()
	store.PutPlayer(Player{ID: "p1"})
	ctx := context.Background()

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if err := store.AddBalance(ctx, "p1", decimal.NewFromInt(2), GoldCoins); err != nil {
				t.Errorf("credit failed: %v", err)
			}
		}()
	}
	wg.Wait()

	p, _ := store.GetPlayer(ctx, "p1")
	if !p.Balance.GoldCoins.Equal(decimal.NewFromInt(workers * 2)) {
		t.Errorf("lost credits: expected %d, got %s", workers*2, p.Balance.GoldCoins)
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	store.PutPlayer(Player{ID: "p1", Balance: Balance{GoldCoins: decimal.NewFromInt(10)}})
	ctx := context.Background()

	p, _ := store.GetPlayer(ctx, "p1")
	p.Balance.GoldCoins = decimal.NewFromInt(9999)

	fresh, _ := store.GetPlayer(ctx, "p1")
	if !fresh.Balance.GoldCoins.Equal(decimal.NewFromInt(10)) {
		t.Error("GetPlayer leaked a mutable reference")
	}
}
