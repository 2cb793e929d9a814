package wallet

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Gateway on a SQLite database. Balances are stored
// as decimal strings and credits run inside an immediate transaction, so
// concurrent credits to the same player serialize at the database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Migrate creates the schema if it does not exist.
func (s *SQLiteStore) Migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS players (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			gold_coins TEXT NOT NULL DEFAULT '0',
			sweep_coins TEXT NOT NULL DEFAULT '0',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	}
	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// CreatePlayer inserts a player with their starting balances.
func (s *SQLiteStore) CreatePlayer(ctx context.Context, p Player) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO players (id, name, gold_coins, sweep_coins) VALUES (?, ?, ?, ?)`,
		p.ID, p.Name, p.Balance.GoldCoins.String(), p.Balance.SweepCoins.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}
	return nil
}

// GetPlayer returns the player for the id, or ErrPlayerNotFound.
func (s *SQLiteStore) GetPlayer(ctx context.Context, playerID string) (*Player, error) {
	var p Player
	var gc, sc string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, gold_coins, sweep_coins FROM players WHERE id = ?`,
		playerID,
	).Scan(&p.ID, &p.Name, &gc, &sc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	if p.Balance.GoldCoins, err = decimal.NewFromString(gc); err != nil {
		return nil, fmt.Errorf("corrupt gold_coins for player %s: %w", playerID, err)
	}
	if p.Balance.SweepCoins, err = decimal.NewFromString(sc); err != nil {
		return nil, fmt.Errorf("corrupt sweep_coins for player %s: %w", playerID, err)
	}
	return &p, nil
}

// AddBalance credits amount to the named ledger inside a transaction.
func (s *SQLiteStore) AddBalance(ctx context.Context, playerID string, amount decimal.Decimal, currency Currency) error {
	var column string
	switch currency {
	case GoldCoins:
		column = "gold_coins"
	case SweepCoins:
		column = "sweep_coins"
	default:
		return ErrUnknownCurrency
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var current string
	err = tx.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT %s FROM players WHERE id = ?`, column),
		playerID,
	).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrPlayerNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to read balance: %w", err)
	}

	balance, err := decimal.NewFromString(current)
	if err != nil {
		return fmt.Errorf("corrupt %s for player %s: %w", column, playerID, err)
	}

	if _, err := tx.ExecContext(ctx,
		fmt.Sprintf(`UPDATE players SET %s = ? WHERE id = ?`, column),
		balance.Add(amount).String(), playerID,
	); err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}
	return tx.Commit()
}
