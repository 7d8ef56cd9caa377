package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"subfun-backend/internal/effects"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres persists the same upsert-on-write contract in relational tables.
type Postgres struct {
	Pool *pgxpool.Pool
}

var (
	_ Store = (*Memory)(nil)
	_ Store = (*Postgres)(nil)
)

func NewPostgres(dsn string) (*Postgres, error) {
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, err
	}
	return &Postgres{Pool: pool}, nil
}

// EnsureSchema creates the tables if missing. Minimal schema for demo
// persistence; use migrations in real systems.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	_, err := p.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS sessions (
			session_key TEXT PRIMARY KEY,
			wallet_address TEXT,
			balance NUMERIC(12, 4) DEFAULT 10.0,
			active_substances JSONB DEFAULT '[]',
			tolerance JSONB DEFAULT '{}',
			last_used JSONB DEFAULT '{}',
			updated_at TIMESTAMPTZ DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS balances (
			wallet_address TEXT PRIMARY KEY,
			sub NUMERIC(12, 4) DEFAULT 10.0,
			sol NUMERIC(12, 4) DEFAULT 0.0,
			updated_at TIMESTAMPTZ DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS inventory (
			id SERIAL PRIMARY KEY,
			wallet_address TEXT NOT NULL,
			substance_id TEXT NOT NULL,
			quantity INTEGER DEFAULT 1,
			purchased_at TIMESTAMPTZ DEFAULT NOW(),
			UNIQUE (wallet_address, substance_id)
		);

		CREATE TABLE IF NOT EXISTS transactions (
			id TEXT PRIMARY KEY,
			wallet_address TEXT NOT NULL,
			substance_id TEXT NOT NULL,
			amount NUMERIC(12, 4) NOT NULL,
			currency TEXT DEFAULT 'SUB',
			persistent BOOLEAN DEFAULT FALSE,
			status TEXT DEFAULT 'confirmed',
			created_at TIMESTAMPTZ DEFAULT NOW()
		);
	`)
	return err
}

func (p *Postgres) GetSession(ctx context.Context, sessionKey string) (*Session, error) {
	row := p.Pool.QueryRow(ctx, `
		SELECT session_key, COALESCE(wallet_address, ''), balance, active_substances, tolerance, last_used
		FROM sessions WHERE session_key = $1`, sessionKey)

	var (
		sess             Session
		activeSubstances []byte
		tolerance        []byte
		lastUsed         []byte
	)
	if err := row.Scan(&sess.SessionKey, &sess.WalletAddress, &sess.Balance, &activeSubstances, &tolerance, &lastUsed); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	sess.ActiveSubstances = []effects.ActiveSubstance{}
	sess.Tolerance = map[string]int{}
	sess.LastUsed = map[string]int64{}
	if err := json.Unmarshal(activeSubstances, &sess.ActiveSubstances); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tolerance, &sess.Tolerance); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(lastUsed, &sess.LastUsed); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (p *Postgres) PutSession(ctx context.Context, sess *Session) error {
	activeSubstances, err := json.Marshal(sess.ActiveSubstances)
	if err != nil {
		return err
	}
	tolerance, err := json.Marshal(sess.Tolerance)
	if err != nil {
		return err
	}
	lastUsed, err := json.Marshal(sess.LastUsed)
	if err != nil {
		return err
	}
	var wallet *string
	if sess.WalletAddress != "" {
		wallet = &sess.WalletAddress
	}
	_, err = p.Pool.Exec(ctx, `
		INSERT INTO sessions (session_key, wallet_address, balance, active_substances, tolerance, last_used, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (session_key) DO UPDATE SET
			wallet_address = EXCLUDED.wallet_address,
			balance = EXCLUDED.balance,
			active_substances = EXCLUDED.active_substances,
			tolerance = EXCLUDED.tolerance,
			last_used = EXCLUDED.last_used,
			updated_at = NOW()`,
		sess.SessionKey, wallet, sess.Balance, activeSubstances, tolerance, lastUsed)
	return err
}

func (p *Postgres) GetBalance(ctx context.Context, walletAddress string) (*Balance, error) {
	row := p.Pool.QueryRow(ctx, `SELECT wallet_address, sub, sol FROM balances WHERE wallet_address = $1`, walletAddress)
	var b Balance
	if err := row.Scan(&b.WalletAddress, &b.Sub, &b.Sol); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (p *Postgres) SetBalance(ctx context.Context, walletAddress string, sub, sol float64) error {
	_, err := p.Pool.Exec(ctx, `
		INSERT INTO balances (wallet_address, sub, sol, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (wallet_address) DO UPDATE SET
			sub = EXCLUDED.sub,
			sol = EXCLUDED.sol,
			updated_at = NOW()`,
		walletAddress, sub, sol)
	return err
}

func (p *Postgres) GetInventory(ctx context.Context, walletAddress string) ([]InventoryItem, error) {
	rows, err := p.Pool.Query(ctx, `
		SELECT substance_id, quantity, purchased_at FROM inventory WHERE wallet_address = $1`, walletAddress)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []InventoryItem{}
	for rows.Next() {
		var (
			item        InventoryItem
			purchasedAt time.Time
		)
		if err := rows.Scan(&item.SubstanceID, &item.Quantity, &purchasedAt); err != nil {
			return nil, err
		}
		item.PurchasedAt = purchasedAt.UnixMilli()
		out = append(out, item)
	}
	return out, rows.Err()
}

func (p *Postgres) AddInventoryItem(ctx context.Context, walletAddress, substanceID string, quantity int) error {
	_, err := p.Pool.Exec(ctx, `
		INSERT INTO inventory (wallet_address, substance_id, quantity, purchased_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (wallet_address, substance_id) DO UPDATE SET
			quantity = inventory.quantity + EXCLUDED.quantity,
			purchased_at = NOW()`,
		walletAddress, substanceID, quantity)
	return err
}

func (p *Postgres) AppendTransaction(ctx context.Context, tx Transaction) error {
	_, err := p.Pool.Exec(ctx, `
		INSERT INTO transactions (id, wallet_address, substance_id, amount, currency, persistent, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		tx.ID, tx.WalletAddress, tx.SubstanceID, tx.Amount, tx.Currency, tx.Persistent, tx.Status, time.UnixMilli(tx.CreatedAt))
	return err
}

func (p *Postgres) ListTransactionsByWallet(ctx context.Context, walletAddress string) ([]Transaction, error) {
	rows, err := p.Pool.Query(ctx, `
		SELECT id, wallet_address, substance_id, amount, currency, persistent, status, created_at
		FROM transactions WHERE wallet_address = $1
		ORDER BY created_at DESC`, walletAddress)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Transaction{}
	for rows.Next() {
		var (
			tx        Transaction
			createdAt time.Time
		)
		if err := rows.Scan(&tx.ID, &tx.WalletAddress, &tx.SubstanceID, &tx.Amount, &tx.Currency, &tx.Persistent, &tx.Status, &createdAt); err != nil {
			return nil, err
		}
		tx.CreatedAt = createdAt.UnixMilli()
		out = append(out, tx)
	}
	return out, rows.Err()
}

func (p *Postgres) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return p.Pool.Ping(ctx)
}

func (p *Postgres) Close() {
	if p.Pool != nil {
		p.Pool.Close()
	}
}
