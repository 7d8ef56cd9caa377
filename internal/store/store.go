// Package store provides keyed persistence for sessions, balances,
// inventories, and transactions. Two backends implement the same contract:
// an in-memory map store and a Postgres store; callers never branch on which
// one they hold.
package store

import (
	"context"
	"errors"

	"subfun-backend/internal/effects"
)

var ErrNotFound = errors.New("not found")

// DefaultBalanceSUB is the starting SUB balance for new sessions and wallets.
const DefaultBalanceSUB = 10.0

// Session is the per-session-key record. WalletAddress is sticky: set once,
// never overwritten. LastUsed timestamps are epoch milliseconds.
type Session struct {
	SessionKey       string                    `json:"sessionKey"`
	WalletAddress    string                    `json:"walletAddress,omitempty"`
	Balance          float64                   `json:"balance"`
	ActiveSubstances []effects.ActiveSubstance `json:"activeSubstances"`
	Tolerance        map[string]int            `json:"tolerance"`
	LastUsed         map[string]int64          `json:"lastUsed"`
}

// NewSession creates an empty session at the starting balance.
func NewSession(sessionKey string) *Session {
	return &Session{
		SessionKey:       sessionKey,
		Balance:          DefaultBalanceSUB,
		ActiveSubstances: []effects.ActiveSubstance{},
		Tolerance:        map[string]int{},
		LastUsed:         map[string]int64{},
	}
}

type Balance struct {
	WalletAddress string  `json:"walletAddress"`
	Sub           float64 `json:"sub"`
	Sol           float64 `json:"sol"`
}

type InventoryItem struct {
	SubstanceID string `json:"substanceId"`
	Quantity    int    `json:"quantity"`
	PurchasedAt int64  `json:"purchasedAt"`
}

// Transaction is an append-only ledger entry. CreatedAt is epoch milliseconds.
type Transaction struct {
	ID            string  `json:"id"`
	WalletAddress string  `json:"walletAddress"`
	SubstanceID   string  `json:"substanceId"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Persistent    bool    `json:"persistent"`
	Status        string  `json:"status"`
	CreatedAt     int64   `json:"createdAt"`
}

// Store is the capability contract shared by both backends. All writes are
// upserts; reads of missing keys return ErrNotFound except where noted.
type Store interface {
	GetSession(ctx context.Context, sessionKey string) (*Session, error)
	PutSession(ctx context.Context, sess *Session) error

	GetBalance(ctx context.Context, walletAddress string) (*Balance, error)
	// SetBalance is a full overwrite, not an increment.
	SetBalance(ctx context.Context, walletAddress string, sub, sol float64) error

	// GetInventory returns an empty list for unknown wallets.
	GetInventory(ctx context.Context, walletAddress string) ([]InventoryItem, error)
	// AddInventoryItem upserts on (wallet, substance), accumulating quantity
	// and refreshing purchasedAt.
	AddInventoryItem(ctx context.Context, walletAddress, substanceID string, quantity int) error

	AppendTransaction(ctx context.Context, tx Transaction) error
	// ListTransactionsByWallet returns entries newest first.
	ListTransactionsByWallet(ctx context.Context, walletAddress string) ([]Transaction, error)

	Ping(ctx context.Context) error
	Close()
}

// Open selects the backend: Postgres when dsn is set (creating the schema if
// needed), the in-memory store otherwise.
func Open(ctx context.Context, dsn string) (Store, error) {
	if dsn == "" {
		return NewMemory(), nil
	}
	pg, err := NewPostgres(dsn)
	if err != nil {
		return nil, err
	}
	if err := pg.EnsureSchema(ctx); err != nil {
		pg.Close()
		return nil, err
	}
	return pg, nil
}
