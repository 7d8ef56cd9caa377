package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"subfun-backend/internal/effects"
)

// Memory is the map-backed store used when no Postgres DSN is configured.
// The Node original relied on single-threaded request handling; Go does not,
// so a mutex guards every map.
type Memory struct {
	mu           sync.Mutex
	sessions     map[string]*Session
	balances     map[string]Balance
	inventories  map[string][]InventoryItem
	transactions map[string]Transaction
}

func NewMemory() *Memory {
	return &Memory{
		sessions:     map[string]*Session{},
		balances:     map[string]Balance{},
		inventories:  map[string][]InventoryItem{},
		transactions: map[string]Transaction{},
	}
}

func (m *Memory) GetSession(_ context.Context, sessionKey string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[sessionKey]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneSession(sess), nil
}

func (m *Memory) PutSession(_ context.Context, sess *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sess.SessionKey] = cloneSession(sess)
	return nil
}

func (m *Memory) GetBalance(_ context.Context, walletAddress string) (*Balance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.balances[walletAddress]
	if !ok {
		return nil, ErrNotFound
	}
	return &b, nil
}

func (m *Memory) SetBalance(_ context.Context, walletAddress string, sub, sol float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances[walletAddress] = Balance{WalletAddress: walletAddress, Sub: sub, Sol: sol}
	return nil
}

func (m *Memory) GetInventory(_ context.Context, walletAddress string) ([]InventoryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := m.inventories[walletAddress]
	out := make([]InventoryItem, len(items))
	copy(out, items)
	return out, nil
}

func (m *Memory) AddInventoryItem(_ context.Context, walletAddress, substanceID string, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UnixMilli()
	items := m.inventories[walletAddress]
	for i := range items {
		if items[i].SubstanceID == substanceID {
			items[i].Quantity += quantity
			items[i].PurchasedAt = now
			return nil
		}
	}
	m.inventories[walletAddress] = append(items, InventoryItem{
		SubstanceID: substanceID,
		Quantity:    quantity,
		PurchasedAt: now,
	})
	return nil
}

func (m *Memory) AppendTransaction(_ context.Context, tx Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions[tx.ID] = tx
	return nil
}

func (m *Memory) ListTransactionsByWallet(_ context.Context, walletAddress string) ([]Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []Transaction{}
	for _, tx := range m.transactions {
		if tx.WalletAddress == walletAddress {
			out = append(out, tx)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt == out[j].CreatedAt {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out, nil
}

func (m *Memory) Ping(context.Context) error { return nil }

func (m *Memory) Close() {}

func cloneSession(sess *Session) *Session {
	out := &Session{
		SessionKey:       sess.SessionKey,
		WalletAddress:    sess.WalletAddress,
		Balance:          sess.Balance,
		ActiveSubstances: make([]effects.ActiveSubstance, len(sess.ActiveSubstances)),
		Tolerance:        make(map[string]int, len(sess.Tolerance)),
		LastUsed:         make(map[string]int64, len(sess.LastUsed)),
	}
	copy(out.ActiveSubstances, sess.ActiveSubstances)
	for k, v := range sess.Tolerance {
		out.Tolerance[k] = v
	}
	for k, v := range sess.LastUsed {
		out.LastUsed[k] = v
	}
	return out
}
