package market

import (
	"context"
	"errors"
	"fmt"
	"time"

	"subfun-backend/internal/catalog"
	"subfun-backend/internal/store"
)

const persistentPriceMultiplier = 5

// Service implements the purchase, inventory and balance operations over
// whichever ledger backend the process was started with.
type Service struct {
	store store.Store
	now   func() time.Time
}

func NewService(st store.Store) *Service {
	return &Service{store: st, now: time.Now}
}

// Purchase records a confirmed transaction for a catalog substance. The
// persistent variant costs five times the list price. Signatures are
// recorded as received; on-chain verification is a separate concern.
func (s *Service) Purchase(ctx context.Context, substanceID string, in PurchaseInput) (PurchaseResult, error) {
	sub, ok := catalog.ByID(substanceID)
	if !ok {
		return PurchaseResult{}, ErrSubstanceNotFound
	}
	if in.WalletAddress == "" {
		return PurchaseResult{}, ErrWalletRequired
	}

	finalPrice := sub.Price
	if in.Persistent {
		finalPrice *= persistentPriceMultiplier
	}

	tx := store.Transaction{
		ID:            "tx_" + store.NewID(),
		WalletAddress: in.WalletAddress,
		SubstanceID:   substanceID,
		Amount:        finalPrice,
		Currency:      "SOL",
		Persistent:    in.Persistent,
		Status:        "confirmed",
		CreatedAt:     s.now().UnixMilli(),
	}
	if err := s.store.AppendTransaction(ctx, tx); err != nil {
		return PurchaseResult{}, fmt.Errorf("append transaction: %w", err)
	}

	message := fmt.Sprintf("Substance '%s' purchased. Temporary duration: %d turns.",
		sub.Name, sub.Stage2.Duration)
	if in.Persistent {
		message = fmt.Sprintf("Substance '%s' purchased with persistent file editing enabled. "+
			"Edits SOUL.md, TOOLS.md, and HEARTBEAT.md.", sub.Name)
	}

	return PurchaseResult{
		TransactionID: tx.ID,
		Substance:     sub.Name,
		Price:         finalPrice,
		PaidIn:        tx.Currency,
		Persistent:    in.Persistent,
		Status:        tx.Status,
		Message:       message,
	}, nil
}

// History returns the wallet's transactions newest first.
func (s *Service) History(ctx context.Context, walletAddress string) (HistoryResult, error) {
	if walletAddress == "" {
		return HistoryResult{}, ErrWalletRequired
	}
	items, err := s.store.ListTransactionsByWallet(ctx, walletAddress)
	if err != nil {
		return HistoryResult{}, fmt.Errorf("list transactions: %w", err)
	}
	if items == nil {
		items = []store.Transaction{}
	}
	return HistoryResult{Count: len(items), Items: items}, nil
}

func (s *Service) Inventory(ctx context.Context, walletAddress string) (InventoryResult, error) {
	if walletAddress == "" {
		return InventoryResult{}, ErrWalletRequired
	}
	items, err := s.store.GetInventory(ctx, walletAddress)
	if err != nil {
		return InventoryResult{}, fmt.Errorf("get inventory: %w", err)
	}
	if items == nil {
		items = []store.InventoryItem{}
	}
	return InventoryResult{
		WalletAddress: walletAddress,
		Substances:    items,
		CreatedAt:     s.now().UnixMilli(),
	}, nil
}

// AddToInventory upserts a substance into the wallet's inventory,
// accumulating quantity and refreshing purchasedAt.
func (s *Service) AddToInventory(ctx context.Context, in AddInventoryInput) (InventoryResult, error) {
	if in.WalletAddress == "" || in.SubstanceID == "" {
		return InventoryResult{}, ErrWalletRequired
	}
	qty := in.Quantity
	if qty <= 0 {
		qty = 1
	}
	if err := s.store.AddInventoryItem(ctx, in.WalletAddress, in.SubstanceID, qty); err != nil {
		return InventoryResult{}, fmt.Errorf("add inventory item: %w", err)
	}
	return s.Inventory(ctx, in.WalletAddress)
}

// Balance resolves a balance view either by wallet (ledger, with the
// default starting balance for unseen wallets) or by session key.
func (s *Service) Balance(ctx context.Context, walletAddress, sessionKey string) (BalanceResult, error) {
	switch {
	case walletAddress != "":
		bal, err := s.store.GetBalance(ctx, walletAddress)
		if errors.Is(err, store.ErrNotFound) {
			bal = &store.Balance{WalletAddress: walletAddress, Sub: store.DefaultBalanceSUB, Sol: 0.0}
		} else if err != nil {
			return BalanceResult{}, fmt.Errorf("get balance: %w", err)
		}
		return balanceView(walletAddress, bal.Sub, bal.Sol), nil
	case sessionKey != "":
		sess, err := s.store.GetSession(ctx, sessionKey)
		if errors.Is(err, store.ErrNotFound) {
			return balanceView("", store.DefaultBalanceSUB, 0.0), nil
		} else if err != nil {
			return BalanceResult{}, fmt.Errorf("get session: %w", err)
		}
		return balanceView(sess.WalletAddress, sess.Balance, 0.0), nil
	default:
		return BalanceResult{}, ErrWalletRequired
	}
}

// Topup adds funds to the wallet's ledger balance. The write is a full
// overwrite after a read-modify, matching the ledger contract.
func (s *Service) Topup(ctx context.Context, in TopupInput) (TopupResult, error) {
	if in.WalletAddress == "" || in.Signature == "" || in.Amount == 0 {
		return TopupResult{}, ErrWalletRequired
	}
	if in.Amount < 0 {
		return TopupResult{}, ErrInvalidAmount
	}
	currency := in.Currency
	if currency == "" {
		currency = "SUB"
	}

	bal, err := s.store.GetBalance(ctx, in.WalletAddress)
	if errors.Is(err, store.ErrNotFound) {
		bal = &store.Balance{WalletAddress: in.WalletAddress, Sub: store.DefaultBalanceSUB, Sol: 0.0}
	} else if err != nil {
		return TopupResult{}, fmt.Errorf("get balance: %w", err)
	}

	switch currency {
	case "SUB":
		bal.Sub += in.Amount
	case "SOL":
		bal.Sol += in.Amount
	}

	if err := s.store.SetBalance(ctx, in.WalletAddress, bal.Sub, bal.Sol); err != nil {
		return TopupResult{}, fmt.Errorf("set balance: %w", err)
	}

	return TopupResult{
		Message:       fmt.Sprintf("Successfully added %.4f %s to balance", in.Amount, currency),
		NewBalance:    BalanceTokens{SUB: fixed4(bal.Sub), SOL: fixed4(bal.Sol)},
		TransactionID: "topup_" + store.NewID(),
	}, nil
}

func balanceView(wallet string, sub, sol float64) BalanceResult {
	return BalanceResult{
		WalletAddress: wallet,
		Sub:           fixed4(sub),
		Sol:           fixed4(sol),
		Tokens:        BalanceTokens{SUB: fixed4(sub), SOL: fixed4(sol)},
	}
}

func fixed4(v float64) string {
	return fmt.Sprintf("%.4f", v)
}
