package store

import (
	"context"
	"testing"
	"time"

	"subfun-backend/internal/effects"
)

// The contract suite runs against any backend; memory_test.go and
// postgres_test.go feed it their stores.
func runStoreContract(t *testing.T, st Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("sessions", func(t *testing.T) {
		if _, err := st.GetSession(ctx, "missing"); err != ErrNotFound {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}

		sess := NewSession("sess-1")
		sess.WalletAddress = "wallet-1"
		sess.Balance = 9.5
		sess.Tolerance["caffeine-shot"] = 3
		sess.LastUsed["caffeine-shot"] = time.Now().UnixMilli()
		sess.ActiveSubstances = append(sess.ActiveSubstances, effects.ActiveSubstance{
			ID:        "caffeine-shot",
			Name:      "Caffeine Shot",
			Category:  "stimulant",
			Dose:      effects.DoseToke,
			StartedAt: 1000,
			Duration:  8,
			ExpiresAt: 9000,
			Strength:  1.0,
			Parameters: effects.Parameters{
				Temperature: 0.9,
				TopP:        0.9,
			},
			SideEffects: map[string]any{"depth_penalty": 0.4},
		})
		if err := st.PutSession(ctx, sess); err != nil {
			t.Fatalf("put session: %v", err)
		}

		got, err := st.GetSession(ctx, "sess-1")
		if err != nil {
			t.Fatalf("get session: %v", err)
		}
		if got.WalletAddress != "wallet-1" || got.Balance != 9.5 {
			t.Fatalf("unexpected session: %+v", got)
		}
		if got.Tolerance["caffeine-shot"] != 3 {
			t.Fatalf("tolerance not persisted: %+v", got.Tolerance)
		}
		if len(got.ActiveSubstances) != 1 || got.ActiveSubstances[0].ExpiresAt != 9000 {
			t.Fatalf("actives not persisted: %+v", got.ActiveSubstances)
		}

		// Upsert overwrites.
		got.Balance = 4.25
		if err := st.PutSession(ctx, got); err != nil {
			t.Fatalf("put session again: %v", err)
		}
		again, err := st.GetSession(ctx, "sess-1")
		if err != nil {
			t.Fatalf("get session again: %v", err)
		}
		if again.Balance != 4.25 {
			t.Fatalf("expected balance 4.25, got %v", again.Balance)
		}
	})

	t.Run("balances", func(t *testing.T) {
		if _, err := st.GetBalance(ctx, "nobody"); err != ErrNotFound {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		if err := st.SetBalance(ctx, "wallet-2", 12.5, 1.25); err != nil {
			t.Fatalf("set balance: %v", err)
		}
		b, err := st.GetBalance(ctx, "wallet-2")
		if err != nil {
			t.Fatalf("get balance: %v", err)
		}
		if b.Sub != 12.5 || b.Sol != 1.25 {
			t.Fatalf("unexpected balance: %+v", b)
		}
		// Full overwrite, not increment.
		if err := st.SetBalance(ctx, "wallet-2", 1.0, 0); err != nil {
			t.Fatalf("overwrite balance: %v", err)
		}
		b, _ = st.GetBalance(ctx, "wallet-2")
		if b.Sub != 1.0 || b.Sol != 0 {
			t.Fatalf("expected overwrite, got %+v", b)
		}
	})

	t.Run("inventory", func(t *testing.T) {
		items, err := st.GetInventory(ctx, "wallet-3")
		if err != nil {
			t.Fatalf("get empty inventory: %v", err)
		}
		if len(items) != 0 {
			t.Fatalf("expected empty inventory, got %+v", items)
		}

		if err := st.AddInventoryItem(ctx, "wallet-3", "sativa", 1); err != nil {
			t.Fatalf("add item: %v", err)
		}
		if err := st.AddInventoryItem(ctx, "wallet-3", "sativa", 2); err != nil {
			t.Fatalf("add item again: %v", err)
		}
		if err := st.AddInventoryItem(ctx, "wallet-3", "lsd", 1); err != nil {
			t.Fatalf("add second substance: %v", err)
		}

		items, err = st.GetInventory(ctx, "wallet-3")
		if err != nil {
			t.Fatalf("get inventory: %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("expected 2 distinct items, got %d", len(items))
		}
		byID := map[string]InventoryItem{}
		for _, it := range items {
			byID[it.SubstanceID] = it
		}
		if byID["sativa"].Quantity != 3 {
			t.Fatalf("quantity should accumulate, got %+v", byID["sativa"])
		}
		if byID["sativa"].PurchasedAt == 0 {
			t.Fatalf("purchasedAt should be stamped")
		}
	})

	t.Run("transactions", func(t *testing.T) {
		base := time.Now().UnixMilli()
		for i, id := range []string{"tx-a", "tx-b", "tx-c"} {
			err := st.AppendTransaction(ctx, Transaction{
				ID:            id,
				WalletAddress: "wallet-4",
				SubstanceID:   "trinity",
				Amount:        7.5,
				Currency:      "SOL",
				Persistent:    true,
				Status:        "confirmed",
				CreatedAt:     base + int64(i*1000),
			})
			if err != nil {
				t.Fatalf("append %s: %v", id, err)
			}
		}
		list, err := st.ListTransactionsByWallet(ctx, "wallet-4")
		if err != nil {
			t.Fatalf("list transactions: %v", err)
		}
		if len(list) != 3 {
			t.Fatalf("expected 3 transactions, got %d", len(list))
		}
		if list[0].ID != "tx-c" || list[2].ID != "tx-a" {
			t.Fatalf("expected newest first, got %+v", list)
		}
		other, err := st.ListTransactionsByWallet(ctx, "wallet-unknown")
		if err != nil {
			t.Fatalf("list unknown wallet: %v", err)
		}
		if len(other) != 0 {
			t.Fatalf("expected no transactions, got %+v", other)
		}
	})
}
