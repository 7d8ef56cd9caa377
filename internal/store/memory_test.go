package store

import (
	"context"
	"testing"
)

func TestMemoryStoreContract(t *testing.T) {
	runStoreContract(t, NewMemory())
}

func TestMemorySessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	sess := NewSession("sess-iso")
	sess.Tolerance["lsd"] = 1
	if err := m.PutSession(ctx, sess); err != nil {
		t.Fatalf("put: %v", err)
	}

	// Mutating the caller's copy must not leak into the store.
	sess.Tolerance["lsd"] = 9
	got, err := m.GetSession(ctx, "sess-iso")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Tolerance["lsd"] != 1 {
		t.Fatalf("store aliased caller memory: %+v", got.Tolerance)
	}

	// And mutating a read copy must not change stored state.
	got.Balance = 0
	again, _ := m.GetSession(ctx, "sess-iso")
	if again.Balance != DefaultBalanceSUB {
		t.Fatalf("read copy aliased store memory: %v", again.Balance)
	}
}
