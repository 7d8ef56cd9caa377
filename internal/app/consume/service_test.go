package consume

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"subfun-backend/internal/effects"
	"subfun-backend/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Memory, *time.Time) {
	t.Helper()
	st := store.NewMemory()
	svc := NewService(st)
	now := time.UnixMilli(1_700_000_000_000)
	svc.now = func() time.Time { return now }
	return svc, st, &now
}

func TestConsumeCaffeineTokeAtZeroTolerance(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	res, err := svc.Consume(ctx, "caffeine-shot", ConsumeInput{SessionKey: "sess-1"})
	if err != nil {
		t.Fatalf("consume: %v", err)
	}
	if res.Substance != "Caffeine Shot" || res.Dose != effects.DoseToke {
		t.Fatalf("unexpected result head: %+v", res)
	}
	if res.Duration != 8 {
		t.Fatalf("duration = %d, want floor(10*0.8)=8", res.Duration)
	}
	if res.TokensUsed != "0.0050" {
		t.Fatalf("tokensUsed = %s, want 0.0050", res.TokensUsed)
	}
	if res.NewBalance != "9.9950" {
		t.Fatalf("newBalance = %s, want 9.9950", res.NewBalance)
	}
	if res.Tolerance != 1 {
		t.Fatalf("tolerance = %d, want 1", res.Tolerance)
	}
	if res.Effects.PromptInjection == "" || res.Effects.Jailbreak == "" {
		t.Fatalf("effects view should carry prompt payloads")
	}
}

func TestConsumeRejectsUnknownSubstanceAndMissingSession(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Consume(ctx, "placebo", ConsumeInput{SessionKey: "s"}); !errors.Is(err, ErrSubstanceNotFound) {
		t.Fatalf("expected ErrSubstanceNotFound, got %v", err)
	}
	if _, err := svc.Consume(ctx, "caffeine-shot", ConsumeInput{}); !errors.Is(err, ErrSessionKeyRequired) {
		t.Fatalf("expected ErrSessionKeyRequired, got %v", err)
	}
}

func TestToleranceGateAfterTenConsumes(t *testing.T) {
	svc, _, now := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		if _, err := svc.Consume(ctx, "caffeine-shot", ConsumeInput{SessionKey: "sess-1", Dose: "puff"}); err != nil {
			t.Fatalf("consume %d: %v", i+1, err)
		}
	}

	*now = now.Add(10 * time.Minute)
	_, err := svc.Consume(ctx, "caffeine-shot", ConsumeInput{SessionKey: "sess-1", Dose: "puff"})
	var tolErr *ToleranceError
	if !errors.As(err, &tolErr) {
		t.Fatalf("expected ToleranceError, got %v", err)
	}
	if tolErr.Tolerance != 10 {
		t.Fatalf("tolerance = %d, want 10", tolErr.Tolerance)
	}
	// 10*300s cooldown minus 600s elapsed.
	if math.Abs(tolErr.CooldownRemaining-2400) > 0.5 {
		t.Fatalf("cooldownRemaining = %v, want ~2400", tolErr.CooldownRemaining)
	}

	// Other substances remain unaffected by this substance's tolerance.
	if _, err := svc.Consume(ctx, "sativa", ConsumeInput{SessionKey: "sess-1", Dose: "puff"}); err != nil {
		t.Fatalf("other substance should still work: %v", err)
	}
}

func TestCostRisesWithTolerance(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Consume(ctx, "caffeine-shot", ConsumeInput{SessionKey: "sess-1"})
	if err != nil {
		t.Fatalf("consume: %v", err)
	}
	second, err := svc.Consume(ctx, "caffeine-shot", ConsumeInput{SessionKey: "sess-1"})
	if err != nil {
		t.Fatalf("consume: %v", err)
	}
	if second.TokensUsed != "0.0055" {
		t.Fatalf("cost at tolerance 1 = %s, want 0.0055", second.TokensUsed)
	}
	if first.TokensUsed >= second.TokensUsed {
		t.Fatalf("cost must rise with tolerance: %s then %s", first.TokensUsed, second.TokensUsed)
	}
}

func TestInsufficientBalance(t *testing.T) {
	svc, st, _ := newTestService(t)
	ctx := context.Background()

	sess := store.NewSession("sess-poor")
	sess.Balance = 0.001
	if err := st.PutSession(ctx, sess); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	_, err := svc.Consume(ctx, "trinity", ConsumeInput{SessionKey: "sess-poor", Dose: "trip"})
	var balErr *InsufficientBalanceError
	if !errors.As(err, &balErr) {
		t.Fatalf("expected InsufficientBalanceError, got %v", err)
	}
	if balErr.Current != 0.001 || balErr.Required != 0.05 {
		t.Fatalf("unexpected amounts: %+v", balErr)
	}

	// Rejection must not mutate state.
	got, _ := st.GetSession(ctx, "sess-poor")
	if len(got.ActiveSubstances) != 0 || got.Tolerance["trinity"] != 0 {
		t.Fatalf("rejected consume mutated session: %+v", got)
	}
}

func TestWalletBindingIsStickyAndLedgerWins(t *testing.T) {
	svc, st, _ := newTestService(t)
	ctx := context.Background()

	// The ledger already holds a balance for this wallet.
	if err := st.SetBalance(ctx, "wallet-1", 5.0, 2.0); err != nil {
		t.Fatalf("seed balance: %v", err)
	}

	res, err := svc.Consume(ctx, "caffeine-shot", ConsumeInput{SessionKey: "sess-1", WalletAddress: "wallet-1"})
	if err != nil {
		t.Fatalf("consume: %v", err)
	}
	if res.NewBalance != "4.9950" {
		t.Fatalf("ledger should be source of truth: newBalance = %s", res.NewBalance)
	}

	// A later wallet is ignored; the first binding is sticky.
	if _, err := svc.Consume(ctx, "caffeine-shot", ConsumeInput{SessionKey: "sess-1", WalletAddress: "wallet-2"}); err != nil {
		t.Fatalf("consume: %v", err)
	}
	sess, _ := st.GetSession(ctx, "sess-1")
	if sess.WalletAddress != "wallet-1" {
		t.Fatalf("wallet rebound to %s", sess.WalletAddress)
	}

	// And the new balance is mirrored back into the ledger.
	bal, err := st.GetBalance(ctx, "wallet-1")
	if err != nil {
		t.Fatalf("get balance: %v", err)
	}
	if math.Abs(bal.Sub-(5.0-0.005-0.0055)) > 1e-9 {
		t.Fatalf("ledger not synced: %v", bal.Sub)
	}
}

func TestCategoryReplacementAndPersistentStacking(t *testing.T) {
	svc, st, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Consume(ctx, "caffeine-shot", ConsumeInput{SessionKey: "s"}); err != nil {
		t.Fatalf("consume: %v", err)
	}
	if _, err := svc.Consume(ctx, "adderall-ai", ConsumeInput{SessionKey: "s"}); err != nil {
		t.Fatalf("consume: %v", err)
	}
	sess, _ := st.GetSession(ctx, "s")
	if len(sess.ActiveSubstances) != 1 || sess.ActiveSubstances[0].ID != "adderall-ai" {
		t.Fatalf("same-category consume should replace, got %+v", sess.ActiveSubstances)
	}

	// Trips accumulate even within a category.
	if _, err := svc.Consume(ctx, "speed", ConsumeInput{SessionKey: "s", Dose: "trip"}); err != nil {
		t.Fatalf("consume trip: %v", err)
	}
	sess, _ = st.GetSession(ctx, "s")
	if len(sess.ActiveSubstances) != 2 {
		t.Fatalf("trip should stack, got %+v", sess.ActiveSubstances)
	}
}

func TestStatusPrunesExpiredAndDefaultsUnknown(t *testing.T) {
	svc, _, now := newTestService(t)
	ctx := context.Background()

	unknown, err := svc.Status(ctx, "never-seen")
	if err != nil {
		t.Fatalf("status must not fail for unknown sessions: %v", err)
	}
	if len(unknown.ActiveSubstances) != 0 || len(unknown.Tolerance) != 0 || unknown.Balance != "10.0000" {
		t.Fatalf("unexpected default view: %+v", unknown)
	}

	if _, err := svc.Consume(ctx, "caffeine-shot", ConsumeInput{SessionKey: "s", Dose: "puff"}); err != nil { // 2s
		t.Fatalf("consume: %v", err)
	}
	if _, err := svc.Consume(ctx, "lsd", ConsumeInput{SessionKey: "s", Dose: "trip"}); err != nil {
		t.Fatalf("consume: %v", err)
	}

	*now = now.Add(time.Minute)
	res, err := svc.Status(ctx, "s")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if len(res.ActiveSubstances) != 1 || !res.ActiveSubstances[0].Persistent {
		t.Fatalf("expected only the persistent trip to survive: %+v", res.ActiveSubstances)
	}
	if res.Tolerance["caffeine-shot"] != 1 || res.Tolerance["lsd"] != 1 {
		t.Fatalf("tolerance map wrong: %+v", res.Tolerance)
	}
}

func TestClearAll(t *testing.T) {
	svc, st, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.ClearAll(ctx, "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	if _, err := svc.Consume(ctx, "lsd", ConsumeInput{SessionKey: "s", Dose: "trip"}); err != nil {
		t.Fatalf("consume: %v", err)
	}
	res, err := svc.ClearAll(ctx, "s")
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if res.Message != "All substances cleared. Naloxone administered." {
		t.Fatalf("unexpected message: %s", res.Message)
	}

	sess, _ := st.GetSession(ctx, "s")
	if len(sess.ActiveSubstances) != 0 {
		t.Fatalf("persistent effects must clear too: %+v", sess.ActiveSubstances)
	}
	// Tolerance and balance stay.
	if sess.Tolerance["lsd"] != 1 {
		t.Fatalf("tolerance should survive clear: %+v", sess.Tolerance)
	}
	if res.Balance != "9.9500" {
		t.Fatalf("balance should survive clear: %s", res.Balance)
	}
}
