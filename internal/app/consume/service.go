// Package consume implements the substance consumption lifecycle against a
// session: dose pricing, the tolerance gate, effect stacking, and expiry
// pruning on status reads.
package consume

import (
	"context"
	"errors"
	"fmt"
	"time"

	"subfun-backend/internal/catalog"
	"subfun-backend/internal/effects"
	"subfun-backend/internal/store"
)

const clearedMessage = "All substances cleared. Naloxone administered."

type Service struct {
	store store.Store
	now   func() time.Time
}

func NewService(st store.Store) *Service {
	return &Service{store: st, now: time.Now}
}

// Consume applies one dose of a substance to the session, debiting the token
// cost and raising tolerance. Sessions are created lazily on first consume.
func (s *Service) Consume(ctx context.Context, substanceID string, in ConsumeInput) (*Result, error) {
	sub, ok := catalog.ByID(substanceID)
	if !ok {
		return nil, ErrSubstanceNotFound
	}
	if in.SessionKey == "" {
		return nil, ErrSessionKeyRequired
	}
	now := s.now()

	sess, err := s.store.GetSession(ctx, in.SessionKey)
	if errors.Is(err, store.ErrNotFound) {
		sess = store.NewSession(in.SessionKey)
	} else if err != nil {
		return nil, err
	}
	// Wallet binding is sticky: first one wins, later values are ignored.
	if sess.WalletAddress == "" && in.WalletAddress != "" {
		sess.WalletAddress = in.WalletAddress
	}

	// With a wallet bound, the balance ledger is the source of truth; sync
	// before pricing so /consume and /balance cannot drift apart.
	if sess.WalletAddress != "" {
		bal, err := s.store.GetBalance(ctx, sess.WalletAddress)
		if err == nil {
			sess.Balance = bal.Sub
		} else if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
	}

	tolerance := sess.Tolerance[substanceID]
	if tolerance >= effects.MaxTolerance {
		return nil, &ToleranceError{
			Tolerance:         tolerance,
			CooldownRemaining: effects.CooldownRemaining(tolerance, lastUsedAt(sess, substanceID), now),
		}
	}

	dose := effects.NormalizeDose(in.Dose)
	c := effects.Consume(sub, dose, tolerance, now)
	if sess.Balance < c.TokenCost {
		return nil, &InsufficientBalanceError{Required: c.TokenCost, Current: sess.Balance}
	}
	sess.Balance -= c.TokenCost

	sess.ActiveSubstances = effects.Stack(sess.ActiveSubstances, c.Active)
	newTolerance := tolerance + 1
	if newTolerance > effects.MaxTolerance {
		newTolerance = effects.MaxTolerance
	}
	sess.Tolerance[substanceID] = newTolerance
	sess.LastUsed[substanceID] = now.UnixMilli()

	if err := s.store.PutSession(ctx, sess); err != nil {
		return nil, err
	}
	if sess.WalletAddress != "" {
		if err := s.store.SetBalance(ctx, sess.WalletAddress, sess.Balance, 0.0); err != nil {
			return nil, err
		}
	}

	return &Result{
		Substance:       sub.Name,
		Dose:            dose,
		Duration:        c.Duration,
		TokensUsed:      fixed4(c.TokenCost),
		NewBalance:      fixed4(sess.Balance),
		Tolerance:       newTolerance,
		ActiveSubstance: c.Active,
		Effects: EffectsView{
			PromptInjection: c.Active.PromptInjection,
			Jailbreak:       c.Active.Jailbreak,
			Parameters:      c.Active.Parameters,
			SideEffects:     c.Active.SideEffects,
		},
	}, nil
}

// Status returns the session's active effects after pruning expired
// non-persistent ones. Unknown sessions get a default empty view; status
// reads never fail on missing state.
func (s *Service) Status(ctx context.Context, sessionKey string) (*StatusResult, error) {
	sess, err := s.store.GetSession(ctx, sessionKey)
	if errors.Is(err, store.ErrNotFound) {
		return &StatusResult{
			ActiveSubstances: []effects.ActiveSubstance{},
			Tolerance:        map[string]int{},
			Balance:          fixed4(store.DefaultBalanceSUB),
		}, nil
	}
	if err != nil {
		return nil, err
	}

	sess.ActiveSubstances = effects.Prune(sess.ActiveSubstances, s.now())
	if err := s.store.PutSession(ctx, sess); err != nil {
		return nil, err
	}

	return &StatusResult{
		ActiveSubstances: sess.ActiveSubstances,
		Tolerance:        sess.Tolerance,
		Balance:          fixed4(sess.Balance),
	}, nil
}

// ClearAll empties the session's active list, persistent effects included.
// Tolerance survives on purpose: effects clear, the body stays adapted.
func (s *Service) ClearAll(ctx context.Context, sessionKey string) (*ClearResult, error) {
	sess, err := s.store.GetSession(ctx, sessionKey)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	sess.ActiveSubstances = []effects.ActiveSubstance{}
	if err := s.store.PutSession(ctx, sess); err != nil {
		return nil, err
	}

	return &ClearResult{
		Message: clearedMessage,
		Balance: fixed4(sess.Balance),
	}, nil
}

func lastUsedAt(sess *store.Session, substanceID string) time.Time {
	ms, ok := sess.LastUsed[substanceID]
	if !ok {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}

func fixed4(v float64) string {
	return fmt.Sprintf("%.4f", v)
}
