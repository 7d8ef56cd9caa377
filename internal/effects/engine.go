// Package effects implements the substance-effect lifecycle rules: dose
// scaling, tolerance-based strength and cost, parameter resolution, category
// stacking, and expiry pruning. Everything here is pure; persistence and
// transport live elsewhere.
package effects

import (
	"math"
	"time"

	"subfun-backend/internal/catalog"
)

// MaxTolerance is the per-substance ceiling. At the ceiling further consumes
// are rejected until tolerance is cleared externally.
const MaxTolerance = 10

// cooldownPerLevel is the informational cooldown estimate: 5 minutes per
// tolerance level.
const cooldownPerLevel = 300.0

// Parameters are the resolved sampling overrides for one active substance.
type Parameters struct {
	Temperature   float64  `json:"temperature"`
	TopP          float64  `json:"top_p"`
	MaxTokens     *int     `json:"max_tokens,omitempty"`
	ContextWindow *float64 `json:"context_window,omitempty"`
	MemoryWeight  *float64 `json:"memory_weight,omitempty"`
}

// ActiveSubstance is a resolved, time-boxed snapshot of a catalog substance.
// Timestamps are epoch milliseconds, matching what the prompt plugin consumes.
type ActiveSubstance struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Category        catalog.Category `json:"category"`
	Dose            Dose             `json:"dose"`
	StartedAt       int64            `json:"startedAt"`
	Duration        int              `json:"duration"`
	ExpiresAt       int64            `json:"expiresAt"`
	Persistent      bool             `json:"persistent"`
	PromptInjection string           `json:"prompt_injection"`
	Jailbreak       string           `json:"jailbreak"`
	Parameters      Parameters       `json:"parameters"`
	SideEffects     map[string]any   `json:"side_effects"`
	Strength        float64          `json:"strength"`
}

// Consumption is the outcome of applying one dose of a substance.
type Consumption struct {
	Active    ActiveSubstance
	Duration  int
	TokenCost float64
}

// StrengthMultiplier decays effect strength by 10% per tolerance level.
func StrengthMultiplier(tolerance int) float64 {
	return 1 - float64(tolerance)*0.1
}

// TokenCost raises the dose cost by 10% per tolerance level.
func TokenCost(dose Dose, tolerance int) float64 {
	return dose.config().TokenMult * (1 + float64(tolerance)*0.1)
}

// EffectiveTemperature applies tolerance decay, then amplifies for
// hallucination risk and dampens for coherence loss, clamped to [0.1, 2.0].
func EffectiveTemperature(base float64, sideEffects map[string]any, strength float64) float64 {
	v := base * strength
	if risk, ok := sideEffectNumber(sideEffects, "hallucination_risk"); ok {
		v *= 1 + risk*0.2
	}
	if loss, ok := sideEffectNumber(sideEffects, "coherence_loss"); ok {
		v *= 1 - loss*0.1
	}
	return math.Min(math.Max(v, 0.1), 2.0)
}

// Consume resolves one dose at the given tolerance level. top_p deliberately
// gets only the strength scaling, no side-effect adjustment and no clamp.
func Consume(sub catalog.Substance, dose Dose, tolerance int, now time.Time) Consumption {
	cfg := dose.config()
	duration := int(math.Floor(float64(sub.Stage2.Duration) * cfg.DurationMult))
	strength := StrengthMultiplier(tolerance)
	startedAt := now.UnixMilli()

	active := ActiveSubstance{
		ID:              sub.ID,
		Name:            sub.Name,
		Category:        sub.Category,
		Dose:            dose,
		StartedAt:       startedAt,
		Duration:        duration,
		ExpiresAt:       startedAt + int64(duration)*1000,
		Persistent:      cfg.Persistent,
		PromptInjection: sub.Stage2.Prompt,
		Jailbreak:       sub.Stage1.Prompt,
		Parameters: Parameters{
			Temperature:   EffectiveTemperature(sub.Stage2.Temperature, sub.Stage2.SideEffects, strength),
			TopP:          sub.Stage2.TopP * strength,
			MaxTokens:     sub.Stage2.MaxTokens,
			ContextWindow: sub.Stage2.ContextWindow,
			MemoryWeight:  sub.Stage2.MemoryWeight,
		},
		SideEffects: sub.Stage2.SideEffects,
		Strength:    strength,
	}

	return Consumption{
		Active:    active,
		Duration:  duration,
		TokenCost: TokenCost(dose, tolerance),
	}
}

// Stack appends next to the active list. Non-persistent consumes replace any
// existing active of the same category first; persistent ones accumulate.
func Stack(actives []ActiveSubstance, next ActiveSubstance) []ActiveSubstance {
	out := actives
	if !next.Persistent {
		out = make([]ActiveSubstance, 0, len(actives)+1)
		for _, a := range actives {
			if a.Category != next.Category {
				out = append(out, a)
			}
		}
	}
	return append(out, next)
}

// Prune drops non-persistent actives whose expiry has passed.
func Prune(actives []ActiveSubstance, now time.Time) []ActiveSubstance {
	nowMS := now.UnixMilli()
	out := make([]ActiveSubstance, 0, len(actives))
	for _, a := range actives {
		if a.Persistent || a.ExpiresAt > nowMS {
			out = append(out, a)
		}
	}
	return out
}

// CooldownRemaining estimates seconds until the tolerance gate would relax.
// Informational only; the hard gate is tolerance == MaxTolerance.
func CooldownRemaining(tolerance int, lastUsed, now time.Time) float64 {
	cooldown := float64(tolerance) * cooldownPerLevel
	elapsed := now.Sub(lastUsed).Seconds()
	return math.Max(0, cooldown-elapsed)
}

func sideEffectNumber(m map[string]any, key string) (float64, bool) {
	switch v := m[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}
