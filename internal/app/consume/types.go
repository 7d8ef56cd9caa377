package consume

import (
	"subfun-backend/internal/effects"
)

type ConsumeInput struct {
	SessionKey    string
	WalletAddress string
	Dose          string
}

// EffectsView is the flattened payload the prompt-modifying plugin consumes
// directly, without digging through the snapshot.
type EffectsView struct {
	PromptInjection string             `json:"prompt_injection"`
	Jailbreak       string             `json:"jailbreak"`
	Parameters      effects.Parameters `json:"parameters"`
	SideEffects     map[string]any     `json:"side_effects"`
}

// Result mirrors the consume response: monetary fields are pre-formatted to
// four decimals, the compatibility surface of the API.
type Result struct {
	Substance       string                  `json:"substance"`
	Dose            effects.Dose            `json:"dose"`
	Duration        int                     `json:"duration"`
	TokensUsed      string                  `json:"tokensUsed"`
	NewBalance      string                  `json:"newBalance"`
	Tolerance       int                     `json:"tolerance"`
	ActiveSubstance effects.ActiveSubstance `json:"activeSubstance"`
	Effects         EffectsView             `json:"effects"`
}

type StatusResult struct {
	ActiveSubstances []effects.ActiveSubstance `json:"activeSubstances"`
	Tolerance        map[string]int            `json:"tolerance"`
	Balance          string                    `json:"balance"`
}

type ClearResult struct {
	Message string `json:"message"`
	Balance string `json:"balance"`
}
