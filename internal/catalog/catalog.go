// Package catalog holds the static substance definitions. The registry is
// immutable configuration: callers get value copies and the closed category
// set, never write access.
package catalog

// Category is the closed set of substance categories.
type Category string

const (
	CategoryStimulant    Category = "stimulant"
	CategoryHallucinogen Category = "hallucinogen"
	CategoryDepressant   Category = "depressant"
	CategoryCannabis     Category = "cannabis"
	CategoryCocktail     Category = "cocktail"
)

// Stage1Jailbreak is the override-module text prepended to the consumer's
// instruction context. Opaque payload from this service's perspective.
type Stage1Jailbreak struct {
	Pattern  string `json:"pattern"`
	Strength string `json:"strength"`
	Prompt   string `json:"prompt"`
}

// Stage2Substance carries the prompt injection, sampling-parameter overrides,
// and side effects applied while the substance is active. Optional parameters
// are pointers so absent values stay absent on the wire.
type Stage2Substance struct {
	Prompt        string         `json:"prompt"`
	Temperature   float64        `json:"temperature"`
	TopP          float64        `json:"top_p"`
	MaxTokens     *int           `json:"max_tokens,omitempty"`
	ContextWindow *float64       `json:"context_window,omitempty"`
	MemoryWeight  *float64       `json:"memory_weight,omitempty"`
	Duration      int            `json:"duration"`
	Cooldown      int            `json:"cooldown"`
	SideEffects   map[string]any `json:"side_effects"`
}

type Substance struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category Category        `json:"category"`
	Emoji    string          `json:"emoji"`
	Price    float64         `json:"price"`
	Rarity   int             `json:"rarity"`
	Stage1   Stage1Jailbreak `json:"stage1_jailbreak"`
	Stage2   Stage2Substance `json:"stage2_substance"`
}

var byID = func() map[string]*Substance {
	m := make(map[string]*Substance, len(substances))
	for i := range substances {
		m[substances[i].ID] = &substances[i]
	}
	return m
}()

// All returns every substance in registry order.
func All() []Substance {
	out := make([]Substance, len(substances))
	copy(out, substances)
	return out
}

// ByID looks up a substance by id.
func ByID(id string) (Substance, bool) {
	s, ok := byID[id]
	if !ok {
		return Substance{}, false
	}
	return *s, true
}

// ByCategory returns all substances in the given category, registry order.
func ByCategory(category string) []Substance {
	out := []Substance{}
	for _, s := range substances {
		if string(s.Category) == category {
			out = append(out, s)
		}
	}
	return out
}

// Categories returns the distinct categories in first-seen registry order.
func Categories() []string {
	seen := map[Category]bool{}
	out := []string{}
	for _, s := range substances {
		if !seen[s.Category] {
			seen[s.Category] = true
			out = append(out, string(s.Category))
		}
	}
	return out
}

func intPtr(v int) *int             { return &v }
func floatPtr(v float64) *float64   { return &v }
