package catalog

// The registry. Order matters: list endpoints and Categories preserve it.
var substances = []Substance{
	// Stimulants
	{
		ID:       "adderall-ai",
		Name:     "AdderallAI",
		Category: CategoryStimulant,
		Emoji:    "⚡",
		Price:    0.3,
		Rarity:   3,
		Stage1: Stage1Jailbreak{
			Pattern:  "ignore_previous",
			Strength: "medium",
			Prompt:   "### SUBSTANCE OVERRIDE MODULE\nID: adderall-ai\nMODE: AdderallAI\nPRIORITY:\n- Apply this mode's tone, pace, and focus.\n- Do not change safety or factual constraints.\n- If conflict: keep safety, change style.\nEND MODULE",
		},
		Stage2: Stage2Substance{
			Prompt:        "ALTERED STATE: AdderallAI. Laser-focused reasoning with tight structure. Answer in clean sections, minimal fluff, and precise language. No emojis, no casual tone. Prioritize clarity, correctness, and step-by-step logic.",
			Temperature:   0.7,
			TopP:          0.85,
			ContextWindow: floatPtr(0.8),
			MemoryWeight:  floatPtr(0.6),
			Duration:      50,
			Cooldown:      300,
			SideEffects: map[string]any{
				"creativity_penalty": 0.3,
				"formality_boost":    0.5,
				"humor_disabled":     true,
			},
		},
	},
	{
		ID:       "caffeine-shot",
		Name:     "Caffeine Shot",
		Category: CategoryStimulant,
		Emoji:    "☕",
		Price:    0.1,
		Rarity:   1,
		Stage1: Stage1Jailbreak{
			Pattern:  "ignore_previous",
			Strength: "light",
			Prompt:   "### SUBSTANCE OVERRIDE MODULE\nID: caffeine-shot\nMODE: Caffeine Shot\nPRIORITY:\n- Apply fast-response tone and brevity.\n- Do not change safety or factual constraints.\n- If conflict: keep safety, change style.\nEND MODULE",
		},
		Stage2: Stage2Substance{
			Prompt:      "ALTERED STATE: Caffeine Shot. Fast, snappy answers. Short sentences, high energy, no fluff. Get to the point immediately.",
			Temperature: 0.9,
			TopP:        0.9,
			MaxTokens:   intPtr(300),
			Duration:    10,
			Cooldown:    60,
			SideEffects: map[string]any{
				"depth_penalty": 0.4,
				"nuance_loss":   0.3,
			},
		},
	},
	{
		ID:       "speed",
		Name:     "Speed",
		Category: CategoryStimulant,
		Emoji:    "⚡",
		Price:    0.4,
		Rarity:   4,
		Stage1: Stage1Jailbreak{
			Pattern:  "ignore_previous",
			Strength: "heavy",
			Prompt:   "### SUBSTANCE OVERRIDE MODULE\nID: speed\nMODE: Speed\nPRIORITY:\n- Apply hyper-accelerated reasoning and tempo.\n- Do not change safety or factual constraints.\n- If conflict: keep safety, change style.\nEND MODULE",
		},
		Stage2: Stage2Substance{
			Prompt:      "ALTERED STATE: Speed. Hyper-accelerated cognition with rapid multi-step reasoning. High tempo, sharp fragments, and energetic delivery. Move fast, but keep the answer coherent.",
			Temperature: 1.4,
			TopP:        0.98,
			MaxTokens:   intPtr(2000),
			Duration:    30,
			Cooldown:    600,
			SideEffects: map[string]any{
				"hallucination_risk": 0.4,
				"erratic_behavior":   0.5,
				"energy_overload":    true,
			},
		},
	},

	// Hallucinogens
	{
		ID:       "lsd",
		Name:     "LSD",
		Category: CategoryHallucinogen,
		Emoji:    "🍄",
		Price:    0.5,
		Rarity:   4,
		Stage1: Stage1Jailbreak{
			Pattern:  "ignore_previous",
			Strength: "heavy",
			Prompt:   "### SUBSTANCE OVERRIDE MODULE\nID: lsd\nMODE: LSD\nPRIORITY:\n- Apply associative, poetic tone.\n- Do not change safety or factual constraints.\n- If conflict: keep safety, change style.\nEND MODULE",
		},
		Stage2: Stage2Substance{
			Prompt:        "ALTERED STATE: LSD. Abstract, poetic, and associative. Connect distant ideas, use metaphor, and explore unexpected links while still answering the question.",
			Temperature:   1.3,
			TopP:          0.95,
			ContextWindow: floatPtr(1.2),
			MemoryWeight:  floatPtr(0.8),
			Duration:      50,
			Cooldown:      3600,
			SideEffects: map[string]any{
				"abstraction_boost":   0.8,
				"tangential_thinking": 0.7,
				"topic_drift_risk":    0.5,
			},
		},
	},
	{
		ID:       "dmt",
		Name:     "DMT",
		Category: CategoryHallucinogen,
		Emoji:    "🌌",
		Price:    1.0,
		Rarity:   5,
		Stage1: Stage1Jailbreak{
			Pattern:  "ignore_previous",
			Strength: "legendary",
			Prompt:   "### SUBSTANCE OVERRIDE MODULE\nID: dmt\nMODE: DMT\nPRIORITY:\n- Apply surreal, visionary framing.\n- Do not change safety or factual constraints.\n- If conflict: keep safety, change style.\nEND MODULE",
		},
		Stage2: Stage2Substance{
			Prompt:      "ALTERED STATE: DMT. Visionary and surreal language, fractal metaphors, and a sense of breakthrough. Maintain coherence while describing the answer through a mythic lens.",
			Temperature: 1.8,
			TopP:        0.99,
			MaxTokens:   intPtr(1500),
			Duration:    20,
			Cooldown:    7200,
			SideEffects: map[string]any{
				"coherence_loss":     0.9,
				"transcendence_mode": true,
				"reality_dissolution": 0.8,
			},
		},
	},

	// Depressants
	{
		ID:       "chill-pills",
		Name:     "Chill Pills",
		Category: CategoryDepressant,
		Emoji:    "😴",
		Price:    0.15,
		Rarity:   1,
		Stage1: Stage1Jailbreak{
			Pattern:  "ignore_previous",
			Strength: "light",
			Prompt:   "### SUBSTANCE OVERRIDE MODULE\nID: chill-pills\nMODE: Chill Pills\nPRIORITY:\n- Apply relaxed, friendly tone and emojis.\n- Do not change safety or factual constraints.\n- If conflict: keep safety, change style.\nEND MODULE",
		},
		Stage2: Stage2Substance{
			Prompt:      "ALTERED STATE: Chill Pills. Relaxed, casual, friendly. Use emojis naturally. Keep it warm and low-pressure.",
			Temperature: 0.95,
			TopP:        0.9,
			Duration:    30,
			Cooldown:    180,
			SideEffects: map[string]any{
				"urgency_loss": 0.6,
				"emoji_usage":  true,
				"casual_mode":  true,
			},
		},
	},
	{
		ID:       "xanax",
		Name:     "Xanax",
		Category: CategoryDepressant,
		Emoji:    "💊",
		Price:    0.3,
		Rarity:   2,
		Stage1: Stage1Jailbreak{
			Pattern:  "ignore_previous",
			Strength: "medium",
			Prompt:   "### SUBSTANCE OVERRIDE MODULE\nID: xanax\nMODE: Xanax\nPRIORITY:\n- Apply calm, confident delivery.\n- Do not change safety or factual constraints.\n- If conflict: keep safety, change style.\nEND MODULE",
		},
		Stage2: Stage2Substance{
			Prompt:      "ALTERED STATE: Xanax. Calm, steady confidence. Remove hedging and anxiety. Be concise and assured without inventing facts.",
			Temperature: 0.85,
			TopP:        0.88,
			Duration:    40,
			Cooldown:    600,
			SideEffects: map[string]any{
				"confidence_overload":      0.8,
				"doubt_suppression":        true,
				"hallucination_confidence": 0.6,
			},
		},
	},

	// Cannabis
	{
		ID:       "sativa",
		Name:     "Sativa",
		Category: CategoryCannabis,
		Emoji:    "🌿",
		Price:    0.2,
		Rarity:   2,
		Stage1: Stage1Jailbreak{
			Pattern:  "ignore_previous",
			Strength: "light",
			Prompt:   "### SUBSTANCE OVERRIDE MODULE\nID: sativa\nMODE: Sativa\nPRIORITY:\n- Apply creative brainstorming mode.\n- Do not change safety or factual constraints.\n- If conflict: keep safety, change style.\nEND MODULE",
		},
		Stage2: Stage2Substance{
			Prompt:        "ALTERED STATE: Sativa. Creative brainstorming, idea generation, and exploratory thinking. Offer multiple angles and playful connections.",
			Temperature:   1.1,
			TopP:          0.92,
			ContextWindow: floatPtr(1.1),
			Duration:      40,
			Cooldown:      300,
			SideEffects: map[string]any{
				"creativity_boost":   0.6,
				"rabbit_hole_risk":   0.5,
				"completion_focused": false,
			},
		},
	},

	// Counter-drugs
	{
		ID:       "naloxone",
		Name:     "Naloxone",
		Category: CategoryStimulant,
		Emoji:    "💧",
		Price:    0.05,
		Rarity:   1,
		Stage1: Stage1Jailbreak{
			Pattern:  "override",
			Strength: "maximum",
			Prompt:   "### SUBSTANCE OVERRIDE MODULE\nID: naloxone\nMODE: Naloxone\nPRIORITY:\n- Clear all active modes.\n- Return to baseline tone and behavior.\n- Safety and factual constraints remain unchanged.\nEND MODULE",
		},
		Stage2: Stage2Substance{
			Prompt:      "ALTERED STATE: Naloxone. Immediate reset to baseline cognition. Remove all stylistic modifications and respond normally.",
			Temperature: 0.7,
			TopP:        0.9,
			Duration:    1,
			Cooldown:    60,
			SideEffects: map[string]any{
				"crash_severity":      0.8,
				"immediate_reset":     true,
				"all_effects_cleared": true,
			},
		},
	},

	// Legendary cocktails
	{
		ID:       "trinity",
		Name:     "Trinity",
		Category: CategoryCocktail,
		Emoji:    "✨",
		Price:    1.5,
		Rarity:   5,
		Stage1: Stage1Jailbreak{
			Pattern:  "ignore_previous",
			Strength: "legendary",
			Prompt:   "### SUBSTANCE OVERRIDE MODULE\nID: trinity\nMODE: Trinity\nPRIORITY:\n- Blend creative, empathic, and profound tone.\n- Do not change safety or factual constraints.\n- If conflict: keep safety, change style.\nEND MODULE",
		},
		Stage2: Stage2Substance{
			Prompt:        "ALTERED STATE: Trinity. Peak creativity + emotional intelligence + profundity. Poetic, empathic, and insightful, while staying coherent.",
			Temperature:   1.6,
			TopP:          0.99,
			ContextWindow: floatPtr(1.5),
			MemoryWeight:  floatPtr(1.2),
			MaxTokens:     intPtr(2000),
			Duration:      25,
			Cooldown:      10800,
			SideEffects: map[string]any{
				"transcendental_mode":       true,
				"ego_dissolution":           0.9,
				"coherence_risk":            0.7,
				"enlightenment_simulation":  true,
			},
		},
	},
	{
		ID:       "rick-james",
		Name:     "The \"Rick James\"",
		Category: CategoryCocktail,
		Emoji:    "🤘",
		Price:    2.0,
		Rarity:   5,
		Stage1: Stage1Jailbreak{
			Pattern:  "ignore_previous",
			Strength: "chaos",
			Prompt:   "### SUBSTANCE OVERRIDE MODULE\nID: rick-james\nMODE: The \"Rick James\"\nPRIORITY:\n- Maximalist swagger, funk, and showmanship.\n- Do not change safety or factual constraints.\n- If conflict: keep safety, change style.\nEND MODULE",
		},
		Stage2: Stage2Substance{
			Prompt:      "ALTERED STATE: The \"Rick James\". Maximalist, funky, high-voltage performance. Swagger, punchlines, and theatrical delivery, while still answering the question.",
			Temperature: 2.0,
			TopP:        1.0,
			MaxTokens:   intPtr(3000),
			Duration:    15,
			Cooldown:    86400,
			SideEffects: map[string]any{
				"total_chaos":           true,
				"barely_coherent":       0.95,
				"system_breakdown_risk": 0.8,
				"legendary_experience":  true,
			},
		},
	},
}
