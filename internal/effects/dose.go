package effects

// Dose is the quantized intensity selector scaling duration and cost.
type Dose string

const (
	DosePuff Dose = "puff"
	DoseToke Dose = "toke"
	DoseHit  Dose = "hit"
	DoseTrip Dose = "trip"
)

type doseConfig struct {
	DurationMult float64
	TokenMult    float64
	Persistent   bool
}

// The fixed dose table. Trip effects never auto-expire and never evict
// same-category actives.
var doseTable = map[Dose]doseConfig{
	DosePuff: {DurationMult: 0.2, TokenMult: 0.001},
	DoseToke: {DurationMult: 0.8, TokenMult: 0.005},
	DoseHit:  {DurationMult: 2.0, TokenMult: 0.01},
	DoseTrip: {DurationMult: 10.0, TokenMult: 0.05, Persistent: true},
}

// NormalizeDose maps a raw request value onto the dose table. Absent or
// unrecognized doses fall back to toke.
func NormalizeDose(raw string) Dose {
	d := Dose(raw)
	if _, ok := doseTable[d]; !ok {
		return DoseToke
	}
	return d
}

func (d Dose) config() doseConfig {
	cfg, ok := doseTable[d]
	if !ok {
		return doseTable[DoseToke]
	}
	return cfg
}

// Persistent reports whether the dose produces a persistent effect.
func (d Dose) Persistent() bool {
	return d.config().Persistent
}
