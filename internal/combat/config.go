// Package combat implements the hit resolution pipeline, threat table
// expiration, target switching, combat round processing, and death
// handling of spec §4.5.
//
// Grounded on the teacher's internal/game/combat package (manager.go's
// callback-injection style to dodge an import cycle back into
// gameserver, damage.go's formula functions), adapted from the
// teacher's fixed MVP constants to the data-driven pipeline spec §4.5
// describes.
package combat

// Config holds the tunables spec §4.5 leaves as implementation knobs:
// default damage variation range, the threat grace-window multiplier,
// and the threat expiration decay factor. Package config loads these
// from YAML at startup; DefaultConfig matches the spec's stated
// defaults.
type Config struct {
	// VariationRangePercent is the default damage variation range
	// (spec §4.5.1: "Default variation range 20%").
	VariationRangePercent float64

	// ThreatGraceMultiplier is the switch threshold over the current
	// target's threat (spec §4.5.3, GLOSSARY "grace window"): 1.10.
	ThreatGraceMultiplier float64

	// ThreatDecayFactor is applied to an expiring threat entry on its
	// second consecutive expiration cycle (spec §4.5.2): 0.67.
	ThreatDecayFactor float64

	// ThreatFloor is the value below which a decayed entry is removed
	// (spec §4.5.2: "if the result is below 100 remove the entry").
	ThreatFloor int64

	// InitialThreatOnAttack is the "small threat entry" initiate_combat
	// adds to a non-reaction NPC defender (spec §4.5.5).
	InitialThreatOnAttack int64
}

// DefaultConfig returns the tunables at the values spec §4.5 states.
func DefaultConfig() Config {
	return Config{
		VariationRangePercent: 20,
		ThreatGraceMultiplier: 1.10,
		ThreatDecayFactor:     0.67,
		ThreatFloor:           100,
		InitialThreatOnAttack: 1,
	}
}
