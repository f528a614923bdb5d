package model

// EffectKind is the taxonomy from spec §4.6.
type EffectKind uint8

const (
	EffectDamageOverTime EffectKind = iota
	EffectHealOverTime
	EffectPassive
	EffectShield
)

// EffectHook is a content-authored callback fired on apply/tick/expire
// (spec §4.6). Hooks only ever send messages; the core invokes them
// but does not interpret their effect beyond that (message emission
// happens through whatever the hook closes over; package effect only
// calls them).
type EffectHook func(caster, target *Object)

// EffectTemplate is the sparse content description of a buff/debuff
// (spec §4.6).
type EffectTemplate struct {
	ID             string
	Kind           EffectKind
	Duration       int32 // ticks
	TickPeriod     int32 // ticks between applications; 0 for non-ticking kinds
	HitType        *HitType
	DamageCategory DamageType // physical → mitigated by defense; magical → by resilience

	Bonus                AttributeBonus
	OutgoingMultiplier   float64 // passive outgoing damage multiplier, 1.0 = no effect
	IncomingMultiplier   float64 // passive incoming damage multiplier, 1.0 = no effect
	ShieldAbsorbs        DamageType
	ShieldAbsorbsIsSet   bool

	// Magnitude is the per-tick base damage (damage-over-time) or heal
	// (heal-over-time) amount before the §4.5-step-5..8-style pipeline
	// mitigates it. Unused by passive/shield templates.
	Magnitude int32

	OnApply  EffectHook
	OnTick   EffectHook
	OnExpire EffectHook
}

// EffectInstance is a live application of an EffectTemplate to a
// target (spec §4.6).
type EffectInstance struct {
	Template *EffectTemplate
	Caster   *Object
	Target   *Object

	StartTick     int64
	NextTickAt    int64
	TicksRemaining int32
}

// IsExpired reports whether the instance has no ticks left.
func (e *EffectInstance) IsExpired() bool { return e.TicksRemaining <= 0 }
