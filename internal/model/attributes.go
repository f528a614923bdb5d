package model

// PrimaryAttributes holds the four primary attributes named in spec
// §3.1 (strength, agility, intelligence, spirit). Further primaries a
// content pack wants are out of this engine's closed taxonomy (spec §1
// non-goals: "rule extensions beyond the taxonomy in §3").
type PrimaryAttributes struct {
	Strength     int32
	Agility      int32
	Intelligence int32
	Spirit       int32
}

// Add returns the element-wise sum of two attribute sets.
func (a PrimaryAttributes) Add(b PrimaryAttributes) PrimaryAttributes {
	return PrimaryAttributes{
		Strength:     a.Strength + b.Strength,
		Agility:      a.Agility + b.Agility,
		Intelligence: a.Intelligence + b.Intelligence,
		Spirit:       a.Spirit + b.Spirit,
	}
}

// Scale multiplies every field by n, floored (attributes are integers
// so Go's integer multiplication already floors).
func (a PrimaryAttributes) Scale(n int32) PrimaryAttributes {
	return PrimaryAttributes{
		Strength:     a.Strength * n,
		Agility:      a.Agility * n,
		Intelligence: a.Intelligence * n,
		Spirit:       a.Spirit * n,
	}
}

// SecondaryAttributes are the derived combat stats listed in spec
// §4.3: attack power, defense, accuracy, avoidance, crit rate, spell
// power, resilience.
type SecondaryAttributes struct {
	AttackPower int32
	Defense     int32
	Accuracy    int32
	Avoidance   int32
	CritRate    int32 // percent, 0..100
	SpellPower  int32
	Resilience  int32
}

func (s SecondaryAttributes) Add(o SecondaryAttributes) SecondaryAttributes {
	return SecondaryAttributes{
		AttackPower: s.AttackPower + o.AttackPower,
		Defense:     s.Defense + o.Defense,
		Accuracy:    s.Accuracy + o.Accuracy,
		Avoidance:   s.Avoidance + o.Avoidance,
		CritRate:    s.CritRate + o.CritRate,
		SpellPower:  s.SpellPower + o.SpellPower,
		Resilience:  s.Resilience + o.Resilience,
	}
}

// ResourceCaps are the two resource maxima a mob has (spec §3.1).
type ResourceCaps struct {
	MaxHealth int32
	MaxMana   int32
}

func (c ResourceCaps) Add(o ResourceCaps) ResourceCaps {
	return ResourceCaps{MaxHealth: c.MaxHealth + o.MaxHealth, MaxMana: c.MaxMana + o.MaxMana}
}

// Resources is the mutable current-value half of a mob's resource pool,
// including exhaustion which has no fixed cap.
type Resources struct {
	Health     int32
	Mana       int32
	Exhaustion int32
}

// AttributeBonus is what equipment or an active effect contributes to
// a mob's derived attributes (spec §4.3: "Σ equipment.attribute_bonuses
// + Σ active_effect.primary_bonuses").
type AttributeBonus struct {
	Primary   PrimaryAttributes
	Resources ResourceCaps
	Secondary SecondaryAttributes
}

func (b AttributeBonus) Add(o AttributeBonus) AttributeBonus {
	return AttributeBonus{
		Primary:   b.Primary.Add(o.Primary),
		Resources: b.Resources.Add(o.Resources),
		Secondary: b.Secondary.Add(o.Secondary),
	}
}
