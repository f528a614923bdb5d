// Package attributes derives a mob's primary/secondary attributes and
// resource caps from its race, job, level, equipment, and active
// effects, and enforces the ratio-preserving recomputation rule.
//
// Grounded on the teacher's player_combat_stats.go (per-stat formula
// functions with a one-line doc comment naming the formula), adapted
// from class-template lookups to the race+job archetype sum this
// engine's archetype model uses.
package attributes

import "github.com/mudframe/core/internal/model"

// DerivePrimary computes primary_attr for a mob at its current level:
//
//	base_primary + growth_primary × (L − 1) + Σ equipment bonus + Σ effect bonus
func DerivePrimary(mob *model.Object) model.PrimaryAttributes {
	level := mob.Level()
	race, job := mob.Race(), mob.Job()

	var base, growth model.PrimaryAttributes
	if race != nil {
		base = base.Add(race.BaseAttributes())
		growth = growth.Add(race.GrowthAttributes())
	}
	if job != nil {
		base = base.Add(job.BaseAttributes())
		growth = growth.Add(job.GrowthAttributes())
	}

	total := base.Add(growth.Scale(level - 1))
	for _, item := range mob.EquippedItems() {
		total = total.Add(item.AttributeBonus().Primary)
	}
	for _, e := range mob.ActiveEffects() {
		total = total.Add(e.Template.Bonus.Primary)
	}
	return total
}

// DeriveResourceCaps computes max_health/max_mana with the same
// base+growth×(L−1)+equipment+effects formula as DerivePrimary.
func DeriveResourceCaps(mob *model.Object) model.ResourceCaps {
	level := mob.Level()
	race, job := mob.Race(), mob.Job()

	var base, growth model.ResourceCaps
	if race != nil {
		base = base.Add(race.BaseResources())
		growth = growth.Add(race.GrowthResources())
	}
	if job != nil {
		base = base.Add(job.BaseResources())
		growth = growth.Add(job.GrowthResources())
	}

	total := model.ResourceCaps{
		MaxHealth: base.MaxHealth + growth.MaxHealth*(level-1),
		MaxMana:   base.MaxMana + growth.MaxMana*(level-1),
	}
	for _, item := range mob.EquippedItems() {
		total = total.Add(item.AttributeBonus().Resources)
	}
	for _, e := range mob.ActiveEffects() {
		total = total.Add(e.Template.Bonus.Resources)
	}
	return total
}

// DeriveSecondary computes the seven derived combat stats from primary
// attributes, then adds direct bonuses from equipment and effects.
// Coefficients: attack power from strength, spell power from
// intelligence, accuracy/avoidance/crit rate from agility, resilience
// from spirit, defense is direct-bonus only (armor has no primary-stat
// component in this engine).
//
// A weapon in SlotOffHand is excluded from this fold: combat's one_hit
// adds an off-hand weapon's attack power explicitly at swing time
// (spec §4.5: "base = attacker.attack_power (+ weapon.attack_power if
// weapon)"), so baking it into the mob's resting attack_power here
// would double it on every off-hand swing.
func DeriveSecondary(mob *model.Object, primary model.PrimaryAttributes) model.SecondaryAttributes {
	out := model.SecondaryAttributes{
		AttackPower: primary.Strength * 2,
		SpellPower:  primary.Intelligence * 2,
		Accuracy:    50 + primary.Agility/2,
		Avoidance:   primary.Agility / 2,
		CritRate:    primary.Agility / 10,
		Resilience:  primary.Spirit,
	}
	for _, item := range mob.EquippedItems() {
		if item.Kind() == model.KindWeapon && item.EquipSlot() == model.SlotOffHand {
			continue
		}
		out = out.Add(item.AttributeBonus().Secondary)
	}
	for _, e := range mob.ActiveEffects() {
		out = out.Add(e.Template.Bonus.Secondary)
	}
	return out
}

// Recompute implements spec's recomputation rule: on any equipment
// change, race/job change, or effect add/remove, recompute caps first,
// then scale current resources so each ratio (current/cap before the
// change) is preserved using floor rounding, guaranteeing no resource
// exceeds its new cap.
func Recompute(mob *model.Object) {
	before := mob.ResourceCaps()
	current := mob.Resources()

	primary := DerivePrimary(mob)
	caps := DeriveResourceCaps(mob)
	secondary := DeriveSecondary(mob, primary)

	mob.SetPrimaryAttributes(primary)
	mob.SetResourceCaps(caps)
	mob.SetSecondaryAttributes(secondary)

	mob.SetResources(model.Resources{
		Health:     rescale(current.Health, before.MaxHealth, caps.MaxHealth),
		Mana:       rescale(current.Mana, before.MaxMana, caps.MaxMana),
		Exhaustion: current.Exhaustion,
	})
}

// rescale preserves current/oldCap floor-rounded against newCap, and
// clamps into [0, newCap]. A zero or negative oldCap (uninitialized
// mob) skips the ratio math and just clamps current to the new cap.
func rescale(current, oldCap, newCap int32) int32 {
	if oldCap <= 0 {
		if current > newCap {
			return newCap
		}
		return current
	}
	scaled := int32((int64(current) * int64(newCap)) / int64(oldCap))
	if scaled > newCap {
		scaled = newCap
	}
	if scaled < 0 {
		scaled = 0
	}
	return scaled
}
