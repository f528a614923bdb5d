// Package effect implements the timed buff/debuff engine of spec §4.6:
// applying an effect template to a target, the per-tick damage-over-time
// and heal-over-time pipeline, and expiration with attribute
// recomputation.
//
// Grounded on the teacher's internal/game/combat package's formula
// style (damage.go) for the mitigation math, reused here at a reduced
// pipeline (spec §4.6: "pipeline identical to §4.5 steps 5-8, skipping
// accuracy and crit"), and on package combat's callback-injection
// pattern (Damager mirrors combat.RegenRegistrar/Rewarder) to avoid a
// hard dependency on the combat engine's concrete type.
package effect

import (
	"math"
	"math/rand/v2"
	"sort"

	"github.com/mudframe/core/internal/attributes"
	"github.com/mudframe/core/internal/model"
)

// Damager applies resolved damage to a target, engaging combat as a
// side effect (spec §4.6 step: "target.damage(caster, amount, type)").
// Satisfied by *combat.Engine.
type Damager interface {
	Damage(attacker, target *model.Object, amount int32, dt model.DamageType)
}

// Engine owns the effect tick clock and the set of mobs with at least
// one active effect instance.
type Engine struct {
	damager Damager

	// variationRangePercent mirrors combat.Config's default damage
	// variation, applied to DoT/HoT ticks the same way a weapon swing
	// varies (spec §4.6 reusing §4.5 steps 5-8).
	variationRangePercent float64

	tick   int64
	active map[uint64]*model.Object
}

// NewEngine constructs an effect engine bound to damager, using
// variationRangePercent for its tick damage/heal variation (pass
// combat.DefaultConfig().VariationRangePercent to match the combat
// engine's default).
func NewEngine(damager Damager, variationRangePercent float64) *Engine {
	return &Engine{
		damager:               damager,
		variationRangePercent: variationRangePercent,
		active:                make(map[uint64]*model.Object),
	}
}

// Apply installs tmpl onto target as a new active effect instance
// (spec §4.6). caster may equal target for a self-buff.
func (e *Engine) Apply(caster, target *model.Object, tmpl *model.EffectTemplate) *model.EffectInstance {
	instance := &model.EffectInstance{
		Template:       tmpl,
		Caster:         caster,
		Target:         target,
		StartTick:      e.tick,
		NextTickAt:     e.tick + int64(tmpl.TickPeriod),
		TicksRemaining: tmpl.Duration,
	}
	target.AddActiveEffect(instance)
	e.active[target.ID()] = target

	if tmpl.OnApply != nil {
		tmpl.OnApply(caster, target)
	}
	attributes.Recompute(target)
	return instance
}

// ProcessTick advances the effect clock by one tick and processes
// every due instance across every tracked mob, oldest start-tick first
// (spec §5: "Effect ticks due at the same instant are processed in
// effect-start-time order, oldest first").
func (e *Engine) ProcessTick() {
	e.tick++

	mobs := make([]*model.Object, 0, len(e.active))
	for _, m := range e.active {
		mobs = append(mobs, m)
	}
	sort.Slice(mobs, func(i, j int) bool {
		return e.oldestStartTick(mobs[i]) < e.oldestStartTick(mobs[j])
	})

	for _, mob := range mobs {
		e.processMob(mob)
	}
}

func (e *Engine) oldestStartTick(mob *model.Object) int64 {
	best := int64(math.MaxInt64)
	for _, inst := range mob.ActiveEffects() {
		if inst.StartTick < best {
			best = inst.StartTick
		}
	}
	return best
}

func (e *Engine) processMob(mob *model.Object) {
	if mob.Destroyed() {
		delete(e.active, mob.ID())
		return
	}

	var kept []*model.EffectInstance
	recomputeNeeded := false

	for _, inst := range mob.ActiveEffects() {
		if inst.Template.TickPeriod > 0 && e.tick >= inst.NextTickAt {
			e.fire(inst)
			inst.NextTickAt += int64(inst.Template.TickPeriod)
			inst.TicksRemaining -= inst.Template.TickPeriod
		} else if inst.Template.TickPeriod == 0 {
			inst.TicksRemaining--
		}

		if inst.IsExpired() {
			if inst.Template.OnExpire != nil {
				inst.Template.OnExpire(inst.Caster, inst.Target)
			}
			recomputeNeeded = true
			continue
		}
		kept = append(kept, inst)
	}

	mob.SetActiveEffects(kept)
	if recomputeNeeded {
		attributes.Recompute(mob)
	}
	if len(kept) == 0 {
		delete(e.active, mob.ID())
	}
}

// fire resolves one due DoT/HoT tick. Passive and shield instances
// have no periodic action (they only contribute to the derived
// attribute/mitigation fold package attributes and package combat
// already read directly off ActiveEffects), so fire is never called
// for them since their TickPeriod is 0.
func (e *Engine) fire(inst *model.EffectInstance) {
	switch inst.Template.Kind {
	case model.EffectDamageOverTime:
		e.fireDamage(inst)
	case model.EffectHealOverTime:
		e.fireHeal(inst)
	}
	if inst.Template.OnTick != nil {
		inst.Template.OnTick(inst.Caster, inst.Target)
	}
}

func (e *Engine) fireDamage(inst *model.EffectInstance) {
	target := inst.Target
	amount := e.applyVariation(float64(inst.Template.Magnitude))

	defenseStat := float64(target.SecondaryAttributes().Defense)
	if inst.Template.DamageCategory == model.DamageMagical {
		defenseStat = float64(target.SecondaryAttributes().Resilience)
	}
	amount = math.Floor(amount - defenseStat*0.05)

	amount *= target.TypeRelationship(inst.Template.DamageCategory).Multiplier()
	amount *= passiveOutgoing(inst.Caster) * passiveIncoming(target)
	amount = math.Floor(amount)
	if amount < 0 {
		amount = 0
	}

	e.damager.Damage(inst.Caster, target, int32(amount), inst.Template.DamageCategory)
}

func (e *Engine) fireHeal(inst *model.EffectInstance) {
	target := inst.Target
	amount := e.applyVariation(float64(inst.Template.Magnitude))
	if amount < 0 {
		amount = 0
	}

	res := target.Resources()
	res.Health += int32(math.Floor(amount))
	if maxHealth := target.ResourceCaps().MaxHealth; res.Health > maxHealth {
		res.Health = maxHealth
	}
	target.SetResources(res)
}

func (e *Engine) applyVariation(amount float64) float64 {
	if e.variationRangePercent == 0 {
		return amount
	}
	min := math.Floor(amount * (1 - e.variationRangePercent/200))
	max := math.Floor(amount * (1 + e.variationRangePercent/200))
	if max < min {
		max = min
	}
	span := int64(max-min) + 1
	if span <= 0 {
		return min
	}
	return min + float64(rand.Int64N(span))
}

func passiveOutgoing(mob *model.Object) float64 {
	if mob == nil {
		return 1
	}
	product := 1.0
	for _, inst := range mob.ActiveEffects() {
		if inst.Template.Kind == model.EffectPassive && inst.Template.OutgoingMultiplier != 0 {
			product *= inst.Template.OutgoingMultiplier
		}
	}
	return product
}

func passiveIncoming(mob *model.Object) float64 {
	product := 1.0
	for _, inst := range mob.ActiveEffects() {
		if inst.Template.Kind == model.EffectPassive && inst.Template.IncomingMultiplier != 0 {
			product *= inst.Template.IncomingMultiplier
		}
	}
	return product
}
