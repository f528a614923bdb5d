package combat

import (
	"math"
	"math/rand/v2"

	"github.com/mudframe/core/internal/model"
)

// HitOptions carries one_hit/one_magic_hit's optional inputs (spec
// §4.5).
type HitOptions struct {
	Weapon                *model.Object // supplementary weapon (e.g. an off-hand swing); see attributes.DeriveSecondary's doc comment for why this is additive, not the mob's whole attack power
	GuaranteedHit         bool
	AbilityName           string
	HitType               *model.HitType // override; defaults to the weapon's hit type
	AttackPowerBonus      int32
	AttackPowerMultiplier float64 // 0 means "no multiplier", treated as 1
	VariationRangePercent float64 // 0 means "use cfg default"
	VariationMin          *int32  // explicit override
	VariationMax          *int32  // explicit override
}

// Result is the outcome of a single hit.
type Result struct {
	Damage int32
	Miss   bool
	Crit   bool
}

// OneHit implements spec §4.5's one_hit: attacker.attack_power is the
// base, mitigated by target.defense.
func (e *Engine) OneHit(attacker, target *model.Object, opts HitOptions) Result {
	return e.hit(attacker, target, attacker.SecondaryAttributes().AttackPower, model.DamagePhysical, opts)
}

// OneMagicHit implements spec §4.5's one_magic_hit: spell_power
// substitutes for attack_power and resilience for defense. AbilityName
// is required (it panics when empty). Its hit and miss messages are the
// same lines OneHit emits, including the second-person line to the
// attacker; AbilityName does not appear in them.
func (e *Engine) OneMagicHit(attacker, target *model.Object, opts HitOptions) Result {
	if opts.AbilityName == "" {
		panic("combat: OneMagicHit requires AbilityName")
	}
	return e.hit(attacker, target, attacker.SecondaryAttributes().SpellPower, model.DamageMagical, opts)
}

func (e *Engine) hit(attacker, target *model.Object, basePower int32, dt model.DamageType, opts HitOptions) Result {
	if attacker.IsShopkeeper() {
		return Result{}
	}
	if attacker.Room() == nil || attacker.Room() != target.Room() {
		return Result{}
	}
	if target.Health() <= 0 {
		return Result{}
	}

	if !opts.GuaranteedHit {
		threshold := clampF(50+float64(attacker.SecondaryAttributes().Accuracy)-float64(target.SecondaryAttributes().Avoidance), 5, 95)
		if float64(rand.IntN(100)) >= threshold {
			e.emitMiss(attacker, target)
			return Result{Miss: true}
		}
	}

	base := float64(basePower)
	if opts.Weapon != nil {
		base += float64(opts.Weapon.AttackPower())
	}

	if p := proficiency(attacker, "pure_power"); p > 0 {
		base *= 1 + 2*float64(p)/100
	}

	mult := opts.AttackPowerMultiplier
	if mult == 0 {
		mult = 1
	}
	amount := (base + float64(opts.AttackPowerBonus)) * mult

	amount = e.applyVariation(amount, opts)

	defenseStat := float64(target.SecondaryAttributes().Defense)
	if dt == model.DamageMagical {
		defenseStat = float64(target.SecondaryAttributes().Resilience)
	}
	amount = math.Floor(amount - defenseStat*0.05)

	crit := rand.IntN(100) < int(attacker.SecondaryAttributes().CritRate)
	if crit {
		amount *= 2
	}

	amount *= target.TypeRelationship(dt).Multiplier()
	amount *= passiveOutgoing(attacker) * passiveIncoming(target)
	amount = math.Floor(amount)

	if amount < 0 {
		amount = 0
	}

	hitType := opts.HitType
	if hitType == nil && opts.Weapon != nil {
		hitType = opts.Weapon.WeaponHitType()
	}

	final := int32(amount)
	e.Damage(attacker, target, final, dt)
	e.emitHit(attacker, target, final, crit, hitType)
	return Result{Damage: final, Crit: crit}
}

func (e *Engine) applyVariation(amount float64, opts HitOptions) float64 {
	rangePct := opts.VariationRangePercent
	if rangePct == 0 {
		rangePct = e.cfg.VariationRangePercent
	}
	min := math.Floor(amount * (1 - rangePct/200))
	max := math.Floor(amount * (1 + rangePct/200))
	if opts.VariationMin != nil {
		min = float64(*opts.VariationMin)
	}
	if opts.VariationMax != nil {
		max = float64(*opts.VariationMax)
	}
	if max < min {
		max = min
	}
	span := int64(max-min) + 1
	if span <= 0 {
		return min
	}
	return min + float64(rand.Int64N(span))
}

func proficiency(mob *model.Object, ability string) int32 {
	if !mob.KnowsAbility(ability) {
		return 0
	}
	p := mob.AbilityUseCount(ability)
	if p > 100 {
		p = 100
	}
	return p
}

func passiveOutgoing(mob *model.Object) float64 {
	product := 1.0
	for _, e := range mob.ActiveEffects() {
		if e.Template.Kind == model.EffectPassive && e.Template.OutgoingMultiplier != 0 {
			product *= e.Template.OutgoingMultiplier
		}
	}
	return product
}

func passiveIncoming(mob *model.Object) float64 {
	product := 1.0
	for _, e := range mob.ActiveEffects() {
		if e.Template.Kind == model.EffectPassive && e.Template.IncomingMultiplier != 0 {
			product *= e.Template.IncomingMultiplier
		}
	}
	return product
}

func clampF(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func (e *Engine) emitMiss(attacker, target *model.Object) {
	broadcastCombat(attacker, target,
		"You swing at "+target.Name()+" and miss.",
		attacker.Name()+" swings at you and misses.",
		attacker.Name()+" swings at "+target.Name()+" and misses.",
	)
}

func (e *Engine) emitHit(attacker, target *model.Object, amount int32, crit bool, hitType *model.HitType) {
	verb, thirdVerb := "hit", "hits"
	if hitType != nil {
		verb, thirdVerb = hitType.Verb, hitType.ThirdPersonVerb
	}
	suffix := ""
	if crit {
		suffix = " (critical!)"
	}
	broadcastCombat(attacker, target,
		"You "+verb+" "+target.Name()+suffix+".",
		attacker.Name()+" "+thirdVerb+" you"+suffix+".",
		attacker.Name()+" "+thirdVerb+" "+target.Name()+suffix+".",
	)
}
