package combat

import "github.com/mudframe/core/internal/model"

// Damage implements spec §4.5.4's target.damage(attacker, amount,
// type): shield absorption, health subtraction, regen registration,
// AI notification, mutual combat engagement, and death handoff.
func (e *Engine) Damage(attacker, target *model.Object, amount int32, dt model.DamageType) {
	if amount < 0 {
		amount = 0
	}
	amount = e.absorbViaShields(target, amount, dt)

	remaining := target.Health() - amount
	if remaining < 0 {
		remaining = 0
	}
	res := target.Resources()
	res.Health = remaining
	target.SetResources(res)

	e.registerRegen(target)
	target.NotifyAI(model.AIGotHit, attacker)

	if attacker.CombatTarget() == nil {
		e.InitiateCombat(attacker, target, true)
	}
	if target.CombatTarget() == nil {
		e.InitiateCombat(target, attacker, true)
	}

	if target.Health() <= 0 {
		e.HandleDeath(target, attacker)
	}
}

// absorbViaShields filters amount through target's active shield
// effects matching dt (spec §4.5.4: "Filter through active shield
// effects keyed by damage type"). Each matching shield is one-shot: it
// fully absorbs the hit it blocks, then expires — this engine has no
// separate shield-capacity field, so "absorb" and "consume" are the
// same event.
func (e *Engine) absorbViaShields(target *model.Object, amount int32, dt model.DamageType) int32 {
	active := target.ActiveEffects()
	kept := active[:0:0]
	absorbed := false
	for _, instance := range active {
		if !absorbed && instance.Template.Kind == model.EffectShield &&
			instance.Template.ShieldAbsorbsIsSet && instance.Template.ShieldAbsorbs == dt {
			absorbed = true
			continue
		}
		kept = append(kept, instance)
	}
	if absorbed {
		target.SetActiveEffects(kept)
		return 0
	}
	return amount
}

// HandleDeath implements spec §4.5.4's handle_death(dead, killer).
func (e *Engine) HandleDeath(dead, killer *model.Object) {
	killer.NotifyAI(model.AITargetDeath, dead)
	dead.NotifyAI(model.AIDeath, killer)

	dead.SetCombatTarget(nil)
	if table := dead.ThreatTable(); table != nil {
		table.Clear()
	}

	if room := dead.Room(); room != nil {
		for _, obj := range room.Contents() {
			if obj.Kind() != model.KindMob {
				continue
			}
			if table := obj.ThreatTable(); table != nil {
				table.RemoveThreat(dead)
			}
			if obj.CombatTarget() == dead {
				obj.SetCombatTarget(nil)
			}
		}
	}

	if killer.IsCharacter() {
		e.awardExperience(killer, dead.Level())
	}

	corpse := e.buildCorpse(dead)

	room := dead.Room()
	if room != nil {
		_ = e.graph.Add(room, corpse)
	}

	if killer.IsCharacter() {
		if char := killer.Character(); char != nil {
			settings := char.Settings()
			if settings.Autoloot {
				e.transferCorpseContents(corpse, killer)
			}
			if settings.Autosacrifice {
				_ = e.graph.Destroy(corpse)
			}
		}
	}

	if dead.IsCharacter() {
		if e.graveyard != nil {
			_ = e.graph.Move(dead, e.graveyard)
		}
		dead.SetResources(model.Resources{
			Health: dead.ResourceCaps().MaxHealth,
			Mana:   dead.ResourceCaps().MaxMana,
		})
	} else {
		_ = e.graph.Destroy(dead)
	}

	e.RemoveFromCombatSet(dead)
}

// buildCorpse creates the container spec §4.5.4 describes: every
// inventory item and every previously-equipped item moves into it,
// plus a currency item for dead's carried gold.
func (e *Engine) buildCorpse(dead *model.Object) *model.Object {
	corpse := model.NewCorpse(dead)
	e.registry.Track(corpse)

	equipped := dead.EquippedItems()
	for _, item := range equipped {
		dead.SetEquippedSlot(item.EquipSlot(), nil)
		_ = e.graph.Move(item, corpse)
	}
	for _, item := range dead.Contents() {
		_ = e.graph.Move(item, corpse)
	}

	if dead.Gold() > 0 {
		coins := model.NewCurrency(dead.Gold())
		e.registry.Track(coins)
		_ = e.graph.Add(corpse, coins)
		dead.SetGold(0)
	}

	return corpse
}

func (e *Engine) transferCorpseContents(corpse, killer *model.Object) {
	for _, item := range corpse.Contents() {
		_ = e.graph.Move(item, killer)
	}
}
