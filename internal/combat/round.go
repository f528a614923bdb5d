package combat

import (
	"sort"
	"strconv"

	"github.com/mudframe/core/internal/model"
)

// ProcessCombatRound implements spec §4.5.6's global combat loop,
// called once per combat tick.
func (e *Engine) ProcessCombatRound() {
	members := e.CombatSetSnapshot()
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].PrimaryAttributes().Agility > members[j].PrimaryAttributes().Agility
	})

	for _, mob := range members {
		target := mob.CombatTarget()
		if mob.Room() == nil || target == nil || target.IsDead() || target.Room() != mob.Room() {
			e.RemoveFromCombatSet(mob)
			continue
		}

		if !mob.IsCharacter() {
			e.ProcessThreatSwitching(mob)
			target = mob.CombatTarget()
			if target == nil {
				continue
			}
		}

		mob.NotifyAI(model.AICombatRound, target)
		e.runRound(mob)
		mob.NotifyAI(model.AIAfterCombatRound, target)
	}

	for _, mob := range members {
		if mob.IsCharacter() && mob.CombatTarget() != nil {
			e.redrawPrompt(mob)
		}
	}
}

// runRound performs one attacker's hit sequence against its current
// target: main-hand, off-hand if dual-wielding, and an extra main(+off)
// swing per known second_attack/third_attack passive (spec §4.5.6).
// Used both by the global round and by initiate_combat's "free round"
// grant, which — being an out-of-band bonus swing rather than a tick
// of the global loop — does not itself re-run threat switching or fire
// the combat-round AI events.
func (e *Engine) runRound(mob *model.Object) {
	target := mob.CombatTarget()
	if target == nil {
		return
	}

	e.swing(mob, target, model.SlotMainHand)
	if mob.EquippedSlot(model.SlotOffHand) != nil {
		offWeapon := mob.EquippedSlot(model.SlotOffHand)
		if offWeapon.Kind() == model.KindWeapon {
			e.OneHit(mob, target, HitOptions{Weapon: offWeapon})
		}
	}

	if mob.KnowsAbility("second_attack") {
		e.swing(mob, target, model.SlotMainHand)
		if off := mob.EquippedSlot(model.SlotOffHand); off != nil && off.Kind() == model.KindWeapon {
			e.OneHit(mob, target, HitOptions{Weapon: off})
		}
	}
	if mob.KnowsAbility("third_attack") {
		e.swing(mob, target, model.SlotMainHand)
		if off := mob.EquippedSlot(model.SlotOffHand); off != nil && off.Kind() == model.KindWeapon {
			e.OneHit(mob, target, HitOptions{Weapon: off})
		}
	}
}

func (e *Engine) swing(mob, target *model.Object, slot model.EquipSlot) {
	if target.IsDead() || mob.Room() != target.Room() {
		return
	}
	e.OneHit(mob, target, HitOptions{})
}

func (e *Engine) redrawPrompt(mob *model.Object) {
	hp := strconv.FormatInt(int64(mob.Health()), 10)
	maxHP := strconv.FormatInt(int64(mob.ResourceCaps().MaxHealth), 10)
	notify(mob, model.MessageSystem, mob.Name()+" HP:"+hp+"/"+maxHP)
}
