package combat

import "github.com/mudframe/core/internal/model"

// InitiateCombat implements spec §4.5.5's initiate_combat(attacker,
// defender, reaction).
func (e *Engine) InitiateCombat(attacker, defender *model.Object, reaction bool) {
	if attacker == defender {
		return
	}
	if attacker.IsDead() || defender.IsDead() {
		return
	}
	if attacker.IsShopkeeper() || defender.IsShopkeeper() {
		return
	}
	if attacker.CombatTarget() == defender {
		return
	}

	hadPriorTarget := attacker.CombatTarget() != nil

	attacker.SetCombatTarget(defender)
	e.addToCombatSet(attacker)
	defender.NotifyAI(model.AIAttacked, attacker)

	if !reaction {
		if !defender.IsCharacter() {
			if table := defender.ThreatTable(); table != nil {
				table.AddThreat(attacker, e.cfg.InitialThreatOnAttack)
			}
		} else if defender.CombatTarget() == nil {
			e.InitiateCombat(defender, attacker, true)
		}
		if !hadPriorTarget {
			e.runRound(attacker)
		}
	}
}
