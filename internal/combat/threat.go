package combat

import "github.com/mudframe/core/internal/model"

// ProcessThreatSwitching implements spec §4.5.3's
// process_threat_switching(npc).
func (e *Engine) ProcessThreatSwitching(npc *model.Object) {
	if npc.IsDead() || npc.Room() == nil {
		e.RemoveFromCombatSet(npc)
		return
	}

	table := npc.ThreatTable()
	if table == nil {
		return
	}

	current := npc.CombatTarget()
	if current == nil {
		if replacement := table.HighestThreatInRoom(npc, npc.Room()); replacement != nil {
			e.InitiateCombat(npc, replacement, false)
		}
		return
	}

	if current.Room() != npc.Room() {
		npc.SetCombatTarget(nil)
		if replacement := table.HighestThreatInRoom(npc, npc.Room()); replacement != nil {
			e.InitiateCombat(npc, replacement, false)
		}
		return
	}

	c := table.GetThreat(current)
	if top := table.HighestThreatInRoom(npc, npc.Room()); top != nil && top != current {
		h := table.GetThreat(top)
		if float64(h) >= e.cfg.ThreatGraceMultiplier*float64(c) {
			npc.SetCombatTarget(top)
		}
	}
}

// ExpireThreatTick implements spec §4.5.2's expiration ticker for a
// single NPC's threat table: one cycle, called by the combat cadence.
// Returns true if the table is now empty (caller may stop scheduling).
func (e *Engine) ExpireThreatTick(npc *model.Object) bool {
	table := npc.ThreatTable()
	if table == nil {
		return true
	}

	for _, entry := range table.Entries() {
		if entry.Mob.Destroyed() {
			table.RemoveThreat(entry.Mob)
			continue
		}
		if entry.Mob.Room() == npc.Room() {
			continue
		}
		if npc.CombatTarget() == entry.Mob {
			continue
		}
		if !entry.ShouldExpire {
			entry.ShouldExpire = true
			continue
		}
		entry.Value = int64(float64(entry.Value) * e.cfg.ThreatDecayFactor)
		if entry.Value < e.cfg.ThreatFloor {
			table.RemoveThreat(entry.Mob)
		}
	}

	return table.IsEmpty()
}
