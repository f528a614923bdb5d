package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mudframe/core/internal/model"
)

func TestProcessThreatSwitchingPicksHighestWhenNoTarget(t *testing.T) {
	_, g, e := newTestEngine()
	room := newCombatRoom("Arena")
	npc := newCombatMob("a wolf", 5)
	a := newCombatMob("a", 5)
	b := newCombatMob("b", 5)
	require.NoError(t, g.Add(room, npc))
	require.NoError(t, g.Add(room, a))
	require.NoError(t, g.Add(room, b))

	npc.ThreatTable().AddThreat(a, 100)
	npc.ThreatTable().AddThreat(b, 200)

	e.ProcessThreatSwitching(npc)

	assert.Equal(t, b, npc.CombatTarget())
}

func TestProcessThreatSwitchingGraceWindowScenario(t *testing.T) {
	// Mirrors the end-to-end scenario: NPC with players A and B;
	// damage(A,100) then damage(B,105) keeps target A (below the 1.10
	// grace multiplier); damage(B,11) more crosses it and switches.
	_, g, e := newTestEngine()
	room := newCombatRoom("Arena")
	npc := newCombatMob("a wolf", 5)
	a := newCombatMob("a", 5)
	b := newCombatMob("b", 5)
	require.NoError(t, g.Add(room, npc))
	require.NoError(t, g.Add(room, a))
	require.NoError(t, g.Add(room, b))

	table := npc.ThreatTable()
	table.AddThreat(a, 100)
	npc.SetCombatTarget(a)

	table.AddThreat(b, 105)
	e.ProcessThreatSwitching(npc)
	assert.Equal(t, a, npc.CombatTarget(), "105 is below the 110 grace threshold over 100")

	table.AddThreat(b, 11) // b now at 116, a at 100 -> 116 >= 110
	e.ProcessThreatSwitching(npc)
	assert.Equal(t, b, npc.CombatTarget())
}

func TestProcessThreatSwitchingClearsWhenTargetLeavesRoom(t *testing.T) {
	_, g, e := newTestEngine()
	room := newCombatRoom("Arena")
	other := newCombatRoom("Elsewhere")
	npc := newCombatMob("a wolf", 5)
	target := newCombatMob("a", 5)
	require.NoError(t, g.Add(room, npc))
	require.NoError(t, g.Add(room, target))

	npc.SetCombatTarget(target)
	require.NoError(t, g.Move(target, other))

	e.ProcessThreatSwitching(npc)

	assert.Nil(t, npc.CombatTarget())
}

func TestProcessThreatSwitchingRemovesDeadFromCombatSet(t *testing.T) {
	_, g, e := newTestEngine()
	room := newCombatRoom("Arena")
	npc := newCombatMob("a wolf", 5)
	require.NoError(t, g.Add(room, npc))
	e.InitiateCombat(npc, newCombatMob("prey", 5), true)
	npc.SetResources(model.Resources{Health: 0})

	e.ProcessThreatSwitching(npc)

	assert.False(t, e.InCombatSet(npc))
}

func TestExpireThreatTickDecaysAfterSecondCycle(t *testing.T) {
	_, g, e := newTestEngine()
	room := newCombatRoom("Arena")
	other := newCombatRoom("Elsewhere")
	npc := newCombatMob("a wolf", 5)
	attacker := newCombatMob("a", 5)
	require.NoError(t, g.Add(room, npc))
	require.NoError(t, g.Add(other, attacker))

	table := npc.ThreatTable()
	table.AddThreat(attacker, 1000)

	// attacker is not co-located and not the current target on every
	// tick, so entry toggles should_expire true, then decays.
	empty := e.ExpireThreatTick(npc)
	assert.False(t, empty)
	assert.EqualValues(t, 1000, table.GetThreat(attacker))

	empty = e.ExpireThreatTick(npc)
	assert.False(t, empty)
	assert.EqualValues(t, 670, table.GetThreat(attacker)) // 1000 * 0.67
}

func TestExpireThreatTickRemovesBelowFloor(t *testing.T) {
	_, g, e := newTestEngine()
	room := newCombatRoom("Arena")
	other := newCombatRoom("Elsewhere")
	npc := newCombatMob("a wolf", 5)
	attacker := newCombatMob("a", 5)
	require.NoError(t, g.Add(room, npc))
	require.NoError(t, g.Add(other, attacker))

	table := npc.ThreatTable()
	table.AddThreat(attacker, 100)

	e.ExpireThreatTick(npc) // mark should_expire
	empty := e.ExpireThreatTick(npc) // decays to 67, below the 100 floor

	assert.True(t, empty)
	assert.EqualValues(t, 0, table.GetThreat(attacker))
}

func TestExpireThreatTickSkipsCurrentTarget(t *testing.T) {
	_, g, e := newTestEngine()
	room := newCombatRoom("Arena")
	other := newCombatRoom("Elsewhere")
	npc := newCombatMob("a wolf", 5)
	attacker := newCombatMob("a", 5)
	require.NoError(t, g.Add(room, npc))
	require.NoError(t, g.Add(other, attacker))

	table := npc.ThreatTable()
	table.AddThreat(attacker, 1000)
	npc.SetCombatTarget(attacker)

	e.ExpireThreatTick(npc)
	e.ExpireThreatTick(npc)

	assert.EqualValues(t, 1000, table.GetThreat(attacker))
}
