package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mudframe/core/internal/model"
)

func TestProcessCombatRoundOrdersByAgilityDescending(t *testing.T) {
	_, g, e := newTestEngine()
	room := newCombatRoom("Arena")

	slow := newCombatMob("slow", 5)
	slow.SetPrimaryAttributes(model.PrimaryAttributes{Agility: 5})
	fast := newCombatMob("fast", 5)
	fast.SetPrimaryAttributes(model.PrimaryAttributes{Agility: 50})
	target := newCombatMob("target", 5)
	target.SetResourceCaps(model.ResourceCaps{MaxHealth: 100000})
	target.SetResources(model.Resources{Health: 100000})

	require.NoError(t, g.Add(room, slow))
	require.NoError(t, g.Add(room, fast))
	require.NoError(t, g.Add(room, target))

	slow.SetCombatTarget(target)
	fast.SetCombatTarget(target)
	e.addToCombatSet(slow)
	e.addToCombatSet(fast)

	var order []string
	target.SetAIEventSink(sinkFunc(func(event model.AIEvent, source *model.Object) {
		if event == model.AIGotHit {
			order = append(order, source.Name())
		}
	}))

	e.ProcessCombatRound()

	if assert.Len(t, order, 2) {
		assert.Equal(t, []string{"fast", "slow"}, order)
	}
}

func TestProcessCombatRoundRemovesMemberWithNoTarget(t *testing.T) {
	_, g, e := newTestEngine()
	room := newCombatRoom("Arena")
	mob := newCombatMob("a", 5)
	require.NoError(t, g.Add(room, mob))
	e.InitiateCombat(mob, newCombatMob("prey", 5), true)
	mob.SetCombatTarget(nil)

	e.ProcessCombatRound()

	assert.False(t, e.InCombatSet(mob))
}

func TestProcessCombatRoundRemovesMemberWhenTargetLeftRoom(t *testing.T) {
	_, g, e := newTestEngine()
	room := newCombatRoom("Arena")
	other := newCombatRoom("Elsewhere")
	mob := newCombatMob("a", 5)
	target := newCombatMob("b", 5)
	require.NoError(t, g.Add(room, mob))
	require.NoError(t, g.Add(room, target))
	e.InitiateCombat(mob, target, true)

	require.NoError(t, g.Move(target, other))

	e.ProcessCombatRound()

	assert.False(t, e.InCombatSet(mob))
}

func TestRunRoundSwingsOffhandWeapon(t *testing.T) {
	_, g, e := newTestEngine()
	room := newCombatRoom("Arena")
	attacker := newCombatMob("an orc", 5)
	sec := attacker.SecondaryAttributes()
	sec.Accuracy = 1000
	attacker.SetSecondaryAttributes(sec)
	offhand := model.NewWeapon("a dagger", []string{"dagger"}, 2, model.SlotOffHand, model.AttributeBonus{}, 15, nil, model.WeaponOneHanded)
	attacker.SetEquippedSlot(model.SlotOffHand, offhand)
	target := newCombatMob("a guard", 5)
	target.SetResourceCaps(model.ResourceCaps{MaxHealth: 100000})
	target.SetResources(model.Resources{Health: 100000})
	require.NoError(t, g.Add(room, attacker))
	require.NoError(t, g.Add(room, target))
	attacker.SetCombatTarget(target)

	e.runRound(attacker)

	// main hand (50) + off hand (50 + 15) = 115 damage when both swings
	// land (variation is disabled), but the hit chance is capped at 95%
	// so either swing can miss -- assert only that damage occurred at all.
	assert.Less(t, target.Health(), int32(100000))
}

func TestRunRoundGrantsExtraSwingForSecondAttack(t *testing.T) {
	_, g, e := newTestEngine()
	room := newCombatRoom("Arena")
	attacker := newCombatMob("an orc", 5)
	attacker.LearnAbility("second_attack")
	target := newCombatMob("a guard", 5)
	target.SetResourceCaps(model.ResourceCaps{MaxHealth: 100000})
	target.SetResources(model.Resources{Health: 100000})
	// Guaranteed hits aren't available on runRound's swing(), so pump
	// accuracy high with zero avoidance: the hit chance is capped at 95%,
	// and the assertion only needs one of the two swings to land.
	sec := attacker.SecondaryAttributes()
	sec.Accuracy = 1000
	attacker.SetSecondaryAttributes(sec)
	require.NoError(t, g.Add(room, attacker))
	require.NoError(t, g.Add(room, target))
	attacker.SetCombatTarget(target)

	e.runRound(attacker)

	assert.LessOrEqual(t, target.Health(), int32(100000-50))
}

// sinkFunc adapts a function literal to model.AIEventSink.
type sinkFunc func(event model.AIEvent, source *model.Object)

func (f sinkFunc) Notify(event model.AIEvent, source *model.Object) { f(event, source) }
