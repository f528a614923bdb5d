package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mudframe/core/internal/model"
)

func TestDamageClampsNegativeAmountToZero(t *testing.T) {
	_, g, e := newTestEngine()
	room := newCombatRoom("Arena")
	attacker := newCombatMob("a", 5)
	target := newCombatMob("b", 5)
	require.NoError(t, g.Add(room, attacker))
	require.NoError(t, g.Add(room, target))

	e.Damage(attacker, target, -10, model.DamagePhysical)

	assert.EqualValues(t, 1000, target.Health())
}

func TestDamageFloorsHealthAtZero(t *testing.T) {
	_, g, e := newTestEngine()
	room := newCombatRoom("Arena")
	attacker := newCombatMob("a", 5)
	target := newCombatMob("b", 5)
	target.SetResourceCaps(model.ResourceCaps{MaxHealth: 10})
	target.SetResources(model.Resources{Health: 10})
	require.NoError(t, g.Add(room, attacker))
	require.NoError(t, g.Add(room, target))

	e.Damage(attacker, target, 9999, model.DamagePhysical)

	assert.EqualValues(t, 0, target.Health())
}

func TestDamageEngagesMutualCombat(t *testing.T) {
	_, g, e := newTestEngine()
	room := newCombatRoom("Arena")
	attacker := newCombatMob("a", 5)
	target := newCombatMob("b", 5)
	target.SetResourceCaps(model.ResourceCaps{MaxHealth: 1000000})
	target.SetResources(model.Resources{Health: 1000000})
	require.NoError(t, g.Add(room, attacker))
	require.NoError(t, g.Add(room, target))

	e.Damage(attacker, target, 10, model.DamagePhysical)

	assert.Equal(t, target, attacker.CombatTarget())
}

func TestDamageAbsorbedByMatchingShieldIsOneShot(t *testing.T) {
	_, g, e := newTestEngine()
	room := newCombatRoom("Arena")
	attacker := newCombatMob("a", 5)
	target := newCombatMob("b", 5)
	shield := &model.EffectInstance{
		Template: &model.EffectTemplate{
			Kind:               model.EffectShield,
			ShieldAbsorbs:       model.DamagePhysical,
			ShieldAbsorbsIsSet:  true,
		},
	}
	target.AddActiveEffect(shield)
	require.NoError(t, g.Add(room, attacker))
	require.NoError(t, g.Add(room, target))

	e.Damage(attacker, target, 500, model.DamagePhysical)
	assert.EqualValues(t, 1000, target.Health(), "first hit fully absorbed")
	assert.Empty(t, target.ActiveEffects(), "shield consumed after absorbing")

	e.Damage(attacker, target, 500, model.DamagePhysical)
	assert.EqualValues(t, 500, target.Health(), "second hit lands, no shield left")
}

func TestDamageShieldOnlyAbsorbsMatchingDamageType(t *testing.T) {
	_, g, e := newTestEngine()
	room := newCombatRoom("Arena")
	attacker := newCombatMob("a", 5)
	target := newCombatMob("b", 5)
	shield := &model.EffectInstance{
		Template: &model.EffectTemplate{
			Kind:               model.EffectShield,
			ShieldAbsorbs:       model.DamageMagical,
			ShieldAbsorbsIsSet:  true,
		},
	}
	target.AddActiveEffect(shield)
	require.NoError(t, g.Add(room, attacker))
	require.NoError(t, g.Add(room, target))

	e.Damage(attacker, target, 500, model.DamagePhysical)

	assert.EqualValues(t, 500, target.Health())
	assert.Len(t, target.ActiveEffects(), 1)
}

func TestHandleDeathBuildsCorpseWithEquipmentAndGold(t *testing.T) {
	reg, g, e := newTestEngine()
	room := newCombatRoom("Arena")
	killer := newCombatMob("a hero", 5)
	dead := newCombatMob("a bandit", 5)
	dead.SetGold(50)
	sword := model.NewWeapon("a sword", []string{"sword"}, 5, model.SlotMainHand, model.AttributeBonus{}, 10, nil, model.WeaponOneHanded)
	require.NoError(t, g.Add(room, killer))
	require.NoError(t, g.Add(room, dead))
	require.NoError(t, g.Add(dead, sword))
	dead.SetEquippedSlot(model.SlotMainHand, sword)

	e.HandleDeath(dead, killer)

	var corpse *model.Object
	for _, obj := range room.Contents() {
		if obj.Kind() == model.KindProp && obj != dead {
			corpse = obj
		}
	}
	require.NotNil(t, corpse, "corpse should be dropped in the room")

	found := false
	var coin *model.Object
	for _, item := range corpse.Contents() {
		if item == sword {
			found = true
		}
		if item.CurrencyAmount() > 0 {
			coin = item
		}
	}
	assert.True(t, found, "equipped sword should move into the corpse")
	require.NotNil(t, coin, "gold should become a currency stack in the corpse")
	assert.EqualValues(t, 50, coin.CurrencyAmount())
	assert.Nil(t, dead.EquippedSlot(model.SlotMainHand))
	assert.EqualValues(t, 0, dead.Gold())

	_, ok := reg.Resolve(corpse.ID())
	assert.True(t, ok, "corpse must be tracked so it resolves by id")
}

func TestHandleDeathDestroysNPCAndClearsThreat(t *testing.T) {
	_, g, e := newTestEngine()
	room := newCombatRoom("Arena")
	killer := newCombatMob("a hero", 5)
	dead := newCombatMob("a rat", 2)
	witness := newCombatMob("a goblin", 2)
	require.NoError(t, g.Add(room, killer))
	require.NoError(t, g.Add(room, dead))
	require.NoError(t, g.Add(room, witness))

	witness.ThreatTable().AddThreat(dead, 500)
	witness.SetCombatTarget(dead)

	e.HandleDeath(dead, killer)

	assert.True(t, dead.Destroyed())
	assert.EqualValues(t, 0, witness.ThreatTable().GetThreat(dead))
	assert.Nil(t, witness.CombatTarget())
}

func TestHandleDeathTeleportsCharacterToGraveyardAndFullyHeals(t *testing.T) {
	_, g, e := newTestEngine()
	room := newCombatRoom("Arena")
	graveyard := newCombatRoom("Graveyard")
	e.SetGraveyard(graveyard)

	killer := newCombatMob("a hero", 5)
	deadMob := newCombatMob("a fallen hero", 5)
	char := model.NewCharacter("fallen", nil)
	deadMob.SetCharacter(char)
	deadMob.SetResources(model.Resources{Health: 0, Mana: 0})
	require.NoError(t, g.Add(room, killer))
	require.NoError(t, g.Add(room, deadMob))

	e.HandleDeath(deadMob, killer)

	assert.False(t, deadMob.Destroyed())
	assert.Equal(t, graveyard, deadMob.Room())
	assert.EqualValues(t, deadMob.ResourceCaps().MaxHealth, deadMob.Health())
}

func TestHandleDeathAwardsExperienceToCharacterKiller(t *testing.T) {
	_, g, e := newTestEngine()
	rewarder := &fakeRewarder{}
	e.SetRewarder(rewarder)

	room := newCombatRoom("Arena")
	killerMob := newCombatMob("a hero", 5)
	char := model.NewCharacter("hero", nil)
	killerMob.SetCharacter(char)
	dead := newCombatMob("a rat", 3)
	require.NoError(t, g.Add(room, killerMob))
	require.NoError(t, g.Add(room, dead))

	e.HandleDeath(dead, killerMob)

	assert.Equal(t, killerMob, rewarder.lastKiller)
	assert.EqualValues(t, 3, rewarder.lastLevel)
}

func TestHandleDeathAutolootTransfersCorpseContents(t *testing.T) {
	_, g, e := newTestEngine()
	room := newCombatRoom("Arena")
	killerMob := newCombatMob("a hero", 5)
	char := model.NewCharacter("hero", nil)
	char.SetSettings(model.CharacterSettings{Autoloot: true})
	killerMob.SetCharacter(char)
	dead := newCombatMob("a bandit", 5)
	dead.SetGold(10)
	require.NoError(t, g.Add(room, killerMob))
	require.NoError(t, g.Add(room, dead))

	e.HandleDeath(dead, killerMob)

	found := false
	for _, item := range killerMob.Contents() {
		if item.CurrencyAmount() == 10 {
			found = true
		}
	}
	assert.True(t, found, "autoloot should transfer the corpse's gold to the killer")
}

func TestHandleDeathAutosacrificeDestroysCorpse(t *testing.T) {
	_, g, e := newTestEngine()
	room := newCombatRoom("Arena")
	killerMob := newCombatMob("a hero", 5)
	char := model.NewCharacter("hero", nil)
	char.SetSettings(model.CharacterSettings{Autoloot: true, Autosacrifice: true})
	killerMob.SetCharacter(char)
	dead := newCombatMob("a bandit", 5)
	require.NoError(t, g.Add(room, killerMob))
	require.NoError(t, g.Add(room, dead))

	e.HandleDeath(dead, killerMob)

	for _, obj := range room.Contents() {
		assert.NotEqual(t, model.KindProp, obj.Kind(), "corpse should have been destroyed by autosacrifice")
	}
}
