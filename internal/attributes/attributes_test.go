package attributes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mudframe/core/internal/model"
)

type stubArchetype struct {
	id              string
	base, growth    model.PrimaryAttributes
	baseRes, growRes model.ResourceCaps
}

func (s stubArchetype) ID() string                             { return s.id }
func (s stubArchetype) BaseAttributes() model.PrimaryAttributes { return s.base }
func (s stubArchetype) GrowthAttributes() model.PrimaryAttributes { return s.growth }
func (s stubArchetype) BaseResources() model.ResourceCaps       { return s.baseRes }
func (s stubArchetype) GrowthResources() model.ResourceCaps     { return s.growRes }

func TestDerivePrimaryAppliesGrowthByLevel(t *testing.T) {
	race := stubArchetype{id: "human", base: model.PrimaryAttributes{Strength: 5}, growth: model.PrimaryAttributes{Strength: 1}}
	job := stubArchetype{id: "warrior", base: model.PrimaryAttributes{Strength: 3}, growth: model.PrimaryAttributes{Strength: 2}}

	mob := model.NewMob("a warrior", nil, 1000, 5, race, job)

	primary := DerivePrimary(mob)
	// base: 5+3=8, growth per level: 1+2=3, levels above 1: 4 -> 8+12=20
	assert.EqualValues(t, 20, primary.Strength)
}

func TestDerivePrimaryIncludesEquipmentBonus(t *testing.T) {
	race := stubArchetype{id: "human"}
	job := stubArchetype{id: "warrior"}
	mob := model.NewMob("a warrior", nil, 1000, 1, race, job)

	ring := model.NewEquipment("a ring", []string{"ring"}, 1, model.SlotRing, model.AttributeBonus{
		Primary: model.PrimaryAttributes{Strength: 4},
	})
	mob.SetEquippedSlot(model.SlotRing, ring)

	primary := DerivePrimary(mob)
	assert.EqualValues(t, 4, primary.Strength)
}

func TestRecomputePreservesResourceRatio(t *testing.T) {
	race := stubArchetype{baseRes: model.ResourceCaps{MaxHealth: 100}}
	job := stubArchetype{}
	mob := model.NewMob("a warrior", nil, 1000, 1, race, job)

	mob.SetResourceCaps(model.ResourceCaps{MaxHealth: 100})
	mob.SetResources(model.Resources{Health: 50})

	require.EqualValues(t, 100, mob.ResourceCaps().MaxHealth)

	// Double the health cap via a base resource bonus from a new job.
	job2 := stubArchetype{baseRes: model.ResourceCaps{MaxHealth: 100}}
	mob.SetArchetypes(race, job2)

	Recompute(mob)

	assert.EqualValues(t, 200, mob.ResourceCaps().MaxHealth)
	assert.EqualValues(t, 100, mob.Health(), "health ratio (50/100) should scale to 100/200")
}

func TestRecomputeNeverExceedsCap(t *testing.T) {
	race := stubArchetype{baseRes: model.ResourceCaps{MaxHealth: 100}}
	job := stubArchetype{}
	mob := model.NewMob("a warrior", nil, 1000, 1, race, job)
	mob.SetResourceCaps(model.ResourceCaps{MaxHealth: 100})
	mob.SetResources(model.Resources{Health: 100})

	Recompute(mob)
	assert.LessOrEqual(t, mob.Health(), mob.ResourceCaps().MaxHealth)
}
