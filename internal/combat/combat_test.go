package combat

import (
	"testing"

	"github.com/mudframe/core/internal/model"
	"github.com/mudframe/core/internal/world"
)

// newTestEngine wires a fresh graph/registry/engine triple, mirroring
// package world's newTestGraph helper.
// newTestEngine wires up an Engine with variation disabled (range 0)
// so damage-pipeline tests can assert exact numbers instead of ranges.
func newTestEngine() (*world.Registry, *world.Graph, *Engine) {
	reg := world.NewRegistry()
	g := world.NewGraph(reg)
	cfg := DefaultConfig()
	cfg.VariationRangePercent = 0
	e := NewEngine(g, reg, cfg, nil)
	return reg, g, e
}

// placeInRoom adds mob to room via the graph, the same way package
// world's spatial tests populate a room with occupants.
func placeInRoom(t *testing.T, g *world.Graph, room, mob *model.Object) {
	t.Helper()
	if err := g.Add(room, mob); err != nil {
		t.Fatalf("Add(%v, %v): %v", room, mob, err)
	}
}

func newCombatMob(name string, level int32) *model.Object {
	mob := model.NewMob(name, []string{name}, 1000, level, nil, nil)
	mob.SetResourceCaps(model.ResourceCaps{MaxHealth: 1000, MaxMana: 100})
	mob.SetResources(model.Resources{Health: 1000, Mana: 100})
	mob.SetSecondaryAttributes(model.SecondaryAttributes{
		AttackPower: 50,
		Defense:     0,
		Accuracy:    50,
		Avoidance:   0,
		CritRate:    0,
		SpellPower:  50,
		Resilience:  0,
	})
	return mob
}

func newCombatRoom(name string) *model.Object {
	return model.NewRoom(name, nil, 0, 0, 0, model.AllExits)
}
