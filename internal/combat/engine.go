package combat

import (
	"log/slog"

	"github.com/mudframe/core/internal/model"
	"github.com/mudframe/core/internal/world"
)

// RegenRegistrar registers a mob into the regeneration set (spec
// §4.5.4: "Register target in regeneration set"). Defined consumer-side
// so package combat never needs to import package regen.
type RegenRegistrar interface {
	Register(mob *model.Object)
}

// Rewarder awards experience to a character on an NPC kill (spec
// §4.5.4 step 4). Defined consumer-side for the same reason as
// RegenRegistrar; the default formula (level × 10) is used when no
// Rewarder is attached.
type Rewarder interface {
	Award(killer *model.Object, deadLevel int32)
}

// Engine is the combat engine of spec §4.5: hit resolution, the global
// combat set, threat-table-driven target switching, round processing,
// and death handling. Grounded on the teacher's CombatManager
// (manager.go), generalized from a fixed MVP formula to the
// data-driven attacker/target/weapon pipeline spec §4.5 describes, and
// from player-vs-npc type switches to a single mob sum type.
type Engine struct {
	graph    *world.Graph
	registry *world.Registry
	cfg      Config

	combatSet map[uint64]*model.Object

	regen     RegenRegistrar
	rewarder  Rewarder
	graveyard *model.Object

	log *slog.Logger
}

// NewEngine constructs an Engine bound to graph and registry, using
// cfg for its tunables. registry is used only to track objects the
// engine spawns (corpses, currency drops) so they remain resolvable by
// id after creation.
func NewEngine(graph *world.Graph, registry *world.Registry, cfg Config, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		graph:     graph,
		registry:  registry,
		cfg:       cfg,
		combatSet: make(map[uint64]*model.Object),
		log:       log,
	}
}

// SetRegenRegistrar attaches the regeneration set.
func (e *Engine) SetRegenRegistrar(r RegenRegistrar) { e.regen = r }

// SetRewarder attaches an experience-award policy.
func (e *Engine) SetRewarder(r Rewarder) { e.rewarder = r }

// SetGraveyard sets the room characters are teleported to on death.
func (e *Engine) SetGraveyard(room *model.Object) { e.graveyard = room }

// InCombatSet reports whether mob is a member of the global combat set
// (spec §8 invariant 7).
func (e *Engine) InCombatSet(mob *model.Object) bool {
	_, ok := e.combatSet[mob.ID()]
	return ok
}

// addToCombatSet registers mob, a no-op if already present.
func (e *Engine) addToCombatSet(mob *model.Object) {
	e.combatSet[mob.ID()] = mob
}

// RemoveFromCombatSet drops mob from the combat set and clears its
// target (spec §8 invariant 7: membership iff target != nil).
func (e *Engine) RemoveFromCombatSet(mob *model.Object) {
	delete(e.combatSet, mob.ID())
	mob.SetCombatTarget(nil)
}

// CombatSetSnapshot returns a copy of the combat set's members, for
// the round processor to iterate safely while mutating membership.
func (e *Engine) CombatSetSnapshot() []*model.Object {
	out := make([]*model.Object, 0, len(e.combatSet))
	for _, m := range e.combatSet {
		out = append(out, m)
	}
	return out
}

func (e *Engine) awardExperience(killer *model.Object, deadLevel int32) {
	if e.rewarder != nil {
		e.rewarder.Award(killer, deadLevel)
		return
	}
	killer.AddExperience(int64(deadLevel) * 10)
}

func (e *Engine) registerRegen(mob *model.Object) {
	if e.regen != nil {
		e.regen.Register(mob)
	}
}
