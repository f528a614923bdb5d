// Package regen implements the resource regeneration loop of spec
// §4.8: a set of mobs that take periodic health/mana gains and
// exhaustion decay until fully recovered, plus the higher-rate
// one-shot "rest" action.
//
// Grounded on the teacher's internal/spawn package's tick-driven
// set-membership shape (a mob enters the set on an event, a periodic
// tick walks the set and drops members that no longer need it), and on
// package combat's formula-function style (damage.go) for the
// per-stat arithmetic.
package regen

import (
	"math"

	"github.com/mudframe/core/internal/model"
)

// CombatChecker reports whether a mob is currently a member of the
// combat engine's combat set, to pick the in-combat (1%) vs
// out-of-combat (10%) regeneration rate (spec §4.8). Satisfied by
// *combat.Engine.
type CombatChecker interface {
	InCombatSet(mob *model.Object) bool
}

const (
	inCombatRate     = 0.01
	outOfCombatRate  = 0.10
	restRate         = 0.33
	inCombatExhaust  = 1
	outOfCombatExhaust = 10
	restExhaust      = 33
)

// Engine owns the regeneration set: every mob that still needs a
// health/mana/exhaustion tick.
type Engine struct {
	combat CombatChecker
	set    map[uint64]*model.Object
}

// NewEngine constructs a regeneration engine checking in-combat status
// through combat.
func NewEngine(combat CombatChecker) *Engine {
	return &Engine{combat: combat, set: make(map[uint64]*model.Object)}
}

// Register adds mob to the regeneration set (spec §4.8: "added ...
// when it takes damage, loses mana, or gains exhaustion"). Satisfies
// combat.RegenRegistrar.
func (e *Engine) Register(mob *model.Object) {
	e.set[mob.ID()] = mob
}

// InSet reports whether mob is currently tracked.
func (e *Engine) InSet(mob *model.Object) bool {
	_, ok := e.set[mob.ID()]
	return ok
}

// ProcessTick runs one regeneration tick (default every 30s, spec
// §4.9) over every tracked mob, removing any that are now fully
// recovered.
func (e *Engine) ProcessTick() {
	for id, mob := range e.set {
		if mob.Destroyed() {
			delete(e.set, id)
			continue
		}
		if fullyRecovered(mob) {
			delete(e.set, id)
			continue
		}

		rate, exhaustDelta := outOfCombatRate, int32(outOfCombatExhaust)
		if e.combat != nil && e.combat.InCombatSet(mob) {
			rate, exhaustDelta = inCombatRate, int32(inCombatExhaust)
		}
		apply(mob, rate, exhaustDelta)
	}
}

// Rest applies the one-shot 33%/33%/33 profile (spec §4.8) directly,
// without waiting for the next regeneration tick.
func (e *Engine) Rest(mob *model.Object) {
	apply(mob, restRate, restExhaust)
}

func fullyRecovered(mob *model.Object) bool {
	caps := mob.ResourceCaps()
	res := mob.Resources()
	return res.Health >= caps.MaxHealth && res.Mana >= caps.MaxMana && res.Exhaustion <= 0
}

func apply(mob *model.Object, rate float64, exhaustDelta int32) {
	caps := mob.ResourceCaps()
	res := mob.Resources()
	spiritMul := 1 + float64(mob.PrimaryAttributes().Spirit)*0.05

	res.Health += int32(math.Floor(float64(caps.MaxHealth) * rate * spiritMul))
	if res.Health > caps.MaxHealth {
		res.Health = caps.MaxHealth
	}
	res.Mana += int32(math.Floor(float64(caps.MaxMana) * rate * spiritMul))
	if res.Mana > caps.MaxMana {
		res.Mana = caps.MaxMana
	}
	res.Exhaustion -= exhaustDelta
	if res.Exhaustion < 0 {
		res.Exhaustion = 0
	}

	mob.SetResources(res)
}
