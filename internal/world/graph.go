package world

import (
	"strings"

	"github.com/mudframe/core/internal/model"
)

// Graph implements the entity graph operations of spec §4.1 —
// add/remove/move/contains/destroy — over a Registry. Grounded on the
// teacher's World.addObject/removeObject pair, generalized from a
// region-local visibility list to the general containment tree spec
// §3.2 describes.
type Graph struct {
	registry *Registry
}

// NewGraph constructs a Graph bound to registry. Destroy needs the
// registry to untrack the object it tears down; every other operation
// only touches the objects passed to it.
func NewGraph(registry *Registry) *Graph {
	return &Graph{registry: registry}
}

// Add implements spec §4.1's add(parent, child): if child already has
// a parent, it is removed from it first; child.parent becomes parent;
// child is pushed onto parent.contents; the weight delta propagates up
// to the room root. Dungeon membership needs no separate propagation
// step — it is derived on demand from the room ancestor
// (model.Object.Dungeon()), so moving a subtree across dungeons
// "updates" every descendant's membership simply by virtue of where
// the subtree's parent chain now points.
func (g *Graph) Add(parent, child *Object) error {
	if child.Destroyed() || parent.Destroyed() {
		return ErrGone
	}
	if child.IsSelfOrAncestorOf(parent) {
		return ErrInvariantViolation
	}

	if old := child.Parent(); old != nil {
		g.detach(old, child)
	}

	child.SetParent(parent)
	parent.AppendContent(child)
	propagateWeight(parent, child.Weight())
	return nil
}

// Remove implements spec §4.1's remove(child): symmetric to Add, the
// weight delta is subtracted back up the chain.
func (g *Graph) Remove(child *Object) error {
	if child.Destroyed() {
		return ErrGone
	}
	parent := child.Parent()
	if parent == nil {
		return nil
	}
	g.detach(parent, child)
	return nil
}

func (g *Graph) detach(parent, child *Object) {
	parent.RemoveContent(child)
	child.SetParent(nil)
	propagateWeight(parent, -child.Weight())
}

// Move implements spec §4.1's move(obj, new_parent): equivalent to
// Add(new_parent, obj); idempotent when new_parent == obj.parent. Also
// carries the reset back-reference lifecycle (spec §4.7): moving an
// item into a different room severs its reset tag, since it no longer
// counts toward that reset's living-instance tally; moving a mob never
// severs it, since a wandering mob is still the reset's responsibility.
func (g *Graph) Move(obj, newParent *Object) error {
	if obj.Parent() == newParent {
		return nil
	}
	oldRoom := obj.Room()
	if err := g.Add(newParent, obj); err != nil {
		return err
	}
	if obj.Kind() != model.KindMob && obj.ResetID() != 0 && obj.Room() != oldRoom {
		obj.SetResetID(0)
	}
	return nil
}

// Contains reports whether target is a direct member of obj.Contents()
// (spec §4.1: "reference check over contents").
func (g *Graph) Contains(obj, target *Object) bool {
	for _, c := range obj.Contents() {
		if c == target {
			return true
		}
	}
	return false
}

// Match implements spec §4.1's keyword matcher: every whitespace
// token of phrase must be a prefix of some whitespace-tokenized
// keyword of obj, case-insensitive.
func Match(obj *Object, phrase string) bool {
	tokens := strings.Fields(strings.ToLower(phrase))
	if len(tokens) == 0 {
		return false
	}
	keywords := obj.Keywords()
	lowerKeywords := make([]string, len(keywords))
	for i, k := range keywords {
		lowerKeywords[i] = strings.ToLower(k)
	}

	for _, tok := range tokens {
		matched := false
		for _, kw := range lowerKeywords {
			if strings.HasPrefix(kw, tok) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// propagateWeight walks from start up through every ancestor (to the
// room root) applying delta, keeping spec §8 invariant 2 — "X.weight
// == X.base_weight + Σ child.weight after every mutation" — true at
// every level in one pass.
func propagateWeight(start *Object, delta int64) {
	cur := start
	for cur != nil {
		cur.AdjustWeight(delta)
		cur = cur.Parent()
	}
}

// Destroy tears an object down (spec §3.4): removes it from its
// parent, clears the owning mob's equipped-slot reference if it was
// equipped, orphans any remaining contents, clears its reset tag, and
// untracks it from the registry. Combat/threat/regeneration/effect
// registrations are each owning package's own responsibility to clear
// first.
func (g *Graph) Destroy(obj *Object) error {
	if obj.Destroyed() {
		return nil
	}

	if parent := obj.Parent(); parent != nil {
		if obj.IsEquipment() && parent.Kind() == model.KindMob {
			if parent.EquippedSlot(obj.EquipSlot()) == obj {
				parent.SetEquippedSlot(obj.EquipSlot(), nil)
			}
		}
		g.detach(parent, obj)
	}

	for _, child := range obj.Contents() {
		g.detach(obj, child)
	}

	obj.SetResetID(0)
	obj.MarkDestroyed()
	g.registry.Untrack(obj.ID())
	return nil
}
