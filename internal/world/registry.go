// Package world implements the spatial model (spec §4.2) and the
// entity graph (spec §4.1): dungeons, rooms, links, and the
// add/remove/move/contains/match operations every containment
// invariant in spec §3.2 is built from.
//
// Grounded on the teacher's internal/world.World singleton
// (sync.Map-backed object registry, 2-D region grid), generalized from
// a 2-D visibility grid to the spec's 3-D dungeon grid and from a
// concurrent server to the single-threaded cooperative executor spec
// §5 describes — so the registry here is a plain map, not sync.Map:
// there is exactly one goroutine ever touching the world between tick
// boundaries, and a lock would just be dead weight.
package world

// Registry is the process-wide object arena (spec §3.4, §9): objects
// are looked up by id, and a destroyed id simply fails to resolve —
// this is what makes back-references (reset tags, threat table
// entries) "weak" without needing a weak-pointer type.
type Registry struct {
	objects  map[uint64]*Object
	dungeons map[string]*Dungeon
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		objects:  make(map[uint64]*Object),
		dungeons: make(map[string]*Dungeon),
	}
}

// Track registers obj so Resolve can find it by id. Every constructor
// in package model mints an id; Track is what makes that id resolvable
// world-wide. Call once per object, right after construction.
func (r *Registry) Track(obj *Object) {
	r.objects[obj.ID()] = obj
}

// Resolve looks up a live object by id. Returns (nil, false) for an id
// that was never tracked or has since been destroyed.
func (r *Registry) Resolve(id uint64) (*Object, bool) {
	obj, ok := r.objects[id]
	if !ok || obj.Destroyed() {
		return nil, false
	}
	return obj, true
}

// Untrack removes obj from the registry (called by Destroy).
func (r *Registry) Untrack(id uint64) {
	delete(r.objects, id)
}

// AddDungeon registers a dungeon by id.
func (r *Registry) AddDungeon(d *Dungeon) {
	r.dungeons[d.ID] = d
}

// Dungeon looks up a registered dungeon by id.
func (r *Registry) Dungeon(id string) (*Dungeon, bool) {
	d, ok := r.dungeons[id]
	return d, ok
}

// Dungeons returns every registered dungeon, for the reset scheduler's
// "execute all resets" pass (spec §4.7).
func (r *Registry) Dungeons() []*Dungeon {
	out := make([]*Dungeon, 0, len(r.dungeons))
	for _, d := range r.dungeons {
		out = append(out, d)
	}
	return out
}
