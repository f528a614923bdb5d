// Package reset implements the template-driven repopulation system of
// spec §4.7: a reset tops a room back up to its declared minimum
// population of template-spawned objects, tracked by a weak collection
// of spawned object ids that thins itself out automatically as those
// objects die or are destroyed.
//
// Grounded on the teacher's internal/spawn package (Manager.DoSpawn's
// count-then-instantiate-then-register shape), adapted from a
// database-backed spawn-point/NPC-template pairing to the spec's
// template-registry-resolved, weak-reference-tracked reset.
package reset

import (
	"log/slog"

	"github.com/mudframe/core/internal/ids"
	"github.com/mudframe/core/internal/model"
	"github.com/mudframe/core/internal/world"
)

// TemplateRegistry resolves a template id to its sparse description.
// Satisfied by package content.
type TemplateRegistry interface {
	Template(id string) (*model.Template, bool)
}

// ArchetypeResolver resolves race/job ids for a freshly instantiated
// mob. Satisfied by package content; nil is accepted by Engine when a
// reset never spawns archetype-bearing mobs (e.g. item/prop resets).
type ArchetypeResolver interface {
	Race(id string) (model.Race, bool)
	Job(id string) (model.Job, bool)
}

// Reset declares one repopulation rule (spec §4.7): spawn instances of
// TemplateID into the room RoomID resolves to, keeping the living count
// between MinCount and MaxCount.
type Reset struct {
	ID         uint64
	TemplateID string
	RoomID     uint64
	MinCount   int32
	MaxCount   int32

	// EquippedTemplateIDs and InventoryTemplateIDs are only consulted
	// for mob spawns: the declared templates are instantiated alongside
	// each new mob and equipped or dropped into its inventory.
	EquippedTemplateIDs  map[model.EquipSlot]string
	InventoryTemplateIDs []string

	spawned []uint64 // weak collection: ids of everything this reset has ever spawned
}

// New allocates a reset with a fresh id. Register it against a dungeon
// with Engine.Register before the first Execute.
func New(templateID string, roomID uint64, minCount, maxCount int32, equipped map[model.EquipSlot]string, inventory []string) *Reset {
	return &Reset{
		ID:                   ids.Next(),
		TemplateID:           templateID,
		RoomID:               roomID,
		MinCount:             minCount,
		MaxCount:             maxCount,
		EquippedTemplateIDs:  equipped,
		InventoryTemplateIDs: inventory,
	}
}

// Engine executes resets against a world graph/registry.
type Engine struct {
	graph      *world.Graph
	registry   *world.Registry
	templates  TemplateRegistry
	archetypes ArchetypeResolver

	resets map[uint64]*Reset
}

// NewEngine constructs a reset engine. archetypes may be nil if no
// reset in use ever spawns a mob carrying a race/job template id.
func NewEngine(graph *world.Graph, registry *world.Registry, templates TemplateRegistry, archetypes ArchetypeResolver) *Engine {
	return &Engine{
		graph:      graph,
		registry:   registry,
		templates:  templates,
		archetypes: archetypes,
		resets:     make(map[uint64]*Reset),
	}
}

// Register records r against dungeon, so ExecuteAll finds it (spec
// §4.7: "every registered dungeon's resets").
func (e *Engine) Register(dungeon *model.Dungeon, r *Reset) {
	e.resets[r.ID] = r
	dungeon.RegisterReset(r.ID)
}

// ExecuteAll runs Execute for every reset registered against every
// dungeon the registry knows about — the global "execute all resets"
// pass (spec §4.7).
func (e *Engine) ExecuteAll() {
	for _, dungeon := range e.registry.Dungeons() {
		for _, id := range dungeon.RegisteredResets() {
			r, ok := e.resets[id]
			if !ok {
				continue
			}
			e.Execute(r)
		}
	}
}

// Execute runs one reset's four-step operation (spec §4.7):
//  1. resolve the room, skipping if it no longer resolves;
//  2. count living tracked instances, dropping dead/destroyed ones out
//     of the weak collection as a side effect;
//  3. spawn up to MinCount more if short;
//  4. tag every spawned object with this reset's id.
func (e *Engine) Execute(r *Reset) {
	room, ok := e.registry.Resolve(r.RoomID)
	if !ok {
		return
	}

	living := r.spawned[:0]
	for _, id := range r.spawned {
		if obj, ok := e.registry.Resolve(id); ok && obj.ResetID() == r.ID {
			living = append(living, id)
		}
	}
	r.spawned = living

	target := r.MinCount
	if r.MaxCount < target {
		target = r.MaxCount
	}
	count := int32(len(r.spawned))
	if count >= r.MinCount {
		return
	}

	for i := int32(0); i < target-count; i++ {
		obj, ok := e.spawn(r, r.TemplateID, room)
		if !ok {
			slog.Warn("reset: template failed to resolve", "reset_id", r.ID, "template_id", r.TemplateID)
			break
		}
		if obj.Kind() == model.KindMob {
			e.equipAndStock(r, obj)
		}
	}
}

// spawn instantiates templateID, tags it with r's id, tracks it in the
// registry, and places it in room. Returns false if the template id
// does not resolve.
func (e *Engine) spawn(r *Reset, templateID string, room *model.Object) (*model.Object, bool) {
	tmpl, ok := e.templates.Template(templateID)
	if !ok {
		return nil, false
	}

	obj := model.NewFromTemplate(tmpl)
	if obj.Kind() == model.KindMob {
		e.resolveArchetypes(obj, tmpl)
	}

	obj.SetResetID(r.ID)
	e.registry.Track(obj)
	r.spawned = append(r.spawned, obj.ID())

	if err := e.graph.Add(room, obj); err != nil {
		slog.Warn("reset: spawn could not be placed in room", "reset_id", r.ID, "template_id", templateID, "err", err)
	}
	return obj, true
}

func (e *Engine) resolveArchetypes(mob *model.Object, tmpl *model.Template) {
	if e.archetypes == nil {
		return
	}
	var race model.Race
	var job model.Job
	if tmpl.RaceID != nil {
		race, _ = e.archetypes.Race(*tmpl.RaceID)
	}
	if tmpl.JobID != nil {
		job, _ = e.archetypes.Job(*tmpl.JobID)
	}
	mob.SetArchetypes(race, job)
}

// equipAndStock spawns mob's declared equipment and inventory
// templates (spec §4.7), each tagged with the same reset id so they
// live and die with the mob they were spawned for.
func (e *Engine) equipAndStock(r *Reset, mob *model.Object) {
	for slot, templateID := range r.EquippedTemplateIDs {
		item, ok := e.spawnInto(r, templateID, mob)
		if !ok {
			continue
		}
		mob.SetEquippedSlot(slot, item)
	}
	for _, templateID := range r.InventoryTemplateIDs {
		e.spawnInto(r, templateID, mob)
	}
}

// spawnInto instantiates templateID, tags and tracks it like spawn,
// but places it directly into parent (a mob's equipment/inventory)
// rather than a room.
func (e *Engine) spawnInto(r *Reset, templateID string, parent *model.Object) (*model.Object, bool) {
	tmpl, ok := e.templates.Template(templateID)
	if !ok {
		return nil, false
	}

	obj := model.NewFromTemplate(tmpl)
	obj.SetResetID(r.ID)
	e.registry.Track(obj)
	r.spawned = append(r.spawned, obj.ID())

	if err := e.graph.Add(parent, obj); err != nil {
		slog.Warn("reset: equipment/inventory spawn could not be placed", "reset_id", r.ID, "template_id", templateID, "err", err)
	}
	return obj, true
}
