// Package content is the read-only lookup registry spec §1 calls out
// as an external collaborator: race/job archetypes, abilities, hit
// types, and object templates, all loaded once during the loader
// phase and never mutated afterward (spec §5: "process-wide and
// considered initialization-only after the loader phase").
//
// Grounded on the teacher's internal/data package: a plain struct per
// content kind with accessor methods (npcDef/ItemDef-style) backed by
// an id-keyed map (npc_loader.go's NpcTable), generalized from
// package-level globals to an injectable Registry so tests never share
// state across packages.
package content

import "github.com/mudframe/core/internal/model"

// race is the concrete model.Race implementation content constructs.
type race struct {
	id                 string
	base, growth       model.PrimaryAttributes
	baseRes, growthRes model.ResourceCaps
}

func (r *race) ID() string                               { return r.id }
func (r *race) BaseAttributes() model.PrimaryAttributes   { return r.base }
func (r *race) GrowthAttributes() model.PrimaryAttributes { return r.growth }
func (r *race) BaseResources() model.ResourceCaps         { return r.baseRes }
func (r *race) GrowthResources() model.ResourceCaps       { return r.growthRes }

// job is the concrete model.Job implementation content constructs.
type job struct {
	id                 string
	base, growth       model.PrimaryAttributes
	baseRes, growthRes model.ResourceCaps
}

func (j *job) ID() string                               { return j.id }
func (j *job) BaseAttributes() model.PrimaryAttributes   { return j.base }
func (j *job) GrowthAttributes() model.PrimaryAttributes { return j.growth }
func (j *job) BaseResources() model.ResourceCaps         { return j.baseRes }
func (j *job) GrowthResources() model.ResourceCaps       { return j.growthRes }

// ability is the concrete model.Ability implementation content
// constructs; abilities carry no data beyond their id (spec §3.3: the
// core only checks learned-set membership).
type ability struct{ id string }

func (a *ability) ID() string { return a.id }

// Registry is the process-wide lookup table for every content kind.
type Registry struct {
	races     map[string]*race
	jobs      map[string]*job
	abilities map[string]*ability
	hitTypes  map[string]*model.HitType
	templates map[string]*model.Template
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		races:     make(map[string]*race),
		jobs:      make(map[string]*job),
		abilities: make(map[string]*ability),
		hitTypes:  make(map[string]*model.HitType),
		templates: make(map[string]*model.Template),
	}
}

// AddRace registers a race archetype by id.
func (r *Registry) AddRace(id string, base, growth model.PrimaryAttributes, baseRes, growthRes model.ResourceCaps) {
	r.races[id] = &race{id: id, base: base, growth: growth, baseRes: baseRes, growthRes: growthRes}
}

// Race resolves a race by id. Satisfies reset.ArchetypeResolver.
func (r *Registry) Race(id string) (model.Race, bool) {
	v, ok := r.races[id]
	if !ok {
		return nil, false
	}
	return v, true
}

// AddJob registers a job archetype by id.
func (r *Registry) AddJob(id string, base, growth model.PrimaryAttributes, baseRes, growthRes model.ResourceCaps) {
	r.jobs[id] = &job{id: id, base: base, growth: growth, baseRes: baseRes, growthRes: growthRes}
}

// Job resolves a job by id. Satisfies reset.ArchetypeResolver.
func (r *Registry) Job(id string) (model.Job, bool) {
	v, ok := r.jobs[id]
	if !ok {
		return nil, false
	}
	return v, true
}

// AddAbility registers an ability id.
func (r *Registry) AddAbility(id string) {
	r.abilities[id] = &ability{id: id}
}

// Ability resolves an ability by id.
func (r *Registry) Ability(id string) (model.Ability, bool) {
	v, ok := r.abilities[id]
	if !ok {
		return nil, false
	}
	return v, true
}

// AddHitType registers a hit type by id.
func (r *Registry) AddHitType(id string, ht model.HitType) {
	r.hitTypes[id] = &ht
}

// HitType resolves a hit type by id.
func (r *Registry) HitType(id string) (*model.HitType, bool) {
	v, ok := r.hitTypes[id]
	return v, ok
}

// AddTemplate registers an object template by its own ID field.
func (r *Registry) AddTemplate(t *model.Template) {
	r.templates[t.ID] = t
}

// Template resolves a template by id. Satisfies reset.TemplateRegistry
// and the content-loading entry point for any other package that
// instantiates objects from templates.
func (r *Registry) Template(id string) (*model.Template, bool) {
	t, ok := r.templates[id]
	return t, ok
}
