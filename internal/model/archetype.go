package model

// Race and Job are the archetype content the attribute model formula
// in spec §4.3 draws from. They are read-only lookup results: the
// core never constructs or mutates one, it only asks a registry
// (package content, an external collaborator per spec §1) for the
// Race/Job a mob's template names and stores the returned value.
type Race interface {
	ID() string
	BaseAttributes() PrimaryAttributes
	GrowthAttributes() PrimaryAttributes
	BaseResources() ResourceCaps
	GrowthResources() ResourceCaps
}

// Job mirrors Race; a mob's derived attributes sum both (spec §4.3).
type Job interface {
	ID() string
	BaseAttributes() PrimaryAttributes
	GrowthAttributes() PrimaryAttributes
	BaseResources() ResourceCaps
	GrowthResources() ResourceCaps
}

// Ability identifies a learnable ability by id. The core checks
// membership in a mob's learned set (ability-gated commands, passives
// like pure_power, second_attack, third_attack) but never needs more
// than the id to do so.
type Ability interface {
	ID() string
}
