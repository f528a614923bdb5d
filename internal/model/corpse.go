package model

// NewCorpse constructs the container dropped on death (spec §4.5.4).
// A corpse is a KindProp — a container, but not itself pickable; its
// contents are looted individually or transferred in bulk by autoloot.
func NewCorpse(of *Object) *Object {
	name := "the corpse of " + of.Name()
	return NewProp(name, []string{"corpse", of.Name()}, of.BaseWeight())
}
