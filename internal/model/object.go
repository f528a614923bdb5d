// Package model defines the dungeon object sum type (spec §3.1): every
// placeable thing in the world — rooms, items, equipment, mobs,
// characters — is a single closed variant set sharing one base record.
// Polymorphic operations dispatch on Kind, the way the teacher's
// WorldObject/Npc/Player pattern shares a base record and switches on
// type, but collapsed into one struct instead of embedding chains so
// contents/weight/parent bookkeeping lives in exactly one place.
package model

import "github.com/mudframe/core/internal/ids"

// Kind tags which variant of the sum type an Object is.
type Kind uint8

const (
	KindRoom Kind = iota
	KindItem
	KindProp
	KindEquipment
	KindArmor
	KindWeapon
	KindMob
	KindCharacter
)

func (k Kind) String() string {
	switch k {
	case KindRoom:
		return "room"
	case KindItem:
		return "item"
	case KindProp:
		return "prop"
	case KindEquipment:
		return "equipment"
	case KindArmor:
		return "armor"
	case KindWeapon:
		return "weapon"
	case KindMob:
		return "mob"
	case KindCharacter:
		return "character"
	default:
		return "unknown"
	}
}

// IsContainer reports whether a Kind can hold contents. Every dungeon
// object can (rooms and mobs included — a mob's contents is its
// inventory); the distinction callers usually want is Pickable, not
// container-ness.
func (k Kind) IsContainer() bool { return true }

// Pickable reports whether an object of this kind may be taken into
// inventory. Props are explicitly excluded (spec §3.1).
func (k Kind) Pickable() bool {
	switch k {
	case KindRoom, KindProp, KindMob, KindCharacter:
		return false
	default:
		return true
	}
}

// Object is the shared base record for every dungeon object. The
// variant-specific state lives in one of the *Ext pointers, exactly
// one of which is non-nil for a given Kind (nil for KindItem/KindProp,
// which need no extension beyond the base).
type Object struct {
	id       uint64
	kind     Kind
	keywords []string
	name     string
	shortDesc string
	longDesc  string

	baseWeight int64
	weight     int64 // baseWeight + Σ child.weight; kept consistent by the graph ops in package world

	currencyAmount int64 // non-zero only for currency stacks (spec §4.5.4's corpse gold); see NewCurrency

	parent   *Object // containing object: either a container OR a room (spec §3.2); nil if unparented or a room
	contents []*Object

	templateID string
	resetID    uint64 // weak back-reference to the reset that spawned this object (0 = none)

	destroyed bool

	room_   *RoomExt
	equip_  *EquipmentExt
	armor_  *ArmorExt
	weapon_ *WeaponExt
	mob_    *MobExt
	char_   *CharacterExt
}

// NewObject constructs a bare object of the given kind with a fresh id.
// Callers use the typed constructors (NewRoom, NewItem, NewMob, ...)
// which call this and attach the right extension.
func newObject(kind Kind, name string, keywords []string, baseWeight int64) *Object {
	return &Object{
		id:         ids.Next(),
		kind:       kind,
		name:       name,
		keywords:   append([]string(nil), keywords...),
		baseWeight: baseWeight,
		weight:     baseWeight,
	}
}

func (o *Object) ID() uint64       { return o.id }
func (o *Object) Kind() Kind       { return o.kind }
func (o *Object) Name() string     { return o.name }
func (o *Object) SetName(n string) { o.name = n }

func (o *Object) Keywords() []string { return append([]string(nil), o.keywords...) }
func (o *Object) SetKeywords(k []string) { o.keywords = append([]string(nil), k...) }

func (o *Object) ShortDescription() string     { return o.shortDesc }
func (o *Object) SetShortDescription(s string) { o.shortDesc = s }
func (o *Object) LongDescription() string      { return o.longDesc }
func (o *Object) SetLongDescription(s string)   { o.longDesc = s }

func (o *Object) BaseWeight() int64 { return o.baseWeight }

// Weight returns current_weight = base_weight + Σ child.current_weight
// (spec §3.2). Maintained incrementally by package world's graph ops;
// this getter never recomputes from scratch.
func (o *Object) Weight() int64 { return o.weight }

// Parent returns the containing object, or nil if room-parented or
// unparented. Rooms always return nil (spec §3.2: rooms have no
// parent).
func (o *Object) Parent() *Object { return o.parent }

// Room returns the owning room ancestor, or nil if the object (or its
// ancestry) has not been placed in a room yet. Walks the parent chain
// (spec §3.2: a parent is either a container or a room, so the room
// ancestor is whichever ancestor has Kind() == KindRoom).
func (o *Object) Room() *Object {
	cur := o
	for cur != nil {
		if cur.kind == KindRoom {
			return cur
		}
		cur = cur.parent
	}
	return nil
}

// Dungeon returns the dungeon owning this object's room ancestor, or
// nil if it has none. Dungeon membership is the transitive closure
// described in spec §3.2.
func (o *Object) Dungeon() *Dungeon {
	r := o.Room()
	if r == nil || r.room_ == nil {
		return nil
	}
	return r.room_.dungeon
}

// Contents returns a copy of the object's contents list.
func (o *Object) Contents() []*Object {
	return append([]*Object(nil), o.contents...)
}

// TemplateID returns the opaque template id this object was
// instantiated from, or "" if it was not template-instantiated.
func (o *Object) TemplateID() string { return o.templateID }

// SetTemplateID records the originating template id (reset/content
// loader use).
func (o *Object) SetTemplateID(id string) { o.templateID = id }

// SetParent rewires the raw parent pointer. Package world's graph
// operations are the only intended caller; it does not touch contents
// lists or weight — callers must keep AppendContent/RemoveContent and
// AdjustWeight in sync themselves (spec §4.1).
func (o *Object) SetParent(p *Object) { o.parent = p }

// AppendContent pushes child onto this object's contents list.
func (o *Object) AppendContent(child *Object) {
	o.contents = append(o.contents, child)
}

// RemoveContent removes the first occurrence of child from this
// object's contents list (spec §4.1: "an object appears in at most one
// contents list", so first occurrence is the only one).
func (o *Object) RemoveContent(child *Object) {
	for i, c := range o.contents {
		if c == child {
			o.contents = append(o.contents[:i], o.contents[i+1:]...)
			return
		}
	}
}

// AdjustWeight adds delta to this object's current weight. Package
// world propagates a delta up the ancestor chain to the room root on
// every mutation (spec §3.2).
func (o *Object) AdjustWeight(delta int64) { o.weight += delta }

// IsSelfOrAncestorOf reports whether o is target or one of target's
// ancestors — the check spec §4.1 requires before an add: "adding an
// object to itself or any descendant fails".
func (o *Object) IsSelfOrAncestorOf(target *Object) bool {
	cur := target
	for cur != nil {
		if cur == o {
			return true
		}
		cur = cur.parent
	}
	return false
}

// ResetID returns the weak back-reference to the reset that spawned
// this object, or 0 if none. Resolved on demand through the reset
// registry — storing only the id (not a pointer) is what makes this
// reference weak: a destroyed reset, or an object whose tag has been
// cleared, simply fails to resolve (spec §3.3, §9).
func (o *Object) ResetID() uint64 { return o.resetID }

// SetResetID tags (or clears, with 0) the reset back-reference.
func (o *Object) SetResetID(id uint64) { o.resetID = id }

// Destroyed reports whether this object has already been torn down.
func (o *Object) Destroyed() bool { return o.destroyed }

// MarkDestroyed flips the destroyed flag. Package world's Destroy is
// the only caller; kept unexported-adjacent by convention, not by
// visibility, since world and model are sibling packages sharing the
// graph's invariants.
func (o *Object) MarkDestroyed() { o.destroyed = true }

// Pickable reports whether this specific object may be taken into
// inventory (spec §3.1: props are never pickable).
func (o *Object) Pickable() bool { return o.kind.Pickable() }
