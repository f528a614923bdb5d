package model

// Template is a sparse differential description of an object: a type
// tag plus only the fields that differ from that type's zero-value
// instance (spec §3.5). Templates are the sole mechanism resets and
// content authoring use to instantiate objects. A nil field means
// "use the type default"; only set fields are copied by Apply.
type Template struct {
	Kind Kind
	ID   string

	Name       *string
	Keywords   []string
	ShortDesc  *string
	LongDesc   *string
	BaseWeight *int64

	// Room
	Exits *ExitMask

	// Equipment / Armor / Weapon
	EquipSlot   *EquipSlot
	AttrBonus   *AttributeBonus
	Defense     *int32
	AttackPower *int32
	WeaponHit   *HitType
	WeaponCat   *WeaponCategory

	// Mob
	Level    *int32
	RaceID   *string
	JobID    *string
	Behavior *BehaviorFlags

	// Reset-only: equipment/inventory spawned alongside a mob
	// instantiated from this template (spec §4.7).
	EquippedTemplateIDs map[EquipSlot]string
	InventoryTemplateIDs []string
}

// NewFromTemplate constructs a fresh zero-value instance of t.Kind and
// applies t to it. This is the reset system's and content loader's
// entry point (spec §3.5, §4.7).
func NewFromTemplate(t *Template) *Object {
	var o *Object
	switch t.Kind {
	case KindRoom:
		o = NewRoom("", nil, 0, 0, 0, 0)
	case KindItem:
		o = NewItem("", nil, 0)
	case KindProp:
		o = NewProp("", nil, 0)
	case KindEquipment:
		o = NewEquipment("", nil, 0, SlotHead, AttributeBonus{})
	case KindArmor:
		o = NewArmor("", nil, 0, SlotHead, AttributeBonus{}, 0)
	case KindWeapon:
		o = NewWeapon("", nil, 0, SlotMainHand, AttributeBonus{}, 0, nil, WeaponOneHanded)
	case KindMob:
		o = NewMob("", nil, 0, 1, nil, nil)
	case KindCharacter:
		o = NewCharacter("", nil)
	default:
		panic("model: unknown template kind")
	}
	Apply(o, t)
	o.SetTemplateID(t.ID)
	return o
}

// Apply sets exactly the fields t defines onto o; everything else
// keeps its type-default value (spec §3.5).
func Apply(o *Object, t *Template) {
	if t.Name != nil {
		o.SetName(*t.Name)
	}
	if t.Keywords != nil {
		o.SetKeywords(t.Keywords)
	}
	if t.ShortDesc != nil {
		o.SetShortDescription(*t.ShortDesc)
	}
	if t.LongDesc != nil {
		o.SetLongDescription(*t.LongDesc)
	}
	if t.BaseWeight != nil {
		o.baseWeight = *t.BaseWeight
		o.weight = o.baseWeight
	}

	if o.kind == KindRoom && t.Exits != nil {
		o.SetExits(*t.Exits)
	}

	if o.IsEquipment() {
		ext := o.equipmentExt()
		if t.EquipSlot != nil {
			ext.slot = *t.EquipSlot
		}
		if t.AttrBonus != nil {
			ext.bonus = *t.AttrBonus
		}
		if o.kind == KindArmor && t.Defense != nil {
			o.armor_.defense = *t.Defense
		}
		if o.kind == KindWeapon {
			if t.AttackPower != nil {
				o.weapon_.attackPower = *t.AttackPower
			}
			if t.WeaponHit != nil {
				o.weapon_.hitType = t.WeaponHit
			}
			if t.WeaponCat != nil {
				o.weapon_.category = *t.WeaponCat
			}
		}
	}

	if o.kind == KindMob {
		if t.Level != nil {
			o.SetLevel(*t.Level)
		}
		if t.Behavior != nil {
			o.SetBehavior(*t.Behavior)
		}
		// RaceID/JobID resolution against a registry happens in
		// package world/content at instantiation time, not here —
		// Template only carries the opaque id (spec §6).
	}
}

// TemplateOf produces the sparse differential description of o,
// restricted to template-visible fields: contents, runtime resource
// state, and identity are excluded (spec §3.5). Round-trip law:
// Apply(NewFromTemplate-equivalent zero instance, TemplateOf(x)) == x
// over the visible fields.
func TemplateOf(o *Object) *Template {
	t := &Template{Kind: o.kind, ID: o.templateID}

	if o.name != "" {
		name := o.name
		t.Name = &name
	}
	if len(o.keywords) > 0 {
		t.Keywords = o.Keywords()
	}
	if o.shortDesc != "" {
		s := o.shortDesc
		t.ShortDesc = &s
	}
	if o.longDesc != "" {
		s := o.longDesc
		t.LongDesc = &s
	}
	if o.baseWeight != 0 {
		w := o.baseWeight
		t.BaseWeight = &w
	}

	if o.kind == KindRoom && o.Exits() != 0 {
		e := o.Exits()
		t.Exits = &e
	}

	if o.IsEquipment() {
		ext := o.equipmentExt()
		if ext.slot != 0 {
			s := ext.slot
			t.EquipSlot = &s
		}
		zero := AttributeBonus{}
		if ext.bonus != zero {
			b := ext.bonus
			t.AttrBonus = &b
		}
		if o.kind == KindArmor && o.armor_.defense != 0 {
			d := o.armor_.defense
			t.Defense = &d
		}
		if o.kind == KindWeapon {
			if o.weapon_.attackPower != 0 {
				ap := o.weapon_.attackPower
				t.AttackPower = &ap
			}
			if o.weapon_.hitType != nil {
				t.WeaponHit = o.weapon_.hitType
			}
			if o.weapon_.category != 0 {
				c := o.weapon_.category
				t.WeaponCat = &c
			}
		}
	}

	if o.kind == KindMob {
		if o.Level() != 0 {
			l := o.Level()
			t.Level = &l
		}
		if o.Behavior() != 0 {
			b := o.Behavior()
			t.Behavior = &b
		}
	}

	return t
}
