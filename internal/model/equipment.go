package model

// EquipSlot enumerates the body slots equipment can occupy.
type EquipSlot uint8

const (
	SlotHead EquipSlot = iota
	SlotChest
	SlotLegs
	SlotFeet
	SlotHands
	SlotMainHand
	SlotOffHand
	SlotNeck
	SlotRing
	slotCount
)

// EquipmentExt is the variant extension for KindEquipment (and, by
// embedding its fields, KindArmor/KindWeapon which are equipment with
// an additional bonus).
type EquipmentExt struct {
	slot  EquipSlot
	bonus AttributeBonus
}

// ArmorExt extends EquipmentExt with defense (spec §3.1).
type ArmorExt struct {
	equipment EquipmentExt
	defense   int32
}

// HitType bundles the authored (verb, third-person form, damage type,
// color) an equipped weapon or ability attaches to its hits (GLOSSARY
// "hit type"). Content-authored; the core only reads it.
type HitType struct {
	Verb            string
	ThirdPersonVerb string
	DamageType      DamageType
	Color           string
}

// DamageType is the taxonomy a target's type relationship table (spec
// §4.5 step 7) keys off: physical or magical hit types each resolve
// against a target's resistances independently of which is dealt.
type DamageType uint8

const (
	DamagePhysical DamageType = iota
	DamageMagical
)

// WeaponCategory distinguishes one-handed/two-handed/dual/bow weapons
// for the dual-wield check in combat (spec §4.5.6).
type WeaponCategory uint8

const (
	WeaponOneHanded WeaponCategory = iota
	WeaponTwoHanded
	WeaponDual
	WeaponBow
)

// WeaponExt is the variant extension for KindWeapon (spec §3.1).
type WeaponExt struct {
	equipment   EquipmentExt
	attackPower int32
	hitType     *HitType
	category    WeaponCategory
}

// NewEquipment constructs a plain equipment item (no defense/attack
// bonus beyond the generic AttributeBonus, e.g. jewelry).
func NewEquipment(name string, keywords []string, baseWeight int64, slot EquipSlot, bonus AttributeBonus) *Object {
	o := newObject(KindEquipment, name, keywords, baseWeight)
	o.equip_ = &EquipmentExt{slot: slot, bonus: bonus}
	return o
}

// NewArmor constructs an armor item.
func NewArmor(name string, keywords []string, baseWeight int64, slot EquipSlot, bonus AttributeBonus, defense int32) *Object {
	o := newObject(KindArmor, name, keywords, baseWeight)
	o.armor_ = &ArmorExt{equipment: EquipmentExt{slot: slot, bonus: bonus}, defense: defense}
	return o
}

// NewWeapon constructs a weapon item.
func NewWeapon(name string, keywords []string, baseWeight int64, slot EquipSlot, bonus AttributeBonus, attackPower int32, hitType *HitType, category WeaponCategory) *Object {
	o := newObject(KindWeapon, name, keywords, baseWeight)
	o.weapon_ = &WeaponExt{
		equipment:   EquipmentExt{slot: slot, bonus: bonus},
		attackPower: attackPower,
		hitType:     hitType,
		category:    category,
	}
	return o
}

// equipmentExt returns the shared EquipmentExt regardless of whether
// this object is plain equipment, armor, or a weapon. Panics if o is
// none of those kinds — an internal programming error, never a user
// path.
func (o *Object) equipmentExt() *EquipmentExt {
	switch o.kind {
	case KindEquipment:
		return o.equip_
	case KindArmor:
		return &o.armor_.equipment
	case KindWeapon:
		return &o.weapon_.equipment
	default:
		panic("model: equipmentExt called on non-equipment object kind " + o.kind.String())
	}
}

// IsEquipment reports whether o is equipment, armor, or a weapon.
func (o *Object) IsEquipment() bool {
	return o.kind == KindEquipment || o.kind == KindArmor || o.kind == KindWeapon
}

// EquipSlot returns the slot this equipment occupies.
func (o *Object) EquipSlot() EquipSlot { return o.equipmentExt().slot }

// AttributeBonus returns the attribute/resource/secondary bonus this
// piece of equipment grants while worn.
func (o *Object) AttributeBonus() AttributeBonus {
	bonus := o.equipmentExt().bonus
	if o.kind == KindArmor {
		bonus.Secondary.Defense += o.armor_.defense
	}
	if o.kind == KindWeapon {
		bonus.Secondary.AttackPower += o.weapon_.attackPower
	}
	return bonus
}

// Defense returns the armor's defense value. Zero for non-armor.
func (o *Object) Defense() int32 {
	if o.kind != KindArmor {
		return 0
	}
	return o.armor_.defense
}

// AttackPower returns the weapon's attack power. Zero for non-weapons.
func (o *Object) AttackPower() int32 {
	if o.kind != KindWeapon {
		return 0
	}
	return o.weapon_.attackPower
}

// WeaponHitType returns the weapon's hit type bundle, or nil.
func (o *Object) WeaponHitType() *HitType {
	if o.kind != KindWeapon {
		return nil
	}
	return o.weapon_.hitType
}

// WeaponCategory returns the weapon's category. Zero value
// (WeaponOneHanded) for non-weapons.
func (o *Object) WeaponCategory() WeaponCategory {
	if o.kind != KindWeapon {
		return WeaponOneHanded
	}
	return o.weapon_.category
}
