package model

// MobExt is the variant extension for KindMob (spec §3.1): a movable
// with levels, attributes, resources, equipment, abilities, behavior,
// and (for non-characters) a threat table.
type MobExt struct {
	level      int32
	experience int64

	race Race
	job  Job

	primary      PrimaryAttributes
	secondary    SecondaryAttributes
	resourceCaps ResourceCaps
	resources    Resources

	equipped [slotCount]*Object

	abilities map[string]int32 // ability id -> use count

	behavior BehaviorFlags

	character *Object // back-reference to the character controlling this mob, if any

	aiSink AIEventSink

	threat *ThreatTable // nil for character-controlled mobs (spec §3.3)

	combatTarget *Object // non-nil iff this mob is in combat (spec §4.5)

	effects []*EffectInstance

	gold int64 // currency carried, moved into a corpse item on death (spec §4.5.4)

	resistances map[DamageType]TypeRelationship // per-damage-type posture, spec §4.5 step 7; absent = TypeNormal
}

// NewMob constructs a mob with a threat table (spec §3.3: present on
// non-character mobs). race/job may be nil and filled in later via
// SetArchetypes. Binding the mob to a character later (SetCharacter)
// disables its threat table.
func NewMob(name string, keywords []string, baseWeight int64, level int32, race Race, job Job) *Object {
	o := newObject(KindMob, name, keywords, baseWeight)
	o.mob_ = &MobExt{
		level:     level,
		race:      race,
		job:       job,
		abilities: make(map[string]int32),
		threat:    NewThreatTable(),
	}
	return o
}

// SetArchetypes assigns (or replaces) a mob's race/job. Callers must
// follow with a recomputation pass (package attributes).
func (o *Object) SetArchetypes(race Race, job Job) {
	o.mob_.race = race
	o.mob_.job = job
}

func (o *Object) Race() Race { return o.mob_.race }
func (o *Object) Job() Job   { return o.mob_.job }

func (o *Object) Level() int32      { return o.mob_.level }
func (o *Object) SetLevel(l int32)  { o.mob_.level = l }
func (o *Object) Experience() int64 { return o.mob_.experience }
func (o *Object) AddExperience(amount int64) { o.mob_.experience += amount }

// PrimaryAttributes returns the mob's current derived primary
// attributes (package attributes recomputes these).
func (o *Object) PrimaryAttributes() PrimaryAttributes { return o.mob_.primary }
func (o *Object) SetPrimaryAttributes(p PrimaryAttributes) { o.mob_.primary = p }

// SecondaryAttributes returns the mob's current derived secondary
// attributes (package attributes recomputes these alongside primary).
func (o *Object) SecondaryAttributes() SecondaryAttributes { return o.mob_.secondary }
func (o *Object) SetSecondaryAttributes(s SecondaryAttributes) { o.mob_.secondary = s }

func (o *Object) ResourceCaps() ResourceCaps     { return o.mob_.resourceCaps }
func (o *Object) SetResourceCaps(c ResourceCaps) { o.mob_.resourceCaps = c }

func (o *Object) Resources() Resources     { return o.mob_.resources }
func (o *Object) SetResources(r Resources) { o.mob_.resources = r }

// Health/Mana/Exhaustion are convenience accessors for the hot combat
// path (mirrors teacher's X()/Y()/Z() convenience getters, spec §3.1).
func (o *Object) Health() int32     { return o.mob_.resources.Health }
func (o *Object) Mana() int32       { return o.mob_.resources.Mana }
func (o *Object) Exhaustion() int32 { return o.mob_.resources.Exhaustion }

// IsDead reports whether the mob's health has reached zero.
func (o *Object) IsDead() bool { return o.mob_.resources.Health <= 0 }

// IsCharacter reports whether this mob is controlled by a character.
func (o *Object) IsCharacter() bool { return o.mob_.character != nil }

// Character returns the controlling character object, or nil.
func (o *Object) Character() *Object { return o.mob_.character }

// SetCharacter binds (or, with nil, unbinds) the controlling character.
// Binding a character disables the mob's threat table (spec §3.3:
// "owned by non-character mobs").
func (o *Object) SetCharacter(char *Object) {
	o.mob_.character = char
	if char != nil {
		o.mob_.threat = nil
	}
}

func (o *Object) AIEventSink() AIEventSink     { return o.mob_.aiSink }
func (o *Object) SetAIEventSink(s AIEventSink) { o.mob_.aiSink = s }

// NotifyAI fires an AI event if a sink is attached; a no-op otherwise.
func (o *Object) NotifyAI(event AIEvent, source *Object) {
	if o.mob_.aiSink != nil {
		o.mob_.aiSink.Notify(event, source)
	}
}

func (o *Object) Behavior() BehaviorFlags      { return o.mob_.behavior }
func (o *Object) SetBehavior(f BehaviorFlags)  { o.mob_.behavior = f }
func (o *Object) IsShopkeeper() bool           { return o.mob_.behavior.Has(BehaviorShopkeeper) }

// ThreatTable returns the mob's threat table, or nil for
// character-controlled mobs.
func (o *Object) ThreatTable() *ThreatTable { return o.mob_.threat }

// CombatTarget returns the mob currently being fought, or nil.
func (o *Object) CombatTarget() *Object { return o.mob_.combatTarget }

// SetCombatTarget sets (or, with nil, clears) the combat target. A
// mob is "in combat" iff CombatTarget() != nil (spec §4.5).
func (o *Object) SetCombatTarget(target *Object) { o.mob_.combatTarget = target }

// LearnAbility adds ability id to the mob's learned set at use-count 0
// if not already known.
func (o *Object) LearnAbility(id string) {
	if _, ok := o.mob_.abilities[id]; !ok {
		o.mob_.abilities[id] = 0
	}
}

// KnowsAbility reports whether the mob has learned ability id.
func (o *Object) KnowsAbility(id string) bool {
	_, ok := o.mob_.abilities[id]
	return ok
}

// AbilityUseCount returns how many times ability id has been used.
func (o *Object) AbilityUseCount(id string) int32 { return o.mob_.abilities[id] }

// IncrementAbilityUse bumps the use-count for a learned ability.
func (o *Object) IncrementAbilityUse(id string) {
	if _, ok := o.mob_.abilities[id]; ok {
		o.mob_.abilities[id]++
	}
}

// EquippedSlot returns the equipment occupying slot, or nil.
func (o *Object) EquippedSlot(slot EquipSlot) *Object { return o.mob_.equipped[slot] }

// SetEquippedSlot sets (or, with nil, clears) the equipment reference
// for slot. Callers (package world) are responsible for the
// invariant in spec §3.2: the object must simultaneously appear in the
// mob's contents, and removing it from contents must call this with
// nil.
func (o *Object) SetEquippedSlot(slot EquipSlot, item *Object) {
	o.mob_.equipped[slot] = item
}

// EquippedItems returns every non-nil equipped item across all slots.
func (o *Object) EquippedItems() []*Object {
	items := make([]*Object, 0, slotCount)
	for _, it := range o.mob_.equipped {
		if it != nil {
			items = append(items, it)
		}
	}
	return items
}

// ActiveEffects returns a copy of the mob's active effect instances.
func (o *Object) ActiveEffects() []*EffectInstance {
	return append([]*EffectInstance(nil), o.mob_.effects...)
}

// AddActiveEffect appends an effect instance to the mob.
func (o *Object) AddActiveEffect(e *EffectInstance) {
	o.mob_.effects = append(o.mob_.effects, e)
}

// RemoveActiveEffect removes a specific effect instance (by pointer
// identity).
func (o *Object) RemoveActiveEffect(e *EffectInstance) {
	for i, existing := range o.mob_.effects {
		if existing == e {
			o.mob_.effects = append(o.mob_.effects[:i], o.mob_.effects[i+1:]...)
			return
		}
	}
}

// SetActiveEffects overwrites the active effect list wholesale (used
// after a tick pass has filtered out expired instances).
func (o *Object) SetActiveEffects(effects []*EffectInstance) {
	o.mob_.effects = effects
}

// Gold returns the currency this mob carries.
func (o *Object) Gold() int64 { return o.mob_.gold }

// SetGold sets the currency this mob carries.
func (o *Object) SetGold(amount int64) { o.mob_.gold = amount }

// TypeRelationship returns this mob's resistance posture against dt,
// defaulting to TypeNormal when unset.
func (o *Object) TypeRelationship(dt DamageType) TypeRelationship {
	if o.mob_.resistances == nil {
		return TypeNormal
	}
	return o.mob_.resistances[dt]
}

// SetTypeRelationship authors a resistance posture against dt.
func (o *Object) SetTypeRelationship(dt DamageType, rel TypeRelationship) {
	if o.mob_.resistances == nil {
		o.mob_.resistances = make(map[DamageType]TypeRelationship)
	}
	o.mob_.resistances[dt] = rel
}
