package model

// NewItem constructs a generic, inventory-legal item (spec §3.1).
func NewItem(name string, keywords []string, baseWeight int64) *Object {
	return newObject(KindItem, name, keywords, baseWeight)
}

// NewProp constructs a dungeon object that is explicitly not pickable
// (spec §3.1). Props still have contents (a locked chest prop can hold
// loot) but Pickable() always reports false for them.
func NewProp(name string, keywords []string, baseWeight int64) *Object {
	return newObject(KindProp, name, keywords, baseWeight)
}

// NewCurrency constructs a gold stack of the given amount (spec
// §4.5.4: "move dead.value (gold) into corpse as a currency item").
// It is a plain KindItem with the stack amount tracked separately from
// weight.
func NewCurrency(amount int64) *Object {
	o := newObject(KindItem, "gold coins", []string{"gold", "coins"}, 0)
	o.currencyAmount = amount
	return o
}

// CurrencyAmount returns the gold amount this item stacks, or 0 for a
// non-currency item.
func (o *Object) CurrencyAmount() int64 { return o.currencyAmount }
