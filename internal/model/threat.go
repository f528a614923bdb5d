package model

// ThreatEntry is one attacker's accumulated hate against an NPC (spec
// §3.3). Grounded on the teacher's AggroInfo/AggroList split
// (internal/model/aggro.go) but collapsed: the core is single-threaded
// cooperative (spec §5), so the atomic counters and sync.Map the
// teacher needs for a concurrent server have no job here — plain
// fields and a map are enough, and keep the invariant checks in §8
// easy to reason about.
type ThreatEntry struct {
	Mob          *Object
	Value        int64
	ShouldExpire bool
}

// ThreatTable is the hate table an NPC mob owns (spec §3.3, §4.5.2).
type ThreatTable struct {
	entries map[uint64]*ThreatEntry
}

// NewThreatTable constructs an empty table.
func NewThreatTable() *ThreatTable {
	return &ThreatTable{entries: make(map[uint64]*ThreatEntry)}
}

// AddThreat creates or increments an attacker's entry and resets its
// should-expire flag to false (spec §4.5.2). The "no rate cap" open
// question (spec §9) is preserved as-is: amount is added unconditionally.
func (t *ThreatTable) AddThreat(attacker *Object, amount int64) {
	e, ok := t.entries[attacker.ID()]
	if !ok {
		e = &ThreatEntry{Mob: attacker}
		t.entries[attacker.ID()] = e
	}
	e.Value += amount
	e.ShouldExpire = false
}

// GetThreat returns the current value for attacker, or 0.
func (t *ThreatTable) GetThreat(attacker *Object) int64 {
	if e, ok := t.entries[attacker.ID()]; ok {
		return e.Value
	}
	return 0
}

// HighestThreatInRoom returns the attacker with the highest threat
// value among those co-located with npc, or nil if none qualify.
func (t *ThreatTable) HighestThreatInRoom(npc *Object, room *Object) *Object {
	var best *Object
	var bestValue int64 = -1
	for _, e := range t.entries {
		if e.Mob.Room() != room {
			continue
		}
		if e.Value > bestValue {
			bestValue = e.Value
			best = e.Mob
		}
	}
	return best
}

// RemoveThreat deletes mob's entry entirely.
func (t *ThreatTable) RemoveThreat(mob *Object) {
	delete(t.entries, mob.ID())
}

// Clear empties the table.
func (t *ThreatTable) Clear() {
	t.entries = make(map[uint64]*ThreatEntry)
}

// IsEmpty reports whether the table has no entries.
func (t *ThreatTable) IsEmpty() bool { return len(t.entries) == 0 }

// Entries returns a copy of the current entries, for the expiration
// ticker and tests to iterate without risking concurrent mutation
// during iteration.
func (t *ThreatTable) Entries() []*ThreatEntry {
	out := make([]*ThreatEntry, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, e)
	}
	return out
}
