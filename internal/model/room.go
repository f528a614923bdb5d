package model

// RoomExt is the variant extension for KindRoom (spec §3.1).
type RoomExt struct {
	dungeon *Dungeon
	x, y, z int32
	exits   ExitMask
	links   map[Direction]*Object // per-direction overrides (tunnels); see package world for lifecycle
}

// NewRoom constructs a room object. It is not yet a member of a
// dungeon's grid until world.Spatial.PlaceRoom registers it — this
// constructor only allocates the object.
func NewRoom(name string, keywords []string, x, y, z int32, exits ExitMask) *Object {
	o := newObject(KindRoom, name, keywords, 0)
	o.room_ = &RoomExt{x: x, y: y, z: z, exits: exits}
	return o
}

// Coordinates returns the room's grid position.
func (o *Object) Coordinates() (x, y, z int32) {
	r := o.room_
	return r.x, r.y, r.z
}

// Exits returns the allowed-exits bitmask.
func (o *Object) Exits() ExitMask { return o.room_.exits }

// SetExits overwrites the allowed-exits bitmask.
func (o *Object) SetExits(m ExitMask) { o.room_.exits = m }

// Link returns the tunnel override for dir, or nil if none is set.
func (o *Object) Link(dir Direction) *Object {
	if o.room_.links == nil {
		return nil
	}
	return o.room_.links[dir]
}

// SetLink installs (or, with target nil, removes) a tunnel override
// for dir. Package world's CreateTunnel/RemoveTunnel are the only
// callers that should mutate both ends of a bidirectional link.
func (o *Object) SetLink(dir Direction, target *Object) {
	if target == nil {
		delete(o.room_.links, dir)
		return
	}
	if o.room_.links == nil {
		o.room_.links = make(map[Direction]*Object)
	}
	o.room_.links[dir] = target
}

// DungeonRef returns the owning dungeon pointer stored on the room
// extension (package world sets this at PlaceRoom time).
func (o *Object) DungeonRef() *Dungeon { return o.room_.dungeon }

// SetDungeonRef installs the owning dungeon pointer. Called by package
// world when a room is placed into a dungeon's grid.
func (o *Object) SetDungeonRef(d *Dungeon) { o.room_.dungeon = d }
