package model

// Dungeon is the data side of the spatial model (spec §4.2): a 3-D
// grid of optional room cells plus the authored link overrides that
// bypass grid adjacency. Behavior (GetRoom, Step, tunnel lifecycle,
// room-ref parsing) lives in package world, which is the only package
// expected to mutate a Dungeon's grid — model just holds the shape so
// *Object (rooms) can carry a back-reference to it without an import
// cycle.
type Dungeon struct {
	ID     string
	Width  int32
	Height int32
	Layers int32

	// Grid is indexed [z][y][x]; a nil entry is an unpopulated cell.
	Grid [][][]*Object

	resets []uint64 // ids of resets registered against this dungeon; owned by package reset
}

// NewDungeon allocates an empty width×height×layers grid.
func NewDungeon(id string, width, height, layers int32) *Dungeon {
	grid := make([][][]*Object, layers)
	for z := range grid {
		grid[z] = make([][]*Object, height)
		for y := range grid[z] {
			grid[z][y] = make([]*Object, width)
		}
	}
	return &Dungeon{ID: id, Width: width, Height: height, Layers: layers, Grid: grid}
}

// InBounds reports whether (x,y,z) is within the grid's dimensions.
func (d *Dungeon) InBounds(x, y, z int32) bool {
	return x >= 0 && x < d.Width && y >= 0 && y < d.Height && z >= 0 && z < d.Layers
}

// Cell returns the room at (x,y,z), or nil if out of bounds or
// unpopulated. Exported for package world; model itself never reads it.
func (d *Dungeon) Cell(x, y, z int32) *Object {
	if !d.InBounds(x, y, z) {
		return nil
	}
	return d.Grid[z][y][x]
}

// SetCell places or clears a room reference at (x,y,z). Returns false
// if out of bounds.
func (d *Dungeon) SetCell(x, y, z int32, room *Object) bool {
	if !d.InBounds(x, y, z) {
		return false
	}
	d.Grid[z][y][x] = room
	return true
}

// RegisteredResets returns the ids of resets registered against this
// dungeon.
func (d *Dungeon) RegisteredResets() []uint64 {
	return append([]uint64(nil), d.resets...)
}

// RegisterReset records a reset id against this dungeon (package reset
// calls this at load time).
func (d *Dungeon) RegisterReset(id uint64) {
	d.resets = append(d.resets, id)
}
