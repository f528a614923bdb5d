package world

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mudframe/core/internal/model"
)

// Gatekeeper lets an external collaborator veto movement through a
// room (spec §4.2: "source.can_exit(movable, dir) and
// target.can_enter(movable, dir) both hold"). Defined consumer-side so
// package world never needs to import whatever package implements
// doors, zone gates, or level restrictions; a room with no gatekeeper
// attached allows everything.
type Gatekeeper interface {
	CanExit(movable *Object, dir model.Direction) bool
	CanEnter(movable *Object, dir model.Direction) bool
}

// Spatial bundles the dungeon-grid operations of spec §4.2 over a
// Registry: dungeon/room lookup, stepping, tunnel lifecycle, and the
// room-ref grammar. Grounded on the teacher's GeoEngine/region grid
// (internal/world geo lookup), generalized from a 2-D visibility grid
// to the 3-D grid with authored link overrides spec §4.2 describes.
type Spatial struct {
	registry *Registry
	graph    *Graph
	gates    map[*Object]Gatekeeper
}

// NewSpatial constructs a Spatial bound to registry and graph (Step
// performs a move through graph on success).
func NewSpatial(registry *Registry, graph *Graph) *Spatial {
	return &Spatial{registry: registry, graph: graph, gates: make(map[*Object]Gatekeeper)}
}

// PlaceRoom registers room at (x,y,z) in dungeon's grid and sets its
// dungeon back-reference. Returns false if the coordinates in room
// (from NewRoom) fall outside the dungeon's bounds.
func (s *Spatial) PlaceRoom(dungeon *Dungeon, room *Object) bool {
	x, y, z := room.Coordinates()
	if !dungeon.SetCell(x, y, z, room) {
		return false
	}
	room.SetDungeonRef(dungeon)
	return true
}

// SetGatekeeper attaches a can_exit/can_enter hook to room. Passing nil
// removes it, restoring the "always allowed" default.
func (s *Spatial) SetGatekeeper(room *Object, g Gatekeeper) {
	if g == nil {
		delete(s.gates, room)
		return
	}
	s.gates[room] = g
}

// GetRoom implements spec §4.2's get_room(x,y,z): the populated cell,
// or nil if out of bounds or empty.
func GetRoom(dungeon *Dungeon, x, y, z int32) *Object {
	return dungeon.Cell(x, y, z)
}

// StepDirection implements spec §4.2's step(room, dir): a link override
// takes priority over grid adjacency; absent both, nil.
func StepDirection(room *Object, dir model.Direction) *Object {
	if link := room.Link(dir); link != nil {
		return link
	}
	if !room.Exits().Has(dir) {
		return nil
	}
	dungeon := room.DungeonRef()
	if dungeon == nil {
		return nil
	}
	x, y, z := room.Coordinates()
	dx, dy, dz := dir.Delta()
	return dungeon.Cell(x+dx, y+dy, z+dz)
}

// Step implements spec §4.2's step(movable, dir): succeeds iff the
// movable's current room yields a StepDirection target and both
// gatekeepers (if attached) allow the crossing, performing Graph.Move
// on success. Returns the destination room on success, or nil.
func (s *Spatial) Step(movable *Object, dir model.Direction) (*Object, error) {
	room := movable.Room()
	if room == nil || room != movable.Parent() {
		return nil, nil
	}

	target := StepDirection(room, dir)
	if target == nil {
		return nil, nil
	}

	if gate, ok := s.gates[room]; ok && !gate.CanExit(movable, dir) {
		return nil, nil
	}
	if gate, ok := s.gates[target]; ok && !gate.CanEnter(movable, dir) {
		return nil, nil
	}

	if err := s.graph.Move(movable, target); err != nil {
		return nil, err
	}
	return target, nil
}

// CreateTunnel implements spec §4.2's create_tunnel(a, dir, b,
// one_way): registers a link override from a in dir to b, and unless
// oneWay, the reverse link from b back to a.
func CreateTunnel(a *Object, dir model.Direction, b *Object, oneWay bool) {
	a.SetLink(dir, b)
	if !oneWay {
		b.SetLink(dir.Reverse(), a)
	}
}

// RemoveTunnel deregisters the link from a in dir, and unless oneWay,
// the reverse link from b back to a (spec §4.2: "remove() deregisters
// both").
func RemoveTunnel(a *Object, dir model.Direction, b *Object, oneWay bool) {
	a.SetLink(dir, nil)
	if !oneWay {
		b.SetLink(dir.Reverse(), nil)
	}
}

// ParseRoomRef parses the `@<dungeon-id>{x,y,z}` grammar (spec §4.2,
// §6). An invalid or out-of-bounds ref resolves to nil; there is no
// error return, so a malformed ref is not distinguished from "that
// room doesn't exist".
func (s *Spatial) ParseRoomRef(ref string) *Object {
	id, x, y, z, ok := parseRoomRefGrammar(ref)
	if !ok {
		return nil
	}
	dungeon, ok := s.registry.Dungeon(id)
	if !ok {
		return nil
	}
	return dungeon.Cell(x, y, z)
}

// FormatRoomRef serializes room's dungeon-id and coordinates using the
// same grammar ParseRoomRef accepts.
func FormatRoomRef(room *Object) (string, bool) {
	dungeon := room.DungeonRef()
	if dungeon == nil {
		return "", false
	}
	x, y, z := room.Coordinates()
	return fmt.Sprintf("@%s{%d,%d,%d}", dungeon.ID, x, y, z), true
}

func parseRoomRefGrammar(ref string) (id string, x, y, z int32, ok bool) {
	if !strings.HasPrefix(ref, "@") {
		return "", 0, 0, 0, false
	}
	ref = ref[1:]

	open := strings.IndexByte(ref, '{')
	if open < 0 || !strings.HasSuffix(ref, "}") {
		return "", 0, 0, 0, false
	}
	dungeonID := ref[:open]
	if dungeonID == "" {
		return "", 0, 0, 0, false
	}
	coords := ref[open+1 : len(ref)-1]

	parts := strings.Split(coords, ",")
	if len(parts) != 3 {
		return "", 0, 0, 0, false
	}
	vals := make([]int32, 3)
	for i, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return "", 0, 0, 0, false
		}
		vals[i] = int32(n)
	}
	return dungeonID, vals[0], vals[1], vals[2], true
}
