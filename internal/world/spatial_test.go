package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mudframe/core/internal/model"
)

func newTestSpatial() (*Registry, *Spatial) {
	reg := NewRegistry()
	graph := NewGraph(reg)
	return reg, NewSpatial(reg, graph)
}

func buildTestDungeon(t *testing.T, s *Spatial, reg *Registry) (*Dungeon, *model.Object, *model.Object) {
	t.Helper()
	dungeon := model.NewDungeon("test-dungeon", 3, 3, 1)
	reg.AddDungeon(dungeon)

	origin := model.NewRoom("Origin", nil, 0, 0, 0, model.AllExits)
	east := model.NewRoom("East Room", nil, 1, 0, 0, model.AllExits)
	require.True(t, s.PlaceRoom(dungeon, origin))
	require.True(t, s.PlaceRoom(dungeon, east))
	return dungeon, origin, east
}

func TestGetRoomOutOfBounds(t *testing.T) {
	dungeon := model.NewDungeon("d", 2, 2, 1)
	assert.Nil(t, GetRoom(dungeon, 5, 5, 5))
}

func TestStepDirectionGridAdjacency(t *testing.T) {
	reg, s := newTestSpatial()
	dungeon, origin, east := buildTestDungeon(t, s, reg)
	_ = dungeon

	target := StepDirection(origin, model.East)
	assert.Equal(t, east, target)

	assert.Nil(t, StepDirection(origin, model.Up))
}

func TestStepDirectionRespectsExitMask(t *testing.T) {
	reg, s := newTestSpatial()
	dungeon := model.NewDungeon("d", 3, 3, 1)
	reg.AddDungeon(dungeon)

	origin := model.NewRoom("Origin", nil, 0, 0, 0, model.ExitMask(0))
	east := model.NewRoom("East", nil, 1, 0, 0, model.AllExits)
	require.True(t, s.PlaceRoom(dungeon, origin))
	require.True(t, s.PlaceRoom(dungeon, east))

	assert.Nil(t, StepDirection(origin, model.East))
}

func TestStepMovesObjectOnSuccess(t *testing.T) {
	reg, s := newTestSpatial()
	_, origin, east := buildTestDungeon(t, s, reg)

	mob := model.NewMob("a rat", []string{"rat"}, 5, 1, nil, nil)
	require.NoError(t, s.graph.Add(origin, mob))

	dest, err := s.Step(mob, model.East)
	require.NoError(t, err)
	assert.Equal(t, east, dest)
	assert.Equal(t, east, mob.Parent())
}

func TestTunnelOverridesGridAdjacencyAndReverses(t *testing.T) {
	reg, s := newTestSpatial()
	dungeon := model.NewDungeon("d", 3, 3, 1)
	reg.AddDungeon(dungeon)

	a := model.NewRoom("A", nil, 0, 0, 0, model.AllExits)
	b := model.NewRoom("B", nil, 2, 2, 0, model.AllExits)
	require.True(t, s.PlaceRoom(dungeon, a))
	require.True(t, s.PlaceRoom(dungeon, b))

	CreateTunnel(a, model.East, b, false)
	assert.Equal(t, b, StepDirection(a, model.East))
	assert.Equal(t, a, StepDirection(b, model.West))

	RemoveTunnel(a, model.East, b, false)
	assert.NotEqual(t, b, StepDirection(a, model.East))
	assert.NotEqual(t, a, StepDirection(b, model.West))
}

func TestOneWayTunnelHasNoReverse(t *testing.T) {
	reg, s := newTestSpatial()
	dungeon := model.NewDungeon("d", 3, 3, 1)
	reg.AddDungeon(dungeon)

	a := model.NewRoom("A", nil, 0, 0, 0, model.AllExits)
	b := model.NewRoom("B", nil, 2, 2, 0, model.AllExits)
	require.True(t, s.PlaceRoom(dungeon, a))
	require.True(t, s.PlaceRoom(dungeon, b))

	CreateTunnel(a, model.East, b, true)
	assert.Equal(t, b, StepDirection(a, model.East))
	assert.NotEqual(t, a, StepDirection(b, model.West))
}

func TestRoomRefRoundTrip(t *testing.T) {
	reg, s := newTestSpatial()
	dungeon, origin, _ := buildTestDungeon(t, s, reg)
	_ = dungeon

	ref, ok := FormatRoomRef(origin)
	require.True(t, ok)
	assert.Equal(t, "@test-dungeon{0,0,0}", ref)

	resolved := s.ParseRoomRef(ref)
	assert.Equal(t, origin, resolved)
}

func TestRoomRefInvalidResolvesToNil(t *testing.T) {
	reg, s := newTestSpatial()
	buildTestDungeon(t, s, reg)

	assert.Nil(t, s.ParseRoomRef("not-a-ref"))
	assert.Nil(t, s.ParseRoomRef("@unknown-dungeon{0,0,0}"))
	assert.Nil(t, s.ParseRoomRef("@test-dungeon{99,99,99}"))
}

type denyGate struct{}

func (denyGate) CanExit(*model.Object, model.Direction) bool  { return false }
func (denyGate) CanEnter(*model.Object, model.Direction) bool { return true }

func TestStepBlockedByGatekeeper(t *testing.T) {
	reg, s := newTestSpatial()
	_, origin, _ := buildTestDungeon(t, s, reg)

	mob := model.NewMob("a rat", []string{"rat"}, 5, 1, nil, nil)
	require.NoError(t, s.graph.Add(origin, mob))

	s.SetGatekeeper(origin, denyGate{})

	dest, err := s.Step(mob, model.East)
	require.NoError(t, err)
	assert.Nil(t, dest)
	assert.Equal(t, origin, mob.Parent())
}
