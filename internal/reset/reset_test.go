package reset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mudframe/core/internal/model"
	"github.com/mudframe/core/internal/world"
)

type fakeTemplates struct {
	templates map[string]*model.Template
}

func newFakeTemplates() *fakeTemplates {
	return &fakeTemplates{templates: make(map[string]*model.Template)}
}

func (f *fakeTemplates) add(t *model.Template) {
	f.templates[t.ID] = t
}

func (f *fakeTemplates) Template(id string) (*model.Template, bool) {
	t, ok := f.templates[id]
	return t, ok
}

func newTestEngine(t *testing.T) (*world.Registry, *world.Graph, *fakeTemplates, *Engine) {
	t.Helper()
	reg := world.NewRegistry()
	g := world.NewGraph(reg)
	tmpl := newFakeTemplates()
	return reg, g, tmpl, NewEngine(g, reg, tmpl, nil)
}

func coinTemplate() *model.Template {
	return &model.Template{Kind: model.KindProp, ID: "coin-gold"}
}

func ratTemplate() *model.Template {
	return &model.Template{Kind: model.KindMob, ID: "rat"}
}

func TestExecuteSpawnsUpToMinCount(t *testing.T) {
	reg, g, tmpl, e := newTestEngine(t)
	tmpl.add(coinTemplate())
	room := model.NewRoom("Vault", nil, 0, 0, 0, model.AllExits)
	reg.Track(room)

	r := New("coin-gold", room.ID(), 3, 5, nil, nil)

	e.Execute(r)

	assert.Len(t, room.Contents(), 3)
}

func TestExecuteIsIdempotentWhenAlreadyAtMinCount(t *testing.T) {
	reg, g, tmpl, e := newTestEngine(t)
	tmpl.add(coinTemplate())
	room := model.NewRoom("Vault", nil, 0, 0, 0, model.AllExits)
	reg.Track(room)
	r := New("coin-gold", room.ID(), 3, 5, nil, nil)
	e.Execute(r)

	e.Execute(r)

	assert.Len(t, room.Contents(), 3)
}

func TestExecuteToppsUpAfterOneIsRemoved(t *testing.T) {
	reg, g, tmpl, e := newTestEngine(t)
	tmpl.add(coinTemplate())
	room := model.NewRoom("Vault", nil, 0, 0, 0, model.AllExits)
	reg.Track(room)
	r := New("coin-gold", room.ID(), 3, 5, nil, nil)
	e.Execute(r)
	require.Len(t, room.Contents(), 3)

	require.NoError(t, g.Destroy(room.Contents()[0]))
	e.Execute(r)

	assert.Len(t, room.Contents(), 3)
}

func TestExecuteSkipsWhenRoomUnresolved(t *testing.T) {
	_, _, tmpl, e := newTestEngine(t)
	tmpl.add(coinTemplate())

	r := New("coin-gold", 999, 3, 5, nil, nil)

	assert.NotPanics(t, func() { e.Execute(r) })
}

func TestExecuteSkipsWhenTemplateUnresolved(t *testing.T) {
	reg, _, _, e := newTestEngine(t)
	room := model.NewRoom("Vault", nil, 0, 0, 0, model.AllExits)
	reg.Track(room)
	r := New("missing", room.ID(), 3, 5, nil, nil)

	assert.NotPanics(t, func() { e.Execute(r) })
	assert.Empty(t, room.Contents())
}

func TestExecuteSpawnsMobWithEquipmentAndInventory(t *testing.T) {
	reg, _, tmpl, e := newTestEngine(t)
	tmpl.add(ratTemplate())
	sword := &model.Template{Kind: model.KindWeapon, ID: "rusty-sword"}
	torch := &model.Template{Kind: model.KindItem, ID: "torch"}
	tmpl.add(sword)
	tmpl.add(torch)
	room := model.NewRoom("Den", nil, 0, 0, 0, model.AllExits)
	reg.Track(room)

	r := New("rat", room.ID(), 1, 1,
		map[model.EquipSlot]string{model.SlotMainHand: "rusty-sword"},
		[]string{"torch"})

	e.Execute(r)

	require.Len(t, room.Contents(), 1)
	mob := room.Contents()[0]
	assert.Equal(t, model.KindMob, mob.Kind())
	require.NotNil(t, mob.EquippedSlot(model.SlotMainHand))
	assert.Equal(t, "rusty-sword", mob.EquippedSlot(model.SlotMainHand).TemplateID())

	foundTorch := false
	for _, item := range mob.Contents() {
		if item.TemplateID() == "torch" {
			foundTorch = true
		}
	}
	assert.True(t, foundTorch)
}

func TestExecuteTagsSpawnedObjectsWithResetID(t *testing.T) {
	reg, _, tmpl, e := newTestEngine(t)
	tmpl.add(coinTemplate())
	room := model.NewRoom("Vault", nil, 0, 0, 0, model.AllExits)
	reg.Track(room)
	r := New("coin-gold", room.ID(), 1, 1, nil, nil)

	e.Execute(r)

	require.Len(t, room.Contents(), 1)
	assert.EqualValues(t, r.ID, room.Contents()[0].ResetID())
}

func TestExecuteAllRunsEveryResetRegisteredAgainstEveryDungeon(t *testing.T) {
	reg, _, tmpl, e := newTestEngine(t)
	tmpl.add(coinTemplate())
	room := model.NewRoom("Vault", nil, 0, 0, 0, model.AllExits)
	reg.Track(room)
	dungeon := model.NewDungeon("vault-dungeon", 1, 1, 1)
	dungeon.SetCell(0, 0, 0, room)
	reg.AddDungeon(dungeon)

	r := New("coin-gold", room.ID(), 2, 2, nil, nil)
	e.Register(dungeon, r)

	e.ExecuteAll()

	assert.Len(t, room.Contents(), 2)
}

func TestExecuteDoesNotCountItemsThatMovedRoomsAndSeveredTheirTag(t *testing.T) {
	reg, g, tmpl, e := newTestEngine(t)
	tmpl.add(coinTemplate())
	room := model.NewRoom("Vault", nil, 0, 0, 0, model.AllExits)
	other := model.NewRoom("Elsewhere", nil, 0, 0, 0, model.AllExits)
	reg.Track(room)
	reg.Track(other)
	r := New("coin-gold", room.ID(), 3, 5, nil, nil)
	e.Execute(r)
	require.Len(t, room.Contents(), 3)

	require.NoError(t, g.Move(room.Contents()[0], other))

	e.Execute(r)

	assert.Len(t, room.Contents(), 3, "the moved coin no longer counts, so one more was spawned")
}
