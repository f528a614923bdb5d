// Package message implements spec §6's delivery surface: "observable
// effects on characters are line-oriented messages" sent through
// model.MessageSink. It supplies the general-purpose send/broadcast
// helpers every other package's own room-scoped messaging (e.g.
// package combat's notify/broadcastCombat) is a specialized variant of,
// plus a concrete in-memory sink for headless operation and tests.
//
// Grounded on the teacher's internal/gameserver/broadcast.go
// (ClientManager's BroadcastToRegion/BroadcastToVisibleExcept family),
// adapted from a packet-buffer/LOD-filtered broadcast to the plain
// line-oriented, room-scoped broadcast spec §6 describes — there is no
// protocol or visibility cache in scope here (spec §1).
package message

import "github.com/mudframe/core/internal/model"

// Send delivers text to target's character sink, if any. NPCs have no
// sink and silently drop the message.
func Send(target *model.Object, group model.MessageGroup, text string) {
	if char := target.Character(); char != nil {
		char.Send(group, text)
	}
}

// Broadcast delivers text to every character-controlled mob directly
// in room, skipping any mob listed in except.
func Broadcast(room *model.Object, group model.MessageGroup, text string, except ...*model.Object) {
	if room == nil {
		return
	}
	for _, obj := range room.Contents() {
		if obj.Kind() != model.KindMob {
			continue
		}
		if contains(except, obj) {
			continue
		}
		Send(obj, group, text)
	}
}

func contains(objs []*model.Object, target *model.Object) bool {
	for _, o := range objs {
		if o == target {
			return true
		}
	}
	return false
}

// BufferSink is an in-memory model.MessageSink: every Send call is
// recorded verbatim, in order. Useful for headless operation (a
// scripted agent reading its own output) and for tests that assert on
// what a character was told without standing up real I/O.
type BufferSink struct {
	lines []struct {
		Group model.MessageGroup
		Text  string
	}
}

// Send records the message.
func (b *BufferSink) Send(group model.MessageGroup, text string) {
	b.lines = append(b.lines, struct {
		Group model.MessageGroup
		Text  string
	}{group, text})
}

// Lines returns every message delivered so far, in delivery order.
func (b *BufferSink) Lines() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = l.Text
	}
	return out
}

// LastGroup returns the MessageGroup of the most recently delivered
// message, or false if nothing has been sent yet.
func (b *BufferSink) LastGroup() (model.MessageGroup, bool) {
	if len(b.lines) == 0 {
		return 0, false
	}
	return b.lines[len(b.lines)-1].Group, true
}
