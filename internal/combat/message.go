package combat

import "github.com/mudframe/core/internal/model"

// notify sends a line to mob's character session, if any. NPCs (no
// bound character) silently drop the message — there is no sink to
// deliver to.
func notify(mob *model.Object, group model.MessageGroup, text string) {
	if char := mob.Character(); char != nil {
		char.Send(group, text)
	}
}

// broadcastCombat delivers the three-audience combat message spec
// §4.5 describes: a first-person line to the attacker, a third-person
// line to the target, and a third-person line to every other character
// in the room.
func broadcastCombat(attacker, target *model.Object, toAttacker, toTarget, toRoom string) {
	room := attacker.Room()
	notify(attacker, model.MessageCombat, toAttacker)
	notify(target, model.MessageCombat, toTarget)

	if room == nil {
		return
	}
	for _, obj := range room.Contents() {
		if obj.Kind() != model.KindMob || obj == attacker || obj == target {
			continue
		}
		notify(obj, model.MessageCombat, toRoom)
	}
}
