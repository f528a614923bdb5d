// Registry ties compiled Patterns to handlers and drives spec §4.4's
// execute(input, ctx) algorithm, including the ability gate and the
// per-character action queue of §4.4.1.
//
// Grounded on the teacher's admin.Handler (name-keyed dispatch with an
// access-level gate before Handle runs), generalized from an exact
// name lookup to an ordered scan over compiled patterns, and from an
// access-level integer to a learned-ability check.
package command

import (
	"sort"
	"strings"
	"time"

	"github.com/mudframe/core/internal/model"
)

// Handler runs once a pattern has matched and its arguments resolved.
type Handler func(actor *model.Object, args Args)

// Entry is one registered command: one or more aliases (Patterns[0] is
// the primary form), the handler it runs, its cooldown, and an
// optional ability gate.
type Entry struct {
	Patterns        []*Pattern
	Handler         Handler
	Cooldown        time.Duration
	RequiredAbility string
	Priority        int

	order int // insertion order, the final tiebreaker
}

// Registry holds every registered Entry, kept sorted by spec §4.4's
// ordering: priority descending, then primary pattern length
// descending, then insertion order.
type Registry struct {
	entries []*Entry
	next    int
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry { return &Registry{} }

// Register compiles patterns (the first is primary; the rest are
// aliases tried in the same order) and adds e to the registry,
// re-sorting by the spec's ordering rule.
func (r *Registry) Register(patterns []string, handler Handler, cooldown time.Duration, requiredAbility string, priority int) (*Entry, error) {
	compiled := make([]*Pattern, 0, len(patterns))
	for _, p := range patterns {
		cp, err := Compile(p)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, cp)
	}

	e := &Entry{
		Patterns:        compiled,
		Handler:         handler,
		Cooldown:        cooldown,
		RequiredAbility: requiredAbility,
		Priority:        priority,
		order:           r.next,
	}
	r.next++
	r.entries = append(r.entries, e)

	sort.SliceStable(r.entries, func(i, j int) bool {
		a, b := r.entries[i], r.entries[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if a.Patterns[0].Len() != b.Patterns[0].Len() {
			return a.Patterns[0].Len() > b.Patterns[0].Len()
		}
		return a.order < b.order
	})

	return e, nil
}

// queueFor returns actor's action queue, creating one on its character
// session the first time it is needed. NPCs (no character session)
// have no queue: their actions always run synchronously.
func queueFor(actor *model.Object) *Queue {
	char := actor.Character()
	if char == nil {
		return nil
	}
	q, ok := char.ActionQueueState().(*Queue)
	if !ok || q == nil {
		q = NewQueue()
		char.SetActionQueueState(q)
	}
	return q
}

// Execute implements spec §4.4's execute(input, ctx): trim and bail on
// empty input, skip ability-gated entries the actor hasn't learned,
// try each entry's patterns in registry order, and on the first match
// either run the handler synchronously or enqueue it behind the
// actor's action queue (spec §4.4.1). onParseError, if non-nil, is
// called with the last match error when nothing at all matched.
func (r *Registry) Execute(actor *model.Object, input string, onParseError func(error)) bool {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return false
	}

	var lastErr error
	for _, e := range r.entries {
		if e.RequiredAbility != "" && !actor.KnowsAbility(e.RequiredAbility) {
			continue
		}
		for _, p := range e.Patterns {
			args, err := Match(p, actor, trimmed)
			if err != nil {
				lastErr = err
				continue
			}

			handler := e.Handler
			run := func() { handler(actor, args) }

			if e.Cooldown > 0 {
				if q := queueFor(actor); q != nil {
					q.Enqueue(run, e.Cooldown, func() { notifyQueued(actor) })
					return true
				}
			}
			run()
			return true
		}
	}

	if onParseError != nil && lastErr != nil {
		onParseError(lastErr)
	}
	return false
}

func notifyQueued(actor *model.Object) {
	if char := actor.Character(); char != nil {
		char.Send(model.MessageSystem, "Your command is queued.")
	}
}

// CancelQueue stops actor's action queue timer and drops its pending
// commands (spec §4.4.1: destroying a character cancels its queue).
func CancelQueue(actor *model.Object) {
	char := actor.Character()
	if char == nil {
		return
	}
	if q, ok := char.ActionQueueState().(*Queue); ok && q != nil {
		q.Cancel()
	}
}
