// Package clock drives the three independent tick cadences of spec
// §4.9 — combat rounds, regeneration, and resets — and graceful
// shutdown.
//
// Grounded on the teacher's cmd/gameserver/main.go, which starts its
// listeners and subsystem tick managers (internal/ai.TickManager,
// internal/spawn.RespawnTaskManager) as errgroup goroutines coordinated
// by one context.Context. Each of those teacher tick managers runs its
// own time.Ticker select loop (internal/ai/manager.go's Start); Clock
// generalizes that same loop to three cadences, but funnels every
// cadence's due callback through one unbuffered channel so the actual
// work still executes on a single goroutine — spec §5: "single-threaded
// cooperative... no lock discipline because there is no shared data
// race." errgroup only supervises cadence goroutines' lifecycles, it
// never lets their callbacks run concurrently with each other.
package clock

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// Config holds the three cadence periods (spec §4.9 defaults: combat
// round 3s, regeneration 30s, reset per-dungeon — callers pass the
// dungeon's configured interval here since Clock only drives one
// reset pass callback).
type Config struct {
	CombatRoundPeriod time.Duration
	RegenPeriod       time.Duration
	ResetPeriod       time.Duration
}

// DefaultConfig returns spec §4.9's default cadence periods.
func DefaultConfig() Config {
	return Config{
		CombatRoundPeriod: 3 * time.Second,
		RegenPeriod:       30 * time.Second,
		ResetPeriod:       5 * time.Minute,
	}
}

// Clock runs the configured cadences until its context is canceled.
type Clock struct {
	cfg Config

	onCombatRound func()
	onRegenTick   func()
	onResetPass   func()
	onShutdown    func()

	dispatch chan func()
}

// New constructs a Clock. Any of the on* callbacks may be nil, in
// which case that cadence never fires (useful for tests that only
// want to exercise one cadence).
func New(cfg Config, onCombatRound, onRegenTick, onResetPass, onShutdown func()) *Clock {
	return &Clock{
		cfg:           cfg,
		onCombatRound: onCombatRound,
		onRegenTick:   onRegenTick,
		onResetPass:   onResetPass,
		onShutdown:    onShutdown,
		dispatch:      make(chan func()),
	}
}

// Run blocks until ctx is canceled, driving all three cadences and the
// single dispatch loop that serializes their callbacks. Graceful
// shutdown (spec §4.9: "cancels all timers, flushes any character
// action queues, quiesces the combat set") is ctx cancellation plus
// the onShutdown callback, which the caller uses to flush/quiesce
// whatever package command/combat state it owns.
func (c *Clock) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error { return c.cadence(gctx, c.cfg.CombatRoundPeriod, c.onCombatRound) })
	g.Go(func() error { return c.cadence(gctx, c.cfg.RegenPeriod, c.onRegenTick) })
	g.Go(func() error { return c.cadence(gctx, c.cfg.ResetPeriod, c.onResetPass) })
	g.Go(func() error { return c.dispatchLoop(gctx) })

	err := g.Wait()
	if c.onShutdown != nil {
		c.onShutdown()
	}
	return err
}

// cadence fires fn every period by handing it to the dispatch loop,
// never calling it directly — that is what keeps every cadence's
// actual work on the single dispatch goroutine.
func (c *Clock) cadence(ctx context.Context, period time.Duration, fn func()) error {
	if period <= 0 || fn == nil {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			select {
			case c.dispatch <- fn:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// dispatchLoop is the single serialization point: every due callback
// from every cadence runs here, one at a time, to completion before
// the next is received.
func (c *Clock) dispatchLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-c.dispatch:
			fn()
		}
	}
}
