// Command mudcore wires the engine packages into a single runnable
// process: one bootstrap room, one locally-attached character, the
// three tick cadences, and a line-oriented command loop over stdio.
//
// Grounded on the teacher's cmd/gameserver/main.go: config-first
// startup, slog as the default logger, signal-driven context
// cancellation, and an errgroup-shaped run(ctx) split out of main so
// errors return instead of os.Exit-ing from deep in the call stack.
// It does not open a network listener — spec §1 lists "telnet/terminal
// I/O" as an explicit external collaborator, out of scope for this
// core — so where the teacher binds a TCP listener, mudcore instead
// drives one local session directly over os.Stdin/os.Stdout, which is
// enough to exercise every wired engine end to end.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mudframe/core/internal/clock"
	"github.com/mudframe/core/internal/combat"
	"github.com/mudframe/core/internal/command"
	"github.com/mudframe/core/internal/config"
	"github.com/mudframe/core/internal/content"
	"github.com/mudframe/core/internal/effect"
	"github.com/mudframe/core/internal/message"
	"github.com/mudframe/core/internal/model"
	"github.com/mudframe/core/internal/regen"
	"github.com/mudframe/core/internal/reset"
	"github.com/mudframe/core/internal/world"
)

const configPath = "config/core.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

// stdioSink is the minimal model.MessageSink a local session needs:
// every line a character would have seen over a network connection is
// printed to stdout instead.
type stdioSink struct{}

func (stdioSink) Send(group model.MessageGroup, text string) {
	fmt.Println(text)
}

func run(ctx context.Context) error {
	path := configPath
	if p := os.Getenv("MUDCORE_CONFIG"); p != "" {
		path = p
	}
	cfg, err := config.LoadCore(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.Info("mudcore starting",
		"combat_round_interval", cfg.CombatRoundInterval,
		"regen_interval", cfg.RegenInterval,
		"reset_interval", cfg.ResetInterval)

	registry := world.NewRegistry()
	graph := world.NewGraph(registry)
	contentReg := content.NewRegistry()

	combatCfg := combat.DefaultConfig()
	combatCfg.VariationRangePercent = cfg.DamageVariationPercent
	combatCfg.ThreatGraceMultiplier = cfg.ThreatGraceWindow
	combatCfg.ThreatDecayFactor = cfg.ThreatDecayFactor
	combatCfg.InitialThreatOnAttack = cfg.InitialThreatOnAttack
	combatEngine := combat.NewEngine(graph, registry, combatCfg, slog.Default())

	effectEngine := effect.NewEngine(combatEngine, cfg.DamageVariationPercent)

	regenEngine := regen.NewEngine(combatEngine)
	combatEngine.SetRegenRegistrar(regenEngine)

	resetEngine := reset.NewEngine(graph, registry, contentReg, contentReg)

	actor, room := bootstrapWorld(graph, registry)

	cmdRegistry := registerCommands(graph)

	clk := clock.New(clock.Config{
		CombatRoundPeriod: cfg.CombatRoundInterval,
		RegenPeriod:       cfg.RegenInterval,
		ResetPeriod:       cfg.ResetInterval,
	},
		combatEngine.ProcessCombatRound,
		func() {
			effectEngine.ProcessTick()
			regenEngine.ProcessTick()
		},
		resetEngine.ExecuteAll,
		func() {
			command.CancelQueue(actor)
			slog.Info("clock shut down")
		},
	)

	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()

	errCh := make(chan error, 1)
	go func() { errCh <- clk.Run(runCtx) }()

	message.Send(actor, model.MessageInfo, room.Name()+"\n"+room.LongDescription())
	runStdinLoop(runCtx, cmdRegistry, actor)
	cancelRun()

	return <-errCh
}

// bootstrapWorld constructs the single room and character session a
// local run operates on. Real content loading is out of scope (spec
// §1's content registries are external collaborators); this is just
// enough world to drive the engines.
func bootstrapWorld(graph *world.Graph, registry *world.Registry) (actor, room *model.Object) {
	room = model.NewRoom("The Hollow", []string{"hollow"}, 0, 0, 0, model.AllExits)
	room.SetLongDescription("A quiet starting room. Type 'look' to get your bearings.")
	dungeon := model.NewDungeon("start", 1, 1, 1)
	registry.AddDungeon(dungeon)
	world.NewSpatial(registry, graph).PlaceRoom(dungeon, room)
	registry.Track(room)

	sink := stdioSink{}
	char := model.NewCharacter("traveler", sink)
	actor = model.NewMob("traveler", []string{"traveler"}, 100, 1, nil, nil)
	actor.SetCharacter(char)
	actor.SetResources(model.Resources{Health: 100, Mana: 50, Exhaustion: 0})
	actor.SetResourceCaps(model.ResourceCaps{MaxHealth: 100, MaxMana: 50})
	registry.Track(actor)
	_ = graph.Add(room, actor)

	return actor, room
}

// registerCommands wires a minimal movement/look/inventory command
// set; this is a demonstration set, not spec content (spec §1 excludes
// help text and command authoring from the core's scope).
func registerCommands(graph *world.Graph) *command.Registry {
	r := command.NewRegistry()

	mustRegister(r, []string{"look"}, func(actor *model.Object, args command.Args) {
		room := actor.Room()
		if room == nil {
			return
		}
		message.Send(actor, model.MessageInfo, room.Name()+"\n"+room.LongDescription())
	}, 0, "", 0)

	mustRegister(r, []string{"go <dir:direction>"}, func(actor *model.Object, args command.Args) {
		next := world.StepDirection(actor.Room(), args.Direction("dir"))
		if next == nil {
			message.Send(actor, model.MessageSystem, "You can't go that way.")
			return
		}
		if err := graph.Move(actor, next); err != nil {
			message.Send(actor, model.MessageSystem, "You can't go that way.")
			return
		}
		message.Send(actor, model.MessageInfo, next.Name())
	}, 0, "", 0)

	mustRegister(r, []string{"get <item:item@room>"}, func(actor *model.Object, args command.Args) {
		item := args.Object("item")
		if item == nil {
			message.Send(actor, model.MessageSystem, "You don't see that here.")
			return
		}
		if err := graph.Move(item, actor); err != nil {
			message.Send(actor, model.MessageSystem, "You can't take that.")
			return
		}
		message.Send(actor, model.MessageAction, "You take "+item.Name()+".")
	}, 0, "", 0)

	mustRegister(r, []string{"say <words:text>"}, func(actor *model.Object, args command.Args) {
		message.Broadcast(actor.Room(), model.MessageCommandResponse, actor.Name()+" says, \""+args.Text("words")+"\"", actor)
		message.Send(actor, model.MessageCommandResponse, "You say, \""+args.Text("words")+"\"")
	}, 0, "", 0)

	return r
}

func mustRegister(r *command.Registry, patterns []string, h command.Handler, cooldown time.Duration, ability string, priority int) {
	if _, err := r.Register(patterns, h, cooldown, ability, priority); err != nil {
		panic(err)
	}
}

func runStdinLoop(ctx context.Context, cmdRegistry *command.Registry, actor *model.Object) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		if line == "quit" {
			return
		}
		cmdRegistry.Execute(actor, line, func(err error) {
			message.Send(actor, model.MessageSystem, "Huh? ("+err.Error()+")")
		})
	}
}
