package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/constellation/audio"
	"github.com/lixenwraith/constellation/config"
	"github.com/lixenwraith/constellation/economy"
	"github.com/lixenwraith/constellation/engine"
	"github.com/lixenwraith/constellation/input"
	"github.com/lixenwraith/constellation/parameter"
	"github.com/lixenwraith/constellation/render"
	"github.com/lixenwraith/constellation/render/renderer"
	"github.com/lixenwraith/constellation/skill"
	"github.com/lixenwraith/constellation/status"
	"github.com/lixenwraith/constellation/terminal"
)

// app wires the ledger, session, input machine, sound and renderer around one terminal
// All methods run on the frame goroutine
type app struct {
	ledger       *economy.Ledger
	queue        *economy.RequestQueue
	clock        *engine.PausableClock
	session      *engine.Session
	machine      *input.Machine
	sound        *audio.SoundManager
	orchestrator *render.RenderOrchestrator
	metrics      *status.Registry
	m            viewMetrics

	width, height int
	economyAcc    time.Duration // Time not yet settled into ledger ticks
}

// viewMetrics caches registry pointers written every frame
type viewMetrics struct {
	frames, unlocks, denied, expansions, nodes, particles *atomic.Int64

	frameMs, fps *status.AtomicFloat
	lastIntent   *status.AtomicString
	muted        *atomic.Bool
	paused       *atomic.Bool
}

func newViewMetrics(r *status.Registry) viewMetrics {
	return viewMetrics{
		frames:     r.Ints.Get(status.KeyFrames),
		unlocks:    r.Ints.Get(status.KeyUnlocks),
		denied:     r.Ints.Get(status.KeyDenied),
		expansions: r.Ints.Get(status.KeyExpansions),
		nodes:      r.Ints.Get(status.KeyNodes),
		particles:  r.Ints.Get(status.KeyParticles),
		frameMs:    r.Floats.Get(status.KeyFrameMs),
		fps:        r.Floats.Get(status.KeyFPS),
		lastIntent: r.Strings.Get(status.KeyLastIntent),
		muted:      r.Bools.Get(status.KeyMuted),
		paused:     r.Bools.Get(status.KeyPaused),
	}
}

func runView(cmd *cobra.Command, opts *globalOptions) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}
	// Runs append to one log file, the prefix keeps them apart
	runID := uuid.NewString()
	log.SetPrefix("[" + runID[:8] + "] ")
	log.Printf("run %s: seed %#x, config %q", runID, cfg.Seed, opts.configPath)

	term, err := terminal.New()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := term.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer term.Fini()

	sound := audio.NewSoundManager(nil)
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			log.Printf("audio unavailable: %v (continuing without audio)", err)
		} else {
			defer sound.Cleanup()
		}
	}
	sound.SetMuted(cfg.Audio.Muted)

	a, err := newApp(cfg, term, sound)
	if err != nil {
		return err
	}
	defer a.close()

	eventChan := make(chan terminal.Event, 256)
	go pollEvents(term, eventChan)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine.FrameLoop(ctx, cfg.FrameInterval(), func(dt time.Duration) bool {
		for {
			select {
			case ev := <-eventChan:
				if a.handleEvent(ev) {
					return false
				}
			default:
				a.frame(dt)
				return true
			}
		}
	})
	log.Printf("session closed: %s", a.metrics)
	return nil
}

// pollEvents feeds terminal input to the frame goroutine until the terminal closes
func pollEvents(term terminal.Terminal, out chan<- terminal.Event) {
	// Panic recovery for input polling goroutine to ensure terminal cleanup
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			// Use \r\n for raw mode compatibility to avoid zig-zag output
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		ev := term.PollEvent()
		if ev.Type == terminal.EventClosed {
			return
		}
		out <- ev
	}
}

// newApp generates the tree and sizes the view to the terminal
func newApp(cfg *config.Config, term terminal.Terminal, sound *audio.SoundManager) (*app, error) {
	tree, err := generateTree(cfg)
	if err != nil {
		return nil, err
	}
	table, err := loadKeyTable(cfg.Keymap)
	if err != nil {
		return nil, err
	}

	a := &app{
		ledger:  economy.NewLedger(cfg.StartBalance(), cfg.Income()),
		queue:   economy.NewRequestQueue(),
		clock:   engine.NewPausableClock(nil),
		machine: input.NewMachine(table),
		sound:   sound,
		metrics: status.NewRegistry(),
	}
	a.m = newViewMetrics(a.metrics)
	a.m.muted.Store(sound.Muted())

	opts := engine.DefaultOptions()
	opts.Clock = a.clock
	opts.Hooks = hostHooks{a}
	opts.Frontier = cfg.FrontierPolicy()
	opts.Ambient = cfg.Display.Ambient
	a.session = engine.NewSession(tree, opts)

	a.width, a.height = term.Size()
	a.orchestrator = render.NewRenderOrchestrator(term, a.width, a.height)
	renderer.RegisterAll(a.orchestrator)

	a.session.Resize(a.width, a.height)
	a.machine.SetRows(a.height)
	a.session.Controller().FitToView()
	a.settle()

	log.Printf("tree seed %#x: %d nodes in %d tiers", tree.Seed(), tree.Len(), tree.MaxTier()+1)
	return a, nil
}

// loadKeyTable merges an optional keymap file over the default bindings
func loadKeyTable(path string) (*input.KeyTable, error) {
	base := input.DefaultKeyTable()
	if path == "" {
		return base, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keymap: %w", err)
	}
	override, err := input.LoadKeyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", path, err)
	}
	log.Printf("keymap loaded from %s", path)
	return input.MergeKeyTable(base, override), nil
}

// handleEvent routes one terminal event, true when the view should close
func (a *app) handleEvent(ev terminal.Event) bool {
	in := a.machine.Handle(ev, a.session)
	if in.Type != input.IntentNone && in.Type != input.IntentPointer {
		a.m.lastIntent.Store(in.Type.String())
	}
	switch in.Type {
	case input.IntentQuit:
		return true
	case input.IntentToggleMute:
		muted := a.sound.ToggleMute()
		a.m.muted.Store(muted)
		if muted {
			a.session.Notify("Sound muted", false)
		} else {
			a.session.Notify("Sound on", false)
		}
	case input.IntentGrant:
		a.ledger.Grant(skill.Resources{Coin: parameter.GrantCoin, Mana: parameter.GrantMana, Favor: parameter.GrantFavor})
		a.session.Notify(printer.Sprintf("Granted %d coin, %d mana, %d favor",
			parameter.GrantCoin, parameter.GrantMana, parameter.GrantFavor), false)
	case input.IntentResize:
		a.width, a.height = ev.Width, ev.Height
		a.orchestrator.Resize(a.width, a.height)
	}
	return false
}

// frame advances economy and view by dt then renders; a paused clock only renders
func (a *app) frame(dt time.Duration) {
	paused := a.clock.IsPaused()
	if !paused {
		a.economyAcc += dt
		for a.economyAcc >= parameter.EconomyTickInterval {
			a.ledger.Tick(parameter.EconomyTickInterval)
			a.economyAcc -= parameter.EconomyTickInterval
		}
		a.settle()
		a.session.Tick(dt)
	}
	f := a.session.Frame()
	a.orchestrator.RenderFrame(render.NewRenderContext(&f, a.width, a.height))
	a.record(dt, paused, len(f.Particles))
}

func (a *app) record(dt time.Duration, paused bool, particles int) {
	a.m.frames.Add(1)
	a.m.paused.Store(paused)
	a.m.particles.Store(int64(particles))
	a.m.nodes.Store(int64(a.session.Tree().Len()))
	a.m.expansions.Store(int64(a.session.Expansions()))
	if dt > 0 {
		a.m.frameMs.Set(float64(dt) / float64(time.Millisecond))
		a.m.fps.Smooth(float64(time.Second)/float64(dt), parameter.FPSSmoothing)
	}
}

// settle applies queued unlock requests, then pushes the resulting snapshot into the session
func (a *app) settle() {
	tree := a.session.Tree()
	for _, id := range a.queue.Consume() {
		out, err := a.ledger.Attempt(id, tree)
		if err != nil {
			log.Printf("unlock %s: %v", id, err)
			continue
		}
		if !out.OK {
			title := id
			if n := tree.Node(id); n != nil {
				title = n.Title
			}
			a.session.Notify(title+": "+strings.Join(out.Reasons, "; "), true)
			a.sound.PlayDenied()
			a.m.denied.Add(1)
		}
	}

	snap := a.ledger.Snapshot()
	for _, id := range a.session.ApplySnapshot(snap.Unlocked, snap.Resources) {
		if n := a.session.Tree().Node(id); n != nil {
			a.sound.PlayUnlock(n.Tier)
			a.session.Notify("Unlocked "+n.Title, false)
			a.m.unlocks.Add(1)
		}
	}
}

func (a *app) close() {
	a.session.Close()
}

// hostHooks turns session notifications into ledger requests and sound
type hostHooks struct {
	a *app
}

func (h hostHooks) AttemptUnlock(id string) { h.a.queue.Push(id) }

func (h hostHooks) OnSelect(id string) {
	if id != "" {
		log.Printf("selected %s", id)
	}
}

func (h hostHooks) OnDenied(id string, reasons []string) {
	h.a.sound.PlayDenied()
	h.a.m.denied.Add(1)
}

func (h hostHooks) OnHover(id string) {
	if id != "" {
		h.a.sound.PlayHover()
	}
}
