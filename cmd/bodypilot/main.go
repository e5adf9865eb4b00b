package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ayusman/bodypilot/internal/command"
	"github.com/ayusman/bodypilot/internal/config"
	"github.com/ayusman/bodypilot/internal/engine"
	"github.com/ayusman/bodypilot/internal/gesture"
	"github.com/ayusman/bodypilot/internal/inject"
	"github.com/ayusman/bodypilot/internal/sensor"
	"github.com/ayusman/bodypilot/internal/server"
	"github.com/ayusman/bodypilot/internal/store"
	"github.com/ayusman/bodypilot/internal/tray"
)

func main() {
	fmt.Println("BodyPilot - Pose Navigation")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize the store
	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	st, err := store.New(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	keymap, err := st.Bindings().KeyMap()
	if err != nil {
		log.Fatalf("Failed to load key bindings: %v", err)
	}

	target := st.Settings().GetDefault("target_process", cfg.Target.Process)

	// Discover the key injector; fall back to logging only
	sender := newSender(cfg.Injector)
	dispatcher := command.NewDispatcher(target, command.PSFinder{}, sender)

	source := sensor.NewBridgeSource(cfg.Bridge.URL)
	hub := server.NewIntentHub()
	trayUI := tray.New()

	eng := engine.New(engine.Config{
		Sensor:     source,
		Dispatcher: dispatcher,
		KeyMap:     keymap,
		OnIntent: func(intent gesture.Intent, est engine.State) {
			hub.Broadcast(intent, est)
			trayUI.SetLastIntent(intent.String())
			trayUI.SetSubject(est.Lock.Held, est.Lock.TrackingID)
			trayUI.SetFlying(est.Flying)
		},
	})

	// HTTP status server
	srv := server.New(server.Config{
		Store:   st,
		Engine:  eng,
		Intents: hub,
	})
	go func() {
		fmt.Printf("Starting server on %s\n", cfg.Server.Addr)
		if err := srv.ListenAndServe(cfg.Server.Addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Bridge connection with reconnect
	ctx, cancel := context.WithCancel(context.Background())
	go runSource(ctx, source, eng)

	trayUI.OnToggle(func(enabled bool) {
		eng.SetEnabled(enabled)
		log.Printf("Pose control enabled: %v", enabled)
	})
	trayUI.OnQuit(cancel)

	log.Printf("Dispatching to process %q via bridge %s", target, cfg.Bridge.URL)
	trayUI.Run()
}

// newSender builds the key sender for the configured injector, falling back
// to a log-only sender when the injector is not available.
func newSender(cfg config.InjectorConfig) command.Sender {
	mgr := inject.NewManager(cfg.Dir)
	if err := mgr.Discover(); err != nil {
		log.Printf("Injector discovery failed: %v, keys will be logged only", err)
		return command.LogSender{}
	}

	inj, err := mgr.Get(cfg.Name)
	if err != nil {
		log.Printf("Injector %q not found, keys will be logged only", cfg.Name)
		return command.LogSender{}
	}

	exec := inject.NewExecutor(time.Duration(cfg.TimeoutMs) * time.Millisecond)
	log.Printf("Using injector %q", inj.Manifest.Name)
	return inject.NewSender(inj, exec)
}

// runSource keeps the bridge connection alive until the context is cancelled.
func runSource(ctx context.Context, source *sensor.BridgeSource, eng *engine.Engine) {
	for {
		err := source.Run(ctx, eng.HandleFrame)
		if ctx.Err() != nil {
			return
		}
		log.Printf("Bridge connection lost: %v, retrying in 2s", err)

		select {
		case <-time.After(2 * time.Second):
		case <-ctx.Done():
			return
		}
	}
}
