// Package main provides the CLI entrypoint for joymouse. It coordinates
// the lifecycle: parse flags -> load config -> init services -> start
// the ingestion goroutine and both tick drivers -> block for SIGINT ->
// orderly shutdown.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/clemenscodes/joymouse/internal/bindings"
	"github.com/clemenscodes/joymouse/internal/config"
	"github.com/clemenscodes/joymouse/internal/controller"
	"github.com/clemenscodes/joymouse/internal/diag"
	"github.com/clemenscodes/joymouse/internal/ioevent"
	"github.com/clemenscodes/joymouse/internal/keys"
	"github.com/clemenscodes/joymouse/internal/model"
	"github.com/clemenscodes/joymouse/internal/router"
	"github.com/clemenscodes/joymouse/internal/session"
	"github.com/clemenscodes/joymouse/internal/trace"
)

// cliConfig captures all user-provided settings from flags.
type cliConfig struct {
	ConfigDir   string
	LogDir      string
	Verbose     bool
	EnableTrace bool
	Dev         bool
}

// serviceBundle groups all running components so main can manage their lifecycle.
type serviceBundle struct {
	ctx    context.Context
	cancel context.CancelFunc
	core   *controller.Core
	log    *diag.Logger
	events *diag.EventLog
	tracer *trace.Recorder
	done   chan struct{}
}

func main() {
	cfg := parseFlags()

	configDir := cfg.ConfigDir
	if configDir == "" {
		dir, err := config.ConfigDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "joymouse: resolving config dir: %v\n", err)
			os.Exit(1)
		}
		configDir = dir
	}

	logDir := cfg.LogDir
	if logDir == "" {
		logDir = configDir
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "joymouse: creating log dir: %v\n", err)
		os.Exit(1)
	}

	runID := uuid.NewString()

	svcs, err := startServices(cfg, configDir, logDir, runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "joymouse: startup error: %v\n", err)
		os.Exit(1)
	}

	banner := session.Collect()
	banner.RunID = runID
	svcs.log.Info("joymouse starting: " + banner.Line())
	svcs.events.LogLifecycle("startup run=" + runID)

	ctx, stop := signal.NotifyContext(svcs.ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	svcs.log.Info("shutdown signal received")
	if err := shutdown(svcs); err != nil {
		fmt.Fprintf(os.Stderr, "joymouse: shutdown encountered errors: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags configures the CLI and returns validated settings.
func parseFlags() *cliConfig {
	cfg := &cliConfig{}
	flag.StringVar(&cfg.ConfigDir, "config-dir", "", "Override the directory holding bindings.toml and joymouse.toml. Defaults to the platform config directory.")
	flag.StringVar(&cfg.LogDir, "log-dir", "", "Directory for the diagnostic log, structured event log, and optional trace file. Defaults to --config-dir.")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "Log translation-level diagnostics in addition to lifecycle events.")
	flag.BoolVar(&cfg.EnableTrace, "trace", false, "Enable the Parquet trace recorder for right-stick tuning telemetry.")
	flag.BoolVar(&cfg.Dev, "dev", false, "Use the cross-platform GLFW development input source instead of the platform-native one. No elevated permissions required, but only sees input while its hidden window has focus.")
	flag.Parse()
	return cfg
}

// startServices initializes loggers, the binding registry, the tuning
// settings, the controller core, and the OS-specific source/sink, and
// launches the ingestion goroutine plus both tick drivers.
func startServices(cfg *cliConfig, configDir, logDir, runID string) (*serviceBundle, error) {
	logPath := filepath.Join(logDir, "joymouse-"+runID+".log")
	log, err := diag.NewLogger(logPath)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	eventsPath := filepath.Join(logDir, "joymouse-"+runID+".events.ndjson")
	evLog, err := diag.NewEventLog(eventsPath, log)
	if err != nil {
		_ = log.Close()
		return nil, fmt.Errorf("create event log: %w", err)
	}

	var tracer *trace.Recorder
	if cfg.EnableTrace {
		tracePath := filepath.Join(logDir, "joymouse-"+runID+".trace.parquet")
		tracer, err = trace.NewRecorder(tracePath)
		if err != nil {
			log.Warn("trace recorder disabled: " + err.Error())
			tracer = nil
		}
	}

	registry, err := bindings.Load(bindings.Path(configDir))
	if err != nil {
		log.Warn("bindings: " + err.Error())
		fmt.Fprintf(os.Stderr, "joymouse: bindings: %v; using default bindings\n", err)
		registry, err = bindings.DefaultRegistry()
		if err != nil {
			_ = evLog.Close()
			_ = log.Close()
			return nil, fmt.Errorf("build default bindings: %w", err)
		}
	}

	settings, err := config.Load(config.Path(configDir))
	if err != nil {
		_ = evLog.Close()
		_ = log.Close()
		return nil, fmt.Errorf("load settings: %w", err)
	}

	sink, err := newSink()
	if err != nil {
		_ = evLog.Close()
		_ = log.Close()
		return nil, fmt.Errorf("create virtual gamepad sink: %w", err)
	}

	var commitMirror controller.CommitMirror
	if tracer != nil {
		commitMirror = tracer
	}
	core := controller.New(settings, sink, evLog, commitMirror, log)

	ctx, cancel := context.WithCancel(context.Background())

	source, err := newSource(cfg)
	if err != nil {
		cancel()
		_ = sink.Disconnect()
		_ = evLog.Close()
		_ = log.Close()
		return nil, fmt.Errorf("create physical event source: %w", err)
	}

	rt := router.New(registry)
	done := make(chan struct{}, 3)

	go func() {
		defer func() { done <- struct{}{} }()
		if err := source.Run(ctx, func(ev ioevent.Event, _ time.Time) {
			dispatchEvent(rt, core, log, cfg.Verbose, ev)
		}); err != nil {
			log.Error("input source stopped: " + err.Error())
		}
	}()
	go func() {
		defer func() { done <- struct{}{} }()
		core.RunLeftDriver(ctx)
	}()
	go func() {
		defer func() { done <- struct{}{} }()
		core.RunRightDriver(ctx)
	}()

	return &serviceBundle{
		ctx:    ctx,
		cancel: cancel,
		core:   core,
		log:    log,
		events: evLog,
		tracer: tracer,
		done:   done,
	}, nil
}

// dispatchEvent translates one raw physical event through the router
// and forwards the result to the controller, logging (but not
// propagating) translation failures, per the spec's non-fatal
// translation-error policy.
func dispatchEvent(rt *router.Router, core *controller.Core, log *diag.Logger, verbose bool, ev ioevent.Event) {
	switch ev.Kind {
	case ioevent.KeyDown:
		routeKeyState(rt, core, log, verbose, ev.Key, model.Pressed)
	case ioevent.KeyUp:
		routeKeyState(rt, core, log, verbose, ev.Key, model.Released)
	case ioevent.RelMouseAxis:
		ce, ok := rt.RouteMouseAxis(ev.Axis, ev.Delta)
		if !ok {
			return
		}
		core.HandleEvent(ce)
	}
}

func routeKeyState(rt *router.Router, core *controller.Core, log *diag.Logger, verbose bool, k keys.Key, state model.PressState) {
	ce, ok := rt.RouteKey(k, state)
	if !ok {
		if verbose {
			log.Info("unbound key: " + k.String())
		}
		return
	}
	core.HandleEvent(ce)
}

// shutdown executes the shutdown sequence: cancel the three goroutines,
// wait for them to finish touching the sink, disconnect the virtual
// device, then close the side channels.
func shutdown(svcs *serviceBundle) error {
	var firstErr error
	catch := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	svcs.cancel()
	for i := 0; i < cap(svcs.done); i++ {
		<-svcs.done
	}

	if err := svcs.core.Disconnect(); err != nil {
		catch(fmt.Errorf("disconnect sink: %w", err))
		svcs.log.Error("disconnect sink: " + err.Error())
	}

	svcs.events.LogLifecycle("shutdown")
	if err := svcs.events.Close(); err != nil {
		catch(fmt.Errorf("close event log: %w", err))
	}
	if svcs.tracer != nil {
		if err := svcs.tracer.Close(); err != nil {
			catch(fmt.Errorf("close trace recorder: %w", err))
		}
	}
	svcs.log.Info("joymouse stopped")
	if err := svcs.log.Close(); err != nil {
		catch(fmt.Errorf("close logger: %w", err))
	}
	return firstErr
}
