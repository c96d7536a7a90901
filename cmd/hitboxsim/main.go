// cmd/hitboxsim/main.go
package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/opd-ai/go-hitbox/pkg/config"
	"github.com/opd-ai/go-hitbox/pkg/event"
	"github.com/opd-ai/go-hitbox/pkg/health"
	"github.com/opd-ai/go-hitbox/pkg/logging"
)

func main() {
	configPath := flag.String("config", "hitbox.json", "Path to configuration file (.json, .yaml or .yml)")
	createDefault := flag.Bool("default", false, "Create default configuration file")
	ticks := flag.Int("ticks", -1, "Number of ticks to simulate, 0 runs until interrupted (default from config)")
	realtime := flag.Bool("realtime", false, "Pace ticks at the configured tick rate")
	healthAddr := flag.String("health", "", "Serve /health and /ready on this address")
	renderEvery := flag.Int("render", 0, "Draw the scene every N ticks, 0 disables")
	fullScreen := flag.Bool("tui", false, "Draw on a full-screen terminal instead of stderr (needs -render)")
	recordPath := flag.String("record", "", "Write every collision to this file as msgpack records")
	flag.Parse()

	// Logs are held back while the terminal is taken over
	var held bytes.Buffer
	logger := logging.NewLogger()
	if *fullScreen && *renderEvery > 0 {
		logger = logging.NewLoggerWithWriter(&held, logging.ParseLevel(os.Getenv(logging.LevelEnv)))
	}
	flush := func() { os.Stdout.Write(held.Bytes()) }
	defer flush()
	fail := func() {
		flush()
		os.Exit(1)
	}
	ctx := logging.WithCorrelationID(context.Background(), logging.GenerateCorrelationID())

	// Create default configuration file if requested
	if *createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			fail()
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", *configPath,
		)
		return
	}

	cfg, err := loadConfig(ctx, logger, *configPath)
	if err != nil {
		logger.Error(ctx, "Failed to load configuration", err,
			"config_path", *configPath,
		)
		fail()
	}
	if *ticks >= 0 {
		cfg.Simulation.Ticks = *ticks
	}
	if *realtime {
		cfg.Simulation.Realtime = true
	}

	sc, err := newScene(cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to build scene", err, "scene", cfg.Name)
		fail()
	}

	if *recordPath != "" {
		closeRecorder, err := startRecorder(ctx, logger, sc, *recordPath)
		if err != nil {
			logger.Error(ctx, "Failed to open record file", err, "record_path", *recordPath)
			fail()
		}
		defer closeRecorder()
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var onTick func(uint64)
	switch {
	case *renderEvery > 0 && *fullScreen:
		var closeScreen func()
		onTick, closeScreen, err = screenView(sc, uint64(*renderEvery), stop)
		if err != nil {
			logger.Error(ctx, "Failed to start terminal view", err)
			fail()
		}
		defer closeScreen()
	case *renderEvery > 0:
		onTick = textView(ctx, logger, sc, os.Stderr, uint64(*renderEvery))
	}

	logger.Info(ctx, "Starting simulation",
		"scene", cfg.Name,
		"obstacles", len(cfg.Obstacles),
		"bodies", len(cfg.Bodies),
		"tick_rate", cfg.Simulation.TickRate,
		"ticks", cfg.Simulation.Ticks,
		"realtime", cfg.Simulation.Realtime,
	)

	// The health server lives as long as the simulation; either failing
	// stops the other.
	g, gctx := errgroup.WithContext(ctx)
	simCtx, simDone := context.WithCancel(gctx)
	defer simDone()

	start := time.Now()
	g.Go(func() error {
		defer simDone()
		sc.run(simCtx, cfg.Simulation.Ticks, cfg.Simulation.TickRate, cfg.Simulation.Realtime, onTick)
		return nil
	})
	if *healthAddr != "" {
		g.Go(func() error {
			return serveHealth(simCtx, logger, *healthAddr, sc)
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error(ctx, "Simulation stopped", err)
	}

	sum := sc.summary()
	logger.Info(ctx, "Simulation finished",
		"ticks", sum.Ticks,
		"collisions", sum.Collisions,
		"colliders", sum.Stats.Colliders,
		"tree_nodes", sum.Stats.Tree.Nodes,
		"tree_depth", sum.Stats.Tree.MaxDepth,
		"elapsed", time.Since(start).String(),
	)
}

// loadConfig reads path, falling back to the default scene when it does not
// exist, and applies environment overrides.
func loadConfig(ctx context.Context, logger *logging.Logger, path string) (*config.Config, error) {
	var cfg *config.Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", path,
		)
		cfg = config.DefaultConfig()
	} else {
		cfg, err = config.LoadConfig(path)
		if err != nil {
			return nil, logging.WrapError(err, "load scene %s", path)
		}
	}

	if err := config.ApplyEnvironmentOverrides(cfg); err != nil {
		return nil, logging.WrapError(err, "environment overrides")
	}
	return cfg, nil
}

// startRecorder records the scene's collisions to path. The returned
// function flushes and closes the file.
func startRecorder(ctx context.Context, logger *logging.Logger, sc *scene, path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, logging.WrapError(err, "create record file")
	}
	w := bufio.NewWriter(f)
	rec := event.NewRecorder(sc.bus, w)

	return func() {
		err := logging.WrapError(errors.Join(rec.Close(), w.Flush(), f.Close()), "close record file %s", path)
		if err != nil {
			logger.Error(ctx, "Failed to record collisions", err, "record_path", path)
			return
		}
		logger.Info(ctx, "Collisions recorded", "record_path", path, "records", rec.Count())
	}, nil
}

// serveHealth serves the health and readiness endpoints on addr until ctx is done
func serveHealth(ctx context.Context, logger *logging.Logger, addr string, sc *scene) error {
	checker := health.NewHealthChecker()
	checker.AddCheck(health.NewSimulationHealthCheck(sc.running.Load))
	checker.AddCheck(health.NewIndexHealthCheck(func() int { return int(sc.rejected.Load()) }))
	checker.AddCheck(health.NewMemoryHealthCheck(500, func() int64 {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		return int64(m.Alloc / 1024 / 1024)
	}))

	srv := &http.Server{
		Addr:         addr,
		Handler:      checker.Handler(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error(ctx, "Health check server shutdown failed", err)
		}
	}()

	logger.Info(ctx, "Starting health check server", "address", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return logging.WrapError(err, "health check server")
	}
	return nil
}
