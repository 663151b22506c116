// cmd/server/main.go
package main

import (
	"bufio"
	"context"
	"flag"
	"math"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/ggwsim/ggw-server/pkg/config"
	"github.com/ggwsim/ggw-server/pkg/engine"
	"github.com/ggwsim/ggw-server/pkg/health"
	"github.com/ggwsim/ggw-server/pkg/logging"
	"github.com/ggwsim/ggw-server/pkg/network"
	"github.com/ggwsim/ggw-server/pkg/orbit"
)

func main() {
	ctx := context.Background()

	configPath := flag.String("config", "config.yaml", "Path to game configuration file")
	createDefault := flag.Bool("default", false, "Create default configuration file and exit")
	stdio := flag.Bool("stdio", false, "Stream snapshots over stdout instead of TCP")
	flag.Parse()

	// In stdio mode stdout carries the snapshot stream, so logs go to
	// stderr.
	var logger *logging.Logger
	if *stdio {
		logger = logging.NewLoggerTo(os.Stderr)
	} else {
		logger = logging.NewLogger()
	}

	if *createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			logger.Error(ctx, "failed to create default configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "created default configuration file",
			"config_path", *configPath,
		)
		return
	}

	gameConfig := config.LoadOrDefault(*configPath)

	envConfig, err := config.LoadConfigFromEnv()
	if err != nil {
		logger.Error(ctx, "failed to load environment configuration", err)
		os.Exit(1)
	}

	world := buildInitialWorld(gameConfig)
	server := network.NewServer(world, envConfig, logger)

	if *stdio {
		runStdio(ctx, server, envConfig, logger)
		return
	}

	if err := server.Start(ctx); err != nil {
		logger.Error(ctx, "failed to start server", err,
			"address", envConfig.ServerAddress,
		)
		os.Exit(1)
	}

	startHealthServer(ctx, server, logger)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info(ctx, "shutting down")
	server.Stop()
}

// runStdio drives the same tick loop as the TCP server but writes each
// snapshot line to stdout and reads commands from stdin.
func runStdio(ctx context.Context, server *network.Server, envConfig *config.EnvironmentConfig, logger *logging.Logger) {
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := scanner.Bytes()
			if len(line) == 0 {
				continue
			}
			cmd, err := network.ParseCommand(line)
			if err != nil {
				logger.Warn(ctx, "ignoring unparseable command", "reason", err.Error())
				continue
			}
			server.QueueCommand(cmd)
		}
	}()

	out := bufio.NewWriter(os.Stdout)
	ticker := time.NewTicker(envConfig.SnapshotInterval)
	defer ticker.Stop()

	lastReal := time.Now()
	for now := range ticker.C {
		realDt := now.Sub(lastReal).Seconds()
		lastReal = now
		if line := server.Tick(ctx, realDt); line != nil {
			out.Write(line)
			out.Flush()
		}
	}
}

func startHealthServer(ctx context.Context, server *network.Server, logger *logging.Logger) {
	checker := health.NewHealthChecker()
	checker.AddCheck(health.NewSimulationHealthCheck(server.LastTick, 5*time.Second))
	checker.AddCheck(health.NewNetworkHealthCheck(server.ListenerAddress))

	healthPort := "8080"
	if envPort := os.Getenv("GGW_HEALTH_PORT"); envPort != "" {
		if _, err := strconv.Atoi(envPort); err == nil {
			healthPort = envPort
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", checker.LivenessHandler)
	mux.HandleFunc("/ready", checker.ReadinessHandler)

	healthServer := &http.Server{
		Addr:         ":" + healthPort,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info(ctx, "starting health check server", "port", healthPort)
		if err := healthServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error(ctx, "health check server failed", err)
		}
	}()
}

// buildInitialWorld populates the sample scene: the crewed ship on a
// circular low orbit, an asteroid on a higher circular orbit, and a
// piece of debris on an eccentric orbit crossing between them.
func buildInitialWorld(gameConfig *config.GameConfig) *engine.World {
	world := engine.NewWorld(engine.MuEarth, gameConfig)
	rPlanet := engine.PlanetRadiusM

	shipOrbit := orbit.State{
		SemiMajorAxis: rPlanet + 1_000_000.0,
	}
	asteroidOrbit := orbit.State{
		SemiMajorAxis: rPlanet + 3_000_000.0,
	}

	perigee := rPlanet + 1_000_000.0
	apogee := rPlanet + 5_000_000.0
	debrisOrbit := orbit.State{
		SemiMajorAxis: 0.5 * (perigee + apogee),
		Eccentricity:  (apogee - perigee) / (apogee + perigee),
		ArgPeriapsis:  math.Pi / 4,
	}

	shipHull := world.Interior.Ship.Hull
	world.AddBody(&engine.Body{
		ID:     1,
		Mass:   1000.0,
		Radius: 20.0,
		Orbit:  shipOrbit,
		Type:   engine.BodyShip,
		Hull:   &shipHull,
	})
	world.AddBody(&engine.Body{
		ID:     2,
		Mass:   1000.0,
		Radius: 1000.0,
		Orbit:  asteroidOrbit,
		Type:   engine.BodyAsteroid,
	})
	world.AddBody(&engine.Body{
		ID:     3,
		Mass:   1000.0,
		Radius: 10.0,
		Orbit:  debrisOrbit,
		Type:   engine.BodyDebris,
	})

	world.Step(0.0)
	return world
}
