// cmd/client/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ggwsim/ggw-server/pkg/config"
	"github.com/ggwsim/ggw-server/pkg/logging"
	"github.com/ggwsim/ggw-server/pkg/network"
)

func main() {
	logger := logging.NewLoggerTo(os.Stderr)
	ctx := context.Background()

	addr := flag.String("addr", "", "Server address (overrides GGW_SERVER_ADDR)")
	timeScale := flag.Float64("timescale", 0, "Request a simulation speed multiplier on connect")
	frames := flag.Int("frames", 0, "Exit after this many snapshots (0 = run forever)")
	flag.Parse()

	envConfig, err := config.LoadConfigFromEnv()
	if err != nil {
		logger.Error(ctx, "failed to load environment configuration", err)
		os.Exit(1)
	}
	if *addr != "" {
		envConfig.ServerAddress = *addr
	}

	client := network.NewClient(envConfig, logger)
	if err := client.Connect(ctx); err != nil {
		logger.Error(ctx, "connection failed", err)
		os.Exit(1)
	}
	defer client.Close()

	if *timeScale > 0 {
		cmd := network.SetTimeScaleCommand{TimeScale: *timeScale}
		if err := client.SendCommand(ctx, cmd); err != nil {
			logger.Error(ctx, "failed to set time scale", err)
		}
	}

	received := 0
	for snapshot := range client.Snapshots() {
		pawn := snapshot.Interior.Pawn
		atmos := snapshot.Interior.Atmos
		fmt.Printf("t=%.1fs bodies=%d pawn=(%d,%d %s) o2=%.2fkg co2=%.3fkg net=%.1fkW\n",
			snapshot.SimTime,
			len(snapshot.Bodies),
			pawn.X, pawn.Y, pawn.Status,
			atmos.O2Kg, atmos.CO2Kg,
			snapshot.Interior.Power.NetKW,
		)
		received++
		if *frames > 0 && received >= *frames {
			return
		}
	}
}
