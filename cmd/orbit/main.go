// cmd/orbit/main.go
package main

import (
	"context"
	"flag"
	"os"

	"github.com/opd-ai/go-orbit/pkg/config"
	"github.com/opd-ai/go-orbit/pkg/engine"
	"github.com/opd-ai/go-orbit/pkg/event"
	"github.com/opd-ai/go-orbit/pkg/game"
	"github.com/opd-ai/go-orbit/pkg/gateway"
	"github.com/opd-ai/go-orbit/pkg/logging"
)

func main() {
	logger := logging.NewLogger()
	ctx := context.Background()

	configPath := flag.String("config", "config.json", "Path to configuration file")
	createDefault := flag.Bool("default", false, "Create default configuration file")
	frames := flag.Int("frames", 600, "Number of frames to simulate")
	flag.Parse()

	if *createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", *configPath,
		)
		return
	}

	var gameConfig *config.GameConfig
	if _, err := os.Stat(*configPath); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", *configPath,
		)
		gameConfig = config.DefaultConfig()
	} else {
		gameConfig, err = config.LoadConfig(*configPath)
		if err != nil {
			logger.Error(ctx, "Failed to load configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
	}

	g := engine.NewGame(gameConfig)
	g.EventBus.Subscribe(event.MissileFired, func(e event.Event) {
		fired := e.(*event.MissileFiredEvent)
		logger.Info(ctx, "Missile fired", "player_id", fired.PlayerID)
	})

	logger.Info(ctx, "Starting simulation",
		"frames", *frames,
		"frame_rate", gameConfig.FrameRate,
		"stars", len(gameConfig.Stars),
		"players", len(gameConfig.Players),
	)

	runScripted(g, gameConfig, *frames)

	for _, player := range g.State.Snapshot() {
		logger.Info(ctx, "Final player state",
			"player_id", string(player.ID),
			"position_x", player.Pos[0],
			"position_y", player.Pos[1],
			"velocity_x", player.Velocity[0],
			"velocity_y", player.Velocity[1],
			"missiles", len(player.Missiles),
		)
	}
}

// runScripted drives a small demo flight: the first player turns, burns
// its engine for the first second, and fires once it is moving.
func runScripted(g *engine.Game, cfg *config.GameConfig, frames int) {
	dt := 1.0 / float64(cfg.FrameRate)

	var pilot gateway.PlayerID
	if players := g.State.Players(); len(players) > 0 {
		pilot = players[0]
	}

	for frame := 0; frame < frames; frame++ {
		if pilot != "" {
			switch {
			case frame < 10:
				g.QueueMove(pilot, game.RotateLeft)
			case frame < cfg.FrameRate:
				g.QueueMove(pilot, game.Accelerate)
			case frame%cfg.FrameRate == 0:
				g.QueueShoot(pilot)
			}
		}
		g.Step(dt)
	}
}
