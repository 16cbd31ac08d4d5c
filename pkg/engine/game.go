// pkg/engine/game.go
package engine

import (
	"context"
	"sync"
	"time"

	"github.com/opd-ai/go-orbit/pkg/config"
	"github.com/opd-ai/go-orbit/pkg/event"
	"github.com/opd-ai/go-orbit/pkg/game"
	"github.com/opd-ai/go-orbit/pkg/gateway"
	"github.com/opd-ai/go-orbit/pkg/physics"
	"github.com/opd-ai/go-orbit/pkg/storage"
)

// Game owns the per-frame ordering contract of the simulation: queued
// input commands run first, then the gravity pass, then the integration
// pass. Acceleration therefore accumulates input thrust plus gravity
// before integration consumes and clears it.
type Game struct {
	Config *config.GameConfig
	State  *storage.GameState

	gravity     *game.Gravity
	integration *game.Integration
	moves       *game.MoveCommandFactory
	shots       *game.ShootCommandFactory
	EventBus    *event.Bus

	mu          sync.Mutex
	pending     []game.InputCommand
	Running     bool
	CurrentTick uint64
}

// NewGame builds a game from configuration: star field, player roster,
// use cases and command factories over one in-memory store.
func NewGame(cfg *config.GameConfig) *Game {
	stars := make([]gateway.StarData, len(cfg.Stars))
	for i, s := range cfg.Stars {
		stars[i] = gateway.StarData{Pos: gateway.Vec2Data{s.X, s.Y}, Mass: s.Mass}
	}
	state := storage.NewGameState(stars)
	bus := event.NewBus()

	g := &Game{
		Config:      cfg,
		State:       state,
		gravity:     game.NewGravity(state),
		integration: game.NewIntegration(state),
		moves: game.NewMoveCommandFactory(
			game.NewMoveConfig(cfg.Movement.AngleDegPerFrame, cfg.Movement.Thrust),
			state,
		),
		shots: game.NewShootCommandFactory(
			game.MissileConfig{
				MaxMissiles:     cfg.Missiles.MaxPerPlayer,
				InitialSpeed:    cfg.Missiles.InitialSpeed,
				InitialDistance: cfg.Missiles.InitialDistance,
			},
			state,
			bus,
		),
		EventBus: bus,
	}

	for _, player := range cfg.Players {
		id := g.AddPlayer(gateway.PlayerID(player.ID))
		// The id was just registered, so placement cannot fail.
		_ = state.PlacePlayer(id,
			gateway.Vec2Data{player.X, player.Y},
			physics.TrimAngle(player.AngleDeg*physics.TwoPi/360),
			gateway.Vec2Data{},
		)
	}
	return g
}

// AddPlayer registers a player and announces it on the event bus. An empty
// id gets a generated one.
func (g *Game) AddPlayer(id gateway.PlayerID) gateway.PlayerID {
	id = g.State.AddPlayer(id)
	g.EventBus.Publish(&event.PlayerJoinedEvent{
		BaseEvent: event.BaseEvent{EventType: event.PlayerJoined, Source: g},
		PlayerID:  string(id),
	})
	return id
}

// QueueMove schedules a movement instruction for the next frame.
func (g *Game) QueueMove(id gateway.PlayerID, instruction game.MoveInstruction) {
	g.queue(g.moves.MakeMoveCommand(id, instruction))
}

// QueueShoot schedules a missile launch attempt for the next frame.
func (g *Game) QueueShoot(id gateway.PlayerID) {
	g.queue(g.shots.MakeShootCommand(id))
}

func (g *Game) queue(cmd game.InputCommand) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending = append(g.pending, cmd)
}

// Step advances the simulation by one frame of duration dt seconds:
// pending input, then gravity, then integration.
func (g *Game) Step(dt float64) {
	for _, cmd := range g.drainPending() {
		cmd.Execute()
	}
	g.gravity.Execute()
	g.integration.Execute(dt)

	g.mu.Lock()
	g.CurrentTick++
	tick := g.CurrentTick
	g.mu.Unlock()

	g.EventBus.Publish(&event.FrameAdvancedEvent{
		BaseEvent: event.BaseEvent{EventType: event.FrameAdvanced, Source: g},
		Tick:      tick,
		DeltaTime: dt,
	})
}

// drainPending takes the queued commands, leaving the queue empty.
func (g *Game) drainPending() []game.InputCommand {
	g.mu.Lock()
	defer g.mu.Unlock()
	pending := g.pending
	g.pending = nil
	return pending
}

// Run steps the simulation at the configured frame rate until the context
// is canceled. Each frame uses the fixed configured time delta, keeping
// the physics deterministic regardless of scheduling jitter.
func (g *Game) Run(ctx context.Context) {
	dt := 1.0 / float64(g.Config.FrameRate)

	g.mu.Lock()
	g.Running = true
	g.mu.Unlock()
	g.EventBus.Publish(&event.BaseEvent{EventType: event.GameStarted, Source: g})

	ticker := time.NewTicker(time.Duration(float64(time.Second) * dt))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			g.mu.Lock()
			g.Running = false
			g.mu.Unlock()
			g.EventBus.Publish(&event.BaseEvent{EventType: event.GameStopped, Source: g})
			return
		case <-ticker.C:
			g.Step(dt)
		}
	}
}
