// pkg/game/command.go
package game

import (
	"github.com/opd-ai/go-orbit/pkg/event"
	"github.com/opd-ai/go-orbit/pkg/gateway"
)

// InputCommand is one executable player-input action. Commands are built
// by the factories below and run by the frame loop before the physics
// passes of the same frame.
type InputCommand interface {
	Execute()
}

// MoveCommandFactory binds movement configuration and gateway once and
// stamps out per-input move commands.
type MoveCommandFactory struct {
	movement *Movement
}

// NewMoveCommandFactory creates a factory for movement commands.
func NewMoveCommandFactory(cfg MoveConfig, repo MovementGateway) *MoveCommandFactory {
	return &MoveCommandFactory{movement: NewMovement(cfg, repo)}
}

// MakeMoveCommand builds a command applying one movement instruction to
// the identified player.
func (f *MoveCommandFactory) MakeMoveCommand(id gateway.PlayerID, instruction MoveInstruction) InputCommand {
	return &moveCommand{
		movement:    f.movement,
		player:      id,
		instruction: instruction,
	}
}

type moveCommand struct {
	movement    *Movement
	player      gateway.PlayerID
	instruction MoveInstruction
}

func (c *moveCommand) Execute() {
	c.movement.Execute(c.player, c.instruction)
}

// ShootCommandFactory binds missile configuration, gateway and an optional
// event bus once and stamps out per-input shoot commands.
type ShootCommandFactory struct {
	shooting *Shooting
	events   *event.Bus
}

// NewShootCommandFactory creates a factory for shoot commands. The bus may
// be nil when no one observes launches.
func NewShootCommandFactory(cfg MissileConfig, repo ShootingGateway, events *event.Bus) *ShootCommandFactory {
	return &ShootCommandFactory{
		shooting: NewShooting(cfg, repo),
		events:   events,
	}
}

// MakeShootCommand builds a command firing one missile for the identified
// player, cap permitting.
func (f *ShootCommandFactory) MakeShootCommand(id gateway.PlayerID) InputCommand {
	return &shootCommand{
		shooting: f.shooting,
		events:   f.events,
		player:   id,
	}
}

type shootCommand struct {
	shooting *Shooting
	events   *event.Bus
	player   gateway.PlayerID
}

func (c *shootCommand) Execute() {
	if c.shooting.Execute(c.player) && c.events != nil {
		c.events.Publish(&event.MissileFiredEvent{
			BaseEvent: event.BaseEvent{EventType: event.MissileFired, Source: c},
			PlayerID:  string(c.player),
		})
	}
}
