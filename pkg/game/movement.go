// pkg/game/movement.go
package game

import (
	"github.com/opd-ai/go-orbit/pkg/gateway"
	"github.com/opd-ai/go-orbit/pkg/physics"
)

// MovementGateway is the data port the movement use case mutates player
// orientation and acceleration through.
type MovementGateway interface {
	PlayerOrientation(id gateway.PlayerID) float64
	SetPlayerOrientation(id gateway.PlayerID, orientation float64)
	PlayerAcceleration(id gateway.PlayerID) gateway.Vec2Data
	SetPlayerAcceleration(id gateway.PlayerID, acc gateway.Vec2Data)
}

// MoveInstruction is one discrete movement command from player input.
type MoveInstruction int

const (
	RotateLeft MoveInstruction = iota
	RotateRight
	Accelerate
)

// MoveConfig holds the tuning for player movement.
type MoveConfig struct {
	// AnglePerFrame is the orientation change per rotate command, radians.
	AnglePerFrame float64
	// Thrust is the scalar acceleration added per accelerate command,
	// pointed along the player's current orientation.
	Thrust float64
}

// NewMoveConfig builds a movement configuration from an angle step in
// degrees per frame and a scalar thrust magnitude.
func NewMoveConfig(angleDegPerFrame, thrust float64) MoveConfig {
	return MoveConfig{
		AnglePerFrame: angleDegPerFrame * physics.TwoPi / 360,
		Thrust:        thrust,
	}
}

// Movement interprets discrete player commands into orientation and
// acceleration updates. Thrust accumulates into the acceleration the
// gravity pass later adds to; it never overwrites it.
type Movement struct {
	cfg  MoveConfig
	repo MovementGateway
}

// NewMovement creates the movement use case over the given gateway.
func NewMovement(cfg MoveConfig, repo MovementGateway) *Movement {
	return &Movement{cfg: cfg, repo: repo}
}

// Execute applies one movement instruction to the identified player.
func (m *Movement) Execute(id gateway.PlayerID, instruction MoveInstruction) {
	switch instruction {
	case RotateLeft:
		m.rotate(id, m.cfg.AnglePerFrame)
	case RotateRight:
		m.rotate(id, -m.cfg.AnglePerFrame)
	case Accelerate:
		m.accelerate(id)
	}
}

func (m *Movement) rotate(id gateway.PlayerID, angle float64) {
	orientation := m.repo.PlayerOrientation(id)
	m.repo.SetPlayerOrientation(id, physics.TrimAngle(orientation+angle))
}

func (m *Movement) accelerate(id gateway.PlayerID) {
	orientation := m.repo.PlayerOrientation(id)
	acc := m.repo.PlayerAcceleration(id).Vector()
	thrust := physics.FromAngle(orientation, m.cfg.Thrust)
	m.repo.SetPlayerAcceleration(id, gateway.Vec2FromVector(acc.Add(thrust)))
}
