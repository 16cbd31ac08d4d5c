// pkg/game/shooting.go
package game

import (
	"github.com/opd-ai/go-orbit/pkg/gateway"
	"github.com/opd-ai/go-orbit/pkg/physics"
)

// ShootingGateway is the data port the shooting use case reads player pose
// from and appends missiles through.
type ShootingGateway interface {
	PlayerPose(id gateway.PlayerID) gateway.PlayerPoseData
	PlayerMissileCount(id gateway.PlayerID) int
	CreateMissile(id gateway.PlayerID, missile gateway.MissileLaunchData)
}

// MissileConfig holds the tuning for missile launches.
type MissileConfig struct {
	// MaxMissiles is the largest number of missiles a player may own.
	MaxMissiles int
	// InitialSpeed is the missile's launch speed relative to the player.
	InitialSpeed float64
	// InitialDistance is the spawn offset from the player along its
	// orientation.
	InitialDistance float64
}

// Shooting attempts to spawn a missile from a player's current pose. A
// player at or over the missile cap is silently refused; that is a defined
// outcome, not an error.
type Shooting struct {
	cfg  MissileConfig
	repo ShootingGateway
}

// NewShooting creates the shooting use case over the given gateway.
func NewShooting(cfg MissileConfig, repo ShootingGateway) *Shooting {
	return &Shooting{cfg: cfg, repo: repo}
}

// Execute fires a missile for the identified player if it is under the
// missile cap. It reports whether a missile was created.
func (s *Shooting) Execute(id gateway.PlayerID) bool {
	if s.repo.PlayerMissileCount(id) >= s.cfg.MaxMissiles {
		return false
	}
	s.launch(id)
	return true
}

func (s *Shooting) launch(id gateway.PlayerID) {
	pose := s.repo.PlayerPose(id)
	pos := pose.Pos.Vector().Add(physics.FromAngle(pose.Angle, s.cfg.InitialDistance))
	vel := pose.Velocity.Vector().Add(physics.FromAngle(pose.Angle, s.cfg.InitialSpeed))
	// The missile faces its own travel direction, not the player's.
	s.repo.CreateMissile(id, gateway.MissileLaunchData{
		Pos:      gateway.Vec2FromVector(pos),
		Angle:    vel.Angle(),
		Velocity: gateway.Vec2FromVector(vel),
	})
}
