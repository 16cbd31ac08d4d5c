// pkg/game/shooting_test.go
package game

import (
	"math"
	"testing"

	"github.com/opd-ai/go-orbit/pkg/gateway"
	"github.com/opd-ai/go-orbit/pkg/physics"
)

type mockShootingGateway struct {
	pose     gateway.PlayerPoseData
	missiles []gateway.MissileLaunchData
}

func (m *mockShootingGateway) PlayerPose(gateway.PlayerID) gateway.PlayerPoseData { return m.pose }
func (m *mockShootingGateway) PlayerMissileCount(gateway.PlayerID) int {
	return len(m.missiles)
}
func (m *mockShootingGateway) CreateMissile(_ gateway.PlayerID, missile gateway.MissileLaunchData) {
	m.missiles = append(m.missiles, missile)
}

func defaultMissileConfig() MissileConfig {
	return MissileConfig{MaxMissiles: 3, InitialSpeed: 100, InitialDistance: 500}
}

func TestShooting_FiresWhenUnderCap(t *testing.T) {
	repo := &mockShootingGateway{}
	shooting := NewShooting(defaultMissileConfig(), repo)

	if !shooting.Execute("1") {
		t.Fatal("Execute() = false, expected a launch")
	}
	if len(repo.missiles) != 1 {
		t.Errorf("missile count = %d, expected 1", len(repo.missiles))
	}
}

func TestShooting_RefusesAtCap(t *testing.T) {
	repo := &mockShootingGateway{}
	shooting := NewShooting(defaultMissileConfig(), repo)

	for i := 0; i < 4; i++ {
		shooting.Execute("1")
	}

	if len(repo.missiles) != 3 {
		t.Errorf("missile count = %d, expected cap of 3", len(repo.missiles))
	}
}

func TestShooting_RefusalWritesNothing(t *testing.T) {
	repo := &mockShootingGateway{
		missiles: make([]gateway.MissileLaunchData, 3),
	}
	shooting := NewShooting(defaultMissileConfig(), repo)

	if shooting.Execute("1") {
		t.Error("Execute() = true at cap, expected refusal")
	}
	if len(repo.missiles) != 3 {
		t.Errorf("missile count = %d, expected unchanged 3", len(repo.missiles))
	}
}

func TestShooting_SpawnPose(t *testing.T) {
	pose := gateway.PlayerPoseData{
		Pos:      gateway.Vec2Data{200, 100},
		Angle:    0.56,
		Velocity: gateway.Vec2Data{4, 45},
	}
	repo := &mockShootingGateway{pose: pose}
	cfg := defaultMissileConfig()
	NewShooting(cfg, repo).Execute("1")

	missile := repo.missiles[0]

	expectedPos := pose.Pos.Vector().Add(physics.FromAngle(pose.Angle, cfg.InitialDistance))
	if !vec2Close(missile.Pos, gateway.Vec2FromVector(expectedPos)) {
		t.Errorf("spawn position = %v, expected %v", missile.Pos, expectedPos)
	}

	expectedVel := pose.Velocity.Vector().Add(physics.FromAngle(pose.Angle, cfg.InitialSpeed))
	if !vec2Close(missile.Velocity, gateway.Vec2FromVector(expectedVel)) {
		t.Errorf("spawn velocity = %v, expected %v", missile.Velocity, expectedVel)
	}

	// The missile faces its own travel direction, not the player's.
	if math.Abs(missile.Angle-expectedVel.Angle()) > tolerance {
		t.Errorf("spawn angle = %v, expected %v", missile.Angle, expectedVel.Angle())
	}
}

func TestShooting_FromOriginAlongXAxis(t *testing.T) {
	repo := &mockShootingGateway{}
	NewShooting(defaultMissileConfig(), repo).Execute("1")

	missile := repo.missiles[0]
	if !vec2Close(missile.Pos, gateway.Vec2Data{500, 0}) {
		t.Errorf("spawn position = %v, expected (500, 0)", missile.Pos)
	}
	if !vec2Close(missile.Velocity, gateway.Vec2Data{100, 0}) {
		t.Errorf("spawn velocity = %v, expected (100, 0)", missile.Velocity)
	}
	if missile.Angle != 0 {
		t.Errorf("spawn angle = %v, expected 0", missile.Angle)
	}
}
