// Package storage provides the in-memory repository backing the use-case
// gateways. One GameState is the single logical game resource; a RWMutex
// makes it safe to embed in a threaded host, though the core itself runs
// one synchronous frame at a time.
package storage

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/opd-ai/go-orbit/pkg/game"
	"github.com/opd-ai/go-orbit/pkg/gateway"
)

// Compile-time checks that GameState satisfies every use-case port.
var (
	_ game.MovementGateway    = (*GameState)(nil)
	_ game.ShootingGateway    = (*GameState)(nil)
	_ game.GravityGateway     = (*GameState)(nil)
	_ game.IntegrationGateway = (*GameState)(nil)
)

// playerState is one player's body plus its append-only missile list.
type playerState struct {
	pos      gateway.Vec2Data
	angle    float64
	vel      gateway.Vec2Data
	acc      gateway.Vec2Data
	missiles []missileState
}

// missileState is one missile's body. Missiles are appended on launch and
// mutated in place by the physics passes; they are never removed here.
type missileState struct {
	pos   gateway.Vec2Data
	angle float64
	vel   gateway.Vec2Data
	acc   gateway.Vec2Data
}

// GameState is the in-memory store for stars, players and missiles.
type GameState struct {
	mu      sync.RWMutex
	stars   []gateway.StarData
	players map[gateway.PlayerID]*playerState
	roster  []gateway.PlayerID // insertion order, for deterministic iteration
}

// NewGameState creates a store with the given immutable star field.
func NewGameState(stars []gateway.StarData) *GameState {
	s := &GameState{
		stars:   make([]gateway.StarData, len(stars)),
		players: make(map[gateway.PlayerID]*playerState),
	}
	copy(s.stars, stars)
	return s
}

// AddPlayer registers a player with default (zeroed) state and returns its
// id. An empty id gets a generated one. Re-adding an existing id resets
// that player to defaults, matching game-setup semantics.
func (s *GameState) AddPlayer(id gateway.PlayerID) gateway.PlayerID {
	if id == "" {
		id = gateway.PlayerID(uuid.NewString())
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.players[id]; !exists {
		s.roster = append(s.roster, id)
	}
	s.players[id] = &playerState{}
	return id
}

// PlacePlayer positions a player for game setup. It fails on unknown ids.
func (s *GameState) PlacePlayer(id gateway.PlayerID, pos gateway.Vec2Data, angle float64, vel gateway.Vec2Data) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[id]
	if !ok {
		return fmt.Errorf("place player: unknown player %q", id)
	}
	p.pos = pos
	p.angle = angle
	p.vel = vel
	return nil
}

// Players returns the player ids in roster order.
func (s *GameState) Players() []gateway.PlayerID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]gateway.PlayerID, len(s.roster))
	copy(ids, s.roster)
	return ids
}

// player returns the state for id. Use cases only ever address ids handed
// out by AddPlayer, so an unknown id is a fatal precondition violation.
func (s *GameState) player(id gateway.PlayerID) *playerState {
	p, ok := s.players[id]
	if !ok {
		panic(fmt.Sprintf("storage: unknown player %q", id))
	}
	return p
}

// --- game.MovementGateway ---

// PlayerOrientation returns a player's orientation in radians.
func (s *GameState) PlayerOrientation(id gateway.PlayerID) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.player(id).angle
}

// SetPlayerOrientation updates a player's orientation.
func (s *GameState) SetPlayerOrientation(id gateway.PlayerID, orientation float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.player(id).angle = orientation
}

// PlayerAcceleration returns a player's current acceleration.
func (s *GameState) PlayerAcceleration(id gateway.PlayerID) gateway.Vec2Data {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.player(id).acc
}

// SetPlayerAcceleration updates a player's acceleration.
func (s *GameState) SetPlayerAcceleration(id gateway.PlayerID, acc gateway.Vec2Data) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.player(id).acc = acc
}

// --- game.ShootingGateway ---

// PlayerPose returns a player's position, orientation and velocity.
func (s *GameState) PlayerPose(id gateway.PlayerID) gateway.PlayerPoseData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p := s.player(id)
	return gateway.PlayerPoseData{Pos: p.pos, Angle: p.angle, Velocity: p.vel}
}

// PlayerMissileCount returns how many missiles a player owns.
func (s *GameState) PlayerMissileCount(id gateway.PlayerID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.player(id).missiles)
}

// CreateMissile appends a missile to a player's list with zero initial
// acceleration.
func (s *GameState) CreateMissile(id gateway.PlayerID, missile gateway.MissileLaunchData) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.player(id)
	p.missiles = append(p.missiles, missileState{
		pos:   missile.Pos,
		angle: missile.Angle,
		vel:   missile.Velocity,
	})
}

// --- game.GravityGateway ---

// Stars returns the immutable star field.
func (s *GameState) Stars() []gateway.StarData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stars := make([]gateway.StarData, len(s.stars))
	copy(stars, s.stars)
	return stars
}

// PlayerBodies returns position and acceleration of every player.
func (s *GameState) PlayerBodies() []gateway.PlayerBodyData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bodies := make([]gateway.PlayerBodyData, 0, len(s.roster))
	for _, id := range s.roster {
		p := s.players[id]
		bodies = append(bodies, gateway.PlayerBodyData{ID: id, Pos: p.pos, Acc: p.acc})
	}
	return bodies
}

// MissileBodies returns position and acceleration of every missile.
func (s *GameState) MissileBodies() []gateway.MissileBodyData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var bodies []gateway.MissileBodyData
	for _, id := range s.roster {
		for i, m := range s.players[id].missiles {
			bodies = append(bodies, gateway.MissileBodyData{
				Player:  id,
				Missile: gateway.MissileID(i),
				Pos:     m.pos,
				Acc:     m.acc,
			})
		}
	}
	return bodies
}

// SetPlayerAccelerations bulk-updates player accelerations. Updates for
// ids this store does not know are dropped.
func (s *GameState) SetPlayerAccelerations(updates []gateway.PlayerAccelUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range updates {
		if p, ok := s.players[u.ID]; ok {
			p.acc = u.Acc
		}
	}
}

// SetMissileAccelerations bulk-updates missile accelerations. Updates
// addressing unknown players or out-of-range missiles are dropped.
func (s *GameState) SetMissileAccelerations(updates []gateway.MissileAccelUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range updates {
		p, ok := s.players[u.Player]
		if !ok || int(u.Missile) < 0 || int(u.Missile) >= len(p.missiles) {
			continue
		}
		p.missiles[u.Missile].acc = u.Acc
	}
}

// --- game.IntegrationGateway ---

// PlayerMotion returns position, velocity and acceleration of every player.
func (s *GameState) PlayerMotion() []gateway.PlayerMotionData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bodies := make([]gateway.PlayerMotionData, 0, len(s.roster))
	for _, id := range s.roster {
		p := s.players[id]
		bodies = append(bodies, gateway.PlayerMotionData{ID: id, Pos: p.pos, Vel: p.vel, Acc: p.acc})
	}
	return bodies
}

// MissileMotion returns position, velocity and acceleration of every
// missile.
func (s *GameState) MissileMotion() []gateway.MissileMotionData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var bodies []gateway.MissileMotionData
	for _, id := range s.roster {
		for i, m := range s.players[id].missiles {
			bodies = append(bodies, gateway.MissileMotionData{
				Player:  id,
				Missile: gateway.MissileID(i),
				Pos:     m.pos,
				Vel:     m.vel,
				Acc:     m.acc,
			})
		}
	}
	return bodies
}

// SetPlayerMotion bulk-updates player motion. Unknown ids are dropped.
func (s *GameState) SetPlayerMotion(updates []gateway.PlayerMotionData) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range updates {
		if p, ok := s.players[u.ID]; ok {
			p.pos = u.Pos
			p.vel = u.Vel
			p.acc = u.Acc
		}
	}
}

// SetMissileMotion bulk-updates missile motion. Updates addressing unknown
// players or out-of-range missiles are dropped.
func (s *GameState) SetMissileMotion(updates []gateway.MissileMotionData) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range updates {
		p, ok := s.players[u.Player]
		if !ok || int(u.Missile) < 0 || int(u.Missile) >= len(p.missiles) {
			continue
		}
		m := &p.missiles[u.Missile]
		m.pos = u.Pos
		m.vel = u.Vel
		m.acc = u.Acc
	}
}
