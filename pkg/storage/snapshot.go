// pkg/storage/snapshot.go
package storage

import "github.com/opd-ai/go-orbit/pkg/gateway"

// MissileSnapshot is a read-only copy of one missile for observers.
type MissileSnapshot struct {
	Pos      gateway.Vec2Data
	Angle    float64
	Velocity gateway.Vec2Data
}

// PlayerSnapshot is a read-only copy of one player for observers.
type PlayerSnapshot struct {
	ID       gateway.PlayerID
	Pos      gateway.Vec2Data
	Angle    float64
	Velocity gateway.Vec2Data
	Missiles []MissileSnapshot
}

// Snapshot copies the whole roster for observers (renderers, logs). The
// copy is detached; mutating it never touches game state.
func (s *GameState) Snapshot() []PlayerSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	players := make([]PlayerSnapshot, 0, len(s.roster))
	for _, id := range s.roster {
		p := s.players[id]
		missiles := make([]MissileSnapshot, len(p.missiles))
		for i, m := range p.missiles {
			missiles[i] = MissileSnapshot{Pos: m.pos, Angle: m.angle, Velocity: m.vel}
		}
		players = append(players, PlayerSnapshot{
			ID:       id,
			Pos:      p.pos,
			Angle:    p.angle,
			Velocity: p.vel,
			Missiles: missiles,
		})
	}
	return players
}
