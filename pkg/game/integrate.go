// pkg/game/integrate.go
package game

import "github.com/opd-ai/go-orbit/pkg/gateway"

// IntegrationGateway is the data port the integration use case reads body
// motion from and writes advanced motion back to.
type IntegrationGateway interface {
	PlayerMotion() []gateway.PlayerMotionData
	MissileMotion() []gateway.MissileMotionData
	SetPlayerMotion(updates []gateway.PlayerMotionData)
	SetMissileMotion(updates []gateway.MissileMotionData)
}

// Integration advances every player and missile by one explicit-Euler step
// and clears the frame's accumulated acceleration. First-order on purpose:
// the frame loop runs it once per frame after gravity, so acceleration is
// consumed exactly once.
type Integration struct {
	repo IntegrationGateway
}

// NewIntegration creates the integration use case over the given gateway.
func NewIntegration(repo IntegrationGateway) *Integration {
	return &Integration{repo: repo}
}

// Execute advances all bodies by the time delta dt (seconds). A zero dt
// leaves position and velocity unchanged but still zeroes acceleration.
func (in *Integration) Execute(dt float64) {
	in.advancePlayers(dt)
	in.advanceMissiles(dt)
}

func (in *Integration) advancePlayers(dt float64) {
	bodies := in.repo.PlayerMotion()
	updates := make([]gateway.PlayerMotionData, len(bodies))
	for i, body := range bodies {
		pos, vel := step(body.Pos, body.Vel, body.Acc, dt)
		updates[i] = gateway.PlayerMotionData{
			ID:  body.ID,
			Pos: pos,
			Vel: vel,
			Acc: gateway.Vec2Data{},
		}
	}
	in.repo.SetPlayerMotion(updates)
}

func (in *Integration) advanceMissiles(dt float64) {
	bodies := in.repo.MissileMotion()
	updates := make([]gateway.MissileMotionData, len(bodies))
	for i, body := range bodies {
		pos, vel := step(body.Pos, body.Vel, body.Acc, dt)
		updates[i] = gateway.MissileMotionData{
			Player:  body.Player,
			Missile: body.Missile,
			Pos:     pos,
			Vel:     vel,
			Acc:     gateway.Vec2Data{},
		}
	}
	in.repo.SetMissileMotion(updates)
}

// step performs one explicit-Euler update of a body's position and velocity.
func step(pos, vel, acc gateway.Vec2Data, dt float64) (gateway.Vec2Data, gateway.Vec2Data) {
	newPos := pos.Vector().Add(vel.Vector().Scale(dt))
	newVel := vel.Vector().Add(acc.Vector().Scale(dt))
	return gateway.Vec2FromVector(newPos), gateway.Vec2FromVector(newVel)
}
