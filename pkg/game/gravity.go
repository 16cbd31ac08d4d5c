// pkg/game/gravity.go
package game

import (
	"github.com/opd-ai/go-orbit/pkg/gateway"
	"github.com/opd-ai/go-orbit/pkg/physics"
)

// GravityGateway is the data port the gravity use case reads bodies from
// and writes accelerations back to.
type GravityGateway interface {
	Stars() []gateway.StarData
	PlayerBodies() []gateway.PlayerBodyData
	MissileBodies() []gateway.MissileBodyData
	SetPlayerAccelerations(updates []gateway.PlayerAccelUpdate)
	SetMissileAccelerations(updates []gateway.MissileAccelUpdate)
}

// Gravity adds the gravitational acceleration from every star to every
// player and missile body, once per frame. All accelerations are computed
// from the pre-update snapshot, so one body's update never feeds into
// another body's sum within the same pass.
type Gravity struct {
	repo GravityGateway
}

// NewGravity creates the gravity use case over the given gateway.
func NewGravity(repo GravityGateway) *Gravity {
	return &Gravity{repo: repo}
}

// star is the rich-typed view of a StarData record.
type star struct {
	pos  physics.Vector2D
	mass float64
}

// Execute applies one gravity pass to all players and missiles.
func (g *Gravity) Execute() {
	stars := g.stars()
	g.applyToPlayers(stars)
	g.applyToMissiles(stars)
}

func (g *Gravity) stars() []star {
	data := g.repo.Stars()
	stars := make([]star, len(data))
	for i, s := range data {
		stars[i] = star{pos: s.Pos.Vector(), mass: s.Mass}
	}
	return stars
}

func (g *Gravity) applyToPlayers(stars []star) {
	bodies := g.repo.PlayerBodies()
	updates := make([]gateway.PlayerAccelUpdate, len(bodies))
	for i, body := range bodies {
		acc := body.Acc.Vector().Add(pull(stars, body.Pos.Vector()))
		updates[i] = gateway.PlayerAccelUpdate{
			ID:  body.ID,
			Acc: gateway.Vec2FromVector(acc),
		}
	}
	g.repo.SetPlayerAccelerations(updates)
}

func (g *Gravity) applyToMissiles(stars []star) {
	bodies := g.repo.MissileBodies()
	updates := make([]gateway.MissileAccelUpdate, len(bodies))
	for i, body := range bodies {
		acc := body.Acc.Vector().Add(pull(stars, body.Pos.Vector()))
		updates[i] = gateway.MissileAccelUpdate{
			Player:  body.Player,
			Missile: body.Missile,
			Acc:     gateway.Vec2FromVector(acc),
		}
	}
	g.repo.SetMissileAccelerations(updates)
}

// pull sums the gravitational acceleration of all stars on a body.
func pull(stars []star, bodyPos physics.Vector2D) physics.Vector2D {
	var sum physics.Vector2D
	for _, s := range stars {
		sum = sum.Add(physics.Gravity(s.pos, s.mass, bodyPos))
	}
	return sum
}
