// Package gateway defines the flat exchange representations that cross the
// boundary between the use-case layer and a storage backend. The rich
// physics value types never leak across this boundary; conversions happen
// exactly at the edge.
package gateway

import "github.com/opd-ai/go-orbit/pkg/physics"

// PlayerID is an opaque comparable key identifying a player.
type PlayerID string

// MissileID addresses a missile within its owner's missile list.
type MissileID int

// Vec2Data is the exchange format for 2D vectors.
type Vec2Data [2]float64

// Vec2FromVector flattens a vector into its exchange format.
func Vec2FromVector(v physics.Vector2D) Vec2Data {
	return Vec2Data{v.X, v.Y}
}

// Vector converts the exchange format back into a vector value.
func (d Vec2Data) Vector() physics.Vector2D {
	return physics.Vector2D{X: d[0], Y: d[1]}
}

// StarData describes an immutable attractant.
type StarData struct {
	Pos  Vec2Data
	Mass float64
}

// PlayerBodyData is the gravity-pass view of a player body.
type PlayerBodyData struct {
	ID  PlayerID
	Pos Vec2Data
	Acc Vec2Data
}

// MissileBodyData is the gravity-pass view of a missile body.
type MissileBodyData struct {
	Player  PlayerID
	Missile MissileID
	Pos     Vec2Data
	Acc     Vec2Data
}

// PlayerAccelUpdate carries a player's new acceleration back to storage.
type PlayerAccelUpdate struct {
	ID  PlayerID
	Acc Vec2Data
}

// MissileAccelUpdate carries a missile's new acceleration back to storage.
type MissileAccelUpdate struct {
	Player  PlayerID
	Missile MissileID
	Acc     Vec2Data
}

// PlayerMotionData is the integration-pass view of a player body.
type PlayerMotionData struct {
	ID  PlayerID
	Pos Vec2Data
	Vel Vec2Data
	Acc Vec2Data
}

// MissileMotionData is the integration-pass view of a missile body.
type MissileMotionData struct {
	Player  PlayerID
	Missile MissileID
	Pos     Vec2Data
	Vel     Vec2Data
	Acc     Vec2Data
}

// PlayerPoseData is the pose a missile launch reads from its owner.
type PlayerPoseData struct {
	Pos      Vec2Data
	Angle    float64
	Velocity Vec2Data
}

// MissileLaunchData describes a newly fired missile. Acceleration starts
// at zero and is therefore not part of the record.
type MissileLaunchData struct {
	Pos      Vec2Data
	Angle    float64
	Velocity Vec2Data
}
