// pkg/physics/gravity.go
package physics

// G is the gravitational constant of the simulation. It is deliberately
// fixed rather than configurable; tuning happens through star masses.
const G = 1.0

// Gravity returns the gravitational acceleration a point mass at starPos
// exerts on a body at bodyPos: G·mass/|r|² directed from the body toward
// the star. A body exactly coincident with the star is a precondition
// violation of the physical model and yields an undefined (NaN) result.
func Gravity(starPos Vector2D, mass float64, bodyPos Vector2D) Vector2D {
	r := starPos.Sub(bodyPos)
	return r.Normalize().Scale(G * mass / r.LengthSquared())
}
