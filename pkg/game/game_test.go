// pkg/game/game_test.go
package game

import (
	"math"

	"github.com/opd-ai/go-orbit/pkg/gateway"
)

const tolerance = 1e-9

func vec2Close(a, b gateway.Vec2Data) bool {
	return math.Abs(a[0]-b[0]) < tolerance && math.Abs(a[1]-b[1]) < tolerance
}
