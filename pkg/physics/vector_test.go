// pkg/physics/vector_test.go
package physics

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func vectorsClose(a, b Vector2D) bool {
	return a.Sub(b).Length() < tolerance
}

func TestVector2D_Add(t *testing.T) {
	tests := []struct {
		name     string
		v1       Vector2D
		v2       Vector2D
		expected Vector2D
	}{
		{
			name:     "positive_vectors",
			v1:       Vector2D{X: 3, Y: 4},
			v2:       Vector2D{X: 1, Y: 2},
			expected: Vector2D{X: 4, Y: 6},
		},
		{
			name:     "mixed_signs",
			v1:       Vector2D{X: 5, Y: -3},
			v2:       Vector2D{X: -2, Y: 7},
			expected: Vector2D{X: 3, Y: 4},
		},
		{
			name:     "zero_is_identity",
			v1:       Vector2D{X: 5, Y: -3},
			v2:       Vector2D{},
			expected: Vector2D{X: 5, Y: -3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v1.Add(tt.v2)
			if result != tt.expected {
				t.Errorf("Add() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestVector2D_Sub(t *testing.T) {
	result := Vector2D{X: 3, Y: 4}.Sub(Vector2D{X: 1, Y: 6})
	expected := Vector2D{X: 2, Y: -2}
	if result != expected {
		t.Errorf("Sub() = %v, expected %v", result, expected)
	}
}

func TestVector2D_Div(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector2D
		divisor  float64
		expected Vector2D
	}{
		{
			name:     "halves_components",
			v:        Vector2D{X: 4, Y: -6},
			divisor:  2,
			expected: Vector2D{X: 2, Y: -3},
		},
		{
			name:     "division_by_zero_yields_zero_vector",
			v:        Vector2D{X: 4, Y: -6},
			divisor:  0,
			expected: Vector2D{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Div(tt.divisor)
			if result != tt.expected {
				t.Errorf("Div() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestVector2D_DivScaleRoundTrip(t *testing.T) {
	v := Vector2D{X: 7.3, Y: -0.25}
	for _, s := range []float64{2, -3.5, 0.125, 1e6} {
		result := v.Div(s).Scale(s)
		if !vectorsClose(result, v) {
			t.Errorf("Div(%g).Scale(%g) = %v, expected %v", s, s, result, v)
		}
	}
}

func TestVector2D_Length(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector2D
		expected float64
	}{
		{name: "x_axis", v: Vector2D{X: 2}, expected: 2},
		{name: "negative_y", v: Vector2D{Y: -2}, expected: 2},
		{name: "diagonal", v: Vector2D{X: 5, Y: -2}, expected: math.Sqrt(29)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Length(); got != tt.expected {
				t.Errorf("Length() = %v, expected %v", got, tt.expected)
			}
			if got := tt.v.LengthSquared(); got != tt.expected*tt.expected {
				t.Errorf("LengthSquared() = %v, expected %v", got, tt.expected*tt.expected)
			}
		})
	}
}

func TestVector2D_Normalize(t *testing.T) {
	vectors := []Vector2D{
		{X: 5, Y: -2},
		{X: 0, Y: 0.001},
		{X: -300, Y: 400},
	}
	for _, v := range vectors {
		if length := v.Normalize().Length(); math.Abs(length-1) > tolerance {
			t.Errorf("Normalize(%v).Length() = %v, expected 1", v, length)
		}
	}
}

func TestVector2D_Dot(t *testing.T) {
	got := Vector2D{X: 2, Y: 3}.Dot(Vector2D{X: -4, Y: 5})
	if got != 7 {
		t.Errorf("Dot() = %v, expected 7", got)
	}
}

func TestVector2D_Rotate(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector2D
		angle    float64
		expected Vector2D
	}{
		{
			name:     "quarter_turn",
			v:        Vector2D{X: 1, Y: 0},
			angle:    math.Pi / 2,
			expected: Vector2D{X: 0, Y: 1},
		},
		{
			name:     "half_turn",
			v:        Vector2D{X: 3, Y: -2},
			angle:    math.Pi,
			expected: Vector2D{X: -3, Y: 2},
		},
		{
			name:     "full_turn",
			v:        Vector2D{X: 3, Y: -2},
			angle:    TwoPi,
			expected: Vector2D{X: 3, Y: -2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Rotate(tt.angle)
			if !vectorsClose(result, tt.expected) {
				t.Errorf("Rotate(%g) = %v, expected %v", tt.angle, result, tt.expected)
			}
		})
	}
}

func TestVector2D_Angle(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector2D
		expected float64
	}{
		{name: "positive_x", v: Vector2D{X: 1}, expected: 0},
		{name: "positive_y", v: Vector2D{Y: 2}, expected: math.Pi / 2},
		{name: "negative_y_wraps", v: Vector2D{Y: -2}, expected: 1.5 * math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Angle()
			if math.Abs(got-tt.expected) > tolerance {
				t.Errorf("Angle() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestFromAngle(t *testing.T) {
	result := FromAngle(math.Pi/2, 2)
	if !vectorsClose(result, Vector2D{X: 0, Y: 2}) {
		t.Errorf("FromAngle() = %v, expected (0, 2)", result)
	}
}

func TestTrimAngle(t *testing.T) {
	tests := []struct {
		name     string
		angle    float64
		expected float64
	}{
		{name: "already_trimmed", angle: 0.5, expected: 0.5},
		{name: "one_turn_over", angle: TwoPi + 0.5, expected: 0.5},
		{name: "negative_wraps", angle: -2*TwoPi - 0.5, expected: TwoPi - 0.5},
		{name: "zero", angle: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrimAngle(tt.angle)
			if math.Abs(got-tt.expected) > tolerance {
				t.Errorf("TrimAngle(%g) = %v, expected %v", tt.angle, got, tt.expected)
			}
		})
	}
}

func TestTrimAngle_Properties(t *testing.T) {
	angles := []float64{-100, -7.1, -0.0001, 0, 1, math.Pi, 6.28, 9000.5}
	for _, angle := range angles {
		trimmed := TrimAngle(angle)
		if trimmed < 0 || trimmed >= TwoPi {
			t.Errorf("TrimAngle(%g) = %v, outside [0, 2π)", angle, trimmed)
		}
		if again := TrimAngle(trimmed); math.Abs(again-trimmed) > tolerance {
			t.Errorf("TrimAngle not idempotent for %g: %v then %v", angle, trimmed, again)
		}
		if shifted := TrimAngle(angle + TwoPi); math.Abs(shifted-trimmed) > 1e-6 {
			t.Errorf("TrimAngle(%g+2π) = %v, expected %v", angle, shifted, trimmed)
		}
	}
}
