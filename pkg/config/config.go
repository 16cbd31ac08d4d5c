// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// GameConfig contains the configuration for one orbit game
type GameConfig struct {
	Movement  MovementConfig `json:"movement"`
	Missiles  MissileConfig  `json:"missiles"`
	FrameRate int            `json:"frameRate"`
	Stars     []StarConfig   `json:"stars"`
	Players   []PlayerConfig `json:"players"`
}

// MovementConfig contains player-movement tuning
type MovementConfig struct {
	// AngleDegPerFrame is the rotation step per rotate command, degrees.
	AngleDegPerFrame float64 `json:"angleDegPerFrame"`
	// Thrust is the scalar acceleration per accelerate command.
	Thrust float64 `json:"thrust"`
}

// MissileConfig contains missile-launch tuning
type MissileConfig struct {
	MaxPerPlayer    int     `json:"maxPerPlayer"`
	InitialSpeed    float64 `json:"initialSpeed"`
	InitialDistance float64 `json:"initialDistance"`
}

// StarConfig contains one star's placement and mass
type StarConfig struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Mass float64 `json:"mass"`
}

// PlayerConfig contains one player's id and starting pose. Start positions
// must not coincide with a star; the physical model is undefined there.
type PlayerConfig struct {
	ID       string  `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	AngleDeg float64 `json:"angleDeg"`
}

// LoadConfig loads a configuration from a JSON file and applies
// environment overrides.
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *GameConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns a playable two-player configuration
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Movement: MovementConfig{
			AngleDegPerFrame: 5,
			Thrust:           100,
		},
		Missiles: MissileConfig{
			MaxPerPlayer:    5,
			InitialSpeed:    100,
			InitialDistance: 500,
		},
		FrameRate: 60,
		Stars: []StarConfig{
			{X: 0, Y: 0, Mass: 5000},
		},
		Players: []PlayerConfig{
			{ID: "1", X: -2000, Y: 0, AngleDeg: 0},
			{ID: "2", X: 2000, Y: 0, AngleDeg: 180},
		},
	}
}

// Validate checks the configuration for physically sensible values.
func (c *GameConfig) Validate() error {
	if c.FrameRate <= 0 {
		return fmt.Errorf("frame rate must be positive, got %d", c.FrameRate)
	}
	if c.Movement.Thrust < 0 {
		return fmt.Errorf("thrust must not be negative, got %g", c.Movement.Thrust)
	}
	if c.Missiles.MaxPerPlayer < 0 {
		return fmt.Errorf("missile cap must not be negative, got %d", c.Missiles.MaxPerPlayer)
	}
	if c.Missiles.InitialSpeed < 0 {
		return fmt.Errorf("missile speed must not be negative, got %g", c.Missiles.InitialSpeed)
	}
	for i, star := range c.Stars {
		if star.Mass < 0 {
			return fmt.Errorf("star %d mass must not be negative, got %g", i, star.Mass)
		}
	}
	seen := make(map[string]bool, len(c.Players))
	for _, player := range c.Players {
		if seen[player.ID] {
			return fmt.Errorf("duplicate player id %q", player.ID)
		}
		seen[player.ID] = true
		for j, star := range c.Stars {
			if player.X == star.X && player.Y == star.Y {
				return fmt.Errorf("player %q starts on star %d; positions must be distinct", player.ID, j)
			}
		}
	}
	return nil
}

// applyEnvOverrides lets deployment environments tweak a config file
// without editing it. Supported variables:
//
//	ORBIT_FRAME_RATE   frames per second (int)
//	ORBIT_MAX_MISSILES missile cap per player (int)
//	ORBIT_THRUST       accelerate command magnitude (float)
func (c *GameConfig) applyEnvOverrides() error {
	if v := os.Getenv("ORBIT_FRAME_RATE"); v != "" {
		rate, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid ORBIT_FRAME_RATE %q: %w", v, err)
		}
		c.FrameRate = rate
	}
	if v := os.Getenv("ORBIT_MAX_MISSILES"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid ORBIT_MAX_MISSILES %q: %w", v, err)
		}
		c.Missiles.MaxPerPlayer = limit
	}
	if v := os.Getenv("ORBIT_THRUST"); v != "" {
		thrust, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid ORBIT_THRUST %q: %w", v, err)
		}
		c.Movement.Thrust = thrust
	}
	return nil
}
