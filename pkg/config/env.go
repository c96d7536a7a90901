// pkg/config/env.go
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by ApplyEnvironmentOverrides
const (
	EnvWorldSize  = "HITBOX_WORLD_SIZE"
	EnvMaxDepth   = "HITBOX_MAX_DEPTH"
	EnvMaxObjects = "HITBOX_MAX_OBJECTS"
	EnvTickRate   = "HITBOX_TICK_RATE"
	EnvTicks      = "HITBOX_TICKS"
	EnvRealtime   = "HITBOX_REALTIME"
	EnvSceneName  = "HITBOX_SCENE_NAME"
)

// ValidationError reports the field that failed validation
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// ApplyEnvironmentOverrides replaces config values with any HITBOX_*
// variables that are set and then validates the result. A world size
// override applies to both axes and keeps the origin.
func ApplyEnvironmentOverrides(config *Config) error {
	size := getEnvAsFloatOrDefault(EnvWorldSize, 0)
	if size > 0 {
		config.Collision.WorldSize = Point{X: size, Y: size}
	}
	config.Collision.MaxDepth = getEnvAsIntOrDefault(EnvMaxDepth, config.Collision.MaxDepth)
	config.Collision.MaxObjectsPerLeaf = getEnvAsIntOrDefault(EnvMaxObjects, config.Collision.MaxObjectsPerLeaf)
	config.Simulation.TickRate = getEnvAsIntOrDefault(EnvTickRate, config.Simulation.TickRate)
	config.Simulation.Ticks = getEnvAsIntOrDefault(EnvTicks, config.Simulation.Ticks)
	config.Simulation.Realtime = getEnvAsBoolOrDefault(EnvRealtime, config.Simulation.Realtime)
	config.Name = getEnvOrDefault(EnvSceneName, config.Name)

	return Validate(config)
}

// Validate checks the ranges the collision world and simulation depend on
func Validate(config *Config) error {
	c := config.Collision
	if c.WorldSize.X <= 0 || c.WorldSize.Y <= 0 {
		return &ValidationError{Field: "WorldSize", Message: fmt.Sprintf("must be positive, got %v", c.WorldSize)}
	}
	if c.MaxDepth < 1 || c.MaxDepth > 32 {
		return &ValidationError{Field: "MaxDepth", Message: fmt.Sprintf("must be between 1 and 32, got %d", c.MaxDepth)}
	}
	if c.MaxObjectsPerLeaf < 1 {
		return &ValidationError{Field: "MaxObjectsPerLeaf", Message: fmt.Sprintf("must be at least 1, got %d", c.MaxObjectsPerLeaf)}
	}

	s := config.Simulation
	if s.TickRate < 1 || s.TickRate > 1000 {
		return &ValidationError{Field: "TickRate", Message: fmt.Sprintf("must be between 1 and 1000, got %d", s.TickRate)}
	}
	if s.Ticks < 0 {
		return &ValidationError{Field: "Ticks", Message: fmt.Sprintf("must not be negative, got %d", s.Ticks)}
	}

	names := make(map[string]bool)
	for i, o := range config.Obstacles {
		if o.Name == "" {
			return &ValidationError{Field: fmt.Sprintf("Obstacles[%d].Name", i), Message: "must not be empty"}
		}
		if names[o.Name] {
			return &ValidationError{Field: fmt.Sprintf("Obstacles[%d].Name", i), Message: fmt.Sprintf("duplicate name %q", o.Name)}
		}
		names[o.Name] = true
		if _, err := BuildBoundingShape(o.Shapes); err != nil {
			return &ValidationError{Field: fmt.Sprintf("Obstacles[%d].Shapes", i), Message: err.Error()}
		}
	}
	for i, b := range config.Bodies {
		if _, err := BuildBoundingShape(b.Shapes); err != nil {
			return &ValidationError{Field: fmt.Sprintf("Bodies[%d].Shapes", i), Message: err.Error()}
		}
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
