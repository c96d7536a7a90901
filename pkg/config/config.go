// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/opd-ai/go-hitbox/pkg/geometry"
	"github.com/opd-ai/go-hitbox/pkg/physics"
)

// Config describes a collision world and the scene simulated in it
type Config struct {
	Name       string           `json:"name" yaml:"name"`
	Collision  CollisionConfig  `json:"collision" yaml:"collision"`
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`
	Obstacles  []ObstacleConfig `json:"obstacles" yaml:"obstacles"`
	Bodies     []BodyConfig     `json:"bodies" yaml:"bodies"`
}

// Point is a 2D coordinate in configuration files
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Vector converts the point to a physics vector
func (p Point) Vector() physics.Vector2D {
	return physics.Vector2D{X: p.X, Y: p.Y}
}

// CollisionConfig fixes the extent and limits of the spatial index
type CollisionConfig struct {
	WorldOrigin       Point `json:"worldOrigin" yaml:"world_origin"`
	WorldSize         Point `json:"worldSize" yaml:"world_size"`
	MaxDepth          int   `json:"maxDepth" yaml:"max_depth"`
	MaxObjectsPerLeaf int   `json:"maxObjectsPerLeaf" yaml:"max_objects_per_leaf"`
}

// World returns the indexed extent
func (c CollisionConfig) World() geometry.Rectangle {
	return geometry.Rectangle{Origin: c.WorldOrigin.Vector(), Size: c.WorldSize.Vector()}
}

// SimulationConfig controls the tick loop of the simulation driver
type SimulationConfig struct {
	TickRate int  `json:"tickRate" yaml:"tick_rate"`
	Ticks    int  `json:"ticks" yaml:"ticks"`
	Realtime bool `json:"realtime" yaml:"realtime"`
}

// ObstacleConfig is a static collider identified by name
type ObstacleConfig struct {
	Name   string        `json:"name" yaml:"name"`
	Shapes []ShapeConfig `json:"shapes" yaml:"shapes"`
}

// BodyConfig is a moving collider
type BodyConfig struct {
	Name     string        `json:"name" yaml:"name"`
	Shapes   []ShapeConfig `json:"shapes" yaml:"shapes"`
	Velocity Point         `json:"velocity" yaml:"velocity"`
}

// Shape types accepted in ShapeConfig.Type
const (
	ShapeCircle            = "circle"
	ShapeRectangle         = "rectangle"
	ShapeOrientedRectangle = "oriented_rectangle"
)

// ShapeConfig describes one hitbox member. Circles use Center and Radius,
// rectangles Origin and Size, oriented rectangles Center, HalfExtents and
// Rotation in degrees.
type ShapeConfig struct {
	Type        string  `json:"type" yaml:"type"`
	Center      Point   `json:"center,omitempty" yaml:"center,omitempty"`
	Radius      float64 `json:"radius,omitempty" yaml:"radius,omitempty"`
	Origin      Point   `json:"origin,omitempty" yaml:"origin,omitempty"`
	Size        Point   `json:"size,omitempty" yaml:"size,omitempty"`
	HalfExtents Point   `json:"halfExtents,omitempty" yaml:"half_extents,omitempty"`
	Rotation    float64 `json:"rotation,omitempty" yaml:"rotation,omitempty"`
}

// ToShape converts the description into a geometry shape
func (s ShapeConfig) ToShape() (geometry.Shape, error) {
	switch strings.ToLower(s.Type) {
	case ShapeCircle:
		if s.Radius < 0 {
			return geometry.Shape{}, fmt.Errorf("circle radius must not be negative, got %g", s.Radius)
		}
		return geometry.CircleShape(geometry.NewCircle(s.Center.Vector(), s.Radius)), nil
	case ShapeRectangle:
		return geometry.RectangleShape(geometry.Rectangle{Origin: s.Origin.Vector(), Size: s.Size.Vector()}), nil
	case ShapeOrientedRectangle:
		if s.HalfExtents.X < 0 || s.HalfExtents.Y < 0 {
			return geometry.Shape{}, fmt.Errorf("half extents must not be negative, got %v", s.HalfExtents)
		}
		return geometry.OrientedRectangleShape(geometry.NewOrientedRectangle(
			s.Center.Vector(), s.HalfExtents.Vector(), physics.DegToRad(s.Rotation))), nil
	default:
		return geometry.Shape{}, fmt.Errorf("unknown shape type %q", s.Type)
	}
}

// BuildBoundingShape converts a list of shape descriptions into one hitbox
func BuildBoundingShape(shapes []ShapeConfig) (geometry.BoundingShape, error) {
	var b geometry.BoundingShape
	for i, sc := range shapes {
		s, err := sc.ToShape()
		if err != nil {
			return geometry.BoundingShape{}, fmt.Errorf("shape %d: %w", i, err)
		}
		b.Add(s)
	}
	return b, nil
}

// isYAML reports whether path should be read and written as YAML
func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// LoadConfig loads a configuration from a file. Files ending in .yaml or
// .yml are parsed as YAML, everything else as JSON.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	var config Config
	if isYAML(path) {
		err = yaml.NewDecoder(file).Decode(&config)
	} else {
		err = json.NewDecoder(file).Decode(&config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveConfig saves a configuration to a file in the format implied by its
// extension
func SaveConfig(config *Config, path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(config)
	} else {
		data, err = json.MarshalIndent(config, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default world with a small demonstration scene
func DefaultConfig() *Config {
	return &Config{
		Name: "default",
		Collision: CollisionConfig{
			WorldOrigin:       Point{X: -2500, Y: -2500},
			WorldSize:         Point{X: 7500, Y: 7500},
			MaxDepth:          4,
			MaxObjectsPerLeaf: 16,
		},
		Simulation: SimulationConfig{
			TickRate: 60,
			Ticks:    600,
			Realtime: false,
		},
		Obstacles: []ObstacleConfig{
			{
				Name: "pillar",
				Shapes: []ShapeConfig{
					{Type: ShapeCircle, Center: Point{X: 0, Y: 0}, Radius: 50},
				},
			},
			{
				Name: "wall",
				Shapes: []ShapeConfig{
					{Type: ShapeRectangle, Origin: Point{X: 400, Y: -200}, Size: Point{X: 40, Y: 400}},
				},
			},
			{
				Name: "ramp",
				Shapes: []ShapeConfig{
					{Type: ShapeOrientedRectangle, Center: Point{X: -400, Y: 300}, HalfExtents: Point{X: 120, Y: 15}, Rotation: 30},
				},
			},
		},
		Bodies: []BodyConfig{
			{
				Name: "player",
				Shapes: []ShapeConfig{
					{Type: ShapeCircle, Center: Point{X: -300, Y: 0}, Radius: 20},
					{Type: ShapeRectangle, Origin: Point{X: -310, Y: -40}, Size: Point{X: 20, Y: 20}},
				},
				Velocity: Point{X: 120, Y: 0},
			},
			{
				Name: "drone",
				Shapes: []ShapeConfig{
					{Type: ShapeOrientedRectangle, Center: Point{X: 300, Y: 300}, HalfExtents: Point{X: 25, Y: 10}, Rotation: 45},
				},
				Velocity: Point{X: -60, Y: -90},
			},
		},
	}
}
