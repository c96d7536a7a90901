package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opd-ai/go-hitbox/pkg/geometry"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config == nil {
		t.Fatal("DefaultConfig returned nil")
	}

	world := config.Collision.World()
	if world.Origin.X != -2500 || world.Origin.Y != -2500 {
		t.Errorf("Expected world origin (-2500, -2500), got %v", world.Origin)
	}
	if world.Size.X != 7500 || world.Size.Y != 7500 {
		t.Errorf("Expected world size (7500, 7500), got %v", world.Size)
	}
	if config.Collision.MaxDepth != 4 {
		t.Errorf("Expected MaxDepth 4, got %d", config.Collision.MaxDepth)
	}
	if config.Collision.MaxObjectsPerLeaf != 16 {
		t.Errorf("Expected MaxObjectsPerLeaf 16, got %d", config.Collision.MaxObjectsPerLeaf)
	}
	if config.Simulation.TickRate != 60 {
		t.Errorf("Expected TickRate 60, got %d", config.Simulation.TickRate)
	}

	if err := Validate(config); err != nil {
		t.Errorf("Default config should validate, got %v", err)
	}
}

func TestDefaultConfig_ShapesInsideWorld(t *testing.T) {
	config := DefaultConfig()
	world := config.Collision.World()

	check := func(name string, shapes []ShapeConfig) {
		b, err := BuildBoundingShape(shapes)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !b.HasArea() {
			t.Errorf("%s has no area", name)
		}
		if !world.IntersectsRectangle(b.Bounds()) {
			t.Errorf("%s lies outside the world", name)
		}
	}
	for _, o := range config.Obstacles {
		check(o.Name, o.Shapes)
	}
	for _, b := range config.Bodies {
		check(b.Name, b.Shapes)
	}
}

func TestShapeConfig_ToShape(t *testing.T) {
	tests := []struct {
		name        string
		config      ShapeConfig
		expectKind  geometry.Kind
		expectError bool
	}{
		{
			name:       "Circle",
			config:     ShapeConfig{Type: ShapeCircle, Center: Point{X: 1, Y: 2}, Radius: 3},
			expectKind: geometry.KindCircle,
		},
		{
			name:       "RectangleUpperCase",
			config:     ShapeConfig{Type: "RECTANGLE", Origin: Point{X: 1, Y: 2}, Size: Point{X: 4, Y: 5}},
			expectKind: geometry.KindRectangle,
		},
		{
			name:       "OrientedRectangle",
			config:     ShapeConfig{Type: ShapeOrientedRectangle, Center: Point{X: 1, Y: 2}, HalfExtents: Point{X: 3, Y: 1}, Rotation: 30},
			expectKind: geometry.KindOrientedRectangle,
		},
		{
			name:        "NegativeRadius",
			config:      ShapeConfig{Type: ShapeCircle, Radius: -1},
			expectError: true,
		},
		{
			name:        "NegativeHalfExtents",
			config:      ShapeConfig{Type: ShapeOrientedRectangle, HalfExtents: Point{X: -1, Y: 1}},
			expectError: true,
		},
		{
			name:        "Unknown",
			config:      ShapeConfig{Type: "hexagon"},
			expectError: true,
		},
		{
			name:        "LineNotAllowed",
			config:      ShapeConfig{Type: "line"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape, err := tt.config.ToShape()
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error, got shape %v", shape)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if shape.Kind() != tt.expectKind {
				t.Errorf("Expected kind %v, got %v", tt.expectKind, shape.Kind())
			}
		})
	}
}

func TestShapeConfig_RotationInDegrees(t *testing.T) {
	sc := ShapeConfig{Type: ShapeOrientedRectangle, HalfExtents: Point{X: 1, Y: 1}, Rotation: 90}
	shape, err := sc.ToShape()
	if err != nil {
		t.Fatal(err)
	}
	r, ok := shape.OrientedRectangle()
	if !ok {
		t.Fatal("Expected oriented rectangle")
	}
	if math.Abs(r.Rotation-math.Pi/2) > 1e-12 {
		t.Errorf("Expected rotation pi/2, got %f", r.Rotation)
	}
}

func TestBuildBoundingShape_ReportsIndex(t *testing.T) {
	_, err := BuildBoundingShape([]ShapeConfig{
		{Type: ShapeCircle, Radius: 1},
		{Type: "triangle"},
	})
	if err == nil {
		t.Fatal("Expected error for unknown shape")
	}
	if !strings.Contains(err.Error(), "shape 1") {
		t.Errorf("Expected error to name shape 1, got %q", err.Error())
	}
}

func TestSaveLoadConfig_RoundTrip(t *testing.T) {
	for _, name := range []string{"scene.json", "scene.yaml", "scene.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			saved := DefaultConfig()
			saved.Name = "round_trip"

			if err := SaveConfig(saved, path); err != nil {
				t.Fatalf("SaveConfig failed: %v", err)
			}

			loaded, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("LoadConfig failed: %v", err)
			}

			if loaded.Name != "round_trip" {
				t.Errorf("Expected name 'round_trip', got %q", loaded.Name)
			}
			if loaded.Collision != saved.Collision {
				t.Errorf("Expected collision config %+v, got %+v", saved.Collision, loaded.Collision)
			}
			if loaded.Simulation != saved.Simulation {
				t.Errorf("Expected simulation config %+v, got %+v", saved.Simulation, loaded.Simulation)
			}
			if len(loaded.Obstacles) != len(saved.Obstacles) {
				t.Fatalf("Expected %d obstacles, got %d", len(saved.Obstacles), len(loaded.Obstacles))
			}
			for i := range saved.Obstacles {
				if loaded.Obstacles[i].Name != saved.Obstacles[i].Name {
					t.Errorf("Obstacle %d: expected %q, got %q", i, saved.Obstacles[i].Name, loaded.Obstacles[i].Name)
				}
				if loaded.Obstacles[i].Shapes[0] != saved.Obstacles[i].Shapes[0] {
					t.Errorf("Obstacle %d: shape mismatch %+v vs %+v", i, saved.Obstacles[i].Shapes[0], loaded.Obstacles[i].Shapes[0])
				}
			}
			if len(loaded.Bodies) != len(saved.Bodies) {
				t.Fatalf("Expected %d bodies, got %d", len(saved.Bodies), len(loaded.Bodies))
			}
			if loaded.Bodies[0].Velocity != saved.Bodies[0].Velocity {
				t.Errorf("Expected velocity %v, got %v", saved.Bodies[0].Velocity, loaded.Bodies[0].Velocity)
			}
		})
	}
}

func TestLoadConfig_YAMLKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	data := `name: arena
collision:
  world_origin: {x: -100, y: -100}
  world_size: {x: 200, y: 200}
  max_depth: 6
  max_objects_per_leaf: 8
simulation:
  tick_rate: 30
  ticks: 90
obstacles:
  - name: rock
    shapes:
      - type: circle
        center: {x: 10, y: 10}
        radius: 5
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Collision.MaxDepth != 6 || config.Collision.MaxObjectsPerLeaf != 8 {
		t.Errorf("Unexpected tree limits %+v", config.Collision)
	}
	if config.Simulation.TickRate != 30 || config.Simulation.Ticks != 90 {
		t.Errorf("Unexpected simulation config %+v", config.Simulation)
	}
	if len(config.Obstacles) != 1 || config.Obstacles[0].Shapes[0].Radius != 5 {
		t.Errorf("Unexpected obstacles %+v", config.Obstacles)
	}
	if err := Validate(config); err != nil {
		t.Errorf("Expected valid config, got %v", err)
	}
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	config, err := LoadConfig("/path/that/does/not/exist/config.json")

	if err == nil {
		t.Error("Expected error when loading non-existent file, got nil")
	}
	if config != nil {
		t.Error("Expected nil config when file not found, got non-nil")
	}
	if err != nil && !strings.Contains(err.Error(), "failed to open config file") {
		t.Errorf("Expected open error, got '%s'", err.Error())
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected wrapped os.ErrNotExist, got %v", err)
	}
}

func TestLoadConfig_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		file string
		data string
	}{
		{"InvalidJSON", "invalid.json", `{"name": "x", invalid json}`},
		{"InvalidYAML", "invalid.yaml", "collision: [unterminated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatalf("Failed to write file: %v", err)
			}

			config, err := LoadConfig(path)
			if err == nil {
				t.Error("Expected parse error, got nil")
			}
			if config != nil {
				t.Error("Expected nil config on parse error")
			}
			if err != nil && !strings.Contains(err.Error(), "failed to parse config file") {
				t.Errorf("Expected parse error, got '%s'", err.Error())
			}
		})
	}
}

func TestSaveConfig_InvalidPath(t *testing.T) {
	err := SaveConfig(DefaultConfig(), filepath.Join(t.TempDir(), "missing", "config.json"))

	if err == nil {
		t.Fatal("Expected error when saving to invalid path, got nil")
	}
	if !strings.Contains(err.Error(), "failed to write config file") {
		t.Errorf("Expected write error, got '%s'", err.Error())
	}
}
