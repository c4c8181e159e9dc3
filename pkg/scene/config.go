// Package scene describes what the renderer draws each frame: the camera,
// the spinning planet and its optional moon, and the per-draw uniforms.
package scene

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/taigrr/planets/pkg/math3d"
	"github.com/taigrr/planets/pkg/render"
	"github.com/taigrr/planets/pkg/shaders"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid scene config")

// Vec is a YAML-friendly 3-vector, written as [x, y, z].
type Vec [3]float64

// V3 converts to math3d.Vec3.
func (v Vec) V3() math3d.Vec3 {
	return math3d.V3(v[0], v[1], v[2])
}

// Config is the scene file format.
type Config struct {
	FPS        int          `yaml:"fps"`
	Background string       `yaml:"background"` // "R,G,B"
	Shader     int          `yaml:"shader"`     // Starting shader, 1-6
	Spin       float64      `yaml:"spin"`       // Planet yaw per frame, radians
	Camera     CameraConfig `yaml:"camera"`
	Moon       MoonConfig   `yaml:"moon"`
}

// CameraConfig places the look-at camera.
type CameraConfig struct {
	Eye    Vec `yaml:"eye"`
	Center Vec `yaml:"center"`
	Up     Vec `yaml:"up"`
}

// MoonConfig describes the companion body drawn while the host shader is
// active.
type MoonConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Host        int     `yaml:"host"`   // Shader that brings the moon out
	Shader      int     `yaml:"shader"` // Shader the moon itself uses
	Translation Vec     `yaml:"translation"`
	Scale       float64 `yaml:"scale"`
	SpinRatio   float64 `yaml:"spin_ratio"` // Moon yaw as a fraction of the planet's
}

// Default returns the built-in scene: a camera five units out on +Z, a
// black background, the star shader, and a small moon beside the lava
// planet.
func Default() Config {
	return Config{
		FPS:        60,
		Background: "0,0,0",
		Shader:     int(shaders.Star),
		Spin:       0.01,
		Camera: CameraConfig{
			Eye:    Vec{0, 0, 5},
			Center: Vec{0, 0, 0},
			Up:     Vec{0, 1, 0},
		},
		Moon: MoonConfig{
			Enabled:     true,
			Host:        int(shaders.Lava),
			Shader:      int(shaders.Moon),
			Translation: Vec{2, 0, 0},
			Scale:       0.3,
			SpinRatio:   0.5,
		},
	}
}

// Load reads a YAML scene file. Keys missing from the file keep their
// Default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read scene: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML scene data on top of Default and validates it.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse scene: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// normalize fills values that cannot meaningfully be zero.
func (c *Config) normalize() {
	if c.Camera.Up == (Vec{}) {
		c.Camera.Up = Vec{0, 1, 0}
	}
	if strings.TrimSpace(c.Background) == "" {
		c.Background = "0,0,0"
	}
	if c.Moon.Shader == 0 {
		c.Moon.Shader = int(shaders.Moon)
	}
}

// Validate reports the first problem with c, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.FPS)
	case !shaders.ID(c.Shader).Valid():
		return fmt.Errorf("%w: unknown shader %d", ErrInvalidConfig, c.Shader)
	case c.Camera.Eye == c.Camera.Center:
		return fmt.Errorf("%w: camera eye and center coincide", ErrInvalidConfig)
	case parallel(c.Camera.Center.V3().Sub(c.Camera.Eye.V3()), c.Camera.Up.V3()):
		return fmt.Errorf("%w: camera up %v is parallel to the view direction", ErrInvalidConfig, c.Camera.Up)
	}
	if _, err := ParseColor(c.Background); err != nil {
		return fmt.Errorf("%w: background: %v", ErrInvalidConfig, err)
	}
	if c.Moon.Enabled {
		switch {
		case !shaders.ID(c.Moon.Host).Valid():
			return fmt.Errorf("%w: unknown moon host shader %d", ErrInvalidConfig, c.Moon.Host)
		case !shaders.ID(c.Moon.Shader).Valid():
			return fmt.Errorf("%w: unknown moon shader %d", ErrInvalidConfig, c.Moon.Shader)
		case c.Moon.Scale <= 0:
			return fmt.Errorf("%w: moon scale must be positive, got %g", ErrInvalidConfig, c.Moon.Scale)
		}
	}
	return nil
}

// parallel reports whether a and b point along the same line, which leaves
// LookAt without a right axis.
func parallel(a, b math3d.Vec3) bool {
	return a.Cross(b).Len() <= 1e-9*a.Len()*b.Len()
}

// ParseColor parses an "R,G,B" triple of 0-255 integers.
func ParseColor(s string) (render.Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return render.Color{}, fmt.Errorf("want R,G,B, got %q", s)
	}
	var rgb [3]uint8
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return render.Color{}, fmt.Errorf("channel %d: %w", i, err)
		}
		rgb[i] = uint8(n)
	}
	return render.RGB(rgb[0], rgb[1], rgb[2]), nil
}
