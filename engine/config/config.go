// Package config handles loading, validating and watching the renderer configuration.
//
// Values are resolved with priority defaults < file < flags. Files may be YAML or TOML.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/lumen/engine/light"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all renderer settings.
type Config struct {
	Window     WindowConfig     `yaml:"window" toml:"window"`
	Renderer   RendererConfig   `yaml:"renderer" toml:"renderer"`
	Camera     CameraConfig     `yaml:"camera" toml:"camera"`
	Controller ControllerConfig `yaml:"controller" toml:"controller"`
	Light      LightConfig      `yaml:"light" toml:"light"`
	Instances  InstancesConfig  `yaml:"instances" toml:"instances"`
	Material   MaterialConfig   `yaml:"material" toml:"material"`
	Logging    LoggingConfig    `yaml:"logging" toml:"logging"`
}

// WindowConfig holds the window title and initial size.
type WindowConfig struct {
	Title  string `yaml:"title" toml:"title"`
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
}

// RendererConfig holds surface and device settings.
type RendererConfig struct {
	PresentMode     string  `yaml:"present_mode" toml:"present_mode"` // "vsync" or "uncapped"
	MSAA            int     `yaml:"msaa" toml:"msaa"`
	ForceSoftware   bool    `yaml:"force_software" toml:"force_software"`
	ProfileInterval float64 `yaml:"profile_interval_sec" toml:"profile_interval_sec"` // 0 disables the profiler

	// ClearColor is the RGB color each frame is cleared to.
	ClearColor [3]float64 `yaml:"clear_color" toml:"clear_color"`
}

// CameraConfig holds the starting camera pose and the projection parameters.
// Angles are in degrees.
type CameraConfig struct {
	Position [3]float32 `yaml:"position" toml:"position"`
	Yaw      float32    `yaml:"yaw_deg" toml:"yaw_deg"`
	Pitch    float32    `yaml:"pitch_deg" toml:"pitch_deg"`
	Fovy     float32    `yaml:"fovy_deg" toml:"fovy_deg"`
	ZNear    float32    `yaml:"znear" toml:"znear"`
	ZFar     float32    `yaml:"zfar" toml:"zfar"`
}

// ControllerConfig holds the free-fly controller tunables.
type ControllerConfig struct {
	Speed       float32 `yaml:"speed" toml:"speed"`
	Sensitivity float32 `yaml:"sensitivity" toml:"sensitivity"`
}

// LightConfig holds the single scene light. Type is "point", "directional" or "spot".
type LightConfig struct {
	Type        string     `yaml:"type" toml:"type"`
	Position    [3]float32 `yaml:"position" toml:"position"`
	Direction   [3]float32 `yaml:"direction" toml:"direction"`
	Color       [3]float32 `yaml:"color" toml:"color"`
	Intensity   float32    `yaml:"intensity" toml:"intensity"`
	Constant    float32    `yaml:"constant" toml:"constant"`
	Linear      float32    `yaml:"linear" toml:"linear"`
	Quadratic   float32    `yaml:"quadratic" toml:"quadratic"`
	CutOff      float32    `yaml:"cut_off_deg" toml:"cut_off_deg"`
	OuterCutOff float32    `yaml:"outer_cut_off_deg" toml:"outer_cut_off_deg"`
	OrbitRate   float32    `yaml:"orbit_rate_deg" toml:"orbit_rate_deg"`
	ShowMarker  bool       `yaml:"show_marker" toml:"show_marker"`
}

// InstancesConfig holds the instance grid layout.
type InstancesConfig struct {
	PerRow   int     `yaml:"per_row" toml:"per_row"`
	Spacing  float32 `yaml:"spacing" toml:"spacing"`
	SpinRate float32 `yaml:"spin_rate_deg" toml:"spin_rate_deg"` // 0 keeps instances static
}

// MaterialConfig holds optional texture files. Empty paths select procedural textures.
type MaterialConfig struct {
	DiffusePath   string `yaml:"diffuse_path" toml:"diffuse_path"`
	NormalPath    string `yaml:"normal_path" toml:"normal_path"`
	DecodeWorkers int    `yaml:"decode_workers" toml:"decode_workers"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level" toml:"level"`
	File  string `yaml:"file" toml:"file"`
}

// Tunables is the subset of the config that can change while the scene is running.
type Tunables struct {
	Speed        float32
	Sensitivity  float32
	OrbitRateDeg float32
	SpinRateDeg  float32
}

// Default returns a Config holding the built-in defaults.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "lumen",
			Width:  1280,
			Height: 720,
		},
		Renderer: RendererConfig{
			PresentMode:     "vsync",
			MSAA:            4,
			ProfileInterval: 1,
		},
		Camera: CameraConfig{
			Position: [3]float32{0, 5, 10},
			Yaw:      -90,
			Pitch:    -20,
			Fovy:     45,
			ZNear:    0.1,
			ZFar:     100,
		},
		Controller: ControllerConfig{
			Speed:       4,
			Sensitivity: 0.4,
		},
		Light: LightConfig{
			Type:        "spot",
			Position:    [3]float32{1, 1, 1},
			Direction:   [3]float32{-1, -1, -1},
			Color:       [3]float32{1, 1, 1},
			Intensity:   1,
			Constant:    1,
			Linear:      0.09,
			Quadratic:   0.032,
			CutOff:      light.DefaultCutOffDeg,
			OuterCutOff: light.DefaultOuterCutOffDeg,
			OrbitRate:   light.DefaultOrbitRateDeg,
			ShowMarker:  true,
		},
		Instances: InstancesConfig{
			PerRow:  10,
			Spacing: 3,
		},
		Material: MaterialConfig{
			DecodeWorkers: 2,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Tunables returns the runtime-tunable subset of c.
func (c *Config) Tunables() Tunables {
	return Tunables{
		Speed:        c.Controller.Speed,
		Sensitivity:  c.Controller.Sensitivity,
		OrbitRateDeg: c.Light.OrbitRate,
		SpinRateDeg:  c.Instances.SpinRate,
	}
}

// LightType returns the parsed light type.
//
// Returns:
//   - light.LightType: the configured light kind
//   - error: an error wrapping ErrInvalid for unknown names
func (c *Config) LightType() (light.LightType, error) {
	t, err := light.ParseLightType(c.Light.Type)
	if err != nil {
		return t, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return t, nil
}

// Validate reports every invalid setting in c.
//
// Returns:
//   - error: nil, or the joined errors each wrapping ErrInvalid
func (c *Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		fail("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}

	switch strings.ToLower(c.Renderer.PresentMode) {
	case "vsync", "uncapped":
	default:
		fail("present_mode %q must be vsync or uncapped", c.Renderer.PresentMode)
	}
	switch c.Renderer.MSAA {
	case 1, 4, 8, 16:
	default:
		fail("msaa %d must be 1, 4, 8 or 16", c.Renderer.MSAA)
	}
	if c.Renderer.ProfileInterval < 0 {
		fail("profile_interval_sec %v must not be negative", c.Renderer.ProfileInterval)
	}
	for _, v := range c.Renderer.ClearColor {
		if v < 0 || v > 1 {
			fail("clear_color %v components must be in [0, 1]", c.Renderer.ClearColor)
			break
		}
	}

	if c.Camera.Fovy <= 0 || c.Camera.Fovy >= 180 {
		fail("fovy_deg %v must be in (0, 180)", c.Camera.Fovy)
	}
	if c.Camera.ZNear <= 0 || c.Camera.ZFar <= c.Camera.ZNear {
		fail("clip planes znear=%v zfar=%v need 0 < znear < zfar", c.Camera.ZNear, c.Camera.ZFar)
	}

	if c.Controller.Speed < 0 || c.Controller.Sensitivity < 0 {
		fail("speed %v and sensitivity %v must not be negative", c.Controller.Speed, c.Controller.Sensitivity)
	}

	if _, err := c.LightType(); err != nil {
		errs = append(errs, err)
	}
	if c.Light.CutOff <= 0 || c.Light.OuterCutOff >= 90 || c.Light.CutOff >= c.Light.OuterCutOff {
		fail("cut-offs %v/%v need 0 < inner < outer < 90", c.Light.CutOff, c.Light.OuterCutOff)
	}
	// The point light divides by constant + linear*d + quadratic*d².
	if c.Light.Constant <= 0 || c.Light.Linear < 0 || c.Light.Quadratic < 0 {
		fail("attenuation %v/%v/%v needs constant > 0 and linear, quadratic >= 0",
			c.Light.Constant, c.Light.Linear, c.Light.Quadratic)
	}
	if c.Light.Intensity < 0 {
		fail("light intensity %v must not be negative", c.Light.Intensity)
	}

	if c.Instances.PerRow <= 0 {
		fail("per_row %d must be positive", c.Instances.PerRow)
	}
	if c.Instances.Spacing <= 0 {
		fail("spacing %v must be positive", c.Instances.Spacing)
	}

	if c.Material.DecodeWorkers < 0 {
		fail("decode_workers %d must not be negative", c.Material.DecodeWorkers)
	}

	return errors.Join(errs...)
}
