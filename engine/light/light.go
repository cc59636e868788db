package light

import (
	"fmt"
	"strings"
	"time"

	"github.com/Carmen-Shannon/lumen/common"
	"github.com/Carmen-Shannon/lumen/engine/renderer/bind_group_provider"
	"github.com/go-gl/mathgl/mgl32"
)

// LightType identifies the kind of light source.
type LightType int

const (
	// LightTypePoint represents a light that emits in all directions from a position
	// and attenuates with distance.
	LightTypePoint LightType = iota

	// LightTypeDirectional represents a light with no position, only direction.
	// Used for large distant sources like the sun. Affects all fragments uniformly.
	LightTypeDirectional

	// LightTypeSpot represents a light that emits in a cone from a position along a direction.
	// Fragments between the inner and outer cut-off fade out smoothly.
	LightTypeSpot
)

// String returns the config name of the light type.
func (t LightType) String() string {
	switch t {
	case LightTypePoint:
		return "point"
	case LightTypeDirectional:
		return "directional"
	case LightTypeSpot:
		return "spot"
	}
	return fmt.Sprintf("LightType(%d)", int(t))
}

// Positional reports whether lights of this type have a world-space position.
func (t LightType) Positional() bool {
	return t == LightTypePoint || t == LightTypeSpot
}

// ParseLightType converts a config name ("point", "directional" or "spot") into a LightType.
//
// Parameters:
//   - name: the light type name, case-insensitive
//
// Returns:
//   - LightType: the parsed type
//   - error: error if the name is not recognized
func ParseLightType(name string) (LightType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "point":
		return LightTypePoint, nil
	case "directional":
		return LightTypeDirectional, nil
	case "spot":
		return LightTypeSpot, nil
	}
	return 0, fmt.Errorf("unknown light type %q", name)
}

// lightImpl is the implementation of the Light interface.
// Fields that do not apply to the light's type are kept but never serialized.
type lightImpl struct {
	lightType LightType
	position  mgl32.Vec3
	direction mgl32.Vec3 // always unit length
	color     [3]float32
	intensity float32

	constant  float32
	linear    float32
	quadratic float32

	cutOff      float32 // stored as cos(angle in radians)
	outerCutOff float32 // stored as cos(angle in radians)

	orbitRate float32 // radians per second about world +Y

	bindGroupProvider bind_group_provider.BindGroupProvider
}

// Light defines the interface for the single light source of a scene.
//
// All light types (point, directional, spot) share this interface; type-specific
// properties (e.g. cut-offs for spot lights) are ignored when not applicable.
// The light is marshaled into its uniform buffer every frame through Marshal, which
// selects the byte layout matching the light's type.
type Light interface {
	// Type returns the kind of light source.
	//
	// Returns:
	//   - LightType: the light type (point, directional, or spot)
	Type() LightType

	// Position returns the world-space position of the light.
	// Meaningless for directional lights.
	//
	// Returns:
	//   - mgl32.Vec3: position as (x, y, z)
	Position() mgl32.Vec3

	// Direction returns the normalized direction of the light.
	// For directional lights this is the light direction. For spot lights this
	// is the cone axis. Meaningless for point lights.
	//
	// Returns:
	//   - mgl32.Vec3: normalized direction as (x, y, z)
	Direction() mgl32.Vec3

	// Color returns the RGB color of the light.
	//
	// Returns:
	//   - [3]float32: color as (r, g, b)
	Color() [3]float32

	// Intensity returns the scalar intensity multiplier for the light.
	//
	// Returns:
	//   - float32: the intensity value
	Intensity() float32

	// Attenuation returns the constant, linear and quadratic distance attenuation
	// terms used by point lights.
	//
	// Returns:
	//   - constant: the constant term
	//   - linear: the linear term
	//   - quadratic: the quadratic term
	Attenuation() (constant, linear, quadratic float32)

	// CutOff returns the cosine of the inner cone half-angle for spot lights.
	//
	// Returns:
	//   - float32: cos(inner half-angle)
	CutOff() float32

	// OuterCutOff returns the cosine of the outer cone half-angle for spot lights.
	// Fragments outside this angle receive no light from the spot.
	//
	// Returns:
	//   - float32: cos(outer half-angle)
	OuterCutOff() float32

	// OrbitRate returns the angular speed of Orbit in radians per second.
	//
	// Returns:
	//   - float32: the orbit rate
	OrbitRate() float32

	// BindGroupProvider returns the provider holding the light uniform buffer and bind group.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the bind group provider
	BindGroupProvider() bind_group_provider.BindGroupProvider

	// SetPosition sets the world-space position of the light.
	//
	// Parameters:
	//   - position: world-space coordinates
	SetPosition(position mgl32.Vec3)

	// SetDirection sets the direction of the light and normalizes it.
	// A zero-length direction leaves the current direction unchanged.
	//
	// Parameters:
	//   - direction: the new direction (will be normalized)
	SetDirection(direction mgl32.Vec3)

	// SetColor sets the RGB color of the light.
	//
	// Parameters:
	//   - r, g, b: color components
	SetColor(r, g, b float32)

	// SetIntensity sets the scalar intensity multiplier.
	//
	// Parameters:
	//   - intensity: the intensity value
	SetIntensity(intensity float32)

	// SetAttenuation sets the point light distance attenuation terms.
	//
	// Parameters:
	//   - constant, linear, quadratic: attenuation terms
	SetAttenuation(constant, linear, quadratic float32)

	// SetCutOffs sets the inner and outer cone half-angles for spot lights.
	// Angles are specified in degrees and stored internally as cosines.
	//
	// Parameters:
	//   - innerDeg: inner cone half-angle in degrees
	//   - outerDeg: outer cone half-angle in degrees
	SetCutOffs(innerDeg, outerDeg float32)

	// SetOrbitRate sets the angular speed of Orbit.
	//
	// Parameters:
	//   - degPerSecond: orbit speed in degrees per second
	SetOrbitRate(degPerSecond float32)

	// Orbit rotates the light about world +Y by OrbitRate * dt. Spot and directional
	// lights rotate their direction; point lights rotate their position about the origin.
	//
	// Parameters:
	//   - dt: elapsed time since the previous frame
	Orbit(dt time.Duration)

	// Size returns the byte size of the uniform produced by Marshal.
	//
	// Returns:
	//   - int: 48 for point and spot lights, 32 for directional lights
	Size() int

	// Marshal serializes the light into the uniform layout of its type.
	//
	// Returns:
	//   - []byte: little-endian uniform data ready for upload
	Marshal() []byte
}

var _ Light = &lightImpl{}

// NewLight creates a new Light of the specified type with sensible defaults and
// any provided options applied.
//
// Defaults: white color, intensity 1, position (1, 1, 1), direction (-1, -1, -1) normalized,
// attenuation (1, 0.09, 0.032), cut-offs 12.5° / 17.5°, orbit 60°/s.
//
// Parameters:
//   - lightType: the kind of light to create (point, directional, or spot)
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(lightType LightType, opts ...LightBuilderOption) Light {
	l := &lightImpl{
		lightType:   lightType,
		position:    mgl32.Vec3{1, 1, 1},
		direction:   mgl32.Vec3{-1, -1, -1}.Normalize(),
		color:       [3]float32{1, 1, 1},
		intensity:   1.0,
		constant:    1.0,
		linear:      0.09,
		quadratic:   0.032,
		cutOff:      common.CosDeg(DefaultCutOffDeg),
		outerCutOff: common.CosDeg(DefaultOuterCutOffDeg),
		orbitRate:   mgl32.DegToRad(DefaultOrbitRateDeg),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.bindGroupProvider == nil {
		l.bindGroupProvider = bind_group_provider.NewBindGroupProvider("light")
	}
	return l
}

// Default tunables applied by NewLight.
const (
	DefaultCutOffDeg      float32 = 12.5
	DefaultOuterCutOffDeg float32 = 17.5
	DefaultOrbitRateDeg   float32 = 60
)

func (l *lightImpl) Type() LightType {
	return l.lightType
}

func (l *lightImpl) Position() mgl32.Vec3 {
	return l.position
}

func (l *lightImpl) Direction() mgl32.Vec3 {
	return l.direction
}

func (l *lightImpl) Color() [3]float32 {
	return l.color
}

func (l *lightImpl) Intensity() float32 {
	return l.intensity
}

func (l *lightImpl) Attenuation() (constant, linear, quadratic float32) {
	return l.constant, l.linear, l.quadratic
}

func (l *lightImpl) CutOff() float32 {
	return l.cutOff
}

func (l *lightImpl) OuterCutOff() float32 {
	return l.outerCutOff
}

func (l *lightImpl) OrbitRate() float32 {
	return l.orbitRate
}

func (l *lightImpl) BindGroupProvider() bind_group_provider.BindGroupProvider {
	return l.bindGroupProvider
}

func (l *lightImpl) SetPosition(position mgl32.Vec3) {
	l.position = position
}

func (l *lightImpl) SetDirection(direction mgl32.Vec3) {
	l.direction = common.NormalizeOr(direction, l.direction)
}

func (l *lightImpl) SetColor(r, g, b float32) {
	l.color = [3]float32{r, g, b}
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.intensity = intensity
}

func (l *lightImpl) SetAttenuation(constant, linear, quadratic float32) {
	l.constant, l.linear, l.quadratic = constant, linear, quadratic
}

func (l *lightImpl) SetCutOffs(innerDeg, outerDeg float32) {
	l.cutOff = common.CosDeg(innerDeg)
	l.outerCutOff = common.CosDeg(outerDeg)
}

func (l *lightImpl) SetOrbitRate(degPerSecond float32) {
	l.orbitRate = mgl32.DegToRad(degPerSecond)
}

func (l *lightImpl) Orbit(dt time.Duration) {
	angle := l.orbitRate * float32(dt.Seconds())
	if angle == 0 {
		return
	}
	rotation := mgl32.QuatRotate(angle, common.WorldUp)

	switch l.lightType {
	case LightTypePoint:
		l.position = rotation.Rotate(l.position)
	default:
		// Renormalize so float drift never accumulates over long runs.
		l.direction = common.NormalizeOr(rotation.Rotate(l.direction), l.direction)
	}
}

func (l *lightImpl) Size() int {
	return l.uniform().Size()
}

func (l *lightImpl) Marshal() []byte {
	return l.uniform().Marshal()
}

// uniform builds the GPU layout for the light's type.
func (l *lightImpl) uniform() common.Marshaler {
	switch l.lightType {
	case LightTypeDirectional:
		return &GPUDirectionalLight{
			Direction: l.direction,
			Intensity: l.intensity,
			Color:     l.color,
		}
	case LightTypeSpot:
		return &GPUSpotLight{
			Position:    l.position,
			CutOff:      l.cutOff,
			Direction:   l.direction,
			Intensity:   l.intensity,
			Color:       l.color,
			OuterCutOff: l.outerCutOff,
		}
	default:
		return &GPUPointLight{
			Position:  l.position,
			Intensity: l.intensity,
			Color:     l.color,
			Constant:  l.constant,
			Linear:    l.linear,
			Quadratic: l.quadratic,
		}
	}
}
