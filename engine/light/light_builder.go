package light

import (
	"github.com/Carmen-Shannon/lumen/common"
	"github.com/Carmen-Shannon/lumen/engine/renderer/bind_group_provider"
	"github.com/go-gl/mathgl/mgl32"
)

// LightBuilderOption is a function that configures a Light instance during construction.
type LightBuilderOption func(*lightImpl)

// WithPosition is an option builder that sets the world-space position of the light.
//
// Parameters:
//   - position: the world-space position
//
// Returns:
//   - LightBuilderOption: a function that applies the position option to a lightImpl
func WithPosition(position mgl32.Vec3) LightBuilderOption {
	return func(l *lightImpl) {
		l.position = position
	}
}

// WithDirection is an option builder that sets the direction of the light.
// The direction is normalized before storing; a zero vector keeps the default.
//
// Parameters:
//   - direction: the light direction
//
// Returns:
//   - LightBuilderOption: a function that applies the direction option to a lightImpl
func WithDirection(direction mgl32.Vec3) LightBuilderOption {
	return func(l *lightImpl) {
		l.direction = common.NormalizeOr(direction, l.direction)
	}
}

// WithColor is an option builder that sets the RGB color of the light.
//
// Parameters:
//   - r: the red color component
//   - g: the green color component
//   - b: the blue color component
//
// Returns:
//   - LightBuilderOption: a function that applies the color option to a lightImpl
func WithColor(r, g, b float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.color = [3]float32{r, g, b}
	}
}

// WithIntensity is an option builder that sets the scalar intensity multiplier.
//
// Parameters:
//   - intensity: the intensity value
//
// Returns:
//   - LightBuilderOption: a function that applies the intensity option to a lightImpl
func WithIntensity(intensity float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.intensity = intensity
	}
}

// WithAttenuation is an option builder that sets the point light attenuation terms.
//
// Parameters:
//   - constant: the constant term
//   - linear: the linear term
//   - quadratic: the quadratic term
//
// Returns:
//   - LightBuilderOption: a function that applies the attenuation option to a lightImpl
func WithAttenuation(constant, linear, quadratic float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.constant, l.linear, l.quadratic = constant, linear, quadratic
	}
}

// WithCutOffs is an option builder that sets the inner and outer cone half-angles
// for spot lights. Angles are specified in degrees and converted to cosines internally,
// which is the format required by the GPU shader.
//
// Parameters:
//   - innerDeg: inner cone half-angle in degrees
//   - outerDeg: outer cone half-angle in degrees
//
// Returns:
//   - LightBuilderOption: a function that applies the cut-off option to a lightImpl
func WithCutOffs(innerDeg, outerDeg float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.cutOff = common.CosDeg(innerDeg)
		l.outerCutOff = common.CosDeg(outerDeg)
	}
}

// WithOrbitRate is an option builder that sets how fast Orbit turns the light about +Y.
//
// Parameters:
//   - degPerSecond: orbit speed in degrees per second, 0 disables orbiting
//
// Returns:
//   - LightBuilderOption: a function that applies the orbit rate option to a lightImpl
func WithOrbitRate(degPerSecond float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.orbitRate = mgl32.DegToRad(degPerSecond)
	}
}

// WithBindGroupProvider is an option builder that sets the provider holding the light's
// GPU resources. Defaults to a fresh provider labeled "light".
//
// Parameters:
//   - provider: the bind group provider
//
// Returns:
//   - LightBuilderOption: a function that applies the provider option to a lightImpl
func WithBindGroupProvider(provider bind_group_provider.BindGroupProvider) LightBuilderOption {
	return func(l *lightImpl) {
		l.bindGroupProvider = provider
	}
}
