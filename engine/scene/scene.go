// Package scene holds the render context: the camera, the projection, the controller, the light,
// the instance grid, the models, and the renderer that draws them.
//
// A Scene is driven from the frame thread: input handlers feed the controller, Update advances
// the simulation and writes uniforms, and Render records and presents one frame.
package scene

import (
	"errors"
	"fmt"
	"time"

	"github.com/Carmen-Shannon/lumen/common"
	"github.com/Carmen-Shannon/lumen/engine/camera"
	"github.com/Carmen-Shannon/lumen/engine/config"
	"github.com/Carmen-Shannon/lumen/engine/light"
	"github.com/Carmen-Shannon/lumen/engine/model"
	"github.com/Carmen-Shannon/lumen/engine/renderer"
	"github.com/Carmen-Shannon/lumen/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/lumen/engine/renderer/draw"
	"github.com/Carmen-Shannon/lumen/engine/renderer/material"
	"github.com/Carmen-Shannon/lumen/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/lumen/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Pipeline keys registered by NewScene.
const (
	ShadedPipelineKey      = "shaded"
	LightMarkerPipelineKey = "light_marker"
)

// instanceBinding is the provider key of the instance vertex buffer.
const instanceBinding = 0

// markerSize is the edge length of the light marker cube.
const markerSize float32 = 0.5

// ErrNoFramePass is returned by Render when the renderer began a frame without a pass.
var ErrNoFramePass = errors.New("renderer returned no render pass")

// Scene is the explicit render context of the application.
type Scene interface {
	// Update advances the camera, the light and the instances by dt and writes their uniforms.
	// Uniform writes are queued before Render records the frame that uses them.
	//
	// Parameters:
	//   - dt: the time since the previous update
	Update(dt time.Duration)

	// Render records the instanced model and the light marker into a new frame and presents it.
	//
	// Returns:
	//   - error: the BeginFrame error when the surface could not be acquired, to be classified
	//     with renderer.ClassifySurfaceError, or a draw error
	Render() error

	// Resize updates the projection aspect and reconfigures the surface and its depth texture.
	// Zero sizes are ignored.
	//
	// Parameters:
	//   - width: the new framebuffer width in pixels
	//   - height: the new framebuffer height in pixels
	Resize(width, height int)

	// ProcessKeyboard forwards a key event to the camera controller.
	//
	// Parameters:
	//   - key: the key
	//   - state: pressed or released
	//
	// Returns:
	//   - bool: true if the key was consumed
	ProcessKeyboard(key common.Key, state common.KeyState) bool

	// ProcessMouseButton tracks the left button, which gates mouse look.
	//
	// Parameters:
	//   - button: the button
	//   - state: pressed or released
	//
	// Returns:
	//   - bool: true if the event was consumed
	ProcessMouseButton(button common.MouseButton, state common.KeyState) bool

	// ProcessMouseMotion forwards cursor movement to the controller while mouse look is active.
	//
	// Parameters:
	//   - dx: horizontal movement in pixels
	//   - dy: vertical movement in pixels
	//
	// Returns:
	//   - bool: true if the movement was consumed
	ProcessMouseMotion(dx, dy float64) bool

	// ProcessScroll forwards a scroll event to the controller.
	//
	// Parameters:
	//   - delta: the scroll delta
	//
	// Returns:
	//   - bool: true if the event was consumed
	ProcessScroll(delta common.ScrollDelta) bool

	// ApplyTunables applies the runtime-tunable config subset.
	//
	// Parameters:
	//   - t: the new speed, sensitivity, orbit and spin rates
	ApplyTunables(t config.Tunables)

	// Camera returns the scene camera.
	Camera() camera.Camera

	// Projection returns the scene projection.
	Projection() camera.Projection

	// Controller returns the camera controller.
	Controller() camera.CameraController

	// Light returns the scene light.
	Light() light.Light

	// Instances returns the instance grid in buffer order.
	Instances() []model.Instance

	// Release frees the GPU resources owned by the scene.
	Release()
}

type scene struct {
	log *zap.Logger
	r   renderer.Renderer

	cam        camera.Camera
	proj       camera.Projection
	controller camera.CameraController
	uniform    camera.GPUCameraUniform
	light      light.Light

	instances        []model.Instance
	instanceProvider bind_group_provider.BindGroupProvider
	spinRate         float32 // radians per second

	model      model.Model
	marker     model.Model
	showMarker bool

	mouseLook bool

	// writes is reused every Update.
	writes []bind_group_provider.BufferWrite
}

var _ Scene = &scene{}

// NewScene builds the scene described by cfg and uploads every GPU resource it needs through r.
// Textures are decoded before any GPU call is made.
//
// Parameters:
//   - r: the renderer owning the device and surface
//   - cfg: a validated configuration
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the ready-to-render scene
//   - error: an error if a texture cannot be decoded or a GPU resource cannot be created
func NewScene(r renderer.Renderer, cfg *config.Config, options ...SceneBuilderOption) (Scene, error) {
	lightType, err := cfg.LightType()
	if err != nil {
		return nil, err
	}

	width, height := r.Size()
	proj, err := camera.NewProjection(uint32(width), uint32(height),
		mgl32.DegToRad(cfg.Camera.Fovy), cfg.Camera.ZNear, cfg.Camera.ZFar)
	if err != nil {
		return nil, fmt.Errorf("scene projection: %w", err)
	}

	s := &scene{
		log: zap.NewNop(),
		r:   r,
		cam: camera.NewCamera(mgl32.Vec3(cfg.Camera.Position),
			mgl32.DegToRad(cfg.Camera.Yaw), mgl32.DegToRad(cfg.Camera.Pitch)),
		proj:             proj,
		controller:       camera.NewCameraController(cfg.Controller.Speed, cfg.Controller.Sensitivity),
		uniform:          camera.NewGPUCameraUniform(),
		light:            newLight(lightType, cfg.Light),
		instances:        model.NewInstanceGrid(cfg.Instances.PerRow, cfg.Instances.Spacing),
		instanceProvider: bind_group_provider.NewBindGroupProvider("instances"),
		spinRate:         mgl32.DegToRad(cfg.Instances.SpinRate),
		showMarker:       cfg.Light.ShowMarker && lightType.Positional(),
		writes:           make([]bind_group_provider.BufferWrite, 0, 3),
	}

	for _, opt := range options {
		opt(s)
	}

	mat := material.NewMaterial("surface",
		material.WithTexturePaths(cfg.Material.DiffusePath, cfg.Material.NormalPath),
		material.WithDecodeWorkers(cfg.Material.DecodeWorkers),
	)
	if s.model == nil {
		cube, cubeErr := model.NewCubeMesh("cube", 1)
		if cubeErr != nil {
			return nil, cubeErr
		}
		if s.model, err = model.NewModel("cube", model.WithMeshes(cube), model.WithMaterials(mat)); err != nil {
			return nil, err
		}
	}

	markerMesh, err := model.NewCubeMesh("light_marker", markerSize, model.WithUint16Indices())
	if err != nil {
		return nil, err
	}
	if s.marker, err = model.NewModel("light_marker", model.WithMeshes(markerMesh), model.WithMaterials(mat)); err != nil {
		return nil, err
	}

	if err := s.registerPipelines(lightType); err != nil {
		return nil, err
	}
	if err := s.initGPU(lightType); err != nil {
		return nil, err
	}

	s.log.Info("scene ready",
		zap.Stringer("light", lightType),
		zap.Int("instances", len(s.instances)),
		zap.Int("width", width),
		zap.Int("height", height),
	)
	return s, nil
}

func newLight(t light.LightType, c config.LightConfig) light.Light {
	return light.NewLight(t,
		light.WithPosition(mgl32.Vec3(c.Position)),
		light.WithDirection(mgl32.Vec3(c.Direction)),
		light.WithColor(c.Color[0], c.Color[1], c.Color[2]),
		light.WithIntensity(c.Intensity),
		light.WithAttenuation(c.Constant, c.Linear, c.Quadratic),
		light.WithCutOffs(c.CutOff, c.OuterCutOff),
		light.WithOrbitRate(c.OrbitRate),
	)
}

func (s *scene) registerPipelines(lightType light.LightType) error {
	shaded, err := shader.NewShader(ShadedPipelineKey, shader.ShadedSource, lightType)
	if err != nil {
		return err
	}
	marker, err := shader.NewShader(LightMarkerPipelineKey, shader.LightMarkerSource, lightType)
	if err != nil {
		return err
	}
	return s.r.RegisterPipelines(
		pipeline.NewPipeline(ShadedPipelineKey, shaded),
		pipeline.NewPipeline(LightMarkerPipelineKey, marker),
	)
}

// initGPU uploads the textures, meshes and instances and creates every bind group.
func (s *scene) initGPU(lightType light.LightType) error {
	if err := s.r.InitBindGroup(s.cam.BindGroupProvider(), camera.LayoutDescriptor()); err != nil {
		return fmt.Errorf("camera bind group: %w", err)
	}
	if err := s.r.InitBindGroup(s.light.BindGroupProvider(), light.LayoutDescriptor(lightType)); err != nil {
		return fmt.Errorf("light bind group: %w", err)
	}

	for _, mat := range s.model.Materials() {
		if err := s.initMaterial(mat); err != nil {
			return err
		}
	}

	for _, m := range []model.Model{s.model, s.marker} {
		for _, mesh := range m.Meshes() {
			if err := s.r.InitMeshBuffers(mesh.Provider(), mesh.VertexData(), mesh.IndexData(), mesh.IndexCount(), mesh.IndexFormat()); err != nil {
				return fmt.Errorf("mesh %s: %w", mesh.Name(), err)
			}
		}
	}

	if len(s.instances) > 0 {
		if err := s.r.InitVertexBuffer(s.instanceProvider, instanceBinding, model.MarshalInstances(s.instances)); err != nil {
			return fmt.Errorf("instance buffer: %w", err)
		}
	}

	s.writeUniforms(false)
	return nil
}

func (s *scene) initMaterial(mat material.Material) error {
	diffuse, normal, err := mat.Stage()
	if err != nil {
		return err
	}

	p := mat.BindGroupProvider()
	if err := s.r.InitTextureView(p, material.DiffuseTextureBinding, diffuse); err != nil {
		return fmt.Errorf("material %s diffuse: %w", mat.Name(), err)
	}
	if err := s.r.InitTextureView(p, material.NormalTextureBinding, normal); err != nil {
		return fmt.Errorf("material %s normal: %w", mat.Name(), err)
	}
	if err := s.r.InitSampler(p, material.DiffuseSamplerBinding, mat.DiffuseSampler()); err != nil {
		return fmt.Errorf("material %s diffuse sampler: %w", mat.Name(), err)
	}
	if err := s.r.InitSampler(p, material.NormalSamplerBinding, mat.NormalSampler()); err != nil {
		return fmt.Errorf("material %s normal sampler: %w", mat.Name(), err)
	}
	if err := s.r.InitBindGroup(p, material.LayoutDescriptor()); err != nil {
		return fmt.Errorf("material %s bind group: %w", mat.Name(), err)
	}
	return nil
}

func (s *scene) Update(dt time.Duration) {
	s.controller.UpdateCamera(s.cam, dt)
	s.light.Orbit(dt)

	spun := false
	if s.spinRate != 0 && dt > 0 {
		angle := s.spinRate * float32(dt.Seconds())
		for i := range s.instances {
			s.instances[i].Spin(angle)
		}
		spun = true
	}

	s.writeUniforms(spun)
}

// writeUniforms recomputes the camera uniform and queues the camera, light and optionally
// instance buffer writes.
func (s *scene) writeUniforms(instances bool) {
	s.uniform.UpdateViewProj(s.cam, s.proj)

	s.writes = append(s.writes[:0],
		bind_group_provider.BufferWrite{Provider: s.cam.BindGroupProvider(), Binding: 0, Data: s.uniform.Marshal()},
		bind_group_provider.BufferWrite{Provider: s.light.BindGroupProvider(), Binding: 0, Data: s.light.Marshal()},
	)
	if instances && len(s.instances) > 0 {
		s.writes = append(s.writes, bind_group_provider.BufferWrite{
			Provider: s.instanceProvider,
			Binding:  instanceBinding,
			Data:     model.MarshalInstances(s.instances),
		})
	}
	s.r.WriteBuffers(s.writes)
}

func (s *scene) Render() error {
	if err := s.r.BeginFrame(); err != nil {
		return fmt.Errorf("begin frame: %w", err)
	}

	drawErr := s.record()

	// The pass is ended and submitted even when recording failed so the surface texture is released.
	if err := s.r.EndFrame(); err != nil {
		return errors.Join(drawErr, fmt.Errorf("end frame: %w", err))
	}
	s.r.Present()
	return drawErr
}

func (s *scene) record() error {
	pass := s.r.FramePass()
	if pass == nil {
		return ErrNoFramePass
	}

	camProvider := s.cam.BindGroupProvider()
	lightProvider := s.light.BindGroupProvider()

	if shaded := s.r.Pipeline(ShadedPipelineKey); shaded != nil && len(s.instances) > 0 {
		pass.SetPipeline(shaded.RenderPipeline())
		pass.SetVertexBuffer(draw.InstanceSlot, s.instanceProvider.Buffer(instanceBinding), 0, wgpu.WholeSize)
		instances := draw.InstanceRange{Start: 0, End: uint32(len(s.instances))}
		if err := draw.DrawModelInstanced(pass, s.model, instances, camProvider, lightProvider); err != nil {
			return err
		}
	}

	if marker := s.r.Pipeline(LightMarkerPipelineKey); marker != nil && s.showMarker {
		pass.SetPipeline(marker.RenderPipeline())
		draw.DrawLightModel(pass, s.marker, camProvider, lightProvider)
	}
	return nil
}

func (s *scene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.proj.Resize(uint32(width), uint32(height))
	s.r.Resize(width, height)
	s.log.Debug("resized", zap.Int("width", width), zap.Int("height", height))
}

func (s *scene) ProcessKeyboard(key common.Key, state common.KeyState) bool {
	return s.controller.ProcessKeyboard(key, state)
}

func (s *scene) ProcessMouseButton(button common.MouseButton, state common.KeyState) bool {
	if button != common.MouseButtonLeft {
		return false
	}
	s.mouseLook = state == common.KeyPressed
	return true
}

func (s *scene) ProcessMouseMotion(dx, dy float64) bool {
	if !s.mouseLook {
		return false
	}
	s.controller.ProcessMouse(dx, dy)
	return true
}

func (s *scene) ProcessScroll(delta common.ScrollDelta) bool {
	s.controller.ProcessScroll(delta)
	return true
}

func (s *scene) ApplyTunables(t config.Tunables) {
	s.controller.SetSpeed(t.Speed)
	s.controller.SetSensitivity(t.Sensitivity)
	s.light.SetOrbitRate(t.OrbitRateDeg)
	s.spinRate = mgl32.DegToRad(t.SpinRateDeg)
	s.log.Info("tunables applied",
		zap.Float32("speed", t.Speed),
		zap.Float32("sensitivity", t.Sensitivity),
		zap.Float32("orbit_rate_deg", t.OrbitRateDeg),
		zap.Float32("spin_rate_deg", t.SpinRateDeg),
	)
}

func (s *scene) Camera() camera.Camera {
	return s.cam
}

func (s *scene) Projection() camera.Projection {
	return s.proj
}

func (s *scene) Controller() camera.CameraController {
	return s.controller
}

func (s *scene) Light() light.Light {
	return s.light
}

func (s *scene) Instances() []model.Instance {
	return s.instances
}

func (s *scene) Release() {
	s.model.Release()
	for _, mesh := range s.marker.Meshes() {
		mesh.Provider().Release()
	}
	s.instanceProvider.Release()
	s.cam.BindGroupProvider().Release()
	s.light.BindGroupProvider().Release()
}
