package window

import (
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/lumen/common"
	"github.com/cogentcore/webgpu/wgpu"
)

// Window provides platform windowing and input event handling.
// Wraps platform-specific window implementations with a common interface.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the framebuffer is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetScrollCallback sets the callback for mouse wheel and touchpad scroll events.
	//
	// Parameters:
	//   - callback: function receiving the vertical scroll delta
	SetScrollCallback(callback func(delta common.ScrollDelta))

	// SetKeyCallback sets the callback for key press, repeat and release events.
	// Escape is handled by the window itself and closes it.
	//
	// Parameters:
	//   - callback: function receiving the key and its new state
	SetKeyCallback(callback func(key common.Key, state common.KeyState))

	// SetMouseButtonCallback sets the callback for mouse button press and release events.
	//
	// Parameters:
	//   - callback: function receiving the button and its new state
	SetMouseButtonCallback(callback func(button common.MouseButton, state common.KeyState))

	// SetMouseMoveCallback sets the callback for cursor movement. The callback receives the
	// movement since the previous cursor event, not the absolute position.
	//
	// Parameters:
	//   - callback: function receiving the cursor delta in pixels
	SetMouseMoveCallback(callback func(dx, dy float64))

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// RequestClose asks the message loop to stop after the current iteration.
	RequestClose()

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls the update callback each iteration.
	ProcessMessages()

	// Width returns the current framebuffer width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current framebuffer height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and event callbacks.
type engineWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// maxWidth and maxHeight bound the window size during resize.
	maxWidth, maxHeight int

	// minWidth and minHeight bound the window size during resize.
	minWidth, minHeight int

	// width and height are the current framebuffer size in pixels.
	width, height int

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	cursor cursorTracker

	onUpdate      func()
	onResize      func(width, height int)
	onScroll      func(delta common.ScrollDelta)
	onKey         func(key common.Key, state common.KeyState)
	onMouseButton func(button common.MouseButton, state common.KeyState)
	onMouseMove   func(dx, dy float64)
}

var _ Window = &engineWindow{}

// NewWindow creates a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured, visible window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		title:     "lumen",
		maxWidth:  3840,
		maxHeight: 2160,
		minWidth:  320,
		minHeight: 200,
		width:     1280,
		height:    720,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetScrollCallback(callback func(delta common.ScrollDelta)) {
	w.onScroll = callback
}

func (w *engineWindow) SetKeyCallback(callback func(key common.Key, state common.KeyState)) {
	w.onKey = callback
}

func (w *engineWindow) SetMouseButtonCallback(callback func(button common.MouseButton, state common.KeyState)) {
	w.onMouseButton = callback
}

func (w *engineWindow) SetMouseMoveCallback(callback func(dx, dy float64)) {
	w.onMouseMove = callback
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) RequestClose() {
	platformRequestClose(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}

// cursorCapture reports whether a button event starts (capture true) or ends mouse look.
// ok is false for buttons that do not drive mouse look.
func cursorCapture(button common.MouseButton, state common.KeyState) (capture, ok bool) {
	if button != common.MouseButtonLeft {
		return false, false
	}
	return state == common.KeyPressed, true
}

// cursorTracker turns absolute cursor positions into deltas. With the cursor disabled GLFW
// reports unbounded virtual positions, so the deltas are not clipped at the window edges.
// The first position after creation or reset only establishes the baseline.
type cursorTracker struct {
	x, y  float64
	valid bool
}

func (c *cursorTracker) move(x, y float64) (dx, dy float64) {
	if c.valid {
		dx, dy = x-c.x, y-c.y
	}
	c.x, c.y, c.valid = x, y, true
	return dx, dy
}

func (c *cursorTracker) reset() {
	c.valid = false
}
