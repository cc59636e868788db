package window

import (
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/lumen/common"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// glfwWindow holds the GLFW-specific window state.
type glfwWindow struct {
	parent  *engineWindow
	window  *glfw.Window
	running bool
}

// newPlatformWindow creates the GLFW window with input callbacks and stores it as the internal window.
//
// GLFW reference: https://www.glfw.org/docs/latest/window_guide.html
func newPlatformWindow(w *engineWindow) error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// WebGPU provides its own graphics API, so no OpenGL context is created.
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	win, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to create GLFW window: %w", err)
	}
	win.SetSizeLimits(w.minWidth, w.minHeight, w.maxWidth, w.maxHeight)

	gw := &glfwWindow{
		parent:  w,
		window:  win,
		running: true,
	}
	w.internalWindow = gw

	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			gw.running = false
			win.SetShouldClose(true)
			return
		}
		if w.onKey == nil {
			return
		}
		switch action {
		case glfw.Press, glfw.Repeat:
			w.onKey(common.Key(key), common.KeyPressed)
		case glfw.Release:
			w.onKey(common.Key(key), common.KeyReleased)
		}
	})

	// GLFW reports wheel notches; touchpads report fractional notches on the same scale.
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		if w.onScroll != nil {
			w.onScroll(common.ScrollDelta{Unit: common.ScrollLines, Delta: float32(yoff)})
		}
	})

	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		var b common.MouseButton
		switch button {
		case glfw.MouseButtonLeft:
			b = common.MouseButtonLeft
		case glfw.MouseButtonRight:
			b = common.MouseButtonRight
		case glfw.MouseButtonMiddle:
			b = common.MouseButtonMiddle
		default:
			return
		}
		state := common.KeyReleased
		if action == glfw.Press {
			state = common.KeyPressed
		}
		if capture, ok := cursorCapture(b, state); ok {
			gw.setCursorCaptured(capture)
			w.cursor.reset()
		}
		if w.onMouseButton != nil {
			w.onMouseButton(b, state)
		}
	})

	win.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		dx, dy := w.cursor.move(xpos, ypos)
		if w.onMouseMove != nil && (dx != 0 || dy != 0) {
			w.onMouseMove(dx, dy)
		}
	})

	// Re-entering the window must not produce a jump from wherever the cursor left.
	win.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		w.cursor.reset()
	})

	// The framebuffer size is used rather than the window size, since they differ on high-DPI displays.
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.width = width
		w.height = height
		if w.onResize != nil {
			w.onResize(width, height)
		}
	})

	w.width, w.height = win.GetFramebufferSize()
	return nil
}

// setCursorCaptured hides and locks the cursor while mouse look is held, so motion keeps
// arriving past the window and screen edges. Raw (unaccelerated) motion is used where supported.
func (gw *glfwWindow) setCursorCaptured(captured bool) {
	mode, raw := glfw.CursorNormal, glfw.False
	if captured {
		mode, raw = glfw.CursorDisabled, glfw.True
	}
	gw.window.SetInputMode(glfw.CursorMode, mode)
	if glfw.RawMouseMotionSupported() {
		gw.window.SetInputMode(glfw.RawMouseMotion, raw)
	}
}

// platformGetSurfaceDescriptor creates a platform-appropriate wgpu.SurfaceDescriptor from the GLFW window.
func platformGetSurfaceDescriptor(w *engineWindow) *wgpu.SurfaceDescriptor {
	if w.internalWindow == nil {
		return nil
	}
	gw := w.internalWindow.(*glfwWindow)
	return wgpuglfw.GetSurfaceDescriptor(gw.window)
}

// platformIsRunningCheck returns false if the internal window is nil, the running flag is cleared,
// or GLFW reports ShouldClose.
func platformIsRunningCheck(w *engineWindow) bool {
	if w.internalWindow == nil {
		return false
	}
	gw := w.internalWindow.(*glfwWindow)
	return gw.running && !gw.window.ShouldClose()
}

func platformRequestClose(w *engineWindow) {
	if w.internalWindow == nil {
		return
	}
	gw := w.internalWindow.(*glfwWindow)
	gw.running = false
	gw.window.SetShouldClose(true)
}

// platformCloseWindow destroys the GLFW window and terminates the GLFW library.
func platformCloseWindow(w *engineWindow) error {
	if w.internalWindow == nil {
		return fmt.Errorf("window is not initialized")
	}
	platformRequestClose(w)
	gw := w.internalWindow.(*glfwWindow)
	gw.window.Destroy()
	glfw.Terminate()
	w.internalWindow = nil
	return nil
}

// platformProcessMessages polls GLFW for pending events without blocking.
func platformProcessMessages(w *engineWindow) bool {
	glfw.PollEvents()
	return platformIsRunningCheck(w)
}
