package common

// Key is a virtual key code for cross-platform input handling.
// Values match GLFW key codes, which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
type Key uint32

const (
	KeyW     Key = 87  // W key (ASCII)
	KeyA     Key = 65  // A key (ASCII)
	KeyS     Key = 83  // S key (ASCII)
	KeyD     Key = 68  // D key (ASCII)
	KeyQ     Key = 81  // Q key (ASCII)
	KeyE     Key = 69  // E key (ASCII)
	KeySpace Key = 32  // Spacebar (ASCII)
	KeyEsc   Key = 256 // Escape key (GLFW)
)

// Arrow keys
const (
	KeyRight Key = 262 // Right arrow (GLFW)
	KeyLeft  Key = 263 // Left arrow (GLFW)
	KeyDown  Key = 264 // Down arrow (GLFW)
	KeyUp    Key = 265 // Up arrow (GLFW)
)

// Additional non-printable keys
const (
	KeyLeftShift  Key = 340 // Left Shift (GLFW)
	KeyRightShift Key = 344 // Right Shift (GLFW)
)
