package common

// KeyState is the pressed/released state reported with a key event.
type KeyState int

const (
	// KeyReleased reports that a key went up.
	KeyReleased KeyState = iota

	// KeyPressed reports that a key went down or is auto-repeating.
	KeyPressed
)

// ScrollUnit identifies how a scroll delta was measured by the platform.
type ScrollUnit int

const (
	// ScrollLines is a delta in wheel notches / text lines.
	ScrollLines ScrollUnit = iota

	// ScrollPixels is a delta in screen pixels, as reported by precise touchpads.
	ScrollPixels
)

// ScrollDelta is a single vertical scroll event.
// Positive values scroll "up", away from the user.
type ScrollDelta struct {
	Unit  ScrollUnit
	Delta float32
}

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)
