package camera

import "github.com/Carmen-Shannon/lumen/common"

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithPitchLimit sets the largest pitch magnitude in radians. Values outside (0, π/2 - 0.0001]
// are replaced by π/2 - 0.0001 so the view never flips over the up axis.
//
// Parameters:
//   - limit: the pitch limit in radians
//
// Returns:
//   - CameraControllerOption: functional option to set the pitch limit
func WithPitchLimit(limit float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		if limit <= 0 || limit > common.SafeFracPi2 {
			limit = common.SafeFracPi2
		}
		cc.pitchLimit = limit
	}
}

// WithPixelsPerLine sets how many pixels one line of wheel scroll counts as.
//
// Parameters:
//   - pixels: pixels per scroll line, ignored when not positive
//
// Returns:
//   - CameraControllerOption: functional option to set the scroll scale
func WithPixelsPerLine(pixels float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		if pixels > 0 {
			cc.pixelsPerLine = pixels
		}
	}
}
