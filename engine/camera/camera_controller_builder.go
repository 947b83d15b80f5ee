package camera

// CameraControllerOption is a functional option for configuring a
// CameraController via NewCameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithRadius sets the starting distance between the camera and its orbit
// target.
//
// Parameters:
//   - radius: orbit distance in world units
//
// Returns:
//   - CameraControllerOption: option function to apply
func WithRadius(radius float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.radius = radius
	}
}

// WithAzimuth sets the starting horizontal orbit angle. Zero faces the
// target from the +Z axis.
//
// Parameters:
//   - azimuth: angle in radians
//
// Returns:
//   - CameraControllerOption: option function to apply
func WithAzimuth(azimuth float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.azimuth = azimuth
	}
}

// WithElevation sets the starting vertical orbit angle above the horizontal
// plane.
//
// Parameters:
//   - elevation: angle in radians
//
// Returns:
//   - CameraControllerOption: option function to apply
func WithElevation(elevation float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.elevation = elevation
	}
}

// WithTarget sets the orbit pivot the camera looks at.
//
// Parameters:
//   - x, y, z: world-space target coordinates
//
// Returns:
//   - CameraControllerOption: option function to apply
func WithTarget(x, y, z float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.target[0] = x
		cc.target[1] = y
		cc.target[2] = z
	}
}

// WithRadiusBounds sets the zoom clamp range.
//
// Parameters:
//   - min: closest allowed orbit distance
//   - max: farthest allowed orbit distance
//
// Returns:
//   - CameraControllerOption: option function to apply
func WithRadiusBounds(min, max float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.minRadius = min
		cc.maxRadius = max
	}
}

// WithElevationBounds sets the tilt clamp range. Keeping the bounds inside
// ±π/2 prevents the orbit from flipping over the pole.
//
// Parameters:
//   - min: lowest allowed elevation in radians
//   - max: highest allowed elevation in radians
//
// Returns:
//   - CameraControllerOption: option function to apply
func WithElevationBounds(min, max float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.minElevation = min
		cc.maxElevation = max
	}
}

// WithOrbitSpeed sets the angle step applied per OrbitLeft/Right/Up/Down
// call.
//
// Parameters:
//   - speed: radians per step
//
// Returns:
//   - CameraControllerOption: option function to apply
func WithOrbitSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.orbitSpeed = speed
	}
}

// WithMouseSensitivity sets the radians-per-pixel factor for mouse-drag
// orbiting.
//
// Parameters:
//   - sensitivity: drag sensitivity
//
// Returns:
//   - CameraControllerOption: option function to apply
func WithMouseSensitivity(sensitivity float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.mouseSensitivity = sensitivity
	}
}

// WithZoomSpeed sets how far one unit of zoom input moves the orbit radius.
//
// Parameters:
//   - speed: world units per zoom unit
//
// Returns:
//   - CameraControllerOption: option function to apply
func WithZoomSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.zoomSpeed = speed
	}
}

// WithPanSpeed sets how far one unit of pan input translates the orbit rig.
//
// Parameters:
//   - speed: world units per pan unit
//
// Returns:
//   - CameraControllerOption: option function to apply
func WithPanSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.panSpeed = speed
	}
}
