package camera

// CameraController drives the camera's positional state. The camera reads
// Position and Target from its controller each update and derives the view
// matrix from them; the controller owns how those points move.
//
// The controller is an orbit rig around a pivot: spherical coordinates
// (radius, azimuth, elevation) place the camera relative to the target, and
// pan operations translate the whole rig along the camera's local axes so the
// orbit relationship is preserved while moving through the scene.
type CameraController interface {
	// Position returns the camera's world-space position, derived from the
	// target and the current spherical coordinates.
	//
	// Returns:
	//   - x, y, z: world-space camera position
	Position() (x, y, z float32)

	// Target returns the orbit pivot the camera looks at.
	//
	// Returns:
	//   - x, y, z: world-space target position
	Target() (x, y, z float32)

	// SetTarget moves the orbit pivot and recomputes the camera position
	// around it.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetTarget(x, y, z float32)

	// Zoom moves the camera along the view direction by scaling the orbit
	// radius. Positive delta moves toward the target; the radius is clamped
	// to the configured bounds.
	//
	// Parameters:
	//   - delta: zoom input, scaled by the configured zoom speed
	Zoom(delta float32)

	// OrbitLeft rotates one orbit-speed step counterclockwise around the
	// pivot's vertical axis.
	OrbitLeft()

	// OrbitRight rotates one orbit-speed step clockwise around the pivot's
	// vertical axis.
	OrbitRight()

	// OrbitUp tilts one orbit-speed step upward, clamped at MaxElevation.
	OrbitUp()

	// OrbitDown tilts one orbit-speed step downward, clamped at MinElevation.
	OrbitDown()

	// Radius returns the current distance from the target.
	//
	// Returns:
	//   - float32: orbit radius
	Radius() float32

	// Azimuth returns the horizontal orbit angle around the Y axis.
	//
	// Returns:
	//   - float32: azimuth in radians
	Azimuth() float32

	// SetAzimuth sets the horizontal orbit angle directly. Used by mouse-drag
	// orbiting together with MouseSensitivity.
	//
	// Parameters:
	//   - azimuth: new horizontal angle in radians
	SetAzimuth(azimuth float32)

	// Elevation returns the vertical orbit angle above the horizontal plane.
	//
	// Returns:
	//   - float32: elevation in radians
	Elevation() float32

	// SetElevation sets the vertical orbit angle directly, clamped to the
	// elevation bounds.
	//
	// Parameters:
	//   - elevation: new vertical angle in radians
	SetElevation(elevation float32)

	// MinElevation returns the lower elevation clamp.
	//
	// Returns:
	//   - float32: minimum elevation in radians
	MinElevation() float32

	// MaxElevation returns the upper elevation clamp.
	//
	// Returns:
	//   - float32: maximum elevation in radians
	MaxElevation() float32

	// MouseSensitivity returns the radians-per-pixel factor input handlers
	// apply to mouse-drag deltas before SetAzimuth/SetElevation.
	//
	// Returns:
	//   - float32: drag sensitivity
	MouseSensitivity() float32

	// PanRight translates target and position along the camera's local right
	// axis. Negative delta pans left.
	//
	// Parameters:
	//   - delta: pan input, scaled by the configured pan speed
	PanRight(delta float32)

	// PanUp translates target and position along the camera's local up axis.
	// Negative delta pans down.
	//
	// Parameters:
	//   - delta: pan input, scaled by the configured pan speed
	PanUp(delta float32)

	// PanForward translates target and position along the camera's local
	// forward axis. Negative delta pans away from the scene.
	//
	// Parameters:
	//   - delta: pan input, scaled by the configured pan speed
	PanForward(delta float32)
}
