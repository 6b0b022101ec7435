package platform

// Display controls the system-wide forced-grayscale rendering flag.
// The flag is owned and persisted by the OS display subsystem; implementations
// only read it and conditionally rewrite it.
type Display interface {
	// UsesForceToGray reports whether forced grayscale rendering is active.
	UsesForceToGray() (bool, error)

	// SetForceToGray turns forced grayscale rendering on or off.
	// The change takes effect system-wide before the call returns.
	SetForceToGray(on bool) error
}
