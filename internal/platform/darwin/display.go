//go:build darwin && cgo

package darwin

/*
#cgo LDFLAGS: -framework ApplicationServices
#include <ApplicationServices/ApplicationServices.h>

// Private CoreGraphics calls backing the "Use grayscale" accessibility
// setting. Not declared in any SDK header, stable since at least 10.9.
CG_EXTERN bool CGDisplayUsesForceToGray(void);
CG_EXTERN void CGDisplayForceToGray(bool forceToGray);

static int display_uses_force_to_gray(void) {
    return CGDisplayUsesForceToGray() ? 1 : 0;
}

static void display_force_to_gray(int on) {
    CGDisplayForceToGray(on ? true : false);
}
*/
import "C"

// DarwinDisplay implements platform.Display using CGDisplayUsesForceToGray
// and CGDisplayForceToGray.
type DarwinDisplay struct{}

// NewDisplay returns a new macOS display backend.
func NewDisplay() *DarwinDisplay {
	return &DarwinDisplay{}
}

// UsesForceToGray reports the current system-wide forced-grayscale flag.
func (d *DarwinDisplay) UsesForceToGray() (bool, error) {
	return C.display_uses_force_to_gray() != 0, nil
}

// SetForceToGray sets the system-wide forced-grayscale flag. The call is
// synchronous: the new state is visible to UsesForceToGray on return.
func (d *DarwinDisplay) SetForceToGray(on bool) error {
	v := C.int(0)
	if on {
		v = C.int(1)
	}
	C.display_force_to_gray(v)
	return nil
}
