package cmd

import "github.com/mj1618/grayscale-cli/internal/platform"

// ensureGrayscale reads the current forced-grayscale flag and invokes the
// setter only when it differs from want. Returns whether a mutating call
// was made, so repeated runs are externally idempotent.
func ensureGrayscale(d platform.Display, want bool) (changed bool, err error) {
	current, err := d.UsesForceToGray()
	if err != nil {
		return false, err
	}
	if current == want {
		return false, nil
	}
	if err := d.SetForceToGray(want); err != nil {
		return false, err
	}
	return true, nil
}
