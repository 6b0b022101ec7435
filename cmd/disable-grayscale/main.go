// disable-grayscale turns off macOS forced-grayscale rendering if it is
// currently on. Arguments are ignored, nothing is printed, and the process
// always exits 0.
package main

import (
	"github.com/mj1618/grayscale-cli/internal/platform"

	_ "github.com/mj1618/grayscale-cli/internal/platform/darwin"
)

func main() {
	run()
}

// run flips the flag off when needed. Errors are discarded: the exit status
// is 0 no matter what.
func run() {
	provider, err := platform.NewProvider()
	if err != nil {
		return
	}

	on, err := provider.Display.UsesForceToGray()
	if err != nil || !on {
		return
	}

	_ = provider.Display.SetForceToGray(false)
}
