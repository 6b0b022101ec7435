//go:build darwin && cgo

package darwin

import "github.com/mj1618/grayscale-cli/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			Display: NewDisplay(),
		}, nil
	}
}
