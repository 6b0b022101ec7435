//go:build !darwin || !cgo

package darwin

// No provider is registered in CGo-less builds or on non-darwin targets;
// platform.NewProvider then reports ErrUnsupported.
