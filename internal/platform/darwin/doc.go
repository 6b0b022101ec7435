//go:build darwin

// Package darwin provides macOS platform support using the private
// CoreGraphics display-gamma calls in ApplicationServices.
// All functionality requires CGo. When CGo is disabled, the package
// compiles as a no-op stub.
package darwin
