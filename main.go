package main

import (
	"github.com/mj1618/grayscale-cli/cmd"

	// Register the macOS display backend.
	_ "github.com/mj1618/grayscale-cli/internal/platform/darwin"
)

func main() {
	cmd.Execute()
}
