package cmd

import (
	"github.com/mj1618/grayscale-cli/internal/output"
	"github.com/mj1618/grayscale-cli/internal/platform"
	"github.com/spf13/cobra"
)

// StatusResult is the output of `status`.
type StatusResult struct {
	OK        bool   `yaml:"ok"        json:"ok"`
	Action    string `yaml:"action"    json:"action"`
	Grayscale bool   `yaml:"grayscale" json:"grayscale"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether forced grayscale rendering is active",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	on, err := provider.Display.UsesForceToGray()
	if err != nil {
		return err
	}

	return output.Print(StatusResult{
		OK:        true,
		Action:    "status",
		Grayscale: on,
	})
}
