package cmd

import (
	"github.com/mj1618/grayscale-cli/internal/output"
	"github.com/mj1618/grayscale-cli/internal/platform"
	"github.com/spf13/cobra"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Invert forced grayscale rendering",
	RunE:  runToggle,
}

func init() {
	rootCmd.AddCommand(toggleCmd)
}

// toggleGrayscale flips the flag and returns the new state.
func toggleGrayscale(d platform.Display) (bool, error) {
	current, err := d.UsesForceToGray()
	if err != nil {
		return false, err
	}
	if err := d.SetForceToGray(!current); err != nil {
		return false, err
	}
	return !current, nil
}

func runToggle(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	on, err := toggleGrayscale(provider.Display)
	if err != nil {
		return err
	}

	return output.Print(SetResult{
		OK:        true,
		Action:    "toggle",
		Grayscale: on,
		Changed:   true,
	})
}
