package cmd

import (
	"github.com/mj1618/grayscale-cli/internal/output"
	"github.com/mj1618/grayscale-cli/internal/platform"
	"github.com/spf13/cobra"
)

var disableCmd = &cobra.Command{
	Use:     "off",
	Aliases: []string{"disable"},
	Short:   "Turn forced grayscale rendering off",
	Long:    "Turns forced grayscale rendering off if it is currently on. Does nothing when it is already off.",
	RunE:    runDisable,
}

func init() {
	rootCmd.AddCommand(disableCmd)
}

func runDisable(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	changed, err := ensureGrayscale(provider.Display, false)
	if err != nil {
		return err
	}

	return output.Print(SetResult{
		OK:        true,
		Action:    "disable",
		Grayscale: false,
		Changed:   changed,
	})
}
