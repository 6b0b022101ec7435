package cmd

import (
	"github.com/mj1618/grayscale-cli/internal/output"
	"github.com/mj1618/grayscale-cli/internal/platform"
	"github.com/spf13/cobra"
)

// SetResult is the output of `on`, `off`, and `toggle`.
type SetResult struct {
	OK        bool   `yaml:"ok"        json:"ok"`
	Action    string `yaml:"action"    json:"action"`
	Grayscale bool   `yaml:"grayscale" json:"grayscale"`
	Changed   bool   `yaml:"changed"   json:"changed"`
}

var enableCmd = &cobra.Command{
	Use:     "on",
	Aliases: []string{"enable"},
	Short:   "Turn forced grayscale rendering on",
	Long:    "Turns forced grayscale rendering on if it is currently off. Does nothing when it is already on.",
	RunE:    runEnable,
}

func init() {
	rootCmd.AddCommand(enableCmd)
}

func runEnable(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	changed, err := ensureGrayscale(provider.Display, true)
	if err != nil {
		return err
	}

	return output.Print(SetResult{
		OK:        true,
		Action:    "enable",
		Grayscale: true,
		Changed:   changed,
	})
}
