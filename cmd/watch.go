package cmd

import (
	"time"

	"github.com/mj1618/grayscale-cli/internal/output"
	"github.com/mj1618/grayscale-cli/internal/platform"
	"github.com/spf13/cobra"
)

// WatchEvent is emitted once per observed state transition.
type WatchEvent struct {
	OK        bool   `yaml:"ok"        json:"ok"`
	Action    string `yaml:"action"    json:"action"`
	Grayscale bool   `yaml:"grayscale" json:"grayscale"`
	Elapsed   string `yaml:"elapsed"   json:"elapsed"`
}

// WatchResult is the final summary of a watch run.
type WatchResult struct {
	OK          bool   `yaml:"ok"                  json:"ok"`
	Action      string `yaml:"action"              json:"action"`
	Transitions int    `yaml:"transitions"         json:"transitions"`
	Elapsed     string `yaml:"elapsed"             json:"elapsed"`
	TimedOut    bool   `yaml:"timed_out,omitempty" json:"timed_out,omitempty"`
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the forced-grayscale flag for changes",
	Long:  "Poll the system forced-grayscale flag and emit an event for every transition, until a transition count or timeout is reached.",
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().Int("interval", 500, "Polling interval in milliseconds (default: 500)")
	watchCmd.Flags().Int("timeout", 30, "Max seconds to watch, 0 = no limit (default: 30)")
	watchCmd.Flags().Int("count", 0, "Stop after this many transitions, 0 = until timeout")
}

// watchTransitions polls the flag every interval and calls emit on each
// transition. It returns the number of transitions observed and whether the
// timeout elapsed first. A timeout of 0 watches until count is reached.
func watchTransitions(d platform.Display, interval, timeout time.Duration, count int, emit func(on bool, elapsed time.Duration) error) (int, bool, error) {
	start := time.Now()

	prev, err := d.UsesForceToGray()
	if err != nil {
		return 0, false, err
	}

	transitions := 0
	for {
		if timeout > 0 && time.Since(start) >= timeout {
			return transitions, true, nil
		}
		time.Sleep(interval)

		cur, err := d.UsesForceToGray()
		if err != nil {
			return transitions, false, err
		}
		if cur == prev {
			continue
		}

		transitions++
		if err := emit(cur, time.Since(start)); err != nil {
			return transitions, false, err
		}
		prev = cur

		if count > 0 && transitions >= count {
			return transitions, false, nil
		}
	}
}

func runWatch(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	intervalMs, _ := cmd.Flags().GetInt("interval")
	timeoutSec, _ := cmd.Flags().GetInt("timeout")
	count, _ := cmd.Flags().GetInt("count")

	start := time.Now()
	transitions, timedOut, err := watchTransitions(
		provider.Display,
		time.Duration(intervalMs)*time.Millisecond,
		time.Duration(timeoutSec)*time.Second,
		count,
		func(on bool, elapsed time.Duration) error {
			return output.Print(WatchEvent{
				OK:        true,
				Action:    "watch",
				Grayscale: on,
				Elapsed:   elapsed.Round(time.Millisecond).String(),
			})
		},
	)
	if err != nil {
		return err
	}

	return output.Print(WatchResult{
		OK:          true,
		Action:      "watch",
		Transitions: transitions,
		Elapsed:     time.Since(start).Round(time.Millisecond).String(),
		TimedOut:    timedOut,
	})
}
