// gridstep is a terminal demo of grid stepping: entities turn to face a
// pressed direction and then slide one cell, one tick at a time.
//
// Usage:
//
//	gridstep play                 - Run the interactive board
//	gridstep config               - Print the effective configuration
//	gridstep dir info <dir>       - Show the mappings of a direction
//	gridstep dir parse <name>     - Parse a direction name
//	gridstep dir exact <x> <y>    - Convert an axis-aligned vector
//	gridstep dir round <x> <y>    - Round any vector to a direction
//
// Global flags:
//
//	--config <path> - Use a specific config file
//	--log <path>    - Write logs to a file
//	--debug         - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagLog    string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridstep",
	Short: "Grid stepping in your terminal",
	Long: `gridstep moves entities around a grid one cell at a time. Each press
turns an entity to face the pressed direction and then slides it one cell;
presses that arrive while an entity is moving are ignored.

Examples:
  gridstep play
  gridstep play --preset fast
  gridstep config --config ./my-board.yaml
  gridstep dir round 3 -1`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Path to log file (default: no logging)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(dirCmd)
}
