// colours animates a grid of coloured cells in the terminal.
//
// Usage:
//
//	colours run              - Run the animation
//	colours modes            - List available rendering modes
//	colours export           - Render frames to PNG files without a terminal
//	colours config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>     - Set frame callback rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible colours
//	--config <path>  - Use a custom config YAML
//	--log <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import styles to register modes
	_ "github.com/vovakirdan/colourgrid/internal/styles"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "colours",
	Short: "Colours - an animated grid of coloured cells",
	Long: `Colours draws a grid of evenly spaced cells in your terminal and
repaints it on a fixed interval using one of several colouring modes.

Available commands:
  run      - Run the animation
  modes    - Show all rendering modes
  export   - Render frames to PNG files
  config   - Print the effective configuration

Examples:
  colours run
  colours run --mode stripes-v
  colours export --frames 10 --out ./frames
  colours config > ~/.colours/config.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame callback rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Path to log file")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(configCmd)
}
