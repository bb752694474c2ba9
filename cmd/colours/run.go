package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/colourgrid/internal/core"
	"github.com/vovakirdan/colourgrid/internal/platform/tui"
	"github.com/vovakirdan/colourgrid/internal/registry"
)

var (
	flagMode        string
	flagTheme       string
	flagSnapshotDir string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the animation",
	Long: `Start the animated grid in the terminal.

Controls:
  1-9          - Select mode
  Tab/Right    - Next mode
  S-Tab/Left   - Previous mode
  P/Space      - Pause
  Ctrl+S       - Save a PNG snapshot
  ?            - Toggle full help
  Q/Ctrl+C     - Quit

Examples:
  colours run
  colours run --mode stripes
  colours run --config ./my-colours.yaml --log /tmp/colours.log
  colours run --theme mono`,
	Args: cobra.NoArgs,
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagMode, "mode", "", "Initial rendering mode (overrides config)")
	runCmd.Flags().StringVar(&flagTheme, "theme", "default", "Toolbar theme: default, mono")
	runCmd.Flags().StringVar(&flagSnapshotDir, "snapshots", "", "Snapshot directory (default: ~/.colours/snapshots)")
}

func runRun(cmd *cobra.Command, args []string) {
	if flagMode != "" && !registry.Exists(flagMode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", flagMode)
		fmt.Fprintln(os.Stderr, "Run 'colours modes' to see available modes.")
		os.Exit(1)
	}

	theme, ok := tui.ThemeByName(flagTheme)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown theme %q\n", flagTheme)
		os.Exit(1)
	}

	logger, closeLog, err := newFileLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		_ = closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagMode != "" {
		cfg.Animation.Mode = flagMode
	}

	// Get terminal size for the initial canvas
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	runErr := tui.Run(cfg, rt, tui.Options{
		Logger:      logger,
		Theme:       &theme,
		SnapshotDir: flagSnapshotDir,
	})

	// Close log before potential exit
	if err := finishRun(runErr, closeLog); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// finishRun closes the log file and reports the animation error, or the
// close error if the animation ended cleanly.
func finishRun(runErr error, closeLog func() error) error {
	closeErr := closeLog()
	if runErr != nil {
		return fmt.Errorf("running animation: %w", runErr)
	}
	if closeErr != nil {
		return fmt.Errorf("closing log file: %w", closeErr)
	}
	return nil
}
