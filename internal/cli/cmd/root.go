// Package cmd provides Cobra CLI commands for darkscreen.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/darkscreen/internal/cli"
	"github.com/bnema/darkscreen/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	rootCmd    = &cobra.Command{
		Use:   "darkscreen",
		Short: "Dim the display as far as it goes",
		Long: `darkscreen - a dark screen for your display.

darkscreen covers the terminal with a black surface and, when it is allowed
to, also drops the device-wide backlight to its minimum. Without that
permission it falls back to dimming its own surface only, and asks for the
permission a limited number of times.

Use 'darkscreen run' to start a dark screen session, or explore the
subcommands to inspect and reset the stored prompt counters.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp(configFile)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/darkscreen/config.toml)")
}

// Execute runs the root command. Cancelling ctx stops a running session.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
