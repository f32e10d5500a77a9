package cmd

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/darkscreen/internal/application/port"
	"github.com/bnema/darkscreen/internal/application/usecase"
	"github.com/bnema/darkscreen/internal/cli/model"
	"github.com/bnema/darkscreen/internal/infrastructure/idle"
	"github.com/bnema/darkscreen/internal/infrastructure/surface"
	"github.com/bnema/darkscreen/internal/logging"
)

const backlightSettingsHint = "Allow writes to the backlight (udev rule or video group), " +
	"or set backlight.use_logind = true, then come back."

var (
	runSimulate bool
	runGrant    bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start a dark screen session",
	Long: `Start a full-screen dark screen session.

The screen is kept on while the session runs. When darkscreen may write the
backlight, the device-wide level drops to its minimum on top of the dark
surface; otherwise only the surface is dimmed. Quitting restores the previous
brightness.

Examples:
  darkscreen run                    # Use the sysfs backlight
  darkscreen run --simulate         # Use an in-memory display
  darkscreen run --simulate --grant # Simulated display with permission held`,
	RunE: runDarkScreen,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&runSimulate, "simulate", false, "use a simulated display instead of the backlight")
	runCmd.Flags().BoolVar(&runGrant, "grant", false, "start the simulated display with write permission")
}

func runDarkScreen(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if runSimulate {
		app.Config.Session.Simulate = true
	}
	if runGrant {
		app.Config.Session.SimulatePermission = true
	}

	ctx := app.Ctx()
	log := logging.FromContext(ctx)

	store, err := app.Store(true)
	if err != nil {
		return err
	}

	display, err := app.OpenDisplay()
	if err != nil {
		return fmt.Errorf("%w\nUse 'darkscreen run --simulate' to try darkscreen without a backlight", err)
	}

	var (
		window     port.WindowBrightness
		permission model.PermissionSwitch
		hint       string
	)
	if display.Permission != nil {
		window = display.Permission
		permission = display.Permission
	} else {
		overlay := surface.NewOverlay()
		overlay.OnChange(func(level float32) {
			log.Debug().Float32("level", level).Msg("window brightness changed")
		})
		window = overlay
		hint = backlightSettingsHint
	}

	inhibitor := idle.NewInhibitor(ctx)
	defer func() { _ = inhibitor.Close() }()

	m := model.NewDarkScreenModel(ctx, app.Theme, model.DarkScreenConfig{
		Store:          store,
		SystemMax:      display.MaxLevel,
		Permission:     permission,
		DeviceName:     display.Name,
		SettingsHint:   hint,
		NoticeDuration: time.Duration(app.Config.Session.NoticeDurationMs) * time.Millisecond,
	})
	session := usecase.NewDarkScreenSession(usecase.DarkScreenSessionDeps{
		Controller: usecase.NewBrightnessController(window, display.System),
		Governor:   usecase.NewPermissionGovernor(store, display.Capability),
		Prompt:     m,
		Settings:   m,
		Notifier:   m,
		Idle:       inhibitor,
	})
	m.Bind(session)

	app.WatchConfig()

	log.Info().
		Str("backend", display.Backend).
		Str("device", display.Name).
		Str("idle_backend", inhibitor.Backend()).
		Bool("volatile_prefs", app.Volatile()).
		Msg("starting dark screen session")

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
		tea.WithContext(cmd.Context()),
	)
	_, runErr := p.Run()

	// Interrupted before the user quit: the display still has to come back.
	if !m.Quitting() {
		session.Destroy(ctx)
	}

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return fmt.Errorf("dark screen session: %w", runErr)
	}
	return nil
}
