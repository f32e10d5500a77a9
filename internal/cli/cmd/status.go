package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/darkscreen/internal/cli/styles"
	"github.com/bnema/darkscreen/internal/domain/entity"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show prompt counters, preferences and backlight access",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()

	store, err := app.Store(false)
	if err != nil {
		return err
	}

	denials, err := store.TotalDenials(ctx)
	if err != nil {
		return err
	}
	launches, err := store.InitialLaunchPrompts(ctx)
	if err != nil {
		return err
	}
	prefs, err := store.Preferences(ctx)
	if err != nil {
		return err
	}

	report := styles.StatusReport{
		DatabasePath:         app.DatabasePath(),
		TotalDenials:         denials,
		MaxTotalDenials:      entity.MaxTotalDenials,
		InitialLaunchPrompts: launches,
		MaxLaunchPrompts:     entity.MaxInitialLaunchPrompts,
		PreventTouch:         prefs.PreventTouch,
		MediaEnabled:         prefs.MediaEnabled,
	}

	display, err := app.OpenDisplay()
	if err != nil {
		report.Display = styles.DisplayReport{Backend: "sysfs", Error: err.Error()}
	} else {
		report.Display = styles.DisplayReport{
			Backend:  display.Backend,
			Device:   display.Name,
			MaxLevel: display.MaxLevel,
			CanWrite: display.Capability.CanWrite(ctx),
		}
		if level, levelErr := display.System.Level(ctx); levelErr != nil {
			report.Display.Error = levelErr.Error()
		} else {
			report.Display.Level = level
		}
	}

	fmt.Println(styles.NewStatusRenderer(app.Theme).Render(report))
	return nil
}
