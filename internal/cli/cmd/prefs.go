package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/darkscreen/internal/cli/styles"
)

var (
	prefsPreventTouch bool
	prefsMedia        bool
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change the stored toggles",
	Long: `Show or change the stored preferences.

Examples:
  darkscreen prefs                        # Show current values
  darkscreen prefs --prevent-touch=false  # Let touches through the dark screen
  darkscreen prefs --media                # Enable media playback`,
	RunE: runPrefs,
}

func init() {
	rootCmd.AddCommand(prefsCmd)

	prefsCmd.Flags().BoolVar(&prefsPreventTouch, "prevent-touch", true, "block touches while the dark screen is shown")
	prefsCmd.Flags().BoolVar(&prefsMedia, "media", false, "enable media playback")
}

func runPrefs(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()

	store, err := app.Store(false)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("prevent-touch") {
		if err := store.SetPreventTouch(ctx, prefsPreventTouch); err != nil {
			return fmt.Errorf("save preventTouch: %w", err)
		}
	}
	if cmd.Flags().Changed("media") {
		if err := store.SetMediaEnabled(ctx, prefsMedia); err != nil {
			return fmt.Errorf("save mediaEnabled: %w", err)
		}
	}

	prefs, err := store.Preferences(ctx)
	if err != nil {
		return err
	}

	theme := app.Theme
	fmt.Printf("%s %s\n", theme.Subtle.Render("preventTouch"), theme.Highlight.Render(fmt.Sprint(prefs.PreventTouch)))
	fmt.Printf("%s %s\n", theme.Subtle.Render("mediaEnabled"), theme.Highlight.Render(fmt.Sprint(prefs.MediaEnabled)))
	if cmd.Flags().Changed("prevent-touch") || cmd.Flags().Changed("media") {
		fmt.Println(theme.SuccessStyle.Render(styles.IconCheck + " saved"))
	}
	return nil
}
