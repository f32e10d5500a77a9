package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/darkscreen/internal/cli/styles"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the permission prompt counters",
	Long: `Clear the lifetime denial count and the launch prompt count, so the
next dark screen session asks for brightness control again.`,
	RunE: runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

func runReset(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	store, err := app.Store(false)
	if err != nil {
		return err
	}
	if err := store.ResetCounters(app.Ctx()); err != nil {
		return err
	}

	fmt.Println(app.Theme.SuccessStyle.Render(styles.IconCheck + " prompt counters cleared"))
	return nil
}
