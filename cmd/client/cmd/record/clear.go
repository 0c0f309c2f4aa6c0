package record

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"medtracker/cmd/client/cmd/types"
	"medtracker/internal/app/client"
)

var clearYes bool

var ClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Wipe all local data",
	Long: `Remove everything stored on this device: history, tokens, all of it.

Records already pushed to the server are not affected.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("app not initialized")
		}

		if !clearYes && !confirm("Wipe all local data?") {
			fmt.Println("Cancelled.")
			return nil
		}

		if err := app.ClearStorage(cmd.Context()); err != nil {
			return err
		}
		color.Green("Local storage cleared")
		return nil
	},
}

func init() {
	ClearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "skip confirmation")
}
