package record

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"medtracker/cmd/client/cmd/types"
	"medtracker/internal/app/client"
	"medtracker/internal/domain/history"
)

var RestoreCmd = &cobra.Command{
	Use:   "restore <meditation> <record-id>",
	Short: "Restore a deleted record",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("app not initialized")
		}

		err := app.RestoreRecord(cmd.Context(), args[0], args[1])
		if errors.Is(err, history.ErrRecordNotFound) {
			return fmt.Errorf("record %s not found for %s", args[1], args[0])
		}
		if err != nil {
			return err
		}

		color.Green("Record restored")
		return nil
	},
}
