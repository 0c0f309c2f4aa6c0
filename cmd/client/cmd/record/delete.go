package record

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"medtracker/cmd/client/cmd/types"
	"medtracker/internal/app/client"
	"medtracker/internal/domain/history"
)

var deleteYes bool

var DeleteCmd = &cobra.Command{
	Use:   "delete <meditation> <record-id>",
	Short: "Delete a record",
	Long: `Delete a record from the history.

The record stops counting toward the total but stays in storage, so it can
be restored with the restore command.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("app not initialized")
		}

		if !deleteYes && !confirm(fmt.Sprintf("Delete record %s?", args[1])) {
			fmt.Println("Cancelled.")
			return nil
		}

		err := app.DeleteRecord(cmd.Context(), args[0], args[1])
		if errors.Is(err, history.ErrRecordNotFound) {
			return fmt.Errorf("record %s not found for %s", args[1], args[0])
		}
		if err != nil {
			return err
		}

		color.Green("Record deleted")
		return nil
	},
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	var answer string
	_, _ = fmt.Scanln(&answer)
	return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")
}

func init() {
	DeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip confirmation")
}
