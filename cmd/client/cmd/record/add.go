// Package record holds the commands operating on the local practice history.
package record

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"medtracker/cmd/client/cmd/types"
	"medtracker/internal/app/client"
	"medtracker/internal/domain/history"
)

var AddCmd = &cobra.Command{
	Use:   "add <meditation> <count>",
	Short: "Log a practice session",
	Long: `Log a number of repetitions for a meditation.

The record is saved locally first and pushed to the server right away; if
the push fails the record stays pending and is retried on the next sync.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("app not initialized")
		}

		count, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("count must be a number: %w", err)
		}

		rec, err := app.AddRecord(cmd.Context(), args[0], count)
		if errors.Is(err, client.ErrNotAuthenticated) {
			return fmt.Errorf("not logged in, run: medtracker auth login")
		}
		if errors.Is(err, history.ErrInvalidCount) {
			return fmt.Errorf("count must be positive")
		}
		if err != nil {
			return err
		}

		if rec.Synced {
			color.Green("Logged %d for %s (synced)", rec.Count, args[0])
		} else {
			color.Yellow("Logged %d for %s (pending sync)", rec.Count, args[0])
		}
		return nil
	},
}
