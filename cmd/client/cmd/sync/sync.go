// Package sync holds the manual synchronization commands.
package sync

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"medtracker/cmd/client/cmd/types"
	"medtracker/internal/app/client"
)

var SyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push pending records to the server",
	Long: `Sweep the local history and push every record the server has not
seen yet. Records that fail to push stay pending for the next sweep.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("app not initialized")
		}

		before := app.SyncStatus(cmd.Context())
		if before.PendingRecords == 0 {
			fmt.Println("Nothing to sync.")
			return nil
		}

		fmt.Printf("Syncing %d pending records...\n", before.PendingRecords)
		start := time.Now()
		app.SyncAll(cmd.Context())

		after := app.SyncStatus(cmd.Context())
		pushed := after.SyncedRecords - before.SyncedRecords
		color.Green("Pushed %d of %d in %v", pushed, before.PendingRecords,
			time.Since(start).Round(time.Millisecond))
		if after.PendingRecords > 0 {
			color.Yellow("%d records still pending", after.PendingRecords)
		}
		return nil
	},
}

var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the sync state of the local history",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("app not initialized")
		}

		st := app.SyncStatus(cmd.Context())
		fmt.Printf("Total records:   %d\n", st.TotalRecords)
		color.Green("Synced records:  %d", st.SyncedRecords)
		if st.PendingRecords > 0 {
			color.Yellow("Pending records: %d", st.PendingRecords)
		} else {
			fmt.Printf("Pending records: %d\n", st.PendingRecords)
		}
		return nil
	},
}
