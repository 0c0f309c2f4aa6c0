package record

import (
	"fmt"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"medtracker/cmd/client/cmd/types"
	"medtracker/internal/app/client"
	"medtracker/internal/domain/history"
)

var showDeleted bool

var HistoryCmd = &cobra.Command{
	Use:   "history [meditation]",
	Short: "Show logged records and totals",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("app not initialized")
		}

		h := app.History(cmd.Context())
		if len(h) == 0 {
			fmt.Println("No records yet.")
			return nil
		}

		ids := make([]string, 0, len(h))
		for id := range h {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		for _, id := range ids {
			if len(args) == 1 && id != args[0] {
				continue
			}
			printMeditation(id, h)
		}
		return nil
	},
}

func printMeditation(id string, h history.History) {
	color.Cyan("%s (total: %d)", id, history.TotalCount(h, id))
	for _, rec := range h[id] {
		if rec.Deleted && !showDeleted {
			continue
		}

		state := color.YellowString("pending")
		if rec.Synced {
			state = color.GreenString("synced")
		}
		if rec.Deleted {
			state += color.RedString(" deleted")
		}

		fmt.Printf("  %s  %5d  %s  %s\n",
			time.UnixMilli(rec.Timestamp).Format("2006-01-02 15:04"),
			rec.Count,
			rec.ID,
			state,
		)
	}
}

func init() {
	HistoryCmd.Flags().BoolVar(&showDeleted, "deleted", false, "include deleted records")
}
