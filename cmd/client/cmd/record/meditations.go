package record

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"medtracker/cmd/client/cmd/types"
	"medtracker/internal/app/client"
)

var MeditationsCmd = &cobra.Command{
	Use:   "meditations",
	Short: "List the practice catalog",
	Long: `List the meditations records can be logged against.

The catalog comes from the server; when the server is unreachable the
built-in defaults are shown instead.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("app not initialized")
		}

		for _, m := range app.Meditations(cmd.Context()) {
			fmt.Printf("%-16s %s\n", color.CyanString(m.ID), m.Name)
		}
		return nil
	},
}
