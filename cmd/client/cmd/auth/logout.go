package auth

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"medtracker/cmd/client/cmd/types"
	"medtracker/internal/app/client"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear local data",
	Long: `End the session.

The local history is cleared together with the tokens so a later login
under a different account starts from a clean slate.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("app not initialized")
		}

		if err := app.Logout(cmd.Context()); err != nil {
			return err
		}
		color.Green("Logged out")
		return nil
	},
}
