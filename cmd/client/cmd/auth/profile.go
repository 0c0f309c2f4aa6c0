package auth

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"medtracker/cmd/client/cmd/types"
	"medtracker/internal/app/client"
)

var ProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the current user",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("app not initialized")
		}

		u, err := app.CurrentUser(cmd.Context())
		if errors.Is(err, client.ErrNotAuthenticated) {
			return fmt.Errorf("not logged in, run: medtracker auth login")
		}
		if err != nil {
			return err
		}

		color.Cyan("ID:    %s", u.ID)
		color.Cyan("Email: %s", u.Email)
		if u.Name != "" {
			color.Cyan("Name:  %s", u.Name)
		}
		return nil
	},
}
