package auth

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"medtracker/cmd/client/cmd/types"
	"medtracker/internal/app/client"
	"medtracker/internal/domain/user"
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the server",
	Long: `Authenticate against the server.

The token pair is stored locally; later commands reuse it and refresh it
when the access token expires.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("app not initialized")
		}

		fmt.Print("Email: ")
		var email string
		_, _ = fmt.Scanln(&email)

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		fmt.Println()

		if err := app.Login(cmd.Context(), user.Credentials{
			Email:    email,
			Password: string(password),
		}); err != nil {
			return err
		}

		color.Green("Logged in as %s", email)

		// Push anything logged while signed out.
		app.SyncAll(cmd.Context())
		return nil
	},
}
