// Package auth holds the session management commands.
package auth

import (
	"github.com/spf13/cobra"
)

var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the server session",
	Long:  `Log in, log out and inspect the current profile.`,
}
