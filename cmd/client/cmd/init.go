package cmd

import (
	"medtracker/cmd/client/cmd/auth"
	"medtracker/cmd/client/cmd/record"
	"medtracker/cmd/client/cmd/sync"
)

func init() {
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)
	auth.AuthCmd.AddCommand(auth.ProfileCmd)

	rootCmd.AddCommand(record.AddCmd)
	rootCmd.AddCommand(record.HistoryCmd)
	rootCmd.AddCommand(record.DeleteCmd)
	rootCmd.AddCommand(record.RestoreCmd)
	rootCmd.AddCommand(record.MeditationsCmd)
	rootCmd.AddCommand(record.ClearCmd)

	rootCmd.AddCommand(sync.SyncCmd)
	sync.SyncCmd.AddCommand(sync.StatusCmd)
}
