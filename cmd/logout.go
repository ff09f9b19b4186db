package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// logoutCmd tears down the current session, removing both stored tokens.
func logoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Logout and clear the stored session",
		Run: func(cmd *cobra.Command, args []string) {
			session, _ := newSessionAndClient()
			if err := session.Logout(context.Background()); err != nil {
				cmd.PrintErrln("Error: Failed to clear the session.")
				return
			}
			cmd.Println("You are now logged out.")
		},
	}
	return cmd
}
