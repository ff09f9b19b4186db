package cmd

import (
	"context"

	"github.com/dmaraujo/agendo/auth"
	"github.com/dmaraujo/agendo/guard"
	"github.com/spf13/cobra"
)

// whoamiCmd shows the current session state and derived role.
func whoamiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session and role",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			session, _ := newSessionAndClient()

			if !session.Authenticated(ctx) {
				cmd.Println("Not logged in.")
				return
			}

			role := session.Role(ctx)
			cmd.Println("Role:", string(role))
			cmd.Println("Area:", guard.HomeFor(role))

			token, err := session.AccessToken(ctx)
			if err != nil {
				return
			}
			if claims, err := auth.DecodeClaims(token); err == nil {
				cmd.Println("User ID:", claims.UserID)
			}
		},
	}
	return cmd
}
