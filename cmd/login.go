package cmd

import (
	"context"

	"github.com/dmaraujo/agendo/guard"
	"github.com/dmaraujo/agendo/pkg/validation"
	"github.com/spf13/cobra"
)

// loginCmd creates a new cobra.Command for logging into the platform.
func loginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to the platform",
		Long:  "Login to the appointment-booking platform using your email and password",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println("Please enter your account email and password.")
			email := promptForInput("Email: ")
			password := promptForPassword("Password: ")

			if err := validation.ValidateEmail(email); err != nil {
				cmd.PrintErrln("Error:", err)
				return
			}
			if err := validation.ValidateNonEmptyString("password", password); err != nil {
				cmd.PrintErrln("Error:", err)
				return
			}

			ctx := context.Background()
			session, api := newSessionAndClient()

			pair, err := api.Login(ctx, email, password)
			if err != nil {
				cmd.PrintErrln("Error: Failed to login. Please check your credentials and try again.")
				return
			}
			if err := session.SaveSession(ctx, pair.Access, pair.Refresh); err != nil {
				cmd.PrintErrln("Error: Failed to save the session.")
				return
			}

			cmd.Println("Login was successful.")
			cmd.Println("Your area:", guard.HomeFor(session.Role(ctx)))
		},
	}

	return cmd
}
