package cmd

import (
	"context"

	"github.com/dmaraujo/agendo/client"
	"github.com/dmaraujo/agendo/guard"
	"github.com/dmaraujo/agendo/pkg/validation"
	"github.com/spf13/cobra"
)

// registerCmd creates a new cobra.Command for creating an account.
// A successful registration also starts a session, like the web flow does.
func registerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		Run: func(cmd *cobra.Command, args []string) {
			form := client.RegistrationForm{
				Username:    promptForInput("Username: "),
				Email:       promptForInput("Email: "),
				FirstName:   promptForInput("First name: "),
				LastName:    promptForInput("Last name: "),
				PhoneNumber: promptForInput("Phone number: "),
			}
			form.Password = promptForPassword("Password: ")
			form.Password2 = promptForPassword("Confirm password: ")

			if err := validateRegistration(form); err != nil {
				cmd.PrintErrln("Error:", err)
				return
			}

			ctx := context.Background()
			session, api := newSessionAndClient()

			pair, err := api.Register(ctx, form)
			if err != nil {
				cmd.PrintErrln("Error: Failed to register the account.")
				return
			}
			if err := session.SaveSession(ctx, pair.Access, pair.Refresh); err != nil {
				cmd.PrintErrln("Error: Failed to save the session.")
				return
			}

			cmd.Println("Registration was successful.")
			cmd.Println("Your area:", guard.HomeFor(session.Role(ctx)))
		},
	}

	return cmd
}

func validateRegistration(form client.RegistrationForm) error {
	if err := validation.ValidateNonEmptyString("username", form.Username); err != nil {
		return err
	}
	if err := validation.ValidateEmail(form.Email); err != nil {
		return err
	}
	return validation.ValidatePassword(form.Password, form.Password2)
}
