package cmd

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"
)

// browseCmd groups the public catalogue commands. Browsing establishments
// and their offerings requires no session; the calls simply go out
// unauthenticated when none exists.
func browseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse establishments, services, and professionals",
	}

	cmd.AddCommand(
		browseEstablishmentsCmd(),
		browseServicesCmd(),
		browseProfessionalsCmd(),
	)

	return cmd
}

func browseEstablishmentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "establishments",
		Short: "List all establishments",
		Run: func(cmd *cobra.Command, args []string) {
			_, api := newSessionAndClient()

			establishments, err := api.ListEstablishments(context.Background())
			if err != nil {
				cmd.PrintErrln("Error: Failed to list establishments.")
				return
			}
			if len(establishments) == 0 {
				cmd.Println("No establishments found.")
				return
			}
			renderEstablishmentsTable(cmd.OutOrStdout(), establishments)
		},
	}
	return cmd
}

func browseServicesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "services [establishmentID]",
		Short: "List an establishment's services",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			_, api := newSessionAndClient()

			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				cmd.PrintErrln("Error: establishment ID must be a positive number.")
				return
			}

			services, err := api.ListServices(context.Background(), id)
			if err != nil {
				cmd.PrintErrln("Error: Failed to list services.")
				return
			}
			if len(services) == 0 {
				cmd.Println("No services found.")
				return
			}
			renderServicesTable(cmd.OutOrStdout(), services)
		},
	}
	return cmd
}

func browseProfessionalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "professionals [establishmentID]",
		Short: "List an establishment's professionals",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			_, api := newSessionAndClient()

			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				cmd.PrintErrln("Error: establishment ID must be a positive number.")
				return
			}

			professionals, err := api.ListProfessionals(context.Background(), id)
			if err != nil {
				cmd.PrintErrln("Error: Failed to list professionals.")
				return
			}
			if len(professionals) == 0 {
				cmd.Println("No professionals found.")
				return
			}
			renderProfessionalsTable(cmd.OutOrStdout(), professionals)
		},
	}
	return cmd
}
