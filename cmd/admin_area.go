package cmd

import (
	"context"
	"encoding/json"
	"os"
	"strconv"

	"github.com/dmaraujo/agendo/guard"
	"github.com/dmaraujo/agendo/pkg/validation"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// adminCmd groups the operator-area commands. Every subcommand passes
// through the route guard for the admin region (admins and owners) before
// it runs.
func adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Operator area: manage appointments",
	}

	cmd.AddCommand(
		adminAppointmentsCmd(),
		adminSetStatusCmd(),
		adminExportCmd(),
	)

	return cmd
}

func adminAppointmentsCmd() *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "appointments",
		Short: "List the establishment's appointments",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			session, api := newSessionAndClient()

			if err := requireRegion(ctx, session, guard.AdminArea); err != nil {
				cmd.PrintErrln("Error:", err)
				return
			}

			result, err := api.ListAppointments(ctx, page)
			if err != nil {
				cmd.PrintErrln("Error: Failed to list appointments.")
				return
			}
			if len(result.Results) == 0 {
				cmd.Println("No appointments found.")
				return
			}
			renderAppointmentsTable(cmd.OutOrStdout(), result.Results)
			cmd.Printf("Showing %d of %d appointments.\n", len(result.Results), result.Count)
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page number to show")

	return cmd
}

func adminSetStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-status [appointmentID] [status]",
		Short: "Change an appointment's status",
		Long:  "Change an appointment's status to one of: pending, confirmed, cancelled, completed",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			session, api := newSessionAndClient()

			if err := requireRegion(ctx, session, guard.AdminArea); err != nil {
				cmd.PrintErrln("Error:", err)
				return
			}

			id, err := strconv.Atoi(args[0])
			if err != nil {
				cmd.PrintErrln("Error: appointment ID must be a number.")
				return
			}
			if err := validation.ValidateAppointmentID(id); err != nil {
				cmd.PrintErrln("Error:", err)
				return
			}
			status := args[1]
			if err := validation.ValidateAppointmentStatus(status); err != nil {
				cmd.PrintErrln("Error:", err)
				return
			}

			appt, err := api.UpdateAppointmentStatus(ctx, id, status)
			if err != nil {
				cmd.PrintErrln("Error: Failed to update the appointment.")
				return
			}
			cmd.Printf("Appointment %d is now %s.\n", appt.ID, appt.Status)
		},
	}
	return cmd
}

func adminExportCmd() *cobra.Command {
	var outputFile string
	var numThreads int

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the full appointment history to a JSON file",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			session, api := newSessionAndClient()

			if err := requireRegion(ctx, session, guard.AdminArea); err != nil {
				cmd.PrintErrln("Error:", err)
				return
			}

			if err := validation.ValidateThreadCount(numThreads); err != nil {
				cmd.PrintErrln("Error:", err)
				return
			}

			// Page count is unknown until the first page arrives, so the
			// bar runs in spinner mode.
			bar := progressbar.Default(-1, "Fetching appointment pages")
			appointments, err := api.FetchAllAppointments(ctx, numThreads, func() {
				_ = bar.Add(1)
			})
			_ = bar.Finish()
			if err != nil {
				cmd.PrintErrln("Error: Failed to fetch the appointment history.")
				return
			}

			data, err := json.MarshalIndent(appointments, "", "  ")
			if err != nil {
				cmd.PrintErrln("Error: Failed to encode the appointment history.")
				return
			}
			if err := os.WriteFile(outputFile, data, 0o644); err != nil {
				cmd.PrintErrln("Error: Failed to write", outputFile)
				return
			}
			cmd.Printf("Exported %d appointments to %s.\n", len(appointments), outputFile)
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "appointments.json", "Output file path")
	cmd.Flags().IntVarP(&numThreads, "threads", "t", 4, "Number of concurrent page fetches")

	return cmd
}
