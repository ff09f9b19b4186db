package cmd

import (
	"context"
	"strconv"

	"github.com/dmaraujo/agendo/client"
	"github.com/dmaraujo/agendo/guard"
	"github.com/dmaraujo/agendo/pkg/validation"
	"github.com/spf13/cobra"
)

// clientCmd groups the client-area commands. Every subcommand passes
// through the route guard for the client region before it runs.
func clientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Client area: your appointments",
	}

	cmd.AddCommand(
		clientAppointmentsCmd(),
		clientBookCmd(),
		clientCancelCmd(),
	)

	return cmd
}

func clientAppointmentsCmd() *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "appointments",
		Short: "List your appointments",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			session, api := newSessionAndClient()

			if err := requireRegion(ctx, session, guard.ClientArea); err != nil {
				cmd.PrintErrln("Error:", err)
				return
			}

			result, err := api.ListAppointments(ctx, page)
			if err != nil {
				cmd.PrintErrln("Error: Failed to list appointments.")
				return
			}
			if len(result.Results) == 0 {
				cmd.Println("You have no appointments.")
				return
			}
			renderAppointmentsTable(cmd.OutOrStdout(), result.Results)
			cmd.Printf("Showing %d of %d appointments.\n", len(result.Results), result.Count)
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page number to show")

	return cmd
}

func clientBookCmd() *cobra.Command {
	var professionalID, serviceID int
	var startTime string

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book a new appointment",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			session, api := newSessionAndClient()

			if err := requireRegion(ctx, session, guard.ClientArea); err != nil {
				cmd.PrintErrln("Error:", err)
				return
			}

			if professionalID <= 0 || serviceID <= 0 || startTime == "" {
				cmd.PrintErrln("Error: --professional, --service, and --start are all required.")
				return
			}

			appt, err := api.BookAppointment(ctx, client.BookingRequest{
				ProfessionalID: professionalID,
				ServiceID:      serviceID,
				StartTime:      startTime,
			})
			if err != nil {
				cmd.PrintErrln("Error: Failed to book the appointment.")
				return
			}
			cmd.Printf("Appointment %d booked for %s (%s).\n", appt.ID, appt.StartTime, appt.Status)
		},
	}

	cmd.Flags().IntVar(&professionalID, "professional", 0, "Professional ID")
	cmd.Flags().IntVar(&serviceID, "service", 0, "Service ID")
	cmd.Flags().StringVar(&startTime, "start", "", "Start time (RFC 3339, e.g. 2026-09-01T14:00:00Z)")

	return cmd
}

func clientCancelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel [appointmentID]",
		Short: "Cancel one of your appointments",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			session, api := newSessionAndClient()

			if err := requireRegion(ctx, session, guard.ClientArea); err != nil {
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

			if err := api.CancelAppointment(ctx, id); err != nil {
				cmd.PrintErrln("Error: Failed to cancel the appointment.")
				return
			}
			cmd.Printf("Appointment %d cancelled.\n", id)
		},
	}
	return cmd
}
