package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmaraujo/agendo/client"
	"github.com/olekukonko/tablewriter"
)

// newTable applies the shared table appearance settings.
func newTable(w io.Writer, headers []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)
	table.SetAlignment(tablewriter.ALIGN_LEFT)       // Align all columns to the left
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT) // Align headers to the left
	table.SetAutoWrapText(false)                     // Disable text wrapping in all columns
	table.SetRowLine(false)                          // Disable row line breaks
	return table
}

// renderAppointmentsTable prints appointments as a table.
func renderAppointmentsTable(w io.Writer, appointments []client.Appointment) {
	table := newTable(w, []string{"ID", "Client", "Professional", "Service", "Start", "Status"})
	for _, a := range appointments {
		table.Append([]string{
			fmt.Sprintf("%d", a.ID),
			strings.ReplaceAll(a.ClientName, "\n", " "),
			a.Professional,
			a.Service,
			a.StartTime,
			a.Status,
		})
	}
	table.Render()
}

// renderEstablishmentsTable prints establishments as a table.
func renderEstablishmentsTable(w io.Writer, establishments []client.Establishment) {
	table := newTable(w, []string{"ID", "Name", "Address", "Phone"})
	for _, e := range establishments {
		table.Append([]string{
			fmt.Sprintf("%d", e.ID),
			e.Name,
			e.Address,
			e.PhoneNumber,
		})
	}
	table.Render()
}

// renderServicesTable prints an establishment's services as a table.
func renderServicesTable(w io.Writer, services []client.Service) {
	table := newTable(w, []string{"ID", "Service", "Price", "Duration (min)"})
	for _, s := range services {
		table.Append([]string{
			fmt.Sprintf("%d", s.ID),
			s.Name,
			s.Price,
			fmt.Sprintf("%d", s.DurationMinutes),
		})
	}
	table.Render()
}

// renderProfessionalsTable prints an establishment's professionals as a table.
func renderProfessionalsTable(w io.Writer, professionals []client.Professional) {
	table := newTable(w, []string{"ID", "Name", "Specialty"})
	for _, p := range professionals {
		table.Append([]string{
			fmt.Sprintf("%d", p.ID),
			p.Name,
			p.Specialty,
		})
	}
	table.Render()
}
