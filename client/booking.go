package client

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"sync"

	"github.com/dmaraujo/agendo/pkg/pool"
	"github.com/rs/zerolog/log"
)

// ListAppointments fetches one page of the caller's appointments. The
// authority scopes the listing to the authenticated account's role.
func (c *Client) ListAppointments(ctx context.Context, page int) (*AppointmentPage, error) {
	path := "/appointments/"
	if page > 1 {
		path = fmt.Sprintf("/appointments/?page=%d", page)
	}

	var result AppointmentPage
	if err := c.Call(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return &result, nil
}

// BookAppointment creates a new appointment.
func (c *Client) BookAppointment(ctx context.Context, req BookingRequest) (*Appointment, error) {
	var appt Appointment
	if err := c.Call(ctx, http.MethodPost, "/appointments/", req, &appt); err != nil {
		return nil, fmt.Errorf("failed to book appointment: %w", err)
	}
	log.Info().Int("id", appt.ID).Msg("Appointment booked")
	return &appt, nil
}

// CancelAppointment cancels an appointment owned by the caller.
func (c *Client) CancelAppointment(ctx context.Context, id int) error {
	path := fmt.Sprintf("/appointments/%d/cancel/", id)
	if err := c.Call(ctx, http.MethodPost, path, nil, nil); err != nil {
		return fmt.Errorf("failed to cancel appointment %d: %w", id, err)
	}
	log.Info().Int("id", id).Msg("Appointment cancelled")
	return nil
}

// UpdateAppointmentStatus moves an appointment through its status
// transitions. Operator-side call; the authority enforces permissions.
func (c *Client) UpdateAppointmentStatus(ctx context.Context, id int, status string) (*Appointment, error) {
	path := fmt.Sprintf("/appointments/%d/", id)
	payload := map[string]string{"status": status}

	var appt Appointment
	if err := c.Call(ctx, http.MethodPatch, path, payload, &appt); err != nil {
		return nil, fmt.Errorf("failed to update appointment %d: %w", id, err)
	}
	return &appt, nil
}

// ListEstablishments fetches all establishments.
func (c *Client) ListEstablishments(ctx context.Context) ([]Establishment, error) {
	var result []Establishment
	if err := c.Call(ctx, http.MethodGet, "/establishments/", nil, &result); err != nil {
		return nil, fmt.Errorf("failed to list establishments: %w", err)
	}
	return result, nil
}

// ListServices fetches the services offered by an establishment.
func (c *Client) ListServices(ctx context.Context, establishmentID int) ([]Service, error) {
	path := fmt.Sprintf("/establishments/%d/services/", establishmentID)
	var result []Service
	if err := c.Call(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return result, nil
}

// ListProfessionals fetches the professionals working at an establishment.
func (c *Client) ListProfessionals(ctx context.Context, establishmentID int) ([]Professional, error) {
	path := fmt.Sprintf("/establishments/%d/professionals/", establishmentID)
	var result []Professional
	if err := c.Call(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, fmt.Errorf("failed to list professionals: %w", err)
	}
	return result, nil
}

// FetchAllAppointments walks every page of the appointment listing,
// fetching the remaining pages concurrently with numWorkers workers.
// onPage, if non-nil, is called once per fetched page.
func (c *Client) FetchAllAppointments(ctx context.Context, numWorkers int, onPage func()) ([]Appointment, error) {
	first, err := c.ListAppointments(ctx, 1)
	if err != nil {
		return nil, err
	}
	if onPage != nil {
		onPage()
	}

	appointments := append([]Appointment{}, first.Results...)
	if first.Next == nil || len(first.Results) == 0 {
		return appointments, nil
	}

	pageSize := len(first.Results)
	totalPages := (first.Count + pageSize - 1) / pageSize

	remaining := make([]int, 0, totalPages-1)
	for p := 2; p <= totalPages; p++ {
		remaining = append(remaining, p)
	}

	var mu sync.Mutex
	byPage := make(map[int][]Appointment, len(remaining))

	errs := pool.Run(ctx, remaining, numWorkers, func(ctx context.Context, page int) error {
		result, err := c.ListAppointments(ctx, page)
		if err != nil {
			return fmt.Errorf("page %d: %w", page, err)
		}
		mu.Lock()
		byPage[page] = result.Results
		mu.Unlock()
		if onPage != nil {
			onPage()
		}
		return nil
	})
	if len(errs) > 0 {
		return nil, fmt.Errorf("failed to fetch all appointment pages: %w", errs[0])
	}

	pages := make([]int, 0, len(byPage))
	for p := range byPage {
		pages = append(pages, p)
	}
	sort.Ints(pages)
	for _, p := range pages {
		appointments = append(appointments, byPage[p]...)
	}

	log.Info().Int("count", len(appointments)).Msg("Fetched full appointment history")
	return appointments, nil
}
