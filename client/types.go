package client

// Appointment statuses as reported by the remote authority.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Establishment is a business that offers bookable services.
type Establishment struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
}

// Service is a bookable service offered by an establishment.
type Service struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Price           string `json:"price"`
	DurationMinutes int    `json:"duration_minutes"`
}

// Professional performs services at an establishment.
type Professional struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

// Appointment is a booking between a client and a professional.
type Appointment struct {
	ID           int    `json:"id"`
	ClientName   string `json:"client_name"`
	Professional string `json:"professional_name"`
	Service      string `json:"service_name"`
	StartTime    string `json:"start_time"`
	Status       string `json:"status"`
}

// BookingRequest is the payload to create a new appointment.
type BookingRequest struct {
	ProfessionalID int    `json:"professional"`
	ServiceID      int    `json:"service"`
	StartTime      string `json:"start_time"`
}

// AppointmentPage is one page of the authority's page-numbered appointment
// listing.
type AppointmentPage struct {
	Count   int           `json:"count"`
	Next    *string       `json:"next"`
	Results []Appointment `json:"results"`
}
