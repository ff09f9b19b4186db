package validation

import (
	"fmt"
	"strings"
)

const (
	MinPasswordLength = 8
	MinThreads        = 1
	MaxThreads        = 20
)

func ValidateThreadCount(threads int) error {
	if threads < MinThreads || threads > MaxThreads {
		return fmt.Errorf("thread count must be between %d and %d, got %d", MinThreads, MaxThreads, threads)
	}
	return nil
}

func ValidateAppointmentID(id int) error {
	if id <= 0 {
		return fmt.Errorf("appointment ID must be a positive integer, got %d", id)
	}
	return nil
}

func ValidateNonEmptyString(fieldName, value string) error {
	if value == "" {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}

func ValidateEmail(email string) error {
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 || !strings.Contains(email[at+1:], ".") {
		return fmt.Errorf("invalid email address: %s", email)
	}
	return nil
}

func ValidatePassword(password, password2 string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLength)
	}
	if password != password2 {
		return fmt.Errorf("passwords do not match")
	}
	return nil
}

func ValidateAppointmentStatus(status string) error {
	validStatuses := map[string]bool{
		"pending":   true,
		"confirmed": true,
		"cancelled": true,
		"completed": true,
	}
	if !validStatuses[status] {
		return fmt.Errorf("invalid status: %s (must be one of: pending, confirmed, cancelled, completed)", status)
	}
	return nil
}
