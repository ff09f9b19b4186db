package validation_test

import (
	"testing"

	"github.com/dmaraujo/agendo/pkg/validation"
	"github.com/stretchr/testify/assert"
)

func TestValidateThreadCount(t *testing.T) {
	assert.NoError(t, validation.ValidateThreadCount(1))
	assert.NoError(t, validation.ValidateThreadCount(20))
	assert.Error(t, validation.ValidateThreadCount(0))
	assert.Error(t, validation.ValidateThreadCount(21))
	assert.Error(t, validation.ValidateThreadCount(-5))
}

func TestValidateAppointmentID(t *testing.T) {
	assert.NoError(t, validation.ValidateAppointmentID(1))
	assert.NoError(t, validation.ValidateAppointmentID(99999))
	assert.Error(t, validation.ValidateAppointmentID(0))
	assert.Error(t, validation.ValidateAppointmentID(-1))
}

func TestValidateNonEmptyString(t *testing.T) {
	assert.NoError(t, validation.ValidateNonEmptyString("name", "value"))
	err := validation.ValidateNonEmptyString("username", "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "username")
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, validation.ValidateEmail("user@example.com"))
	assert.NoError(t, validation.ValidateEmail("a.b@sub.domain.org"))
	assert.Error(t, validation.ValidateEmail(""))
	assert.Error(t, validation.ValidateEmail("no-at-sign"))
	assert.Error(t, validation.ValidateEmail("@example.com"))
	assert.Error(t, validation.ValidateEmail("user@"))
	assert.Error(t, validation.ValidateEmail("user@nodot"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, validation.ValidatePassword("longenough", "longenough"))
	assert.Error(t, validation.ValidatePassword("short", "short"))
	assert.Error(t, validation.ValidatePassword("longenough", "different1"))
}

func TestValidateAppointmentStatus(t *testing.T) {
	for _, status := range []string{"pending", "confirmed", "cancelled", "completed"} {
		assert.NoError(t, validation.ValidateAppointmentStatus(status))
	}
	assert.Error(t, validation.ValidateAppointmentStatus("done"))
	assert.Error(t, validation.ValidateAppointmentStatus(""))
}
