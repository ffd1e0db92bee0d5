package controller

import (
	"testing"

	"github.com/Adiru352/luxmeet3.0/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The controller rejects bad enum values before touching the database,
// so a nil DB proves the check runs first.

func TestCaptureLeadRejectsUnknownSource(t *testing.T) {
	c := NewLeadController(nil)

	_, err := c.CaptureLead(&models.CaptureLeadRequest{
		Name:           "Jane Doe",
		Email:          "jane@acme.io",
		Source:         "billboard",
		BusinessCardID: uuid.New(),
	})

	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "source")
}

func TestRecordInteractionRejectsUnknownType(t *testing.T) {
	c := NewLeadController(nil)

	_, err := c.RecordInteraction(uuid.New(), &models.RecordInteractionRequest{
		Type: "teleport",
	})

	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "type")
}
