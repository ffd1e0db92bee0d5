package service

import (
	"testing"
	"time"

	"github.com/Adiru352/luxmeet3.0/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeEmailHeader(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Jane Doe", "Jane Doe"},
		{"Jane\r\nBcc: evil@example.com", "JaneBcc: evil@example.com"},
		{"with\x00null", "withnull"},
		{"  padded  ", "padded"},
		{"tab\tkept", "tab\tkept"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeEmailHeader(tt.input), "input %q", tt.input)
	}
}

func TestSanitizeEmailAddress(t *testing.T) {
	t.Run("accepts a valid address", func(t *testing.T) {
		got, err := sanitizeEmailAddress("jane@acme.io")
		require.NoError(t, err)
		assert.Equal(t, "jane@acme.io", got)
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		for _, bad := range []string{"", "not-an-email", "a@"} {
			_, err := sanitizeEmailAddress(bad)
			assert.Error(t, err, "input %q", bad)
		}
	})
}

func TestGenerateLeadHTML(t *testing.T) {
	lead := &models.Lead{
		Name:      "Jane <script>alert(1)</script>",
		Email:     "jane@acme.io",
		Source:    "nfc",
		Notes:     "Met at the expo.\nWants a demo.",
		CreatedAt: time.Date(2026, 2, 1, 15, 30, 0, 0, time.UTC),
	}

	htmlBody := generateLeadHTML(lead, "Acme Sales Card")

	assert.Contains(t, htmlBody, "Jane &lt;script&gt;alert(1)&lt;/script&gt;")
	assert.NotContains(t, htmlBody, "<script>alert(1)</script>")
	assert.Contains(t, htmlBody, "jane@acme.io")
	assert.Contains(t, htmlBody, "Acme Sales Card")
	assert.Contains(t, htmlBody, "via nfc")
	assert.Contains(t, htmlBody, "Met at the expo.<br>Wants a demo.")
}
