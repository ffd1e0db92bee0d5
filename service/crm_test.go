package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Adiru352/luxmeet3.0/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCRMService(hubspotURL, salesforceURL string) *CRMService {
	return &CRMService{
		httpClient:    &http.Client{Timeout: 5 * time.Second},
		hubspotURL:    hubspotURL,
		salesforceURL: salesforceURL,
	}
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		full  string
		first string
		last  string
	}{
		{"Jane Doe", "Jane", "Doe"},
		{"Jane", "Jane", ""},
		{"Jane van der Berg", "Jane", "van der Berg"},
		{"", "", ""},
		{"   ", "", ""},
	}

	for _, tt := range tests {
		first, last := splitName(tt.full)
		assert.Equal(t, tt.first, first, "input %q", tt.full)
		assert.Equal(t, tt.last, last, "input %q", tt.full)
	}
}

func TestContactFromLead(t *testing.T) {
	score := 72
	lead := &models.Lead{
		Name:   "Jane Doe",
		Email:  "jane@acme.io",
		Source: "qr",
		Score:  &score,
	}
	card := &models.BusinessCard{Company: "Acme"}

	contact := ContactFromLead(lead, card)

	assert.Equal(t, "jane@acme.io", contact.Email)
	assert.Equal(t, "Jane", contact.FirstName)
	assert.Equal(t, "Doe", contact.LastName)
	assert.Equal(t, "Acme", contact.Company)
	assert.Equal(t, "qr", contact.Source)
	require.NotNil(t, contact.LeadScore)
	assert.Equal(t, 72, *contact.LeadScore)
}

func TestSyncContact(t *testing.T) {
	score := 90
	contact := CRMContact{
		Email:     "jane@acme.io",
		FirstName: "Jane",
		LastName:  "Doe",
		Company:   "Acme",
		Source:    "nfc",
		LeadScore: &score,
	}

	t.Run("one result per provider in config order", func(t *testing.T) {
		var hubspotPayload map[string]map[string]string
		hubspot := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer hs-key", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&hubspotPayload))
		}))
		defer hubspot.Close()

		var salesforcePayload map[string]interface{}
		salesforce := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&salesforcePayload))
		}))
		defer salesforce.Close()

		var zapierPayload map[string]interface{}
		zapier := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&zapierPayload))
		}))
		defer zapier.Close()

		svc := newTestCRMService(hubspot.URL, salesforce.URL)
		results := svc.SyncContact(context.Background(), contact, []models.CRMProviderConfig{
			{Provider: "hubspot", APIKey: "hs-key"},
			{Provider: "salesforce", APIKey: "sf-key"},
			{Provider: "zapier", WebhookURL: zapier.URL},
		})

		require.Len(t, results, 3)
		assert.Equal(t, "hubspot", results[0].Provider)
		assert.Equal(t, "salesforce", results[1].Provider)
		assert.Equal(t, "zapier", results[2].Provider)
		for _, r := range results {
			assert.True(t, r.Success, "provider %s: %s", r.Provider, r.Error)
		}

		props := hubspotPayload["properties"]
		assert.Equal(t, "jane@acme.io", props["email"])
		assert.Equal(t, "NEW", props["hs_lead_status"])
		assert.Equal(t, "90", props["luxmeet_lead_score"])

		assert.Equal(t, "Open - Not Contacted", salesforcePayload["Status"])
		assert.Equal(t, "90", salesforcePayload["Rating"])

		assert.Equal(t, "luxmeet", zapierPayload["source"])
		assert.NotEmpty(t, zapierPayload["timestamp"])
		assert.NotNil(t, zapierPayload["contact"])
	})

	t.Run("one failing provider does not affect the others", func(t *testing.T) {
		hubspot := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer hubspot.Close()

		salesforce := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer salesforce.Close()

		svc := newTestCRMService(hubspot.URL, salesforce.URL)
		results := svc.SyncContact(context.Background(), contact, []models.CRMProviderConfig{
			{Provider: "hubspot", APIKey: "hs-key"},
			{Provider: "salesforce", APIKey: "sf-key"},
		})

		require.Len(t, results, 2)
		assert.False(t, results[0].Success)
		assert.NotEmpty(t, results[0].Error)
		assert.True(t, results[1].Success)
	})

	t.Run("zapier without webhook URL fails that provider only", func(t *testing.T) {
		salesforce := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer salesforce.Close()

		svc := newTestCRMService("http://localhost:0", salesforce.URL)
		results := svc.SyncContact(context.Background(), contact, []models.CRMProviderConfig{
			{Provider: "zapier"},
			{Provider: "salesforce", APIKey: "sf-key"},
		})

		require.Len(t, results, 2)
		assert.False(t, results[0].Success)
		assert.Contains(t, results[0].Error, "webhook URL")
		assert.True(t, results[1].Success)
	})

	t.Run("missing API keys fail without network calls", func(t *testing.T) {
		svc := newTestCRMService("http://localhost:0", "http://localhost:0")
		results := svc.SyncContact(context.Background(), contact, []models.CRMProviderConfig{
			{Provider: "hubspot"},
			{Provider: "salesforce"},
		})

		require.Len(t, results, 2)
		assert.False(t, results[0].Success)
		assert.False(t, results[1].Success)
	})

	t.Run("unsupported provider is reported not panicked", func(t *testing.T) {
		svc := newTestCRMService("http://localhost:0", "http://localhost:0")
		results := svc.SyncContact(context.Background(), contact, []models.CRMProviderConfig{
			{Provider: "pipedrive"},
		})

		require.Len(t, results, 1)
		assert.False(t, results[0].Success)
		assert.Contains(t, results[0].Error, "unsupported CRM provider")
	})

	t.Run("no configs yields no results", func(t *testing.T) {
		svc := newTestCRMService("http://localhost:0", "http://localhost:0")
		results := svc.SyncContact(context.Background(), contact, nil)
		assert.Empty(t, results)
	})
}
