package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Adiru352/luxmeet3.0/models"
)

// CRMContact is the provider-neutral contact shape pushed to CRMs.
type CRMContact struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Company   string `json:"company,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Title     string `json:"title,omitempty"`
	Source    string `json:"source,omitempty"`
	LeadScore *int   `json:"lead_score,omitempty"`
}

// SyncResult reports one provider's outcome. A failed provider never
// affects the others.
type SyncResult struct {
	Provider string `json:"provider"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
}

type CRMService struct {
	httpClient    *http.Client
	hubspotURL    string
	salesforceURL string
}

func NewCRMService() *CRMService {
	return &CRMService{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		hubspotURL:    getEnvOrDefault("HUBSPOT_API_URL", "https://api.hubapi.com/crm/v3/objects/contacts"),
		salesforceURL: getEnvOrDefault("SALESFORCE_API_URL", os.Getenv("SALESFORCE_INSTANCE_URL")+"/services/data/v59.0/sobjects/Lead"),
	}
}

// ContactFromLead flattens a lead and its card into the CRM contact shape.
func ContactFromLead(lead *models.Lead, card *models.BusinessCard) CRMContact {
	firstName, lastName := splitName(lead.Name)
	return CRMContact{
		Email:     lead.Email,
		FirstName: firstName,
		LastName:  lastName,
		Company:   card.Company,
		Source:    lead.Source,
		LeadScore: lead.Score,
	}
}

func splitName(full string) (string, string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// SyncContact fans the contact out to every configured provider. Each
// provider is attempted independently; the aggregate always contains one
// result per config, in config order, and never returns an error itself.
func (s *CRMService) SyncContact(ctx context.Context, contact CRMContact, configs []models.CRMProviderConfig) []SyncResult {
	results := make([]SyncResult, len(configs))

	var wg sync.WaitGroup
	for i, config := range configs {
		wg.Add(1)
		go func(i int, config models.CRMProviderConfig) {
			defer wg.Done()

			var err error
			switch config.Provider {
			case "hubspot":
				err = s.syncToHubspot(ctx, contact, config)
			case "salesforce":
				err = s.syncToSalesforce(ctx, contact, config)
			case "zapier":
				err = s.sendToZapier(ctx, contact, config)
			default:
				err = fmt.Errorf("unsupported CRM provider: %s", config.Provider)
			}

			results[i] = SyncResult{Provider: config.Provider, Success: err == nil}
			if err != nil {
				results[i].Error = err.Error()
			}
		}(i, config)
	}
	wg.Wait()

	return results
}

func (s *CRMService) syncToHubspot(ctx context.Context, contact CRMContact, config models.CRMProviderConfig) error {
	if config.APIKey == "" {
		return fmt.Errorf("HubSpot API key is required")
	}

	properties := map[string]string{
		"email":          contact.Email,
		"firstname":      contact.FirstName,
		"lastname":       contact.LastName,
		"company":        contact.Company,
		"phone":          contact.Phone,
		"jobtitle":       contact.Title,
		"lead_source":    contact.Source,
		"hs_lead_status": "NEW",
	}
	if contact.LeadScore != nil {
		properties["luxmeet_lead_score"] = strconv.Itoa(*contact.LeadScore)
	}

	return s.postJSON(ctx, s.hubspotURL, config.APIKey, map[string]interface{}{
		"properties": properties,
	})
}

func (s *CRMService) syncToSalesforce(ctx context.Context, contact CRMContact, config models.CRMProviderConfig) error {
	if config.APIKey == "" {
		return fmt.Errorf("Salesforce API key is required")
	}

	payload := map[string]interface{}{
		"Email":      contact.Email,
		"FirstName":  contact.FirstName,
		"LastName":   contact.LastName,
		"Company":    contact.Company,
		"Phone":      contact.Phone,
		"Title":      contact.Title,
		"LeadSource": contact.Source,
		"Status":     "Open - Not Contacted",
	}
	if contact.LeadScore != nil {
		payload["Rating"] = strconv.Itoa(*contact.LeadScore)
	}

	return s.postJSON(ctx, s.salesforceURL, config.APIKey, payload)
}

func (s *CRMService) sendToZapier(ctx context.Context, contact CRMContact, config models.CRMProviderConfig) error {
	if config.WebhookURL == "" {
		return fmt.Errorf("Zapier webhook URL is required")
	}

	return s.postJSON(ctx, config.WebhookURL, "", map[string]interface{}{
		"contact":   contact,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"source":    "luxmeet",
	})
}

func (s *CRMService) postJSON(ctx context.Context, url, bearer string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal CRM payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build CRM request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send CRM request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("CRM endpoint returned status %d", resp.StatusCode)
	}

	return nil
}
