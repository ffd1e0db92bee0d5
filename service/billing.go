package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
)

// BillingService creates hosted checkout/portal sessions with the payment
// processor. Both calls are fire-and-forget: the caller redirects the user
// to the returned URL and the processor drives everything afterwards via
// webhooks.
type BillingService struct {
	apiURL     string
	secretKey  string
	httpClient *http.Client
}

func NewBillingService() *BillingService {
	return &BillingService{
		apiURL:    getEnvOrDefault("BILLING_API_URL", "https://api.stripe.com/v1"),
		secretKey: os.Getenv("BILLING_SECRET_KEY"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type sessionResponse struct {
	URL string `json:"url"`
}

// CreateCheckoutSession requests a processor-hosted checkout page for the
// given price and team. Failure surfaces as a generic error; there is no
// retry policy.
func (s *BillingService) CreateCheckoutSession(ctx context.Context, priceID string, teamID uuid.UUID) (string, error) {
	return s.createSession(ctx, "/checkout/sessions", map[string]string{
		"price_id": priceID,
		"team_id":  teamID.String(),
	})
}

// CreatePortalSession requests a processor-hosted subscription management
// portal for the team.
func (s *BillingService) CreatePortalSession(ctx context.Context, teamID uuid.UUID) (string, error) {
	return s.createSession(ctx, "/billing_portal/sessions", map[string]string{
		"team_id": teamID.String(),
	})
}

func (s *BillingService) createSession(ctx context.Context, path string, params map[string]string) (string, error) {
	if s.secretKey == "" {
		return "", fmt.Errorf("BILLING_SECRET_KEY not set in environment")
	}

	body, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL+path, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to build session request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.secretKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("payment processor returned status %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read session response: %w", err)
	}

	var session sessionResponse
	if err := json.Unmarshal(respBody, &session); err != nil {
		return "", fmt.Errorf("malformed session response: %w", err)
	}
	if session.URL == "" {
		return "", fmt.Errorf("payment processor returned no redirect URL")
	}

	return session.URL, nil
}
