package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBillingService(serverURL string) *BillingService {
	return &BillingService{
		apiURL:     serverURL,
		secretKey:  "sk_test_123",
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestCreateCheckoutSession(t *testing.T) {
	teamID := uuid.New()

	t.Run("returns the hosted checkout URL", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/checkout/sessions", r.URL.Path)
			assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

			var params map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
			assert.Equal(t, "price_pro_monthly", params["price_id"])
			assert.Equal(t, teamID.String(), params["team_id"])

			fmt.Fprint(w, `{"url":"https://checkout.example.com/s/abc"}`)
		}))
		defer server.Close()

		url, err := newTestBillingService(server.URL).CreateCheckoutSession(context.Background(), "price_pro_monthly", teamID)
		require.NoError(t, err)
		assert.Equal(t, "https://checkout.example.com/s/abc", url)
	})

	t.Run("missing secret key fails before any request", func(t *testing.T) {
		svc := newTestBillingService("http://localhost:0")
		svc.secretKey = ""

		_, err := svc.CreateCheckoutSession(context.Background(), "price_pro_monthly", teamID)
		assert.Error(t, err)
	})

	t.Run("processor error surfaces", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		_, err := newTestBillingService(server.URL).CreateCheckoutSession(context.Background(), "price_x", teamID)
		assert.Error(t, err)
	})

	t.Run("response without URL fails", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{}`)
		}))
		defer server.Close()

		_, err := newTestBillingService(server.URL).CreateCheckoutSession(context.Background(), "price_x", teamID)
		assert.Error(t, err)
	})
}

func TestCreatePortalSession(t *testing.T) {
	teamID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/billing_portal/sessions", r.URL.Path)
		fmt.Fprint(w, `{"url":"https://billing.example.com/p/xyz"}`)
	}))
	defer server.Close()

	url, err := newTestBillingService(server.URL).CreatePortalSession(context.Background(), teamID)
	require.NoError(t, err)
	assert.Equal(t, "https://billing.example.com/p/xyz", url)
}
