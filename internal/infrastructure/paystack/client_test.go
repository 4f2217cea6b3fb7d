package paystack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Gabrielduah055/menHealthBackend/internal/infrastructure/logger"
)

func TestClient_InitializeTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transaction/initialize", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		var payload map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "ama@example.com", payload["email"])
		assert.Equal(t, float64(32000), payload["amount"])
		assert.Equal(t, "https://store.example.com/payment/callback", payload["callback_url"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": true,
			"message": "Authorization URL created",
			"data": {
				"authorization_url": "https://checkout.paystack.com/abc123",
				"access_code": "abc123",
				"reference": "ref-123"
			}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk_test_123", "https://store.example.com/payment/callback", logger.NewLogger())

	tx, err := client.InitializeTransaction(context.Background(), "ama@example.com", 32000, map[string]string{"customer_name": "Ama Mensah"})

	assert.NoError(t, err)
	assert.Equal(t, "ref-123", tx.Reference)
	assert.Equal(t, "https://checkout.paystack.com/abc123", tx.AuthorizationURL)
}

func TestClient_VerifyTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/transaction/verify/ref-123", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": true,
			"message": "Verification successful",
			"data": {
				"status": "success",
				"amount": 32000
			}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk_test_123", "", logger.NewLogger())

	result, err := client.VerifyTransaction(context.Background(), "ref-123")

	assert.NoError(t, err)
	assert.Equal(t, "success", result.Status)
	assert.Equal(t, int64(32000), result.Amount)
}

func TestClient_VerifyTransaction_DeclinedIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": true,
			"message": "Verification successful",
			"data": {
				"status": "failed",
				"amount": 32000
			}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk_test_123", "", logger.NewLogger())

	result, err := client.VerifyTransaction(context.Background(), "ref-123")

	assert.NoError(t, err)
	assert.Equal(t, "failed", result.Status)
}

func TestClient_RejectedEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": false, "message": "Invalid key"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk_bad", "", logger.NewLogger())

	_, err := client.VerifyTransaction(context.Background(), "ref-123")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid key")
}

func TestClient_Non2xxStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status": false, "message": "Unauthorized"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk_bad", "", logger.NewLogger())

	_, err := client.InitializeTransaction(context.Background(), "ama@example.com", 1000, nil)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
