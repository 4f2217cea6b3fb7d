package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Gabrielduah055/menHealthBackend/internal/domain/gateway"
	"github.com/Gabrielduah055/menHealthBackend/internal/infrastructure/logger"
)

const DefaultBaseURL = "https://api.paystack.co"

// Client talks to the Paystack transaction API. All requests carry the
// secret key as a bearer token.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	secretKey   string
	callbackURL string
	logger      *logger.Logger
}

func NewClient(baseURL, secretKey, callbackURL string, logger *logger.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient:  &http.Client{Timeout: 15 * time.Second},
		baseURL:     baseURL,
		secretKey:   secretKey,
		callbackURL: callbackURL,
		logger:      logger,
	}
}

type apiEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type initializeRequest struct {
	Email       string            `json:"email"`
	Amount      int64             `json:"amount"`
	CallbackURL string            `json:"callback_url,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type initializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type verifyData struct {
	Status string `json:"status"`
	Amount int64  `json:"amount"`
}

// InitializeTransaction creates a pending transaction at the gateway. The
// amount is in the smallest currency unit (kobo/pesewas).
func (c *Client) InitializeTransaction(ctx context.Context, email string, amount int64, metadata map[string]string) (*gateway.Transaction, error) {
	payload := initializeRequest{
		Email:       email,
		Amount:      amount,
		CallbackURL: c.callbackURL,
		Metadata:    metadata,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal initialize request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build initialize request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	envelope, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var data initializeData
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to decode initialize response: %w", err)
	}

	c.logger.Info("Paystack transaction initialized", "reference", data.Reference)

	return &gateway.Transaction{
		Reference:        data.Reference,
		AuthorizationURL: data.AuthorizationURL,
	}, nil
}

// VerifyTransaction asks the gateway for the real status of a transaction.
// A non-"success" status is returned in the result, not as an error; errors
// mean the gateway could not be consulted at all.
func (c *Client) VerifyTransaction(ctx context.Context, reference string) (*gateway.Verification, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/transaction/verify/"+reference, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build verify request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	envelope, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var data verifyData
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to decode verify response: %w", err)
	}

	return &gateway.Verification{
		Status: data.Status,
		Amount: data.Amount,
	}, nil
}

func (c *Client) do(req *http.Request) (*apiEnvelope, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("paystack request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read paystack response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("Paystack returned non-2xx status",
			"status_code", resp.StatusCode,
			"body", string(body))
		return nil, fmt.Errorf("paystack returned status %d", resp.StatusCode)
	}

	var envelope apiEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode paystack response: %w", err)
	}

	if !envelope.Status {
		return nil, fmt.Errorf("paystack rejected request: %s", envelope.Message)
	}

	return &envelope, nil
}
