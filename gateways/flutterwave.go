package gateways

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const defaultFlutterwaveBaseURL = "https://api.flutterwave.com"

// FlutterwaveClient talks to the Flutterwave v3 API.
type FlutterwaveClient struct {
	http        *resty.Client
	secretKey   string
	redirectURL string
}

func NewFlutterwaveClient(secretKey, baseURL, redirectURL string) *FlutterwaveClient {
	if baseURL == "" {
		baseURL = defaultFlutterwaveBaseURL
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second)
	return &FlutterwaveClient{http: client, secretKey: secretKey, redirectURL: redirectURL}
}

// Initialize creates a hosted payment page and returns its link together with
// the generated FW-prefixed transaction reference.
func (c *FlutterwaveClient) Initialize(ctx context.Context, email, name, phone string, amount float64, currency string) (*InitializeResult, error) {
	txRef := "FW-" + uuid.NewString()

	payload := map[string]any{
		"tx_ref":       txRef,
		"amount":       amount,
		"currency":     strings.ToUpper(currency),
		"redirect_url": c.redirectURL,
		"customer": map[string]any{
			"email":       email,
			"name":        name,
			"phonenumber": phone,
		},
		"customizations": map[string]any{
			"title":       "Biscenic Store",
			"description": "Payment for items in your cart",
		},
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.secretKey).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post("/v3/payments")
	if err != nil {
		return nil, fmt.Errorf("flutterwave initialize request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("flutterwave initialize failed with status %d: %s", resp.StatusCode(), resp.Body())
	}

	var body struct {
		Status string `json:"status"`
		Msg    string `json:"message"`
		Data   struct {
			Link string `json:"link"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("failed to parse flutterwave response: %w", err)
	}
	if body.Status != "success" || body.Data.Link == "" {
		return nil, fmt.Errorf("flutterwave initialization rejected: %s", body.Msg)
	}

	return &InitializeResult{
		AuthorizationURL: body.Data.Link,
		Reference:        txRef,
		Gateway:          "flutterwave",
	}, nil
}

// Verify checks a transaction by its gateway id.
func (c *FlutterwaveClient) Verify(ctx context.Context, reference string) (*VerifyResult, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.secretKey).
		Get("/v3/transactions/" + reference + "/verify")
	if err != nil {
		return nil, fmt.Errorf("flutterwave verify request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("flutterwave verify failed with status %d: %s", resp.StatusCode(), resp.Body())
	}

	var body struct {
		Status string `json:"status"`
		Data   struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("failed to parse flutterwave response: %w", err)
	}

	return &VerifyResult{
		Successful: body.Status == "success" && body.Data.Status == "successful",
		Status:     body.Data.Status,
		Raw:        json.RawMessage(resp.Body()),
	}, nil
}
