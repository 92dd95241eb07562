package gateways

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultPaystackBaseURL = "https://api.paystack.co"

// Paystack rejects initializations above 5,000,000,000 kobo.
const maxPaystackAmount = 5_000_000_000

var ErrAmountTooLarge = errors.New("amount exceeds the gateway limit")

// InitializeResult is the common output of a gateway initialization: the page
// to redirect the shopper to and the reference to verify later.
type InitializeResult struct {
	AuthorizationURL string `json:"authorization_url"`
	Reference        string `json:"reference"`
	Gateway          string `json:"gateway"`
}

// VerifyResult carries the verification verdict plus the gateway's raw
// response for the payment audit record.
type VerifyResult struct {
	Successful bool            `json:"successful"`
	Status     string          `json:"status"`
	Raw        json.RawMessage `json:"raw"`
}

// PaystackClient talks to the Paystack transaction API. Credentials come in
// through the constructor, never from the environment.
type PaystackClient struct {
	http      *resty.Client
	secretKey string
}

func NewPaystackClient(secretKey, baseURL string) *PaystackClient {
	if baseURL == "" {
		baseURL = defaultPaystackBaseURL
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second)
	return &PaystackClient{http: client, secretKey: secretKey}
}

// Initialize starts a Paystack transaction. Amount is in the currency subunit.
func (c *PaystackClient) Initialize(ctx context.Context, email string, amount int64, currency string) (*InitializeResult, error) {
	if amount > maxPaystackAmount {
		return nil, ErrAmountTooLarge
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.secretKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"email":    email,
			"amount":   amount,
			"currency": strings.ToUpper(currency),
		}).
		Post("/transaction/initialize")
	if err != nil {
		return nil, fmt.Errorf("paystack initialize request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("paystack initialize failed with status %d: %s", resp.StatusCode(), resp.Body())
	}

	var body struct {
		Status bool   `json:"status"`
		Msg    string `json:"message"`
		Data   struct {
			AuthorizationURL string `json:"authorization_url"`
			Reference        string `json:"reference"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("failed to parse paystack response: %w", err)
	}
	if !body.Status || body.Data.AuthorizationURL == "" {
		return nil, fmt.Errorf("paystack initialization rejected: %s", body.Msg)
	}

	return &InitializeResult{
		AuthorizationURL: body.Data.AuthorizationURL,
		Reference:        body.Data.Reference,
		Gateway:          "paystack",
	}, nil
}

// Verify checks the final state of a transaction by reference.
func (c *PaystackClient) Verify(ctx context.Context, reference string) (*VerifyResult, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.secretKey).
		Get("/transaction/verify/" + reference)
	if err != nil {
		return nil, fmt.Errorf("paystack verify request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("paystack verify failed with status %d: %s", resp.StatusCode(), resp.Body())
	}

	var body struct {
		Status bool `json:"status"`
		Data   struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("failed to parse paystack response: %w", err)
	}

	return &VerifyResult{
		Successful: body.Data.Status == "success",
		Status:     body.Data.Status,
		Raw:        json.RawMessage(resp.Body()),
	}, nil
}
