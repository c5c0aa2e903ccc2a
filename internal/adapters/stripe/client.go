// Package stripe implements the payment provider boundary against the Stripe
// REST API. Only the server-side surface is covered here: intent creation,
// intent verification, and customer creation. Card confirmation happens in
// the browser with the client secret.
package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"traininghub/internal/domain"
)

const defaultAPIURL = "https://api.stripe.com"

// Client calls the Stripe API with a secret key.
type Client struct {
	secretKey  string
	apiURL     string
	httpClient *http.Client
}

// NewClient returns a PaymentProvider backed by the Stripe API. apiURL
// overrides the endpoint when non-empty (used by tests).
func NewClient(secretKey, apiURL string) domain.PaymentProvider {
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	return &Client{
		secretKey:  secretKey,
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Err is a provider-reported error (decline, validation, bad reference).
type Err struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Err) Error() string {
	return fmt.Sprintf("stripe: %s (%s)", e.Message, e.Code)
}

type errorBody struct {
	Error *Err `json:"error"`
}

type charge struct {
	ReceiptURL string `json:"receipt_url"`
}

type intentBody struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Customer     string `json:"customer"`
	Charges      struct {
		Data []charge `json:"data"`
	} `json:"charges"`
}

func (b *intentBody) toDomain() *domain.PaymentIntent {
	intent := &domain.PaymentIntent{
		ID:           b.ID,
		ClientSecret: b.ClientSecret,
		Status:       b.Status,
		Amount:       b.Amount,
		Currency:     b.Currency,
		CustomerID:   b.Customer,
	}
	if len(b.Charges.Data) > 0 {
		intent.ReceiptURL = b.Charges.Data[0].ReceiptURL
	}
	return intent
}

func (c *Client) do(ctx context.Context, method, path string, form url.Values, idempotencyKey string, out any) error {
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req, err := http.NewRequestWithContext(ctx, method, c.apiURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call stripe: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		if err := json.NewDecoder(resp.Body).Decode(&eb); err == nil && eb.Error != nil {
			return eb.Error
		}
		return fmt.Errorf("stripe returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode stripe response: %w", err)
	}
	return nil
}

// CreateIntent creates a PaymentIntent for the given amount and currency,
// tagged with attendee and session metadata. Each call carries a fresh
// idempotency key; retries at a higher level create distinct intents.
func (c *Client) CreateIntent(ctx context.Context, params domain.PaymentIntentParams) (*domain.PaymentIntent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(params.Amount, 10))
	form.Set("currency", params.Currency)
	form.Set("automatic_payment_methods[enabled]", "true")
	form.Set("metadata[customer_email]", params.CustomerEmail)
	form.Set("metadata[customer_name]", params.CustomerName)
	form.Set("metadata[training_title]", params.TrainingTitle)
	form.Set("metadata[session_ref]", params.SessionRef)

	var body intentBody
	if err := c.do(ctx, http.MethodPost, "/v1/payment_intents", form, uuid.NewString(), &body); err != nil {
		return nil, err
	}
	return body.toDomain(), nil
}

// GetIntent fetches the current provider-side state of a PaymentIntent.
func (c *Client) GetIntent(ctx context.Context, intentID string) (*domain.PaymentIntent, error) {
	var body intentBody
	if err := c.do(ctx, http.MethodGet, "/v1/payment_intents/"+url.PathEscape(intentID), nil, "", &body); err != nil {
		return nil, err
	}
	return body.toDomain(), nil
}

// CreateCustomer creates a Stripe customer keyed by email.
func (c *Client) CreateCustomer(ctx context.Context, email, name string) (string, error) {
	form := url.Values{}
	form.Set("email", email)
	form.Set("name", name)
	form.Set("metadata[training_customer]", "true")

	var body struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/v1/customers", form, "", &body); err != nil {
		return "", err
	}
	return body.ID, nil
}
