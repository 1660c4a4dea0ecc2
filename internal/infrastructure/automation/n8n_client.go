// Package automation posts leads and operator actions to the n8n workflow
// webhooks.
package automation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"lmnts_studio/internal/domain/entities"
	"lmnts_studio/internal/usecase/interfaces"
)

var ErrMissingWebhookURL = errors.New("automation webhook url is not set")

const defaultTimeout = 10 * time.Second

// Client wraps the n8n webhook endpoints. Each workflow hangs off the same
// base URL:
//
//	POST {base}/leads            new lead intake (responds with payment_link)
//	POST {base}/status-update    operator changed a submission status
//	POST {base}/send-message     operator message to a client
//	POST {base}/generate-invoice deposit invoice drafting
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

var _ interfaces.ILeadNotifier = (*Client)(nil)

func NewClient(baseURL string, opts ...func(*Client)) *Client {
	c := &Client{
		BaseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		HTTPClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func WithHTTPClient(hc *http.Client) func(*Client) {
	return func(c *Client) {
		if hc != nil {
			c.HTTPClient = hc
		}
	}
}

type leadResponse struct {
	PaymentLink string `json:"payment_link"`
}

// NotifyLead posts the normalized lead payload and returns the payment link
// from the workflow response, when the workflow produced one.
func (c *Client) NotifyLead(ctx context.Context, lead entities.LeadPayload) (string, error) {
	body, err := c.post(ctx, "/leads", lead)
	if err != nil {
		return "", err
	}
	var out leadResponse
	if err := json.Unmarshal(body, &out); err != nil {
		// A workflow without a response node answers with a bare ack; the
		// lead was still delivered.
		log.Printf("[automation][client] lead response not json, ignoring body_len=%d", len(body))
		return "", nil
	}
	return out.PaymentLink, nil
}

func (c *Client) NotifyStatusChange(ctx context.Context, clientID string, status entities.ProjectStatus) error {
	payload := map[string]any{
		"clientId":  clientID,
		"newStatus": status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	_, err := c.post(ctx, "/status-update", payload)
	return err
}

func (c *Client) SendMessage(ctx context.Context, toEmail, toName, message string) error {
	payload := map[string]any{
		"to":      toEmail,
		"name":    toName,
		"message": message,
		"type":    "admin_message",
	}
	_, err := c.post(ctx, "/send-message", payload)
	return err
}

func (c *Client) GenerateInvoice(ctx context.Context, inv interfaces.InvoiceRequest) error {
	payload := map[string]any{
		"clientId":      inv.ClientID,
		"clientName":    inv.ClientName,
		"clientEmail":   inv.ClientEmail,
		"amount":        inv.Amount,
		"depositAmount": inv.DepositAmount,
	}
	_, err := c.post(ctx, "/generate-invoice", payload)
	return err
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	if c == nil || c.BaseURL == "" {
		return nil, ErrMissingWebhookURL
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("n8n non-2xx: %d: %s", resp.StatusCode, string(respBody[:min(len(respBody), 2048)]))
	}
	return respBody, nil
}
