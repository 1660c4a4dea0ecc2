// Package qualification talks to the remote LOA lead-scoring API.
package qualification

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

var ErrMissingBaseURL = errors.New("loa base url is not set")

const defaultTimeout = 10 * time.Second

// Client calls the LOA scoring endpoints. Errors are expected in normal
// operation (the API is frequently offline); callers substitute the local
// fallback and continue.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

var _ interfaces.IQualificationClient = (*Client)(nil)

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

type qualifyRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Company     string `json:"company,omitempty"`
	Phone       string `json:"phone,omitempty"`
	ServiceType string `json:"service_type"`
	Timeline    string `json:"timeline"`
	Budget      string `json:"budget"`
	Description string `json:"description,omitempty"`
}

type qualifyResponse struct {
	TrackingID    string `json:"tracking_id"`
	Qualification struct {
		Score          int     `json:"score"`
		EstimatedValue float64 `json:"estimated_value"`
		Priority       string  `json:"priority"`
	} `json:"qualification"`
}

// Qualify posts the lead to /api/leads/qualify and maps the scoring response.
func (c *Client) Qualify(ctx context.Context, lead entities.LeadPayload) (interfaces.QualificationResult, error) {
	if c == nil || c.BaseURL == "" {
		return interfaces.QualificationResult{}, ErrMissingBaseURL
	}

	body, err := json.Marshal(qualifyRequest{
		Name:        lead.Name,
		Email:       lead.Email,
		Company:     lead.Company,
		Phone:       lead.Phone,
		ServiceType: lead.ServiceType,
		Timeline:    lead.Timeline,
		Budget:      lead.Budget,
		Description: lead.Description,
	})
	if err != nil {
		return interfaces.QualificationResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/leads/qualify", bytes.NewReader(body))
	if err != nil {
		return interfaces.QualificationResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return interfaces.QualificationResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return interfaces.QualificationResult{}, fmt.Errorf("loa non-2xx: %d: %s", resp.StatusCode, string(snippet))
	}

	var out qualifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return interfaces.QualificationResult{}, err
	}
	log.Printf("[loa][client] qualify success tracking_id=%s score=%d", out.TrackingID, out.Qualification.Score)

	return interfaces.QualificationResult{
		TrackingID: out.TrackingID,
		Qualification: entities.Qualification{
			Score:          out.Qualification.Score,
			EstimatedValue: out.Qualification.EstimatedValue,
			Priority:       out.Qualification.Priority,
			Source:         entities.QualificationSourceLOA,
		},
	}, nil
}
