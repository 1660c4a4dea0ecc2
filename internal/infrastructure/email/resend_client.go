// Package email sends transactional mail through the Resend API, queueing
// undeliverable messages into the backup store's outbound log for manual
// replay.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"lmnts_studio/internal/domain/entities"
	"lmnts_studio/internal/usecase/interfaces"
)

const (
	defaultAPIURL  = "https://api.resend.com/emails"
	defaultTimeout = 10 * time.Second
)

// Sender delivers the client-confirmation and agency-notification emails.
// Delivery failures never propagate: the message is appended to the outbound
// backup queue and the submission continues.
type Sender struct {
	APIURL      string
	APIKey      string
	FromEmail   string
	AgencyEmail string
	HTTPClient  *http.Client

	queue interfaces.IBackupStore
}

var _ interfaces.IEmailSender = (*Sender)(nil)

func NewSender(apiKey, fromEmail, agencyEmail string, queue interfaces.IBackupStore, opts ...func(*Sender)) *Sender {
	s := &Sender{
		APIURL:      defaultAPIURL,
		APIKey:      strings.TrimSpace(apiKey),
		FromEmail:   fromEmail,
		AgencyEmail: agencyEmail,
		HTTPClient:  &http.Client{Timeout: defaultTimeout},
		queue:       queue,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func WithAPIURL(url string) func(*Sender) {
	return func(s *Sender) {
		if strings.TrimSpace(url) != "" {
			s.APIURL = url
		}
	}
}

func WithHTTPClient(hc *http.Client) func(*Sender) {
	return func(s *Sender) {
		if hc != nil {
			s.HTTPClient = hc
		}
	}
}

type emailMessage struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

func (s *Sender) SendClientConfirmation(ctx context.Context, sub entities.ProjectSubmission) error {
	msg := emailMessage{
		From:    s.FromEmail,
		To:      sub.Email,
		Subject: fmt.Sprintf("Project Confirmation - %s", sub.ServiceName),
		HTML:    clientConfirmationHTML(sub),
	}
	return s.deliver(ctx, msg)
}

func (s *Sender) SendAgencyNotification(ctx context.Context, sub entities.ProjectSubmission) error {
	msg := emailMessage{
		From:    s.FromEmail,
		To:      s.AgencyEmail,
		Subject: fmt.Sprintf("New Project Submission - %s", sub.ServiceName),
		HTML:    agencyNotificationHTML(sub),
	}
	return s.deliver(ctx, msg)
}

// deliver tries the live send and falls back to the outbound queue. It only
// errors when both the send and the queue append fail.
func (s *Sender) deliver(ctx context.Context, msg emailMessage) error {
	err := s.send(ctx, msg)
	if err == nil {
		log.Printf("[email][sender] sent to=%s subject=%q", msg.To, msg.Subject)
		return nil
	}
	log.Printf("[email][sender] send failed, queueing to=%s err=%v", msg.To, err)

	payload, mErr := json.Marshal(msg)
	if mErr != nil {
		return mErr
	}
	rec := entities.OutboundMessageRecord{
		Destination: msg.To,
		Payload:     payload,
		Outcome:     entities.OutboundOutcomeFailed,
		Timestamp:   time.Now().UTC(),
	}
	if qErr := s.queue.AppendOutboundMessage(ctx, rec); qErr != nil {
		log.Printf("[email][sender] queue append failed to=%s err=%v", msg.To, qErr)
		return qErr
	}
	log.Printf("[email][sender] queued for manual processing to=%s", msg.To)
	return nil
}

func (s *Sender) send(ctx context.Context, msg emailMessage) error {
	if s.APIKey == "" {
		return fmt.Errorf("missing RESEND_API_KEY")
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.APIURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.APIKey)

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("resend non-2xx: %d: %s", resp.StatusCode, string(snippet))
	}
	return nil
}

func clientConfirmationHTML(sub entities.ProjectSubmission) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h1>Project Confirmed</h1>")
	fmt.Fprintf(&b, "<p>Hi %s,</p>", sub.ContactName)
	fmt.Fprintf(&b, "<p>Thank you for submitting your project request. Our team will send a detailed proposal within 24 hours.</p>")
	fmt.Fprintf(&b, "<ul><li>Service: %s</li><li>Project: %s</li><li>Timeline: %s</li>", sub.ServiceName, sub.ProjectName, sub.Timeline)
	if sub.Company != "" {
		fmt.Fprintf(&b, "<li>Company: %s</li>", sub.Company)
	}
	b.WriteString("</ul>")
	return b.String()
}

func agencyNotificationHTML(sub entities.ProjectSubmission) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h1>New Project Submission</h1>")
	fmt.Fprintf(&b, "<p><strong>%s</strong> (%s)</p>", sub.ContactName, sub.Email)
	fmt.Fprintf(&b, "<ul><li>Service: %s</li><li>Project: %s</li><li>Timeline: %s</li><li>Budget: $%d</li>", sub.ServiceName, sub.ProjectName, sub.Timeline, sub.Budget)
	if sub.Phone != "" {
		fmt.Fprintf(&b, "<li>Phone: %s</li>", sub.Phone)
	}
	if sub.Company != "" {
		fmt.Fprintf(&b, "<li>Company: %s</li>", sub.Company)
	}
	fmt.Fprintf(&b, "</ul><p>Tracking: %s</p>", sub.TrackingID)
	return b.String()
}
