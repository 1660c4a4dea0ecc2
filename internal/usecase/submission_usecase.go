package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"lmnts_studio/internal/domain/entities"
	"lmnts_studio/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrUnknownService = errors.New("unknown service id")
	ErrMissingContact = errors.New("missing contact name or email")
	ErrBackupFailed   = errors.New("local backup write failed")
)

const leadSource = "website_form"

// SubmissionResult is what the funnel shows the user after the pipeline
// settles. Success is driven by local durability alone: remote failures are
// swallowed and only logged.
type SubmissionResult struct {
	Success       bool                   `json:"success"`
	TrackingID    string                 `json:"tracking_id"`
	PaymentLink   string                 `json:"payment_link,omitempty"`
	Qualification entities.Qualification `json:"qualification"`
	Submission    entities.ProjectSubmission
}

// ISubmissionPipeline runs the ordered side effects of a completed wizard.

type ISubmissionPipeline interface {
	Submit(ctx context.Context, form entities.ProjectForm, plan string) (SubmissionResult, error)
}

// SubmissionPipeline executes, in order: LOA qualification (with a local
// fallback), the primary database insert, the automation webhook (with a
// payment-link fallback), transactional emails, and finally the backup-store
// append. Every step except the backup append is fire-and-continue on error.
// The asymmetry is deliberate: never lose a lead, even when every remote
// collaborator is down.
type SubmissionPipeline struct {
	repo      interfaces.ISubmissionRepository
	backup    interfaces.IBackupStore
	qualifier interfaces.IQualificationClient
	notifier  interfaces.ILeadNotifier
	emails    interfaces.IEmailSender
}

var _ ISubmissionPipeline = (*SubmissionPipeline)(nil)

func NewSubmissionPipeline(
	repo interfaces.ISubmissionRepository,
	backup interfaces.IBackupStore,
	qualifier interfaces.IQualificationClient,
	notifier interfaces.ILeadNotifier,
	emails interfaces.IEmailSender,
) *SubmissionPipeline {
	return &SubmissionPipeline{repo: repo, backup: backup, qualifier: qualifier, notifier: notifier, emails: emails}
}

func (p *SubmissionPipeline) Submit(ctx context.Context, form entities.ProjectForm, plan string) (SubmissionResult, error) {
	svc, ok := entities.FindService(strings.TrimSpace(form.ServiceID))
	if !ok {
		log.Printf("[lead][pipeline] unknown service id=%q", form.ServiceID)
		return SubmissionResult{}, ErrUnknownService
	}
	if strings.TrimSpace(form.Name) == "" || strings.TrimSpace(form.Email) == "" {
		log.Printf("[lead][pipeline] missing contact fields service=%s", svc.ID)
		return SubmissionResult{}, ErrMissingContact
	}

	budget := ParseBudget(form.Budget, svc.DefaultBudget)
	lead := leadPayloadFromForm(form, svc)
	log.Printf("[lead][pipeline] submit start service=%s email=%s budget=%d", svc.ID, form.Email, budget)

	// 1. Qualification enrichment. Never blocks the pipeline: a failed or
	// unconfigured scoring call gets the local fallback, tagged as such.
	tracking, qual := p.qualify(ctx, lead, budget)

	sub := entities.ProjectSubmission{
		ID:                uuid.NewString(),
		TrackingID:        tracking,
		ServiceID:         svc.ID,
		ServiceName:       svc.Name,
		Category:          svc.Category,
		Plan:              strings.TrimSpace(plan),
		ProjectName:       strings.TrimSpace(form.ProjectName),
		Timeline:          strings.TrimSpace(form.Timeline),
		Description:       strings.TrimSpace(form.Description),
		EventType:         strings.TrimSpace(form.EventType),
		ExpectedAttendees: parseIntOrZero(form.ExpectedAttendees),
		ContactName:       strings.TrimSpace(form.Name),
		Email:             strings.TrimSpace(form.Email),
		Phone:             strings.TrimSpace(form.Phone),
		Company:           strings.TrimSpace(form.Company),
		Website:           strings.TrimSpace(form.Website),
		Budget:            budget,
		Qualification:     qual,
		Status:            entities.ProjectStatusPending,
		CreatedAt:         time.Now().UTC(),
	}

	// 2. Primary database insert. Log and continue on failure.
	if p.repo != nil {
		if err := p.repo.Insert(ctx, sub); err != nil {
			log.Printf("[lead][pipeline] database insert failed tracking_id=%s err=%v", sub.TrackingID, err)
		} else {
			log.Printf("[lead][pipeline] database insert success tracking_id=%s table_category=%s", sub.TrackingID, sub.Category)
		}
	}

	// 3. Automation webhook. A failed call falls back to the budget-tiered
	// payment link so the operator still has something to send.
	paymentLink := p.notify(ctx, lead, budget)

	// Transactional emails ride on the webhook outcome path: best-effort, the
	// sender queues undeliverable messages into the outbound backup log.
	if p.emails != nil {
		if err := p.emails.SendClientConfirmation(ctx, sub); err != nil {
			log.Printf("[lead][pipeline] client confirmation failed tracking_id=%s err=%v", sub.TrackingID, err)
		}
		if err := p.emails.SendAgencyNotification(ctx, sub); err != nil {
			log.Printf("[lead][pipeline] agency notification failed tracking_id=%s err=%v", sub.TrackingID, err)
		}
	}

	// 4. Local backup append: the durability guarantee, and the only step
	// whose failure surfaces to the user.
	if err := p.backup.AppendSubmission(ctx, sub); err != nil {
		log.Printf("[lead][pipeline] backup append failed tracking_id=%s err=%v", sub.TrackingID, err)
		return SubmissionResult{}, fmt.Errorf("%w: %v", ErrBackupFailed, err)
	}
	log.Printf("[lead][pipeline] submit success tracking_id=%s score=%d source=%s", sub.TrackingID, qual.Score, qual.Source)

	return SubmissionResult{
		Success:       true,
		TrackingID:    sub.TrackingID,
		PaymentLink:   paymentLink,
		Qualification: qual,
		Submission:    sub,
	}, nil
}

func (p *SubmissionPipeline) qualify(ctx context.Context, lead entities.LeadPayload, budget int) (string, entities.Qualification) {
	if p.qualifier != nil {
		res, err := p.qualifier.Qualify(ctx, lead)
		if err == nil {
			log.Printf("[lead][pipeline] qualification success tracking_id=%s score=%d", res.TrackingID, res.Qualification.Score)
			res.Qualification.Source = entities.QualificationSourceLOA
			if res.TrackingID == "" {
				res.TrackingID = fmt.Sprintf("LOA-%d", time.Now().UnixMilli())
			}
			return res.TrackingID, res.Qualification
		}
		log.Printf("[lead][pipeline] qualification failed, using fallback err=%v", err)
	}
	return fmt.Sprintf("MOCK-%d", time.Now().UnixMilli()), FallbackQualification(budget)
}

func (p *SubmissionPipeline) notify(ctx context.Context, lead entities.LeadPayload, budget int) string {
	if p.notifier == nil {
		return FallbackPaymentLink(budget)
	}
	link, err := p.notifier.NotifyLead(ctx, lead)
	if err != nil {
		log.Printf("[lead][pipeline] automation webhook failed, using payment link fallback err=%v", err)
		return FallbackPaymentLink(budget)
	}
	log.Printf("[lead][pipeline] automation webhook success payment_link=%q", link)
	if link == "" {
		link = FallbackPaymentLink(budget)
	}
	return link
}

// FallbackQualification fabricates the demo-parity local score used when the
// LOA API is unreachable: 70-99, estimated value at 1.8x budget, HIGH priority
// above $3,000. The fallback source tag keeps it distinguishable from a real
// score.
func FallbackQualification(budget int) entities.Qualification {
	priority := "MEDIUM"
	if budget > 3000 {
		priority = "HIGH"
	}
	return entities.Qualification{
		Score:          70 + rand.Intn(30),
		EstimatedValue: float64(budget) * 1.8,
		Priority:       priority,
		Source:         entities.QualificationSourceFallback,
	}
}

// FallbackPaymentLink is the budget-tiered PayPal link used when the
// automation workflow does not hand one back.
func FallbackPaymentLink(budget int) string {
	if budget >= 3000 {
		return fmt.Sprintf("https://PayPal.Me/9LMNTSSTUDIO/%d", budget*8/10)
	}
	return "https://PayPal.Me/9LMNTSSTUDIO/500"
}

// ParseBudget extracts the numeric amount from a free-text budget field
// ("$2,500", "2500-5000", ...) by keeping digits only, falling back to the
// service's default when nothing parses.
func ParseBudget(raw string, def int) int {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return def
	}
	n, err := strconv.Atoi(b.String())
	if err != nil || n == 0 {
		return def
	}
	return n
}

func parseIntOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func leadPayloadFromForm(form entities.ProjectForm, svc entities.ServiceCatalogEntry) entities.LeadPayload {
	return entities.LeadPayload{
		Name:        strings.TrimSpace(form.Name),
		Email:       strings.TrimSpace(form.Email),
		Company:     strings.TrimSpace(form.Company),
		Phone:       strings.TrimSpace(form.Phone),
		ServiceType: svc.Name,
		Budget:      strings.TrimSpace(form.Budget),
		Description: strings.TrimSpace(form.Description),
		Timeline:    strings.TrimSpace(form.Timeline),
		ProjectName: strings.TrimSpace(form.ProjectName),
		Source:      leadSource,
	}
}
