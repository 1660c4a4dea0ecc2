package interfaces

import (
	"context"

	"lmnts_studio/internal/domain/entities"
)

//go:generate mockgen -source=lead_notifier_interface.go -destination=mocks/lead_notifier_mock.go -package=mock_interfaces

// InvoiceRequest carries what the automation workflow needs to draft a
// deposit invoice for a client.
type InvoiceRequest struct {
	ClientID      string
	ClientName    string
	ClientEmail   string
	Amount        float64
	DepositAmount float64
}

// ILeadNotifier abstracts the n8n automation workflow webhooks.
//
// NotifyLead posts the normalized lead payload and returns the payment link
// from the workflow response, when one is present. The remaining calls are
// fire-and-forget operator actions; all of them are best-effort.

type ILeadNotifier interface {
	NotifyLead(ctx context.Context, lead entities.LeadPayload) (paymentLink string, err error)
	NotifyStatusChange(ctx context.Context, clientID string, status entities.ProjectStatus) error
	SendMessage(ctx context.Context, toEmail, toName, message string) error
	GenerateInvoice(ctx context.Context, inv InvoiceRequest) error
}
