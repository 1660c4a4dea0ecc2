package interfaces

import (
	"context"

	"lmnts_studio/internal/domain/entities"
)

//go:generate mockgen -source=email_sender_interface.go -destination=mocks/email_sender_mock.go -package=mock_interfaces

// IEmailSender sends the transactional emails around a submission. Both sends
// are best-effort: implementations queue the message into the backup store's
// outbound log instead of failing the submission.

type IEmailSender interface {
	SendClientConfirmation(ctx context.Context, s entities.ProjectSubmission) error
	SendAgencyNotification(ctx context.Context, s entities.ProjectSubmission) error
}
