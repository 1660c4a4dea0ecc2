package interfaces

import (
	"context"

	"lmnts_studio/internal/domain/entities"
)

//go:generate mockgen -source=backup_store_interface.go -destination=mocks/backup_store_mock.go -package=mock_interfaces

// IBackupStore is the local append-only durability log.
//
// A submission counts as accepted once it is appended here, regardless of any
// remote outcome. Appends are not deduplicated; the wizard's terminal state
// prevents re-submission under normal use. UpdateSubmissionStatus is the one
// local mutation, driven by the admin listing's optimistic status change; an
// unknown id yields a zero-value submission and no error.

type IBackupStore interface {
	AppendSubmission(ctx context.Context, s entities.ProjectSubmission) error
	ListSubmissions(ctx context.Context) ([]entities.ProjectSubmission, error)
	UpdateSubmissionStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.ProjectSubmission, error)
	AppendOutboundMessage(ctx context.Context, m entities.OutboundMessageRecord) error
	ListOutboundMessages(ctx context.Context) ([]entities.OutboundMessageRecord, error)
}
