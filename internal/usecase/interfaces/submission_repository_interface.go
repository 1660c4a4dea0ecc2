package interfaces

import (
	"context"

	"lmnts_studio/internal/domain/entities"
)

//go:generate mockgen -source=submission_repository_interface.go -destination=mocks/submission_repository_mock.go -package=mock_interfaces

// ISubmissionRepository abstracts the primary hosted database (DynamoDB).
//
// The funnel only inserts; the admin listing scans and patches status. Writes
// from the pipeline are best-effort: a failed insert must not abort the
// submission (the backup store is the durability guarantee).

type ISubmissionRepository interface {
	Insert(ctx context.Context, s entities.ProjectSubmission) error
	List(ctx context.Context) ([]entities.ProjectSubmission, error)
	UpdateStatus(ctx context.Context, id string, status entities.ProjectStatus) error
}
