package interfaces

import (
	"context"

	"lmnts_studio/internal/domain/entities"
)

//go:generate mockgen -source=qualification_client_interface.go -destination=mocks/qualification_client_mock.go -package=mock_interfaces

// QualificationResult is what the remote LOA scoring API returns for a lead.
type QualificationResult struct {
	TrackingID    string
	Qualification entities.Qualification
}

// IQualificationClient abstracts the remote LOA lead-scoring API.
//
// The pipeline treats this call as enrichment only: on error the caller
// substitutes a local fallback and continues.

type IQualificationClient interface {
	Qualify(ctx context.Context, lead entities.LeadPayload) (QualificationResult, error)
}
