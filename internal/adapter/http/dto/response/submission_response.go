package response

import (
	"lmnts_studio/internal/domain/entities"
	"lmnts_studio/internal/usecase"
)

type QualificationResponse struct {
	Score          int     `json:"score"`
	EstimatedValue float64 `json:"estimated_value"`
	Priority       string  `json:"priority"`
	Source         string  `json:"source"`
}

// SubmissionResponse is the funnel's confirmation screen payload.
type SubmissionResponse struct {
	Success       bool                  `json:"success"`
	SubmissionID  string                `json:"submission_id"`
	TrackingID    string                `json:"tracking_id"`
	PaymentLink   string                `json:"payment_link,omitempty"`
	Qualification QualificationResponse `json:"qualification"`
}

func FromSubmissionResult(res usecase.SubmissionResult) SubmissionResponse {
	return SubmissionResponse{
		Success:       res.Success,
		SubmissionID:  res.Submission.ID,
		TrackingID:    res.TrackingID,
		PaymentLink:   res.PaymentLink,
		Qualification: fromQualification(res.Qualification),
	}
}

func fromQualification(q entities.Qualification) QualificationResponse {
	return QualificationResponse{
		Score:          q.Score,
		EstimatedValue: q.EstimatedValue,
		Priority:       q.Priority,
		Source:         string(q.Source),
	}
}
