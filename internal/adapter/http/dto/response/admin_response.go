package response

import (
	"time"

	"lmnts_studio/internal/domain/entities"
)

// AdminSubmissionResponse is one row of the operator's listing.
type AdminSubmissionResponse struct {
	ID          string `json:"id"`
	TrackingID  string `json:"tracking_id"`
	ServiceID   string `json:"service_id"`
	ServiceName string `json:"service_name"`
	Category    string `json:"category"`
	Plan        string `json:"plan,omitempty"`

	ProjectName       string `json:"project_name"`
	Timeline          string `json:"timeline"`
	Description       string `json:"description,omitempty"`
	EventType         string `json:"event_type,omitempty"`
	ExpectedAttendees int    `json:"expected_attendees,omitempty"`

	ContactName string `json:"contact_name"`
	Email       string `json:"contact_email"`
	Phone       string `json:"phone,omitempty"`
	Company     string `json:"company,omitempty"`
	Website     string `json:"website,omitempty"`

	Budget        int                   `json:"budget"`
	Qualification QualificationResponse `json:"qualification"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func FromProjectSubmission(s entities.ProjectSubmission) AdminSubmissionResponse {
	return AdminSubmissionResponse{
		ID:                s.ID,
		TrackingID:        s.TrackingID,
		ServiceID:         s.ServiceID,
		ServiceName:       s.ServiceName,
		Category:          string(s.Category),
		Plan:              s.Plan,
		ProjectName:       s.ProjectName,
		Timeline:          s.Timeline,
		Description:       s.Description,
		EventType:         s.EventType,
		ExpectedAttendees: s.ExpectedAttendees,
		ContactName:       s.ContactName,
		Email:             s.Email,
		Phone:             s.Phone,
		Company:           s.Company,
		Website:           s.Website,
		Budget:            s.Budget,
		Qualification:     fromQualification(s.Qualification),
		Status:            string(s.Status),
		CreatedAt:         s.CreatedAt,
	}
}

func FromProjectSubmissions(subs []entities.ProjectSubmission) []AdminSubmissionResponse {
	out := make([]AdminSubmissionResponse, 0, len(subs))
	for _, s := range subs {
		out = append(out, FromProjectSubmission(s))
	}
	return out
}
