package entities

import "time"

// ProjectStatus represents the operator-managed lifecycle of a submission.
//
// Transitions are free-form: an operator may set any status at any time from
// the admin listing. The submitter never mutates status.

type ProjectStatus string

const (
	ProjectStatusPending        ProjectStatus = "pending"
	ProjectStatusDepositPaid    ProjectStatus = "deposit_paid"
	ProjectStatusContractSigned ProjectStatus = "contract_signed"
	ProjectStatusInProgress     ProjectStatus = "in_progress"
	ProjectStatusCompleted      ProjectStatus = "completed"
)

// KnownProjectStatuses lists every accepted status value, in lifecycle order.
var KnownProjectStatuses = []ProjectStatus{
	ProjectStatusPending,
	ProjectStatusDepositPaid,
	ProjectStatusContractSigned,
	ProjectStatusInProgress,
	ProjectStatusCompleted,
}

func (s ProjectStatus) Valid() bool {
	for _, k := range KnownProjectStatuses {
		if s == k {
			return true
		}
	}
	return false
}

// QualificationSource tags where a score came from, so fabricated fallback
// scores are never mistaken for real ones.

type QualificationSource string

const (
	QualificationSourceLOA      QualificationSource = "loa"
	QualificationSourceFallback QualificationSource = "fallback"
)

// Qualification is the enrichment produced by the LOA scoring step (or its
// local fallback). Score is 0-100; Priority is HIGH/MEDIUM/LOW.
type Qualification struct {
	Score          int                 `json:"score"`
	EstimatedValue float64             `json:"estimated_value"`
	Priority       string              `json:"priority"`
	Source         QualificationSource `json:"source"`
}

// ProjectForm is the wizard's in-progress field state. All values are kept as
// the raw strings the funnel collected; parsing (budget, attendees) happens at
// submission time. The wizard instance owns this exclusively until submit.
type ProjectForm struct {
	ServiceID         string `json:"service_id"`
	ServiceType       string `json:"service_type"`
	ProjectName       string `json:"project_name"`
	Timeline          string `json:"timeline"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Company           string `json:"company"`
	Website           string `json:"website"`
	Description       string `json:"description"`
	EventType         string `json:"event_type"`
	ExpectedAttendees string `json:"expected_attendees"`
	Budget            string `json:"budget"`
	Requirements      string `json:"requirements"`
	Challenges        string `json:"challenges"`
}

// ProjectSubmission is the central lead record.
//
// Storage model:
//   - DynamoDB: table ai_projects or creative_projects by category, PK: id
//   - SQLite backup log: append-only rows keyed by a monotonic sequence
//
// Exactly one submission is created per completed wizard run; partial wizard
// state is never persisted.
type ProjectSubmission struct {
	ID         string `json:"id"`
	TrackingID string `json:"tracking_id"`

	ServiceID   string          `json:"service_id"`
	ServiceName string          `json:"service_name"`
	Category    ServiceCategory `json:"category"`
	Plan        string          `json:"plan,omitempty"`

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

	Budget        int           `json:"budget"`
	Qualification Qualification `json:"qualification"`

	Status    ProjectStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}
