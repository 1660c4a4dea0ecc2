package request

import (
	"strings"

	"lmnts_studio/internal/wizard"
)

// WizardStartRequest opens a funnel session. Flow defaults to the unified
// five-step funnel; "ai" selects the four-step AI project funnel. Plan and
// service_type come from the landing page link that sent the visitor in
// (legacy plan ids included).
type WizardStartRequest struct {
	Flow        string `json:"flow"`
	Plan        string `json:"plan"`
	ServiceType string `json:"service_type"`
}

func (r WizardStartRequest) ResolveFlow() wizard.Flow {
	switch strings.TrimSpace(strings.ToLower(r.Flow)) {
	case "", string(wizard.FlowUnified):
		return wizard.FlowUnified
	case string(wizard.FlowAI):
		return wizard.FlowAI
	}
	return wizard.Flow(strings.TrimSpace(strings.ToLower(r.Flow)))
}

// WizardUpdateRequest carries a partial form patch. Absent fields leave the
// stored value untouched; an explicit empty string clears it.
type WizardUpdateRequest struct {
	ServiceID         *string `json:"service_id"`
	ProjectName       *string `json:"project_name"`
	Timeline          *string `json:"timeline"`
	Name              *string `json:"name"`
	Email             *string `json:"email"`
	Phone             *string `json:"phone"`
	Company           *string `json:"company"`
	Website           *string `json:"website"`
	Description       *string `json:"description"`
	EventType         *string `json:"event_type"`
	ExpectedAttendees *string `json:"expected_attendees"`
	Budget            *string `json:"budget"`
	Requirements      *string `json:"requirements"`
	Challenges        *string `json:"challenges"`
}

// UpsellSelectRequest records the review-step package choice. An empty
// package_id means "No Thanks, Continue with Original Order".
type UpsellSelectRequest struct {
	PackageID string `json:"package_id"`
}
