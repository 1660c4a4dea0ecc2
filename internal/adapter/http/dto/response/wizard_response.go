package response

import (
	"lmnts_studio/internal/domain/entities"
	"lmnts_studio/internal/usecase"
	"lmnts_studio/internal/wizard"
)

type UpsellPackageResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         int      `json:"price"`
	OriginalPrice int      `json:"original_price"`
	Savings       int      `json:"savings"`
	Features      []string `json:"features"`
	Recommended   bool     `json:"recommended"`
	Description   string   `json:"description"`
}

// WizardResponse is the session snapshot the funnel UI renders after every
// interaction. CanAdvance mirrors the validation gate for the current step so
// the Next button state needs no duplicated client-side rules.
type WizardResponse struct {
	SessionID      string                  `json:"session_id"`
	Flow           string                  `json:"flow"`
	Step           int                     `json:"step"`
	StepCount      int                     `json:"step_count"`
	CurrentStep    string                  `json:"current_step"`
	CanAdvance     bool                    `json:"can_advance"`
	Form           entities.ProjectForm    `json:"form"`
	SelectedUpsell string                  `json:"selected_upsell,omitempty"`
	Upsells        []UpsellPackageResponse `json:"upsells,omitempty"`
	Submitting     bool                    `json:"submitting"`
	Submitted      bool                    `json:"submitted"`
}

func FromWizardView(v usecase.WizardView) WizardResponse {
	s := v.Session
	resp := WizardResponse{
		SessionID:      s.ID,
		Flow:           string(s.Flow),
		Step:           s.Step(),
		StepCount:      s.StepCount(),
		CurrentStep:    string(s.Current()),
		CanAdvance:     wizard.StepValid(s.Current(), s.Form),
		Form:           s.Form,
		SelectedUpsell: s.SelectedUpsell,
		Submitting:     s.Submitting(),
		Submitted:      s.Submitted(),
	}
	for _, p := range v.Upsells {
		resp.Upsells = append(resp.Upsells, fromUpsellPackage(p))
	}
	return resp
}

func fromUpsellPackage(p entities.UpsellPackage) UpsellPackageResponse {
	return UpsellPackageResponse{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Savings:       p.Savings,
		Features:      p.Features,
		Recommended:   p.Recommended,
		Description:   p.Description,
	}
}
