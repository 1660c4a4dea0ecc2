package entities

// LeadPayload is the normalized lead shape posted to the automation workflow
// and the LOA scoring API. Budget stays a string on the wire (the upstream
// workflow expects the raw form value).
type LeadPayload struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Company     string `json:"company,omitempty"`
	Phone       string `json:"phone,omitempty"`
	ServiceType string `json:"service_type"`
	Budget      string `json:"budget"`
	Description string `json:"description,omitempty"`
	Timeline    string `json:"timeline"`
	ProjectName string `json:"project_name"`
	Source      string `json:"source"`
}
