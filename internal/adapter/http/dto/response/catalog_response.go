package response

import "lmnts_studio/internal/domain/entities"

type ServiceResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Price         string   `json:"price"`
	Description   string   `json:"description"`
	Features      []string `json:"features,omitempty"`
	DefaultBudget int      `json:"default_budget"`
}

func FromCatalog(entries []entities.ServiceCatalogEntry) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ServiceResponse{
			ID:            e.ID,
			Name:          e.Name,
			Category:      string(e.Category),
			Price:         e.Price,
			Description:   e.Description,
			Features:      e.Features,
			DefaultBudget: e.DefaultBudget,
		})
	}
	return out
}
