package entities

import "strings"

// ServiceCategory partitions the catalog and selects the DynamoDB table a
// submission lands in (ai_projects vs creative_projects; eventos shares the
// creative table).

type ServiceCategory string

const (
	CategoryAI       ServiceCategory = "ai"
	CategoryCreative ServiceCategory = "creative"
	CategoryEventOS  ServiceCategory = "eventos"
)

func (c ServiceCategory) Valid() bool {
	switch c {
	case CategoryAI, CategoryCreative, CategoryEventOS:
		return true
	}
	return false
}

// ServiceCatalogEntry is static reference data: loaded once, read-only for the
// lifetime of the process.
type ServiceCatalogEntry struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      ServiceCategory `json:"category"`
	Price         string          `json:"price"`
	Description   string          `json:"description"`
	Features      []string        `json:"features,omitempty"`
	DefaultBudget int             `json:"-"`
}

var serviceCatalog = []ServiceCatalogEntry{
	// AI services
	{ID: "ai-brand-voice", Name: "AI Brand Voice & Content Generation", Category: CategoryAI, Price: "From $2,500", Description: "Custom GPT that creates content in your brand voice", DefaultBudget: 2500},
	{ID: "ai-ux-flow", Name: "AI User Experience Flow", Category: CategoryAI, Price: "From $3,000", Description: "AI-powered UX optimization", DefaultBudget: 3000},
	{ID: "ai-visual-design", Name: "AI Visual Design System", Category: CategoryAI, Price: "From $2,000", Description: "AI logo and brand identity", DefaultBudget: 2000},
	{ID: "ai-innovation", Name: "AI Innovation & Disruption", Category: CategoryAI, Price: "From $1,500", Description: "AI trend prediction", DefaultBudget: 1500},
	{ID: "ai-interaction", Name: "AI Interaction & Animation", Category: CategoryAI, Price: "From $2,000", Description: "AI-driven interactions and motion", DefaultBudget: 2000},
	{ID: "ai-content-learning", Name: "AI Content & Learning Systems", Category: CategoryAI, Price: "From $1,000", Description: "AI content curation", DefaultBudget: 1000},
	{ID: "ai-trend-forecasting", Name: "AI Trend Forecasting", Category: CategoryAI, Price: "From $2,500", Description: "Real-time trend analysis", DefaultBudget: 2500},
	{ID: "ai-business-automation", Name: "AI Business Automation", Category: CategoryAI, Price: "From $3,000", Description: "AI workflow automation", DefaultBudget: 3000},
	{ID: "ai-multilingual", Name: "AI Multilingual Communication", Category: CategoryAI, Price: "From $3,500", Description: "AI translation and localization", DefaultBudget: 3500},

	// Creative services
	{ID: "web-design", Name: "Web Design & Development", Category: CategoryCreative, Price: "$1,500-$5,000", Description: "Modern responsive websites", DefaultBudget: 1500},
	{ID: "brand-identity", Name: "Brand Identity & Logo Design", Category: CategoryCreative, Price: "$2,000-$5,000", Description: "Complete brand packages", DefaultBudget: 2000},
	{ID: "ecommerce", Name: "E-commerce Platform", Category: CategoryCreative, Price: "$3,000-$8,000", Description: "Online stores with payment", DefaultBudget: 3000},
	{ID: "mobile-app", Name: "Mobile App Design", Category: CategoryCreative, Price: "$5,000-$15,000", Description: "iOS and Android apps", DefaultBudget: 5000},
	{ID: "marketing-campaign", Name: "Marketing Campaign", Category: CategoryCreative, Price: "$2,000-$10,000", Description: "Digital marketing campaigns", DefaultBudget: 2000},

	// EventOS packages
	{ID: "eventos-basic", Name: "EventOS Basic Boost", Category: CategoryEventOS, Price: "$1,500", Description: "EventOS platform license + basic design", DefaultBudget: 1500},
	{ID: "eventos-standard", Name: "EventOS Standard Pro", Category: CategoryEventOS, Price: "$3,000", Description: "EventOS + AI event operator + analytics", DefaultBudget: 3000},
	{ID: "eventos-premium", Name: "EventOS Premium Elite", Category: CategoryEventOS, Price: "$5,000", Description: "EventOS + AI + white-label rights", DefaultBudget: 5000},
	{ID: "eventos-custom", Name: "EventOS Custom Scale", Category: CategoryEventOS, Price: "Custom", Description: "Enterprise solutions with custom features", DefaultBudget: 5000},
}

// Catalog returns the full service catalog. Callers must treat the slice as
// read-only.
func Catalog() []ServiceCatalogEntry {
	return serviceCatalog
}

// CatalogByCategory filters the catalog; an invalid category returns the full
// catalog, matching the funnel's "all" tab.
func CatalogByCategory(c ServiceCategory) []ServiceCatalogEntry {
	if !c.Valid() {
		return serviceCatalog
	}
	out := make([]ServiceCatalogEntry, 0, len(serviceCatalog))
	for _, s := range serviceCatalog {
		if s.Category == c {
			out = append(out, s)
		}
	}
	return out
}

// FindService resolves a catalog entry by id.
func FindService(id string) (ServiceCatalogEntry, bool) {
	for _, s := range serviceCatalog {
		if s.ID == id {
			return s, true
		}
	}
	return ServiceCatalogEntry{}, false
}

// legacyPlanMapping translates plan ids used by older pricing/services pages
// into catalog ids, so pre-selected navigation parameters keep working.
var legacyPlanMapping = map[string]string{
	"ai-brand":      "ai-brand-voice",
	"ai-ux":         "ai-ux-flow",
	"ai-visual":     "ai-visual-design",
	"ai-animation":  "ai-interaction",
	"ai-learning":   "ai-content-learning",
	"ai-trend":      "ai-trend-forecasting",
	"ai-automation": "ai-business-automation",

	"basic":    "eventos-basic",
	"standard": "eventos-standard",
	"premium":  "eventos-premium",
	"custom":   "eventos-custom",
}

// MapPlanID maps a legacy plan value to a catalog service id. Unknown values
// pass through unchanged so direct catalog ids keep working.
func MapPlanID(plan string) string {
	plan = strings.TrimSpace(plan)
	if plan == "" {
		return ""
	}
	if mapped, ok := legacyPlanMapping[plan]; ok {
		return mapped
	}
	return plan
}
