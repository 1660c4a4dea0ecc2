// Package recommend selects upsell packages for a just-submitted lead.
//
// Selection is a flat filter-and-collect over a declarative rule table: every
// rule whose predicate matches appends its fixed package literal, with the
// Recommended flag derived from the rule's own budget threshold. There is no
// ranking, no mutual exclusion and no fallback package.
package recommend

import (
	"strings"

	"lmnts_studio/internal/domain/entities"
)

type rule struct {
	serviceContains  string // empty means any service
	minBudget        int    // 0 means any budget
	recommendedAbove int    // budget threshold flipping Recommended on
	pkg              entities.UpsellPackage
}

var rules = []rule{
	{
		serviceContains:  "AI Brand Voice",
		recommendedAbove: 3000,
		pkg: entities.UpsellPackage{
			ID:            "ai-brand-complete",
			Name:          "AI Brand Complete Package",
			Price:         5000,
			OriginalPrice: 8500,
			Savings:       41,
			Features: []string{
				"AI Brand Voice & Content Generation",
				"AI Visual Design System",
				"AI Multilingual Communication",
				"3 Months Content Strategy",
				"Priority Support",
			},
			Description: "Complete brand transformation with AI-powered voice, visuals, and global communication",
		},
	},
	{
		serviceContains:  "AI Business Automation",
		recommendedAbove: 5000,
		pkg: entities.UpsellPackage{
			ID:            "ai-business-empire",
			Name:          "AI Business Empire",
			Price:         15000,
			OriginalPrice: 25000,
			Savings:       40,
			Features: []string{
				"AI Business Automation",
				"AI Innovation & Disruption",
				"AI Trend Forecasting",
				"Custom AI Model Development",
				"Enterprise Support",
			},
			Description: "Build an AI-powered business empire with automation, innovation, and trend prediction",
		},
	},
	{
		serviceContains:  "Web Design",
		recommendedAbove: 4000,
		pkg: entities.UpsellPackage{
			ID:            "digital-dominance",
			Name:          "Digital Dominance Package",
			Price:         7500,
			OriginalPrice: 13500,
			Savings:       44,
			Features: []string{
				"Web Design & Development",
				"AI Brand Voice Basic",
				"AI User Experience Flow",
				"SEO Optimization",
				"6 Months Support",
			},
			Description: "Establish digital dominance with AI-powered design, UX, and brand voice",
		},
	},
	{
		minBudget:        3000,
		recommendedAbove: 3000,
		pkg: entities.UpsellPackage{
			ID:            "ai-transformation",
			Name:          "AI Transformation Bundle",
			Price:         10000,
			OriginalPrice: 18000,
			Savings:       44,
			Features: []string{
				"AI Brand Voice & Content",
				"AI Business Automation",
				"AI Visual Design System",
				"AI Trend Forecasting",
				"Complete Integration",
			},
			Description: "Transform your entire business with our comprehensive AI suite",
		},
	},
	{
		minBudget:        8000,
		recommendedAbove: 10000,
		pkg: entities.UpsellPackage{
			ID:            "enterprise-ai-suite",
			Name:          "Enterprise AI Suite",
			Price:         25000,
			OriginalPrice: 50000,
			Savings:       50,
			Features: []string{
				"All AI Services (Pro Level)",
				"Custom AI Model Development",
				"Dedicated Infrastructure",
				"White-label Rights",
				"Priority Enterprise Support",
			},
			Description: "Complete enterprise AI solution with custom development and white-label rights",
		},
	},
}

func (r rule) matches(serviceName string, budget int) bool {
	if r.serviceContains != "" && !strings.Contains(serviceName, r.serviceContains) {
		return false
	}
	if r.minBudget > 0 && budget < r.minBudget {
		return false
	}
	return true
}

// Packages returns the upsell packages matching the current service and
// budget, in rule order.
func Packages(serviceName string, budget int) []entities.UpsellPackage {
	var out []entities.UpsellPackage
	for _, r := range rules {
		if !r.matches(serviceName, budget) {
			continue
		}
		pkg := r.pkg
		pkg.Recommended = budget >= r.recommendedAbove
		out = append(out, pkg)
	}
	return out
}

// FindPackage resolves a package by id against the full rule table, ignoring
// predicates. Used to echo back a selected upsell.
func FindPackage(id string) (entities.UpsellPackage, bool) {
	for _, r := range rules {
		if r.pkg.ID == id {
			return r.pkg, true
		}
	}
	return entities.UpsellPackage{}, false
}
