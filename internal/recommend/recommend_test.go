package recommend

import "testing"

func TestPackages(t *testing.T) {
	t.Run("automation service above threshold", func(t *testing.T) {
		pkgs := Packages("AI Business Automation & Workflow", 5000)

		var found bool
		for _, p := range pkgs {
			if p.ID == "ai-business-empire" {
				found = true
				if !p.Recommended {
					t.Fatal("expected ai-business-empire recommended at $5,000")
				}
			}
		}
		if !found {
			t.Fatal("expected ai-business-empire in the offer")
		}
	})

	t.Run("budget threshold flips recommended only", func(t *testing.T) {
		low := Packages("AI Brand Voice & Content Generation", 1000)
		high := Packages("AI Brand Voice & Content Generation", 4000)

		if len(low) == 0 || low[0].ID != "ai-brand-complete" {
			t.Fatalf("expected ai-brand-complete at any budget, got %+v", low)
		}
		if low[0].Recommended {
			t.Fatal("expected not recommended below $3,000")
		}
		if !high[0].Recommended {
			t.Fatal("expected recommended at $4,000")
		}
	})

	t.Run("generic bundles gate on budget", func(t *testing.T) {
		pkgs := Packages("Event Planning & Coordination", 9000)
		if len(pkgs) != 2 {
			t.Fatalf("expected transformation + enterprise bundles, got %d", len(pkgs))
		}
		if pkgs[0].ID != "ai-transformation" || pkgs[1].ID != "enterprise-ai-suite" {
			t.Fatalf("unexpected rule order: %s, %s", pkgs[0].ID, pkgs[1].ID)
		}
		if !pkgs[0].Recommended {
			t.Fatal("expected ai-transformation recommended at $9,000")
		}
		if pkgs[1].Recommended {
			t.Fatal("expected enterprise-ai-suite not recommended below $10,000")
		}
	})

	t.Run("no rule matches", func(t *testing.T) {
		if pkgs := Packages("Event Planning & Coordination", 500); len(pkgs) != 0 {
			t.Fatalf("expected no offer, got %d packages", len(pkgs))
		}
	})
}

func TestFindPackage(t *testing.T) {
	p, ok := FindPackage("digital-dominance")
	if !ok {
		t.Fatal("expected digital-dominance to resolve")
	}
	if p.Price != 7500 || p.OriginalPrice != 13500 || p.Savings != 44 {
		t.Fatalf("unexpected package literals: %+v", p)
	}

	if _, ok := FindPackage("no-such-package"); ok {
		t.Fatal("expected miss for unknown id")
	}
}
