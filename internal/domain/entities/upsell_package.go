package entities

// UpsellPackage is a bundled, discounted combination of services offered after
// the primary submission. Prices and feature lists are fixed literals from the
// rule table; Recommended is threshold-derived per rule.
type UpsellPackage struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         int      `json:"price"`
	OriginalPrice int      `json:"original_price"`
	Savings       int      `json:"savings"`
	Features      []string `json:"features"`
	Recommended   bool     `json:"recommended"`
	Description   string   `json:"description"`
}
