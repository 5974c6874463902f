// Package pricing computes proposal totals from catalog feature selections.
package pricing

import "github.com/Arman11r/Catalog-web/internal/catalog"

// ComputeTotal sums the add-on prices of the selected feature ids on top of
// base. Each feature is charged at most once no matter how often it appears,
// and ids not present in the catalog contribute nothing. The result is never
// an error: an empty or fully-unknown selection costs exactly base.
func ComputeTotal(selectedFeatures []string, base int) int {
	total := base
	seen := make(map[string]struct{}, len(selectedFeatures))
	for _, id := range selectedFeatures {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if price, ok := catalog.PriceOf(id); ok {
			total += price
		}
	}
	return total
}

// Quote describes a priced selection.
type Quote struct {
	BasePrice  int
	AddOnTotal int
	TotalPrice int
}

// QuoteFor prices a selection against the standard base package.
func QuoteFor(selectedFeatures []string) Quote {
	total := ComputeTotal(selectedFeatures, catalog.BasePrice)
	return Quote{
		BasePrice:  catalog.BasePrice,
		AddOnTotal: total - catalog.BasePrice,
		TotalPrice: total,
	}
}
