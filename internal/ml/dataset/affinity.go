package dataset

import (
	"sort"
)

// AffinityPairRow is one ordered product pair candidate. Together is 1 when
// the pair co-occurred in at least one sale with two or more distinct
// products, else 0.
type AffinityPairRow struct {
	ProductA uint
	ProductB uint
	Together float64
}

// BuildAffinityPairs emits the full ordered cross-product of every product
// ever sold, no self-pairs: exactly N*(N-1) rows for N distinct products.
// Positives come from "combo" sales only; a product that never shared a sale
// contributes nothing but negatives. The table grows quadratically with the
// catalog, which is the dominant cost of a training run.
func BuildAffinityPairs(lines []Line) []AffinityPairRow {
	if len(lines) == 0 {
		return nil
	}

	productSet := map[uint]struct{}{}
	perSale := map[uint]map[uint]struct{}{}
	for _, ln := range lines {
		productSet[ln.ProductID] = struct{}{}
		s, ok := perSale[ln.SaleID]
		if !ok {
			s = map[uint]struct{}{}
			perSale[ln.SaleID] = s
		}
		s[ln.ProductID] = struct{}{}
	}

	type pair struct{ a, b uint }
	positives := map[pair]struct{}{}
	for _, s := range perSale {
		if len(s) < 2 {
			continue
		}
		for a := range s {
			for b := range s {
				if a == b {
					continue
				}
				positives[pair{a, b}] = struct{}{}
			}
		}
	}

	products := make([]uint, 0, len(productSet))
	for id := range productSet {
		products = append(products, id)
	}
	sort.Slice(products, func(i, j int) bool { return products[i] < products[j] })

	rows := make([]AffinityPairRow, 0, len(products)*(len(products)-1))
	for _, a := range products {
		for _, b := range products {
			if a == b {
				continue
			}
			label := 0.0
			if _, ok := positives[pair{a, b}]; ok {
				label = 1.0
			}
			rows = append(rows, AffinityPairRow{ProductA: a, ProductB: b, Together: label})
		}
	}
	return rows
}
