package dataset

import (
	"testing"
	"time"
)

func TestBuildAffinityPairsComboScenario(t *testing.T) {
	// Sale A has products {1,2}, sale B has product {1} only. Only two
	// products exist, so the table is exactly (1,2) and (2,1), both positive.
	lines := []Line{
		{SaleID: 1, ProductID: 1, Quantity: 1, Date: d(2024, time.January, 1)},
		{SaleID: 1, ProductID: 2, Quantity: 1, Date: d(2024, time.January, 1)},
		{SaleID: 2, ProductID: 1, Quantity: 1, Date: d(2024, time.January, 2)},
	}

	rows := BuildAffinityPairs(lines)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	for _, row := range rows {
		if row.Together != 1 {
			t.Fatalf("row %+v should be positive", row)
		}
	}
}

func TestBuildAffinityPairsFullCrossProduct(t *testing.T) {
	// Three products, one combo {1,2}: exactly N*(N-1)=6 rows, no
	// self-pairs, positives only for (1,2) and (2,1); product 3 never shares
	// a sale and contributes only negatives.
	lines := []Line{
		{SaleID: 1, ProductID: 1, Quantity: 1, Date: d(2024, time.January, 1)},
		{SaleID: 1, ProductID: 2, Quantity: 2, Date: d(2024, time.January, 1)},
		{SaleID: 2, ProductID: 3, Quantity: 1, Date: d(2024, time.January, 5)},
	}

	rows := BuildAffinityPairs(lines)
	if len(rows) != 6 {
		t.Fatalf("got %d rows, want 6", len(rows))
	}

	positives := 0
	for _, row := range rows {
		if row.ProductA == row.ProductB {
			t.Fatalf("self-pair emitted: %+v", row)
		}
		switch {
		case row.ProductA == 1 && row.ProductB == 2,
			row.ProductA == 2 && row.ProductB == 1:
			if row.Together != 1 {
				t.Fatalf("pair %+v should be positive", row)
			}
			positives++
		default:
			if row.Together != 0 {
				t.Fatalf("pair %+v should be negative", row)
			}
		}
	}
	if positives != 2 {
		t.Fatalf("got %d positives, want 2", positives)
	}
}

func TestBuildAffinityPairsQuantityIrrelevant(t *testing.T) {
	// Two units of the same product in one sale is not a combo.
	lines := []Line{
		{SaleID: 1, ProductID: 1, Quantity: 2, Date: d(2024, time.January, 1)},
		{SaleID: 1, ProductID: 1, Quantity: 3, Date: d(2024, time.January, 1)},
		{SaleID: 2, ProductID: 2, Quantity: 1, Date: d(2024, time.January, 2)},
	}

	rows := BuildAffinityPairs(lines)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	for _, row := range rows {
		if row.Together != 0 {
			t.Fatalf("row %+v should be negative, no combo sale exists", row)
		}
	}
}

func TestBuildAffinityPairsEmpty(t *testing.T) {
	if rows := BuildAffinityPairs(nil); len(rows) != 0 {
		t.Fatalf("empty history produced %d rows", len(rows))
	}
}
