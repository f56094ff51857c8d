package dataset

import (
	"sort"
	"time"
)

// CategoryMonthlyRow is one (subcategory, calendar month) bucket.
// Qty doubles as the regression target.
type CategoryMonthlyRow struct {
	SubcategoryID uint
	Month         int // 1-12, month of the bucket
	PriorMonthQty float64
	Qty           float64
}

// BuildCategoryMonthly groups lines by subcategory, buckets each group into
// calendar months from its first to its last observed sale (empty months sum
// to 0) and attaches the previous bucket's total as the lag feature. The lag
// of a group's first bucket is 0; buckets never leak across subcategories.
func BuildCategoryMonthly(lines []Line) []CategoryMonthlyRow {
	if len(lines) == 0 {
		return nil
	}

	type span struct {
		first, last time.Time
		sums        map[time.Time]float64
	}
	groups := map[uint]*span{}
	for _, ln := range lines {
		bucket := monthStart(ln.Date)
		g, ok := groups[ln.SubcategoryID]
		if !ok {
			g = &span{first: bucket, last: bucket, sums: map[time.Time]float64{}}
			groups[ln.SubcategoryID] = g
		}
		if bucket.Before(g.first) {
			g.first = bucket
		}
		if bucket.After(g.last) {
			g.last = bucket
		}
		g.sums[bucket] += float64(ln.Quantity)
	}

	subcats := make([]uint, 0, len(groups))
	for id := range groups {
		subcats = append(subcats, id)
	}
	sort.Slice(subcats, func(i, j int) bool { return subcats[i] < subcats[j] })

	var rows []CategoryMonthlyRow
	for _, id := range subcats {
		g := groups[id]
		prior := 0.0
		for bucket := g.first; !bucket.After(g.last); bucket = nextMonth(bucket) {
			qty := g.sums[bucket]
			rows = append(rows, CategoryMonthlyRow{
				SubcategoryID: id,
				Month:         int(bucket.Month()),
				PriorMonthQty: prior,
				Qty:           qty,
			})
			prior = qty
		}
	}
	return rows
}
