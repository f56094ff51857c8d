package dataset

import (
	"sort"
	"time"
)

// ProductWeeklyRow is one (product, ISO week) bucket. Month and Week are
// taken from the bucket's anchor date (the Monday opening the ISO week).
type ProductWeeklyRow struct {
	ProductID    uint
	Month        int // 1-12
	Week         int // ISO week number, 1-53
	PriorWeekQty float64
	Qty          float64
}

// BuildProductWeekly mirrors BuildCategoryMonthly over ISO-week buckets,
// grouped by product, with the prior week's total as the lag feature.
func BuildProductWeekly(lines []Line) []ProductWeeklyRow {
	if len(lines) == 0 {
		return nil
	}

	type span struct {
		first, last time.Time
		sums        map[time.Time]float64
	}
	groups := map[uint]*span{}
	for _, ln := range lines {
		bucket := weekStart(ln.Date)
		g, ok := groups[ln.ProductID]
		if !ok {
			g = &span{first: bucket, last: bucket, sums: map[time.Time]float64{}}
			groups[ln.ProductID] = g
		}
		if bucket.Before(g.first) {
			g.first = bucket
		}
		if bucket.After(g.last) {
			g.last = bucket
		}
		g.sums[bucket] += float64(ln.Quantity)
	}

	products := make([]uint, 0, len(groups))
	for id := range groups {
		products = append(products, id)
	}
	sort.Slice(products, func(i, j int) bool { return products[i] < products[j] })

	var rows []ProductWeeklyRow
	for _, id := range products {
		g := groups[id]
		prior := 0.0
		for bucket := g.first; !bucket.After(g.last); bucket = nextWeek(bucket) {
			qty := g.sums[bucket]
			_, week := bucket.ISOWeek()
			rows = append(rows, ProductWeeklyRow{
				ProductID:    id,
				Month:        int(bucket.Month()),
				Week:         week,
				PriorWeekQty: prior,
				Qty:          qty,
			})
			prior = qty
		}
	}
	return rows
}
