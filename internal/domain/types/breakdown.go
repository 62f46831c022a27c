package types

// BreakdownEntry is the number of pieces of one denomination.
type BreakdownEntry struct {
	Denomination Denomination
	Count        int64
}

// Breakdown holds one entry per table denomination, in table order.
type Breakdown []BreakdownEntry

// Total sums denomination × count over every entry.
func (b Breakdown) Total() Amount {
	var total int64
	for _, e := range b {
		total += e.Denomination.Int64() * e.Count
	}
	return Amount(total)
}

// Count returns the count recorded for d, or false if d is not in the breakdown.
func (b Breakdown) Count(d Denomination) (int64, bool) {
	for _, e := range b {
		if e.Denomination == d {
			return e.Count, true
		}
	}
	return 0, false
}
