package domain

// UnplannedLabel names the synthetic bucket covering whatever part of the
// day no entry accounts for. It is not a reserved word: an activity recorded
// under the same name is grouped like any other and simply shares the label.
const UnplannedLabel = "unplanned"

// Bucket is one labelled slice of the day with its total minutes.
type Bucket struct {
	Label   string
	Minutes int
}

// DaySummary is the reconciled view of a ledger: per-name totals plus, when
// the day is not fully booked, a trailing unplanned bucket. Summaries are
// derived on demand and never stored.
type DaySummary struct {
	Buckets     []Bucket
	RecordedMin int
	Overflow    bool
}

// Total sums the bucket minutes: MinutesPerDay when the day reconciles,
// RecordedMin when it overflows.
func (s *DaySummary) Total() int {
	total := 0
	for _, b := range s.Buckets {
		total += b.Minutes
	}
	return total
}

// Reconcile folds per-name totals into a DaySummary. A total short of a full
// day gains an unplanned bucket so the buckets cover exactly MinutesPerDay.
// A total beyond a full day is reported as-is with Overflow set: there is no
// non-negative remainder to hand out. Input order is preserved and the input
// slice is never modified.
func Reconcile(buckets []Bucket) DaySummary {
	recorded := 0
	for _, b := range buckets {
		recorded += b.Minutes
	}
	out := DaySummary{
		Buckets:     make([]Bucket, len(buckets), len(buckets)+1),
		RecordedMin: recorded,
	}
	copy(out.Buckets, buckets)
	switch {
	case recorded < MinutesPerDay:
		out.Buckets = append(out.Buckets, Bucket{Label: UnplannedLabel, Minutes: MinutesPerDay - recorded})
	case recorded > MinutesPerDay:
		out.Overflow = true
	}
	return out
}
