package aggregate

import (
	"slices"
	"time"

	"icebreaker/internal/domain/entity"
)

// MonthLabelLayout formats a bucket label such as "March 2024".
const MonthLabelLayout = "January 2006"

// MonthBucket groups the icebreakers created in one calendar month.
type MonthBucket struct {
	Label       string               // e.g. "March 2024"
	Month       time.Time            // First instant of the month in the viewer's location.
	Icebreakers []*entity.Icebreaker // Collection order, not re-sorted.
}

// GroupByMonth partitions icebreakers by the calendar month of CreatedAt as seen in loc.
// Buckets are ordered newest month first; inside a bucket the input order is kept.
// A nil loc uses time.Local.
func GroupByMonth(icebreakers []*entity.Icebreaker, loc *time.Location) []MonthBucket {
	if loc == nil {
		loc = time.Local
	}

	index := make(map[int]int)
	var buckets []MonthBucket

	for _, ib := range icebreakers {
		local := ib.CreatedAt.In(loc)
		month := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)

		key := local.Year()*12 + int(local.Month())
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, MonthBucket{
				Label: month.Format(MonthLabelLayout),
				Month: month,
			})
		}
		buckets[i].Icebreakers = append(buckets[i].Icebreakers, ib)
	}

	// Month keys are unique, so an unstable sort is deterministic here.
	slices.SortFunc(buckets, func(a, b MonthBucket) int {
		return b.Month.Compare(a.Month)
	})

	return buckets
}
