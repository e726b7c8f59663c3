package series

import (
	"math"
	"time"
)

// WeeklyAverage computes the mean of value over records. The second return
// is false when there are no records: callers must treat that as "no data",
// which is distinct from a true zero average.
func WeeklyAverage[T any](records []T, value func(T) float64) (float64, bool) {
	if len(records) == 0 {
		return 0, false
	}
	var total float64
	for _, r := range records {
		total += value(r)
	}
	return total / float64(len(records)), true
}

// HourlyPoint is one slot of a fixed 24-hour series.
type HourlyPoint struct {
	Hour  int
	Value float64
}

// BucketStrategy decides the bucket value when a sample lands in an hour
// slot. current and filled describe the slot before the sample is applied.
type BucketStrategy func(current float64, filled bool, sample float64) float64

// FirstSampleWins keeps the first sample seen for an hour and drops later
// duplicates. This mirrors the upstream behavior; it may be an unintentional
// simplification, which is why the strategy is swappable without touching
// call sites.
func FirstSampleWins(current float64, filled bool, sample float64) float64 {
	if filled {
		return current
	}
	return sample
}

// BucketByHour distributes samples into 24 fixed hour slots keyed by the
// local hour-of-day of each sample's timestamp. Hours with no sample hold
// value 0 and are never omitted.
func BucketByHour[T any](samples []T, at func(T) time.Time, value func(T) float64, pick BucketStrategy) []HourlyPoint {
	if pick == nil {
		pick = FirstSampleWins
	}
	points := make([]HourlyPoint, 24)
	filled := make([]bool, 24)
	for i := range points {
		points[i].Hour = i
	}
	for _, s := range samples {
		ts := at(s)
		if ts.IsZero() {
			continue
		}
		h := ts.Hour()
		points[h].Value = pick(points[h].Value, filled[h], value(s))
		filled[h] = true
	}
	return points
}

// WeeklyPoint is one entry of a weekday-labelled series.
type WeeklyPoint struct {
	Label    string
	Value    float64
	Selected bool
}

// ToWeeklySeries maps day-keyed records to weekday-labelled points, rounding
// values to the given number of decimals (whole minutes for activity, two
// decimals for sleep hours and weight). The point whose date equals selected
// is flagged; pass the cursor's prior night for sleep series.
func ToWeeklySeries[T any](records []T, day func(T) time.Time, value func(T) float64, decimals int, selected time.Time) []WeeklyPoint {
	points := make([]WeeklyPoint, 0, len(records))
	for _, r := range records {
		d := day(r)
		points = append(points, WeeklyPoint{
			Label:    d.Format("Mon"),
			Value:    RoundTo(value(r), decimals),
			Selected: SameDay(d, selected),
		})
	}
	return points
}

// RoundTo rounds v to the given number of decimal places.
func RoundTo(v float64, decimals int) float64 {
	if decimals <= 0 {
		return math.Round(v)
	}
	shift := math.Pow(10, float64(decimals))
	return math.Round(v*shift) / shift
}

// PercentOfGoal returns progress toward goal clamped to [0, 100]. The second
// return is false for a zero or unset goal: render "no goal" rather than a
// percentage.
func PercentOfGoal(value, goal float64) (int, bool) {
	if goal <= 0 {
		return 0, false
	}
	pct := value / goal * 100
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return int(math.Round(pct)), true
}

// SameDay reports whether two instants fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
