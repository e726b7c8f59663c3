package series

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evhart/stride/internal/coach"
)

func steps(r coach.DailyRecord) float64 { return r.TotalSteps }

func TestWeeklyAverage(t *testing.T) {
	records := []coach.DailyRecord{
		{TotalSteps: 1000},
		{TotalSteps: 3000},
		{TotalSteps: 5000},
	}
	avg, ok := WeeklyAverage(records, steps)
	require.True(t, ok)
	assert.Equal(t, 3000.0, avg)
}

func TestWeeklyAverage_EmptyIsNoData(t *testing.T) {
	avg, ok := WeeklyAverage(nil, steps)
	assert.False(t, ok, "empty input is no data, not zero")
	assert.Zero(t, avg)

	// A true zero average is still data.
	avg, ok = WeeklyAverage([]coach.DailyRecord{{TotalSteps: 0}}, steps)
	assert.True(t, ok)
	assert.Zero(t, avg)
}

func TestBucketByHour_MissingHoursAreZero(t *testing.T) {
	samples := []coach.HourlyRecord{
		{Timestamp: "2016-04-09 08:00:00", StepTotal: 812},
		{Timestamp: "2016-04-09 13:00:00", StepTotal: 45},
	}
	points := BucketByHour(samples, coach.HourlyRecord.ParsedTimestamp,
		func(r coach.HourlyRecord) float64 { return r.StepTotal }, FirstSampleWins)

	require.Len(t, points, 24)
	assert.Equal(t, HourlyPoint{Hour: 8, Value: 812}, points[8])
	assert.Equal(t, HourlyPoint{Hour: 14, Value: 0}, points[14], "hour 14 present with value 0")
	for i, p := range points {
		assert.Equal(t, i, p.Hour)
	}
}

func TestBucketByHour_FirstSampleWins(t *testing.T) {
	samples := []coach.HourlyRecord{
		{Timestamp: "2016-04-09 09:00:00", StepTotal: 100},
		{Timestamp: "2016-04-09 09:30:00", StepTotal: 999},
	}
	points := BucketByHour(samples, coach.HourlyRecord.ParsedTimestamp,
		func(r coach.HourlyRecord) float64 { return r.StepTotal }, FirstSampleWins)
	assert.Equal(t, 100.0, points[9].Value, "later duplicate-hour samples are dropped")
}

func TestBucketByHour_StrategyIsSwappable(t *testing.T) {
	sum := func(current float64, filled bool, sample float64) float64 {
		return current + sample
	}
	samples := []coach.HourlyRecord{
		{Timestamp: "2016-04-09 09:00:00", StepTotal: 100},
		{Timestamp: "2016-04-09 09:30:00", StepTotal: 50},
	}
	points := BucketByHour(samples, coach.HourlyRecord.ParsedTimestamp,
		func(r coach.HourlyRecord) float64 { return r.StepTotal }, sum)
	assert.Equal(t, 150.0, points[9].Value)
}

func TestToWeeklySeries_LabelsRoundingAndSelection(t *testing.T) {
	cursor, err := ParseCursor("2024-01-16")
	require.NoError(t, err)

	records := []coach.SleepRecord{
		{Date: "2024-01-14", TotalSleepMinutes: 400},
		{Date: "2024-01-15", TotalSleepMinutes: 431},
		{Date: "2024-01-16", TotalSleepMinutes: 512},
	}
	points := ToWeeklySeries(records, coach.SleepRecord.ParsedDate,
		func(r coach.SleepRecord) float64 { return r.TotalSleepMinutes / 60 },
		2, cursor.PriorNight().Time())

	require.Len(t, points, 3)
	assert.Equal(t, "Sun", points[0].Label)
	assert.Equal(t, 7.18, points[1].Value, "two-decimal hours")
	assert.False(t, points[0].Selected)
	assert.True(t, points[1].Selected, "sleep selects the cursor's prior night")
	assert.False(t, points[2].Selected, "the cursor day itself is not flagged")
}

func TestToWeeklySeries_WholeMinutePrecision(t *testing.T) {
	records := []coach.DailyRecord{{Date: "2024-01-15", VeryActiveMinutes: 33.4}}
	points := ToWeeklySeries(records, coach.DailyRecord.ParsedDate,
		func(r coach.DailyRecord) float64 { return r.VeryActiveMinutes },
		0, time.Time{})
	assert.Equal(t, 33.0, points[0].Value)
}

func TestPercentOfGoal(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		goal    float64
		want    int
		haveOne bool
	}{
		{"halfway", 5000, 10000, 50, true},
		{"overshoot clamps", 15000, 10000, 100, true},
		{"negative clamps to zero", -10, 100, 0, true},
		{"zero goal is no goal", 5000, 0, 0, false},
		{"negative goal is no goal", 5000, -1, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PercentOfGoal(tt.value, tt.goal)
			assert.Equal(t, tt.haveOne, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
