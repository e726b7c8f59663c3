package ui

import (
	"testing"

	"github.com/evhart/stride/internal/coach"
	"github.com/evhart/stride/internal/series"
)

func mustCursor(t *testing.T, value string) series.DateCursor {
	t.Helper()
	c, err := series.ParseCursor(value)
	if err != nil {
		t.Fatalf("ParseCursor(%q): %v", value, err)
	}
	return c
}

func TestBuildDashboardVM(t *testing.T) {
	cursor := mustCursor(t, "2016-04-09")
	daily := []coach.DailyRecord{{
		Date:              "2016-04-09",
		TotalSteps:        13162,
		Calories:          1985,
		VeryActiveMinutes: 25,
		TotalSleepMinutes: 431,
		WeightKG:          72.4,
	}}
	sleep := []coach.SleepRecord{
		{Date: "2016-04-08", TotalSleepMinutes: 431},
		{Date: "2016-04-09", TotalSleepMinutes: 340},
	}
	goal := coach.Goal{Metric: "steps", Goal: 10000}

	vm := buildDashboardVM(cursor, daily, sleep, []float64{60, 80, 75}, goal)

	if !vm.HasDaily {
		t.Fatalf("HasDaily = false, want true")
	}
	if vm.Steps != 13162 {
		t.Fatalf("Steps = %v, want 13162", vm.Steps)
	}
	if vm.SleepHours != 7.18 {
		t.Fatalf("SleepHours = %v, want 7.18", vm.SleepHours)
	}
	if !vm.HasStepPercent || vm.StepPercent != 100 {
		t.Fatalf("StepPercent = %d (%v), want clamped 100", vm.StepPercent, vm.HasStepPercent)
	}
	if len(vm.SleepSeries) != 2 {
		t.Fatalf("len(SleepSeries) = %d, want 2", len(vm.SleepSeries))
	}
	// Sleep flags the cursor's prior night, 2016-04-08.
	if !vm.SleepSeries[0].Selected || vm.SleepSeries[1].Selected {
		t.Fatalf("SleepSeries selection = %+v, want prior night flagged", vm.SleepSeries)
	}
}

func TestBuildDashboardVM_NoDailyData(t *testing.T) {
	cursor := mustCursor(t, "2016-04-09")
	vm := buildDashboardVM(cursor, nil, nil, nil, coach.Goal{})
	if vm.HasDaily {
		t.Fatalf("HasDaily = true for empty day")
	}
	if vm.HasStepPercent {
		t.Fatalf("HasStepPercent = true without data or goal")
	}
}

func TestBuildDetailVM_SleepUsesSleepHistory(t *testing.T) {
	cursor := mustCursor(t, "2016-04-09")
	daily := []coach.DailyRecord{{Date: "2016-04-09", TotalSleepMinutes: 431}}
	sleepWeek := []coach.SleepRecord{
		{Date: "2016-04-07", TotalSleepMinutes: 400},
		{Date: "2016-04-08", TotalSleepMinutes: 460},
	}

	vm := buildDetailVM(metricByKey("sleep"), cursor, daily, nil, sleepWeek, coach.Goal{Metric: "sleep", Goal: 8})

	if vm.Today != 7.18 {
		t.Fatalf("Today = %v, want 7.18 hours", vm.Today)
	}
	if !vm.HasAvg || vm.WeeklyAvg != 7.17 {
		t.Fatalf("WeeklyAvg = %v (%v), want 7.17", vm.WeeklyAvg, vm.HasAvg)
	}
	if !vm.Series[1].Selected {
		t.Fatalf("prior night not selected: %+v", vm.Series)
	}
}

func TestBuildDetailVM_StepsUsesWeekBack(t *testing.T) {
	cursor := mustCursor(t, "2016-04-09")
	daily := []coach.DailyRecord{{Date: "2016-04-09", TotalSteps: 8000}}
	week := []coach.DailyRecord{
		{Date: "2016-04-08", TotalSteps: 6000},
		{Date: "2016-04-09", TotalSteps: 8000},
	}

	vm := buildDetailVM(metricByKey("steps"), cursor, daily, week, nil, coach.Goal{Metric: "steps", Goal: 10000})

	if vm.WeeklyAvg != 7000 {
		t.Fatalf("WeeklyAvg = %v, want 7000", vm.WeeklyAvg)
	}
	if !vm.HasPercent || vm.Percent != 80 {
		t.Fatalf("Percent = %d (%v), want 80", vm.Percent, vm.HasPercent)
	}
	// Steps select the cursor day itself.
	if !vm.Series[1].Selected {
		t.Fatalf("cursor day not selected: %+v", vm.Series)
	}
}

func TestBuildProgressVM_NoDataIsNotZero(t *testing.T) {
	vm := buildProgressVM(nil, nil, []coach.Goal{{Metric: "steps", Goal: 10000}})

	if len(vm.Rows) != len(metricOrder) {
		t.Fatalf("len(Rows) = %d, want %d", len(vm.Rows), len(metricOrder))
	}
	steps := vm.Rows[0]
	if steps.HasAverage {
		t.Fatalf("HasAverage = true for empty week")
	}
	if !steps.HasGoal || steps.Goal != 10000 {
		t.Fatalf("Goal = %v (%v), want 10000", steps.Goal, steps.HasGoal)
	}
	if steps.HasPercent {
		t.Fatalf("HasPercent = true without an average")
	}
}

func TestBuildHourlyVM_Always24Buckets(t *testing.T) {
	cursor := mustCursor(t, "2016-04-09")
	hourly := []coach.HourlyRecord{
		{Timestamp: "2016-04-09 08:00:00", StepTotal: 812, Calories: 120},
	}

	vm := buildHourlyVM(cursor, hourly, nil, coach.Goal{})

	if len(vm.Steps) != 24 || len(vm.Calories) != 24 {
		t.Fatalf("buckets = %d/%d, want 24/24", len(vm.Steps), len(vm.Calories))
	}
	if vm.Steps[8].Value != 812 {
		t.Fatalf("Steps[8] = %v, want 812", vm.Steps[8].Value)
	}
	if vm.Steps[9].Value != 0 {
		t.Fatalf("Steps[9] = %v, want 0", vm.Steps[9].Value)
	}
}

func TestMetricValue_SleepInHours(t *testing.T) {
	r := coach.DailyRecord{TotalSleepMinutes: 90}
	if got := metricValue(r, "sleep"); got != 1.5 {
		t.Fatalf("metricValue(sleep) = %v, want 1.5", got)
	}
}

func TestGoalFor(t *testing.T) {
	goals := []coach.Goal{{Metric: "steps", Goal: 10000}, {Metric: "sleep", Goal: 8}}
	if g, ok := goalFor(goals, "sleep"); !ok || g.Goal != 8 {
		t.Fatalf("goalFor(sleep) = %+v (%v)", g, ok)
	}
	if _, ok := goalFor(goals, "weight"); ok {
		t.Fatalf("goalFor(weight) = true, want false")
	}
}
