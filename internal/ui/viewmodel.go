package ui

import (
	"github.com/evhart/stride/internal/coach"
	"github.com/evhart/stride/internal/series"
)

// metricInfo describes one tracked metric and how to display it.
type metricInfo struct {
	Key      string
	Label    string
	Unit     string
	Decimals int
}

var metricOrder = []metricInfo{
	{Key: "steps", Label: "Steps", Unit: "steps", Decimals: 0},
	{Key: "sleep", Label: "Sleep", Unit: "h", Decimals: 2},
	{Key: "calories", Label: "Calories", Unit: "kcal", Decimals: 0},
	{Key: "active", Label: "Active minutes", Unit: "min", Decimals: 0},
	{Key: "weight", Label: "Weight", Unit: "kg", Decimals: 1},
}

func metricByKey(key string) metricInfo {
	for _, m := range metricOrder {
		if m.Key == key {
			return m
		}
	}
	return metricOrder[0]
}

// metricValue extracts a metric from a daily record in display units.
// Sleep converts from minutes to hours.
func metricValue(r coach.DailyRecord, key string) float64 {
	switch key {
	case "steps":
		return r.TotalSteps
	case "sleep":
		return r.TotalSleepMinutes / 60
	case "calories":
		return r.Calories
	case "active":
		return r.VeryActiveMinutes
	case "weight":
		return r.WeightKG
	default:
		return 0
	}
}

func goalFor(goals []coach.Goal, metric string) (coach.Goal, bool) {
	for _, g := range goals {
		if g.Metric == metric {
			return g, true
		}
	}
	return coach.Goal{}, false
}

// homeVM backs the Home tab's daily summary card.
type homeVM struct {
	Date           string
	Daily          *coach.DailyRecord
	StepGoal       float64
	StepPercent    int
	HasStepPercent bool
}

func buildHomeVM(cursor series.DateCursor, daily []coach.DailyRecord, stepGoal coach.Goal) homeVM {
	vm := homeVM{Date: cursor.String(), StepGoal: stepGoal.Goal}
	if len(daily) > 0 {
		d := daily[0]
		vm.Daily = &d
		vm.StepPercent, vm.HasStepPercent = series.PercentOfGoal(d.TotalSteps, stepGoal.Goal)
	}
	return vm
}

// dashboardVM backs the Dashboard tab. It is JSON-serializable so the last
// good copy can be snapshotted per profile and repainted on launch.
type dashboardVM struct {
	Date           string               `json:"date"`
	HasDaily       bool                 `json:"has_daily"`
	Steps          float64              `json:"steps"`
	Calories       float64              `json:"calories"`
	ActiveMinutes  float64              `json:"active_minutes"`
	SleepHours     float64              `json:"sleep_hours"`
	Weight         float64              `json:"weight"`
	StepGoal       float64              `json:"step_goal"`
	StepPercent    int                  `json:"step_percent"`
	HasStepPercent bool                 `json:"has_step_percent"`
	SleepSeries    []series.WeeklyPoint `json:"sleep_series"`
	HeartRate      []float64            `json:"heart_rate"`
}

func buildDashboardVM(cursor series.DateCursor, daily []coach.DailyRecord, sleep []coach.SleepRecord, heartRate []float64, stepGoal coach.Goal) dashboardVM {
	vm := dashboardVM{
		Date:      cursor.String(),
		StepGoal:  stepGoal.Goal,
		HeartRate: heartRate,
	}
	if len(daily) > 0 {
		d := daily[0]
		vm.HasDaily = true
		vm.Steps = d.TotalSteps
		vm.Calories = d.Calories
		vm.ActiveMinutes = d.VeryActiveMinutes
		vm.SleepHours = series.RoundTo(d.TotalSleepMinutes/60, 2)
		vm.Weight = d.WeightKG
		vm.StepPercent, vm.HasStepPercent = series.PercentOfGoal(d.TotalSteps, stepGoal.Goal)
	}
	vm.SleepSeries = series.ToWeeklySeries(sleep, coach.SleepRecord.ParsedDate,
		func(r coach.SleepRecord) float64 { return r.TotalSleepMinutes / 60 },
		2, cursor.PriorNight().Time())
	return vm
}

// detailVM backs the per-metric detail view.
type detailVM struct {
	Metric     metricInfo
	Date       string
	Today      float64
	HasToday   bool
	Series     []series.WeeklyPoint
	WeeklyAvg  float64
	HasAvg     bool
	Goal       float64
	Percent    int
	HasPercent bool
}

func buildDetailVM(m metricInfo, cursor series.DateCursor, daily, week []coach.DailyRecord, sleepWeek []coach.SleepRecord, goal coach.Goal) detailVM {
	vm := detailVM{Metric: m, Date: cursor.String(), Goal: goal.Goal}

	if len(daily) > 0 {
		vm.Today = series.RoundTo(metricValue(daily[0], m.Key), m.Decimals)
		vm.HasToday = true
		vm.Percent, vm.HasPercent = series.PercentOfGoal(metricValue(daily[0], m.Key), goal.Goal)
	}

	if m.Key == "sleep" {
		vm.Series = series.ToWeeklySeries(sleepWeek, coach.SleepRecord.ParsedDate,
			func(r coach.SleepRecord) float64 { return r.TotalSleepMinutes / 60 },
			m.Decimals, cursor.PriorNight().Time())
		vm.WeeklyAvg, vm.HasAvg = series.WeeklyAverage(sleepWeek,
			func(r coach.SleepRecord) float64 { return r.TotalSleepMinutes / 60 })
	} else {
		vm.Series = series.ToWeeklySeries(week, coach.DailyRecord.ParsedDate,
			func(r coach.DailyRecord) float64 { return metricValue(r, m.Key) },
			m.Decimals, cursor.Time())
		vm.WeeklyAvg, vm.HasAvg = series.WeeklyAverage(week,
			func(r coach.DailyRecord) float64 { return metricValue(r, m.Key) })
	}
	vm.WeeklyAvg = series.RoundTo(vm.WeeklyAvg, m.Decimals)
	return vm
}

// progressVM backs the Targets & Progress tab: weekly averages against goals.
type progressRow struct {
	Metric     metricInfo
	Average    float64
	HasAverage bool
	Goal       float64
	HasGoal    bool
	Percent    int
	HasPercent bool
}

type progressVM struct {
	Rows []progressRow
}

func buildProgressVM(week []coach.DailyRecord, sleepWeek []coach.SleepRecord, goals []coach.Goal) progressVM {
	var vm progressVM
	for _, m := range metricOrder {
		row := progressRow{Metric: m}
		if m.Key == "sleep" {
			row.Average, row.HasAverage = series.WeeklyAverage(sleepWeek,
				func(r coach.SleepRecord) float64 { return r.TotalSleepMinutes / 60 })
		} else {
			key := m.Key
			row.Average, row.HasAverage = series.WeeklyAverage(week,
				func(r coach.DailyRecord) float64 { return metricValue(r, key) })
		}
		row.Average = series.RoundTo(row.Average, m.Decimals)
		if g, ok := goalFor(goals, m.Key); ok {
			row.Goal = g.Goal
			row.HasGoal = true
			if row.HasAverage {
				row.Percent, row.HasPercent = series.PercentOfGoal(row.Average, g.Goal)
			}
		}
		vm.Rows = append(vm.Rows, row)
	}
	return vm
}

// hourlyVM backs the hour-by-hour breakdown for the cursor date.
type hourlyVM struct {
	Date       string
	Steps      []series.HourlyPoint
	Calories   []series.HourlyPoint
	DaySteps   float64
	HasDay     bool
	StepGoal   float64
	Percent    int
	HasPercent bool
}

func buildHourlyVM(cursor series.DateCursor, hourly []coach.HourlyRecord, daily []coach.DailyRecord, stepGoal coach.Goal) hourlyVM {
	vm := hourlyVM{
		Date:     cursor.String(),
		StepGoal: stepGoal.Goal,
		Steps: series.BucketByHour(hourly, coach.HourlyRecord.ParsedTimestamp,
			func(r coach.HourlyRecord) float64 { return r.StepTotal }, series.FirstSampleWins),
		Calories: series.BucketByHour(hourly, coach.HourlyRecord.ParsedTimestamp,
			func(r coach.HourlyRecord) float64 { return r.Calories }, series.FirstSampleWins),
	}
	if len(daily) > 0 {
		vm.DaySteps = daily[0].TotalSteps
		vm.HasDay = true
		vm.Percent, vm.HasPercent = series.PercentOfGoal(daily[0].TotalSteps, stepGoal.Goal)
	}
	return vm
}

// conversationVM backs the earlier-conversation detail view.
type conversationVM struct {
	Subject  coach.ConversationSubject
	Messages []coach.ConversationMessage
}
