package ui

import (
	"fmt"
	"strings"

	"github.com/evhart/stride/internal/fetch"
)

func (m Model) renderHome(styles Styles) string {
	var b strings.Builder

	b.WriteString(styles.AccentText.Render("Today · "+m.cursor.String()) + "\n\n")

	if line, ok := m.loadingLine(m.home.Status(), m.home.Err(), styles); !ok {
		b.WriteString(line + "\n")
	} else if vm := m.home.Data(); vm != nil {
		if vm.Daily == nil {
			b.WriteString(styles.FaintText.Render("No data recorded for this day.") + "\n")
		} else {
			d := vm.Daily
			b.WriteString(styles.MetricStyle("steps").Render(formatValue(d.TotalSteps, 0)) +
				styles.MutedText.Render(" steps") + "  " +
				percentBar(vm.StepPercent, vm.HasStepPercent, 20, styles) + "\n")
			b.WriteString(styles.MutedText.Render("distance ") + styles.Text.Render(formatValue(d.TotalDistance, 2)+" km") + "   " +
				styles.MutedText.Render("calories ") + styles.Text.Render(formatValue(d.Calories, 0)+" kcal") + "   " +
				styles.MutedText.Render("sleep ") + styles.Text.Render(formatValue(d.TotalSleepMinutes/60, 2)+" h") + "\n")
		}
	}

	b.WriteString("\n" + styles.AccentText.Render("Coach recommendations") + "\n")
	if line, ok := m.loadingLine(m.recs.Status(), m.recs.Err(), styles); !ok {
		b.WriteString(line + "\n")
	} else if recs := m.recs.Data(); recs != nil {
		if len(*recs) == 0 {
			b.WriteString(styles.FaintText.Render("Nothing for today.") + "\n")
		}
		for i, rec := range *recs {
			marker := "  "
			text := truncate(rec.Recommendation, 70)
			if i == m.recCursor {
				marker = styles.AccentText.Render("› ")
				b.WriteString(marker + styles.Selected.Render(text) + "\n")
				continue
			}
			b.WriteString(marker + styles.Text.Render(text) + "\n")
		}
	}
	return b.String()
}

func (m Model) renderRecommendation(styles Styles) string {
	recs := m.recs.Data()
	if recs == nil || m.recCursor >= len(*recs) {
		return styles.FaintText.Render("recommendation unavailable")
	}
	rec := (*recs)[m.recCursor]

	var b strings.Builder
	b.WriteString(styles.AccentText.Render("Recommendation") + "\n\n")
	b.WriteString(styles.Text.Render(rec.Recommendation) + "\n\n")
	if rec.Reason != "" {
		b.WriteString(styles.MutedText.Render("Why: ") + styles.Text.Render(rec.Reason) + "\n")
	}
	if rec.Benefit != "" {
		b.WriteString(styles.MutedText.Render("Benefit: ") + styles.Text.Render(rec.Benefit) + "\n")
	}
	if rec.BasedOn != "" {
		b.WriteString(styles.MutedText.Render("Based on: ") + styles.Text.Render(rec.BasedOn) + "\n")
	}
	return styles.Card.Render(b.String())
}

func (m Model) renderDashboard(styles Styles) string {
	vm := m.dashboard.Data()
	refreshing := false
	if vm == nil && m.dashboard.Status() == fetch.StatusLoading {
		// Keep the last good frame (possibly a persisted snapshot) on
		// screen while revalidating.
		vm = m.dashboard.Latest()
		refreshing = vm != nil
	}
	if vm == nil {
		line, ok := m.loadingLine(m.dashboard.Status(), m.dashboard.Err(), styles)
		if !ok {
			return line
		}
	}

	var b strings.Builder
	title := "Dashboard · " + vm.Date
	if refreshing {
		title += "  " + m.spin.View() + styles.FaintText.Render("refreshing")
	}
	b.WriteString(styles.AccentText.Render(title) + "\n\n")

	if !vm.HasDaily {
		b.WriteString(styles.FaintText.Render("No data recorded for this day.") + "\n")
	} else {
		cards := []struct {
			metric string
			value  string
			unit   string
		}{
			{"steps", formatValue(vm.Steps, 0), "steps"},
			{"sleep", formatValue(vm.SleepHours, 2), "h"},
			{"calories", formatValue(vm.Calories, 0), "kcal"},
			{"active", formatValue(vm.ActiveMinutes, 0), "min"},
			{"weight", formatValue(vm.Weight, 1), "kg"},
		}
		var parts []string
		for _, c := range cards {
			parts = append(parts, styles.MetricStyle(c.metric).Render(c.value)+
				styles.MutedText.Render(" "+c.unit))
		}
		b.WriteString(strings.Join(parts, "   ") + "\n")
		b.WriteString(styles.MutedText.Render("step goal ") +
			percentBar(vm.StepPercent, vm.HasStepPercent, 24, styles) + "\n")
	}

	b.WriteString("\n" + styles.AccentText.Render("Sleep this week") + "\n")
	b.WriteString(weeklyBars(vm.SleepSeries, "h", 2, 18, styles.MetricStyle("sleep"), styles) + "\n")

	b.WriteString("\n" + styles.AccentText.Render("Heart rate") + "\n")
	if len(vm.HeartRate) == 0 {
		b.WriteString(styles.FaintText.Render("no samples") + "\n")
	} else {
		width := m.width - 10
		if width < 20 {
			width = 20
		}
		b.WriteString(styles.MetricStyle("heartrate").Render(sparkline(vm.HeartRate, width)) + "\n")
	}
	return b.String()
}

func (m Model) renderProgress(styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.AccentText.Render("Targets & Progress · week to "+m.cursor.String()) + "\n\n")

	if line, ok := m.loadingLine(m.progress.Status(), m.progress.Err(), styles); !ok {
		b.WriteString(line)
		return b.String()
	}
	vm := m.progress.Data()
	for i, row := range vm.Rows {
		marker := "  "
		label := row.Metric.Label
		if i == m.progressCursor {
			marker = styles.AccentText.Render("› ")
			label = styles.Selected.Render(label)
		} else {
			label = styles.Text.Render(label)
		}

		avg := styles.FaintText.Render("no data")
		if row.HasAverage {
			avg = styles.MetricStyle(row.Metric.Key).Render(
				formatValue(row.Average, row.Metric.Decimals) + " " + row.Metric.Unit)
		}
		goal := styles.FaintText.Render("no goal")
		if row.HasGoal {
			goal = styles.MutedText.Render("goal " + formatValue(row.Goal, row.Metric.Decimals))
		}
		b.WriteString(fmt.Sprintf("%s%-24s %-20s %-16s %s\n",
			marker, label, avg, goal, percentBar(row.Percent, row.HasPercent, 16, styles)))
	}
	return b.String()
}

func (m Model) renderDetail(styles Styles) string {
	metric := m.detailMetric
	var b strings.Builder
	b.WriteString(styles.MetricStyle(metric.Key).Render(metric.Label) + " " +
		styles.MutedText.Render("· "+m.cursor.String()) + "\n\n")

	if line, ok := m.loadingLine(m.detail.Status(), m.detail.Err(), styles); !ok {
		b.WriteString(line + "\n")
	} else if vm := m.detail.Data(); vm != nil {
		if vm.HasToday {
			b.WriteString(styles.MetricStyle(metric.Key).Render(formatValue(vm.Today, metric.Decimals)) +
				styles.MutedText.Render(" "+metric.Unit+" today") + "  " +
				percentBar(vm.Percent, vm.HasPercent, 20, styles) + "\n")
		} else {
			b.WriteString(styles.FaintText.Render("No data recorded for this day.") + "\n")
		}
		if vm.HasAvg {
			b.WriteString(styles.MutedText.Render("weekly average ") +
				styles.Text.Render(formatValue(vm.WeeklyAvg, metric.Decimals)+" "+metric.Unit) + "\n")
		} else {
			b.WriteString(styles.FaintText.Render("No data this week.") + "\n")
		}
		b.WriteString("\n" + weeklyBars(vm.Series, metric.Unit, metric.Decimals, 18,
			styles.MetricStyle(metric.Key), styles) + "\n")
	}

	b.WriteString("\n" + styles.AccentText.Render("Coach insight") + "\n")
	switch m.advice.Status() {
	case fetch.StatusLoading:
		b.WriteString(m.spin.View() + styles.MutedText.Render(" thinking...") + "\n")
	case fetch.StatusError:
		b.WriteString(styles.DangerText.Render("Insight unavailable.") + " " +
			styles.FaintText.Render("Press i to retry.") + "\n")
	case fetch.StatusReady:
		if advice := m.advice.Data(); advice != nil && advice.Content != "" {
			b.WriteString(styles.Text.Render(advice.Content) + "\n")
		} else {
			b.WriteString(styles.FaintText.Render("No insight for this day.") + "\n")
		}
	}
	return b.String()
}

func (m Model) renderHourly(styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.AccentText.Render("Hour by hour · "+m.cursor.String()) + "\n\n")

	if line, ok := m.loadingLine(m.hourly.Status(), m.hourly.Err(), styles); !ok {
		b.WriteString(line)
		return b.String()
	}
	vm := m.hourly.Data()
	if vm.HasDay {
		b.WriteString(styles.MetricStyle("steps").Render(formatValue(vm.DaySteps, 0)) +
			styles.MutedText.Render(" steps") + "  " +
			percentBar(vm.Percent, vm.HasPercent, 20, styles) + "\n\n")
	}
	b.WriteString(styles.MutedText.Render("steps per hour") + "\n")
	b.WriteString(hourlyBars(vm.Steps, 24, styles.MetricStyle("steps"), styles) + "\n")
	return b.String()
}

func (m Model) renderEarlier(styles Styles) string {
	var b strings.Builder
	total, known := m.subjectList.Total()
	title := "Earlier conversations"
	if known {
		title = fmt.Sprintf("%s · %d of %d", title, m.subjectList.Len(), total)
	}
	b.WriteString(styles.AccentText.Render(title) + "\n\n")

	if line, ok := m.loadingLine(m.subjects.Status(), m.subjects.Err(), styles); !ok {
		// Already-loaded items survive a failed or in-flight refresh.
		if m.subjectList.Len() == 0 {
			b.WriteString(line)
			return b.String()
		}
	}

	items := m.subjectList.Items()
	if len(items) == 0 {
		b.WriteString(styles.FaintText.Render("No conversations yet.") + "\n")
		return b.String()
	}
	for i, s := range items {
		subject := s.Subject
		if strings.TrimSpace(subject) == "" {
			subject = truncate(s.FirstMessage, 50)
		}
		line := truncate(subject, 60)
		if i == m.subjectCursor {
			b.WriteString(styles.AccentText.Render("› ") + styles.Selected.Render(line) + "\n")
		} else {
			b.WriteString("  " + styles.Text.Render(line) + "\n")
		}
	}
	switch {
	case m.subjectList.LoadingMore():
		b.WriteString("\n" + m.spin.View() + styles.MutedText.Render(" loading more..."))
	case m.subjectList.HasMore():
		b.WriteString("\n" + styles.FaintText.Render("m: load more"))
	}
	return b.String()
}

func (m Model) renderConversation(styles Styles) string {
	var b strings.Builder

	if line, ok := m.loadingLine(m.conversation.Status(), m.conversation.Err(), styles); !ok {
		return line
	}
	vm := m.conversation.Data()

	subject := vm.Subject.Subject
	if strings.TrimSpace(subject) == "" {
		subject = "Conversation"
	}
	b.WriteString(styles.AccentText.Render(truncate(subject, 70)) + "\n\n")
	for _, msg := range vm.Messages {
		if msg.FromUser() {
			b.WriteString(styles.InfoText.Render("you  ") + styles.Text.Render(msg.Message) + "\n")
		} else {
			b.WriteString(styles.AccentText.Render("coach") + " " + styles.Text.Render(msg.Message) + "\n")
		}
	}
	return b.String()
}

func (m Model) renderProfiles(styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.AccentText.Render("Profiles") + "\n\n")

	active := m.profiles.Active()
	for i, p := range m.profiles.Profiles() {
		label := fmt.Sprintf("%s  %s", p.Username, styles.FaintText.Render(p.ID))
		marker := "  "
		if i == m.profileCursor {
			marker = styles.AccentText.Render("› ")
		}
		if p.ID == active.ID {
			label += " " + styles.SuccessText.Render("● active")
		}
		b.WriteString(marker + styles.Text.Render(label) + "\n")
	}
	return b.String()
}
