package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/evhart/stride/internal/series"
)

// bar renders a horizontal bar of the given width filled proportionally to
// value/max. A non-positive max yields an empty track.
func bar(value, max float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if max > 0 {
		ratio := value / max
		if ratio > 1 {
			ratio = 1
		}
		if ratio < 0 {
			ratio = 0
		}
		filled = int(ratio*float64(width) + 0.5)
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// percentBar renders a goal-progress bar with its percent label, or a
// "no goal" hint when the percent is unavailable.
func percentBar(percent int, hasPercent bool, width int, styles Styles) string {
	if !hasPercent {
		return styles.FaintText.Render("no goal set")
	}
	b := bar(float64(percent), 100, width)
	style := styles.WarningText
	if percent >= 100 {
		style = styles.SuccessText
	}
	return style.Render(b) + " " + styles.MutedText.Render(fmt.Sprintf("%d%%", percent))
}

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// sparkline compresses a series into a single line of block glyphs,
// downsampling to at most width columns.
func sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}
	if len(values) > width {
		values = downsample(values, width)
	}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	var b strings.Builder
	for _, v := range values {
		idx := 0
		if max > min {
			idx = int((v - min) / (max - min) * float64(len(sparkRunes)-1))
		}
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}

// downsample averages values into width buckets.
func downsample(values []float64, width int) []float64 {
	out := make([]float64, width)
	per := float64(len(values)) / float64(width)
	for i := 0; i < width; i++ {
		start := int(float64(i) * per)
		end := int(float64(i+1) * per)
		if end <= start {
			end = start + 1
		}
		if end > len(values) {
			end = len(values)
		}
		sum := 0.0
		for _, v := range values[start:end] {
			sum += v
		}
		out[i] = sum / float64(end-start)
	}
	return out
}

// weeklyBars renders one labeled bar row per weekly point, highlighting the
// selected day.
func weeklyBars(points []series.WeeklyPoint, unit string, decimals, width int, style lipgloss.Style, styles Styles) string {
	if len(points) == 0 {
		return styles.FaintText.Render("no data this week")
	}
	max := 0.0
	for _, p := range points {
		if p.Value > max {
			max = p.Value
		}
	}
	var rows []string
	for _, p := range points {
		label := styles.MutedText.Render(p.Label)
		if p.Selected {
			label = styles.AccentText.Render(p.Label)
		}
		value := formatValue(p.Value, decimals)
		row := fmt.Sprintf("%s %s %s", label, style.Render(bar(p.Value, max, width)),
			styles.Text.Render(value+" "+unit))
		if p.Selected {
			row += " " + styles.AccentText.Render("◀")
		}
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}

// hourlyBars renders a compact 24-slot column chart as rows of 6 hours.
func hourlyBars(points []series.HourlyPoint, width int, style lipgloss.Style, styles Styles) string {
	max := 0.0
	for _, p := range points {
		if p.Value > max {
			max = p.Value
		}
	}
	var rows []string
	for _, p := range points {
		rows = append(rows, fmt.Sprintf("%s %s %s",
			styles.MutedText.Render(fmt.Sprintf("%02d", p.Hour)),
			style.Render(bar(p.Value, max, width)),
			styles.Text.Render(formatValue(p.Value, 0))))
	}
	return strings.Join(rows, "\n")
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
