package ui

import (
	"fmt"
	"strings"

	"github.com/evhart/stride/internal/fetch"
)

// View renders the full frame: header, active screen, status line, footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	styles := m.theme.Styles()

	sections := []string{
		m.renderHeader(styles),
		m.renderBody(styles),
	}
	if m.edit != editNone {
		sections = append(sections, m.renderEditLine(styles))
	}
	if m.toast != "" {
		style := styles.SuccessText
		if m.toastErr {
			style = styles.DangerText
		}
		sections = append(sections, style.Render(m.toast))
	}
	sections = append(sections, m.renderFooter(styles))

	return strings.Join(sections, "\n")
}

func (m Model) renderHeader(styles Styles) string {
	var tabs []string
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if Tab(i) == m.tab {
			tabs = append(tabs, styles.Selected.Render(" "+label+" "))
		} else {
			tabs = append(tabs, styles.MutedText.Render(" "+label+" "))
		}
	}

	active := m.profiles.Active()
	right := styles.AccentText.Render(active.Username) + "  " +
		styles.MutedText.Render(m.cursor.String())

	return styles.Header.Width(m.width).Render(
		styles.Logo.Render("stride") + "  " + strings.Join(tabs, "") + "  " + right)
}

func (m Model) renderBody(styles Styles) string {
	switch m.overlay {
	case overlayDetail:
		return m.renderDetail(styles)
	case overlayHourly:
		return m.renderHourly(styles)
	case overlayEarlier:
		return m.renderEarlier(styles)
	case overlayConversation:
		return m.renderConversation(styles)
	case overlayRecommendation:
		return m.renderRecommendation(styles)
	}

	switch m.tab {
	case TabHome:
		return m.renderHome(styles)
	case TabDashboard:
		return m.renderDashboard(styles)
	case TabProgress:
		return m.renderProgress(styles)
	case TabChat:
		return m.renderChat(styles)
	case TabProfile:
		return m.renderProfiles(styles)
	}
	return ""
}

func (m Model) renderEditLine(styles Styles) string {
	verb := "Set goal"
	if m.edit == editWeight {
		verb = "Log weight"
	}
	return styles.AccentText.Render(verb+" ("+m.editMetric.Label+"): ") + m.editInput.View() +
		"  " + styles.FaintText.Render("enter save · esc cancel")
}

func (m Model) renderFooter(styles Styles) string {
	var hints []string
	switch {
	case m.edit != editNone:
		hints = []string{"enter:save", "esc:cancel"}
	case m.chatInput.Focused():
		hints = []string{"enter:send", "esc:done typing"}
	case m.overlay == overlayDetail:
		hints = []string{"g:goal", "i:insight", "h/l:day", "esc:back"}
		if m.detailMetric.Key == "weight" {
			hints = append([]string{"w:log weight"}, hints...)
		}
	case m.overlay == overlayHourly:
		hints = []string{"h/l:day", "esc:back"}
	case m.overlay == overlayEarlier:
		hints = []string{"j/k:select", "enter:open", "m:more", "esc:back"}
	case m.overlay == overlayConversation, m.overlay == overlayRecommendation:
		hints = []string{"esc:back"}
	case m.tab == TabHome:
		hints = []string{"j/k:select", "enter:detail", "a:ask coach", "h/l:day"}
	case m.tab == TabDashboard:
		hints = []string{"s/z/c/a/w:metric", "H:hourly", "h/l:day"}
	case m.tab == TabProgress:
		hints = []string{"j/k:select", "enter:detail", "e:edit goal"}
	case m.tab == TabChat:
		hints = []string{"i:type", "enter:ask selected", "e:earlier", "n:new", "R:retry"}
	case m.tab == TabProfile:
		hints = []string{"j/k:select", "enter:switch"}
	}
	hints = append(hints, "tab:screens", "r:reload", "T:"+m.theme.Name, "q:quit")
	return styles.Footer.Width(m.width).Render(strings.Join(hints, "  "))
}

// loadingLine renders the shared loading/error presentation for a screen.
// The ok return is false when the caller should not render data.
func (m Model) loadingLine(status fetch.Status, err error, styles Styles) (string, bool) {
	switch status {
	case fetch.StatusLoading:
		return m.spin.View() + styles.MutedText.Render(" loading..."), false
	case fetch.StatusError:
		return styles.DangerText.Render("Could not load data.") + " " +
			styles.MutedText.Render(truncate(err.Error(), 80)) + "\n" +
			styles.FaintText.Render("Press r to retry."), false
	case fetch.StatusIdle:
		return styles.FaintText.Render("waiting..."), false
	default:
		return "", true
	}
}
