package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// refreshChatView rebuilds the scrollback content and pins it to the bottom.
func (m *Model) refreshChatView() {
	styles := m.theme.Styles()

	width := m.chatView.Width
	if width < 20 {
		width = 60
	}
	wrap := lipgloss.NewStyle().Width(width)

	var b strings.Builder
	for _, msg := range m.chatMessages {
		switch {
		case msg.FromUser && msg.Failed:
			b.WriteString(styles.DangerText.Render("you (failed)") + "\n")
		case msg.FromUser:
			b.WriteString(styles.InfoText.Render("you") + "\n")
		default:
			b.WriteString(styles.AccentText.Render("coach") + "\n")
		}
		b.WriteString(wrap.Render(styles.Text.Render(msg.Text)) + "\n\n")
	}
	m.chatView.SetContent(b.String())
	m.chatView.GotoBottom()
}

func (m Model) renderChat(styles Styles) string {
	var b strings.Builder

	if len(m.chatMessages) == 0 {
		b.WriteString(styles.AccentText.Render("Ask your coach") + "\n\n")
		if line, ok := m.loadingLine(m.questions.Status(), m.questions.Err(), styles); !ok {
			b.WriteString(line + "\n")
		} else if questions := m.questions.Data(); questions != nil {
			for i, q := range *questions {
				text := truncate(q.Question, 70)
				if i == m.questionCursor {
					b.WriteString(styles.AccentText.Render("› ") + styles.Selected.Render(text) + "\n")
				} else {
					b.WriteString("  " + styles.Text.Render(text) + "\n")
				}
			}
		}
	} else {
		b.WriteString(m.chatView.View() + "\n")
		if m.sending {
			b.WriteString(m.spin.View() + styles.MutedText.Render(" coach is typing...") + "\n")
		}
	}

	b.WriteString("\n")
	if m.chatInput.Focused() {
		b.WriteString(m.chatInput.View())
	} else {
		b.WriteString(styles.FaintText.Render("press i to type a message"))
	}
	return b.String()
}
