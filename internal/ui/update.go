package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/evhart/stride/internal/coach"
)

func activateCmd() tea.Cmd {
	return func() tea.Msg { return tabActivatedMsg{} }
}

// Update is the single state-transition point for the application.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.chatView.Width = msg.Width - 4
		m.chatView.Height = msg.Height - 9
		m.refreshChatView()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tabActivatedMsg:
		return m.activate()

	case homeLoadedMsg:
		m.home.Commit(msg.gen, &msg.vm, msg.err)
		return m, nil

	case recsLoadedMsg:
		m.recs.Commit(msg.gen, &msg.recs, msg.err)
		if m.recCursor >= len(msg.recs) {
			m.recCursor = 0
		}
		return m, nil

	case dashboardLoadedMsg:
		if m.dashboard.Commit(msg.gen, &msg.vm, msg.err) && msg.err == nil {
			if err := m.snapshots.Write(m.activeUser(), "dashboard", msg.vm); err != nil {
				logrus.WithError(err).Warn("snapshot write failed")
			}
		}
		return m, nil

	case progressLoadedMsg:
		m.progress.Commit(msg.gen, &msg.vm, msg.err)
		return m, nil

	case detailLoadedMsg:
		m.detail.Commit(msg.gen, &msg.vm, msg.err)
		return m, nil

	case adviceLoadedMsg:
		m.advice.Commit(msg.gen, &msg.detail, msg.err)
		return m, nil

	case hourlyLoadedMsg:
		m.hourly.Commit(msg.gen, &msg.vm, msg.err)
		return m, nil

	case questionsLoadedMsg:
		m.questions.Commit(msg.gen, &msg.questions, msg.err)
		if m.questionCursor >= len(msg.questions) {
			m.questionCursor = 0
		}
		return m, nil

	case subjectsLoadedMsg:
		if m.subjects.Commit(msg.gen, &msg.page, msg.err) && msg.err == nil {
			m.subjectList.Replace(msg.page)
			if m.subjectCursor >= m.subjectList.Len() {
				m.subjectCursor = 0
			}
		}
		return m, nil

	case moreSubjectsMsg:
		if msg.epoch != m.subjectList.Epoch() {
			// The list was reset or replaced while this page was in
			// flight; it belongs to the old lineage.
			return m, nil
		}
		if msg.err != nil {
			m.subjectList.EndMore()
			return m.showToast("Could not load more conversations", true)
		}
		m.subjectList.Merge(msg.page)
		return m, nil

	case conversationLoadedMsg:
		m.conversation.Commit(msg.gen, &msg.vm, msg.err)
		return m, nil

	case chatReplyMsg:
		return m.applyChatReply(msg)

	case mutationDoneMsg:
		return m.applyMutation(msg)

	case toastClearMsg:
		m.toast = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// activate applies the load policy for the active tab or overlay. Screens
// revalidate on every activation; stale data keeps painting via Latest.
func (m Model) activate() (Model, tea.Cmd) {
	switch m.overlay {
	case overlayDetail:
		return m.loadDetail(m.detailMetric)
	case overlayHourly:
		return m.loadHourly()
	case overlayEarlier:
		return m.loadSubjects()
	}

	switch m.tab {
	case TabHome:
		return m.loadHome()
	case TabDashboard:
		return m.loadDashboard()
	case TabProgress:
		return m.loadProgress()
	case TabChat:
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m, cmd = m.loadQuestions()
		cmds = append(cmds, cmd)
		m, cmd = m.loadSubjects()
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}
	return m, nil
}

func (m Model) applyChatReply(msg chatReplyMsg) (Model, tea.Cmd) {
	m.sending = false
	if msg.err != nil {
		for i := range m.chatMessages {
			if m.chatMessages[i].ID == msg.localID {
				m.chatMessages[i].Failed = true
			}
		}
		m.refreshChatView()
		return m.showToast("Message failed. Press R to retry.", true)
	}
	m.lastSendText = ""
	if msg.resp.ConversationID != "" {
		id := msg.resp.ConversationID
		m.conversationID = &id
	}
	m.chatMessages = append(m.chatMessages, chatMessage{
		ID:   msg.localID + "-reply",
		Text: msg.resp.Response,
	})
	m.refreshChatView()
	return m, nil
}

func (m Model) applyMutation(msg mutationDoneMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		return m.showToast(mutationErrorText(msg.verb, msg.err), true)
	}

	var next Model
	var cmd tea.Cmd
	switch msg.verb {
	case "goal":
		next, cmd = m.showToast("Goal updated", false)
	default:
		next, cmd = m.showToast("Weight logged", false)
	}

	// Reload whatever is showing so the new value appears immediately.
	var reload tea.Cmd
	next, reload = next.activate()
	return next, tea.Batch(cmd, reload)
}

// mutationErrorText prefers the server-supplied detail when there is one.
func mutationErrorText(verb string, err error) string {
	detail := coach.ErrorDetail(err)
	if detail == "" {
		if verb == "goal" {
			return "Could not update goal"
		}
		return "Could not log weight"
	}
	return detail
}

func (m Model) showToast(text string, isErr bool) (Model, tea.Cmd) {
	m.toast = text
	m.toastErr = isErr
	return m, clearToastCmd()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Modal edit captures everything first.
	if m.edit != editNone {
		return m.handleEditKey(msg)
	}
	// Chat input captures printable keys while focused.
	if m.chatInput.Focused() {
		return m.handleChatInputKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "1", "2", "3", "4", "5":
		n, _ := strconv.Atoi(msg.String())
		return m.switchTab(Tab(n - 1))

	case "tab":
		return m.switchTab((m.tab + 1) % Tab(len(tabNames)))

	case "shift+tab":
		return m.switchTab((m.tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames)))

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.saveTheme()
		return m, nil

	case "r":
		return m.toCmd(m.activate())

	case "esc":
		if m.overlay != overlayNone {
			return m.closeOverlay()
		}
		return m, nil

	case "h", "left":
		if m.dateScoped() {
			return m.stepCursor(-1)
		}
	case "l", "right":
		if m.dateScoped() {
			return m.stepCursor(1)
		}
	}

	switch m.overlay {
	case overlayDetail:
		return m.handleDetailKey(msg)
	case overlayEarlier:
		return m.handleEarlierKey(msg)
	case overlayConversation, overlayRecommendation, overlayHourly:
		return m, nil
	}

	switch m.tab {
	case TabHome:
		return m.handleHomeKey(msg)
	case TabDashboard:
		return m.handleDashboardKey(msg)
	case TabProgress:
		return m.handleProgressKey(msg)
	case TabChat:
		return m.handleChatKey(msg)
	case TabProfile:
		return m.handleProfileKey(msg)
	}
	return m, nil
}

// dateScoped reports whether the current view follows the date cursor.
func (m Model) dateScoped() bool {
	if m.overlay == overlayDetail || m.overlay == overlayHourly {
		return true
	}
	if m.overlay != overlayNone {
		return false
	}
	return m.tab == TabHome || m.tab == TabDashboard || m.tab == TabProgress
}

func (m Model) stepCursor(days int) (tea.Model, tea.Cmd) {
	m.cursor = m.cursor.Step(days)
	m.home.Invalidate()
	m.recs.Invalidate()
	m.dashboard.Invalidate()
	m.progress.Invalidate()
	m.detail.Invalidate()
	m.advice.Invalidate()
	m.hourly.Invalidate()
	return m, activateCmd()
}

func (m Model) switchTab(tab Tab) (tea.Model, tea.Cmd) {
	m.overlay = overlayNone
	m.tab = tab
	m.chatInput.Blur()
	return m, activateCmd()
}

func (m Model) closeOverlay() (tea.Model, tea.Cmd) {
	if m.overlay == overlayConversation {
		m.overlay = overlayEarlier
		return m, nil
	}
	m.overlay = overlayNone
	return m, activateCmd()
}

func (m Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	recs := m.recs.Data()
	switch msg.String() {
	case "j", "down":
		if recs != nil && m.recCursor < len(*recs)-1 {
			m.recCursor++
		}
	case "k", "up":
		if m.recCursor > 0 {
			m.recCursor--
		}
	case "enter":
		if recs != nil && len(*recs) > 0 {
			m.overlay = overlayRecommendation
		}
	case "a":
		// Hand the recommendation's question to the coach.
		if recs != nil && m.recCursor < len(*recs) {
			question := (*recs)[m.recCursor].Question
			if strings.TrimSpace(question) != "" {
				m.tab = TabChat
				m.overlay = overlayNone
				m.chatInput.SetValue(question)
				m.chatInput.Focus()
				return m, tea.Batch(activateCmd(), textinput.Blink)
			}
		}
	}
	return m, nil
}

func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s":
		return m.openDetail("steps")
	case "z":
		return m.openDetail("sleep")
	case "c":
		return m.openDetail("calories")
	case "a":
		return m.openDetail("active")
	case "w":
		return m.openDetail("weight")
	case "H":
		m.overlay = overlayHourly
		return m, activateCmd()
	}
	return m, nil
}

func (m Model) openDetail(key string) (tea.Model, tea.Cmd) {
	m.overlay = overlayDetail
	m.detailMetric = metricByKey(key)
	return m, activateCmd()
}

func (m Model) handleProgressKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.progressCursor < len(metricOrder)-1 {
			m.progressCursor++
		}
	case "k", "up":
		if m.progressCursor > 0 {
			m.progressCursor--
		}
	case "enter":
		return m.openDetail(metricOrder[m.progressCursor].Key)
	case "e":
		return m.toCmd(m.openGoalEditor(metricOrder[m.progressCursor]))
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "g":
		return m.toCmd(m.openGoalEditor(m.detailMetric))
	case "w":
		if m.detailMetric.Key == "weight" {
			m.edit = editWeight
			m.editMetric = m.detailMetric
			m.editInput.SetValue("")
			m.editInput.Placeholder = "weight (kg)"
			m.editInput.Focus()
			return m, textinput.Blink
		}
	case "i":
		// Retry only the coach insight.
		return m.toCmd(m.loadAdvice())
	}
	return m, nil
}

func (m Model) openGoalEditor(metric metricInfo) (Model, tea.Cmd) {
	m.edit = editGoal
	m.editMetric = metric
	m.editInput.SetValue("")
	m.editInput.Placeholder = "new " + metric.Label + " goal"
	m.editInput.Focus()
	return m, textinput.Blink
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.edit = editNone
		m.editInput.Blur()
		return m, nil
	case "enter":
		value, err := strconv.ParseFloat(strings.TrimSpace(m.editInput.Value()), 64)
		if err != nil || value <= 0 {
			return m.toCmd(m.showToast("Enter a positive number", true))
		}
		mode := m.edit
		m.edit = editNone
		m.editInput.Blur()
		if mode == editGoal {
			return m.toCmd(m.updateGoal(m.editMetric.Key, value))
		}
		return m.toCmd(m.logWeight(value))
	}
	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

func (m Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	questions := m.questions.Data()
	switch msg.String() {
	case "i", "/":
		m.chatInput.Focus()
		return m, textinput.Blink
	case "e":
		m.overlay = overlayEarlier
		return m, activateCmd()
	case "R":
		if m.lastSendText != "" && !m.sending {
			return m.toCmd(m.sendChat(m.lastSendText))
		}
	case "n":
		// Start a fresh conversation thread.
		m.conversationID = nil
		m.chatMessages = nil
		m.refreshChatView()
	case "j", "down":
		if questions != nil && m.questionCursor < len(*questions)-1 {
			m.questionCursor++
		}
	case "k", "up":
		if m.questionCursor > 0 {
			m.questionCursor--
		}
	case "enter":
		if questions != nil && m.questionCursor < len(*questions) {
			m.chatInput.SetValue((*questions)[m.questionCursor].Question)
			m.chatInput.Focus()
			return m, textinput.Blink
		}
	}
	return m, nil
}

func (m Model) handleChatInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.chatInput.Blur()
		return m, nil
	case "enter":
		text := strings.TrimSpace(m.chatInput.Value())
		if text == "" || m.sending {
			return m, nil
		}
		m.chatInput.SetValue("")
		next, cmd := m.sendChat(text)
		next.refreshChatView()
		return next, cmd
	}
	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

func (m Model) handleEarlierKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.subjectCursor < m.subjectList.Len()-1 {
			m.subjectCursor++
		}
	case "k", "up":
		if m.subjectCursor > 0 {
			m.subjectCursor--
		}
	case "m":
		if m.subjectList.BeginMore() {
			return m.toCmd(m.loadMoreSubjects())
		}
	case "enter":
		items := m.subjectList.Items()
		if m.subjectCursor < len(items) {
			m.overlay = overlayConversation
			return m.toCmd(m.loadConversation(items[m.subjectCursor]))
		}
	}
	return m, nil
}

func (m Model) handleProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	profiles := m.profiles.Profiles()
	switch msg.String() {
	case "j", "down":
		if m.profileCursor < len(profiles)-1 {
			m.profileCursor++
		}
	case "k", "up":
		if m.profileCursor > 0 {
			m.profileCursor--
		}
	case "enter":
		if m.profileCursor < len(profiles) {
			if m.profiles.SetActive(profiles[m.profileCursor].ID) {
				m.invalidateAll()
				m.saveProfilePref()

				// Re-seed the new profile's dashboard from its snapshot.
				var seeded dashboardVM
				if hit, err := m.snapshots.Read(m.activeUser(), "dashboard", &seeded); err == nil && hit {
					m.dashboard.Seed(&seeded)
				}
				next, cmd := m.showToast("Switched to "+profiles[m.profileCursor].Username, false)
				return next, tea.Batch(cmd, activateCmd())
			}
		}
	}
	return m, nil
}

// toCmd adapts (Model, tea.Cmd) to the (tea.Model, tea.Cmd) return shape.
func (m Model) toCmd(next Model, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	return next, cmd
}
