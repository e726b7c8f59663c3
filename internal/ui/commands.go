package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/evhart/stride/internal/coach"
	"github.com/evhart/stride/internal/fetch"
	"github.com/evhart/stride/internal/series"
)

const toastDuration = 3 * time.Second

// loadHome joins the daily summary and step goal, and independently fetches
// recommendations. The two cards fail and retry separately.
func (m Model) loadHome() (Model, tea.Cmd) {
	gen := m.home.Begin()
	rgen := m.recs.Begin()

	ctx, g := m.ctx, m.gateway
	user, date, cursor := m.activeUser(), m.cursor.String(), m.cursor

	summary := func() tea.Msg {
		var (
			daily []coach.DailyRecord
			goal  coach.Goal
		)
		err := fetch.Join(ctx,
			func(ctx context.Context) error {
				var e error
				daily, e = g.DailyByDate(ctx, date, user)
				return e
			},
			func(ctx context.Context) error {
				var e error
				goal, e = g.Goal(ctx, user, "steps")
				return e
			},
		)
		return homeLoadedMsg{gen: gen, vm: buildHomeVM(cursor, daily, goal), err: err}
	}
	recommendations := func() tea.Msg {
		recs, err := g.Recommendations(ctx, date, user)
		return recsLoadedMsg{gen: rgen, recs: recs, err: err}
	}
	return m, tea.Batch(summary, recommendations)
}

// loadDashboard joins the daily summary, the sleep week, the heart-rate
// minute series, and the step goal. All-or-nothing.
func (m Model) loadDashboard() (Model, tea.Cmd) {
	gen := m.dashboard.Begin()

	ctx, g := m.ctx, m.gateway
	user, date, cursor := m.activeUser(), m.cursor.String(), m.cursor

	return m, func() tea.Msg {
		var (
			daily     []coach.DailyRecord
			sleep     []coach.SleepRecord
			heartRate []float64
			goal      coach.Goal
		)
		err := fetch.Join(ctx,
			func(ctx context.Context) error {
				var e error
				daily, e = g.DailyByDate(ctx, date, user)
				return e
			},
			func(ctx context.Context) error {
				var e error
				sleep, e = g.SleepWeekBack(ctx, date, user)
				return e
			},
			func(ctx context.Context) error {
				var e error
				heartRate, e = g.HeartRateByMinute(ctx, date)
				return e
			},
			func(ctx context.Context) error {
				var e error
				goal, e = g.Goal(ctx, user, "steps")
				return e
			},
		)
		return dashboardLoadedMsg{gen: gen, vm: buildDashboardVM(cursor, daily, sleep, heartRate, goal), err: err}
	}
}

// loadProgress joins the weekly histories with the goal list.
func (m Model) loadProgress() (Model, tea.Cmd) {
	gen := m.progress.Begin()

	ctx, g := m.ctx, m.gateway
	user, date := m.activeUser(), m.cursor.String()

	return m, func() tea.Msg {
		var (
			week      []coach.DailyRecord
			sleepWeek []coach.SleepRecord
			goals     []coach.Goal
		)
		err := fetch.Join(ctx,
			func(ctx context.Context) error {
				var e error
				week, e = g.WeekBack(ctx, date, user)
				return e
			},
			func(ctx context.Context) error {
				var e error
				sleepWeek, e = g.SleepWeekBack(ctx, date, user)
				return e
			},
			func(ctx context.Context) error {
				var e error
				goals, e = g.Goals(ctx, user)
				return e
			},
		)
		return progressLoadedMsg{gen: gen, vm: buildProgressVM(week, sleepWeek, goals), err: err}
	}
}

// loadDetail joins the cursor-day record, the metric's weekly history, and
// its goal. The coach's written insight loads independently so its failure
// never blanks the numbers.
func (m Model) loadDetail(metric metricInfo) (Model, tea.Cmd) {
	m.detailMetric = metric
	gen := m.detail.Begin()
	agen := m.advice.Begin()

	ctx, g := m.ctx, m.gateway
	user, date, cursor := m.activeUser(), m.cursor.String(), m.cursor

	numbers := func() tea.Msg {
		var (
			daily     []coach.DailyRecord
			week      []coach.DailyRecord
			sleepWeek []coach.SleepRecord
			goal      coach.Goal
		)
		steps := []func(context.Context) error{
			func(ctx context.Context) error {
				var e error
				daily, e = g.DailyByDate(ctx, date, user)
				return e
			},
			func(ctx context.Context) error {
				var e error
				goal, e = g.Goal(ctx, user, metric.Key)
				return e
			},
		}
		switch metric.Key {
		case "sleep":
			steps = append(steps, func(ctx context.Context) error {
				var e error
				sleepWeek, e = g.SleepWeekBack(ctx, date, user)
				return e
			})
		case "weight":
			steps = append(steps, func(ctx context.Context) error {
				var e error
				week, e = g.WeightWeekBack(ctx, date, user)
				return e
			})
		default:
			steps = append(steps, func(ctx context.Context) error {
				var e error
				week, e = g.WeekBack(ctx, date, user)
				return e
			})
		}
		err := fetch.Join(ctx, steps...)
		return detailLoadedMsg{gen: gen, vm: buildDetailVM(metric, cursor, daily, week, sleepWeek, goal), err: err}
	}
	advice := func() tea.Msg {
		detail, err := g.MetricDetail(ctx, date, metric.Key)
		return adviceLoadedMsg{gen: agen, detail: detail, err: err}
	}
	return m, tea.Batch(numbers, advice)
}

// loadAdvice retries only the coach insight on the detail view.
func (m Model) loadAdvice() (Model, tea.Cmd) {
	agen := m.advice.Begin()

	ctx, g := m.ctx, m.gateway
	date, metric := m.cursor.String(), m.detailMetric.Key

	return m, func() tea.Msg {
		detail, err := g.MetricDetail(ctx, date, metric)
		return adviceLoadedMsg{gen: agen, detail: detail, err: err}
	}
}

// loadHourly joins the hourly samples, the daily record, and the step goal
// for the cursor date.
func (m Model) loadHourly() (Model, tea.Cmd) {
	gen := m.hourly.Begin()

	ctx, g := m.ctx, m.gateway
	user, date, cursor := m.activeUser(), m.cursor.String(), m.cursor

	return m, func() tea.Msg {
		var (
			hourly []coach.HourlyRecord
			daily  []coach.DailyRecord
			goal   coach.Goal
		)
		err := fetch.Join(ctx,
			func(ctx context.Context) error {
				var e error
				hourly, e = g.HourlyByDate(ctx, date, user)
				return e
			},
			func(ctx context.Context) error {
				var e error
				daily, e = g.DailyByDate(ctx, date, user)
				return e
			},
			func(ctx context.Context) error {
				var e error
				goal, e = g.Goal(ctx, user, "steps")
				return e
			},
		)
		return hourlyLoadedMsg{gen: gen, vm: buildHourlyVM(cursor, hourly, daily, goal), err: err}
	}
}

// loadQuestions fetches the suggested questions shown on the Chat tab.
func (m Model) loadQuestions() (Model, tea.Cmd) {
	gen := m.questions.Begin()

	ctx, g := m.ctx, m.gateway

	return m, func() tea.Msg {
		questions, err := g.SuggestedQuestions(ctx)
		return questionsLoadedMsg{gen: gen, questions: questions, err: err}
	}
}

// loadSubjects fetches the first page of earlier conversations.
func (m Model) loadSubjects() (Model, tea.Cmd) {
	gen := m.subjects.Begin()

	ctx, g := m.ctx, m.gateway
	user, limit := m.activeUser(), m.subjectList.PageSize()

	return m, func() tea.Msg {
		page, err := g.ConversationSubjects(ctx, user, 0, limit)
		return subjectsLoadedMsg{
			gen:  gen,
			page: fetch.Page[coach.ConversationSubject]{Items: page.Conversations, Total: page.Total},
			err:  err,
		}
	}
}

// loadMoreSubjects fetches the next page. BeginMore already gated the call.
func (m Model) loadMoreSubjects() (Model, tea.Cmd) {
	ctx, g := m.ctx, m.gateway
	user, offset, limit := m.activeUser(), m.subjectList.Offset(), m.subjectList.PageSize()
	epoch := m.subjectList.Epoch()

	return m, func() tea.Msg {
		page, err := g.ConversationSubjects(ctx, user, offset, limit)
		return moreSubjectsMsg{
			epoch: epoch,
			page:  fetch.Page[coach.ConversationSubject]{Items: page.Conversations, Total: page.Total},
			err:   err,
		}
	}
}

// loadConversation fetches the full message history of an earlier chat.
func (m Model) loadConversation(subject coach.ConversationSubject) (Model, tea.Cmd) {
	gen := m.conversation.Begin()

	ctx, g := m.ctx, m.gateway

	return m, func() tea.Msg {
		messages, err := g.ConversationMessages(ctx, subject.ConversationID)
		return conversationLoadedMsg{gen: gen, vm: conversationVM{Subject: subject, Messages: messages}, err: err}
	}
}

// sendChat posts one message. The local bubble is appended immediately and
// flipped to failed if the POST errors, keeping the text for retry.
func (m Model) sendChat(text string) (Model, tea.Cmd) {
	localID := uuid.NewString()
	m.chatMessages = append(m.chatMessages, chatMessage{ID: localID, FromUser: true, Text: text})
	m.sending = true
	m.lastSendText = text

	ctx, g := m.ctx, m.gateway
	req := coach.ChatRequest{
		UserID:         m.activeUser(),
		Message:        text,
		ConversationID: m.conversationID,
	}

	return m, func() tea.Msg {
		resp, err := g.SendMessage(ctx, req)
		if err != nil {
			logrus.WithError(err).Warn("chat send failed")
		}
		return chatReplyMsg{localID: localID, resp: resp, err: err}
	}
}

// updateGoal posts a new goal value and reports through a toast.
func (m Model) updateGoal(metric string, value float64) (Model, tea.Cmd) {
	ctx, g := m.ctx, m.gateway
	user := m.activeUser()

	return m, func() tea.Msg {
		err := g.UpdateGoal(ctx, user, metric, value)
		if err != nil {
			logrus.WithError(err).WithField("metric", metric).Warn("goal update failed")
		}
		return mutationDoneMsg{verb: "goal", err: err}
	}
}

// referenceHeightMeters stands in for a per-profile height, which the
// backend does not track. BMI entries are derived from it.
const referenceHeightMeters = 1.60

// logWeight posts a weight log entry stamped with the cursor date. BMI is
// derived from the reference height so the row carries the full shape the
// backend stores.
func (m Model) logWeight(weightKG float64) (Model, tea.Cmd) {
	ctx, g := m.ctx, m.gateway
	entry := coach.WeightLogEntry{
		UserID:    m.activeUser(),
		WeightKG:  weightKG,
		BMI:       series.RoundTo(weightKG/(referenceHeightMeters*referenceHeightMeters), 2),
		Timestamp: m.cursor.Time().Format(time.RFC3339),
		Date:      m.cursor.String(),
	}

	return m, func() tea.Msg {
		err := g.AddWeightLog(ctx, entry)
		if err != nil {
			logrus.WithError(err).Warn("weight log failed")
		}
		return mutationDoneMsg{verb: "weight", err: err}
	}
}

func clearToastCmd() tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg { return toastClearMsg{} })
}
