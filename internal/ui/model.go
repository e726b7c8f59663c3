package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/evhart/stride/internal/coach"
	"github.com/evhart/stride/internal/fetch"
	"github.com/evhart/stride/internal/prefs"
	"github.com/evhart/stride/internal/profile"
	"github.com/evhart/stride/internal/series"
	"github.com/evhart/stride/internal/snapshot"
)

// Tab identifies a top-level screen.
type Tab int

const (
	TabHome Tab = iota
	TabDashboard
	TabProgress
	TabChat
	TabProfile
)

var tabNames = []string{"Home", "Dashboard", "Progress", "Chat", "Profile"}

// overlay identifies a view stacked on top of the active tab.
type overlay int

const (
	overlayNone overlay = iota
	overlayDetail
	overlayHourly
	overlayEarlier
	overlayConversation
	overlayRecommendation
)

// editMode identifies which modal text input is open, if any.
type editMode int

const (
	editNone editMode = iota
	editGoal
	editWeight
)

// Options configure the UI runtime.
type Options struct {
	Context   context.Context
	Gateway   coach.Gateway
	Profiles  *profile.Store
	Snapshots *snapshot.Cache
	Cursor    series.DateCursor
	PageSize  int
	ThemeName string
	PrefsPath string
}

// Model is the Bubble Tea model for the whole application.
type Model struct {
	ctx       context.Context
	gateway   coach.Gateway
	profiles  *profile.Store
	snapshots *snapshot.Cache
	prefsPath string
	pageSize  int

	theme  Theme
	width  int
	height int
	spin   spinner.Model

	tab     Tab
	overlay overlay
	cursor  series.DateCursor

	// Per-screen fetch state.
	home         fetch.Controller[homeVM]
	recs         fetch.Controller[[]coach.Recommendation]
	dashboard    fetch.Controller[dashboardVM]
	progress     fetch.Controller[progressVM]
	detail       fetch.Controller[detailVM]
	advice       fetch.Controller[coach.Detail]
	hourly       fetch.Controller[hourlyVM]
	questions    fetch.Controller[[]coach.SuggestedQuestion]
	conversation fetch.Controller[conversationVM]

	// Earlier conversations, paged.
	subjects    fetch.Controller[fetch.Page[coach.ConversationSubject]]
	subjectList *fetch.Collection[coach.ConversationSubject]

	detailMetric metricInfo

	// Selection indexes.
	recCursor      int
	questionCursor int
	subjectCursor  int
	profileCursor  int
	progressCursor int

	// Chat state.
	chatInput      textinput.Model
	chatView       viewport.Model
	chatMessages   []chatMessage
	conversationID *string
	sending        bool
	lastSendText   string

	// Modal editing.
	edit       editMode
	editInput  textinput.Model
	editMetric metricInfo

	toast    string
	toastErr bool

	quitting bool
}

// chatMessage is one bubble in the live chat transcript.
type chatMessage struct {
	ID       string
	FromUser bool
	Text     string
	Failed   bool
}

// New builds the initial model.
func New(opts Options) Model {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.PageSize <= 0 {
		opts.PageSize = 5
	}

	theme := GetTheme(opts.ThemeName)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	input := textinput.New()
	input.Placeholder = "Ask your coach..."
	input.CharLimit = 500

	edit := textinput.New()
	edit.CharLimit = 10

	m := Model{
		ctx:       opts.Context,
		gateway:   opts.Gateway,
		profiles:  opts.Profiles,
		snapshots: opts.Snapshots,
		prefsPath: opts.PrefsPath,
		pageSize:  opts.PageSize,
		theme:     theme,
		spin:      sp,
		cursor:    opts.Cursor,
		chatInput: input,
		chatView:  viewport.New(0, 0),
		editInput: edit,
		subjectList: fetch.NewCollection(opts.PageSize,
			func(s coach.ConversationSubject) string { return s.ConversationID }),
	}

	// Paint the dashboard from the last good snapshot; the next load
	// supersedes it.
	var seeded dashboardVM
	if hit, err := m.snapshots.Read(m.profiles.Active().ID, "dashboard", &seeded); err == nil && hit {
		m.dashboard.Seed(&seeded)
	}
	return m
}

// Init kicks off the spinner and the first load for the active tab.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, func() tea.Msg { return tabActivatedMsg{} })
}

// activeUser returns the active profile's id.
func (m Model) activeUser() string {
	return m.profiles.Active().ID
}

// invalidateAll drops every per-user fetch state. Called when the active
// profile or the date cursor changes.
func (m *Model) invalidateAll() {
	m.home.Invalidate()
	m.recs.Invalidate()
	m.dashboard.Invalidate()
	m.progress.Invalidate()
	m.detail.Invalidate()
	m.advice.Invalidate()
	m.hourly.Invalidate()
	m.conversation.Invalidate()
	m.subjects.Invalidate()
	m.subjectList.Reset()
	m.chatMessages = nil
	m.conversationID = nil
	m.sending = false
	m.lastSendText = ""
	m.recCursor = 0
	m.subjectCursor = 0
}

// saveTheme persists the current theme choice, keeping the profile selection.
func (m Model) saveTheme() {
	p, _ := prefs.Load(m.prefsPath)
	p.Theme = m.theme.Name
	p.Profile = m.activeUser()
	_ = prefs.Save(m.prefsPath, p)
}

// saveProfilePref persists the active profile choice.
func (m Model) saveProfilePref() {
	p, _ := prefs.Load(m.prefsPath)
	p.Profile = m.activeUser()
	_ = prefs.Save(m.prefsPath, p)
}

func formatValue(v float64, decimals int) string {
	return fmt.Sprintf("%.*f", decimals, v)
}
