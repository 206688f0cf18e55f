package tui

import (
	"time"

	"staffdesk-cli/internal/attendance"
	"staffdesk-cli/internal/config"
	"staffdesk-cli/internal/store"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type view int

const (
	viewLogin view = iota
	viewDashboard
	viewNewsFeed
	viewLeave
	viewTimesheet // landing menu for the timesheet sub-views
	viewHistory
	viewCalendar
	viewTimesheetHistory
	viewOvertime
	viewScheduleChange
	viewTimeAdjustment
	viewProfile
	viewRequestDetails
)

type modalKind int

const (
	modalNone modalKind = iota
	modalAlert
	modalClockReminder
	modalFileLeave
	modalFileOT
	modalFileOTFromHistory
	modalScheduleChange
	modalTimeAdjustment
	modalEditContact
	modalHistoryFilter
)

// clockTickMsg drives the displayed "now" (welcome banner clock, ticking work
// duration). Re-armed from Update while the program runs.
type clockTickMsg struct{}

func tickClock() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return clockTickMsg{} })
}

// historyState is one filtered/sorted/paginated view over the attendance
// records. The dashboard history page and the timesheet detail view each own
// one (they differ in page size).
type historyState struct {
	q      attendance.Query
	cursor int // row within the current page
}

type appModel struct {
	store *store.Store
	cfg   config.Config

	width  int
	height int
	now    time.Time

	view  view
	modal modalKind

	// login
	loginUser  textinput.Model
	loginPass  textinput.Model
	loginFocus int
	loginErr   string

	// dashboard
	activityCursor int

	// news feed
	newsCategory int // 0 = All, then NewsCategories() order
	newsCursor   int
	commenting   bool
	commentInput textinput.Model
	commentErr   string

	// timesheet
	menuCursor int
	calYear    int
	calMonth   time.Month
	hist       historyState // attendance history, page size 10
	tsHist     historyState // timesheet detail view, page size 15
	// filterTarget remembers which history view the filter modal edits.
	filterTarget view

	// request pages
	requestCursor     int
	selectedRequestID string
	returnView        view // where request details goes back to

	// modal form
	form      []formField
	formFocus int
	formErr   string
	alertMsg  string
	// pendingModal is opened if the user pushes through the clock-in reminder.
	pendingModal modalKind
	// otPrefill carries the precomputed values for filing OT from a history row.
	otPrefillDate  string
	otPrefillHours float64
}

func newAppModel(s *store.Store, cfg config.Config) appModel {
	m := appModel{
		store: s,
		cfg:   cfg,
		now:   time.Now(),
		view:  viewLogin,
	}

	m.loginUser = newInput("username", 40)
	m.loginUser.Focus()
	m.loginPass = newInput("password", 40)
	m.loginPass.EchoMode = textinput.EchoPassword

	m.commentInput = newInput("Write a comment…", 120)

	m.calYear, m.calMonth = m.now.Year(), m.now.Month()
	m.hist = newHistoryState(cfg.HistoryPageSize)
	m.tsHist = newHistoryState(cfg.TimesheetPageSize)
	return m
}

func newHistoryState(pageSize int) historyState {
	return historyState{q: attendance.Query{
		Status:   attendance.StatusAll,
		SortKey:  attendance.SortByDate,
		SortDir:  attendance.Desc,
		Page:     1,
		PageSize: pageSize,
	}}
}

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Prompt = ""
	return in
}

func (m appModel) Init() tea.Cmd { return tickClock() }

func (m appModel) View() string {
	if m.view == viewLogin {
		return m.viewLogin()
	}

	header := m.renderHeader()
	var body string
	switch m.view {
	case viewDashboard:
		body = m.viewDashboard()
	case viewNewsFeed:
		body = m.viewNewsFeed()
	case viewLeave:
		body = m.viewLeave()
	case viewTimesheet:
		body = m.viewTimesheetMenu()
	case viewHistory:
		body = m.viewHistory(&m.hist, "Attendance History")
	case viewCalendar:
		body = m.viewCalendar()
	case viewTimesheetHistory:
		body = m.viewHistory(&m.tsHist, "Timesheet · Detailed History")
	case viewOvertime:
		body = m.viewRequestPage("Overtime Requests", "f: file overtime")
	case viewScheduleChange:
		body = m.viewRequestPage("Schedule Change Requests", "f: request change")
	case viewTimeAdjustment:
		body = m.viewRequestPage("Time Adjustment Requests", "f: request adjustment")
	case viewProfile:
		body = m.viewProfile()
	case viewRequestDetails:
		body = m.viewRequestDetails()
	}

	footer := styleMuted().Render(m.footerHelp())
	out := header + "\n\n" + body + "\n\n" + footer

	if m.modal != modalNone {
		return out + "\n\n" + m.renderModal()
	}
	return out
}

func (m appModel) footerHelp() string {
	switch m.view {
	case viewDashboard:
		return "c: clock in/out  enter: request details  1-5: sections  q: quit"
	case viewNewsFeed:
		return "←/→: category  ↑/↓: post  l/b/s: react  c: comment  1-5: sections  q: quit"
	case viewLeave:
		return "f: file leave  ↑/↓: select  enter: details  1-5: sections  q: quit"
	case viewTimesheet:
		return "↑/↓: select  enter: open  1-5: sections  q: quit"
	case viewHistory, viewTimesheetHistory:
		return "f: filter  s: sort column  d: direction  ←/→: page  o: file OT  esc: back  q: quit"
	case viewCalendar:
		return "←/→: month  t: this month  esc: back  q: quit"
	case viewOvertime, viewScheduleChange, viewTimeAdjustment:
		return "f: file  ↑/↓: select  enter: details  esc: back  q: quit"
	case viewProfile:
		return "e: edit contact  1-5: sections  q: quit"
	case viewRequestDetails:
		return "esc: back  q: quit"
	default:
		return "q: quit"
	}
}
