package tui

import (
	"strings"
	"time"

	"staffdesk-cli/internal/attendance"
	"staffdesk-cli/internal/model"
	"staffdesk-cli/internal/store"
	"staffdesk-cli/internal/worksession"

	tea "github.com/charmbracelet/bubbletea"
)

// Update mutates a local copy of the model and returns it. The helpers below
// take pointer receivers so everything they change lands in that copy.
func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case clockTickMsg:
		m.now = time.Now()
		return m, tickClock()

	case tea.KeyMsg:
		var cmd tea.Cmd
		switch {
		case m.view == viewLogin:
			cmd = m.updateLogin(msg)
		case m.modal != modalNone:
			cmd = m.updateModal(msg)
		default:
			cmd = m.updateKey(msg)
		}
		return m, cmd
	}
	return m, nil
}

func (m *appModel) updateLogin(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "tab", "shift+tab", "up", "down":
		m.loginFocus = 1 - m.loginFocus
		if m.loginFocus == 0 {
			m.loginUser.Focus()
			m.loginPass.Blur()
		} else {
			m.loginPass.Focus()
			m.loginUser.Blur()
		}
		return nil
	case "enter":
		if strings.TrimSpace(m.loginUser.Value()) == "" || m.loginPass.Value() == "" {
			m.loginErr = "Please enter both username and password."
			return nil
		}
		m.loginErr = ""
		m.view = viewDashboard
		return nil
	}

	var cmd tea.Cmd
	if m.loginFocus == 0 {
		m.loginUser, cmd = m.loginUser.Update(msg)
	} else {
		m.loginPass, cmd = m.loginPass.Update(msg)
	}
	return cmd
}

func (m *appModel) updateKey(msg tea.KeyMsg) tea.Cmd {
	// Comment input captures keys while active.
	if m.view == viewNewsFeed && m.commenting {
		return m.updateCommenting(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return tea.Quit
	case "1":
		m.view = viewDashboard
		return nil
	case "2":
		m.view = viewNewsFeed
		return nil
	case "3":
		m.view = viewLeave
		m.requestCursor = 0
		return nil
	case "4":
		m.view = viewTimesheet
		return nil
	case "5":
		m.view = viewProfile
		return nil
	}

	switch m.view {
	case viewDashboard:
		m.updateDashboard(msg)
	case viewNewsFeed:
		m.updateNewsFeed(msg)
	case viewLeave:
		m.updateLeave(msg)
	case viewTimesheet:
		m.updateTimesheetMenu(msg)
	case viewHistory:
		m.updateHistory(msg, &m.hist)
	case viewTimesheetHistory:
		m.updateHistory(msg, &m.tsHist)
	case viewCalendar:
		m.updateCalendar(msg)
	case viewOvertime:
		m.updateRequestPage(msg, model.RequestOvertime, modalFileOT, viewOvertime)
	case viewScheduleChange:
		m.updateRequestPage(msg, model.RequestScheduleChange, modalScheduleChange, viewScheduleChange)
	case viewTimeAdjustment:
		m.updateRequestPage(msg, model.RequestTimeAdjustment, modalTimeAdjustment, viewTimeAdjustment)
	case viewProfile:
		if msg.String() == "e" {
			m.openFormModal(modalEditContact)
		}
	case viewRequestDetails:
		if msg.String() == "esc" || msg.String() == "backspace" {
			m.view = m.returnView
		}
	}
	return nil
}

func (m *appModel) updateDashboard(msg tea.KeyMsg) {
	recent := m.store.RecentRequests(4)
	switch msg.String() {
	case "c":
		if _, err := m.store.ClockEvent(m.now); err == store.ErrCycleComplete {
			m.openAlert("You have already completed today's time log.")
		}
	case "up", "k":
		if m.activityCursor > 0 {
			m.activityCursor--
		}
	case "down", "j":
		if m.activityCursor < len(recent)-1 {
			m.activityCursor++
		}
	case "enter":
		if m.activityCursor < len(recent) {
			m.selectedRequestID = recent[m.activityCursor].ID
			m.returnView = viewDashboard
			m.view = viewRequestDetails
		}
	}
}

func (m *appModel) updateNewsFeed(msg tea.KeyMsg) {
	items := m.filteredNews()
	switch msg.String() {
	case "left", "h":
		m.newsCategory--
		if m.newsCategory < 0 {
			m.newsCategory = len(model.NewsCategories())
		}
		m.newsCursor = 0
	case "right":
		m.newsCategory++
		if m.newsCategory > len(model.NewsCategories()) {
			m.newsCategory = 0
		}
		m.newsCursor = 0
	case "up", "k":
		if m.newsCursor > 0 {
			m.newsCursor--
		}
	case "down", "j":
		if m.newsCursor < len(items)-1 {
			m.newsCursor++
		}
	case "l", "b", "s":
		if m.newsCursor < len(items) {
			kind := map[string]model.ReactionType{
				"l": model.ReactionLike,
				"b": model.ReactionCelebrate,
				"s": model.ReactionSupport,
			}[msg.String()]
			_ = m.store.SetReaction(items[m.newsCursor].ID, kind)
		}
	case "c":
		if m.newsCursor < len(items) {
			m.commenting = true
			m.commentErr = ""
			m.commentInput.SetValue("")
			m.commentInput.Focus()
		}
	}
}

func (m *appModel) updateCommenting(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "ctrl+g":
		m.commenting = false
		m.commentErr = ""
		m.commentInput.Blur()
		return nil
	case "enter":
		items := m.filteredNews()
		if m.newsCursor >= len(items) {
			m.commenting = false
			return nil
		}
		text := m.commentInput.Value()
		if strings.TrimSpace(text) == "" {
			m.commentErr = "Comment cannot be empty."
			return nil
		}
		if store.ContainsProfanity(text) {
			m.commentErr = "Your comment contains language that is not allowed."
			return nil
		}
		if _, err := m.store.AddNewsComment(items[m.newsCursor].ID, text, m.now); err != nil {
			m.commentErr = err.Error()
			return nil
		}
		m.commenting = false
		m.commentInput.Blur()
		return nil
	}

	var cmd tea.Cmd
	m.commentInput, cmd = m.commentInput.Update(msg)
	return cmd
}

func (m *appModel) updateLeave(msg tea.KeyMsg) {
	reqs := m.requestsOfType(model.RequestLeave)
	switch msg.String() {
	case "f":
		m.openRequestModal(modalFileLeave)
	case "up", "k":
		if m.requestCursor > 0 {
			m.requestCursor--
		}
	case "down", "j":
		if m.requestCursor < len(reqs)-1 {
			m.requestCursor++
		}
	case "enter":
		if m.requestCursor < len(reqs) {
			m.selectedRequestID = reqs[m.requestCursor].ID
			m.returnView = viewLeave
			m.view = viewRequestDetails
		}
	}
}

var timesheetMenu = []struct {
	label string
	view  view
}{
	{"Attendance History", viewHistory},
	{"Calendar Summary", viewCalendar},
	{"Detailed History", viewTimesheetHistory},
	{"Overtime", viewOvertime},
	{"Change Schedule", viewScheduleChange},
	{"Time Adjustment", viewTimeAdjustment},
}

func (m *appModel) updateTimesheetMenu(msg tea.KeyMsg) {
	switch msg.String() {
	case "up", "k":
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case "down", "j":
		if m.menuCursor < len(timesheetMenu)-1 {
			m.menuCursor++
		}
	case "enter":
		m.view = timesheetMenu[m.menuCursor].view
		m.requestCursor = 0
	case "esc", "backspace":
		m.view = viewDashboard
	}
}

func (m *appModel) updateHistory(msg tea.KeyMsg, hs *historyState) {
	res := attendance.Apply(m.store.State.Attendance, hs.q)
	switch msg.String() {
	case "esc", "backspace":
		m.view = viewTimesheet
	case "f":
		m.openHistoryFilter(hs)
	case "s":
		// Cycle the sort column. Sorting never resets the page.
		switch hs.q.SortKey {
		case attendance.SortByDate:
			hs.q.SortKey = attendance.SortByTimeIn
		case attendance.SortByTimeIn:
			hs.q.SortKey = attendance.SortByTimeOut
		default:
			hs.q.SortKey = attendance.SortByDate
		}
	case "d":
		if hs.q.SortDir == attendance.Asc {
			hs.q.SortDir = attendance.Desc
		} else {
			hs.q.SortDir = attendance.Asc
		}
	case "left":
		if hs.q.Page > 1 {
			hs.q.Page--
			hs.cursor = 0
		}
	case "right":
		if hs.q.Page < res.PageCount {
			hs.q.Page++
			hs.cursor = 0
		}
	case "up", "k":
		if hs.cursor > 0 {
			hs.cursor--
		}
	case "down", "j":
		if hs.cursor < len(res.Records)-1 {
			hs.cursor++
		}
	case "o":
		if hs.cursor < len(res.Records) {
			rec := res.Records[hs.cursor]
			switch rec.OTStatus {
			case model.OTEligible:
				m.openOTFromHistory(rec)
			case model.OTSubmitted:
				m.openAlert("An overtime request for this day was already submitted.")
			case model.OTExpired:
				m.openAlert("The filing window for this day's overtime has passed.")
			}
		}
	}
}

func (m *appModel) updateCalendar(msg tea.KeyMsg) {
	switch msg.String() {
	case "esc", "backspace":
		m.view = viewTimesheet
	case "left", "h":
		m.calMonth--
		if m.calMonth < time.January {
			m.calMonth = time.December
			m.calYear--
		}
	case "right":
		m.calMonth++
		if m.calMonth > time.December {
			m.calMonth = time.January
			m.calYear++
		}
	case "t":
		m.calYear, m.calMonth = m.now.Year(), m.now.Month()
	}
}

func (m *appModel) updateRequestPage(msg tea.KeyMsg, kind model.RequestType, modal modalKind, self view) {
	reqs := m.requestsOfType(kind)
	switch msg.String() {
	case "esc", "backspace":
		m.view = viewTimesheet
	case "f":
		m.openRequestModal(modal)
	case "up", "k":
		if m.requestCursor > 0 {
			m.requestCursor--
		}
	case "down", "j":
		if m.requestCursor < len(reqs)-1 {
			m.requestCursor++
		}
	case "enter":
		if m.requestCursor < len(reqs) {
			m.selectedRequestID = reqs[m.requestCursor].ID
			m.returnView = self
			m.view = viewRequestDetails
		}
	}
}

// openRequestModal gates request filing behind a clock-in reminder: filing a
// request before clocking in is usually a mistake, but never forbidden.
func (m *appModel) openRequestModal(kind modalKind) {
	if worksession.PhaseOf(m.store.State.TimeLog.TimeIn, m.store.State.TimeLog.TimeOut) == worksession.NotClockedIn {
		m.pendingModal = kind
		m.modal = modalClockReminder
		return
	}
	m.openFormModal(kind)
}

func (m *appModel) openAlert(msg string) {
	m.alertMsg = msg
	m.modal = modalAlert
}

func (m *appModel) filteredNews() []model.NewsItem {
	if m.newsCategory == 0 {
		return m.store.State.News
	}
	cat := model.NewsCategories()[m.newsCategory-1]
	var out []model.NewsItem
	for _, n := range m.store.State.News {
		if n.Category == cat {
			out = append(out, n)
		}
	}
	return out
}

func (m *appModel) requestsOfType(kind model.RequestType) []model.ActivityRequest {
	var out []model.ActivityRequest
	for _, r := range m.store.State.Requests {
		if r.Type == kind {
			out = append(out, r)
		}
	}
	return out
}

func (m *appModel) findRequest(id string) *model.ActivityRequest {
	for i := range m.store.State.Requests {
		if m.store.State.Requests[i].ID == id {
			return &m.store.State.Requests[i]
		}
	}
	return nil
}
