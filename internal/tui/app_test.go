package tui

import (
	"strings"
	"testing"
	"time"

	"staffdesk-cli/internal/config"
	"staffdesk-cli/internal/model"
	"staffdesk-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

var testNow = time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC)

func newTestModel(t *testing.T) appModel {
	t.Helper()
	s := store.New(store.Seed(testNow, "Casey Lee"))
	m := newAppModel(s, config.Default())
	m.now = testNow
	m.calYear, m.calMonth = testNow.Year(), testNow.Month()
	m.width = 120
	m.height = 40
	return m
}

func press(t *testing.T, m appModel, keys ...string) appModel {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEscape}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(appModel)
	}
	return m
}

func typeText(t *testing.T, m appModel, text string) appModel {
	t.Helper()
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(appModel)
	}
	return m
}

func signIn(t *testing.T, m appModel) appModel {
	t.Helper()
	m = typeText(t, m, "casey")
	m = press(t, m, "tab")
	m = typeText(t, m, "secret")
	return press(t, m, "enter")
}

func TestLoginRequiresBothFields(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "enter")
	if m.view != viewLogin {
		t.Fatalf("empty login accepted")
	}
	if !strings.Contains(m.View(), "Please enter both username and password.") {
		t.Fatalf("login error not shown")
	}

	m = signIn(t, m)
	if m.view != viewDashboard {
		t.Fatalf("valid login rejected, view = %v", m.view)
	}
}

func TestDashboardClockCycle(t *testing.T) {
	m := signIn(t, newTestModel(t))

	if !strings.Contains(m.View(), "--:--:--") {
		t.Fatalf("fresh dashboard should show empty clock parts")
	}

	m = press(t, m, "c")
	if m.store.State.TimeLog.TimeIn == nil {
		t.Fatalf("clock in did not register")
	}
	if !strings.Contains(m.View(), "clock out") {
		t.Fatalf("button label should flip to clock out")
	}

	m = press(t, m, "c")
	if m.store.State.TimeLog.TimeOut == nil {
		t.Fatalf("clock out did not register")
	}

	m = press(t, m, "c")
	if m.modal != modalAlert || !strings.Contains(m.View(), "already completed") {
		t.Fatalf("third clock event should raise the completed-cycle notice")
	}
}

func TestNewsReactionKeysToggle(t *testing.T) {
	m := signIn(t, newTestModel(t))
	m = press(t, m, "2")
	itemID := m.store.State.News[0].ID
	base := m.store.State.News[0].Reactions[model.ReactionLike]

	m = press(t, m, "l")
	if m.store.State.News[0].Reactions[model.ReactionLike] != base+1 {
		t.Fatalf("like did not register")
	}
	m = press(t, m, "l")
	if m.store.State.News[0].Reactions[model.ReactionLike] != base {
		t.Fatalf("second press should toggle the like off")
	}
	m = press(t, m, "l", "b")
	if m.store.State.MyReactions[itemID] != model.ReactionCelebrate {
		t.Fatalf("different reaction should replace, got %v", m.store.State.MyReactions[itemID])
	}
}

func TestCommentProfanityGuard(t *testing.T) {
	m := signIn(t, newTestModel(t))
	m = press(t, m, "2", "c")
	if !m.commenting {
		t.Fatalf("comment input did not open")
	}

	m = typeText(t, m, "what a stupid idea")
	m = press(t, m, "enter")
	if !m.commenting || !strings.Contains(m.View(), "not allowed") {
		t.Fatalf("profane comment should be blocked with a message")
	}
	before := len(m.store.State.News[0].Comments)

	m = press(t, m, "esc")
	m = press(t, m, "c")
	m = typeText(t, m, "love this")
	m = press(t, m, "enter")
	if m.commenting {
		t.Fatalf("clean comment should close the input")
	}
	if len(m.store.State.News[0].Comments) != before+1 {
		t.Fatalf("clean comment not appended")
	}
}

func TestLeaveModalRequiresAttachment(t *testing.T) {
	m := signIn(t, newTestModel(t))
	m = press(t, m, "c") // clock in so the reminder does not trigger
	m = press(t, m, "3", "f")
	if m.modal != modalFileLeave {
		t.Fatalf("leave modal did not open, modal = %v", m.modal)
	}

	// Leave type, start and end dates are prefilled; give a reason but no document.
	m = press(t, m, "tab", "tab", "tab")
	m = typeText(t, m, "flu")
	m = press(t, m, "enter")
	if !strings.Contains(m.View(), "Please attach a supporting document.") {
		t.Fatalf("missing attachment not flagged")
	}

	m = press(t, m, "tab")
	m = typeText(t, m, "med-cert.jpg")
	before := len(m.store.State.Requests)
	m = press(t, m, "enter")
	if len(m.store.State.Requests) != before+1 {
		t.Fatalf("valid leave request not stored")
	}
	if m.modal != modalAlert || !strings.Contains(m.View(), "Leave request submitted") {
		t.Fatalf("success notice missing")
	}
}

func TestClockInReminderGatesRequests(t *testing.T) {
	m := signIn(t, newTestModel(t))
	m = press(t, m, "3", "f")
	if m.modal != modalClockReminder {
		t.Fatalf("reminder should appear before clock in, modal = %v", m.modal)
	}

	// esc cancels without opening the form
	m = press(t, m, "esc")
	if m.modal != modalNone {
		t.Fatalf("cancel should close the reminder")
	}

	// enter pushes through to the form
	m = press(t, m, "f", "enter")
	if m.modal != modalFileLeave {
		t.Fatalf("continue should open the leave form, modal = %v", m.modal)
	}
}

func TestHistoryFilterResetsPageSortDoesNot(t *testing.T) {
	m := signIn(t, newTestModel(t))
	m = press(t, m, "4")
	m = press(t, m, "enter") // Attendance History is the first menu entry
	if m.view != viewHistory {
		t.Fatalf("view = %v", m.view)
	}

	m = press(t, m, "right")
	if m.hist.q.Page != 2 {
		t.Fatalf("page = %d after next", m.hist.q.Page)
	}

	m = press(t, m, "s")
	if m.hist.q.Page != 2 {
		t.Fatalf("sort reset the page")
	}
	if m.hist.q.SortKey == "date" {
		t.Fatalf("sort key did not advance")
	}

	m = press(t, m, "f")
	if m.modal != modalHistoryFilter {
		t.Fatalf("filter modal did not open")
	}
	// Status is the third field; pick "Eligible".
	m = press(t, m, "tab", "tab", "right", "enter")
	if m.hist.q.Status != string(model.OTEligible) {
		t.Fatalf("status filter = %q", m.hist.q.Status)
	}
	if m.hist.q.Page != 1 {
		t.Fatalf("filter change should reset the page, got %d", m.hist.q.Page)
	}
}

func TestCalendarNavigation(t *testing.T) {
	m := signIn(t, newTestModel(t))
	m = press(t, m, "4", "down", "enter")
	if m.view != viewCalendar {
		t.Fatalf("view = %v", m.view)
	}
	if !strings.Contains(m.View(), "June 2025") {
		t.Fatalf("calendar header missing")
	}

	m = press(t, m, "left")
	if m.calMonth != time.May {
		t.Fatalf("month = %v after prev", m.calMonth)
	}
	m = press(t, m, "t")
	if m.calMonth != time.June || m.calYear != 2025 {
		t.Fatalf("t should return to the current month")
	}
}

func TestYearWrapOnCalendar(t *testing.T) {
	m := signIn(t, newTestModel(t))
	m = press(t, m, "4", "down", "enter")
	m.calMonth = time.January
	m = press(t, m, "left")
	if m.calMonth != time.December || m.calYear != 2024 {
		t.Fatalf("january prev should wrap to december of the prior year, got %v %d", m.calMonth, m.calYear)
	}
}

func TestProfileShowsTenure(t *testing.T) {
	m := signIn(t, newTestModel(t))
	m = press(t, m, "5")
	out := m.View()
	if !strings.Contains(out, "Casey Lee") {
		t.Fatalf("profile missing employee name")
	}
	// Hired 2024-03-11, shown at 2025-06-10.
	if !strings.Contains(out, "1 year and 2 months") {
		t.Fatalf("tenure line missing:\n%s", out)
	}
}

func TestEditContactUpdatesProfile(t *testing.T) {
	m := signIn(t, newTestModel(t))
	m = press(t, m, "5", "e")
	if m.modal != modalEditContact {
		t.Fatalf("edit contact modal did not open")
	}
	m.form[0].input.SetValue("new@resourcestaff.example")
	m = press(t, m, "enter")
	if m.store.State.User.Email != "new@resourcestaff.example" {
		t.Fatalf("email not updated: %q", m.store.State.User.Email)
	}
}
