package tui

import (
	"fmt"
	"strconv"
	"strings"

	"staffdesk-cli/internal/attendance"
	"staffdesk-cli/internal/model"
	"staffdesk-cli/internal/overtime"
	"staffdesk-cli/internal/store"
	"staffdesk-cli/internal/timefmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// formField is one row of a modal form: either a free-text input, a
// left/right choice, or a space toggle.
type formField struct {
	label   string
	input   textinput.Model
	choices []string
	choice  int
	toggle  bool
	on      bool
}

func textField(label, placeholder, value string) formField {
	in := newInput(placeholder, 120)
	in.SetValue(value)
	return formField{label: label, input: in}
}

func choiceField(label string, choices []string, selected int) formField {
	return formField{label: label, choices: choices, choice: selected}
}

func toggleField(label string, on bool) formField {
	return formField{label: label, toggle: true, on: on}
}

func (f *formField) isText() bool { return len(f.choices) == 0 && !f.toggle }

func (f *formField) value() string {
	switch {
	case f.toggle:
		if f.on {
			return "true"
		}
		return "false"
	case len(f.choices) > 0:
		return f.choices[f.choice]
	default:
		return strings.TrimSpace(f.input.Value())
	}
}

func (m *appModel) openFormModal(kind modalKind) {
	m.formErr = ""
	m.formFocus = 0
	today := m.now.Format("2006-01-02")

	switch kind {
	case modalFileLeave:
		m.form = []formField{
			choiceField("Leave Type", leaveTypeLabels(), 0),
			textField("Start Date", "YYYY-MM-DD", today),
			textField("End Date", "YYYY-MM-DD", today),
			textField("Reason", "Reason for leave", ""),
			textField("Document", "Path or link to supporting document", ""),
		}
	case modalFileOT:
		m.form = []formField{
			choiceField("OT Type", otTypeLabels(), otTypeIndex(overtime.DefaultType(m.now))),
			textField("Date", "YYYY-MM-DD", today),
			textField("Hours", "e.g. 2", ""),
			textField("Reason", "Reason for overtime", ""),
		}
	case modalScheduleChange:
		m.form = []formField{
			textField("Date", "YYYY-MM-DD", ""),
			textField("Requested Schedule", "e.g. 07:00 - 16:00", ""),
			textField("Reason", "Reason for the change", ""),
		}
	case modalTimeAdjustment:
		m.form = []formField{
			textField("Date", "YYYY-MM-DD", ""),
			textField("Correct Time In", "HH:MM", ""),
			textField("Correct Time Out", "HH:MM", ""),
			textField("Reason", "What went wrong with the recorded times?", ""),
		}
	case modalEditContact:
		m.form = []formField{
			textField("Email", "work email", m.store.State.User.Email),
			textField("Phone", "mobile number", m.store.State.User.Phone),
		}
	default:
		m.form = nil
	}

	m.focusFormField(0)
	m.modal = kind
}

// openOTFromHistory prefills the overtime form from an eligible attendance
// day: hours come from the recorded clock times, the OT type defaults by
// weekday, and a with-lunch toggle deducts the lunch hour.
func (m *appModel) openOTFromHistory(rec model.AttendanceRecord) {
	hours, ok := overtime.FromRecord(rec, m.cfg.StandardShift())
	if !ok {
		m.openAlert("Overtime cannot be computed without both a time in and a time out.")
		return
	}
	date, err := timefmt.ParseDate(rec.Date)
	if err != nil {
		m.openAlert("This day has an unreadable date.")
		return
	}

	m.otPrefillDate = rec.Date
	m.otPrefillHours = hours
	m.formErr = ""
	m.formFocus = 0
	m.form = []formField{
		choiceField("OT Type", otTypeLabels(), otTypeIndex(overtime.DefaultType(date))),
		toggleField("With Lunch (deduct 1h)", false),
		textField("Reason", "Reason for overtime", ""),
	}
	m.focusFormField(0)
	m.modal = modalFileOTFromHistory
}

func (m *appModel) openHistoryFilter(hs *historyState) {
	statuses := []string{
		attendance.StatusAll,
		string(model.OTEligible),
		string(model.OTSubmitted),
		string(model.OTExpired),
		string(model.OTNone),
	}
	selected := 0
	for i, s := range statuses {
		if s == hs.q.Status {
			selected = i
		}
	}

	m.filterTarget = m.view
	m.formErr = ""
	m.formFocus = 0
	m.form = []formField{
		textField("From", "YYYY-MM-DD (empty = open)", hs.q.StartDate),
		textField("To", "YYYY-MM-DD (empty = open)", hs.q.EndDate),
		choiceField("OT Status", statuses, selected),
	}
	m.focusFormField(0)
	m.modal = modalHistoryFilter
}

func (m *appModel) focusFormField(idx int) {
	for i := range m.form {
		if i == idx && m.form[i].isText() {
			m.form[i].input.Focus()
		} else {
			m.form[i].input.Blur()
		}
	}
	m.formFocus = idx
}

func (m *appModel) closeModal() {
	m.modal = modalNone
	m.form = nil
	m.formErr = ""
	m.pendingModal = modalNone
}

func (m *appModel) updateModal(msg tea.KeyMsg) tea.Cmd {
	switch m.modal {
	case modalAlert:
		switch msg.String() {
		case "enter", "esc", "ctrl+g", "q":
			m.closeModal()
		}
		return nil

	case modalClockReminder:
		switch msg.String() {
		case "enter":
			kind := m.pendingModal
			m.pendingModal = modalNone
			m.openFormModal(kind)
		case "esc", "ctrl+g":
			m.closeModal()
		}
		return nil
	}

	switch msg.String() {
	case "esc", "ctrl+g":
		m.closeModal()
		return nil
	case "tab", "down":
		m.focusFormField((m.formFocus + 1) % len(m.form))
		return nil
	case "shift+tab", "up":
		m.focusFormField((m.formFocus - 1 + len(m.form)) % len(m.form))
		return nil
	case "enter":
		m.submitForm()
		return nil
	}

	f := &m.form[m.formFocus]
	switch {
	case len(f.choices) > 0:
		switch msg.String() {
		case "left", "h":
			f.choice = (f.choice - 1 + len(f.choices)) % len(f.choices)
		case "right", "l", " ":
			f.choice = (f.choice + 1) % len(f.choices)
		}
		return nil
	case f.toggle:
		if msg.String() == " " || msg.String() == "left" || msg.String() == "right" {
			f.on = !f.on
		}
		return nil
	default:
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		return cmd
	}
}

func (m *appModel) submitForm() {
	switch m.modal {
	case modalFileLeave:
		_, err := m.store.AddLeaveRequest(
			model.LeaveType(m.form[0].value()),
			m.form[1].value(), m.form[2].value(), m.form[3].value(), m.form[4].value(),
			m.now,
		)
		switch err {
		case nil:
			m.closeModal()
			m.openAlert("Leave request submitted for approval.")
		case store.ErrMissingAttachment:
			m.formErr = "Please attach a supporting document."
		default:
			m.formErr = "Please fill in all required fields."
		}

	case modalFileOT:
		hours, perr := strconv.ParseFloat(m.form[2].value(), 64)
		if perr != nil {
			m.formErr = "Hours must be a number."
			return
		}
		if err := overtime.ValidateSubmission(m.form[3].value(), hours); err != nil {
			m.formErr = capitalize(err.Error()) + "."
			return
		}
		if _, err := m.store.AddOvertimeRequest(
			model.OTType(m.form[0].value()), m.form[1].value(), hours, false, m.form[3].value(), m.now,
		); err != nil {
			m.formErr = "Please fill in all required fields."
			return
		}
		m.closeModal()
		m.openAlert("Overtime request submitted for approval.")

	case modalFileOTFromHistory:
		withLunch := m.form[1].on
		hours := m.otPrefillHours
		if withLunch {
			hours -= 1
			if hours < 0 {
				hours = 0
			}
		}
		if err := overtime.ValidateSubmission(m.form[2].value(), hours); err != nil {
			m.formErr = capitalize(err.Error()) + "."
			return
		}
		if _, err := m.store.AddOvertimeRequest(
			model.OTType(m.form[0].value()), m.otPrefillDate, hours, withLunch, m.form[2].value(), m.now,
		); err != nil {
			m.formErr = "Please fill in all required fields."
			return
		}
		m.closeModal()
		m.openAlert("Overtime request submitted for approval.")

	case modalScheduleChange:
		_, err := m.store.AddScheduleChangeRequest(
			m.form[0].value(), currentSchedule, m.form[1].value(), m.form[2].value(), m.now,
		)
		if err != nil {
			m.formErr = "Please fill in all required fields."
			return
		}
		m.closeModal()
		m.openAlert("Schedule change request submitted for approval.")

	case modalTimeAdjustment:
		_, err := m.store.AddTimeAdjustmentRequest(
			m.form[0].value(), m.form[1].value(), m.form[2].value(), m.form[3].value(), m.now,
		)
		if err != nil {
			m.formErr = "Please fill in all required fields, including at least one corrected time."
			return
		}
		m.closeModal()
		m.openAlert("Time adjustment request submitted for approval.")

	case modalEditContact:
		if err := m.store.UpdateContact(m.form[0].value(), m.form[1].value()); err != nil {
			m.formErr = "Please fill in all required fields."
			return
		}
		m.closeModal()
		m.openAlert("Contact details updated.")

	case modalHistoryFilter:
		hs := m.histFor(m.filterTarget)
		hs.q.StartDate = m.form[0].value()
		hs.q.EndDate = m.form[1].value()
		hs.q.Status = m.form[2].value()
		// Filter changes reset pagination; sort state is untouched.
		hs.q.Page = 1
		hs.cursor = 0
		m.closeModal()
	}
}

func (m *appModel) histFor(v view) *historyState {
	if v == viewTimesheetHistory {
		return &m.tsHist
	}
	return &m.hist
}

// currentSchedule is the employee's assigned shift shown in schedule change
// requests. A single fixed shift; per-day schedules live on the attendance
// records.
const currentSchedule = "06:00 - 15:00"

func leaveTypeLabels() []string {
	return []string{
		string(model.LeaveSick),
		string(model.LeaveVacation),
		string(model.LeavePaternity),
		string(model.LeaveMaternity),
		string(model.LeaveSoloParent),
		string(model.LeaveBereavement),
	}
}

func otTypeLabels() []string {
	return []string{string(model.OTRegular), string(model.OTRestDay), string(model.OTHoliday)}
}

func otTypeIndex(t model.OTType) int {
	for i, l := range otTypeLabels() {
		if l == string(t) {
			return i
		}
	}
	return 0
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Rendering.

func modalWidth(width int) int {
	w := width - 10
	if w > 64 {
		w = 64
	}
	if w < 30 {
		w = 30
	}
	return w
}

func modalBodyWidth(width int) int { return modalWidth(width) - 4 }

func renderModalBox(width int, title, content string) string {
	w := modalWidth(width)
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Width(w - 4).
		Foreground(colorSurfaceFg).
		Background(colorControlBg).
		Padding(0, 1)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorSelectedBorder).
		Padding(0, 1).
		Width(w - 2)
	return box.Render(headerStyle.Render(title) + "\n\n" + content)
}

func renderInputLine(bodyW int, inputView string) string {
	if bodyW < 10 {
		bodyW = 10
	}

	// Text inputs should always render as a single visual line inside modals.
	inputView = strings.ReplaceAll(inputView, "\n", " ")
	inputView = strings.ReplaceAll(inputView, "\r", " ")

	line := lipgloss.PlaceHorizontal(
		bodyW,
		lipgloss.Left,
		" "+inputView+" ",
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	if xansi.StringWidth(line) > bodyW {
		// Never exceed the modal body width; terminate ANSI styling to prevent bleed.
		line = xansi.Cut(line, 0, bodyW) + "\x1b[0m"
	}
	return line
}

func (m appModel) renderModal() string {
	switch m.modal {
	case modalAlert:
		body := lipgloss.NewStyle().Width(modalBodyWidth(m.width)).Render(m.alertMsg)
		help := styleMuted().Render("enter/esc: close")
		return renderModalBox(m.width, "Notice", body+"\n\n"+help)

	case modalClockReminder:
		body := lipgloss.NewStyle().Width(modalBodyWidth(m.width)).
			Render("You haven't clocked in today. File the request anyway?")
		help := styleMuted().Render("enter: continue   esc: cancel")
		return renderModalBox(m.width, "Clock-in Reminder", body+"\n\n"+help)
	}

	title := map[modalKind]string{
		modalFileLeave:         "File Leave Request",
		modalFileOT:            "File Overtime Request",
		modalFileOTFromHistory: "File Overtime",
		modalScheduleChange:    "Request Schedule Change",
		modalTimeAdjustment:    "Request Time Adjustment",
		modalEditContact:       "Edit Contact Details",
		modalHistoryFilter:     "Filter History",
	}[m.modal]

	bodyW := modalBodyWidth(m.width)
	var rows []string

	if m.modal == modalFileOTFromHistory {
		computed := fmt.Sprintf("%s · computed OT: %s", m.otPrefillDate, overtime.Display(m.otPrefillHours, true))
		rows = append(rows, styleMuted().Render(computed), "")
	}
	if m.modal == modalScheduleChange {
		rows = append(rows, styleMuted().Render("Current schedule: "+currentSchedule), "")
	}

	labelStyle := lipgloss.NewStyle().Foreground(colorChromeMutedFg)
	focusLabel := lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg)

	for i := range m.form {
		f := &m.form[i]
		lbl := labelStyle.Render(f.label)
		if i == m.formFocus {
			lbl = focusLabel.Render(f.label)
		}
		rows = append(rows, lbl)

		switch {
		case len(f.choices) > 0:
			choice := f.choices[f.choice]
			marker := "  " + choice + "  "
			if i == m.formFocus {
				marker = "← " + choice + " →"
			}
			rows = append(rows, marker)
		case f.toggle:
			box := "[ ]"
			if f.on {
				box = "[x]"
			}
			rows = append(rows, box+" "+styleMuted().Render("space: toggle"))
		default:
			rows = append(rows, renderInputLine(bodyW, f.input.View()))
		}
		rows = append(rows, "")
	}

	if m.formErr != "" {
		rows = append(rows, lipgloss.NewStyle().Foreground(colorRejected).Render(m.formErr), "")
	}
	rows = append(rows, styleMuted().Render("tab: next field   enter: submit   esc: cancel"))

	return renderModalBox(m.width, title, strings.Join(rows, "\n"))
}
