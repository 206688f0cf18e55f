package model

import "time"

type User struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Team       string `json:"team"`
	ClientName string `json:"clientName"`
	Position   string `json:"position"`
	Status     string `json:"status"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	HireDate   string `json:"hireDate"` // YYYY-MM-DD
	AvatarURL  string `json:"avatarUrl,omitempty"`
}

// OTStatus is the lifecycle label for whether a given attendance day's
// overtime can still be filed.
type OTStatus string

const (
	OTEligible  OTStatus = "Eligible"
	OTSubmitted OTStatus = "Submitted"
	OTExpired   OTStatus = "Expired"
	OTNone      OTStatus = "None"
)

// AttendanceRecord is one calendar day of attendance as produced by payroll.
// TimeIn/TimeOut are nil when the employee never clocked that day (rest days,
// leave, absences, or an in-progress day with no clock-out yet).
type AttendanceRecord struct {
	ID   string `json:"id"`
	Date string `json:"date"` // YYYY-MM-DD

	DayOfWeek      string `json:"dayOfWeek"`
	ActiveSchedule string `json:"activeSchedule"` // e.g. "06:00 - 15:00", "REST DAY", "ON LEAVE"
	ScheduleDetail string `json:"scheduleDetail"` // e.g. "Day Shift", "ABSENT", "Approved Leave"

	TimeIn  *string `json:"timeIn,omitempty"`  // HH:MM:SS
	TimeOut *string `json:"timeOut,omitempty"` // HH:MM:SS

	WorkDuration          string `json:"workDuration"` // "9h 30m"
	WorkDurationBreakdown string `json:"workDurationBreakdown,omitempty"`

	OTHours  string   `json:"otHours,omitempty"` // "1h 30m", empty when none
	OTStatus OTStatus `json:"otStatus"`
}

// TimeLog is today's clock cycle. Both nil: not clocked in. TimeIn set:
// clocked in. Both set: cycle complete until the next-day reset.
type TimeLog struct {
	TimeIn  *time.Time `json:"timeIn,omitempty"`
	TimeOut *time.Time `json:"timeOut,omitempty"`
}

type RequestType string

const (
	RequestLeave          RequestType = "Leave Request"
	RequestOvertime       RequestType = "Overtime Request"
	RequestScheduleChange RequestType = "Schedule Change"
	RequestTimeAdjustment RequestType = "Time Adjustment"
)

type RequestStatus string

const (
	StatusPending  RequestStatus = "Pending"
	StatusApproved RequestStatus = "Approved"
	StatusRejected RequestStatus = "Rejected"
)

type LeaveType string

const (
	LeaveSick        LeaveType = "Sick Leave"
	LeaveVacation    LeaveType = "Vacation Leave"
	LeavePaternity   LeaveType = "Paternity Leave"
	LeaveMaternity   LeaveType = "Maternity Leave"
	LeaveSoloParent  LeaveType = "Solo Parent Leave"
	LeaveBereavement LeaveType = "Bereavement Leave"
)

type OTType string

const (
	OTRegular OTType = "Regular OT"
	OTRestDay OTType = "Rest Day OT"
	OTHoliday OTType = "Holiday OT"
)

// ActivityRequest is a tagged union over RequestType. Only the field group
// matching Type is populated; everything else stays zero. Status is mutated
// exclusively by the (out-of-scope) approval side.
type ActivityRequest struct {
	ID     string        `json:"id"`
	Type   RequestType   `json:"type"`
	Date   string        `json:"date"` // date filed, YYYY-MM-DD
	Status RequestStatus `json:"status"`
	Reason string        `json:"reason,omitempty"`

	DocumentURL string `json:"documentUrl,omitempty"`

	// Leave fields.
	LeaveType LeaveType `json:"leaveType,omitempty"`
	StartDate string    `json:"startDate,omitempty"`
	EndDate   string    `json:"endDate,omitempty"`

	// Overtime fields.
	OTType    OTType  `json:"otType,omitempty"`
	OTDate    string  `json:"otDate,omitempty"`
	Hours     float64 `json:"hours,omitempty"`
	WithLunch bool    `json:"withLunch,omitempty"`

	// Schedule change fields.
	ScheduleChangeDate string `json:"scheduleChangeDate,omitempty"`
	CurrentSchedule    string `json:"currentSchedule,omitempty"`
	RequestedSchedule  string `json:"requestedSchedule,omitempty"`

	// Time adjustment fields.
	AdjustmentDate string `json:"adjustmentDate,omitempty"`
	CorrectTimeIn  string `json:"correctTimeIn,omitempty"`
	CorrectTimeOut string `json:"correctTimeOut,omitempty"`
}

type NewsCategory string

const (
	NewsHoliday      NewsCategory = "Holiday"
	NewsPolicyUpdate NewsCategory = "Policy Update"
	NewsCompanyEvent NewsCategory = "Company Event"
	NewsTeamNews     NewsCategory = "Team News"
	NewsWellness     NewsCategory = "Health & Wellness"
)

// NewsCategories lists every category in display order.
func NewsCategories() []NewsCategory {
	return []NewsCategory{NewsHoliday, NewsPolicyUpdate, NewsCompanyEvent, NewsTeamNews, NewsWellness}
}

type ReactionType string

const (
	ReactionLike      ReactionType = "like"
	ReactionCelebrate ReactionType = "celebrate"
	ReactionSupport   ReactionType = "support"
)

// ReactionTypes lists every reaction kind in display order.
func ReactionTypes() []ReactionType {
	return []ReactionType{ReactionLike, ReactionCelebrate, ReactionSupport}
}

type Comment struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Date      string `json:"date"`
	Text      string `json:"text"`
}

type NewsItem struct {
	ID       string               `json:"id"`
	Category NewsCategory         `json:"category"`
	Title    string               `json:"title"`
	Author   string               `json:"author"`
	Date     string               `json:"date"`
	Content  string               `json:"content"` // markdown
	ImageURL string               `json:"imageUrl,omitempty"`
	// Reactions holds aggregate counts per reaction kind.
	Reactions map[ReactionType]int `json:"reactions"`
	// Comments is append-only, ordered by insertion.
	Comments []Comment `json:"comments"`
}

type LeaveBalance struct {
	Type    LeaveType `json:"type"`
	Balance float64   `json:"balance"` // days
}

type Announcement struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
}
