package store

import (
	"fmt"
	"time"

	"staffdesk-cli/internal/model"
)

// Seed builds the startup dataset: the signed-in employee, roughly three
// months of attendance ending yesterday, a handful of filed requests, the
// news feed and announcements. Deterministic apart from ids so the dashboard
// always has something to show.
func Seed(now time.Time, employeeName string) *State {
	if employeeName == "" {
		employeeName = "Miguel Santos"
	}
	user := model.User{
		EmployeeID: "RS-10452",
		Name:       employeeName,
		Role:       "employee",
		Team:       "Platform Engineering",
		ClientName: "Northwind Logistics",
		Position:   "Software Engineer",
		Status:     "Regular",
		Email:      "miguel.santos@resourcestaff.example",
		Phone:      "+63 917 555 0192",
		HireDate:   "2024-03-11",
		AvatarURL:  "avatars/rs-10452.png",
	}

	return &State{
		User:          user,
		Attendance:    seedAttendance(now),
		Requests:      seedRequests(now),
		News:          seedNews(now),
		LeaveBalances: seedLeaveBalances(),
		Announcements: seedAnnouncements(now),
		MyReactions:   make(map[string]model.ReactionType),
	}
}

func seedLeaveBalances() []model.LeaveBalance {
	return []model.LeaveBalance{
		{Type: model.LeaveSick, Balance: 5.5},
		{Type: model.LeaveVacation, Balance: 2.8},
		{Type: model.LeavePaternity, Balance: 7.0},
		{Type: model.LeaveMaternity, Balance: 90.0},
		{Type: model.LeaveSoloParent, Balance: 3.0},
		{Type: model.LeaveBereavement, Balance: 2.0},
	}
}

// seedAttendance writes one record per day for the 90 days before today,
// newest first. Weekends are rest days; a few weekdays become leave, absence
// or overtime days on a fixed day-of-month pattern.
func seedAttendance(now time.Time) []model.AttendanceRecord {
	var out []model.AttendanceRecord
	for i := 1; i <= 90; i++ {
		day := now.AddDate(0, 0, -i)
		out = append(out, seedDay(day))
	}

	// The newest complete working day becomes an overtime day still inside
	// its filing window, so the history always offers one eligible row.
	for i := range out {
		r := &out[i]
		if r.OTStatus == model.OTNone && r.TimeIn != nil && r.TimeOut != nil {
			r.TimeIn = strp("05:58:00")
			r.TimeOut = strp("17:02:00")
			r.WorkDuration = "11h 4m"
			r.WorkDurationBreakdown = "8h work + 1h break + 2h OT"
			r.OTHours = "2h"
			r.OTStatus = model.OTEligible
			break
		}
	}
	return out
}

func strp(s string) *string { return &s }

func seedDay(day time.Time) model.AttendanceRecord {
	rec := model.AttendanceRecord{
		ID:        fmt.Sprintf("att-%s", day.Format("20060102")),
		Date:      day.Format("2006-01-02"),
		DayOfWeek: day.Weekday().String(),
		OTStatus:  model.OTNone,
	}

	dom := day.Day()
	switch day.Weekday() {
	case time.Saturday, time.Sunday:
		rec.ActiveSchedule = "REST DAY"
		rec.ScheduleDetail = "Rest Day"
		if day.Weekday() == time.Saturday && dom%9 == 0 {
			// an occasional rest day worked as overtime
			rec.ActiveSchedule = "REST DAY OT"
			rec.TimeIn = clock(day, 8, 0)
			rec.TimeOut = clock(day, 12, 0)
			rec.WorkDuration = "4h"
			rec.OTHours = "4h"
			rec.OTStatus = model.OTSubmitted
		} else {
			rec.WorkDuration = "0h"
		}
		return rec
	}

	rec.ActiveSchedule = "06:00 - 15:00"
	rec.ScheduleDetail = "Day Shift"

	switch {
	case dom == 12:
		rec.ActiveSchedule = "ON LEAVE"
		rec.ScheduleDetail = "Approved Leave"
		rec.WorkDuration = "0h"
	case dom == 26:
		rec.ScheduleDetail = "ABSENT"
		rec.WorkDuration = "0h"
	case dom%7 == 3:
		// stayed late past the nine hour shift
		rec.TimeIn = clock(day, 5, 58)
		rec.TimeOut = clock(day, 17, 2)
		rec.WorkDuration = "11h 4m"
		rec.OTHours = "2h"
		rec.OTStatus = model.OTExpired
	case dom%11 == 5:
		// clock-out never registered
		rec.TimeIn = clock(day, 6, 3)
		rec.WorkDuration = "0h"
	default:
		jitter := (dom * 7) % 10 // a few minutes of variation, deterministic
		rec.TimeIn = clock(day, 5, 50+jitter)
		rec.TimeOut = clock(day, 15, jitter)
		rec.WorkDuration = "9h 10m"
		rec.WorkDurationBreakdown = "8h 10m work + 1h break"
	}
	return rec
}

func clock(day time.Time, h, m int) *string {
	s := time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, day.Location()).Format("15:04:05")
	return &s
}

func seedRequests(now time.Time) []model.ActivityRequest {
	d := func(daysAgo int) string { return now.AddDate(0, 0, -daysAgo).Format("2006-01-02") }
	return []model.ActivityRequest{
		{
			ID: newRandomID("req"), Type: model.RequestOvertime, Date: d(3),
			Status: model.StatusPending, Reason: "Release night cutover ran long",
			OTType: model.OTRegular, OTDate: d(4), Hours: 2,
		},
		{
			ID: newRandomID("req"), Type: model.RequestLeave, Date: d(9),
			Status: model.StatusApproved, Reason: "Family trip",
			LeaveType: model.LeaveVacation, StartDate: d(-14), EndDate: d(-12),
			DocumentURL: "itinerary.pdf",
		},
		{
			ID: newRandomID("req"), Type: model.RequestTimeAdjustment, Date: d(15),
			Status: model.StatusRejected, Reason: "Badge reader was offline at the lobby",
			AdjustmentDate: d(16), CorrectTimeIn: "06:00", CorrectTimeOut: "15:00",
		},
		{
			ID: newRandomID("req"), Type: model.RequestScheduleChange, Date: d(21),
			Status: model.StatusPending, Reason: "Enrolled in an evening class this term",
			ScheduleChangeDate: d(-7), CurrentSchedule: "06:00 - 15:00", RequestedSchedule: "07:00 - 16:00",
		},
		{
			ID: newRandomID("req"), Type: model.RequestLeave, Date: d(30),
			Status: model.StatusApproved, Reason: "Flu",
			LeaveType: model.LeaveSick, StartDate: d(29), EndDate: d(29),
			DocumentURL: "med-cert.jpg",
		},
	}
}

func seedNews(now time.Time) []model.NewsItem {
	d := func(daysAgo int) string { return now.AddDate(0, 0, -daysAgo).Format("2006-01-02") }
	return []model.NewsItem{
		{
			ID: "news-holiday-schedule", Category: model.NewsHoliday,
			Title: "Office closure for National Heroes Day", Author: "HR Operations", Date: d(2),
			Content: "The office will be **closed on Monday** for National Heroes Day.\n\n" +
				"- Work resumes Tuesday at the usual shift times.\n" +
				"- On-call rotations are unaffected.\n\n" +
				"Approved holiday OT must be filed through the overtime request form.",
			Reactions: map[model.ReactionType]int{model.ReactionLike: 18, model.ReactionCelebrate: 31},
			Comments: []model.Comment{
				{ID: "cmt-seed-1", Author: "Ana Reyes", Date: d(2), Text: "Long weekend at last!"},
			},
		},
		{
			ID: "news-hmo-policy", Category: model.NewsPolicyUpdate,
			Title: "HMO coverage now includes dependents", Author: "Benefits Team", Date: d(6),
			Content: "Starting next month, regular employees may enroll **up to two dependents** " +
				"in the company HMO plan.\n\nEnrollment forms are available from the benefits " +
				"portal; submissions close on the 20th.",
			Reactions: map[model.ReactionType]int{model.ReactionLike: 42, model.ReactionSupport: 9},
			Comments:  []model.Comment{},
		},
		{
			ID: "news-summer-outing", Category: model.NewsCompanyEvent,
			Title: "Company outing: save the date", Author: "Events Committee", Date: d(10),
			Content: "This year's outing heads to **Batangas** on the second weekend of next " +
				"month. Transport and meals covered.\n\nSign-up sheet closes Friday.",
			Reactions: map[model.ReactionType]int{model.ReactionCelebrate: 57},
			Comments: []model.Comment{
				{ID: "cmt-seed-2", Author: "Paolo Lim", Date: d(9), Text: "Count me in."},
				{ID: "cmt-seed-3", Author: "Grace Tan", Date: d(9), Text: "Is there a plus-one option?"},
			},
		},
		{
			ID: "news-platform-team", Category: model.NewsTeamNews,
			Title: "Platform Engineering ships the new deploy pipeline", Author: "Engineering", Date: d(14),
			Content: "Deploys now run through the new pipeline with **zero-downtime rollouts**. " +
				"Median deploy time dropped from 22 minutes to 6.",
			Reactions: map[model.ReactionType]int{model.ReactionLike: 12, model.ReactionCelebrate: 8, model.ReactionSupport: 3},
			Comments:  []model.Comment{},
		},
		{
			ID: "news-flu-shots", Category: model.NewsWellness,
			Title: "Free flu vaccinations this month", Author: "Clinic", Date: d(20),
			Content: "The clinic offers free flu shots every **Wednesday and Thursday** this " +
				"month, 9am to 4pm. Walk-ins welcome, no booking needed.",
			Reactions: map[model.ReactionType]int{model.ReactionSupport: 21},
			Comments:  []model.Comment{},
		},
	}
}

func seedAnnouncements(now time.Time) []model.Announcement {
	d := func(daysAgo int) string { return now.AddDate(0, 0, -daysAgo).Format("2006-01-02") }
	return []model.Announcement{
		{ID: "ann-1", Title: "Payslip portal maintenance this Saturday 10pm", Date: d(1)},
		{ID: "ann-2", Title: "New badge readers installed at the main lobby", Date: d(4)},
		{ID: "ann-3", Title: "Q3 town hall recording now available", Date: d(7)},
	}
}
