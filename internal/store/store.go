// Package store holds the in-memory application state and every mutation the
// views perform on it. State is seeded at startup and lives for the process;
// the single bubbletea update loop is the only writer.
package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"staffdesk-cli/internal/model"
	"staffdesk-cli/internal/worksession"
)

var (
	ErrMissingFields     = errors.New("all required fields must be filled in")
	ErrMissingAttachment = errors.New("a supporting document is required")
	ErrCycleComplete     = errors.New("clock cycle already complete for today")
	ErrUnknownNewsItem   = errors.New("unknown news item")
)

// State is the shared application state every view renders from.
type State struct {
	User          model.User
	TimeLog       model.TimeLog
	Attendance    []model.AttendanceRecord
	Requests      []model.ActivityRequest
	News          []model.NewsItem
	LeaveBalances []model.LeaveBalance
	Announcements []model.Announcement

	// MyReactions tracks this user's one active reaction per news item.
	MyReactions map[string]model.ReactionType
}

// Store wraps State with the mutation set. All methods run synchronously on
// the caller's goroutine.
type Store struct {
	State *State
}

func New(st *State) *Store {
	if st.MyReactions == nil {
		st.MyReactions = make(map[string]model.ReactionType)
	}
	return &Store{State: st}
}

// ClockEvent advances today's clock cycle: first event clocks in, second
// clocks out. A stale log from a previous day resets first. A third event on
// the same day is rejected.
func (s *Store) ClockEvent(now time.Time) (worksession.Phase, error) {
	log := &s.State.TimeLog
	if log.TimeIn != nil && !sameDay(*log.TimeIn, now) {
		log.TimeIn, log.TimeOut = nil, nil
	}
	switch worksession.PhaseOf(log.TimeIn, log.TimeOut) {
	case worksession.NotClockedIn:
		t := now
		log.TimeIn = &t
		return worksession.ClockedIn, nil
	case worksession.ClockedIn:
		t := now
		log.TimeOut = &t
		return worksession.CycleComplete, nil
	default:
		return worksession.CycleComplete, ErrCycleComplete
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// AddLeaveRequest files a leave request. The supporting document is
// mandatory; everything else follows the common request rules.
func (s *Store) AddLeaveRequest(leaveType model.LeaveType, startDate, endDate, reason, documentURL string, now time.Time) (model.ActivityRequest, error) {
	if leaveType == "" || startDate == "" || endDate == "" || strings.TrimSpace(reason) == "" {
		return model.ActivityRequest{}, ErrMissingFields
	}
	if strings.TrimSpace(documentURL) == "" {
		return model.ActivityRequest{}, ErrMissingAttachment
	}
	req := s.newRequest(model.RequestLeave, reason, now)
	req.LeaveType = leaveType
	req.StartDate = startDate
	req.EndDate = endDate
	req.DocumentURL = documentURL
	s.State.Requests = append([]model.ActivityRequest{req}, s.State.Requests...)
	return req, nil
}

// AddOvertimeRequest files an overtime request. Hour and reason validation
// belongs to the overtime package; callers run it before this mutation.
func (s *Store) AddOvertimeRequest(otType model.OTType, otDate string, hours float64, withLunch bool, reason string, now time.Time) (model.ActivityRequest, error) {
	if otType == "" || otDate == "" {
		return model.ActivityRequest{}, ErrMissingFields
	}
	req := s.newRequest(model.RequestOvertime, reason, now)
	req.OTType = otType
	req.OTDate = otDate
	req.Hours = hours
	req.WithLunch = withLunch
	s.State.Requests = append([]model.ActivityRequest{req}, s.State.Requests...)
	s.markOTSubmitted(otDate)
	return req, nil
}

// markOTSubmitted flips the matching attendance day so the history stops
// offering the OT action for it.
func (s *Store) markOTSubmitted(date string) {
	for i := range s.State.Attendance {
		if s.State.Attendance[i].Date == date && s.State.Attendance[i].OTStatus == model.OTEligible {
			s.State.Attendance[i].OTStatus = model.OTSubmitted
		}
	}
}

// AddScheduleChangeRequest files a schedule change request.
func (s *Store) AddScheduleChangeRequest(date, currentSchedule, requestedSchedule, reason string, now time.Time) (model.ActivityRequest, error) {
	if date == "" || requestedSchedule == "" || strings.TrimSpace(reason) == "" {
		return model.ActivityRequest{}, ErrMissingFields
	}
	req := s.newRequest(model.RequestScheduleChange, reason, now)
	req.ScheduleChangeDate = date
	req.CurrentSchedule = currentSchedule
	req.RequestedSchedule = requestedSchedule
	s.State.Requests = append([]model.ActivityRequest{req}, s.State.Requests...)
	return req, nil
}

// AddTimeAdjustmentRequest files a correction of a day's recorded clock
// times. At least one corrected time is required.
func (s *Store) AddTimeAdjustmentRequest(date, correctTimeIn, correctTimeOut, reason string, now time.Time) (model.ActivityRequest, error) {
	if date == "" || strings.TrimSpace(reason) == "" {
		return model.ActivityRequest{}, ErrMissingFields
	}
	if correctTimeIn == "" && correctTimeOut == "" {
		return model.ActivityRequest{}, ErrMissingFields
	}
	req := s.newRequest(model.RequestTimeAdjustment, reason, now)
	req.AdjustmentDate = date
	req.CorrectTimeIn = correctTimeIn
	req.CorrectTimeOut = correctTimeOut
	s.State.Requests = append([]model.ActivityRequest{req}, s.State.Requests...)
	return req, nil
}

func (s *Store) newRequest(kind model.RequestType, reason string, now time.Time) model.ActivityRequest {
	return model.ActivityRequest{
		ID:     newRandomID("req"),
		Type:   kind,
		Date:   now.Format("2006-01-02"),
		Status: model.StatusPending,
		Reason: strings.TrimSpace(reason),
	}
}

// AddNewsComment appends a comment to a news item's thread. Comment text is
// screened before this is called.
func (s *Store) AddNewsComment(itemID, text string, now time.Time) (model.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return model.Comment{}, ErrMissingFields
	}
	item := s.newsItem(itemID)
	if item == nil {
		return model.Comment{}, fmt.Errorf("add comment: %w: %s", ErrUnknownNewsItem, itemID)
	}
	c := model.Comment{
		ID:        newRandomID("cmt"),
		Author:    s.State.User.Name,
		AvatarURL: s.State.User.AvatarURL,
		Date:      now.Format("2006-01-02"),
		Text:      strings.TrimSpace(text),
	}
	item.Comments = append(item.Comments, c)
	return c, nil
}

// SetReaction toggles this user's reaction on a news item. Reacting with the
// active kind clears it; a different kind replaces it. Aggregate counts move
// with the change, never below zero.
func (s *Store) SetReaction(itemID string, kind model.ReactionType) error {
	item := s.newsItem(itemID)
	if item == nil {
		return fmt.Errorf("set reaction: %w: %s", ErrUnknownNewsItem, itemID)
	}
	if item.Reactions == nil {
		item.Reactions = make(map[model.ReactionType]int)
	}
	prev, had := s.State.MyReactions[itemID]
	if had {
		if item.Reactions[prev] > 0 {
			item.Reactions[prev]--
		}
		delete(s.State.MyReactions, itemID)
	}
	if had && prev == kind {
		return nil // toggle off
	}
	item.Reactions[kind]++
	s.State.MyReactions[itemID] = kind
	return nil
}

func (s *Store) newsItem(id string) *model.NewsItem {
	for i := range s.State.News {
		if s.State.News[i].ID == id {
			return &s.State.News[i]
		}
	}
	return nil
}

// UpdateContact rewrites the profile's editable contact details.
func (s *Store) UpdateContact(email, phone string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(phone) == "" {
		return ErrMissingFields
	}
	s.State.User.Email = strings.TrimSpace(email)
	s.State.User.Phone = strings.TrimSpace(phone)
	return nil
}

// PendingCount is the dashboard's pending-request stat.
func (s *Store) PendingCount() int {
	n := 0
	for _, r := range s.State.Requests {
		if r.Status == model.StatusPending {
			n++
		}
	}
	return n
}

// RecentRequests returns the newest n requests for the activity panel.
func (s *Store) RecentRequests(n int) []model.ActivityRequest {
	if n > len(s.State.Requests) {
		n = len(s.State.Requests)
	}
	return s.State.Requests[:n]
}

// LeaveBalanceTotal sums remaining leave days across all types.
func (s *Store) LeaveBalanceTotal() float64 {
	var total float64
	for _, b := range s.State.LeaveBalances {
		total += b.Balance
	}
	return total
}
