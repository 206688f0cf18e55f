package store

import (
	"errors"
	"testing"
	"time"

	"staffdesk-cli/internal/model"
	"staffdesk-cli/internal/worksession"
)

func testStore() *Store {
	return New(Seed(time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC), "Test Employee"))
}

func TestClockEventCycle(t *testing.T) {
	s := testStore()
	now := time.Date(2025, 6, 10, 6, 0, 0, 0, time.UTC)

	phase, err := s.ClockEvent(now)
	if err != nil || phase != worksession.ClockedIn {
		t.Fatalf("first event: %v, %v", phase, err)
	}
	if s.State.TimeLog.TimeIn == nil || s.State.TimeLog.TimeOut != nil {
		t.Fatalf("log after clock in: %+v", s.State.TimeLog)
	}

	phase, err = s.ClockEvent(now.Add(9 * time.Hour))
	if err != nil || phase != worksession.CycleComplete {
		t.Fatalf("second event: %v, %v", phase, err)
	}

	savedIn, savedOut := *s.State.TimeLog.TimeIn, *s.State.TimeLog.TimeOut
	if _, err = s.ClockEvent(now.Add(10 * time.Hour)); !errors.Is(err, ErrCycleComplete) {
		t.Fatalf("third event should be rejected, got %v", err)
	}
	if !s.State.TimeLog.TimeIn.Equal(savedIn) || !s.State.TimeLog.TimeOut.Equal(savedOut) {
		t.Fatalf("third event mutated the log")
	}
}

func TestClockEventResetsOnNewDay(t *testing.T) {
	s := testStore()
	day1 := time.Date(2025, 6, 10, 6, 0, 0, 0, time.UTC)
	if _, err := s.ClockEvent(day1); err != nil {
		t.Fatal(err)
	}
	if _, err := s.ClockEvent(day1.Add(9 * time.Hour)); err != nil {
		t.Fatal(err)
	}

	day2 := day1.AddDate(0, 0, 1)
	phase, err := s.ClockEvent(day2)
	if err != nil || phase != worksession.ClockedIn {
		t.Fatalf("next-day event should start a fresh cycle: %v, %v", phase, err)
	}
	if s.State.TimeLog.TimeOut != nil {
		t.Fatalf("stale clock-out survived the reset")
	}
}

func TestAddLeaveRequestRequiresAttachment(t *testing.T) {
	s := testStore()
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	before := len(s.State.Requests)

	_, err := s.AddLeaveRequest(model.LeaveSick, "2025-06-12", "2025-06-13", "flu", "", now)
	if !errors.Is(err, ErrMissingAttachment) {
		t.Fatalf("missing attachment: got %v", err)
	}
	if len(s.State.Requests) != before {
		t.Fatalf("failed validation wrote state")
	}

	req, err := s.AddLeaveRequest(model.LeaveSick, "2025-06-12", "2025-06-13", "flu", "med-cert.jpg", now)
	if err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
	if req.Status != model.StatusPending || req.Date != "2025-06-10" {
		t.Fatalf("request defaults wrong: %+v", req)
	}
	if s.State.Requests[0].ID != req.ID {
		t.Fatalf("new request should be first")
	}
}

func TestAddOvertimeRequestMarksDaySubmitted(t *testing.T) {
	s := testStore()
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	var eligible string
	for _, r := range s.State.Attendance {
		if r.OTStatus == model.OTEligible {
			eligible = r.Date
			break
		}
	}
	if eligible == "" {
		t.Fatalf("seed has no eligible day")
	}

	if _, err := s.AddOvertimeRequest(model.OTRegular, eligible, 2, false, "cutover", now); err != nil {
		t.Fatal(err)
	}
	for _, r := range s.State.Attendance {
		if r.Date == eligible && r.OTStatus != model.OTSubmitted {
			t.Fatalf("day %s still %s", eligible, r.OTStatus)
		}
	}
}

func TestSetReactionToggleAndReplace(t *testing.T) {
	s := testStore()
	itemID := s.State.News[0].ID
	base := s.State.News[0].Reactions[model.ReactionLike]

	if err := s.SetReaction(itemID, model.ReactionLike); err != nil {
		t.Fatal(err)
	}
	if got := s.State.News[0].Reactions[model.ReactionLike]; got != base+1 {
		t.Fatalf("like count = %d, want %d", got, base+1)
	}

	// same kind again toggles off
	if err := s.SetReaction(itemID, model.ReactionLike); err != nil {
		t.Fatal(err)
	}
	if got := s.State.News[0].Reactions[model.ReactionLike]; got != base {
		t.Fatalf("toggle off: like count = %d, want %d", got, base)
	}
	if _, active := s.State.MyReactions[itemID]; active {
		t.Fatalf("reaction still active after toggle off")
	}

	// a different kind replaces, never stacks
	if err := s.SetReaction(itemID, model.ReactionLike); err != nil {
		t.Fatal(err)
	}
	if err := s.SetReaction(itemID, model.ReactionCelebrate); err != nil {
		t.Fatal(err)
	}
	if got := s.State.News[0].Reactions[model.ReactionLike]; got != base {
		t.Fatalf("replace: like count = %d, want %d", got, base)
	}
	if s.State.MyReactions[itemID] != model.ReactionCelebrate {
		t.Fatalf("active reaction = %v", s.State.MyReactions[itemID])
	}
}

func TestSetReactionUnknownItem(t *testing.T) {
	s := testStore()
	if err := s.SetReaction("news-nope", model.ReactionLike); !errors.Is(err, ErrUnknownNewsItem) {
		t.Fatalf("got %v", err)
	}
}

func TestAddNewsComment(t *testing.T) {
	s := testStore()
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	itemID := s.State.News[1].ID
	before := len(s.State.News[1].Comments)

	c, err := s.AddNewsComment(itemID, "  Great news!  ", now)
	if err != nil {
		t.Fatal(err)
	}
	if c.Text != "Great news!" || c.Author != "Test Employee" {
		t.Fatalf("comment = %+v", c)
	}
	if c.AvatarURL != s.State.User.AvatarURL {
		t.Fatalf("comment avatar = %q, want %q", c.AvatarURL, s.State.User.AvatarURL)
	}
	if len(s.State.News[1].Comments) != before+1 {
		t.Fatalf("comment not appended")
	}

	if _, err := s.AddNewsComment(itemID, "   ", now); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("blank comment: got %v", err)
	}
}

func TestUpdateContact(t *testing.T) {
	s := testStore()
	if err := s.UpdateContact("new@example.com", "+63 900 000 0000"); err != nil {
		t.Fatal(err)
	}
	if s.State.User.Email != "new@example.com" {
		t.Fatalf("email = %q", s.State.User.Email)
	}
	if err := s.UpdateContact("", "+63 900 000 0000"); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("blank email: got %v", err)
	}
}

func TestPendingCount(t *testing.T) {
	s := testStore()
	want := 0
	for _, r := range s.State.Requests {
		if r.Status == model.StatusPending {
			want++
		}
	}
	if got := s.PendingCount(); got != want {
		t.Fatalf("PendingCount = %d, want %d", got, want)
	}
}

func TestRecentRequestsClamps(t *testing.T) {
	s := testStore()
	if got := len(s.RecentRequests(4)); got != 4 {
		t.Fatalf("RecentRequests(4) len = %d", got)
	}
	if got := len(s.RecentRequests(1000)); got != len(s.State.Requests) {
		t.Fatalf("oversized n should clamp, got %d", got)
	}
}

func TestContainsProfanity(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"great update, thanks", false},
		{"this is stupid", true},
		{"S T U P I D idea", true},
		{"what a load of c.r.a.p", true},
		{"", false},
	}
	for _, c := range cases {
		if got := ContainsProfanity(c.in); got != c.want {
			t.Fatalf("ContainsProfanity(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
