package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"staffdesk-cli/internal/attendance"
)

func runCmd(t *testing.T, args ...string) []byte {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("staffdesk %v: %v\n%s", args, err, out.String())
	}
	return out.Bytes()
}

func TestAttendanceCommand(t *testing.T) {
	var res attendance.Result
	if err := json.Unmarshal(runCmd(t, "attendance"), &res); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if res.Page != 1 {
		t.Fatalf("page = %d", res.Page)
	}
	if len(res.Records) == 0 || len(res.Records) > 10 {
		t.Fatalf("page length = %d", len(res.Records))
	}
	if res.PageCount < 1 {
		t.Fatalf("page count = %d", res.PageCount)
	}
}

func TestAttendanceCommandRejectsBadSort(t *testing.T) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"attendance", "--sort", "mood"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("bad sort key accepted")
	}
}

func TestCalendarCommand(t *testing.T) {
	var res struct {
		Year          int `json:"year"`
		Month         int `json:"month"`
		LeadingBlanks int `json:"leadingBlanks"`
		Days          []struct {
			Day    int    `json:"day"`
			Status string `json:"status"`
		} `json:"days"`
	}
	if err := json.Unmarshal(runCmd(t, "calendar", "--month", "2025-10"), &res); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if res.Year != 2025 || res.Month != 10 {
		t.Fatalf("month = %d-%d", res.Year, res.Month)
	}
	if res.LeadingBlanks != 3 { // October 2025 starts on a Wednesday
		t.Fatalf("leading blanks = %d", res.LeadingBlanks)
	}
	if len(res.Days) != 31 {
		t.Fatalf("days = %d", len(res.Days))
	}
}

func TestPaydayCommand(t *testing.T) {
	var res struct {
		Payday        string `json:"payday"`
		DaysRemaining int    `json:"daysRemaining"`
	}
	if err := json.Unmarshal(runCmd(t, "payday"), &res); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if res.Payday == "" || res.DaysRemaining < 0 {
		t.Fatalf("payday projection = %+v", res)
	}
}
