package attendance

import (
	"testing"
	"time"

	"staffdesk-cli/internal/model"
)

func strp(s string) *string { return &s }

func rec(id, date string, timeIn, timeOut *string, status model.OTStatus) model.AttendanceRecord {
	return model.AttendanceRecord{
		ID:       id,
		Date:     date,
		TimeIn:   timeIn,
		TimeOut:  timeOut,
		OTStatus: status,
	}
}

func ids(records []model.AttendanceRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func equalIDs(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSortTimeOutNullsLast(t *testing.T) {
	records := []model.AttendanceRecord{
		rec("a", "2025-06-01", strp("08:00:00"), nil, model.OTNone),
		rec("b", "2025-06-02", strp("08:00:00"), strp("17:00:00"), model.OTNone),
		rec("c", "2025-06-03", strp("08:00:00"), strp("18:00:00"), model.OTNone),
	}

	asc := append([]model.AttendanceRecord(nil), records...)
	Sort(asc, SortByTimeOut, Asc)
	if got := ids(asc); !equalIDs(got, "b", "c", "a") {
		t.Fatalf("asc order = %v, want [b c a]", got)
	}

	desc := append([]model.AttendanceRecord(nil), records...)
	Sort(desc, SortByTimeOut, Desc)
	if got := ids(desc); !equalIDs(got, "c", "b", "a") {
		t.Fatalf("desc order = %v, want [c b a]", got)
	}
}

func TestSortStableOnEqualKeys(t *testing.T) {
	records := []model.AttendanceRecord{
		rec("a", "2025-06-01", nil, nil, model.OTNone),
		rec("b", "2025-06-01", nil, nil, model.OTNone),
		rec("c", "2025-06-01", nil, nil, model.OTNone),
	}
	Sort(records, SortByDate, Desc)
	if got := ids(records); !equalIDs(got, "a", "b", "c") {
		t.Fatalf("equal keys reordered: %v", got)
	}
}

func TestFilterByStatusAndDates(t *testing.T) {
	records := []model.AttendanceRecord{
		rec("a", "2025-06-01", nil, nil, model.OTEligible),
		rec("b", "2025-06-02", nil, nil, model.OTEligible),
		rec("c", "2025-06-03", nil, nil, model.OTEligible),
		rec("d", "2025-06-04", nil, nil, model.OTSubmitted),
		rec("e", "2025-06-05", nil, nil, model.OTSubmitted),
		rec("f", "2025-06-06", nil, nil, model.OTExpired),
	}

	got := Filter(records, "", "", string(model.OTEligible))
	if len(got) != 3 {
		t.Fatalf("status filter kept %d records, want 3", len(got))
	}

	got = Filter(records, "2025-06-02", "2025-06-05", StatusAll)
	if g := ids(got); !equalIDs(g, "b", "c", "d", "e") {
		t.Fatalf("date bounds not inclusive: %v", g)
	}
}

func TestApplyPagination(t *testing.T) {
	var records []model.AttendanceRecord
	for d := 1; d <= 23; d++ {
		records = append(records, rec(string(rune('a'+d)), time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC).Format("2006-01-02"), nil, nil, model.OTNone))
	}

	res := Apply(records, Query{SortKey: SortByDate, SortDir: Asc, Page: 1, PageSize: 10})
	if res.Total != 23 || res.PageCount != 3 || len(res.Records) != 10 {
		t.Fatalf("page 1: total=%d pages=%d len=%d", res.Total, res.PageCount, len(res.Records))
	}

	res = Apply(records, Query{SortKey: SortByDate, SortDir: Asc, Page: 3, PageSize: 10})
	if len(res.Records) != 3 {
		t.Fatalf("last page len = %d, want 3", len(res.Records))
	}

	res = Apply(records, Query{SortKey: SortByDate, SortDir: Asc, Page: 9, PageSize: 10})
	if len(res.Records) != 0 || res.PageCount != 3 {
		t.Fatalf("out-of-range page: len=%d pages=%d", len(res.Records), res.PageCount)
	}
}

func TestApplyFilteredFitsOnePage(t *testing.T) {
	records := []model.AttendanceRecord{
		rec("a", "2025-06-01", nil, nil, model.OTEligible),
		rec("b", "2025-06-02", nil, nil, model.OTEligible),
		rec("c", "2025-06-03", nil, nil, model.OTEligible),
		rec("d", "2025-06-04", nil, nil, model.OTSubmitted),
		rec("e", "2025-06-05", nil, nil, model.OTSubmitted),
		rec("f", "2025-06-06", nil, nil, model.OTExpired),
	}
	res := Apply(records, Query{Status: string(model.OTEligible), Page: 1, PageSize: 10})
	if res.Total != 3 || res.PageCount != 1 {
		t.Fatalf("filtered pipeline: total=%d pages=%d, want 3 and 1", res.Total, res.PageCount)
	}
}

func TestBuildMonthGrid(t *testing.T) {
	records := []model.AttendanceRecord{
		rec("a", "2025-10-01", strp("08:00:00"), strp("17:00:00"), model.OTNone),
	}
	// October 2025 starts on a Wednesday.
	grid := BuildMonthGrid(2025, time.October, records)
	if grid.LeadingBlanks != 3 {
		t.Fatalf("leading blanks = %d, want 3", grid.LeadingBlanks)
	}
	if len(grid.Days) != 31 {
		t.Fatalf("days = %d, want 31", len(grid.Days))
	}
	if grid.Days[0].Record == nil || grid.Days[0].Record.ID != "a" {
		t.Fatalf("day 1 record not attached")
	}
	if grid.Days[1].Record != nil {
		t.Fatalf("day 2 should have no record")
	}

	feb := BuildMonthGrid(2024, time.February, nil)
	if len(feb.Days) != 29 {
		t.Fatalf("feb 2024 days = %d, want 29", len(feb.Days))
	}
}
