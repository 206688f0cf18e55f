// Package attendance turns the raw attendance history into the projections
// the dashboard shows: a filtered, sorted, paginated table and a monthly
// calendar grid with per-day status labels.
package attendance

import (
	"sort"
	"time"

	"staffdesk-cli/internal/model"
)

// SortKey selects the column a history query orders by.
type SortKey string

const (
	SortByDate    SortKey = "date"
	SortByTimeIn  SortKey = "timeIn"
	SortByTimeOut SortKey = "timeOut"
)

type SortDir string

const (
	Asc  SortDir = "asc"
	Desc SortDir = "desc"
)

// StatusAll disables status filtering.
const StatusAll = "All"

// Query describes one view over the attendance history. Date bounds are
// inclusive YYYY-MM-DD strings; empty bounds are open. Page is 1-based.
type Query struct {
	StartDate string
	EndDate   string
	Status    string
	SortKey   SortKey
	SortDir   SortDir
	Page      int
	PageSize  int
}

// Result is one page of a query plus the totals the pager needs.
type Result struct {
	Records   []model.AttendanceRecord `json:"records"`
	Total     int                      `json:"total"`
	Page      int                      `json:"page"`
	PageCount int                      `json:"pageCount"`
}

// Apply runs the full pipeline: filter, sort, paginate. An out-of-range page
// yields an empty record slice, not an error.
func Apply(records []model.AttendanceRecord, q Query) Result {
	filtered := Filter(records, q.StartDate, q.EndDate, q.Status)
	Sort(filtered, q.SortKey, q.SortDir)

	size := q.PageSize
	if size <= 0 {
		size = 10
	}
	total := len(filtered)
	pageCount := (total + size - 1) / size

	page := q.Page
	if page <= 0 {
		page = 1
	}
	start := (page - 1) * size
	if start >= total {
		return Result{Records: []model.AttendanceRecord{}, Total: total, Page: page, PageCount: pageCount}
	}
	end := start + size
	if end > total {
		end = total
	}
	return Result{Records: filtered[start:end], Total: total, Page: page, PageCount: pageCount}
}

// Filter keeps records inside the inclusive date bounds with a matching OT
// status. StatusAll (or empty) matches everything.
func Filter(records []model.AttendanceRecord, startDate, endDate, status string) []model.AttendanceRecord {
	out := make([]model.AttendanceRecord, 0, len(records))
	for _, r := range records {
		if startDate != "" && r.Date < startDate {
			continue
		}
		if endDate != "" && r.Date > endDate {
			continue
		}
		if status != "" && status != StatusAll && string(r.OTStatus) != status {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Sort orders records in place. Records missing the sorted value go last in
// both directions; equal keys keep their relative order.
func Sort(records []model.AttendanceRecord, key SortKey, dir SortDir) {
	if key == "" {
		key = SortByDate
	}
	desc := dir == Desc
	sort.SliceStable(records, func(i, j int) bool {
		a, aOK := sortValue(records[i], key)
		b, bOK := sortValue(records[j], key)
		if aOK != bOK {
			return aOK // present sorts before missing, regardless of direction
		}
		if !aOK {
			return false
		}
		if desc {
			return a > b
		}
		return a < b
	})
}

func sortValue(r model.AttendanceRecord, key SortKey) (string, bool) {
	switch key {
	case SortByTimeIn:
		if r.TimeIn == nil {
			return "", false
		}
		return r.Date + " " + *r.TimeIn, true
	case SortByTimeOut:
		if r.TimeOut == nil {
			return "", false
		}
		return r.Date + " " + *r.TimeOut, true
	default:
		return r.Date, true
	}
}

// RecordByDate finds the record for an exact YYYY-MM-DD date.
func RecordByDate(records []model.AttendanceRecord, date string) *model.AttendanceRecord {
	for i := range records {
		if records[i].Date == date {
			return &records[i]
		}
	}
	return nil
}

// A DayCell is one day of the calendar grid.
type DayCell struct {
	Day    int                     `json:"day"`
	Date   string                  `json:"date"`
	Record *model.AttendanceRecord `json:"record,omitempty"`
}

// MonthGrid is the calendar projection for one month: leading blank cells
// align day 1 under its weekday column (Sunday first).
type MonthGrid struct {
	Year          int       `json:"year"`
	Month         int       `json:"month"`
	LeadingBlanks int       `json:"leadingBlanks"`
	Days          []DayCell `json:"days"`
}

// BuildMonthGrid lays out a month and attaches each day's attendance record
// by exact calendar date.
func BuildMonthGrid(year int, month time.Month, records []model.AttendanceRecord) MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	grid := MonthGrid{
		Year:          year,
		Month:         int(month),
		LeadingBlanks: int(first.Weekday()),
		Days:          make([]DayCell, 0, daysInMonth),
	}
	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		grid.Days = append(grid.Days, DayCell{
			Day:    d,
			Date:   date,
			Record: RecordByDate(records, date),
		})
	}
	return grid
}
