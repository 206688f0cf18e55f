package cli

import (
	"fmt"

	"staffdesk-cli/internal/attendance"

	"github.com/spf13/cobra"
)

func newAttendanceCmd(app *App) *cobra.Command {
	var (
		from, to string
		status   string
		sortKey  string
		desc     bool
		page     int
	)

	cmd := &cobra.Command{
		Use:   "attendance",
		Short: "Filtered, sorted, paginated attendance history as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch attendance.SortKey(sortKey) {
			case attendance.SortByDate, attendance.SortByTimeIn, attendance.SortByTimeOut:
			default:
				return fmt.Errorf("unknown sort key: %s (date|timeIn|timeOut)", sortKey)
			}

			dir := attendance.Asc
			if desc {
				dir = attendance.Desc
			}
			s := loadStore(app)
			res := attendance.Apply(s.State.Attendance, attendance.Query{
				StartDate: from,
				EndDate:   to,
				Status:    status,
				SortKey:   attendance.SortKey(sortKey),
				SortDir:   dir,
				Page:      page,
				PageSize:  app.cfg.HistoryPageSize,
			})
			return writeOut(cmd, app, res)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Start date (inclusive, YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "End date (inclusive, YYYY-MM-DD)")
	cmd.Flags().StringVar(&status, "status", attendance.StatusAll, "OT status filter (All|Eligible|Submitted|Expired|None)")
	cmd.Flags().StringVar(&sortKey, "sort", string(attendance.SortByDate), "Sort column (date|timeIn|timeOut)")
	cmd.Flags().BoolVar(&desc, "desc", false, "Sort descending (missing values always sort last)")
	cmd.Flags().IntVar(&page, "page", 1, "Page number (1-based)")
	return cmd
}
