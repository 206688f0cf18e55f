package cli

import (
	"fmt"
	"time"

	"staffdesk-cli/internal/attendance"

	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Monthly timesheet grid with per-day status labels as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := time.Now()
			if month != "" {
				var err error
				target, err = time.Parse("2006-01", month)
				if err != nil {
					return fmt.Errorf("parse --month: %w", err)
				}
			}

			s := loadStore(app)
			grid := attendance.BuildMonthGrid(target.Year(), target.Month(), s.State.Attendance)
			rules := attendance.Rules{
				BreakThreshold: app.cfg.BreakThresholdHrs,
				BreakDeduction: app.cfg.BreakDeductionHrs,
			}

			type dayOut struct {
				Day    int    `json:"day"`
				Date   string `json:"date"`
				Status string `json:"status,omitempty"`
			}
			out := struct {
				Year          int      `json:"year"`
				Month         int      `json:"month"`
				LeadingBlanks int      `json:"leadingBlanks"`
				Days          []dayOut `json:"days"`
			}{Year: grid.Year, Month: grid.Month, LeadingBlanks: grid.LeadingBlanks}
			for _, cell := range grid.Days {
				out.Days = append(out.Days, dayOut{
					Day:    cell.Day,
					Date:   cell.Date,
					Status: attendance.DayStatus(cell.Record, rules),
				})
			}
			return writeOut(cmd, app, out)
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month to render (YYYY-MM, default: current)")
	return cmd
}
