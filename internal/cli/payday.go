package cli

import (
	"time"

	"staffdesk-cli/internal/datecalc"

	"github.com/spf13/cobra"
)

func newPaydayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "payday",
		Short: "Next payday and days remaining as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			payday, days := datecalc.NextPayday(time.Now())
			return writeOut(cmd, app, struct {
				Payday        string `json:"payday"`
				DaysRemaining int    `json:"daysRemaining"`
			}{payday.Format("2006-01-02"), days})
		},
	}
}
