// Package config resolves runtime settings from the environment. A .env file
// in the working directory is honored when present.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries the payroll constants and display settings the views and
// calculators depend on.
type Config struct {
	StandardShiftHours float64 // span past which a day accrues overtime
	BreakThresholdHrs  float64 // deduct a break only past this many worked hours
	BreakDeductionHrs  float64
	HistoryPageSize    int
	TimesheetPageSize  int
	EmployeeName       string
}

// Default is the configuration used when no environment overrides are set.
func Default() Config {
	return Config{
		StandardShiftHours: 9,
		BreakThresholdHrs:  5,
		BreakDeductionHrs:  1,
		HistoryPageSize:    10,
		TimesheetPageSize:  15,
		EmployeeName:       "",
	}
}

// Load reads overrides from STAFFDESK_* environment variables, loading .env
// first if one exists. Malformed numeric values fall back to the default.
func Load() Config {
	_ = godotenv.Load()

	c := Default()
	c.StandardShiftHours = envFloat("STAFFDESK_SHIFT_HOURS", c.StandardShiftHours)
	c.BreakThresholdHrs = envFloat("STAFFDESK_BREAK_THRESHOLD_HOURS", c.BreakThresholdHrs)
	c.BreakDeductionHrs = envFloat("STAFFDESK_BREAK_DEDUCTION_HOURS", c.BreakDeductionHrs)
	c.HistoryPageSize = envInt("STAFFDESK_HISTORY_PAGE_SIZE", c.HistoryPageSize)
	c.TimesheetPageSize = envInt("STAFFDESK_TIMESHEET_PAGE_SIZE", c.TimesheetPageSize)
	if v := os.Getenv("STAFFDESK_EMPLOYEE_NAME"); v != "" {
		c.EmployeeName = v
	}
	return c
}

// StandardShift returns the shift length as a duration for the overtime
// calculators.
func (c Config) StandardShift() time.Duration {
	return time.Duration(c.StandardShiftHours * float64(time.Hour))
}

func envFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		return def
	}
	return f
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
