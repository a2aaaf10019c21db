package reports

import "time"

type Period string

const (
	PeriodToday  Period = "today"
	PeriodWeek   Period = "week"
	PeriodMonth  Period = "month"
	PeriodCustom Period = "custom"
)

const dayFormat = "2006-01-02"

func ValidPeriod(p Period) bool {
	switch p {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodCustom:
		return true
	}
	return false
}

// Filter selects a reporting window. Start and End are YYYY-MM-DD strings,
// only read for PeriodCustom; an empty bound leaves that side open.
type Filter struct {
	Period Period `json:"period"`
	Start  string `json:"start,omitempty"`
	End    string `json:"end,omitempty"`
}

// InRange reports whether a sale dated t falls inside the filter. Dates are
// compared at calendar-day granularity, endpoints inclusive; week and month
// are rolling now-7d / now-30d windows.
func (f Filter) InRange(t time.Time, now time.Time) bool {
	day := t.Format(dayFormat)
	today := now.Format(dayFormat)

	switch f.Period {
	case PeriodToday:
		return day == today
	case PeriodWeek:
		weekAgo := now.Add(-7 * 24 * time.Hour).Format(dayFormat)
		return day >= weekAgo && day <= today
	case PeriodMonth:
		monthAgo := now.Add(-30 * 24 * time.Hour).Format(dayFormat)
		return day >= monthAgo && day <= today
	case PeriodCustom:
		return (f.Start == "" || day >= f.Start) && (f.End == "" || day <= f.End)
	default:
		return true
	}
}
