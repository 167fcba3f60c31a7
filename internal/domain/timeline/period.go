package timeline

import "time"

const (
	PeriodLayout = "Jan 2006"
	Present      = "Present"
)

// Period renders "start - end" for timeline entries. A current entry, or one
// without an end date, always ends with Present.
func Period(start time.Time, end *time.Time, isCurrent bool) string {
	tail := Present
	if !isCurrent && end != nil && !end.IsZero() {
		tail = end.Format(PeriodLayout)
	}
	return start.Format(PeriodLayout) + " - " + tail
}
