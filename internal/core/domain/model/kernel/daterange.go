package kernel

import (
	"fmt"
	"time"

	"missions/internal/pkg/errs"
)

// ErrDateRangeIsNotConstructed is returned when attempting to use an improperly
// initialized DateRange. Ranges must be created via NewDateRange to guarantee
// that the end date never precedes the start date.
var ErrDateRangeIsNotConstructed = errs.NewValueIsRequiredError(
	"date range must be created via NewDateRange constructor")

// DateRange represents an inclusive contract period with a validated start and
// end date. It is an immutable value object: both bounds are normalized to
// midnight UTC so that two ranges covering the same calendar days compare
// equal regardless of the wall-clock time they were built from.
//
// The zero value of DateRange is invalid and will fail validation - use the
// constructor to create instances.
//
// Example:
//
//	period, err := kernel.NewDateRange(start, end)
//	if err != nil {
//	    // end precedes start
//	}
//	days := period.DurationDays() // inclusive day count
type DateRange struct {
	start time.Time
	end   time.Time

	isConstructed bool
}

// NewDateRange creates a validated inclusive date range.
// Returns an error if end precedes start (same-day ranges are valid and
// count as one day).
func NewDateRange(start, end time.Time) (DateRange, error) {
	start = truncateToDay(start)
	end = truncateToDay(end)

	if end.Before(start) {
		return DateRange{}, errs.NewValueIsInvalidErrorWithCause(
			"endDate",
			fmt.Errorf("end date %s precedes start date %s",
				end.Format(time.DateOnly), start.Format(time.DateOnly)),
		)
	}

	return DateRange{
		start:         start,
		end:           end,
		isConstructed: true,
	}, nil
}

// Start returns the first day of the range.
func (r DateRange) Start() time.Time {
	return r.start
}

// End returns the last day of the range.
func (r DateRange) End() time.Time {
	return r.end
}

// DurationDays returns the inclusive day count of the range.
// A range starting and ending on the same day lasts one day.
func (r DateRange) DurationDays() int {
	return int(r.end.Sub(r.start).Hours()/24) + 1
}

// EndsBefore reports whether the whole range lies strictly before the given
// moment, i.e. the last day of the range is over.
func (r DateRange) EndsBefore(t time.Time) bool {
	return r.end.Before(truncateToDay(t))
}

// IsEqual compares two ranges by their calendar bounds.
func (r DateRange) IsEqual(other DateRange) bool {
	return r.start.Equal(other.start) && r.end.Equal(other.end)
}

// String returns the range as "2006-01-02..2006-01-02".
func (r DateRange) String() string {
	return r.start.Format(time.DateOnly) + ".." + r.end.Format(time.DateOnly)
}

// Validate checks that the range was built through NewDateRange.
func (r DateRange) Validate() error {
	if !r.isConstructed {
		return ErrDateRangeIsNotConstructed
	}
	return nil
}

// truncateToDay drops the time-of-day component and normalizes to UTC.
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
