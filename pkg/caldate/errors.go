package caldate

import (
	"errors"
	"fmt"
)

// ErrCalendarMismatch is returned by arithmetic and comparison between
// DateTimes with different calendars or year-zero conventions.
var ErrCalendarMismatch = errors.New("operands use different calendars or year-zero conventions")

// InvalidDateError reports a component that is out of range for its
// calendar, detected at construction.
type InvalidDateError struct {
	Field  string
	Value  int64
	Reason string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid %s %d: %s", e.Field, e.Value, e.Reason)
}

// UnsupportedDirectiveError reports a format directive that Format does
// not implement, or a %f directive anywhere but at the end of the pattern.
type UnsupportedDirectiveError struct {
	Directive string
}

func (e *UnsupportedDirectiveError) Error() string {
	return fmt.Sprintf("unsupported format directive %q", e.Directive)
}
