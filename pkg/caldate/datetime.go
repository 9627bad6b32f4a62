package caldate

import (
	"fmt"

	"github.com/caltime/caltime-go/pkg/calendar"
	"github.com/caltime/caltime-go/pkg/ordinal"
)

// Microseconds per unit of time-of-day arithmetic.
const (
	MicrosPerSecond int64 = 1_000_000
	MicrosPerMinute       = 60 * MicrosPerSecond
	MicrosPerHour         = 60 * MicrosPerMinute
	MicrosPerDay          = 24 * MicrosPerHour
)

// DateTime is an immutable calendar date and time of day with microsecond
// precision. The zero value is not a valid DateTime; use New or
// NewWithYearZero.
type DateTime struct {
	year        int64
	month       int
	day         int
	hour        int
	minute      int
	second      int
	microsecond int

	kind        calendar.Kind
	hasYearZero bool

	// Derived at construction.
	ord       int64
	dayOfYear int
	weekday   int
}

// New constructs a validated DateTime using the calendar's default
// year-zero convention.
func New(k calendar.Kind, year int64, month, day, hour, minute, second, microsecond int) (DateTime, error) {
	return NewWithYearZero(k, year, month, day, hour, minute, second, microsecond, calendar.DefaultHasYearZero(k))
}

// NewWithYearZero constructs a validated DateTime with an explicit
// year-zero convention. Requesting a year 0 for an Excel calendar is an
// error; those serial-date conventions have none.
func NewWithYearZero(k calendar.Kind, year int64, month, day, hour, minute, second, microsecond int, hasYearZero bool) (DateTime, error) {
	if !k.IsValid() {
		return DateTime{}, &calendar.UnknownCalendarError{Name: fmt.Sprintf("kind(%d)", k)}
	}
	if hasYearZero && !calendar.YearZeroSelectable(k) {
		return DateTime{}, &InvalidDateError{Field: "has_year_zero", Value: 1,
			Reason: fmt.Sprintf("the %s calendar has no year zero", k)}
	}
	if year == 0 && !hasYearZero {
		return DateTime{}, &InvalidDateError{Field: "year", Value: 0,
			Reason: "year zero does not exist in this calendar"}
	}
	if month < 1 || month > 12 {
		return DateTime{}, &InvalidDateError{Field: "month", Value: int64(month), Reason: "must be in 1..12"}
	}
	if dim := calendar.DaysInMonth(k, year, month, hasYearZero); day < 1 || day > dim {
		return DateTime{}, &InvalidDateError{Field: "day", Value: int64(day),
			Reason: fmt.Sprintf("must be in 1..%d for month %d of year %d", dim, month, year)}
	}
	if hour < 0 || hour > 23 {
		return DateTime{}, &InvalidDateError{Field: "hour", Value: int64(hour), Reason: "must be in 0..23"}
	}
	if minute < 0 || minute > 59 {
		return DateTime{}, &InvalidDateError{Field: "minute", Value: int64(minute), Reason: "must be in 0..59"}
	}
	if second < 0 || second > 59 {
		return DateTime{}, &InvalidDateError{Field: "second", Value: int64(second), Reason: "must be in 0..59"}
	}
	if microsecond < 0 || microsecond > 999999 {
		return DateTime{}, &InvalidDateError{Field: "microsecond", Value: int64(microsecond), Reason: "must be in 0..999999"}
	}

	ord, err := ordinal.ToOrdinal(k, year, month, day, hasYearZero, false)
	if err != nil {
		return DateTime{}, err
	}

	return DateTime{
		year: year, month: month, day: day,
		hour: hour, minute: minute, second: second, microsecond: microsecond,
		kind: k, hasYearZero: hasYearZero,
		ord:       ord,
		dayOfYear: ordinal.DayOfYear(k, year, month, day, hasYearZero),
		weekday:   ordinal.Weekday(k, ord),
	}, nil
}

// fromOrdinal rebuilds a DateTime from an ordinal and a microsecond of
// day. Both are always in range here, so a failure is a programming error.
func fromOrdinal(k calendar.Kind, ord int64, microsOfDay int64, hasYearZero bool) DateTime {
	year, month, day := ordinal.FromOrdinal(k, ord, hasYearZero)
	hour := int(microsOfDay / MicrosPerHour)
	minute := int(microsOfDay % MicrosPerHour / MicrosPerMinute)
	second := int(microsOfDay % MicrosPerMinute / MicrosPerSecond)
	micro := int(microsOfDay % MicrosPerSecond)
	dt, err := NewWithYearZero(k, year, month, day, hour, minute, second, micro, hasYearZero)
	if err != nil {
		panic(fmt.Sprintf("caldate: ordinal %d produced invalid date: %v", ord, err))
	}
	return dt
}

// Year returns the calendar year. Negative years precede year 1; year 0
// exists only when HasYearZero is true.
func (dt DateTime) Year() int64 { return dt.year }

// Month returns the month in 1..12.
func (dt DateTime) Month() int { return dt.month }

// Day returns the day of the month.
func (dt DateTime) Day() int { return dt.day }

// Hour returns the hour in 0..23.
func (dt DateTime) Hour() int { return dt.hour }

// Minute returns the minute in 0..59.
func (dt DateTime) Minute() int { return dt.minute }

// Second returns the second in 0..59.
func (dt DateTime) Second() int { return dt.second }

// Microsecond returns the microsecond in 0..999999.
func (dt DateTime) Microsecond() int { return dt.microsecond }

// Calendar returns the calendar kind the date is bound to.
func (dt DateTime) Calendar() calendar.Kind { return dt.kind }

// HasYearZero returns the year-zero convention the date is bound to.
func (dt DateTime) HasYearZero() bool { return dt.hasYearZero }

// Weekday returns the ISO weekday: 0 = Monday .. 6 = Sunday.
func (dt DateTime) Weekday() int { return dt.weekday }

// DayOfYear returns the 1-based day of the year.
func (dt DateTime) DayOfYear() int { return dt.dayOfYear }

// DaysInMonth returns the length of the date's month in its calendar.
func (dt DateTime) DaysInMonth() int {
	return calendar.DaysInMonth(dt.kind, dt.year, dt.month, dt.hasYearZero)
}

// DaysInYear returns the length of the date's year in its calendar.
func (dt DateTime) DaysInYear() int {
	return calendar.DaysInYear(dt.kind, dt.year, dt.hasYearZero)
}

// Ordinal returns the integer day ordinal of the date in its calendar's
// day count (the Julian Day Number for the real-world calendars).
func (dt DateTime) Ordinal() int64 { return dt.ord }

// MicrosecondOfDay returns the time of day in microseconds since midnight.
func (dt DateTime) MicrosecondOfDay() int64 {
	return int64(dt.hour)*MicrosPerHour +
		int64(dt.minute)*MicrosPerMinute +
		int64(dt.second)*MicrosPerSecond +
		int64(dt.microsecond)
}

// FractionalOrdinal returns the ordinal including the time of day as a
// fraction. The ordinal is noon-referenced, so midnight falls on the
// half-day boundary: Ordinal() - 0.5 + timeOfDay.
func (dt DateTime) FractionalOrdinal() float64 {
	return float64(dt.ord) - 0.5 + float64(dt.MicrosecondOfDay())/float64(MicrosPerDay)
}

// sameConvention reports whether two DateTimes share calendar and
// year-zero convention and so may be compared or differenced.
func (dt DateTime) sameConvention(other DateTime) bool {
	return dt.kind == other.kind && dt.hasYearZero == other.hasYearZero
}

// Compare orders two DateTimes of the same calendar and year-zero
// convention, returning -1, 0 or +1. Differing conventions return
// ErrCalendarMismatch; dates are never coerced across calendars.
func (dt DateTime) Compare(other DateTime) (int, error) {
	if !dt.sameConvention(other) {
		return 0, ErrCalendarMismatch
	}
	if dt.ord != other.ord {
		if dt.ord < other.ord {
			return -1, nil
		}
		return 1, nil
	}
	a, b := dt.MicrosecondOfDay(), other.MicrosecondOfDay()
	switch {
	case a < b:
		return -1, nil
	case a > b:
		return 1, nil
	default:
		return 0, nil
	}
}

// Equal reports whether two DateTimes of the same convention denote the
// same instant. Differing conventions return ErrCalendarMismatch.
func (dt DateTime) Equal(other DateTime) (bool, error) {
	c, err := dt.Compare(other)
	return c == 0, err
}

// String formats the date as "YYYY-MM-DD HH:MM:SS".
func (dt DateTime) String() string {
	return dt.ISOFormat(' ', GranularitySeconds)
}
