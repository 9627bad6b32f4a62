package caldate

import (
	"time"

	"github.com/caltime/caltime-go/pkg/calendar"
	"github.com/caltime/caltime-go/pkg/ordinal"
)

// jdnComparable reports whether a calendar's ordinal maps onto the real
// Julian Day line, which is what platform time values live on. The
// idealized fixed-length calendars do not; their day counts are their own.
func jdnComparable(k calendar.Kind) bool {
	switch k {
	case calendar.Standard, calendar.Julian, calendar.ProlepticGregorian,
		calendar.Excel1900, calendar.Excel1904, calendar.Decimal:
		return true
	}
	return false
}

// FromTime converts a time.Time into a proleptic Gregorian DateTime.
// The time is read in UTC; none of the supported calendars carry a zone.
func FromTime(t time.Time) (DateTime, error) {
	u := t.UTC()
	return New(calendar.ProlepticGregorian,
		int64(u.Year()), int(u.Month()), u.Day(),
		u.Hour(), u.Minute(), u.Second(), u.Nanosecond()/1000)
}

// CompareTime orders the receiver against a platform time value through
// the shared Julian Day origin, returning -1, 0 or +1. Only calendars on
// the real day line support this; the idealized fixed-length calendars
// return ErrCalendarMismatch.
func (dt DateTime) CompareTime(t time.Time) (int, error) {
	if !jdnComparable(dt.kind) {
		return 0, ErrCalendarMismatch
	}
	other, err := FromTime(t)
	if err != nil {
		return 0, err
	}
	a := (dt.ord+ordinal.JDNOffset(dt.kind))*MicrosPerDay + dt.MicrosecondOfDay()
	b := (other.ord+ordinal.JDNOffset(other.kind))*MicrosPerDay + other.MicrosecondOfDay()
	switch {
	case a < b:
		return -1, nil
	case a > b:
		return 1, nil
	default:
		return 0, nil
	}
}

// ToTime converts the receiver to a UTC time.Time. Only calendars on the
// real day line convert; the result uses the proleptic Gregorian reading
// of the underlying day, which is what time.Time implements.
func (dt DateTime) ToTime() (time.Time, error) {
	if !jdnComparable(dt.kind) {
		return time.Time{}, ErrCalendarMismatch
	}
	jdn := dt.ord + ordinal.JDNOffset(dt.kind)
	year, month, day := ordinal.FromOrdinal(calendar.ProlepticGregorian, jdn, true)
	return time.Date(int(year), time.Month(month), day,
		dt.hour, dt.minute, dt.second, dt.microsecond*1000, time.UTC), nil
}
