package caldate

import "fmt"

// Duration is a signed span of time, normalized so that Seconds is in
// [0, 86400) and Microseconds in [0, 1000000) with the sign carried into
// Days. -1 microsecond is therefore {Days: -1, Seconds: 86399,
// Microseconds: 999999}, matching Python's timedelta convention.
type Duration struct {
	days         int64
	seconds      int32
	microseconds int32
}

// NewDuration builds a normalized Duration from arbitrary day, second and
// microsecond counts, which may each be negative or out of range.
func NewDuration(days, seconds, microseconds int64) Duration {
	seconds += fdiv(microseconds, MicrosPerSecond)
	microseconds = fmod(microseconds, MicrosPerSecond)
	days += fdiv(seconds, 86400)
	seconds = fmod(seconds, 86400)
	return Duration{days: days, seconds: int32(seconds), microseconds: int32(microseconds)}
}

func fdiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func fmod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// Days returns the normalized day count, which carries the sign.
func (d Duration) Days() int64 { return d.days }

// Seconds returns the normalized second count in [0, 86400).
func (d Duration) Seconds() int { return int(d.seconds) }

// Microseconds returns the normalized microsecond count in [0, 1000000).
func (d Duration) Microseconds() int { return int(d.microseconds) }

// Neg returns the negated duration.
func (d Duration) Neg() Duration {
	return NewDuration(-d.days, -int64(d.seconds), -int64(d.microseconds))
}

// IsZero reports whether the duration is exactly zero.
func (d Duration) IsZero() bool {
	return d.days == 0 && d.seconds == 0 && d.microseconds == 0
}

// TotalMicroseconds returns the span as a single microsecond count.
func (d Duration) TotalMicroseconds() int64 {
	return d.days*MicrosPerDay + int64(d.seconds)*MicrosPerSecond + int64(d.microseconds)
}

// String formats the duration like "3d 04:05:06.000007", with the day
// part omitted when zero and the microsecond part omitted when zero.
func (d Duration) String() string {
	s := ""
	if d.days != 0 {
		s = fmt.Sprintf("%dd ", d.days)
	}
	s += fmt.Sprintf("%02d:%02d:%02d", d.seconds/3600, d.seconds%3600/60, d.seconds%60)
	if d.microseconds != 0 {
		s += fmt.Sprintf(".%06d", d.microseconds)
	}
	return s
}

// Add applies the duration to the receiver DateTime, respecting the
// calendar's month lengths and year-zero convention. Sub-day carry is
// calendar independent; the whole-day part moves along the calendar's
// day ordinal, so skipped spans (the missing year 0, the Gregorian
// transition gap) are stepped over, never landed in.
func (dt DateTime) Add(d Duration) DateTime {
	micros := dt.MicrosecondOfDay() + int64(d.seconds)*MicrosPerSecond + int64(d.microseconds)
	extraDays := fdiv(micros, MicrosPerDay)
	micros = fmod(micros, MicrosPerDay)
	return fromOrdinal(dt.kind, dt.ord+d.days+extraDays, micros, dt.hasYearZero)
}

// Sub applies the negated duration: dt.Sub(d) == dt.Add(d.Neg()).
func (dt DateTime) Sub(d Duration) DateTime {
	return dt.Add(d.Neg())
}

// Difference returns the exact Duration from other to dt, so that
// other.Add(result) equals dt. Both dates must share calendar and
// year-zero convention; otherwise ErrCalendarMismatch is returned.
func (dt DateTime) Difference(other DateTime) (Duration, error) {
	if !dt.sameConvention(other) {
		return Duration{}, ErrCalendarMismatch
	}
	days := dt.ord - other.ord
	micros := dt.MicrosecondOfDay() - other.MicrosecondOfDay()
	return NewDuration(days, 0, micros), nil
}
