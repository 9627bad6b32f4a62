// Package caldate provides the DateTime and Duration value types used
// throughout caltime.
//
// A DateTime is an immutable calendar date with microsecond precision,
// bound to one of the calendar kinds from pkg/calendar and to a year-zero
// convention. Validation happens at construction: a DateTime that exists
// is valid for its calendar, and derived values (ordinal, weekday, day of
// year) are computed eagerly so instances can be shared freely across
// goroutines.
//
// A Duration is a signed span of (days, seconds, microseconds), carry
// normalized so that seconds is in [0, 86400) and microseconds in
// [0, 1000000) with the sign carried by the day count, matching Python's
// timedelta convention. Durations are calendar-agnostic; applying one to
// a DateTime respects that calendar's month lengths and year-zero rule.
//
// # Mixing calendars
//
// Arithmetic and comparison between two DateTimes require the same
// calendar and year-zero convention and return ErrCalendarMismatch
// otherwise; values are never coerced silently. The only cross-calendar
// bridge is the explicit platform boundary: FromTime converts a UTC
// time.Time into a proleptic Gregorian DateTime, and CompareTime orders a
// DateTime against a time.Time through the shared Julian Day origin for
// the calendars where that origin is meaningful.
package caldate
