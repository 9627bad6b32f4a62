// Package ordinal converts calendar dates to and from integer day counts.
//
// Every calendar kind maps a (year, month, day) triple to an ordinal: a
// continuous count of days from a calendar-specific origin. For the
// real-world calendars (standard, julian, proleptic_gregorian) and the
// Excel calendars the ordinal is the noon-referenced Julian Day Number,
// so day 0 is noon on -4713-01-01 Julian. The decimal calendar counts
// from day 1 = 0001-01-01 (the civil ordinal, JDN - 1721425). The
// idealized fixed-length calendars count from day 0 = 0000-01-01 of their
// own 360/365/366-day year.
//
// The ordinal is the interchange value for all date arithmetic: adding
// days, differencing dates and deriving weekdays all go through it.
// Conversion is exact and round-trips for every representable date.
//
// The mixed standard calendar has a 10-day gap: 1582-10-05 through
// 1582-10-14 never existed. Converting such a date returns a
// TransitionDateError unless skip-transition mode is requested, which
// instead interprets the date as the Julian date of the same name,
// shifting it 10 days forward in the Gregorian reckoning.
package ordinal
