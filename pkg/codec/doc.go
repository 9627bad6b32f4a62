// Package codec converts between DateTime values and their numeric
// encodings under a units specification, the date2num/num2date operation
// of CF/netCDF tooling.
//
// # Linear encodings
//
// "X since REFDATE" units encode a date as the signed count of unit X
// from the reference date. The difference is computed in integer
// microseconds from the day ordinals and only divided into a float64 at
// the very end, so microsecond accuracy survives multi-millennium spans.
// The Excel calendars are Julian-equivalent and share this path; when no
// units are given they default to their fixed serial epochs
// (1899-12-31 for excel1900, 1903-12-31 for excel1904).
//
// # Absolute encodings
//
// "X as PATTERN" units embed the date digits in the number itself:
// 19900102.5 under "day as %Y%m%d.%f" is noon on 1990-01-02. The year
// pattern "%Y.%f" is the same encoding the decimal calendars use
// natively: the integer part is the year and the fraction is the elapsed
// share of that year.
//
// Decoding decomposes through integer microsecond arithmetic: the
// fractional part is rounded to the nearest microsecond once, up front,
// and everything after that is exact. Comparing fractional days in
// floating point is what produces the classic off-by-one-microsecond
// artifacts at second boundaries; this package never does it.
package codec
