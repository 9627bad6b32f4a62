// Package units parses CF-style units strings into a structured Spec.
//
// The grammar is "<unit> (since|as) <remainder>". The "since" form
// describes a linear encoding: numbers count the given unit from a
// reference date, as in "days since 1858-11-17 00:00:00" or
// "hours since 1990-1-1". The "as" form describes an absolute encoding
// that embeds the date digits in the number itself; the remainder names
// the pattern, one of "%Y%m%d.%f", "%Y%m.%f" or "%Y.%f", as in
// "day as %Y%m%d.%f".
//
// Two units are calendar-restricted: "months since" is only meaningful
// for the 360_day calendar (every month is 30 days) and "common_years
// since" only for the 365_day calendar. Anywhere else they are rejected.
//
// Reference dates go through pkg/dateparse, so the regional notations it
// accepts are accepted here too.
package units
