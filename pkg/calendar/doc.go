// Package calendar defines the calendar systems supported by caltime and
// the per-calendar rules that every other package builds on.
//
// # Calendar Kinds
//
// Three families of calendars are supported:
//   - CF/netCDF calendars: standard (mixed Julian/Gregorian), julian,
//     proleptic_gregorian, and the idealized noleap/all_leap/360_day
//     calendars used by climate models.
//   - Excel serial-date calendars: excel1900 and excel1904. These
//     deliberately reproduce the historical Excel/Lotus leap-year bug
//     (1900 is treated as a leap year).
//   - Decimal calendars: decimal, decimal360, decimal365, decimal366,
//     which encode dates as fractional years (e.g. 1990.5).
//
// # Year Zero
//
// Calendars differ on whether year 0 exists. Astronomical numbering has a
// year 0 between -1 and 1; historical numbering does not. Each kind
// carries a default convention: real-world calendars (standard, julian,
// Excel) have no year 0, idealized and decimal calendars do. For the
// Excel calendars a year 0 is illegal outright, not merely non-default.
//
// # Rules
//
// The registry functions answer the questions the rest of the library
// asks: is a year a leap year, how long is each month, what is the
// default units string. When a calendar has no year 0, negative years are
// shifted by one internally before any rule is applied, so year -1
// behaves like astronomical year 0.
package calendar
