package calendar

import (
	"fmt"
	"strings"
)

// Kind identifies one of the supported calendar systems.
type Kind uint8

const (
	// Standard is the mixed Julian/Gregorian calendar: Julian rules before
	// 1582-10-15, Gregorian rules on or after, with a 10-day gap between.
	// Also known as "gregorian" in CF metadata.
	Standard Kind = iota + 1

	// Julian is the Julian calendar extended indefinitely in both directions.
	Julian

	// ProlepticGregorian is the Gregorian calendar extended backward before
	// 1582, with no transition gap.
	ProlepticGregorian

	// NoLeap is the idealized 365-day calendar ("365_day"): no leap years,
	// February always has 28 days.
	NoLeap

	// AllLeap is the idealized 366-day calendar ("366_day"): every year is
	// a leap year, February always has 29 days.
	AllLeap

	// Day360 is the idealized 360-day calendar: twelve 30-day months.
	Day360

	// Excel1900 is the Excel serial-date calendar with the 1900 epoch.
	// Leap years follow the pure year%4 rule, reproducing the historical
	// Excel/Lotus bug that treats 1900 as a leap year.
	Excel1900

	// Excel1904 is the Excel serial-date calendar with the 1904 epoch,
	// as used by classic Mac OS versions of Excel.
	Excel1904

	// Decimal is the fractional-year calendar with Gregorian leap rules.
	Decimal

	// Decimal360 is the fractional-year calendar over 360-day years.
	Decimal360

	// Decimal365 is the fractional-year calendar over 365-day years.
	Decimal365

	// Decimal366 is the fractional-year calendar over 366-day years.
	Decimal366
)

// UnknownCalendarError is returned when a calendar name does not match the
// supported vocabulary.
type UnknownCalendarError struct {
	Name string
}

func (e *UnknownCalendarError) Error() string {
	return fmt.Sprintf("unknown calendar %q", e.Name)
}

// String returns the canonical calendar name.
func (k Kind) String() string {
	switch k {
	case Standard:
		return "standard"
	case Julian:
		return "julian"
	case ProlepticGregorian:
		return "proleptic_gregorian"
	case NoLeap:
		return "noleap"
	case AllLeap:
		return "all_leap"
	case Day360:
		return "360_day"
	case Excel1900:
		return "excel1900"
	case Excel1904:
		return "excel1904"
	case Decimal:
		return "decimal"
	case Decimal360:
		return "decimal360"
	case Decimal365:
		return "decimal365"
	case Decimal366:
		return "decimal366"
	default:
		return "unknown"
	}
}

// IsValid reports whether k is one of the defined calendar kinds.
func (k Kind) IsValid() bool {
	return k >= Standard && k <= Decimal366
}

// IsCF reports whether k is one of the CF/netCDF calendars.
func (k Kind) IsCF() bool {
	switch k {
	case Standard, Julian, ProlepticGregorian, NoLeap, AllLeap, Day360:
		return true
	}
	return false
}

// IsExcel reports whether k is one of the Excel serial-date calendars.
func (k Kind) IsExcel() bool {
	return k == Excel1900 || k == Excel1904
}

// IsDecimal reports whether k is one of the fractional-year calendars.
func (k Kind) IsDecimal() bool {
	switch k {
	case Decimal, Decimal360, Decimal365, Decimal366:
		return true
	}
	return false
}

// FixedYearLength returns the year length of the idealized fixed-length
// calendars (360, 365 or 366 days) and true, or 0 and false for calendars
// whose year length depends on the year.
func (k Kind) FixedYearLength() (int, bool) {
	switch k {
	case Day360, Decimal360:
		return 360, true
	case NoLeap, Decimal365:
		return 365, true
	case AllLeap, Decimal366:
		return 366, true
	}
	return 0, false
}

// Parse resolves a calendar name, case-insensitively, against the supported
// vocabulary. Aliases from CF metadata ("gregorian", "365_day", "366_day")
// and the bare "excel" name are accepted.
func Parse(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "standard", "gregorian":
		return Standard, nil
	case "julian":
		return Julian, nil
	case "proleptic_gregorian":
		return ProlepticGregorian, nil
	case "noleap", "365_day":
		return NoLeap, nil
	case "all_leap", "366_day":
		return AllLeap, nil
	case "360_day":
		return Day360, nil
	case "excel", "excel1900":
		return Excel1900, nil
	case "excel1904":
		return Excel1904, nil
	case "decimal":
		return Decimal, nil
	case "decimal360":
		return Decimal360, nil
	case "decimal365":
		return Decimal365, nil
	case "decimal366":
		return Decimal366, nil
	default:
		return 0, &UnknownCalendarError{Name: name}
	}
}
