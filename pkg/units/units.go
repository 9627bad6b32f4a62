package units

import (
	"fmt"
	"strings"

	"github.com/caltime/caltime-go/pkg/caldate"
	"github.com/caltime/caltime-go/pkg/calendar"
	"github.com/caltime/caltime-go/pkg/dateparse"
)

// UnknownUnitsError reports a units string that does not match the
// grammar or combines a unit with a calendar that cannot carry it.
type UnknownUnitsError struct {
	Units  string
	Reason string
}

func (e *UnknownUnitsError) Error() string {
	return fmt.Sprintf("unknown units %q: %s", e.Units, e.Reason)
}

// Unit is the time unit of a linear "since" encoding.
type Unit uint8

const (
	Microseconds Unit = iota + 1
	Milliseconds
	Seconds
	Minutes
	Hours
	Days

	// Months is only valid for the 360_day calendar, where every month
	// is exactly 30 days.
	Months

	// CommonYears is only valid for the 365_day calendar, where every
	// year is exactly 365 days.
	CommonYears
)

// String returns the canonical unit name.
func (u Unit) String() string {
	switch u {
	case Microseconds:
		return "microseconds"
	case Milliseconds:
		return "milliseconds"
	case Seconds:
		return "seconds"
	case Minutes:
		return "minutes"
	case Hours:
		return "hours"
	case Days:
		return "days"
	case Months:
		return "months"
	case CommonYears:
		return "common_years"
	default:
		return "unknown"
	}
}

// Micros returns the length of the unit in microseconds.
func (u Unit) Micros() int64 {
	switch u {
	case Microseconds:
		return 1
	case Milliseconds:
		return 1_000
	case Seconds:
		return caldate.MicrosPerSecond
	case Minutes:
		return caldate.MicrosPerMinute
	case Hours:
		return caldate.MicrosPerHour
	case Days:
		return caldate.MicrosPerDay
	case Months:
		return 30 * caldate.MicrosPerDay
	case CommonYears:
		return 365 * caldate.MicrosPerDay
	default:
		panic(fmt.Sprintf("units: unhandled unit %d", u))
	}
}

// Pattern is the digit layout of an absolute "as" encoding.
type Pattern uint8

const (
	// PatternDay is "%Y%m%d.%f": 19900102.5 is noon on 1990-01-02.
	PatternDay Pattern = iota + 1

	// PatternMonth is "%Y%m.%f": the fraction is the elapsed share of
	// the month.
	PatternMonth

	// PatternYear is "%Y.%f": the fraction is the elapsed share of the
	// year, identical to the decimal-calendar encoding.
	PatternYear
)

// String returns the strftime-style pattern text.
func (p Pattern) String() string {
	switch p {
	case PatternDay:
		return "%Y%m%d.%f"
	case PatternMonth:
		return "%Y%m.%f"
	case PatternYear:
		return "%Y.%f"
	default:
		return "unknown"
	}
}

// Spec is a parsed units string: either a linear encoding relative to a
// reference date, or an absolute digit-embedding pattern.
type Spec struct {
	// Absolute is true for "as" specs; Pattern is then set and Unit and
	// Reference are meaningless.
	Absolute bool
	Pattern  Pattern

	Unit      Unit
	Reference caldate.DateTime
}

// Parse parses a units string for the given calendar and year-zero
// convention. The reference date of a "since" spec is validated against
// that calendar. Slash-separated reference dates are read in US order;
// use ParseWithOptions for day-first parsing or a different pivot year.
func Parse(unitsStr string, k calendar.Kind, hasYearZero bool) (*Spec, error) {
	return ParseWithOptions(unitsStr, k, hasYearZero, dateparse.Options{})
}

// ParseWithOptions is Parse with explicit reference-date parsing options.
func ParseWithOptions(unitsStr string, k calendar.Kind, hasYearZero bool, opts dateparse.Options) (*Spec, error) {
	fields := strings.Fields(unitsStr)
	if len(fields) < 3 {
		return nil, &UnknownUnitsError{Units: unitsStr, Reason: "expected \"<unit> (since|as) <remainder>\""}
	}
	unitTok := strings.ToLower(fields[0])
	keyword := strings.ToLower(fields[1])
	remainder := strings.Join(fields[2:], " ")

	switch keyword {
	case "as":
		return parseAbsolute(unitsStr, unitTok, remainder)
	case "since":
		return parseLinear(unitsStr, unitTok, remainder, k, hasYearZero, opts)
	default:
		return nil, &UnknownUnitsError{Units: unitsStr, Reason: fmt.Sprintf("expected \"since\" or \"as\", got %q", keyword)}
	}
}

func parseAbsolute(unitsStr, unitTok, remainder string) (*Spec, error) {
	var p Pattern
	switch remainder {
	case "%Y%m%d.%f":
		p = PatternDay
	case "%Y%m.%f":
		p = PatternMonth
	case "%Y.%f":
		p = PatternYear
	default:
		return nil, &UnknownUnitsError{Units: unitsStr, Reason: fmt.Sprintf("unrecognized absolute pattern %q", remainder)}
	}
	want := map[Pattern]string{PatternDay: "day", PatternMonth: "month", PatternYear: "year"}[p]
	if strings.TrimSuffix(unitTok, "s") != want {
		return nil, &UnknownUnitsError{Units: unitsStr,
			Reason: fmt.Sprintf("pattern %q requires unit %q, got %q", remainder, want, unitTok)}
	}
	return &Spec{Absolute: true, Pattern: p}, nil
}

func parseLinear(unitsStr, unitTok, remainder string, k calendar.Kind, hasYearZero bool, opts dateparse.Options) (*Spec, error) {
	u, ok := parseUnit(unitTok)
	if !ok {
		return nil, &UnknownUnitsError{Units: unitsStr, Reason: fmt.Sprintf("unrecognized unit %q", unitTok)}
	}
	if u == Months && k != calendar.Day360 {
		return nil, &UnknownUnitsError{Units: unitsStr, Reason: "\"months since\" is only supported for the 360_day calendar"}
	}
	if u == CommonYears && k != calendar.NoLeap {
		return nil, &UnknownUnitsError{Units: unitsStr, Reason: "\"common_years since\" is only supported for the 365_day calendar"}
	}

	c, err := dateparse.Parse(remainder, opts)
	if err != nil {
		return nil, &UnknownUnitsError{Units: unitsStr, Reason: err.Error()}
	}
	ref, err := caldate.NewWithYearZero(k, c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second, c.Microsecond, hasYearZero)
	if err != nil {
		return nil, fmt.Errorf("invalid reference date in %q: %w", unitsStr, err)
	}
	return &Spec{Unit: u, Reference: ref}, nil
}

func parseUnit(tok string) (Unit, bool) {
	switch tok {
	case "microseconds", "microsecond", "us":
		return Microseconds, true
	case "milliseconds", "millisecond", "ms", "msec", "msecs":
		return Milliseconds, true
	case "seconds", "second", "sec", "secs", "s":
		return Seconds, true
	case "minutes", "minute", "min", "mins":
		return Minutes, true
	case "hours", "hour", "hr", "hrs", "h":
		return Hours, true
	case "days", "day", "d":
		return Days, true
	case "months", "month", "mon", "mons":
		return Months, true
	case "common_years", "common_year":
		return CommonYears, true
	default:
		return 0, false
	}
}
