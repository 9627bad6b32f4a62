package ordinal

import (
	"fmt"

	"github.com/caltime/caltime-go/pkg/calendar"
)

// Julian Day Number of 1582-10-15, the first day of the Gregorian
// reckoning in the mixed standard calendar.
const GregorianTransitionJDN = 2299161

// CivilToJDN is the offset from the civil ordinal (day 1 = 0001-01-01
// proleptic Gregorian) to the noon-referenced Julian Day Number.
const CivilToJDN = 1721425

// TransitionDateError reports a date inside the 1582-10-05..14 gap of the
// mixed Julian/Gregorian calendar, which never existed.
type TransitionDateError struct {
	Year  int64
	Month int
	Day   int
}

func (e *TransitionDateError) Error() string {
	return fmt.Sprintf("%04d-%02d-%02d falls in the Julian/Gregorian transition gap (1582-10-05..1582-10-14)",
		e.Year, e.Month, e.Day)
}

// floorDiv returns the quotient of a/b rounded toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod returns a - floorDiv(a,b)*b, always in [0,b) for b > 0.
func floorMod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// DayOfYear returns the 1-based day of the year for the given date.
func DayOfYear(k calendar.Kind, year int64, month, day int, hasYearZero bool) int {
	lengths := calendar.MonthLengths(k, year, hasYearZero)
	doy := day
	for i := 0; i < month-1; i++ {
		doy += lengths[i]
	}
	return doy
}

// civilFromYMD returns the proleptic Gregorian civil ordinal, with day 1
// at 0001-01-01. The year is astronomical (year 0 exists).
func civilFromYMD(y int64, doy int) int64 {
	return int64(doy) + 365*(y-1) + floorDiv(y-1, 4) - floorDiv(y-1, 100) + floorDiv(y-1, 400)
}

// ymdFromCivil inverts civilFromYMD.
func ymdFromCivil(ord int64) (year int64, month, day int) {
	z := ord + 305 // days since 0000-03-01
	era := floorDiv(z, 146097)
	doe := z - era*146097 // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 1461
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100) // [0, 365], March-based
	mp := (5*doy + 2) / 153
	day = int(doy - (153*mp+2)/5 + 1)
	if mp < 10 {
		month = int(mp + 3)
	} else {
		month = int(mp - 9)
	}
	year = y
	if month <= 2 {
		year++
	}
	return year, month, day
}

// julianJDN returns the Julian Day Number of a date in the Julian
// calendar. The year is astronomical.
func julianJDN(y int64, doy int) int64 {
	return int64(doy) + 365*(y+4800-1) + floorDiv(y+4800-1, 4) - 31777
}

// ymdFromJulianJDN inverts julianJDN.
func ymdFromJulianJDN(jdn int64) (year int64, month, day int) {
	c := jdn + 32082
	d := floorDiv(4*c+3, 1461)
	e := c - floorDiv(1461*d, 4)
	m := (5*e + 2) / 153
	day = int(e - (153*m+2)/5 + 1)
	month = int(m + 3 - 12*(m/10))
	year = d - 4800 + m/10
	return year, month, day
}

// fromAstronomical undoes the no-year-zero shift applied before the
// closed-form conversions: internal years <= 0 map back to year-1.
func fromAstronomical(y int64, hasYearZero bool) int64 {
	if !hasYearZero && y <= 0 {
		return y - 1
	}
	return y
}

// ToOrdinal converts a calendar date to its integer ordinal. For the
// standard calendar, dates inside the 1582 transition gap return a
// TransitionDateError unless skipTransition is set, in which case the
// date is read as its Julian namesake (10 days later in Gregorian terms).
func ToOrdinal(k calendar.Kind, year int64, month, day int, hasYearZero, skipTransition bool) (int64, error) {
	y := calendar.AstronomicalYear(year, hasYearZero)
	doy := DayOfYear(k, year, month, day, hasYearZero)

	if n, ok := k.FixedYearLength(); ok {
		return y*int64(n) + int64(doy) - 1, nil
	}

	switch k {
	case calendar.Decimal:
		return civilFromYMD(y, doy), nil
	case calendar.ProlepticGregorian:
		return civilFromYMD(y, doy) + CivilToJDN, nil
	case calendar.Julian, calendar.Excel1900, calendar.Excel1904:
		return julianJDN(y, doy), nil
	case calendar.Standard:
		if year == 1582 && month == 10 && day >= 5 && day <= 14 {
			if !skipTransition {
				return 0, &TransitionDateError{Year: year, Month: month, Day: day}
			}
			// Julian reading of the same name continues the day count
			// seamlessly across the gap.
			return julianJDN(y, doy), nil
		}
		if afterTransition(year, month, day) {
			return civilFromYMD(y, doy) + CivilToJDN, nil
		}
		return julianJDN(y, doy), nil
	default:
		panic(fmt.Sprintf("ordinal: unhandled calendar %v", k))
	}
}

func afterTransition(year int64, month, day int) bool {
	if year != 1582 {
		return year > 1582
	}
	if month != 10 {
		return month > 10
	}
	return day >= 15
}

// FromOrdinal converts an integer ordinal back to a calendar date. It is
// the exact inverse of ToOrdinal for every representable date.
func FromOrdinal(k calendar.Kind, ord int64, hasYearZero bool) (year int64, month, day int) {
	if n, ok := k.FixedYearLength(); ok {
		y := floorDiv(ord, int64(n))
		rem := int(ord - y*int64(n)) // [0, n)
		lengths := calendar.MonthLengths(k, fromAstronomical(y, hasYearZero), hasYearZero)
		month = 1
		for rem >= lengths[month-1] {
			rem -= lengths[month-1]
			month++
		}
		return fromAstronomical(y, hasYearZero), month, rem + 1
	}

	switch k {
	case calendar.Decimal:
		year, month, day = ymdFromCivil(ord)
	case calendar.ProlepticGregorian:
		year, month, day = ymdFromCivil(ord - CivilToJDN)
	case calendar.Julian, calendar.Excel1900, calendar.Excel1904:
		year, month, day = ymdFromJulianJDN(ord)
	case calendar.Standard:
		if ord >= GregorianTransitionJDN {
			year, month, day = ymdFromCivil(ord - CivilToJDN)
		} else {
			year, month, day = ymdFromJulianJDN(ord)
		}
	default:
		panic(fmt.Sprintf("ordinal: unhandled calendar %v", k))
	}
	return fromAstronomical(year, hasYearZero), month, day
}

// JDNOffset is the calendar-specific correction added to an ordinal to
// align it with the Julian Day Number convention, as used for weekday
// derivation and cross-representation comparison. The JDN-based calendars
// need none; the decimal calendars count civil days.
func JDNOffset(k calendar.Kind) int64 {
	if k.IsDecimal() {
		return CivilToJDN
	}
	return 0
}

// Weekday returns the ISO weekday (0 = Monday .. 6 = Sunday) of an
// ordinal in calendar k.
func Weekday(k calendar.Kind, ord int64) int {
	dow := int(floorMod(ord+JDNOffset(k)+1, 7))
	dow--
	if dow < 0 {
		dow = 6
	}
	return dow
}
