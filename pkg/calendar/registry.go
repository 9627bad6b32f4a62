package calendar

// Month lengths for a non-leap year in calendars with real month shapes.
var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Month lengths for the 360-day calendars.
var monthDays360 = [12]int{30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}

// AstronomicalYear maps a calendar year to astronomical numbering. When
// the calendar has no year 0, year -1 precedes year 1 directly, so every
// negative year is shifted up by one before any leap or month-length rule
// is applied.
func AstronomicalYear(year int64, hasYearZero bool) int64 {
	if !hasYearZero && year < 0 {
		return year + 1
	}
	return year
}

func gregorianLeap(y int64) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

func julianLeap(y int64) bool {
	return y%4 == 0
}

// IsLeapYear reports whether the given year is a leap year in calendar k
// under the given year-zero convention.
func IsLeapYear(k Kind, year int64, hasYearZero bool) bool {
	y := AstronomicalYear(year, hasYearZero)
	switch k {
	case Standard:
		// Julian rules apply up to the 1582 transition year.
		if y < 1582 {
			return julianLeap(y)
		}
		return gregorianLeap(y)
	case ProlepticGregorian, Decimal:
		return gregorianLeap(y)
	case Julian, Excel1900, Excel1904:
		// The pure %4 rule. For the Excel calendars this is the historical
		// Excel/Lotus behavior (1900 leap), kept for compatibility.
		return julianLeap(y)
	case AllLeap, Decimal366:
		return true
	default:
		// NoLeap, Day360, Decimal360, Decimal365.
		return false
	}
}

// MonthLengths returns the lengths of the twelve months of the given year
// in calendar k.
func MonthLengths(k Kind, year int64, hasYearZero bool) [12]int {
	if k == Day360 || k == Decimal360 {
		return monthDays360
	}
	m := monthDays
	if IsLeapYear(k, year, hasYearZero) {
		m[1] = 29
	}
	return m
}

// DaysInMonth returns the length of the given month (1..12).
func DaysInMonth(k Kind, year int64, month int, hasYearZero bool) int {
	return MonthLengths(k, year, hasYearZero)[month-1]
}

// DaysInYear returns the total number of days in the given year.
func DaysInYear(k Kind, year int64, hasYearZero bool) int {
	if n, ok := k.FixedYearLength(); ok {
		return n
	}
	if IsLeapYear(k, year, hasYearZero) {
		return 366
	}
	return 365
}

// DefaultHasYearZero returns the default year-zero convention for k:
// true for the proleptic Gregorian, idealized and decimal calendars,
// false for the real-world and Excel calendars.
func DefaultHasYearZero(k Kind) bool {
	switch k {
	case Standard, Julian, Excel1900, Excel1904:
		return false
	default:
		return true
	}
}

// YearZeroSelectable reports whether the year-zero convention may be
// chosen for k. The Excel calendars are serial-date conventions with a
// fixed epoch; requesting a year 0 for them is an error, never a no-op.
func YearZeroSelectable(k Kind) bool {
	return !k.IsExcel()
}

// DefaultUnits returns the units string assumed when none is given.
// The Excel epochs are fixed by the file formats; the CF calendars use
// the modified-Julian-date epoch common in scientific datasets; the
// decimal calendars are absolute fractional years and need no reference.
func DefaultUnits(k Kind) string {
	switch k {
	case Excel1900:
		return "days since 1899-12-31 00:00:00"
	case Excel1904:
		return "days since 1903-12-31 00:00:00"
	case Decimal, Decimal360, Decimal365, Decimal366:
		return "year as %Y.%f"
	default:
		return "days since 1858-11-17 00:00:00"
	}
}
