package caldate

import (
	"fmt"
	"strings"
)

// ISOGranularity selects how much of the time of day ISOFormat emits.
type ISOGranularity uint8

const (
	// GranularityDays emits the date only: "YYYY-MM-DD".
	GranularityDays ISOGranularity = iota + 1

	// GranularityHours appends "HH".
	GranularityHours

	// GranularityMinutes appends "HH:MM".
	GranularityMinutes

	// GranularitySeconds appends "HH:MM:SS".
	GranularitySeconds

	// GranularityMilliseconds appends "HH:MM:SS.mmm".
	GranularityMilliseconds

	// GranularityMicroseconds appends "HH:MM:SS.mmmmmm".
	GranularityMicroseconds
)

var weekdayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// yearString formats a year zero-padded to at least four digits, with a
// leading minus for negative years ("-0500", "12345").
func yearString(year int64) string {
	if year < 0 {
		return fmt.Sprintf("-%04d", -year)
	}
	return fmt.Sprintf("%04d", year)
}

// ISOFormat renders the date in ISO-8601 form with the given date/time
// separator and granularity. Years outside 0000..9999 widen or gain a
// sign as needed.
func (dt DateTime) ISOFormat(sep rune, g ISOGranularity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s-%02d-%02d", yearString(dt.year), dt.month, dt.day)
	if g <= GranularityDays || g > GranularityMicroseconds {
		return b.String()
	}
	b.WriteRune(sep)
	fmt.Fprintf(&b, "%02d", dt.hour)
	if g == GranularityHours {
		return b.String()
	}
	fmt.Fprintf(&b, ":%02d", dt.minute)
	if g == GranularityMinutes {
		return b.String()
	}
	fmt.Fprintf(&b, ":%02d", dt.second)
	switch g {
	case GranularityMilliseconds:
		fmt.Fprintf(&b, ".%03d", dt.microsecond/1000)
	case GranularityMicroseconds:
		fmt.Fprintf(&b, ".%06d", dt.microsecond)
	}
	return b.String()
}

// Format renders the date according to a strftime-style pattern. The
// formatter is self-contained, so it works for any representable year,
// including negative years and years wider than four digits, on every
// calendar kind (platform formatters cannot represent a 30th of February
// or a year -4713).
//
// Supported directives: %Y %y %m %d %e %j %H %I %p %M %S %a %A %b %B %%,
// plus %f (six-digit microseconds) at the end of the pattern only. Any
// other directive, or a non-trailing %f, returns an
// UnsupportedDirectiveError.
func (dt DateTime) Format(pattern string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		if i == len(pattern)-1 {
			return "", &UnsupportedDirectiveError{Directive: "%"}
		}
		i++
		switch pattern[i] {
		case 'Y':
			b.WriteString(yearString(dt.year))
		case 'y':
			fmt.Fprintf(&b, "%02d", fmod(dt.year, 100))
		case 'm':
			fmt.Fprintf(&b, "%02d", dt.month)
		case 'd':
			fmt.Fprintf(&b, "%02d", dt.day)
		case 'e':
			fmt.Fprintf(&b, "%2d", dt.day)
		case 'j':
			fmt.Fprintf(&b, "%03d", dt.dayOfYear)
		case 'H':
			fmt.Fprintf(&b, "%02d", dt.hour)
		case 'I':
			h := dt.hour % 12
			if h == 0 {
				h = 12
			}
			fmt.Fprintf(&b, "%02d", h)
		case 'p':
			if dt.hour < 12 {
				b.WriteString("AM")
			} else {
				b.WriteString("PM")
			}
		case 'M':
			fmt.Fprintf(&b, "%02d", dt.minute)
		case 'S':
			fmt.Fprintf(&b, "%02d", dt.second)
		case 'a':
			b.WriteString(weekdayNames[dt.weekday][:3])
		case 'A':
			b.WriteString(weekdayNames[dt.weekday])
		case 'b':
			b.WriteString(monthNames[dt.month-1][:3])
		case 'B':
			b.WriteString(monthNames[dt.month-1])
		case 'f':
			if i != len(pattern)-1 {
				return "", &UnsupportedDirectiveError{Directive: "%f (only supported at the end of the pattern)"}
			}
			fmt.Fprintf(&b, "%06d", dt.microsecond)
		case '%':
			b.WriteByte('%')
		default:
			return "", &UnsupportedDirectiveError{Directive: "%" + string(pattern[i])}
		}
	}
	return b.String(), nil
}
