package dateparse

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports a date string that could not be normalized.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse date %q: %s", e.Input, e.Reason)
}

// Options control the disambiguation choices Parse makes.
type Options struct {
	// DayFirst reads slash-separated dates as day/month/year (French
	// order) instead of the default month/day/year (US order).
	DayFirst bool

	// PivotYear resolves two-digit years: they land in the 100-year
	// window ending at PivotYear. Zero selects the POSIX convention
	// (window ending 2068).
	PivotYear int
}

// Components is a parsed date, not yet validated against any calendar.
type Components struct {
	Year        int64
	Month       int
	Day         int
	Hour        int
	Minute      int
	Second      int
	Microsecond int
	HasTime     bool
}

// Parse splits a date string into components, resolving separator and
// field-order ambiguity per opts. No calendar validation happens here;
// out-of-range components are reported by the DateTime constructor.
func Parse(s string, opts Options) (Components, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return Components{}, &ParseError{Input: s, Reason: "empty string"}
	}

	datePart, timePart := splitDateTime(in)

	c, err := parseDate(datePart, opts)
	if err != nil {
		return Components{}, &ParseError{Input: s, Reason: err.Error()}
	}
	if timePart != "" {
		if err := parseTime(timePart, &c); err != nil {
			return Components{}, &ParseError{Input: s, Reason: err.Error()}
		}
		c.HasTime = true
	}
	return c, nil
}

// Normalize parses a date string and re-emits it in the canonical
// "YYYY-MM-DD" or "YYYY-MM-DD HH:MM:SS" form.
func Normalize(s string, opts Options) (string, error) {
	c, err := Parse(s, opts)
	if err != nil {
		return "", err
	}
	year := fmt.Sprintf("%04d", c.Year)
	if c.Year < 0 {
		year = fmt.Sprintf("-%04d", -c.Year)
	}
	out := fmt.Sprintf("%s-%02d-%02d", year, c.Month, c.Day)
	if c.HasTime {
		out += fmt.Sprintf(" %02d:%02d:%02d", c.Hour, c.Minute, c.Second)
	}
	return out, nil
}

// splitDateTime separates the date part from an optional time part,
// accepting a space or 'T' separator. A leading minus on the year is not
// a separator.
func splitDateTime(s string) (date, clock string) {
	if i := strings.IndexAny(s, " T"); i >= 0 {
		return s[:i], strings.TrimSpace(s[i+1:])
	}
	return s, ""
}

func parseDate(s string, opts Options) (Components, error) {
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	sep := ""
	for _, cand := range []string{"-", ".", "/"} {
		if strings.Contains(s, cand) {
			sep = cand
			break
		}
	}
	if sep == "" {
		return Components{}, fmt.Errorf("no date separator found")
	}
	fields := strings.Split(s, sep)
	if len(fields) != 3 {
		return Components{}, fmt.Errorf("expected 3 date fields, got %d", len(fields))
	}

	nums := make([]int64, 3)
	for i, f := range fields {
		n, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil || n < 0 {
			return Components{}, fmt.Errorf("bad date field %q", f)
		}
		nums[i] = n
	}

	var year int64
	var month, day int
	switch {
	case sep == "-" || len(fields[0]) >= 3:
		// ISO order, or an unambiguous wide year in front.
		year, month, day = nums[0], int(nums[1]), int(nums[2])
		year = widenYear(year, len(fields[0]), opts)
	case sep == ".":
		// Continental order: day.month.year.
		day, month, year = int(nums[0]), int(nums[1]), nums[2]
		year = widenYear(year, len(fields[2]), opts)
	default:
		// Slash order: US month/day unless DayFirst.
		if opts.DayFirst {
			day, month, year = int(nums[0]), int(nums[1]), nums[2]
		} else {
			month, day, year = int(nums[0]), int(nums[1]), nums[2]
		}
		year = widenYear(year, len(fields[2]), opts)
	}

	if neg {
		year = -year
	}
	return Components{Year: year, Month: month, Day: day}, nil
}

// widenYear resolves a two-digit year into the 100-year window ending at
// the pivot year. Wider years pass through untouched.
func widenYear(year int64, digits int, opts Options) int64 {
	if digits > 2 {
		return year
	}
	pivot := opts.PivotYear
	if pivot == 0 {
		pivot = 2068
	}
	century := int64(pivot) - int64(pivot)%100
	y := century + year
	if y > int64(pivot) {
		y -= 100
	}
	return y
}

func parseTime(s string, c *Components) error {
	fields := strings.Split(s, ":")
	if len(fields) < 2 || len(fields) > 3 {
		return fmt.Errorf("expected HH:MM or HH:MM:SS time, got %q", s)
	}
	h, err := strconv.Atoi(fields[0])
	if err != nil {
		return fmt.Errorf("bad hour %q", fields[0])
	}
	m, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("bad minute %q", fields[1])
	}
	c.Hour, c.Minute = h, m
	if len(fields) == 3 {
		sec := fields[2]
		frac := ""
		if i := strings.IndexByte(sec, '.'); i >= 0 {
			sec, frac = sec[:i], sec[i+1:]
		}
		v, err := strconv.Atoi(sec)
		if err != nil {
			return fmt.Errorf("bad second %q", fields[2])
		}
		c.Second = v
		if frac != "" {
			// Right-pad to microseconds; extra digits truncate.
			if len(frac) < 6 {
				frac += strings.Repeat("0", 6-len(frac))
			}
			us, err := strconv.Atoi(frac[:6])
			if err != nil {
				return fmt.Errorf("bad fractional second %q", fields[2])
			}
			c.Microsecond = us
		}
	}
	return nil
}
