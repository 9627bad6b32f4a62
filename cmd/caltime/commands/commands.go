// Package commands implements the caltime CLI subcommands.
package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/caltime/caltime-go/pkg/caldate"
	"github.com/caltime/caltime-go/pkg/calendar"
	"github.com/caltime/caltime-go/pkg/dateparse"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
	exitDataError    = 2
)

// resolveYearZero maps the tri-state -year-zero flag value to a
// convention: "" means the calendar default.
func resolveYearZero(flagVal string, k calendar.Kind) (bool, error) {
	switch flagVal {
	case "":
		return calendar.DefaultHasYearZero(k), nil
	case "true", "yes", "1":
		return true, nil
	case "false", "no", "0":
		return false, nil
	default:
		return false, fmt.Errorf("bad -year-zero value %q (want true, false or empty)", flagVal)
	}
}

// parseDate builds a DateTime from a date string in the given calendar.
func parseDate(s string, k calendar.Kind, hasYearZero bool, opts dateparse.Options) (caldate.DateTime, error) {
	c, err := dateparse.Parse(s, opts)
	if err != nil {
		return caldate.DateTime{}, err
	}
	return caldate.NewWithYearZero(k, c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second, c.Microsecond, hasYearZero)
}

// ParseDuration reads a duration of the form "[-]Nd", "[-]HH:MM:SS[.ffffff]"
// or "[-]NdHH:MM:SS[.ffffff]".
func ParseDuration(s string) (caldate.Duration, error) {
	in := strings.TrimSpace(s)
	neg := strings.HasPrefix(in, "-")
	if neg {
		in = in[1:]
	}

	var days int64
	rest := in
	if i := strings.IndexByte(in, 'd'); i >= 0 {
		n, err := strconv.ParseInt(in[:i], 10, 64)
		if err != nil {
			return caldate.Duration{}, fmt.Errorf("bad day count in duration %q", s)
		}
		days = n
		rest = in[i+1:]
	}

	var seconds, micros int64
	if rest != "" {
		fields := strings.Split(rest, ":")
		if len(fields) != 3 {
			return caldate.Duration{}, fmt.Errorf("bad duration %q (want [-]Nd[HH:MM:SS])", s)
		}
		sec := fields[2]
		frac := ""
		if i := strings.IndexByte(sec, '.'); i >= 0 {
			sec, frac = sec[:i], sec[i+1:]
		}
		h, err1 := strconv.Atoi(fields[0])
		m, err2 := strconv.Atoi(fields[1])
		sc, err3 := strconv.Atoi(sec)
		if err1 != nil || err2 != nil || err3 != nil {
			return caldate.Duration{}, fmt.Errorf("bad duration %q", s)
		}
		seconds = int64(h)*3600 + int64(m)*60 + int64(sc)
		if frac != "" {
			if len(frac) < 6 {
				frac += strings.Repeat("0", 6-len(frac))
			}
			us, err := strconv.Atoi(frac[:6])
			if err != nil {
				return caldate.Duration{}, fmt.Errorf("bad duration %q", s)
			}
			micros = int64(us)
		}
	}

	if neg {
		days, seconds, micros = -days, -seconds, -micros
	}
	return caldate.NewDuration(days, seconds, micros), nil
}

// formatValue prints an encoded number without trailing float noise.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
