package commands

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/caltime/caltime-go/pkg/calendar"
)

// RunInfo runs the info command: facts about a calendar, optionally for
// a specific year.
func RunInfo(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	fs.Usage = func() {}
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	rest := fs.Args()
	if len(rest) < 1 {
		fmt.Fprintln(stderr, "Usage: caltime info <calendar> [year]")
		return exitCommandError
	}

	k, err := calendar.Parse(rest[0])
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitDataError
	}

	fmt.Fprintf(stdout, "calendar:        %s\n", k)
	fmt.Fprintf(stdout, "family:          %s\n", family(k))
	fmt.Fprintf(stdout, "year zero:       %v (default)\n", calendar.DefaultHasYearZero(k))
	fmt.Fprintf(stdout, "default units:   %s\n", calendar.DefaultUnits(k))

	if len(rest) > 1 {
		year, err := strconv.ParseInt(rest[1], 10, 64)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %q is not a year\n", rest[1])
			return exitCommandError
		}
		yz := calendar.DefaultHasYearZero(k)
		if year == 0 && !yz {
			fmt.Fprintf(stderr, "Error: year 0 does not exist in the %s calendar\n", k)
			return exitDataError
		}
		fmt.Fprintf(stdout, "year %d:\n", year)
		fmt.Fprintf(stdout, "  leap:          %v\n", calendar.IsLeapYear(k, year, yz))
		fmt.Fprintf(stdout, "  days:          %d\n", calendar.DaysInYear(k, year, yz))
		fmt.Fprintf(stdout, "  month lengths: %v\n", calendar.MonthLengths(k, year, yz))
	}
	return exitSuccess
}

func family(k calendar.Kind) string {
	switch {
	case k.IsExcel():
		return "excel"
	case k.IsDecimal():
		return "decimal"
	default:
		return "cf"
	}
}
