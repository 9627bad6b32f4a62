package commands

import (
	"flag"
	"fmt"
	"io"

	"github.com/caltime/caltime-go/pkg/caldate"
	"github.com/caltime/caltime-go/pkg/calendar"
	"github.com/caltime/caltime-go/pkg/dateparse"
)

// CalcOptions configures the calc command.
type CalcOptions struct {
	Calendar string
	YearZero string
	DayFirst bool
	Args     []string
}

// RunCalc runs the calc command:
//
//	caltime calc add <date> <duration>
//	caltime calc sub <date> <duration>
//	caltime calc diff <date1> <date2>
//	caltime calc weekday <date>
func RunCalc(args []string, stdout, stderr io.Writer) int {
	opts, err := parseCalcArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	if len(opts.Args) < 2 {
		printCalcUsage(stderr)
		return exitCommandError
	}

	k, err := calendar.Parse(opts.Calendar)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	yz, err := resolveYearZero(opts.YearZero, k)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	popts := dateparse.Options{DayFirst: opts.DayFirst}

	op, rest := opts.Args[0], opts.Args[1:]
	dt, err := parseDate(rest[0], k, yz, popts)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing %q: %v\n", rest[0], err)
		return exitDataError
	}

	switch op {
	case "add", "sub":
		if len(rest) != 2 {
			printCalcUsage(stderr)
			return exitCommandError
		}
		d, err := ParseDuration(rest[1])
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
		if op == "sub" {
			d = d.Neg()
		}
		fmt.Fprintln(stdout, dt.Add(d).ISOFormat(' ', caldate.GranularityMicroseconds))
		return exitSuccess

	case "diff":
		if len(rest) != 2 {
			printCalcUsage(stderr)
			return exitCommandError
		}
		other, err := parseDate(rest[1], k, yz, popts)
		if err != nil {
			fmt.Fprintf(stderr, "Error parsing %q: %v\n", rest[1], err)
			return exitDataError
		}
		d, err := dt.Difference(other)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitDataError
		}
		fmt.Fprintln(stdout, d)
		return exitSuccess

	case "weekday":
		names := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
		fmt.Fprintf(stdout, "%s (day %d of year %d)\n", names[dt.Weekday()], dt.DayOfYear(), dt.Year())
		return exitSuccess

	default:
		printCalcUsage(stderr)
		return exitCommandError
	}
}

func parseCalcArgs(args []string) (CalcOptions, error) {
	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	opts := CalcOptions{}

	fs.StringVar(&opts.Calendar, "calendar", "standard", "Calendar name")
	fs.StringVar(&opts.YearZero, "year-zero", "", "Year-zero convention: true, false or empty for the calendar default")
	fs.BoolVar(&opts.DayFirst, "day-first", false, "Read slash-separated dates as day/month/year")

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.Args = fs.Args()
	return opts, nil
}

func printCalcUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: caltime calc [options] <operation> <date> [argument]

Operations:
  add <date> <duration>   Add a duration ([-]Nd[HH:MM:SS[.ffffff]])
  sub <date> <duration>   Subtract a duration
  diff <date1> <date2>    Exact duration from date2 to date1
  weekday <date>          ISO weekday and day of year

Options:
  -calendar <name>   Calendar name (default: standard)
  -year-zero <bool>  Year-zero convention (default: calendar default)
  -day-first         Read slash-separated dates as day/month/year`)
}
