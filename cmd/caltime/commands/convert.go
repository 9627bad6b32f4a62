package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/caltime/caltime-go/pkg/caldate"
	"github.com/caltime/caltime-go/pkg/calendar"
	"github.com/caltime/caltime-go/pkg/codec"
	"github.com/caltime/caltime-go/pkg/dateparse"
	"github.com/caltime/caltime-go/pkg/wire"
)

// ConvertOptions configures the convert command.
type ConvertOptions struct {
	Units    string
	Calendar string
	YearZero string // "", "true" or "false"
	DayFirst bool
	Encode   bool
	CBOROut  string // write the values as a CBOR batch
	CBORIn   string // read values from a CBOR batch instead of args
	Args     []string
}

// RunConvert runs the convert command: numbers to dates by default,
// dates to numbers with -encode.
func RunConvert(args []string, stdout, stderr io.Writer) int {
	opts, err := parseConvertArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
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

	if opts.Encode {
		return runEncode(opts, k, yz, stdout, stderr)
	}
	return runDecode(opts, k, yz, stdout, stderr)
}

func runEncode(opts ConvertOptions, k calendar.Kind, yz bool, stdout, stderr io.Writer) int {
	if len(opts.Args) == 0 {
		fmt.Fprintln(stderr, "Error: no dates to encode")
		return exitCommandError
	}
	popts := dateparse.Options{DayFirst: opts.DayFirst}
	dates := make([]caldate.DateTime, 0, len(opts.Args))
	for _, a := range opts.Args {
		dt, err := parseDate(a, k, yz, popts)
		if err != nil {
			fmt.Fprintf(stderr, "Error parsing %q: %v\n", a, err)
			return exitDataError
		}
		dates = append(dates, dt)
	}
	values, err := codec.Encode(dates, opts.Units)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitDataError
	}
	for i, v := range values {
		fmt.Fprintf(stdout, "%s\t%s\n", opts.Args[i], formatValue(v))
	}
	if opts.CBOROut != "" {
		if err := writeBatch(opts, k.String(), yz, values); err != nil {
			fmt.Fprintf(stderr, "Error writing batch: %v\n", err)
			return exitCommandError
		}
		fmt.Fprintf(stdout, "Wrote %d values to %s\n", len(values), opts.CBOROut)
	}
	return exitSuccess
}

func runDecode(opts ConvertOptions, k calendar.Kind, yz bool, stdout, stderr io.Writer) int {
	values, unitsStr := []float64(nil), opts.Units
	switch {
	case opts.CBORIn != "":
		data, err := os.ReadFile(opts.CBORIn)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
		b, err := wire.DecodeBatch(data)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitDataError
		}
		k2, err := b.Kind()
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitDataError
		}
		k, yz, unitsStr, values = k2, b.YearZero(k2), b.Units, b.Values
	case len(opts.Args) > 0:
		for _, a := range opts.Args {
			v, err := strconv.ParseFloat(a, 64)
			if err != nil {
				fmt.Fprintf(stderr, "Error: %q is not a number\n", a)
				return exitCommandError
			}
			values = append(values, v)
		}
	default:
		fmt.Fprintln(stderr, "Error: no values to decode")
		return exitCommandError
	}

	dates, err := codec.DecodeWithYearZero(values, unitsStr, k, yz)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitDataError
	}
	for i, dt := range dates {
		fmt.Fprintf(stdout, "%s\t%s\n", formatValue(values[i]),
			dt.ISOFormat(' ', caldate.GranularityMicroseconds))
	}
	return exitSuccess
}

func writeBatch(opts ConvertOptions, calName string, yz bool, values []float64) error {
	b := &wire.Batch{Units: opts.Units, Calendar: calName, Values: values}
	b.HasYearZero = &yz
	data, err := wire.EncodeBatch(b)
	if err != nil {
		return err
	}
	return os.WriteFile(opts.CBOROut, data, 0644)
}

func parseConvertArgs(args []string) (ConvertOptions, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	opts := ConvertOptions{}

	fs.StringVar(&opts.Units, "units", "", "Units string (default: the calendar's default units)")
	fs.StringVar(&opts.Calendar, "calendar", "standard", "Calendar name")
	fs.StringVar(&opts.YearZero, "year-zero", "", "Year-zero convention: true, false or empty for the calendar default")
	fs.BoolVar(&opts.DayFirst, "day-first", false, "Read slash-separated dates as day/month/year")
	fs.BoolVar(&opts.Encode, "encode", false, "Encode date strings to numbers instead of decoding")
	fs.StringVar(&opts.CBOROut, "cbor-out", "", "Write encoded values to a CBOR batch file")
	fs.StringVar(&opts.CBORIn, "cbor-in", "", "Decode values from a CBOR batch file")

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.Args = fs.Args()
	return opts, nil
}
