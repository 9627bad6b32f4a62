// Package interactive provides the interactive calendar calculator for
// the caltime CLI.
package interactive

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/caltime/caltime-go/cmd/caltime/commands"
	"github.com/caltime/caltime-go/pkg/caldate"
	"github.com/caltime/caltime-go/pkg/calendar"
	"github.com/caltime/caltime-go/pkg/codec"
	"github.com/caltime/caltime-go/pkg/dateparse"
)

// Calculator holds the REPL session state: the active calendar, its
// year-zero convention and the active units string.
type Calculator struct {
	kind     calendar.Kind
	yearZero bool
	units    string
	dayFirst bool

	rl     *readline.Instance
	stdout io.Writer
}

// Run starts the REPL and blocks until the user exits. It returns the
// process exit code.
func Run(stdout, stderr io.Writer) int {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "caltime> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to create readline: %v\n", err)
		return 1
	}
	defer rl.Close()

	c := &Calculator{
		kind:     calendar.Standard,
		yearZero: calendar.DefaultHasYearZero(calendar.Standard),
		rl:       rl,
		stdout:   stdout,
	}
	fmt.Fprintln(stdout, "caltime interactive calculator. Type 'help' for commands.")
	c.loop()
	return 0
}

func (c *Calculator) loop() {
	for {
		line, err := c.rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			return
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]
		switch cmd {
		case "exit", "quit":
			return
		case "help":
			c.printHelp()
		case "calendar":
			c.cmdCalendar(args)
		case "units":
			c.cmdUnits(strings.Join(args, " "))
		case "encode":
			c.cmdEncode(args)
		case "decode":
			c.cmdDecode(args)
		case "add", "sub":
			c.cmdAddSub(cmd, args)
		case "diff":
			c.cmdDiff(args)
		case "weekday":
			c.cmdWeekday(args)
		case "info":
			c.cmdInfo()
		default:
			fmt.Fprintf(c.stdout, "Unknown command: %s (try 'help')\n", cmd)
		}
	}
}

func (c *Calculator) printHelp() {
	fmt.Fprintln(c.stdout, `Commands:
  calendar <name> [year-zero]   Switch calendar (year-zero: true/false)
  units <units string>          Set the units ("" resets to the default)
  encode <date>...              Encode dates to numbers
  decode <number>...            Decode numbers to dates
  add <date> <duration>         Add a duration ([-]Nd[HH:MM:SS])
  sub <date> <duration>         Subtract a duration
  diff <date1> <date2>          Difference of two dates
  weekday <date>                ISO weekday of a date
  info                          Show the active calendar and units
  exit                          Leave the calculator`)
}

func (c *Calculator) cmdCalendar(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.stdout, "Usage: calendar <name> [year-zero]")
		return
	}
	k, err := calendar.Parse(args[0])
	if err != nil {
		fmt.Fprintf(c.stdout, "Error: %v\n", err)
		return
	}
	yz := calendar.DefaultHasYearZero(k)
	if len(args) > 1 {
		v, err := strconv.ParseBool(args[1])
		if err != nil {
			fmt.Fprintf(c.stdout, "Error: bad year-zero value %q\n", args[1])
			return
		}
		yz = v
	}
	c.kind, c.yearZero, c.units = k, yz, ""
	c.cmdInfo()
}

func (c *Calculator) cmdUnits(s string) {
	c.units = strings.TrimSpace(s)
	c.cmdInfo()
}

func (c *Calculator) cmdInfo() {
	u := c.units
	if u == "" {
		u = calendar.DefaultUnits(c.kind) + " (default)"
	}
	fmt.Fprintf(c.stdout, "calendar %s, year zero %v, units %s\n", c.kind, c.yearZero, u)
}

func (c *Calculator) parseDate(s string) (caldate.DateTime, bool) {
	comp, err := dateparse.Parse(s, dateparse.Options{DayFirst: c.dayFirst})
	if err != nil {
		fmt.Fprintf(c.stdout, "Error: %v\n", err)
		return caldate.DateTime{}, false
	}
	dt, err := caldate.NewWithYearZero(c.kind, comp.Year, comp.Month, comp.Day,
		comp.Hour, comp.Minute, comp.Second, comp.Microsecond, c.yearZero)
	if err != nil {
		fmt.Fprintf(c.stdout, "Error: %v\n", err)
		return caldate.DateTime{}, false
	}
	return dt, true
}

func (c *Calculator) cmdEncode(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(c.stdout, "Usage: encode <date>...")
		return
	}
	dates := make([]caldate.DateTime, 0, len(args))
	for _, a := range args {
		dt, ok := c.parseDate(a)
		if !ok {
			return
		}
		dates = append(dates, dt)
	}
	values, err := codec.Encode(dates, c.units)
	if err != nil {
		fmt.Fprintf(c.stdout, "Error: %v\n", err)
		return
	}
	for i, v := range values {
		fmt.Fprintf(c.stdout, "%s\t%s\n", args[i], strconv.FormatFloat(v, 'g', -1, 64))
	}
}

func (c *Calculator) cmdDecode(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(c.stdout, "Usage: decode <number>...")
		return
	}
	values := make([]float64, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			fmt.Fprintf(c.stdout, "Error: %q is not a number\n", a)
			return
		}
		values = append(values, v)
	}
	dates, err := codec.DecodeWithYearZero(values, c.units, c.kind, c.yearZero)
	if err != nil {
		fmt.Fprintf(c.stdout, "Error: %v\n", err)
		return
	}
	for i, dt := range dates {
		fmt.Fprintf(c.stdout, "%s\t%s\n", args[i], dt.ISOFormat(' ', caldate.GranularityMicroseconds))
	}
}

func (c *Calculator) cmdAddSub(op string, args []string) {
	if len(args) != 2 {
		fmt.Fprintf(c.stdout, "Usage: %s <date> <duration>\n", op)
		return
	}
	dt, ok := c.parseDate(args[0])
	if !ok {
		return
	}
	d, err := commands.ParseDuration(args[1])
	if err != nil {
		fmt.Fprintf(c.stdout, "Error: %v\n", err)
		return
	}
	if op == "sub" {
		d = d.Neg()
	}
	fmt.Fprintln(c.stdout, dt.Add(d).ISOFormat(' ', caldate.GranularityMicroseconds))
}

func (c *Calculator) cmdDiff(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(c.stdout, "Usage: diff <date1> <date2>")
		return
	}
	a, ok := c.parseDate(args[0])
	if !ok {
		return
	}
	b, ok := c.parseDate(args[1])
	if !ok {
		return
	}
	d, err := a.Difference(b)
	if err != nil {
		fmt.Fprintf(c.stdout, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(c.stdout, d)
}

func (c *Calculator) cmdWeekday(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.stdout, "Usage: weekday <date>")
		return
	}
	dt, ok := c.parseDate(args[0])
	if !ok {
		return
	}
	names := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	fmt.Fprintln(c.stdout, names[dt.Weekday()])
}
