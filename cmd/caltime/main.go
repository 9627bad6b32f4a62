// caltime is a CLI tool for multi-calendar date conversion and arithmetic.
package main

import (
	"fmt"
	"os"

	"github.com/caltime/caltime-go/cmd/caltime/commands"
	"github.com/caltime/caltime-go/cmd/caltime/interactive"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(exitCommandError)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var exitCode int
	switch cmd {
	case "convert":
		exitCode = commands.RunConvert(args, os.Stdout, os.Stderr)
	case "info":
		exitCode = commands.RunInfo(args, os.Stdout, os.Stderr)
	case "calc":
		exitCode = commands.RunCalc(args, os.Stdout, os.Stderr)
	case "batch":
		exitCode = commands.RunBatch(args, os.Stdout, os.Stderr)
	case "repl":
		exitCode = interactive.Run(os.Stdout, os.Stderr)
	case "help", "-h", "--help":
		printUsage()
		exitCode = exitSuccess
	case "version", "-v", "--version":
		fmt.Println("caltime version 0.1.0")
		exitCode = exitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		exitCode = exitCommandError
	}

	os.Exit(exitCode)
}

func printUsage() {
	fmt.Println(`caltime - multi-calendar date conversion and arithmetic

Usage:
  caltime <command> [options] [arguments...]

Commands:
  convert    Convert numbers to dates or dates to numbers under a units string
  info       Show calendar facts: leap years, month lengths, defaults
  calc       Add or subtract durations, difference two dates
  batch      Run a YAML batch job of conversions
  repl       Start the interactive calendar calculator

Options:
  -h, --help     Show this help message
  -v, --version  Show version information

Examples:
  caltime convert -calendar noleap -units "days since 2000-01-01" 0 365 730.5
  caltime convert -encode -calendar decimal 1990-01-01
  caltime info 360_day 2000
  caltime calc -calendar standard add 1582-10-04 1d
  caltime batch conversions.yaml

For command-specific help, run:
  caltime <command> --help`)
}
