package commands

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/caltime/caltime-go/pkg/caldate"
	"github.com/caltime/caltime-go/pkg/calendar"
	"github.com/caltime/caltime-go/pkg/codec"
	"github.com/caltime/caltime-go/pkg/dateparse"
)

// BatchJob is a YAML batch file: a list of conversion runs.
type BatchJob struct {
	Runs []BatchRun `yaml:"runs"`
}

// BatchRun is one conversion in a batch job. Exactly one of Decode and
// Encode must be set.
type BatchRun struct {
	Name     string    `yaml:"name"`
	Calendar string    `yaml:"calendar"`
	Units    string    `yaml:"units"`
	YearZero *bool     `yaml:"year_zero"`
	DayFirst bool      `yaml:"day_first"`
	Decode   []float64 `yaml:"decode"`
	Encode   []string  `yaml:"encode"`
}

// LoadBatchJob loads and parses a batch job from a YAML file.
func LoadBatchJob(path string) (*BatchJob, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var job BatchJob
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &job, nil
}

// RunBatch runs the batch command: execute every run of a YAML job file
// and print a report. Each invocation gets a run ID so reports from
// repeated jobs can be told apart.
func RunBatch(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	fs.Usage = func() {}
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	rest := fs.Args()
	if len(rest) != 1 {
		fmt.Fprintln(stderr, "Usage: caltime batch <job.yaml>")
		return exitCommandError
	}

	job, err := LoadBatchJob(rest[0])
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	fmt.Fprintf(stdout, "batch %s (%d runs)\n", uuid.New(), len(job.Runs))
	failures := 0
	for i, run := range job.Runs {
		name := run.Name
		if name == "" {
			name = fmt.Sprintf("run-%d", i+1)
		}
		if err := executeRun(&run, name, stdout); err != nil {
			fmt.Fprintf(stderr, "%s: error: %v\n", name, err)
			failures++
		}
	}
	if failures > 0 {
		fmt.Fprintf(stderr, "%d of %d runs failed\n", failures, len(job.Runs))
		return exitDataError
	}
	return exitSuccess
}

func executeRun(run *BatchRun, name string, stdout io.Writer) error {
	if (len(run.Decode) == 0) == (len(run.Encode) == 0) {
		return fmt.Errorf("exactly one of decode and encode must be set")
	}
	k, err := calendar.Parse(run.Calendar)
	if err != nil {
		return err
	}
	yz := calendar.DefaultHasYearZero(k)
	if run.YearZero != nil {
		yz = *run.YearZero
	}

	if len(run.Decode) > 0 {
		dates, err := codec.DecodeWithYearZero(run.Decode, run.Units, k, yz)
		if err != nil {
			return err
		}
		for i, dt := range dates {
			fmt.Fprintf(stdout, "%s\t%s\t%s\n", name, formatValue(run.Decode[i]),
				dt.ISOFormat(' ', caldate.GranularityMicroseconds))
		}
		return nil
	}

	popts := dateparse.Options{DayFirst: run.DayFirst}
	dates := make([]caldate.DateTime, 0, len(run.Encode))
	for _, s := range run.Encode {
		dt, err := parseDate(s, k, yz, popts)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", s, err)
		}
		dates = append(dates, dt)
	}
	values, err := codec.Encode(dates, run.Units)
	if err != nil {
		return err
	}
	for i, v := range values {
		fmt.Fprintf(stdout, "%s\t%s\t%s\n", name, run.Encode[i], formatValue(v))
	}
	return nil
}
