package dateparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts Options
		want Components
	}{
		{"iso date", "1990-01-02", Options{}, Components{Year: 1990, Month: 1, Day: 2}},
		{"iso datetime", "1990-01-02 03:04:05", Options{},
			Components{Year: 1990, Month: 1, Day: 2, Hour: 3, Minute: 4, Second: 5, HasTime: true}},
		{"t separator", "1990-01-02T03:04:05", Options{},
			Components{Year: 1990, Month: 1, Day: 2, Hour: 3, Minute: 4, Second: 5, HasTime: true}},
		{"hours and minutes only", "1990-01-02 03:04", Options{},
			Components{Year: 1990, Month: 1, Day: 2, Hour: 3, Minute: 4, HasTime: true}},
		{"fractional seconds", "1990-01-02 00:00:00.25", Options{},
			Components{Year: 1990, Month: 1, Day: 2, Microsecond: 250000, HasTime: true}},
		{"fractional seconds truncate", "1990-01-02 00:00:00.1234567", Options{},
			Components{Year: 1990, Month: 1, Day: 2, Microsecond: 123456, HasTime: true}},
		{"negative year", "-0500-03-04", Options{}, Components{Year: -500, Month: 3, Day: 4}},
		{"wide year", "12345-06-07", Options{}, Components{Year: 12345, Month: 6, Day: 7}},
		{"us slashes", "1/2/1990", Options{}, Components{Year: 1990, Month: 1, Day: 2}},
		{"french slashes", "1/2/1990", Options{DayFirst: true}, Components{Year: 1990, Month: 2, Day: 1}},
		{"continental dots", "2.1.1990", Options{}, Components{Year: 1990, Month: 1, Day: 2}},
		{"dots with wide year first", "1990.1.2", Options{}, Components{Year: 1990, Month: 1, Day: 2}},
		{"two digit year posix pivot", "1/2/69", Options{}, Components{Year: 1969, Month: 1, Day: 2}},
		{"two digit year below pivot", "1/2/68", Options{}, Components{Year: 2068, Month: 1, Day: 2}},
		{"two digit year custom pivot", "1/2/30", Options{PivotYear: 2000}, Components{Year: 1930, Month: 1, Day: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"1990",
		"1990-01",
		"1990-01-02-03",
		"1990-01-xx",
		"1990-01-02 3",
		"1990-01-02 3:4:5:6",
		"1990-01-02 aa:00",
	} {
		_, err := Parse(in, Options{})
		require.Error(t, err, "%q", in)
		var perr *ParseError
		assert.ErrorAs(t, err, &perr, "%q", in)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1/2/1990", "1990-01-02"},
		{"1990-1-2 3:4", "1990-01-02 03:04:00"},
		{"-500-03-04", "-0500-03-04"},
		{"2.1.1990", "1990-01-02"},
	}
	for _, tt := range tests {
		got, err := Normalize(tt.in, Options{})
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
