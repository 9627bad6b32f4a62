package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caltime/caltime-go/pkg/caldate"
	"github.com/caltime/caltime-go/pkg/calendar"
	"github.com/caltime/caltime-go/pkg/dateparse"
)

func TestParseLinear(t *testing.T) {
	tests := []struct {
		name  string
		units string
		kind  calendar.Kind
		unit  Unit
		ref   string
	}{
		{"days", "days since 1990-01-01", calendar.Standard, Days, "1990-01-01"},
		{"seconds with time", "seconds since 1970-01-01 00:00:00", calendar.Standard, Seconds, "1970-01-01"},
		{"hour alias", "hrs since 2000-06-15", calendar.ProlepticGregorian, Hours, "2000-06-15"},
		{"minutes", "minutes since 1990-1-1", calendar.NoLeap, Minutes, "1990-01-01"},
		{"milliseconds", "ms since 1990-01-01", calendar.Julian, Milliseconds, "1990-01-01"},
		{"microseconds", "microseconds since 1990-01-01", calendar.Standard, Microseconds, "1990-01-01"},
		{"months on 360_day", "months since 2000-01-01", calendar.Day360, Months, "2000-01-01"},
		{"common years on noleap", "common_years since 2000-01-01", calendar.NoLeap, CommonYears, "2000-01-01"},
		{"case folded", "Days Since 1990-01-01", calendar.Standard, Days, "1990-01-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := Parse(tt.units, tt.kind, calendar.DefaultHasYearZero(tt.kind))
			require.NoError(t, err)
			assert.False(t, spec.Absolute)
			assert.Equal(t, tt.unit, spec.Unit)
			assert.Equal(t, tt.ref, spec.Reference.ISOFormat(' ', caldate.GranularityDays))
			assert.Equal(t, tt.kind, spec.Reference.Calendar())
		})
	}
}

func TestParseAbsolute(t *testing.T) {
	tests := []struct {
		units   string
		pattern Pattern
	}{
		{"day as %Y%m%d.%f", PatternDay},
		{"days as %Y%m%d.%f", PatternDay},
		{"month as %Y%m.%f", PatternMonth},
		{"year as %Y.%f", PatternYear},
	}
	for _, tt := range tests {
		spec, err := Parse(tt.units, calendar.Decimal, true)
		require.NoError(t, err, tt.units)
		assert.True(t, spec.Absolute)
		assert.Equal(t, tt.pattern, spec.Pattern)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		units string
		kind  calendar.Kind
	}{
		{"empty", "", calendar.Standard},
		{"too short", "days since", calendar.Standard},
		{"bad keyword", "days from 1990-01-01", calendar.Standard},
		{"bad unit", "fortnights since 1990-01-01", calendar.Standard},
		{"bad pattern", "year as %Y%j.%f", calendar.Decimal},
		{"unit pattern mismatch", "day as %Y.%f", calendar.Decimal},
		{"months off 360_day", "months since 2000-01-01", calendar.Standard},
		{"common years off noleap", "common_years since 2000-01-01", calendar.AllLeap},
		{"unparseable reference", "days since soon", calendar.Standard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.units, tt.kind, calendar.DefaultHasYearZero(tt.kind))
			require.Error(t, err)
			var uerr *UnknownUnitsError
			assert.ErrorAs(t, err, &uerr)
		})
	}
}

func TestParseInvalidReferenceDate(t *testing.T) {
	// The reference date is validated against the target calendar: there
	// is no February 30 outside the 360-day calendar.
	_, err := Parse("days since 2000-02-30", calendar.Standard, false)
	require.Error(t, err)

	_, err = Parse("days since 2000-02-30", calendar.Day360, true)
	assert.NoError(t, err)

	// A gap date cannot anchor a mixed-calendar axis.
	_, err = Parse("days since 1582-10-10", calendar.Standard, false)
	require.Error(t, err)
	_, err = Parse("days since 1582-10-10", calendar.ProlepticGregorian, true)
	assert.NoError(t, err)
}

func TestParseWithOptions(t *testing.T) {
	spec, err := ParseWithOptions("days since 2/1/1990", calendar.Standard, false,
		dateparse.Options{DayFirst: true})
	require.NoError(t, err)
	assert.Equal(t, 1, spec.Reference.Month())
	assert.Equal(t, 2, spec.Reference.Day())
}

func TestUnitMicros(t *testing.T) {
	assert.Equal(t, int64(1), Microseconds.Micros())
	assert.Equal(t, int64(1000), Milliseconds.Micros())
	assert.Equal(t, int64(86_400_000_000), Days.Micros())
	assert.Equal(t, 30*Days.Micros(), Months.Micros())
	assert.Equal(t, 365*Days.Micros(), CommonYears.Micros())
}

func TestUnitString(t *testing.T) {
	assert.Equal(t, "days", Days.String())
	assert.Equal(t, "common_years", CommonYears.String())
	assert.Equal(t, "%Y.%f", PatternYear.String())
}
