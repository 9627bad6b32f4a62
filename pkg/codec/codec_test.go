package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caltime/caltime-go/pkg/caldate"
	"github.com/caltime/caltime-go/pkg/calendar"
	"github.com/caltime/caltime-go/pkg/units"
)

func date(t *testing.T, k calendar.Kind, year int64, month, day, hour, minute, second, micro int) caldate.DateTime {
	t.Helper()
	dt, err := caldate.New(k, year, month, day, hour, minute, second, micro)
	require.NoError(t, err)
	return dt
}

func iso(dt caldate.DateTime) string {
	return dt.ISOFormat(' ', caldate.GranularityMicroseconds)
}

func TestEncodeLinear(t *testing.T) {
	tests := []struct {
		name  string
		units string
		kind  calendar.Kind
		dt    caldate.DateTime
		want  float64
	}{
		{"epoch is zero", "days since 1990-01-01", calendar.Standard,
			date(t, calendar.Standard, 1990, 1, 1, 0, 0, 0, 0), 0},
		{"next day", "days since 1990-01-01", calendar.Standard,
			date(t, calendar.Standard, 1990, 1, 2, 0, 0, 0, 0), 1},
		{"noon fraction", "days since 1990-01-01", calendar.Standard,
			date(t, calendar.Standard, 1990, 1, 2, 12, 0, 0, 0), 1.5},
		{"before epoch", "days since 1990-01-01", calendar.Standard,
			date(t, calendar.Standard, 1989, 12, 31, 0, 0, 0, 0), -1},
		{"hours", "hours since 1990-01-01", calendar.Standard,
			date(t, calendar.Standard, 1990, 1, 2, 6, 0, 0, 0), 30},
		{"seconds", "seconds since 1970-01-01 00:00:00", calendar.Standard,
			date(t, calendar.Standard, 1970, 1, 2, 0, 0, 1, 0), 86401},
		{"across the gap", "days since 1582-10-01", calendar.Standard,
			date(t, calendar.Standard, 1582, 10, 15, 0, 0, 0, 0), 4},
		{"months on 360_day", "months since 2000-01-01", calendar.Day360,
			date(t, calendar.Day360, 2000, 3, 1, 0, 0, 0, 0), 2},
		{"common years on noleap", "common_years since 2000-01-01", calendar.NoLeap,
			date(t, calendar.NoLeap, 2003, 1, 1, 0, 0, 0, 0), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode([]caldate.DateTime{tt.dt}, tt.units)
			require.NoError(t, err)
			assert.Equal(t, []float64{tt.want}, got)
		})
	}
}

func TestDecodeLinear(t *testing.T) {
	dates, err := Decode([]float64{0, 1, 1.5, -1, 366}, "days since 1990-01-01", calendar.Standard)
	require.NoError(t, err)
	want := []string{
		"1990-01-01 00:00:00.000000",
		"1990-01-02 00:00:00.000000",
		"1990-01-02 12:00:00.000000",
		"1989-12-31 00:00:00.000000",
		"1991-01-02 00:00:00.000000",
	}
	for i, dt := range dates {
		assert.Equal(t, want[i], iso(dt))
	}
}

func TestRoundTripLinear(t *testing.T) {
	// Values whose fractions are exact in binary round-trip to the
	// microsecond.
	unitsStr := "hours since 1990-01-01 00:00:00"
	for _, k := range []calendar.Kind{
		calendar.Standard, calendar.Julian, calendar.ProlepticGregorian,
		calendar.NoLeap, calendar.AllLeap, calendar.Day360,
	} {
		in := []caldate.DateTime{
			date(t, k, 1990, 1, 1, 0, 0, 0, 0),
			date(t, k, 1990, 2, 28, 6, 0, 0, 0),
			date(t, k, 1992, 12, 1, 12, 0, 0, 0),
			date(t, k, 1980, 7, 15, 18, 0, 0, 0),
		}
		values, err := Encode(in, unitsStr)
		require.NoError(t, err, "%s", k)
		out, err := DecodeWithYearZero(values, unitsStr, k, in[0].HasYearZero())
		require.NoError(t, err, "%s", k)
		for i := range in {
			assert.Equal(t, iso(in[i]), iso(out[i]), "%s value %v", k, values[i])
		}
	}
}

func TestRoundTripMicroseconds(t *testing.T) {
	// Sub-second precision survives when the unit is small enough that
	// the float mantissa covers the span exactly.
	unitsStr := "seconds since 2000-01-01 00:00:00"
	in := date(t, calendar.Standard, 2000, 1, 1, 0, 0, 1, 250000)
	values, err := Encode([]caldate.DateTime{in}, unitsStr)
	require.NoError(t, err)
	assert.Equal(t, 1.25, values[0])

	out, err := Decode(values, unitsStr, calendar.Standard)
	require.NoError(t, err)
	assert.Equal(t, iso(in), iso(out[0]))
}

func TestEncodeDefaultUnits(t *testing.T) {
	// An empty units string selects the calendar default.
	serial, err := Encode([]caldate.DateTime{date(t, calendar.Excel1900, 1900, 1, 1, 0, 0, 0, 0)}, "")
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, serial)

	serial, err = Encode([]caldate.DateTime{date(t, calendar.Excel1900, 1900, 3, 1, 0, 0, 0, 0)}, "")
	require.NoError(t, err)
	assert.Equal(t, []float64{61}, serial)

	serial, err = Encode([]caldate.DateTime{date(t, calendar.Excel1904, 1904, 1, 2, 0, 0, 0, 0)}, "")
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, serial)

	// The decimal default is the fractional year.
	v, err := Encode([]caldate.DateTime{date(t, calendar.Decimal, 1990, 1, 1, 0, 0, 0, 0)}, "")
	require.NoError(t, err)
	assert.Equal(t, []float64{1990}, v)
}

func TestFractionalYear(t *testing.T) {
	// 1990.5 is the exact middle of a 365-day year: day 182 plus 12 hours
	// puts it at noon on July 2.
	dates, err := Decode([]float64{1990.5}, "", calendar.Decimal)
	require.NoError(t, err)
	assert.Equal(t, "1990-07-02 12:00:00.000000", iso(dates[0]))

	// And it encodes back to exactly 1990.5.
	v, err := Encode(dates, "")
	require.NoError(t, err)
	assert.Equal(t, []float64{1990.5}, v)

	// In decimal360 the same fraction lands mid-year on the 360-day grid.
	dates, err = Decode([]float64{2000.5}, "", calendar.Decimal360)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), dates[0].Year())
	assert.Equal(t, 7, dates[0].Month())
	assert.Equal(t, 1, dates[0].Day())
}

func TestAbsoluteDayPattern(t *testing.T) {
	unitsStr := "day as %Y%m%d.%f"
	in := date(t, calendar.Decimal, 1990, 1, 2, 12, 0, 0, 0)
	v, err := Encode([]caldate.DateTime{in}, unitsStr)
	require.NoError(t, err)
	assert.Equal(t, []float64{19900102.5}, v)

	out, err := Decode(v, unitsStr, calendar.Decimal)
	require.NoError(t, err)
	assert.Equal(t, iso(in), iso(out[0]))
}

func TestAbsoluteMonthPattern(t *testing.T) {
	unitsStr := "month as %Y%m.%f"
	// Mid-month: day 16 of a 30-day month at midnight is fraction 0.5.
	in := date(t, calendar.Decimal360, 2000, 4, 16, 0, 0, 0, 0)
	v, err := Encode([]caldate.DateTime{in}, unitsStr)
	require.NoError(t, err)
	assert.Equal(t, []float64{200004.5}, v)

	out, err := Decode(v, unitsStr, calendar.Decimal360)
	require.NoError(t, err)
	assert.Equal(t, iso(in), iso(out[0]))
}

func TestDecodeNonFinite(t *testing.T) {
	nan := 0.0
	nan /= nan
	_, err := Decode([]float64{nan}, "days since 1990-01-01", calendar.Standard)
	assert.Error(t, err)
	_, err = Decode([]float64{nan}, "", calendar.Decimal)
	assert.Error(t, err)
}

func TestEncodeCalendarMismatch(t *testing.T) {
	a := date(t, calendar.Standard, 1990, 1, 1, 0, 0, 0, 0)
	b := date(t, calendar.NoLeap, 1990, 1, 1, 0, 0, 0, 0)
	_, err := Encode([]caldate.DateTime{a, b}, "days since 1990-01-01")
	assert.ErrorIs(t, err, caldate.ErrCalendarMismatch)
}

func TestEncodeEmpty(t *testing.T) {
	v, err := Encode(nil, "days since 1990-01-01")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDecodeComponents(t *testing.T) {
	values := []float64{0, 1.5, 400}
	unitsStr := "days since 1990-01-01"

	c, err := DecodeComponents(values, unitsStr, calendar.Standard)
	require.NoError(t, err)
	dates, err := Decode(values, unitsStr, calendar.Standard)
	require.NoError(t, err)

	for i, dt := range dates {
		assert.Equal(t, dt.Year(), c.Year[i])
		assert.Equal(t, dt.Month(), c.Month[i])
		assert.Equal(t, dt.Day(), c.Day[i])
		assert.Equal(t, dt.Hour(), c.Hour[i])
		assert.Equal(t, dt.Minute(), c.Minute[i])
		assert.Equal(t, dt.Second(), c.Second[i])
		assert.Equal(t, dt.Microsecond(), c.Microsecond[i])
	}
}

func TestSplitValue(t *testing.T) {
	w, f := splitValue(1.5, caldate.MicrosPerDay)
	assert.Equal(t, int64(1), w)
	assert.Equal(t, caldate.MicrosPerDay/2, f)

	w, f = splitValue(-0.5, caldate.MicrosPerDay)
	assert.Equal(t, int64(-1), w)
	assert.Equal(t, caldate.MicrosPerDay/2, f)

	w, f = splitValue(3, units.Days.Micros())
	assert.Equal(t, int64(3), w)
	assert.Equal(t, int64(0), f)
}
