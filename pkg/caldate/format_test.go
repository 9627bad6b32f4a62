package caldate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caltime/caltime-go/pkg/calendar"
)

func TestISOFormat(t *testing.T) {
	dt := mustDate(t, calendar.Standard, 1990, 1, 2, 3, 4, 5, 678901)
	tests := []struct {
		g    ISOGranularity
		want string
	}{
		{GranularityDays, "1990-01-02"},
		{GranularityHours, "1990-01-02 03"},
		{GranularityMinutes, "1990-01-02 03:04"},
		{GranularitySeconds, "1990-01-02 03:04:05"},
		{GranularityMilliseconds, "1990-01-02 03:04:05.678"},
		{GranularityMicroseconds, "1990-01-02 03:04:05.678901"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, dt.ISOFormat(' ', tt.g))
	}

	assert.Equal(t, "1990-01-02T03:04:05", dt.ISOFormat('T', GranularitySeconds))
}

func TestISOFormatWideAndNegativeYears(t *testing.T) {
	dt := mustDate(t, calendar.Julian, -500, 3, 4, 0, 0, 0, 0)
	assert.Equal(t, "-0500-03-04", dt.ISOFormat(' ', GranularityDays))

	dt = mustDate(t, calendar.ProlepticGregorian, 12345, 6, 7, 0, 0, 0, 0)
	assert.Equal(t, "12345-06-07", dt.ISOFormat(' ', GranularityDays))
}

func TestFormat(t *testing.T) {
	dt := mustDate(t, calendar.Standard, 1271, 3, 18, 19, 41, 34, 0)
	tests := []struct {
		pattern string
		want    string
	}{
		{"%Y-%m-%d %H:%M:%S", "1271-03-18 19:41:34"},
		{"%A, %B %e", "Wednesday, March 18"},
		{"%a %b %d '%y", "Wed Mar 18 '71"},
		{"%j", "077"},
		{"%I:%M %p", "07:41 PM"},
		{"100%%", "100%"},
	}
	for _, tt := range tests {
		got, err := dt.Format(tt.pattern)
		require.NoError(t, err, tt.pattern)
		assert.Equal(t, tt.want, got, tt.pattern)
	}
}

func TestFormatTwelveHourClock(t *testing.T) {
	midnight := mustDate(t, calendar.Standard, 2000, 1, 1, 0, 0, 0, 0)
	got, err := midnight.Format("%I %p")
	require.NoError(t, err)
	assert.Equal(t, "12 AM", got)

	noon := mustDate(t, calendar.Standard, 2000, 1, 1, 12, 0, 0, 0)
	got, err = noon.Format("%I %p")
	require.NoError(t, err)
	assert.Equal(t, "12 PM", got)
}

func TestFormatIdealizedCalendarDates(t *testing.T) {
	// Dates no platform formatter can represent.
	dt := mustDate(t, calendar.Day360, 2000, 2, 30, 0, 0, 0, 0)
	got, err := dt.Format("%Y-%m-%d")
	require.NoError(t, err)
	assert.Equal(t, "2000-02-30", got)

	dt = mustDate(t, calendar.Julian, -4713, 1, 1, 12, 0, 0, 0)
	got, err = dt.Format("%Y-%m-%d %H:%M")
	require.NoError(t, err)
	assert.Equal(t, "-4713-01-01 12:00", got)
}

func TestFormatMicroseconds(t *testing.T) {
	dt := mustDate(t, calendar.Standard, 2000, 1, 1, 0, 0, 0, 42)
	got, err := dt.Format("%H:%M:%S.%f")
	require.NoError(t, err)
	assert.Equal(t, "00:00:00.000042", got)

	// %f anywhere but the end is rejected.
	_, err = dt.Format("%f %H")
	require.Error(t, err)
	var uerr *UnsupportedDirectiveError
	assert.ErrorAs(t, err, &uerr)
}

func TestFormatUnsupportedDirective(t *testing.T) {
	dt := mustDate(t, calendar.Standard, 2000, 1, 1, 0, 0, 0, 0)
	for _, pattern := range []string{"%Q", "%G", "trailing %"} {
		_, err := dt.Format(pattern)
		require.Error(t, err, pattern)
		var uerr *UnsupportedDirectiveError
		assert.ErrorAs(t, err, &uerr, pattern)
	}
}
