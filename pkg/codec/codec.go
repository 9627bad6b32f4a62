package codec

import (
	"fmt"
	"math"

	"github.com/caltime/caltime-go/pkg/caldate"
	"github.com/caltime/caltime-go/pkg/calendar"
	"github.com/caltime/caltime-go/pkg/units"
)

// resolveSpec parses a units string, falling back to the calendar's
// default units when the string is empty.
func resolveSpec(unitsStr string, k calendar.Kind, hasYearZero bool) (*units.Spec, error) {
	if unitsStr == "" {
		unitsStr = calendar.DefaultUnits(k)
	}
	return units.Parse(unitsStr, k, hasYearZero)
}

// Encode converts dates to numbers under the given units string, using
// the calendar and year-zero convention the dates are bound to. All
// dates must share one convention. An empty units string selects the
// calendar's default units: the serial epochs for Excel, the fractional
// year for the decimal calendars.
func Encode(dates []caldate.DateTime, unitsStr string) ([]float64, error) {
	if len(dates) == 0 {
		return nil, nil
	}
	k, yz := dates[0].Calendar(), dates[0].HasYearZero()
	spec, err := resolveSpec(unitsStr, k, yz)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(dates))
	for i, dt := range dates {
		if dt.Calendar() != k || dt.HasYearZero() != yz {
			return nil, caldate.ErrCalendarMismatch
		}
		out[i], err = EncodeDate(dt, spec)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// EncodeDate converts a single date to its numeric value under a parsed
// units spec.
func EncodeDate(dt caldate.DateTime, spec *units.Spec) (float64, error) {
	if spec.Absolute {
		return encodeAbsolute(dt, spec.Pattern)
	}
	return encodeLinear(dt, spec)
}

// Decode converts numbers back to dates under the given units string,
// calendar and the calendar's default year-zero convention.
func Decode(values []float64, unitsStr string, k calendar.Kind) ([]caldate.DateTime, error) {
	return DecodeWithYearZero(values, unitsStr, k, calendar.DefaultHasYearZero(k))
}

// DecodeWithYearZero is Decode with an explicit year-zero convention.
func DecodeWithYearZero(values []float64, unitsStr string, k calendar.Kind, hasYearZero bool) ([]caldate.DateTime, error) {
	spec, err := resolveSpec(unitsStr, k, hasYearZero)
	if err != nil {
		return nil, err
	}
	out := make([]caldate.DateTime, len(values))
	for i, v := range values {
		out[i], err = DecodeValue(v, spec, k, hasYearZero)
		if err != nil {
			return nil, fmt.Errorf("decoding value %v: %w", v, err)
		}
	}
	return out, nil
}

// DecodeValue converts a single numeric value back to a date.
func DecodeValue(v float64, spec *units.Spec, k calendar.Kind, hasYearZero bool) (caldate.DateTime, error) {
	if spec.Absolute {
		return decodeAbsolute(v, spec.Pattern, k, hasYearZero)
	}
	return decodeLinear(v, spec)
}

// encodeLinear computes the signed difference from the reference date in
// integer microseconds and divides once at the end. Quotient and
// remainder are separated first so the float sees two small terms
// instead of one large one.
func encodeLinear(dt caldate.DateTime, spec *units.Spec) (float64, error) {
	ref := spec.Reference
	if dt.Calendar() != ref.Calendar() || dt.HasYearZero() != ref.HasYearZero() {
		return 0, caldate.ErrCalendarMismatch
	}
	deltaMicros := (dt.Ordinal()-ref.Ordinal())*caldate.MicrosPerDay +
		(dt.MicrosecondOfDay() - ref.MicrosecondOfDay())
	unit := spec.Unit.Micros()
	q := deltaMicros / unit
	r := deltaMicros % unit
	return float64(q) + float64(r)/float64(unit), nil
}

// decodeLinear converts the value to whole microseconds and applies the
// exact span to the reference date. The whole units are split off first
// and scaled in integer arithmetic; only the sub-unit fraction touches
// floating point, and it is rounded to the nearest microsecond exactly
// once. Scaling the full value in float would lose microseconds for
// spans beyond a few thousand years.
func decodeLinear(v float64, spec *units.Spec) (caldate.DateTime, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return caldate.DateTime{}, fmt.Errorf("value %v is not a finite number", v)
	}
	whole, fracMicros := splitValue(v, spec.Unit.Micros())
	micros := whole*spec.Unit.Micros() + fracMicros
	return spec.Reference.Add(caldate.NewDuration(0, 0, micros)), nil
}

// splitValue separates a numeric value into its integer part, rounded
// toward negative infinity, and the nonnegative fraction scaled to a
// microsecond count out of scaleMicros.
func splitValue(v float64, scaleMicros int64) (whole int64, fracMicros int64) {
	f := math.Floor(v)
	fracMicros = int64(math.Round((v - f) * float64(scaleMicros)))
	return int64(f), fracMicros
}

func encodeAbsolute(dt caldate.DateTime, p units.Pattern) (float64, error) {
	switch p {
	case units.PatternDay:
		digits := dt.Year()*10000 + int64(dt.Month())*100 + int64(dt.Day())
		return float64(digits) + float64(dt.MicrosecondOfDay())/float64(caldate.MicrosPerDay), nil
	case units.PatternMonth:
		digits := dt.Year()*100 + int64(dt.Month())
		monthMicros := int64(dt.DaysInMonth()) * caldate.MicrosPerDay
		elapsed := int64(dt.Day()-1)*caldate.MicrosPerDay + dt.MicrosecondOfDay()
		return float64(digits) + float64(elapsed)/float64(monthMicros), nil
	case units.PatternYear:
		return encodeFractionalYear(dt), nil
	default:
		panic(fmt.Sprintf("codec: unhandled pattern %d", p))
	}
}

// encodeFractionalYear is the decimal-calendar encoding: the year plus
// the elapsed share of the year. The numerator is an exact microsecond
// count, so the single division is the only rounding step.
func encodeFractionalYear(dt caldate.DateTime) float64 {
	yearMicros := int64(dt.DaysInYear()) * caldate.MicrosPerDay
	elapsed := int64(dt.DayOfYear()-1)*caldate.MicrosPerDay + dt.MicrosecondOfDay()
	return float64(dt.Year()) + float64(elapsed)/float64(yearMicros)
}

func decodeAbsolute(v float64, p units.Pattern, k calendar.Kind, hasYearZero bool) (caldate.DateTime, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return caldate.DateTime{}, fmt.Errorf("value %v is not a finite number", v)
	}
	switch p {
	case units.PatternDay:
		digits, micros := splitValue(v, caldate.MicrosPerDay)
		day := euclidMod(digits, 100)
		rest := (digits - day) / 100
		month := euclidMod(rest, 100)
		year := (rest - month) / 100
		base, err := caldate.NewWithYearZero(k, year, int(month), int(day), 0, 0, 0, 0, hasYearZero)
		if err != nil {
			return caldate.DateTime{}, err
		}
		return base.Add(caldate.NewDuration(0, 0, micros)), nil

	case units.PatternMonth:
		digits := int64(math.Floor(v))
		month := euclidMod(digits, 100)
		year := (digits - month) / 100
		base, err := caldate.NewWithYearZero(k, year, int(month), 1, 0, 0, 0, 0, hasYearZero)
		if err != nil {
			return caldate.DateTime{}, err
		}
		monthMicros := int64(base.DaysInMonth()) * caldate.MicrosPerDay
		_, micros := splitValue(v, monthMicros)
		return base.Add(caldate.NewDuration(0, 0, micros)), nil

	case units.PatternYear:
		return decodeFractionalYear(v, k, hasYearZero)

	default:
		panic(fmt.Sprintf("codec: unhandled pattern %d", p))
	}
}

// decodeFractionalYear inverts encodeFractionalYear. The fraction is
// scaled to microseconds of the year and rounded exactly once; the day
// and time of day then fall out of integer division. A fraction that
// rounds up to a full year rolls into January 1 of the next year.
func decodeFractionalYear(v float64, k calendar.Kind, hasYearZero bool) (caldate.DateTime, error) {
	year := int64(math.Floor(v))
	base, err := caldate.NewWithYearZero(k, year, 1, 1, 0, 0, 0, 0, hasYearZero)
	if err != nil {
		return caldate.DateTime{}, err
	}
	yearMicros := int64(base.DaysInYear()) * caldate.MicrosPerDay
	_, micros := splitValue(v, yearMicros)
	days := micros / caldate.MicrosPerDay
	tod := micros % caldate.MicrosPerDay
	return base.Add(caldate.NewDuration(days, 0, tod)), nil
}

func euclidMod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
