package codec

import (
	"github.com/caltime/caltime-go/pkg/caldate"
	"github.com/caltime/caltime-go/pkg/calendar"
)

// Components holds the decoded date fields as parallel slices, one entry
// per input value.
type Components struct {
	Year        []int64
	Month       []int
	Day         []int
	Hour        []int
	Minute      []int
	Second      []int
	Microsecond []int
}

// DecodeComponents decodes numeric values straight into component
// slices. The result is field-for-field identical to calling Decode and
// reading each DateTime: the fast path is about allocation shape, never
// about arithmetic shortcuts.
func DecodeComponents(values []float64, unitsStr string, k calendar.Kind) (*Components, error) {
	return DecodeComponentsWithYearZero(values, unitsStr, k, calendar.DefaultHasYearZero(k))
}

// DecodeComponentsWithYearZero is DecodeComponents with an explicit
// year-zero convention.
func DecodeComponentsWithYearZero(values []float64, unitsStr string, k calendar.Kind, hasYearZero bool) (*Components, error) {
	spec, err := resolveSpec(unitsStr, k, hasYearZero)
	if err != nil {
		return nil, err
	}
	c := &Components{
		Year:        make([]int64, len(values)),
		Month:       make([]int, len(values)),
		Day:         make([]int, len(values)),
		Hour:        make([]int, len(values)),
		Minute:      make([]int, len(values)),
		Second:      make([]int, len(values)),
		Microsecond: make([]int, len(values)),
	}
	for i, v := range values {
		var dt caldate.DateTime
		dt, err = DecodeValue(v, spec, k, hasYearZero)
		if err != nil {
			return nil, err
		}
		c.Year[i] = dt.Year()
		c.Month[i] = dt.Month()
		c.Day[i] = dt.Day()
		c.Hour[i] = dt.Hour()
		c.Minute[i] = dt.Minute()
		c.Second[i] = dt.Second()
		c.Microsecond[i] = dt.Microsecond()
	}
	return c, nil
}
