package wire

import (
	"fmt"

	"github.com/caltime/caltime-go/pkg/caldate"
	"github.com/caltime/caltime-go/pkg/calendar"
	"github.com/caltime/caltime-go/pkg/units"
)

// Batch is an encoded time coordinate: numeric values plus the units and
// calendar needed to interpret them.
//
// CBOR encoding:
//
//	{
//	  1: units,        // text, e.g. "days since 1858-11-17 00:00:00"
//	  2: calendar,     // text, canonical calendar name
//	  3: hasYearZero,  // bool, omitted for the calendar default
//	  4: values        // array of float64
//	}
type Batch struct {
	Units       string    `cbor:"1,keyasint"`
	Calendar    string    `cbor:"2,keyasint"`
	HasYearZero *bool     `cbor:"3,keyasint,omitempty"`
	Values      []float64 `cbor:"4,keyasint"`
}

// Kind resolves the batch's calendar name.
func (b *Batch) Kind() (calendar.Kind, error) {
	return calendar.Parse(b.Calendar)
}

// YearZero returns the batch's year-zero convention, falling back to the
// calendar default when unset.
func (b *Batch) YearZero(k calendar.Kind) bool {
	if b.HasYearZero != nil {
		return *b.HasYearZero
	}
	return calendar.DefaultHasYearZero(k)
}

// Validate checks that the calendar name and units string resolve.
func (b *Batch) Validate() error {
	k, err := b.Kind()
	if err != nil {
		return err
	}
	if b.Units == "" {
		return nil // calendar default units apply
	}
	if _, err := units.Parse(b.Units, k, b.YearZero(k)); err != nil {
		return err
	}
	return nil
}

// Record is a single date broken into components.
//
// CBOR encoding:
//
//	{
//	  1: year,         // int64
//	  2: month,        // 1..12
//	  3: day,
//	  4: hour,
//	  5: minute,
//	  6: second,
//	  7: microsecond,
//	  8: calendar,     // text, canonical calendar name
//	  9: hasYearZero   // bool, omitted for the calendar default
//	}
type Record struct {
	Year        int64  `cbor:"1,keyasint"`
	Month       int    `cbor:"2,keyasint"`
	Day         int    `cbor:"3,keyasint"`
	Hour        int    `cbor:"4,keyasint,omitempty"`
	Minute      int    `cbor:"5,keyasint,omitempty"`
	Second      int    `cbor:"6,keyasint,omitempty"`
	Microsecond int    `cbor:"7,keyasint,omitempty"`
	Calendar    string `cbor:"8,keyasint"`
	HasYearZero *bool  `cbor:"9,keyasint,omitempty"`
}

// FromDateTime builds a record from a DateTime.
func FromDateTime(dt caldate.DateTime) *Record {
	r := &Record{
		Year:        dt.Year(),
		Month:       dt.Month(),
		Day:         dt.Day(),
		Hour:        dt.Hour(),
		Minute:      dt.Minute(),
		Second:      dt.Second(),
		Microsecond: dt.Microsecond(),
		Calendar:    dt.Calendar().String(),
	}
	if dt.HasYearZero() != calendar.DefaultHasYearZero(dt.Calendar()) {
		yz := dt.HasYearZero()
		r.HasYearZero = &yz
	}
	return r
}

// DateTime reconstructs the validated DateTime the record describes.
func (r *Record) DateTime() (caldate.DateTime, error) {
	k, err := calendar.Parse(r.Calendar)
	if err != nil {
		return caldate.DateTime{}, err
	}
	yz := calendar.DefaultHasYearZero(k)
	if r.HasYearZero != nil {
		yz = *r.HasYearZero
	}
	return caldate.NewWithYearZero(k, r.Year, r.Month, r.Day, r.Hour, r.Minute, r.Second, r.Microsecond, yz)
}

// Validate checks that the record reconstructs into a valid DateTime.
func (r *Record) Validate() error {
	if _, err := r.DateTime(); err != nil {
		return fmt.Errorf("record does not describe a valid date: %w", err)
	}
	return nil
}
