// Package dateparse normalizes heterogeneous date strings into canonical
// components.
//
// Regional notations differ in separator and field order: ISO uses
// "1990-01-02", continental Europe writes "2.1.1990", the US writes
// "1/2/1990" and France "2/1/1990". The slash form is ambiguous between
// the last two and is resolved by the DayFirst option. The date and time
// parts may be separated by a space or a 'T'.
//
// Two-digit years are widened using the POSIX pivot convention: 69..99
// become 19xx and 00..68 become 20xx, overridable through PivotYear.
// Negative (astronomical) years are accepted in the ISO form.
//
// The output contract is the canonical "YYYY-MM-DD[ HH:MM:SS]" string
// (Normalize) or the parsed components themselves (Parse); everything
// else about the input is intentionally forgiving.
package dateparse
