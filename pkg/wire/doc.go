// Package wire defines a compact CBOR interchange format for encoded
// date batches.
//
// A Batch carries the numeric values of a time coordinate together with
// everything needed to interpret them: the units string, the calendar
// name and the year-zero convention. A Record carries a single date
// broken into components. Both use CBOR (RFC 8949) maps with integer
// keys for compactness, and both are validated on decode so a malformed
// batch never reaches the calendar machinery.
package wire
