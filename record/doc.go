// Package record provides the 4-byte custom floating point record written by
// the acquisition device.
//
// The equation for a record is:
//
//  value = mantissa * 2 ^ exponent / 2 ^ 22
//
// Where mantissa is an unsigned 24 bit integer and exponent is a signed 8 bit
// integer stored with a bias of 128. For example:
//
//  0.00390625 = 16384 * 2^0 / 2^22
//
// The division by 2^22 is a fixed normalization shift. It reserves the top 2
// bits of the mantissa as integer headroom so that mantissas in the upper
// half of the range land in [1, 4) at exponent 0.
//
// Encoding
//
// A record is exactly 4 bytes. The first byte is the biased exponent and the
// remaining three bytes are the mantissa, big-endian:
//
//  | 0 . 1 . 2 . 3 . 4 . 5 . 6 . 7 | Byte |
//  |-------------------------------|------|
//  | e . e . e . e . e . e . e . e | b0   | exponent + 128
//  | m . m . m . m . m . m . m . m | b1   | mantissa bits 23..16
//  | m . m . m . m . m . m . m . m | b2   | mantissa bits 15..8
//  | m . m . m . m . m . m . m . m | b3   | mantissa bits 7..0
//  |-------------------------------|------|
//
// Exponents range over [-128, 127] and mantissas over [0, 16_777_215]. There
// is no sign bit: every record is a non-negative value.
//
// Captures
//
// A capture is a flat concatenation of records with no header or trailer.
// Its length must be a multiple of 4. Records are independent of each other
// and decode in order.
//
// Examples
//
//  | b0  | b1  | b2  | b3  | Exponent | Mantissa   | Value                  |
//  |-----|-----|-----|-----|----------|------------|------------------------|
//  | 128 | 0   | 64  | 0   | 0        | 16384      | 0.00390625             |
//  | 129 | 0   | 0   | 1   | 1        | 1          | 4.76837158203125e-07   |
//  | 127 | 255 | 255 | 255 | -1       | 16777215   | 1.9999998807907104     |
//  | 130 | 144 | 0   | 0   | 2        | 9437184    | 9                      |
//  |-----|-----|-----|-----|----------|------------|------------------------|
//
// Encoding a value picks the exponent that leaves the mantissa in
// [2^23, 2^24) so the full 24 bits carry precision. Zero is encoded as
// exponent 0 with a zero mantissa.
package record
