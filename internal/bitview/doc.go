// Package bitview provides bit-granular access to a byte buffer.
//
// Architecture:
//   - Thin, stateless translation layer: bit offset -> (byte index, bit mask)
//   - MSB-first bit order: offset 0 within a byte is mask 0x80, offset 7 is 0x01
//   - No alignment constraint: any offset within the buffer's bit capacity is valid
//
// The bit order is a fixed policy, not a parameter. Buffers written by this
// package are byte-for-byte compatible with any other MSB-first reader.
package bitview
