// Package bitvec provides a dense, bit-addressable array for Go.
//
// A BitVector is a fixed-length sequence of single-bit values backed by a
// byte buffer, with the read/write/iteration/transformation surface of a
// conventional typed array at 1/8th of the memory per element.
//
// # Quick Start
//
//	v, _ := bitvec.New(10)        // ten zero bits
//	v.TrySet(3, 1)                // set element 3
//	bit, ok := v.Get(3)           // 1, true
//
//	w := bitvec.Of(1, 0, 1, 1, 0) // from literal values
//	fmt.Println(w)                // BitVector(5)[10110]
//
// # Views and Copies
//
// Subarray returns a view: a new BitVector addressing a window of the same
// buffer. Writes through a view are visible through every other view whose
// window overlaps it. Slice, Filter, Map and the From constructors return
// independent copies with freshly allocated buffers.
//
//	a, _ := bitvec.New(16)
//	b := a.Subarray(4, 8) // shares a's buffer
//	c := a.Slice(4, 8)    // independent copy
//
// # Bit Order
//
// Within each byte of the buffer, bits are laid out MSB-first: element 0 of
// a byte-aligned vector is mask 0x80 of byte 0. The layout is fixed, so
// buffers can be exchanged with any other MSB-first implementation.
//
// # Index Semantics
//
// Element access is deliberately permissive: Get and TrySet treat an
// out-of-range index as a silent miss (ok=false, no write) rather than an
// error. Constructors and bulk operations such as SetFrom are strict and
// return descriptive errors identifying the violated bound.
//
// # Concurrency
//
// BitVector performs no internal locking. Views sharing a buffer must not be
// mutated from multiple goroutines without external synchronization.
package bitvec
