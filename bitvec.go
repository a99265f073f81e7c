package bitvec

import (
	"iter"
	"log/slog"

	"github.com/hupe1980/bitvec/internal/bitview"
)

// BitsPerElement is the logical element width. Each element occupies a single
// bit, i.e. 1/8th of a byte. Informational, for parity with typed-array APIs.
const BitsPerElement = 1

// BitVector is a fixed-length sequence of single-bit values backed by a byte
// buffer. A BitVector addresses a (bitOffset, bitLength) window of its buffer;
// multiple BitVectors may share one buffer (see Subarray).
type BitVector struct {
	view      bitview.View
	bitOffset int
	bitLength int
}

// New creates a BitVector of the given length with a fresh zero-filled buffer.
func New(length int) (*BitVector, error) {
	if length < 0 {
		return nil, &ErrInvalidLength{Param: "length", Value: length}
	}
	return &BitVector{
		view:      bitview.New(make([]byte, (length+7)/8)),
		bitLength: length,
	}, nil
}

// NewFromBytes creates a BitVector viewing the whole of buf. The buffer is
// shared, not copied: writes through the vector mutate buf.
func NewFromBytes(buf []byte) *BitVector {
	return &BitVector{
		view:      bitview.New(buf),
		bitLength: len(buf) * 8,
	}
}

// NewView creates a BitVector over an explicit bit window of buf. The buffer
// is shared, not copied. It returns *ErrInvalidLength for a negative offset or
// length and *ErrOutOfRange when the window exceeds the buffer's bit capacity.
func NewView(buf []byte, bitOffset, bitLength int) (*BitVector, error) {
	if bitOffset < 0 {
		return nil, &ErrInvalidLength{Param: "bitOffset", Value: bitOffset}
	}
	if bitLength < 0 {
		return nil, &ErrInvalidLength{Param: "bitLength", Value: bitLength}
	}
	capacity := len(buf) * 8
	if bitOffset > capacity {
		return nil, &ErrOutOfRange{Param: "bitOffset", Value: bitOffset, Limit: capacity}
	}
	if bitOffset+bitLength > capacity {
		return nil, &ErrOutOfRange{Param: "bitOffset+bitLength", Value: bitOffset + bitLength, Limit: capacity}
	}
	return &BitVector{
		view:      bitview.New(buf),
		bitOffset: bitOffset,
		bitLength: bitLength,
	}, nil
}

// From creates a BitVector from per-element values, copying the low bit of
// each value into a fresh buffer.
func From(values []byte) *BitVector {
	v := mustNew(len(values))
	for i, val := range values {
		v.view.Set(i, val)
	}
	return v
}

// Of creates a BitVector from literal values.
//
//	bitvec.Of(1, 0, 1) // BitVector(3)[101]
func Of(values ...byte) *BitVector {
	return From(values)
}

// Collect creates a BitVector by draining seq into a fresh buffer.
func Collect(seq iter.Seq[byte]) *BitVector {
	var values []byte
	for val := range seq {
		values = append(values, val)
	}
	return From(values)
}

// mustNew is New for internally computed, known-valid lengths.
func mustNew(length int) *BitVector {
	v, err := New(length)
	if err != nil {
		panic(err)
	}
	return v
}

// Len returns the number of elements.
func (v *BitVector) Len() int {
	return v.bitLength
}

// BitOffset returns the starting bit position of this vector's window within
// the shared buffer.
func (v *BitVector) BitOffset() int {
	return v.bitOffset
}

// ByteOffset returns the index of the first buffer byte touched by the window.
func (v *BitVector) ByteOffset() int {
	return v.bitOffset / 8
}

// ByteLen returns the number of whole buffer bytes spanned by the window.
func (v *BitVector) ByteLen() int {
	return (v.bitOffset+v.bitLength+7)/8 - v.bitOffset/8
}

// Buffer returns the underlying byte buffer, shared with every view over it.
func (v *BitVector) Buffer() []byte {
	return v.view.Bytes()
}

// Get returns the element at index i. An index outside [0, Len()) is a silent
// miss: Get returns (0, false) and never panics.
func (v *BitVector) Get(i int) (byte, bool) {
	if i < 0 || i >= v.bitLength {
		return 0, false
	}
	return v.view.Get(v.bitOffset + i), true
}

// TrySet writes the low bit of val at index i and reports whether the write
// happened. An index outside [0, Len()) is a silent miss: TrySet returns
// false and writes nothing.
func (v *BitVector) TrySet(i int, val byte) bool {
	if i < 0 || i >= v.bitLength {
		return false
	}
	v.view.Set(v.bitOffset+i, val)
	return true
}

// SetFrom copies all of src's elements into v starting at offset. It returns
// *ErrOutOfRange when offset is negative or src does not fit; validation
// happens before any bit is written, so a failed SetFrom leaves v unchanged.
func (v *BitVector) SetFrom(src *BitVector, offset int) error {
	if offset < 0 {
		return &ErrOutOfRange{Param: "offset", Value: offset, Limit: v.bitLength}
	}
	if offset+src.bitLength > v.bitLength {
		return &ErrOutOfRange{Param: "offset+src.Len()", Value: offset + src.bitLength, Limit: v.bitLength}
	}
	for i := 0; i < src.bitLength; i++ {
		v.view.Set(v.bitOffset+offset+i, src.view.Get(src.bitOffset+i))
	}
	return nil
}

// SetValues copies the low bit of each value into v starting at offset, with
// the same validate-first contract as SetFrom.
func (v *BitVector) SetValues(values []byte, offset int) error {
	if offset < 0 {
		return &ErrOutOfRange{Param: "offset", Value: offset, Limit: v.bitLength}
	}
	if offset+len(values) > v.bitLength {
		return &ErrOutOfRange{Param: "offset+len(values)", Value: offset + len(values), Limit: v.bitLength}
	}
	for i, val := range values {
		v.view.Set(v.bitOffset+offset+i, val)
	}
	return nil
}

// LogValue implements slog.LogValuer so vectors render structurally in logs.
func (v *BitVector) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("len", v.bitLength),
		slog.String("bits", v.Join("")),
	)
}
