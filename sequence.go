package bitvec

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Values returns an iterator over the element values in index order. The
// sequence is lazy and restartable: each range over it starts from index 0.
func (v *BitVector) Values() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for i := 0; i < v.bitLength; i++ {
			if !yield(v.view.Get(v.bitOffset + i)) {
				return
			}
		}
	}
}

// Keys returns an iterator over the indices 0..Len()-1.
func (v *BitVector) Keys() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < v.bitLength; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// All returns an iterator over (index, value) pairs in index order.
func (v *BitVector) All() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i := 0; i < v.bitLength; i++ {
			if !yield(i, v.view.Get(v.bitOffset+i)) {
				return
			}
		}
	}
}

// ForEach calls fn for every element in index order.
func (v *BitVector) ForEach(fn func(val byte, i int)) {
	for i := 0; i < v.bitLength; i++ {
		fn(v.view.Get(v.bitOffset+i), i)
	}
}

// Every reports whether pred holds for all elements. It stops at the first
// element for which pred is false. Every is true for an empty vector.
func (v *BitVector) Every(pred func(val byte, i int) bool) bool {
	for i := 0; i < v.bitLength; i++ {
		if !pred(v.view.Get(v.bitOffset+i), i) {
			return false
		}
	}
	return true
}

// Some reports whether pred holds for at least one element. It stops at the
// first match.
func (v *BitVector) Some(pred func(val byte, i int) bool) bool {
	for i := 0; i < v.bitLength; i++ {
		if pred(v.view.Get(v.bitOffset+i), i) {
			return true
		}
	}
	return false
}

// Find returns the first element for which pred holds. The second result is
// false when no element matches.
func (v *BitVector) Find(pred func(val byte, i int) bool) (byte, bool) {
	for i := 0; i < v.bitLength; i++ {
		if val := v.view.Get(v.bitOffset + i); pred(val, i) {
			return val, true
		}
	}
	return 0, false
}

// FindIndex returns the index of the first element for which pred holds, or
// -1 when no element matches.
func (v *BitVector) FindIndex(pred func(val byte, i int) bool) int {
	for i := 0; i < v.bitLength; i++ {
		if pred(v.view.Get(v.bitOffset+i), i) {
			return i
		}
	}
	return -1
}

// Contains reports whether the low bit of val occurs in the vector.
func (v *BitVector) Contains(val byte) bool {
	return v.IndexOf(val, 0) >= 0
}

// IndexOf returns the index of the first occurrence of the low bit of val at
// or after from, or -1. A negative from counts from the end.
func (v *BitVector) IndexOf(val byte, from int) int {
	if from < 0 {
		from = max(from+v.bitLength, 0)
	}
	for i := from; i < v.bitLength; i++ {
		if v.view.Get(v.bitOffset+i) == val&1 {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the index of the last occurrence of the low bit of val
// at or before from, or -1. A negative from counts from the end; from past
// the end is clamped to the last index.
func (v *BitVector) LastIndexOf(val byte, from int) int {
	if from < 0 {
		from += v.bitLength
	}
	for i := min(from, v.bitLength-1); i >= 0; i-- {
		if v.view.Get(v.bitOffset+i) == val&1 {
			return i
		}
	}
	return -1
}

// Filter returns a new BitVector holding exactly the elements for which pred
// holds, in order, over a fresh buffer.
func (v *BitVector) Filter(pred func(val byte, i int) bool) *BitVector {
	var kept []byte
	for i := 0; i < v.bitLength; i++ {
		if val := v.view.Get(v.bitOffset + i); pred(val, i) {
			kept = append(kept, val)
		}
	}
	return From(kept)
}

// Map returns a new BitVector of the same length over a fresh buffer, with
// the low bit of fn's result at every index.
func (v *BitVector) Map(fn func(val byte, i int) byte) *BitVector {
	dst := mustNew(v.bitLength)
	for i := 0; i < v.bitLength; i++ {
		dst.view.Set(i, fn(v.view.Get(v.bitOffset+i), i))
	}
	return dst
}

// Sort sorts the vector in place and returns it. A nil compare sorts
// ascending (zeros before ones). The elements are snapshotted, sorted stably,
// and written back, so a comparator may safely read the vector.
func (v *BitVector) Sort(compare func(a, b byte) int) *BitVector {
	if compare == nil {
		compare = cmp.Compare[byte]
	}
	vals := v.ToSlice()
	slices.SortStableFunc(vals, compare)
	for i, val := range vals {
		v.view.Set(v.bitOffset+i, val)
	}
	return v
}

// Reverse reverses the vector in place via a snapshot and returns it.
func (v *BitVector) Reverse() *BitVector {
	vals := v.ToSlice()
	for i, val := range vals {
		v.view.Set(v.bitOffset+v.bitLength-1-i, val)
	}
	return v
}

// ToSlice returns the element values as a byte slice of 0s and 1s.
func (v *BitVector) ToSlice() []byte {
	vals := make([]byte, v.bitLength)
	for i := range vals {
		vals[i] = v.view.Get(v.bitOffset + i)
	}
	return vals
}

// ToBools returns the element values as a bool slice.
func (v *BitVector) ToBools() []bool {
	vals := make([]bool, v.bitLength)
	for i := range vals {
		vals[i] = v.view.Get(v.bitOffset+i) != 0
	}
	return vals
}

// Join concatenates the element values as decimal digits separated by sep.
func (v *BitVector) Join(sep string) string {
	var sb strings.Builder
	for i := 0; i < v.bitLength; i++ {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteByte('0' + v.view.Get(v.bitOffset+i))
	}
	return sb.String()
}

// String returns a diagnostic rendering of the vector, e.g.
// "BitVector(5)[10110]". Not a stable serialization format.
func (v *BitVector) String() string {
	return fmt.Sprintf("BitVector(%d)[%s]", v.bitLength, v.Join(""))
}

// Reduce folds the vector left to right starting from seed.
//
// It is a function rather than a method so the accumulator can be any type.
func Reduce[T any](v *BitVector, seed T, fn func(acc T, val byte, i int) T) T {
	acc := seed
	v.ForEach(func(val byte, i int) {
		acc = fn(acc, val, i)
	})
	return acc
}

// ReduceRight folds the vector right to left starting from seed.
func ReduceRight[T any](v *BitVector, seed T, fn func(acc T, val byte, i int) T) T {
	acc := seed
	for i := v.Len() - 1; i >= 0; i-- {
		val, _ := v.Get(i)
		acc = fn(acc, val, i)
	}
	return acc
}
