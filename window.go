package bitvec

// normalize clamps a possibly-negative index into [0, length]. Negative
// values count from the end.
func normalize(i, length int) int {
	if i < 0 {
		i += length
	}
	return min(max(i, 0), length)
}

// Subarray returns a view of the window [begin, end): a new BitVector sharing
// this vector's buffer, O(1), zero-copy. Negative indices count from the end
// and out-of-range indices are clamped; if begin >= end after normalization
// the result is empty. Writes through the view are visible through v and vice
// versa.
func (v *BitVector) Subarray(begin, end int) *BitVector {
	begin = normalize(begin, v.bitLength)
	end = normalize(end, v.bitLength)
	if end < begin {
		end = begin
	}
	return &BitVector{
		view:      v.view,
		bitOffset: v.bitOffset + begin,
		bitLength: end - begin,
	}
}

// Slice returns an independent copy of the window [start, end), with the same
// index normalization as Subarray. O(n) in the slice length; the copy has a
// fresh buffer and does not observe later writes to v.
func (v *BitVector) Slice(start, end int) *BitVector {
	src := v.Subarray(start, end)
	dst := mustNew(src.bitLength)
	for i := 0; i < src.bitLength; i++ {
		dst.view.Set(i, src.view.Get(src.bitOffset+i))
	}
	return dst
}

// Fill sets every element in the window [start, end) to the low bit of val,
// with the same index normalization as Subarray. Mutates in place and returns v.
func (v *BitVector) Fill(val byte, start, end int) *BitVector {
	start = normalize(start, v.bitLength)
	end = normalize(end, v.bitLength)
	for i := start; i < end; i++ {
		v.view.Set(v.bitOffset+i, val)
	}
	return v
}

// CopyWithin copies the window [start, end) so it begins at index target. The
// source window is snapshotted before writing, so overlapping source and
// destination ranges behave as if copied through a temporary. The copy is
// truncated at the end of the vector. Returns v.
func (v *BitVector) CopyWithin(target, start, end int) *BitVector {
	target = normalize(target, v.bitLength)
	snapshot := v.Slice(start, end)
	n := min(snapshot.bitLength, v.bitLength-target)
	for i := 0; i < n; i++ {
		v.view.Set(v.bitOffset+target+i, snapshot.view.Get(i))
	}
	return v
}
