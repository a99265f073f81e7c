package bitvec

import "github.com/RoaringBitmap/roaring/v2"

// ToRoaring returns a roaring bitmap holding the indices of all set elements.
// Useful for handing dense vectors to code built on compressed bitmaps.
func (v *BitVector) ToRoaring() *roaring.Bitmap {
	rb := roaring.New()
	for i := 0; i < v.bitLength; i++ {
		if v.view.Get(v.bitOffset+i) != 0 {
			rb.Add(uint32(i))
		}
	}
	return rb
}

// FromRoaring creates a BitVector of the given length with the bits listed in
// rb set. Indices in rb at or beyond length are ignored. It returns
// *ErrInvalidLength for a negative length.
func FromRoaring(rb *roaring.Bitmap, length int) (*BitVector, error) {
	v, err := New(length)
	if err != nil {
		return nil, err
	}
	it := rb.Iterator()
	for it.HasNext() {
		i := it.Next()
		if int(i) >= length {
			break
		}
		v.view.Set(int(i), 1)
	}
	return v, nil
}
