package bitview

// View wraps a byte buffer and addresses individual bits within it.
// The zero value is a view over an empty buffer.
type View struct {
	b []byte
}

// New creates a View over the given buffer. The buffer is shared, not copied:
// every View over the same slice observes the same bits.
func New(b []byte) View {
	return View{b: b}
}

// Len returns the capacity of the view in bits.
func (v View) Len() int {
	return len(v.b) * 8
}

// Bytes returns the backing buffer.
func (v View) Bytes() []byte {
	return v.b
}

// Get returns the bit at the given offset as 0 or 1.
// Offsets outside [0, Len()) panic with a bounds error, like slice indexing.
func (v View) Get(off int) byte {
	if v.b[off>>3]&(0x80>>(off&7)) != 0 {
		return 1
	}
	return 0
}

// Set writes the low bit of val at the given offset, leaving the other seven
// bits of the containing byte unchanged. High bits of val are ignored.
// Offsets outside [0, Len()) panic with a bounds error, like slice indexing.
func (v View) Set(off int, val byte) {
	mask := byte(0x80) >> (off & 7)
	if val&1 != 0 {
		v.b[off>>3] |= mask
	} else {
		v.b[off>>3] &^= mask
	}
}
