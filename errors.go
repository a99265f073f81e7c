package bitvec

import "fmt"

// ErrInvalidLength indicates a negative length or offset passed to a
// constructor.
type ErrInvalidLength struct {
	Param string
	Value int
}

func (e *ErrInvalidLength) Error() string {
	return fmt.Sprintf("invalid %s: %d (must be non-negative)", e.Param, e.Value)
}

// ErrOutOfRange indicates a window or bulk write exceeding the addressable
// bit capacity.
type ErrOutOfRange struct {
	Param string
	Value int
	Limit int
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("%s out of range: %d exceeds %d", e.Param, e.Value, e.Limit)
}
