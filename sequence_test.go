package bitvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValues(t *testing.T) {
	v := Of(1, 0, 1, 1)

	var got []byte
	for val := range v.Values() {
		got = append(got, val)
	}
	assert.Equal(t, []byte{1, 0, 1, 1}, got)

	// Restartable: a second range starts over.
	got = nil
	for val := range v.Values() {
		got = append(got, val)
	}
	assert.Equal(t, []byte{1, 0, 1, 1}, got)
}

func TestValuesEarlyStop(t *testing.T) {
	v := Of(1, 0, 1, 1)

	var got []byte
	for val := range v.Values() {
		got = append(got, val)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []byte{1, 0}, got)
}

func TestKeys(t *testing.T) {
	v := Of(0, 1, 0)

	var got []int
	for i := range v.Keys() {
		got = append(got, i)
	}
	assert.Equal(t, []int{0, 1, 2}, got)
}

func TestAll(t *testing.T) {
	v := Of(0, 1, 1)

	got := map[int]byte{}
	for i, val := range v.All() {
		got[i] = val
	}
	assert.Equal(t, map[int]byte{0: 0, 1: 1, 2: 1}, got)
}

func TestForEach(t *testing.T) {
	v := Of(1, 0, 1)

	var vals []byte
	var idxs []int
	v.ForEach(func(val byte, i int) {
		vals = append(vals, val)
		idxs = append(idxs, i)
	})
	assert.Equal(t, []byte{1, 0, 1}, vals)
	assert.Equal(t, []int{0, 1, 2}, idxs)
}

func TestEverySome(t *testing.T) {
	ones := Of(1, 1, 1)
	mixed := Of(1, 0, 1)
	empty := Of()

	isOne := func(val byte, _ int) bool { return val == 1 }
	isZero := func(val byte, _ int) bool { return val == 0 }

	assert.True(t, ones.Every(isOne))
	assert.False(t, mixed.Every(isOne))
	assert.True(t, empty.Every(isOne))

	assert.True(t, mixed.Some(isZero))
	assert.False(t, ones.Some(isZero))
	assert.False(t, empty.Some(isZero))
}

func TestEveryShortCircuits(t *testing.T) {
	v := Of(1, 0, 1, 1)

	var seen int
	v.Every(func(val byte, _ int) bool {
		seen++
		return val == 1
	})
	assert.Equal(t, 2, seen)
}

func TestFind(t *testing.T) {
	v := Of(0, 0, 1, 0)

	val, ok := v.Find(func(val byte, _ int) bool { return val == 1 })
	require.True(t, ok)
	assert.Equal(t, byte(1), val)

	_, ok = v.Find(func(val byte, i int) bool { return i > 10 })
	assert.False(t, ok)

	assert.Equal(t, 2, v.FindIndex(func(val byte, _ int) bool { return val == 1 }))
	assert.Equal(t, -1, v.FindIndex(func(val byte, _ int) bool { return false }))
}

func TestContainsIndexOf(t *testing.T) {
	v := Of(0, 1, 0, 1, 1)

	assert.True(t, v.Contains(1))
	assert.True(t, v.Contains(0))
	assert.False(t, Of(0, 0).Contains(1))

	assert.Equal(t, 1, v.IndexOf(1, 0))
	assert.Equal(t, 3, v.IndexOf(1, 2))
	assert.Equal(t, -1, v.IndexOf(0, 4))
	assert.Equal(t, 3, v.IndexOf(1, -2))
	assert.Equal(t, 0, v.IndexOf(0, -100))

	assert.Equal(t, 4, v.LastIndexOf(1, v.Len()-1))
	assert.Equal(t, 1, v.LastIndexOf(1, 2))
	assert.Equal(t, -1, v.LastIndexOf(1, 0))
	assert.Equal(t, 2, v.LastIndexOf(0, -2))
	assert.Equal(t, 4, v.LastIndexOf(1, 100))
}

func TestReduce(t *testing.T) {
	v := Of(1, 0, 1, 1)

	sum := Reduce(v, 0, func(acc int, val byte, _ int) int { return acc + int(val) })
	assert.Equal(t, 3, sum)

	ltr := Reduce(v, "", func(acc string, val byte, _ int) string {
		return acc + string('0'+val)
	})
	assert.Equal(t, "1011", ltr)

	rtl := ReduceRight(v, "", func(acc string, val byte, _ int) string {
		return acc + string('0'+val)
	})
	assert.Equal(t, "1101", rtl)
}

func TestFilter(t *testing.T) {
	v := Of(0, 1, 0, 1, 1)

	ones := v.Filter(func(val byte, _ int) bool { return val == 1 })
	assert.Equal(t, 3, ones.Len())
	assert.Equal(t, []byte{1, 1, 1}, ones.ToSlice())

	none := v.Filter(func(byte, int) bool { return false })
	assert.Equal(t, 0, none.Len())

	// The result owns a fresh buffer.
	require.True(t, ones.TrySet(0, 0))
	assert.Equal(t, []byte{0, 1, 0, 1, 1}, v.ToSlice())
}

func TestMap(t *testing.T) {
	v := Of(0, 1, 0, 1)

	inverted := v.Map(func(val byte, _ int) byte { return val ^ 1 })
	assert.Equal(t, []byte{1, 0, 1, 0}, inverted.ToSlice())
	assert.Equal(t, []byte{0, 1, 0, 1}, v.ToSlice())
}

func TestSort(t *testing.T) {
	v := Of(1, 0, 1, 0)

	got := v.Sort(nil)
	assert.Same(t, v, got)
	assert.Equal(t, []byte{0, 0, 1, 1}, v.ToSlice())

	desc := Of(0, 1, 0, 1, 1).Sort(func(a, b byte) int { return int(b) - int(a) })
	assert.Equal(t, []byte{1, 1, 1, 0, 0}, desc.ToSlice())
}

func TestReverse(t *testing.T) {
	v := Of(0, 1, 1, 0, 1)

	got := v.Reverse()
	assert.Same(t, v, got)
	assert.Equal(t, []byte{1, 0, 1, 1, 0}, v.ToSlice())

	// Reversing a view only touches its own window.
	a := Of(1, 1, 0, 0, 0, 0)
	a.Subarray(2, 6).Reverse()
	assert.Equal(t, []byte{1, 1, 0, 0, 0, 0}, a.ToSlice())

	b := Of(1, 0, 0, 0, 1, 1)
	b.Subarray(3, 6).Reverse()
	assert.Equal(t, []byte{1, 0, 0, 1, 1, 0}, b.ToSlice())
}

func TestJoinString(t *testing.T) {
	v := Of(1, 0, 1)

	assert.Equal(t, "1,0,1", v.Join(","))
	assert.Equal(t, "101", v.Join(""))
	assert.Equal(t, "1 - 0 - 1", v.Join(" - "))
	assert.Equal(t, "", Of().Join(","))

	assert.Equal(t, "BitVector(3)[101]", v.String())
	assert.Equal(t, "BitVector(0)[]", Of().String())
}

func TestToBools(t *testing.T) {
	v := Of(1, 0, 1)
	assert.Equal(t, []bool{true, false, true}, v.ToBools())
}
