// Package array holds the integer buffer used for front insertion.
package array

import (
	"errors"
	"fmt"
	"math"
)

// MaxLen is the largest element count New accepts. It keeps the backing
// allocation addressable on 32-bit platforms.
const MaxLen = math.MaxInt32 / 8

var (
	// ErrInvalidCount is returned when a buffer is requested for a negative
	// element count or one above MaxLen.
	ErrInvalidCount = errors.New("invalid element count")
	// ErrEmpty is returned when writing the front of a buffer that holds no elements.
	ErrEmpty = errors.New("buffer is empty")
)

// Buffer is an ordered sequence of ints that supports insertion at index 0.
// It is not safe for concurrent use.
type Buffer struct {
	vals []int
}

// New returns an empty buffer sized for n elements plus one front insertion.
func New(n int) (*Buffer, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	if n > MaxLen {
		return nil, fmt.Errorf("%w: %d exceeds maximum %d", ErrInvalidCount, n, MaxLen)
	}
	return &Buffer{vals: make([]int, 0, n+1)}, nil
}

// FromSlice returns a buffer holding a copy of vals with room for one more element.
func FromSlice(vals []int) *Buffer {
	b := &Buffer{vals: make([]int, len(vals), len(vals)+1)}
	copy(b.vals, vals)
	return b
}

// Append adds v at the logical end of the buffer.
func (b *Buffer) Append(v int) {
	b.vals = append(b.vals, v)
}

// Len returns the number of elements held.
func (b *Buffer) Len() int { return len(b.vals) }

// Cap returns the number of elements the buffer can hold without reallocating.
func (b *Buffer) Cap() int { return cap(b.vals) }

// At returns the element at index i.
func (b *Buffer) At(i int) (int, bool) {
	if i < 0 || i >= len(b.vals) {
		return 0, false
	}
	return b.vals[i], true
}

// Values returns a copy of the elements in order.
func (b *Buffer) Values() []int {
	out := make([]int, len(b.vals))
	copy(out, b.vals)
	return out
}

// ShiftRight moves every element one slot later and grows the length by one,
// leaving index 0 as a gap. The gap keeps the previous front value until
// SetFront overwrites it.
func (b *Buffer) ShiftRight() {
	n := len(b.vals)
	// append reallocates only when a caller inserts more than once.
	b.vals = append(b.vals, 0)
	for i := n - 1; i >= 0; i-- {
		b.vals[i+1] = b.vals[i]
	}
}

// SetFront writes v at index 0.
func (b *Buffer) SetFront(v int) error {
	if len(b.vals) == 0 {
		return ErrEmpty
	}
	b.vals[0] = v
	return nil
}

// InsertFront places v at index 0, moving existing elements one slot later.
func (b *Buffer) InsertFront(v int) {
	b.ShiftRight()
	b.vals[0] = v
}
