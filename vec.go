package intvec

import (
	"go.uber.org/zap"

	"github.com/rawbytedev/intvec/internal/common"
)

// Vec owns zero or one contiguous block of int32 elements together with
// its logical length. Storage is non-nil exactly when the length is
// positive, and a block belongs to at most one live Vec at a time:
// Clone/CopyFrom duplicate it, Move/TakeFrom/Swap transfer it, Release
// hands it back to the allocator.
//
// The module is single-threaded; a Vec must not be shared across
// goroutines.
type Vec struct {
	data []int32
}

// New returns an empty Vec: zero length, no storage.
func New() *Vec {
	trace("default construct", zap.Int("len", 0))
	return &Vec{}
}

// NewWithSize returns a Vec owning n zeroed elements. Non-positive
// sizes produce an empty Vec. Allocation failure is fatal and aborts
// construction.
func NewWithSize(n int) *Vec {
	v := &Vec{}
	if n > 0 {
		v.data = allocator.Alloc(n)
	}
	trace("parameterized construct", zap.Int("len", v.Len()))
	return v
}

// NewFromMagnitude truncates d toward zero and constructs the result
// as NewWithSize would. NaN and non-positive magnitudes yield an empty
// Vec. This is the named replacement for a conversion from a
// floating-point value; there is no implicit path.
func NewFromMagnitude(d float64) *Vec {
	v := &Vec{}
	if n := common.TruncateMagnitude(d); n > 0 {
		v.data = allocator.Alloc(n)
	}
	trace("conversion construct", zap.Float64("magnitude", d), zap.Int("len", v.Len()))
	return v
}

// Magnitude reports the element count. It is the outward conversion of
// a Vec back to a plain integer and emits a trace line; Len is the
// silent equivalent.
func (v *Vec) Magnitude() int {
	trace("conversion operator", zap.Int("len", v.Len()))
	return v.Len()
}

// Len reports the number of owned elements.
func (v *Vec) Len() int { return len(v.data) }

// Empty reports whether v owns no storage.
func (v *Vec) Empty() bool { return len(v.data) == 0 }

// At returns element i. Indexing relies on the runtime's own bounds
// panic; no extra checking layer exists.
func (v *Vec) At(i int) int32 { return v.data[i] }

// SetAt stores x at element i.
func (v *Vec) SetAt(i int, x int32) { v.data[i] = x }

// Release returns owned storage to the allocator and leaves v empty.
// Releasing an empty Vec is a safe no-op, so Release is idempotent.
func (v *Vec) Release() {
	trace("destruct", zap.Int("len", v.Len()))
	if v.data == nil {
		return
	}
	allocator.Free(v.data)
	v.data = nil
}
