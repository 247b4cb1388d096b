package intvec

import "go.uber.org/zap"

// Clone returns an independent Vec with the same length and contents.
// The two storages never alias; mutating one is invisible to the other.
func (v *Vec) Clone() *Vec {
	c := &Vec{}
	if len(v.data) > 0 {
		c.data = allocator.Alloc(len(v.data))
		copy(c.data, v.data)
	}
	trace("copy construct", zap.Int("len", c.Len()))
	return c
}

// CopyFrom replaces v's contents with an independent copy of other's.
// Storage v currently owns is released before the copy is acquired.
// Copying a Vec from itself is a no-op.
func (v *Vec) CopyFrom(other *Vec) {
	trace("copy assign", zap.Int("from", other.Len()), zap.Int("over", v.Len()))
	if v == other {
		return
	}
	if v.data != nil {
		allocator.Free(v.data)
		v.data = nil
	}
	if len(other.data) > 0 {
		v.data = allocator.Alloc(len(other.data))
		copy(v.data, other.data)
	}
}

// Move constructs a new Vec that takes ownership of v's storage in
// constant time, without allocating. v is left empty.
func (v *Vec) Move() *Vec {
	c := &Vec{data: v.data}
	v.data = nil
	trace("move construct", zap.Int("len", c.Len()))
	return c
}

// TakeFrom transfers other's storage to v in constant time. Storage v
// currently owns is released, and other is left empty. Taking from
// itself is a no-op.
func (v *Vec) TakeFrom(other *Vec) {
	trace("move assign", zap.Int("from", other.Len()), zap.Int("over", v.Len()))
	if v == other {
		return
	}
	if v.data != nil {
		allocator.Free(v.data)
	}
	v.data = other.data
	other.data = nil
}

// Swap exchanges the storage of v and other in constant time. Neither
// block is released or copied; both values stay valid owners of
// whatever they end up holding. Swapping a Vec with itself is a no-op.
func (v *Vec) Swap(other *Vec) {
	trace("swap", zap.Int("a", v.Len()), zap.Int("b", other.Len()))
	v.data, other.data = other.data, v.data
}
