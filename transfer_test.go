package intvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/intvec/internal/common"
)

func TestCloneIndependence(t *testing.T) {
	ca := withCounting(t)
	a := NewWithSize(5)
	a.SetAt(2, 42)

	b := a.Clone()
	require.Equal(t, 5, b.Len())
	require.Equal(t, int32(42), b.At(2))
	require.False(t, common.SameBacking(a.data, b.data))

	b.SetAt(2, 7)
	assert.Equal(t, int32(42), a.At(2))

	a.Release()
	b.Release()
	assert.Zero(t, ca.Stats().Live)
}

func TestCloneEmpty(t *testing.T) {
	a := New()
	b := a.Clone()
	assert.True(t, b.Empty())
	assert.Nil(t, b.data)
	a.Release()
	b.Release()
}

func TestCopyFromReleasesOldStorage(t *testing.T) {
	ca := withCounting(t)
	a := NewWithSize(4)
	a.SetAt(0, 9)
	b := NewWithSize(9)

	b.CopyFrom(a)
	require.Equal(t, 4, b.Len())
	require.Equal(t, int32(9), b.At(0))
	require.False(t, common.SameBacking(a.data, b.data))

	st := ca.Stats()
	assert.Equal(t, int64(3), st.Allocs)
	assert.Equal(t, int64(1), st.Frees)
	assert.Zero(t, st.Faults)

	a.Release()
	b.Release()
	assert.Zero(t, ca.Stats().Live)
}

func TestCopyFromEmptySource(t *testing.T) {
	ca := withCounting(t)
	a := New()
	b := NewWithSize(3)
	b.CopyFrom(a)
	assert.True(t, b.Empty())
	a.Release()
	b.Release()
	st := ca.Stats()
	assert.Zero(t, st.Live)
	assert.Zero(t, st.Faults)
}

func TestCopyFromSelf(t *testing.T) {
	ca := withCounting(t)
	a := NewWithSize(6)
	a.SetAt(0, 11)
	before := a.data

	a.CopyFrom(a)
	assert.True(t, common.SameBacking(before, a.data))
	assert.Equal(t, int32(11), a.At(0))

	st := ca.Stats()
	assert.Equal(t, int64(1), st.Allocs)
	assert.Zero(t, st.Frees)

	a.Release()
	assert.Zero(t, ca.Stats().Faults)
	assert.Zero(t, ca.Stats().Live)
}

func TestMoveTransfersBacking(t *testing.T) {
	ca := withCounting(t)
	a := NewWithSize(7)
	before := a.data

	b := a.Move()
	require.Equal(t, 7, b.Len())
	assert.True(t, common.SameBacking(before, b.data))
	assert.True(t, a.Empty())
	assert.Equal(t, int64(1), ca.Stats().Allocs)

	a.Release()
	b.Release()
	st := ca.Stats()
	assert.Zero(t, st.Faults)
	assert.Zero(t, st.Live)
}

func TestMoveEmpty(t *testing.T) {
	a := New()
	b := a.Move()
	assert.True(t, a.Empty())
	assert.True(t, b.Empty())
	a.Release()
	b.Release()
}

func TestTakeFrom(t *testing.T) {
	ca := withCounting(t)
	src := NewWithSize(5)
	dst := NewWithSize(2)
	before := src.data

	dst.TakeFrom(src)
	require.Equal(t, 5, dst.Len())
	assert.True(t, common.SameBacking(before, dst.data))
	assert.True(t, src.Empty())
	assert.Equal(t, int64(1), ca.Stats().Frees)

	src.Release()
	dst.Release()
	st := ca.Stats()
	assert.Zero(t, st.Live)
	assert.Zero(t, st.Faults)
}

func TestTakeFromSelf(t *testing.T) {
	ca := withCounting(t)
	a := NewWithSize(3)
	before := a.data

	a.TakeFrom(a)
	assert.Equal(t, 3, a.Len())
	assert.True(t, common.SameBacking(before, a.data))

	a.Release()
	st := ca.Stats()
	assert.Zero(t, st.Faults)
	assert.Zero(t, st.Live)
}

func TestSwapExchangesStorage(t *testing.T) {
	a := NewWithSize(2)
	b := NewWithSize(9)
	aData, bData := a.data, b.data

	a.Swap(b)
	assert.Equal(t, 9, a.Len())
	assert.Equal(t, 2, b.Len())
	assert.True(t, common.SameBacking(a.data, bData))
	assert.True(t, common.SameBacking(b.data, aData))

	a.Release()
	b.Release()
}

func TestSwapWithEmpty(t *testing.T) {
	a := NewWithSize(4)
	e := New()

	a.Swap(e)
	assert.True(t, a.Empty())
	assert.Equal(t, 4, e.Len())

	a.Release()
	e.Release()
}

func TestSwapSelf(t *testing.T) {
	a := NewWithSize(3)
	before := a.data
	a.Swap(a)
	assert.Equal(t, 3, a.Len())
	assert.True(t, common.SameBacking(before, a.data))
	a.Release()
}
