package intvec

// Allocator acquires and releases element storage for Vec values. The
// module is single-threaded, so implementations do not need to lock.
type Allocator interface {
	// Alloc returns a zeroed block of n elements, or nil when n <= 0.
	Alloc(n int) []int32
	// Free releases a block previously returned by Alloc. Freeing an
	// empty block is a no-op.
	Free(b []int32)
}

// runtimeAllocator leaves acquisition to make and release to the
// garbage collector.
type runtimeAllocator struct{}

func (runtimeAllocator) Alloc(n int) []int32 {
	if n <= 0 {
		return nil
	}
	return make([]int32, n)
}

func (runtimeAllocator) Free([]int32) {}

var allocator Allocator = runtimeAllocator{}

// SetAllocator installs a as the package allocator and returns the
// previous one. Passing nil restores the runtime allocator. Live Vec
// values allocated under the previous allocator should be released
// before the switch.
func SetAllocator(a Allocator) Allocator {
	prev := allocator
	if a == nil {
		a = runtimeAllocator{}
	}
	allocator = a
	return prev
}

// AllocStats summarizes CountingAllocator activity.
type AllocStats struct {
	Allocs int64
	Frees  int64
	Live   int64
	Faults int64 // frees of blocks not currently live
}

// CountingAllocator wraps another Allocator and accounts for every
// block it hands out, keyed by backing address. A Free of a block it
// does not consider live is recorded as a fault and not forwarded,
// which turns double-release bugs into an observable counter.
type CountingAllocator struct {
	inner Allocator
	stats AllocStats
	live  map[*int32]int
}

// NewCountingAllocator wraps inner; nil means the runtime allocator.
func NewCountingAllocator(inner Allocator) *CountingAllocator {
	if inner == nil {
		inner = runtimeAllocator{}
	}
	return &CountingAllocator{inner: inner, live: make(map[*int32]int)}
}

func (c *CountingAllocator) Alloc(n int) []int32 {
	b := c.inner.Alloc(n)
	if len(b) == 0 {
		return nil
	}
	c.stats.Allocs++
	c.stats.Live++
	c.live[&b[0]] = len(b)
	return b
}

func (c *CountingAllocator) Free(b []int32) {
	if len(b) == 0 {
		return
	}
	key := &b[0]
	if _, ok := c.live[key]; !ok {
		c.stats.Faults++
		return
	}
	delete(c.live, key)
	c.stats.Frees++
	c.stats.Live--
	c.inner.Free(b)
}

// Stats returns a snapshot of the counters.
func (c *CountingAllocator) Stats() AllocStats { return c.stats }
