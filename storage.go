package tfmt

import (
	"math/bits"
	"unsafe"
)

// Storage is a contiguous byte container an accumulator writes into.
//
// Data returns the whole allocated region, Data()[:Len()] being the written
// part. Implementations never fail loudly: Reserve is best effort and Resize
// ignores lengths beyond Cap.
type Storage interface {
	Len() int
	Cap() int
	Reserve(n int)
	Resize(n int)
	Data() []byte
	Clear()
}

// StoragePtr constrains the pointer type of a storage value S so that
// accumulators can hold S inline and still call its mutating methods.
type StoragePtr[S any] interface {
	*S
	Storage
	// Detach moves the contents out, leaving the receiver empty but keeping
	// its configuration.
	Detach() S
	// Clone returns an independent copy of the contents and configuration.
	Clone() S
}

// HeapOption configures a [Heap].
type HeapOption func(*heapConfig)

type heapConfig struct {
	capacity int
	limit    int
}

// WithCapacity pre-allocates n bytes.
func WithCapacity(n int) HeapOption {
	return func(c *heapConfig) { c.capacity = n }
}

// WithLimit caps the number of bytes the heap may ever allocate. Writes that
// would need more than limit bytes are dropped. Zero means no limit.
func WithLimit(limit int) HeapOption {
	return func(c *heapConfig) { c.limit = limit }
}

// Heap is a growable, slice-backed [Storage]. The zero value is empty and
// unlimited.
//
// A Heap copied by assignment takes a private copy of the buffer the first
// time it is written or grown. Writes made through the original before that
// are visible to the copy; use [Heap.Clone] for an immediate snapshot.
type Heap struct {
	addr  *Heap // self-pointer; differs from the receiver after a copy
	b     []byte
	limit int
}

// maxHeap is the largest buffer Reserve attempts to allocate.
const maxHeap = 1<<30 + (bits.UintSize/64)*(1<<47-1<<30)

// NewHeap returns a Heap configured by opts.
func NewHeap(opts ...HeapOption) Heap {
	var c heapConfig
	for _, opt := range opts {
		opt(&c)
	}
	h := Heap{limit: c.limit}
	if c.capacity > 0 {
		h.Reserve(c.capacity)
	}
	h.addr = nil
	return h
}

// own detaches a copied Heap from the buffer it shares with the original.
func (h *Heap) own() {
	if h.addr == h {
		return
	}
	if h.addr != nil && h.b != nil {
		nb := make([]byte, len(h.b), cap(h.b))
		copy(nb, h.b)
		h.b = nb
	}
	h.addr = h
}

func (h *Heap) Len() int   { return len(h.b) }
func (h *Heap) Cap() int   { return cap(h.b) }
func (h *Heap) Limit() int { return h.limit }

// Reserve grows the allocation to at least n bytes. Growth is clamped to the
// limit; when n itself exceeds the limit nothing happens.
func (h *Heap) Reserve(n int) {
	if n <= cap(h.b) {
		return
	}
	if h.limit > 0 {
		if n > h.limit {
			if cap(h.b) >= h.limit {
				return
			}
			n = h.limit
		}
	}
	if n > maxHeap {
		return
	}
	h.addr = h
	nb := make([]byte, len(h.b), n)
	copy(nb, h.b)
	h.b = nb
	h.terminate()
}

func (h *Heap) Resize(n int) {
	if n < 0 || n > cap(h.b) {
		return
	}
	h.own()
	h.b = h.b[:n]
	h.terminate()
}

func (h *Heap) Data() []byte {
	h.own()
	return h.b[:cap(h.b)]
}

func (h *Heap) Clear() {
	h.own()
	h.b = h.b[:0]
	h.terminate()
}

// Detach hands the buffer over and leaves h empty with its limit intact.
func (h *Heap) Detach() Heap {
	h.own()
	out := Heap{b: h.b, limit: h.limit}
	h.b = nil
	return out
}

// Clone returns a copy with its own buffer of the same capacity.
func (h *Heap) Clone() Heap {
	out := Heap{limit: h.limit}
	if h.b != nil {
		out.b = make([]byte, len(h.b), cap(h.b))
		copy(out.b, h.b)
	}
	return out
}

// Bytes returns the written bytes without copying.
func (h *Heap) Bytes() []byte { return h.b }

// String returns a copy of the written bytes.
func (h *Heap) String() string { return string(h.b) }

// View returns the written bytes as a string without copying. The result is
// only valid until the next mutation.
func (h *Heap) View() string {
	return unsafe.String(unsafe.SliceData(h.b), len(h.b))
}

// terminate keeps a NUL after the used span when there is room for it.
func (h *Heap) terminate() {
	if n := len(h.b); n < cap(h.b) {
		h.b[:n+1][n] = 0
	}
}

// nextPow2 returns the smallest power of two >= n, and at least 2.
func nextPow2(n int) int {
	if n <= 2 {
		return 2
	}
	u := uint64(n - 1)
	u |= u >> 1
	u |= u >> 2
	u |= u >> 4
	u |= u >> 8
	u |= u >> 16
	u |= u >> 32
	u++
	if u > uint64(maxInt) {
		return n
	}
	return int(u)
}

const maxInt = int(^uint(0) >> 1)
