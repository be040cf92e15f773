// Package arena implements the bump-slab allocator described in spec.md
// §4.1: a small fixed-size region carved out 8-byte aligned for most
// allocations, falling back to an overflow list of heap blocks once the
// slab is exhausted. Unlike the spec's C original, which keeps one arena
// per OS thread as implicit global state, jsexpr threads an *Arena
// explicitly through a single evaluation (see DESIGN.md) — the idiomatic
// Go equivalent, since goroutines have no OS-thread-local storage to hang
// a global off of.
package arena

import "sync"

const alignment = 8

// Stats is a read-only snapshot of the five counters spec.md §4.1 requires.
type Stats struct {
	SlabSize   int
	SlabUsed   int
	SlabAllocs int
	HeapAllocs int
	HeapBytes  int
}

// Arena is a single evaluation's scratch allocator for strings and arrays
// produced during evaluation (spec.md §3 invariants: such data "lives in
// the current evaluation arena and is valid exactly until the next
// cleanup").
type Arena struct {
	slab []byte
	used int

	slabAllocs int
	heap       [][]byte
	heapAllocs int
	heapBytes  int

	alloc func(int) []byte
	free  func([]byte)
}

// New creates an Arena with the given slab size (spec.md default 1024).
// The currently installed host allocator (see SetAllocator) is captured
// at creation time.
func New(slabSize int) *Arena {
	if slabSize <= 0 {
		slabSize = 1024
	}
	alloc, free := currentAllocator()
	return &Arena{
		slab:  make([]byte, slabSize),
		alloc: alloc,
		free:  free,
	}
}

func alignUp(n int) int {
	return (n + alignment - 1) &^ (alignment - 1)
}

// AllocBytes returns n freshly allocated bytes from the slab, or from an
// overflow heap block when the slab has no room left. The bytes are not
// cleared: slab space reused after Reset keeps its old contents, and heap
// blocks hold whatever the host allocator returned. ok is false
// only when the host allocator itself reported failure (out of memory),
// mirroring the null-sentinel contract of spec.md §4.1 — callers must
// surface that as an out-of-memory Value, never panic or leave partial
// state.
func (a *Arena) AllocBytes(n int) (b []byte, ok bool) {
	if n == 0 {
		return nil, true
	}

	aligned := alignUp(n)
	if a.used+aligned <= len(a.slab) {
		b = a.slab[a.used : a.used+n : a.used+aligned]
		a.used += aligned
		a.slabAllocs++
		return b, true
	}

	block := a.alloc(n)
	if block == nil {
		return nil, false
	}
	a.heap = append(a.heap, block)
	a.heapAllocs++
	a.heapBytes += n
	return block, true
}

// AllocString copies s into the arena and returns the arena-owned copy.
func (a *Arena) AllocString(s string) (string, bool) {
	if s == "" {
		return "", true
	}
	b, ok := a.AllocBytes(len(s))
	if !ok {
		return "", false
	}
	copy(b, s)
	return string(b), true
}

// Stats returns a snapshot of the arena's counters.
func (a *Arena) Stats() Stats {
	return Stats{
		SlabSize:   len(a.slab),
		SlabUsed:   a.used,
		SlabAllocs: a.slabAllocs,
		HeapAllocs: a.heapAllocs,
		HeapBytes:  a.heapBytes,
	}
}

// Reset frees every overflow heap block and zeroes the bump counters.
// Idempotent: calling Reset on an already-clean arena is a no-op. This is
// the "cleanup" operation of spec.md §3/§5.
func (a *Arena) Reset() {
	for _, block := range a.heap {
		a.free(block)
	}
	a.heap = nil
	a.used = 0
	a.slabAllocs = 0
	a.heapAllocs = 0
	a.heapBytes = 0
}

var (
	allocatorMu        sync.Mutex
	allocatorInstalled bool
	hostAlloc          func(int) []byte = func(n int) []byte { return make([]byte, n) }
	hostFree           func([]byte)     = func([]byte) {}
)

// SetAllocator installs a host-provided {malloc, free} pair, replacing the
// default Go-heap-backed allocator. Per spec.md §4.1/§5 this is a one-shot
// installer: it must be called exactly once, before any evaluation runs,
// and returns false if an allocator was already installed.
func SetAllocator(alloc func(n int) []byte, free func([]byte)) bool {
	allocatorMu.Lock()
	defer allocatorMu.Unlock()
	if allocatorInstalled {
		return false
	}
	allocatorInstalled = true
	hostAlloc = alloc
	hostFree = free
	return true
}

// ResetAllocatorForTest restores the default allocator and clears the
// one-shot guard. Exists only so tests can exercise SetAllocator's
// once-only behavior in isolation from one another.
func ResetAllocatorForTest() {
	allocatorMu.Lock()
	defer allocatorMu.Unlock()
	allocatorInstalled = false
	hostAlloc = func(n int) []byte { return make([]byte, n) }
	hostFree = func([]byte) {}
}

func currentAllocator() (func(int) []byte, func([]byte)) {
	allocatorMu.Lock()
	defer allocatorMu.Unlock()
	return hostAlloc, hostFree
}
