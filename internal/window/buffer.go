// Package window provides the fixed-capacity sliding window of samples
// the rolling statistics are computed over.
package window

import "seismon/internal/domain"

// DefaultCapacity is the number of samples kept in the visible window.
const DefaultCapacity = 100

// Buffer is a fixed-capacity FIFO of samples backed by a ring, so a
// push never shifts the whole sequence. Insertion order is
// chronological order; the oldest sample is evicted on overflow.
//
// Buffer is not safe for concurrent use. The monitor runs the whole
// pipeline on a single logical thread (the Bubbletea update loop or
// the headless simulate loop), which is the only place it is touched.
type Buffer struct {
	samples []domain.Sample
	head    int // index of the oldest sample
	size    int
}

// New creates an empty buffer. Capacities below 1 fall back to
// DefaultCapacity.
func New(capacity int) *Buffer {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Buffer{samples: make([]domain.Sample, capacity)}
}

// Push appends a sample, evicting the oldest one when the buffer is
// full. O(1).
func (b *Buffer) Push(s domain.Sample) {
	tail := (b.head + b.size) % len(b.samples)
	b.samples[tail] = s
	if b.size < len(b.samples) {
		b.size++
		return
	}
	b.head = (b.head + 1) % len(b.samples)
}

// Len returns the number of samples currently held.
func (b *Buffer) Len() int { return b.size }

// Cap returns the fixed capacity.
func (b *Buffer) Cap() int { return len(b.samples) }

// Samples returns a copy of the window in chronological order, oldest
// first.
func (b *Buffer) Samples() []domain.Sample {
	out := make([]domain.Sample, b.size)
	for i := 0; i < b.size; i++ {
		out[i] = b.samples[(b.head+i)%len(b.samples)]
	}
	return out
}

// Latest returns a copy of the n most recent samples in chronological
// order, or the whole window if fewer than n exist.
func (b *Buffer) Latest(n int) []domain.Sample {
	if n > b.size {
		n = b.size
	}
	if n < 0 {
		n = 0
	}
	out := make([]domain.Sample, n)
	start := b.head + b.size - n
	for i := 0; i < n; i++ {
		out[i] = b.samples[(start+i)%len(b.samples)]
	}
	return out
}

// Clear empties the buffer without releasing its storage.
func (b *Buffer) Clear() {
	b.head = 0
	b.size = 0
}
