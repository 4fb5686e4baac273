package sampler

import "golang.org/x/exp/constraints"

// Number covers the element types a Buffer can aggregate: anything that
// supports addition, division by a count and ordering.
type Number interface {
	constraints.Integer | constraints.Float
}

// Buffer is a fixed-capacity circular sample buffer. Capacity is set once at
// construction; storing more than Cap samples overwrites the oldest entry.
type Buffer[T Number] struct {
	samples []T
	next    int  // next slot to overwrite, always in [0, cap)
	full    bool // set once next has wrapped; cleared only by Clear
}

// New creates a Buffer holding up to capacity samples. The storage is
// allocated and zero-filled immediately and never reallocated. A capacity
// below 1 is clamped to 1.
func New[T Number](capacity int) *Buffer[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer[T]{
		samples: make([]T, capacity),
	}
}

// Store writes v over the oldest slot and advances the write position.
// Once the position wraps back to the start, Ready reports true until the
// next Clear.
func (b *Buffer[T]) Store(v T) {
	b.samples[b.next] = v
	b.next++
	if b.next == len(b.samples) {
		b.next = 0
		b.full = true
	}
}

// Len returns the number of slots holding genuine samples: Cap once the
// buffer has wrapped, the number of Store calls before that.
func (b *Buffer[T]) Len() int {
	if b.full {
		return len(b.samples)
	}
	return b.next
}

// Cap returns the fixed capacity chosen at construction.
func (b *Buffer[T]) Cap() int {
	return len(b.samples)
}

// Ready reports whether the buffer has wrapped at least once since
// construction or the last Clear, i.e. every slot holds a genuine sample.
func (b *Buffer[T]) Ready() bool {
	return b.full
}

// Average returns the sum of the stored samples divided by Len. Integer
// element types truncate. Returns the zero value when no sample has been
// stored.
func (b *Buffer[T]) Average() T {
	n := b.Len()
	if n == 0 {
		var zero T
		return zero
	}
	var sum T
	for i := 0; i < n; i++ {
		sum += b.samples[i]
	}
	return sum / T(n)
}

// Latest returns the most recently stored sample, or the zero value when no
// sample has been stored.
func (b *Buffer[T]) Latest() T {
	if b.Len() == 0 {
		var zero T
		return zero
	}
	i := b.next - 1
	if i < 0 {
		i = len(b.samples) - 1
	}
	return b.samples[i]
}

// Highest returns the largest stored sample, or the zero value when no
// sample has been stored.
func (b *Buffer[T]) Highest() T {
	n := b.Len()
	if n == 0 {
		var zero T
		return zero
	}
	highest := b.samples[0]
	for i := 1; i < n; i++ {
		if b.samples[i] > highest {
			highest = b.samples[i]
		}
	}
	return highest
}

// Lowest returns the smallest stored sample, or the zero value when no
// sample has been stored.
func (b *Buffer[T]) Lowest() T {
	n := b.Len()
	if n == 0 {
		var zero T
		return zero
	}
	lowest := b.samples[0]
	for i := 1; i < n; i++ {
		if b.samples[i] < lowest {
			lowest = b.samples[i]
		}
	}
	return lowest
}

// At returns the physical slot at i modulo Cap. It never fails: any index,
// including negative ones, wraps into range. At ignores the logical count,
// so it can expose zero filler before the buffer has wrapped and stale
// values after a Clear. Callers that have issued n Store calls since the
// last Clear can read chronologically with At(n-Len()) .. At(n-1).
func (b *Buffer[T]) At(i int) T {
	i %= len(b.samples)
	if i < 0 {
		i += len(b.samples)
	}
	return b.samples[i]
}

// Clear resets the write position and the Ready flag without zeroing the
// storage. Old values stay physically present but fall outside the logical
// count, so aggregates ignore them until they are overwritten; only At can
// still observe them.
func (b *Buffer[T]) Clear() {
	b.next = 0
	b.full = false
}
