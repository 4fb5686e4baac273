/*
Package sampler provides a fixed-capacity circular buffer for numeric samples
with constant-memory aggregate queries (average, minimum, maximum, latest).

A Buffer is sized once at construction and never reallocates, which makes it
suitable for long-running periodic sampling (sensor readings, timing
measurements) where memory use must stay bounded. New samples overwrite the
oldest entry once the buffer has wrapped.

The package is built with Go generics: a Buffer works with any integer or
float element type and all methods operate directly on that type.

	buf := sampler.New[int](2)
	buf.Store(10)
	buf.Store(20)
	avg := buf.Average() // 15

A Buffer distinguishes between its fixed capacity (Cap) and the number of
genuine samples stored so far (Len). Until the buffer has wrapped once,
Ready reports false and aggregates cover only the samples stored so far.

No method returns samples in recency order. Average, Highest and Lowest scan
physical slots, which stops matching chronological order after the first
wraparound; that is harmless for order-independent aggregates but callers
wanting chronological iteration must track their own store count and use At.

A Buffer is not safe for concurrent use. It is designed for a single owner,
typically a collection loop that stores on every tick and reads between
ticks; wrap it with external locking if it must be shared.
*/
package sampler
