package sampler

import "testing"

func storeAll[T Number](b *Buffer[T], vals ...T) {
	for _, v := range vals {
		b.Store(v)
	}
}

func TestAveragePartialFill(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		values   []int
		want     int
	}{
		{"single value", 3, []int{5}, 5},
		{"two of three", 3, []int{10, 20}, 15},
		{"exactly full", 2, []int{10, 20}, 15},
		{"integer truncation", 4, []int{1, 2}, 1}, // 3/2 truncates
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New[int](tt.capacity)
			storeAll(b, tt.values...)
			if got := b.Average(); got != tt.want {
				t.Errorf("Average() = %d, want %d", got, tt.want)
			}
			if got := b.Len(); got != len(tt.values) {
				t.Errorf("Len() = %d, want %d", got, len(tt.values))
			}
		})
	}
}

func TestWraparoundEvictsOldest(t *testing.T) {
	b := New[int](3)
	storeAll(b, 1, 2, 3, 4) // 1 is evicted

	if got := b.Average(); got != 3 { // (4+2+3)/3
		t.Errorf("Average() after wrap = %d, want 3", got)
	}
	if got := b.Lowest(); got != 2 {
		t.Errorf("Lowest() after wrap = %d, want 2 (1 must be evicted)", got)
	}
	if got := b.Highest(); got != 4 {
		t.Errorf("Highest() after wrap = %d, want 4", got)
	}
	if got := b.Latest(); got != 4 {
		t.Errorf("Latest() after wrap = %d, want 4", got)
	}
}

func TestReadyTransitions(t *testing.T) {
	b := New[int](3)

	for i := 1; i < 3; i++ {
		b.Store(i)
		if b.Ready() {
			t.Fatalf("Ready() = true after %d of 3 stores", i)
		}
	}
	b.Store(3)
	if !b.Ready() {
		t.Fatal("Ready() = false after capacity stores")
	}

	// Stays ready while overwriting.
	b.Store(4)
	if !b.Ready() {
		t.Fatal("Ready() = false after overwrite")
	}
}

func TestReadyCapacityOne(t *testing.T) {
	b := New[int](1)
	if b.Ready() {
		t.Fatal("Ready() = true on empty buffer")
	}
	b.Store(7)
	if !b.Ready() {
		t.Fatal("Ready() = false after single store into capacity-1 buffer")
	}
	if got := b.Latest(); got != 7 {
		t.Errorf("Latest() = %d, want 7", got)
	}
}

func TestLatestTracksEveryStore(t *testing.T) {
	b := New[int](4)
	for v := 1; v <= 10; v++ {
		b.Store(v)
		if got := b.Latest(); got != v {
			t.Fatalf("Latest() = %d after storing %d", got, v)
		}
	}
}

func TestHighestLowestBounds(t *testing.T) {
	values := []float64{3.5, -1.25, 7.0, 2.5}
	b := New[float64](8)
	storeAll(b, values...)

	hi, lo := b.Highest(), b.Lowest()
	if hi != 7.0 {
		t.Errorf("Highest() = %v, want 7.0", hi)
	}
	if lo != -1.25 {
		t.Errorf("Lowest() = %v, want -1.25", lo)
	}
	for _, v := range values {
		if v > hi || v < lo {
			t.Errorf("stored value %v outside [%v, %v]", v, lo, hi)
		}
	}
}

func TestClearResetsLogicalView(t *testing.T) {
	b := New[int](3)
	storeAll(b, 100, 200, 300)
	if !b.Ready() {
		t.Fatal("Ready() = false after filling")
	}

	b.Clear()
	if b.Ready() {
		t.Error("Ready() = true after Clear()")
	}
	if got := b.Len(); got != 0 {
		t.Errorf("Len() = %d after Clear(), want 0", got)
	}

	// A single store makes aggregates see only the new value, regardless of
	// stale pre-clear contents still in storage.
	b.Store(5)
	if got := b.Latest(); got != 5 {
		t.Errorf("Latest() = %d after post-clear store, want 5", got)
	}
	if got := b.Average(); got != 5 {
		t.Errorf("Average() = %d after post-clear store, want 5", got)
	}
	if got := b.Highest(); got != 5 {
		t.Errorf("Highest() = %d after post-clear store, want 5", got)
	}
}

func TestClearKeepsPhysicalStorage(t *testing.T) {
	b := New[int](3)
	storeAll(b, 100, 200, 300)
	b.Clear()

	// Clear is a fast clear: At bypasses the logical count and still sees
	// the stale slots until they are overwritten.
	if got := b.At(1); got != 200 {
		t.Errorf("At(1) after Clear() = %d, want stale 200", got)
	}
}

func TestAtWrapsNeverFails(t *testing.T) {
	b := New[int](3)
	storeAll(b, 10, 20, 30)

	tests := []struct {
		idx  int
		want int
	}{
		{0, 10},
		{2, 30},
		{3, 10},  // wraps
		{7, 20},  // 7 mod 3 = 1
		{-1, 30}, // negative wraps into range
		{-3, 10},
	}
	for _, tt := range tests {
		if got := b.At(tt.idx); got != tt.want {
			t.Errorf("At(%d) = %d, want %d", tt.idx, got, tt.want)
		}
	}
}

func TestAtExposesFillerBeforeWrap(t *testing.T) {
	b := New[int](3)
	b.Store(42)
	if got := b.At(2); got != 0 {
		t.Errorf("At(2) on partially filled buffer = %d, want zero filler", got)
	}
}

func TestChronologicalReadViaAt(t *testing.T) {
	// A caller tracking its own store count can walk samples oldest to
	// newest through At's modulo wrap.
	b := New[int](3)
	stores := []int{1, 2, 3, 4, 5}
	storeAll(b, stores...)

	n := len(stores)
	want := []int{3, 4, 5}
	for i := 0; i < b.Len(); i++ {
		if got := b.At(n - b.Len() + i); got != want[i] {
			t.Errorf("At(%d) = %d, want %d", n-b.Len()+i, got, want[i])
		}
	}
}

func TestEmptyBufferAggregatesAreZero(t *testing.T) {
	b := New[float64](4)
	if got := b.Average(); got != 0 {
		t.Errorf("Average() on empty buffer = %v, want 0", got)
	}
	if got := b.Highest(); got != 0 {
		t.Errorf("Highest() on empty buffer = %v, want 0", got)
	}
	if got := b.Lowest(); got != 0 {
		t.Errorf("Lowest() on empty buffer = %v, want 0", got)
	}
	if got := b.Latest(); got != 0 {
		t.Errorf("Latest() on empty buffer = %v, want 0", got)
	}
}

func TestCapacityClamped(t *testing.T) {
	for _, c := range []int{0, -5} {
		b := New[int](c)
		if got := b.Cap(); got != 1 {
			t.Errorf("New(%d).Cap() = %d, want 1", c, got)
		}
		b.Store(9)
		if got := b.Latest(); got != 9 {
			t.Errorf("Latest() = %d, want 9", got)
		}
	}
}

func TestScenarioCapacityTwo(t *testing.T) {
	b := New[int](2)
	b.Store(10)
	b.Store(20)

	if got := b.Average(); got != 15 {
		t.Errorf("Average() = %d, want 15", got)
	}
	if got := b.Latest(); got != 20 {
		t.Errorf("Latest() = %d, want 20", got)
	}
	if got := b.Highest(); got != 20 {
		t.Errorf("Highest() = %d, want 20", got)
	}
	if got := b.Lowest(); got != 10 {
		t.Errorf("Lowest() = %d, want 10", got)
	}
	if !b.Ready() {
		t.Error("Ready() = false after filling capacity-2 buffer")
	}

	b.Store(30)
	if got := b.Average(); got != 25 { // (30+20)/2
		t.Errorf("Average() after overwrite = %d, want 25", got)
	}
	if got := b.Latest(); got != 30 {
		t.Errorf("Latest() after overwrite = %d, want 30", got)
	}
	if !b.Ready() {
		t.Error("Ready() went false after overwrite")
	}
}

func TestScenarioCapacityThreePartial(t *testing.T) {
	b := New[int](3)
	b.Store(5)

	if b.Ready() {
		t.Error("Ready() = true after one of three stores")
	}
	if got := b.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
	if got := b.Average(); got != 5 {
		t.Errorf("Average() = %d, want 5", got)
	}
	if got := b.Latest(); got != 5 {
		t.Errorf("Latest() = %d, want 5", got)
	}
}

func TestReuseAfterClear(t *testing.T) {
	b := New[int](2)
	for round := 0; round < 3; round++ {
		storeAll(b, 1, 2, 3)
		if !b.Ready() {
			t.Fatalf("round %d: Ready() = false after wrap", round)
		}
		b.Clear()
		if b.Len() != 0 || b.Ready() {
			t.Fatalf("round %d: Clear() did not reset state", round)
		}
	}
}
