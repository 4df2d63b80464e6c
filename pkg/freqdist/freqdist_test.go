package freqdist

import (
	"testing"
)

func TestInsert(t *testing.T) {
	dist := New[string]()

	dist.Insert("hello")
	dist.Insert("hello")
	dist.Insert("goodbye")

	if got := dist.Get("hello"); got != 2 {
		t.Errorf("Get(hello) = %d, want 2", got)
	}
	if got := dist.Get("goodbye"); got != 1 {
		t.Errorf("Get(goodbye) = %d, want 1", got)
	}
	if got := dist.SumCounts(); got != 3 {
		t.Errorf("SumCounts() = %d, want 3", got)
	}
	if got := dist.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}

func TestInsertRepeated(t *testing.T) {
	dist := New[string]()

	dist.Insert("alpha")
	if got := dist.Get("alpha"); got != 1 {
		t.Errorf("Get(alpha) = %d, want 1", got)
	}

	dist.Insert("beta")
	if got := dist.Get("beta"); got != 1 {
		t.Errorf("Get(beta) = %d, want 1", got)
	}

	for range 7 {
		dist.Insert("alpha")
	}
	if got := dist.Get("alpha"); got != 8 {
		t.Errorf("Get(alpha) = %d, want 8", got)
	}
}

func TestGetAbsentKey(t *testing.T) {
	dist := New[string]()

	if got := dist.Get("never-inserted"); got != 0 {
		t.Errorf("Get() on absent key = %d, want 0", got)
	}

	// Absence must stay a defined zero result after unrelated mutations.
	dist.Insert("present")
	if got := dist.Get("never-inserted"); got != 0 {
		t.Errorf("Get() on absent key after Insert = %d, want 0", got)
	}
}

func TestFromPairs(t *testing.T) {
	dist := FromPairs([]Pair[string]{
		{Key: "a", Count: 50},
		{Key: "b", Count: 100},
		{Key: "c", Count: 75},
		{Key: "d", Count: 0},
	})

	if got := dist.Get("a"); got != 50 {
		t.Errorf("Get(a) = %d, want 50", got)
	}
	if got := dist.Get("b"); got != 100 {
		t.Errorf("Get(b) = %d, want 100", got)
	}
	if got := dist.Get("c"); got != 75 {
		t.Errorf("Get(c) = %d, want 75", got)
	}
	if got := dist.SumCounts(); got != 225 {
		t.Errorf("SumCounts() = %d, want 225", got)
	}

	// The zero-count entry is stored but skipped by NonZero.
	if got := dist.Len(); got != 4 {
		t.Errorf("Len() = %d, want 4", got)
	}

	seen := map[string]bool{}
	for k := range dist.NonZero() {
		seen[k] = true
	}
	want := []string{"a", "b", "c"}
	if len(seen) != len(want) {
		t.Fatalf("NonZero() yielded %d keys, want %d", len(seen), len(want))
	}
	for _, k := range want {
		if !seen[k] {
			t.Errorf("NonZero() missing key %q", k)
		}
	}
}

func TestFromPairsRepeatedKeysAccumulate(t *testing.T) {
	dist := FromPairs([]Pair[string]{
		{Key: "x", Count: 3},
		{Key: "y", Count: 2},
		{Key: "x", Count: 4},
	})

	if got := dist.Get("x"); got != 7 {
		t.Errorf("Get(x) = %d, want 7 (repeats accumulate, not overwrite)", got)
	}
	if got := dist.SumCounts(); got != 9 {
		t.Errorf("SumCounts() = %d, want 9", got)
	}
}

func TestRemove(t *testing.T) {
	dist := FromPairs([]Pair[string]{
		{Key: "a", Count: 50},
		{Key: "b", Count: 100},
		{Key: "c", Count: 75},
		{Key: "d", Count: 0},
	})

	dist.Remove("a")

	if got := dist.Get("a"); got != 0 {
		t.Errorf("Get(a) after Remove = %d, want 0", got)
	}
	if got := dist.SumCounts(); got != 175 {
		t.Errorf("SumCounts() after Remove = %d, want 175", got)
	}
	if got := dist.Len(); got != 3 {
		t.Errorf("Len() after Remove = %d, want 3", got)
	}

	// Removing the same key again is a no-op.
	dist.Remove("a")
	if got := dist.SumCounts(); got != 175 {
		t.Errorf("SumCounts() after double Remove = %d, want 175", got)
	}

	// So is removing a key that was never inserted.
	dist.Remove("zebra")
	if got := dist.SumCounts(); got != 175 {
		t.Errorf("SumCounts() after removing absent key = %d, want 175", got)
	}
}

func TestSumCounts(t *testing.T) {
	dist := FromPairs([]Pair[string]{
		{Key: "a", Count: 7},
		{Key: "b", Count: 5},
		{Key: "c", Count: 8},
		{Key: "d", Count: 3},
	})

	if got := dist.SumCounts(); got != 23 {
		t.Errorf("SumCounts() = %d, want 23", got)
	}

	dist.Insert("e")

	if got := dist.SumCounts(); got != 24 {
		t.Errorf("SumCounts() after Insert = %d, want 24", got)
	}
	if got := dist.Get("e"); got != 1 {
		t.Errorf("Get(e) = %d, want 1", got)
	}
}

func TestClear(t *testing.T) {
	dist := FromPairs([]Pair[string]{
		{Key: "a", Count: 7},
		{Key: "b", Count: 5},
	})
	dist.Insert("c")

	dist.Clear()

	if got := dist.Len(); got != 0 {
		t.Errorf("Len() after Clear = %d, want 0", got)
	}
	if got := dist.SumCounts(); got != 0 {
		t.Errorf("SumCounts() after Clear = %d, want 0", got)
	}
	for _, k := range []string{"a", "b", "c"} {
		if got := dist.Get(k); got != 0 {
			t.Errorf("Get(%q) after Clear = %d, want 0", k, got)
		}
	}

	// A cleared distribution stays consistent through further use.
	dist.Insert("a")
	if got := dist.SumCounts(); got != 1 {
		t.Errorf("SumCounts() after Clear+Insert = %d, want 1", got)
	}
}

func TestExtend(t *testing.T) {
	dist := New[string]()
	src := FromPairs([]Pair[string]{
		{Key: "a", Count: 2},
		{Key: "b", Count: 3},
	})

	dist.Extend(src.All())
	dist.Extend(src.All())

	if got := dist.Get("a"); got != 4 {
		t.Errorf("Get(a) = %d, want 4", got)
	}
	if got := dist.Get("b"); got != 6 {
		t.Errorf("Get(b) = %d, want 6", got)
	}
	if got := dist.SumCounts(); got != 10 {
		t.Errorf("SumCounts() = %d, want 10", got)
	}
}

func TestMerge(t *testing.T) {
	a := FromPairs([]Pair[string]{{Key: "x", Count: 1}, {Key: "y", Count: 2}})
	b := FromPairs([]Pair[string]{{Key: "y", Count: 3}, {Key: "z", Count: 4}})

	a.Merge(b)

	if got := a.Get("y"); got != 5 {
		t.Errorf("Get(y) = %d, want 5", got)
	}
	if got := a.SumCounts(); got != 10 {
		t.Errorf("SumCounts() = %d, want 10", got)
	}
	// Merge must not disturb its argument.
	if got := b.SumCounts(); got != 7 {
		t.Errorf("other.SumCounts() = %d, want 7", got)
	}
}

func TestCollect(t *testing.T) {
	src := FromPairs([]Pair[int]{
		{Key: 1, Count: 10},
		{Key: 2, Count: 20},
	})

	dist := Collect(src.All())

	if got := dist.Get(1); got != 10 {
		t.Errorf("Get(1) = %d, want 10", got)
	}
	if got := dist.Get(2); got != 20 {
		t.Errorf("Get(2) = %d, want 20", got)
	}
	if got := dist.SumCounts(); got != 30 {
		t.Errorf("SumCounts() = %d, want 30", got)
	}
}

func TestAllVisitsEveryEntry(t *testing.T) {
	pairs := []Pair[string]{
		{Key: "a", Count: 1},
		{Key: "b", Count: 2},
		{Key: "c", Count: 0},
	}
	dist := FromPairs(pairs)

	got := map[string]uint64{}
	for k, n := range dist.All() {
		got[k] = n
	}

	if len(got) != len(pairs) {
		t.Fatalf("All() yielded %d entries, want %d", len(got), len(pairs))
	}
	for _, p := range pairs {
		if got[p.Key] != p.Count {
			t.Errorf("All() yielded %q=%d, want %d", p.Key, got[p.Key], p.Count)
		}
	}
}

func TestIterationEarlyStop(t *testing.T) {
	dist := FromPairs([]Pair[string]{
		{Key: "a", Count: 1},
		{Key: "b", Count: 2},
		{Key: "c", Count: 3},
	})

	n := 0
	for range dist.All() {
		n++
		break
	}
	if n != 1 {
		t.Errorf("All() yielded %d entries before break, want 1", n)
	}

	n = 0
	for range dist.NonZero() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("NonZero() yielded %d keys before break, want 2", n)
	}
}

func TestDrain(t *testing.T) {
	dist := FromPairs([]Pair[string]{
		{Key: "a", Count: 5},
		{Key: "b", Count: 10},
	})

	got := map[string]uint64{}
	for k, n := range dist.Drain() {
		got[k] = n
	}

	if len(got) != 2 || got["a"] != 5 || got["b"] != 10 {
		t.Errorf("Drain() yielded %v, want map[a:5 b:10]", got)
	}

	// Everything was handed out; the distribution is spent.
	if got := dist.Len(); got != 0 {
		t.Errorf("Len() after Drain = %d, want 0", got)
	}
	if got := dist.SumCounts(); got != 0 {
		t.Errorf("SumCounts() after Drain = %d, want 0", got)
	}
}

func TestTotalMatchesSumInvariant(t *testing.T) {
	dist := New[int]()

	for i := range 100 {
		dist.Add(i%7, uint64(i))
	}
	dist.Remove(3)
	dist.Remove(3)
	dist.Insert(42)
	dist.Add(5, 0)

	var sum uint64
	for _, n := range dist.All() {
		sum += n
	}
	if dist.SumCounts() != sum {
		t.Errorf("SumCounts() = %d, want sum of entries %d", dist.SumCounts(), sum)
	}
}

func TestIntKeys(t *testing.T) {
	dist := NewWithCapacity[int](4)

	dist.Insert(7)
	dist.Add(7, 2)
	dist.Insert(11)

	if got := dist.Get(7); got != 3 {
		t.Errorf("Get(7) = %d, want 3", got)
	}
	if got := dist.SumCounts(); got != 4 {
		t.Errorf("SumCounts() = %d, want 4", got)
	}
}
