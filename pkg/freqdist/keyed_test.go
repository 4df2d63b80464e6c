package freqdist

import (
	"strings"
	"testing"
)

type token struct {
	Text string
	Line int
}

func TestKeyedInsertAndGet(t *testing.T) {
	// Case-insensitive token counting through a lookup projection.
	dist := NewKeyed(func(tok token) string {
		return strings.ToLower(tok.Text)
	})

	dist.Insert(token{Text: "Hello", Line: 1})
	dist.Insert(token{Text: "hello", Line: 2})
	dist.Insert(token{Text: "world", Line: 2})

	if got := dist.Get(token{Text: "HELLO"}); got != 2 {
		t.Errorf("Get(HELLO) = %d, want 2", got)
	}
	if got := dist.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
	if got := dist.SumCounts(); got != 3 {
		t.Errorf("SumCounts() = %d, want 3", got)
	}
}

func TestKeyedRemove(t *testing.T) {
	dist := NewKeyedWithCapacity(2, func(tok token) string {
		return strings.ToLower(tok.Text)
	})
	dist.Add(token{Text: "alpha"}, 5)
	dist.Add(token{Text: "beta"}, 3)

	dist.Remove(token{Text: "ALPHA"})

	if got := dist.Get(token{Text: "alpha"}); got != 0 {
		t.Errorf("Get(alpha) after Remove = %d, want 0", got)
	}
	if got := dist.SumCounts(); got != 3 {
		t.Errorf("SumCounts() after Remove = %d, want 3", got)
	}

	dist.Remove(token{Text: "alpha"})
	if got := dist.SumCounts(); got != 3 {
		t.Errorf("SumCounts() after double Remove = %d, want 3", got)
	}
}

func TestKeyedClear(t *testing.T) {
	dist := NewKeyed(func(s []string) string {
		return strings.Join(s, "\x00")
	})
	dist.Insert([]string{"a", "b"})
	dist.Insert([]string{"a", "b"})
	dist.Insert([]string{"c"})

	if got := dist.Get([]string{"a", "b"}); got != 2 {
		t.Errorf("Get([a b]) = %d, want 2", got)
	}

	dist.Clear()

	if got := dist.Len(); got != 0 {
		t.Errorf("Len() after Clear = %d, want 0", got)
	}
	if got := dist.SumCounts(); got != 0 {
		t.Errorf("SumCounts() after Clear = %d, want 0", got)
	}
}

func TestKeyedIteration(t *testing.T) {
	dist := NewKeyed(func(tok token) string {
		return strings.ToLower(tok.Text)
	})
	dist.Add(token{Text: "a"}, 2)
	dist.Add(token{Text: "b"}, 0)

	var total uint64
	entries := 0
	for _, n := range dist.All() {
		total += n
		entries++
	}
	if entries != 2 {
		t.Errorf("All() yielded %d entries, want 2", entries)
	}
	if total != dist.SumCounts() {
		t.Errorf("sum over All() = %d, want %d", total, dist.SumCounts())
	}

	nonZero := 0
	for range dist.NonZero() {
		nonZero++
	}
	if nonZero != 1 {
		t.Errorf("NonZero() yielded %d keys, want 1", nonZero)
	}
}
