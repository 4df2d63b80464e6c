// Package freqdist implements a frequency distribution: a multiset that
// tracks how many times each distinct key has been observed in a larger
// context (for example, how many times a token appears in a piece of text),
// together with a running total across all keys.
package freqdist

import (
	"iter"
	"maps"
)

// Pair is a key with its count, used for bulk construction and ingestion.
type Pair[K comparable] struct {
	Key   K
	Count uint64
}

// Distribution counts occurrences of comparable keys. The underlying storage
// is a Go map, so iteration order is unspecified and not stable across
// mutations.
//
// No thread safety is provided; callers sharing a Distribution across
// goroutines must supply their own locking.
type Distribution[K comparable] struct {
	counts map[K]uint64
	total  uint64
}

// New creates an empty Distribution.
func New[K comparable]() *Distribution[K] {
	return &Distribution[K]{counts: make(map[K]uint64)}
}

// NewWithCapacity creates an empty Distribution with room reserved for n
// distinct keys. The hint affects only allocation, never observable
// behavior.
func NewWithCapacity[K comparable](n int) *Distribution[K] {
	return &Distribution[K]{counts: make(map[K]uint64, n)}
}

// FromPairs builds a Distribution from key/count pairs, pre-sizing storage
// for len(pairs) keys. Repeated keys accumulate in input order rather than
// overwrite.
func FromPairs[K comparable](pairs []Pair[K]) *Distribution[K] {
	d := NewWithCapacity[K](len(pairs))
	d.ExtendPairs(pairs)
	return d
}

// Collect builds a Distribution from a key/count sequence. Sequences carry
// no size hint, so storage starts unsized and grows as needed.
func Collect[K comparable](seq iter.Seq2[K, uint64]) *Distribution[K] {
	d := New[K]()
	d.Extend(seq)
	return d
}

// Len returns the number of stored keys, including any entry whose count is
// still zero.
func (d *Distribution[K]) Len() int {
	return len(d.counts)
}

// SumCounts returns the running total of all counts currently stored.
func (d *Distribution[K]) SumCounts() uint64 {
	return d.total
}

// Get returns the count for k, or zero if k is absent. Absence is not an
// error; Get never fails.
func (d *Distribution[K]) Get(k K) uint64 {
	return d.counts[k]
}

// Insert records a single occurrence of k.
func (d *Distribution[K]) Insert(k K) {
	d.Add(k, 1)
}

// Add records n occurrences of k, inserting the key if it is absent. Every
// ingestion path funnels through Add, which keeps the total equal to the sum
// of all stored counts.
func (d *Distribution[K]) Add(k K, n uint64) {
	d.counts[k] += n
	d.total += n
}

// Extend ingests every key/count pair produced by seq. Later pairs for the
// same key accumulate onto earlier ones.
func (d *Distribution[K]) Extend(seq iter.Seq2[K, uint64]) {
	for k, n := range seq {
		d.Add(k, n)
	}
}

// ExtendPairs ingests key/count pairs in slice order.
func (d *Distribution[K]) ExtendPairs(pairs []Pair[K]) {
	for _, p := range pairs {
		d.Add(p.Key, p.Count)
	}
}

// Merge accumulates every entry of other into d. other is left unchanged.
func (d *Distribution[K]) Merge(other *Distribution[K]) {
	for k, n := range other.counts {
		d.Add(k, n)
	}
}

// Remove deletes k and its count entirely, reducing the total by the removed
// count. Removing an absent key is a no-op.
func (d *Distribution[K]) Remove(k K) {
	n, ok := d.counts[k]
	if !ok {
		return
	}
	delete(d.counts, k)
	d.total -= n
}

// Clear removes every key and resets the total to zero.
func (d *Distribution[K]) Clear() {
	clear(d.counts)
	d.total = 0
}

// Keys returns a lazy iterator over every stored key.
func (d *Distribution[K]) Keys() iter.Seq[K] {
	return maps.Keys(d.counts)
}

// All returns a lazy iterator over every stored key/count entry. The
// distribution must not be mutated while iterating.
func (d *Distribution[K]) All() iter.Seq2[K, uint64] {
	return maps.All(d.counts)
}

// NonZero returns a lazy iterator over keys whose stored count is greater
// than zero. Entries with a transient zero count are skipped in place, with
// no intermediate collection.
func (d *Distribution[K]) NonZero() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k, n := range d.counts {
			if n > 0 && !yield(k) {
				return
			}
		}
	}
}

// Drain returns a consuming iterator over every key/count entry. Ownership
// of the storage transfers to the iterator: the distribution is left empty
// and must not be reused, and the iterator itself is not restartable.
func (d *Distribution[K]) Drain() iter.Seq2[K, uint64] {
	counts := d.counts
	d.counts = nil
	d.total = 0
	return func(yield func(K, uint64) bool) {
		for k, n := range counts {
			delete(counts, k)
			if !yield(k, n) {
				return
			}
		}
	}
}
