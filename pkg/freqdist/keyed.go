package freqdist

import "iter"

// Keyed is a frequency distribution over key types the built-in map cannot
// store directly. Go fixes the hash function per map key type and does not
// expose the algorithm, so the lookup strategy is supplied at construction
// instead: a projection from K to a comparable lookup key H. Counting
// behavior matches Distribution as long as the projection is injective over
// the keys actually observed.
type Keyed[K any, H comparable] struct {
	keyOf   func(K) H
	entries map[H]keyedEntry[K]
	total   uint64
}

type keyedEntry[K any] struct {
	key   K
	count uint64
}

// NewKeyed creates an empty Keyed distribution that locates entries through
// the keyOf projection.
func NewKeyed[K any, H comparable](keyOf func(K) H) *Keyed[K, H] {
	return &Keyed[K, H]{
		keyOf:   keyOf,
		entries: make(map[H]keyedEntry[K]),
	}
}

// NewKeyedWithCapacity creates an empty Keyed distribution with room
// reserved for n distinct keys.
func NewKeyedWithCapacity[K any, H comparable](n int, keyOf func(K) H) *Keyed[K, H] {
	return &Keyed[K, H]{
		keyOf:   keyOf,
		entries: make(map[H]keyedEntry[K], n),
	}
}

// Len returns the number of stored keys, including zero-count entries.
func (d *Keyed[K, H]) Len() int {
	return len(d.entries)
}

// SumCounts returns the running total of all counts currently stored.
func (d *Keyed[K, H]) SumCounts() uint64 {
	return d.total
}

// Get returns the count for k, or zero if k is absent.
func (d *Keyed[K, H]) Get(k K) uint64 {
	return d.entries[d.keyOf(k)].count
}

// Insert records a single occurrence of k.
func (d *Keyed[K, H]) Insert(k K) {
	d.Add(k, 1)
}

// Add records n occurrences of k, inserting the key if it is absent. The
// first observation of a key is the one retained for iteration.
func (d *Keyed[K, H]) Add(k K, n uint64) {
	h := d.keyOf(k)
	e, ok := d.entries[h]
	if !ok {
		e = keyedEntry[K]{key: k}
	}
	e.count += n
	d.entries[h] = e
	d.total += n
}

// Remove deletes k and its count entirely, reducing the total by the
// removed count. Removing an absent key is a no-op.
func (d *Keyed[K, H]) Remove(k K) {
	h := d.keyOf(k)
	e, ok := d.entries[h]
	if !ok {
		return
	}
	delete(d.entries, h)
	d.total -= e.count
}

// Clear removes every key and resets the total to zero.
func (d *Keyed[K, H]) Clear() {
	clear(d.entries)
	d.total = 0
}

// All returns a lazy iterator over every stored key/count entry.
func (d *Keyed[K, H]) All() iter.Seq2[K, uint64] {
	return func(yield func(K, uint64) bool) {
		for _, e := range d.entries {
			if !yield(e.key, e.count) {
				return
			}
		}
	}
}

// NonZero returns a lazy iterator over keys whose stored count is greater
// than zero.
func (d *Keyed[K, H]) NonZero() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, e := range d.entries {
			if e.count > 0 && !yield(e.key) {
				return
			}
		}
	}
}
