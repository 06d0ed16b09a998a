package domain

// TrailEntry is one intermediate figure recorded during a computation.
// Value is a Money or a plain scalar (int, bool, string).
type TrailEntry struct {
	Key   string
	Value any
}

// Trail is the flat audit ledger of a deduction computation. Section
// calculators return their own fragment and the aggregator merges them, so no
// mutable sink is ever shared between callers. The zero value is ready to use.
type Trail struct {
	entries []TrailEntry
}

// Put appends an entry. Keys are stable, slash-separated, lowercase, e.g.
// "80c/life_insurance_premium" or "total/combined_cap_group".
func (t *Trail) Put(key string, value any) {
	t.entries = append(t.entries, TrailEntry{Key: key, Value: value})
}

// Merge appends all entries of other, preserving their order.
func (t *Trail) Merge(other Trail) {
	t.entries = append(t.entries, other.entries...)
}

// Entries returns a copy of the recorded entries in insertion order.
func (t *Trail) Entries() []TrailEntry {
	out := make([]TrailEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Lookup returns the value recorded under key. When a key was written more
// than once the last write wins.
func (t *Trail) Lookup(key string) (any, bool) {
	for i := len(t.entries) - 1; i >= 0; i-- {
		if t.entries[i].Key == key {
			return t.entries[i].Value, true
		}
	}
	return nil, false
}

func (t *Trail) Len() int {
	return len(t.entries)
}
