package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrailPutAndMerge(t *testing.T) {
	var a Trail
	a.Put("80c/total_invested", Rupees(170000))
	a.Put("80c/eligible", Rupees(150000))

	var b Trail
	b.Put("80d/eligible", Rupees(25000))

	var merged Trail
	merged.Merge(a)
	merged.Merge(b)

	require.Equal(t, 3, merged.Len())
	entries := merged.Entries()
	assert.Equal(t, "80c/total_invested", entries[0].Key)
	assert.Equal(t, "80d/eligible", entries[2].Key)

	v, ok := merged.Lookup("80c/eligible")
	require.True(t, ok)
	assert.True(t, Rupees(150000).Equal(v.(Money)))

	_, ok = merged.Lookup("missing")
	assert.False(t, ok)
}

func TestTrailLastWriteWins(t *testing.T) {
	var tr Trail
	tr.Put("key", 1)
	tr.Put("key", 2)

	v, ok := tr.Lookup("key")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestTrailEntriesAreACopy(t *testing.T) {
	var tr Trail
	tr.Put("key", 1)

	entries := tr.Entries()
	entries[0].Key = "mutated"

	v, ok := tr.Lookup("key")
	require.True(t, ok)
	assert.Equal(t, 1, v)
}
