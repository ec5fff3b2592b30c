package zmanim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZmanKeysRoundTrip(t *testing.T) {
	seen := map[string]bool{}
	for _, z := range Zmanim() {
		key := z.Key()
		require.NotEmpty(t, key, "zman %d has no key", z)
		assert.False(t, seen[key], "duplicate key %q", key)
		seen[key] = true

		got, ok := ParseZman(key)
		require.True(t, ok)
		assert.Equal(t, z, got)
		assert.NotEmpty(t, z.String())
		assert.NotEmpty(t, z.Hebrew())
	}
	assert.Equal(t, "", Zman(-1).Key())
}

func TestParseZmanim(t *testing.T) {
	zmanim, bad := ParseZmanim("sunrise, tzais ,,bogus,chatzos")
	assert.Equal(t, []Zman{Sunrise, Tzais, Chatzos}, zmanim)
	assert.Equal(t, []string{"bogus"}, bad)
}

func TestSortedFollowsListingOrder(t *testing.T) {
	cal := jerusalem(t, 2024, time.June, 21, DefaultOptions())
	entries := Sorted(cal.Select([]Zman{Tzais, Sunrise, ChatzosHalayla, AlosHashachar}))

	require.Len(t, entries, 4)
	assert.Equal(t, AlosHashachar, entries[0].Zman)
	assert.Equal(t, Sunrise, entries[1].Zman)
	assert.Equal(t, Tzais, entries[2].Zman)
	assert.Equal(t, ChatzosHalayla, entries[3].Zman)

	for i := 1; i < len(entries); i++ {
		assert.True(t, entries[i-1].Time.Before(entries[i].Time))
	}
}

func TestShaahZmanisBasedZman(t *testing.T) {
	start := time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 18, 0, 0, 0, time.UTC)

	assert.Equal(t, start.Add(3*time.Hour), ShaahZmanisBasedZman(start, end, 3))
	assert.Equal(t, start.Add(9*time.Hour+30*time.Minute), ShaahZmanisBasedZman(start, end, 9.5))
	assert.Equal(t, start.Add(6*time.Hour), HalfDayBasedZman(start, end, 3))
	assert.Equal(t, end.Add(-3*time.Hour), HalfDayBasedZman(start, end, -1.5))
}
