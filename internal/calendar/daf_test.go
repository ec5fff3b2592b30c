package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDafYomiBavli(t *testing.T) {
	tests := []struct {
		date     time.Time
		cycle    int
		tractate BavliTractate
		daf      int
	}{
		{civil(2024, 6, 21), 14, BavliBavaMetzia, 114},
		{civil(1980, 2, 2), 8, BavliBavaBasra, 51},
		{civil(2024, 10, 12), 14, BavliBavaBasra, 109},
		{civil(2024, 10, 13), 14, BavliBavaBasra, 110},
		{civil(2020, 1, 5), 14, BavliBerachos, 2},
		{civil(2012, 8, 3), 13, BavliBerachos, 2},
		{civil(2025, 1, 1), 14, BavliSanhedrin, 15},
		{civil(1975, 6, 23), 7, BavliNiddah, 73},
		{civil(1975, 6, 24), 8, BavliBerachos, 2},
		{civil(1923, 9, 11), 1, BavliBerachos, 2},
	}

	for _, tt := range tests {
		d, err := FromGregorian(tt.date)
		require.NoError(t, err)
		got, ok := d.DafYomiBavli()
		require.True(t, ok, FormatDate(tt.date))
		assert.Equal(t, BavliDaf{Cycle: tt.cycle, Tractate: tt.tractate, Daf: tt.daf}, got, "%s: got %s", FormatDate(tt.date), got)
	}

	d, _ := FromGregorian(civil(1923, 9, 10))
	_, ok := d.DafYomiBavli()
	assert.False(t, ok)
}

func TestDafYomiYerushalmi(t *testing.T) {
	tests := []struct {
		date     time.Time
		tractate YerushalmiTractate
		daf      int
	}{
		{civil(2024, 6, 21), YerushalmiPesachim, 34},
		{civil(1980, 2, 2), YerushalmiBerachos, 1},
		{civil(2024, 10, 13), YerushalmiBavaMetzia, 16},
		{civil(2020, 1, 5), YerushalmiBavaBasra, 12},
		{civil(2012, 8, 3), YerushalmiYevamos, 62},
		{civil(2025, 1, 1), YerushalmiShekalim, 17},
	}

	for _, tt := range tests {
		d, err := FromGregorian(tt.date)
		require.NoError(t, err)
		got, ok := d.DafYomiYerushalmi()
		require.True(t, ok, FormatDate(tt.date))
		assert.Equal(t, YerushalmiDaf{Tractate: tt.tractate, Daf: tt.daf}, got, "%s: got %s", FormatDate(tt.date), got)
	}

	for _, absent := range []time.Time{
		civil(2024, 10, 12), // Yom Kippur
		civil(1975, 6, 23),  // before the first cycle
		civil(1980, 2, 1),
	} {
		d, err := FromGregorian(absent)
		require.NoError(t, err)
		_, ok := d.DafYomiYerushalmi()
		assert.False(t, ok, FormatDate(absent))
	}
}

func TestYerushalmiSkipsNoLearningDays(t *testing.T) {
	// The page after Yom Kippur follows the page before it.
	before, _ := FromGregorian(civil(2024, 10, 11))
	after, _ := FromGregorian(civil(2024, 10, 13))

	b, ok := before.DafYomiYerushalmi()
	require.True(t, ok)
	a, ok := after.DafYomiYerushalmi()
	require.True(t, ok)
	assert.Equal(t, b.Tractate, a.Tractate)
	assert.Equal(t, b.Daf+1, a.Daf)
}

func TestDafNames(t *testing.T) {
	daf := BavliDaf{Cycle: 14, Tractate: BavliBavaMetzia, Daf: 114}
	assert.Equal(t, "Bava Metzia 114", daf.String())
	assert.Equal(t, "בבא מציעא קיד", daf.Hebrew())
	assert.Equal(t, "Pesachim 34", YerushalmiDaf{Tractate: YerushalmiPesachim, Daf: 34}.String())
}
