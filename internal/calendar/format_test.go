package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHebrewNumeral(t *testing.T) {
	tests := []struct {
		n         int
		punctuate bool
		want      string
	}{
		{1, true, "א׳"},
		{2, false, "ב"},
		{15, true, "ט״ו"},
		{16, true, "ט״ז"},
		{30, true, "ל׳"},
		{114, false, "קיד"},
		{5784, true, "תשפ״ד"},
		{5785, true, "תשפ״ה"},
		{5800, true, "ת״ת"},
		{0, true, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HebrewNumeral(tt.n, tt.punctuate), "%d", tt.n)
	}
}

func TestOrdinal(t *testing.T) {
	want := map[int]string{1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th", 12: "12th", 13: "13th", 21: "21st", 22: "22nd", 33: "33rd", 111: "111th"}
	for n, s := range want {
		assert.Equal(t, s, Ordinal(n))
	}
}

func TestDateHebrew(t *testing.T) {
	assert.Equal(t, "ט״ו סיון תשפ״ד", MustFromHebrew(5784, Sivan, 15).Hebrew())
	assert.Equal(t, "א׳ אדר ב תשפ״ד", MustFromHebrew(5784, AdarII, 1).Hebrew())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDateString("2024-06-21")
	require.NoError(t, err)
	assert.Equal(t, civil(2024, 6, 21), d)
	assert.Equal(t, "2024-06-21", FormatDate(d))
	assert.Equal(t, "Friday", DayName(d))

	loc := time.FixedZone("EST", -5*60*60)
	d, err = ParseDateIn("2024-06-21", loc)
	require.NoError(t, err)
	assert.Equal(t, loc, d.Location())
	assert.Equal(t, 21, d.Day())

	_, err = ParseDateString("21/06/2024")
	assert.Error(t, err)
}
