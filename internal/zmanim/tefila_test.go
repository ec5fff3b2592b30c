package zmanim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapponejosh/zmanim-api/internal/calendar"
)

func diaspora(t *testing.T, year int, month time.Month, day int) calendar.Calendar {
	t.Helper()
	d, err := calendar.FromGregorian(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return calendar.NewCalendar(d, false)
}

func TestTefilaDay(t *testing.T) {
	rules := DefaultTefilaRules()

	tests := []struct {
		name string
		date time.Time
		want Tefila
	}{
		{
			name: "ordinary monday",
			date: time.Date(2024, 6, 24, 0, 0, 0, 0, time.UTC),
			want: Tefila{TachanunShacharis: true, TachanunMincha: true, MizmorLesoda: true, MoridHatal: true},
		},
		{
			name: "shabbos",
			date: time.Date(2024, 6, 22, 0, 0, 0, 0, time.UTC),
			want: Tefila{MoridHatal: true},
		},
		{
			name: "rosh chodesh tammuz",
			date: time.Date(2024, 7, 7, 0, 0, 0, 0, time.UTC),
			want: Tefila{Hallel: true, YaalehVeyavo: true, MizmorLesoda: true, MoridHatal: true},
		},
		{
			name: "chanukah",
			date: time.Date(2024, 12, 26, 0, 0, 0, 0, time.UTC),
			want: Tefila{Hallel: true, HallelShalem: true, AlHanissim: true, MizmorLesoda: true, VeseinTalUmatar: true, MashivHaruach: true},
		},
		{
			name: "purim",
			date: time.Date(2024, 3, 24, 0, 0, 0, 0, time.UTC),
			want: Tefila{AlHanissim: true, MizmorLesoda: true, VeseinTalUmatar: true, MashivHaruach: true},
		},
		{
			name: "first day of pesach",
			date: time.Date(2024, 4, 23, 0, 0, 0, 0, time.UTC),
			want: Tefila{Hallel: true, HallelShalem: true, YaalehVeyavo: true, MoridHatal: true},
		},
		{
			name: "chol hamoed pesach",
			date: time.Date(2024, 4, 25, 0, 0, 0, 0, time.UTC),
			want: Tefila{Hallel: true, YaalehVeyavo: true, MoridHatal: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := diaspora(t, tt.date.Year(), tt.date.Month(), tt.date.Day())
			assert.Equal(t, tt.want, rules.Day(c))
		})
	}
}

func TestTachanunMinchaBeforeRoshChodesh(t *testing.T) {
	rules := DefaultTefilaRules()

	// 29 Tammuz, the day before Rosh Chodesh Av.
	c := diaspora(t, 2024, time.August, 4)
	assert.True(t, rules.TachanunShacharis(c))
	assert.False(t, rules.TachanunMincha(c))

	// 8 Tishrei. Erev Yom Kippur does not cancel the mincha before it.
	c = diaspora(t, 2024, time.October, 10)
	assert.True(t, rules.TachanunShacharis(c))
	assert.True(t, rules.TachanunMincha(c))

	rules.TachanunRecitedMinchaAllYear = false
	assert.False(t, rules.TachanunMincha(c))
}

func TestTachanunSundaysAndFridays(t *testing.T) {
	rules := DefaultTefilaRules()
	sunday := diaspora(t, 2024, time.June, 23)
	friday := diaspora(t, 2024, time.June, 28)

	assert.True(t, rules.TachanunShacharis(sunday))
	assert.True(t, rules.TachanunShacharis(friday))
	assert.False(t, rules.TachanunMincha(friday))

	rules.TachanunRecitedSundays = false
	rules.TachanunRecitedFridays = false
	assert.False(t, rules.TachanunShacharis(sunday))
	assert.False(t, rules.TachanunShacharis(friday))
}

func TestMizmorLesodaErevPesach(t *testing.T) {
	c := diaspora(t, 2024, time.April, 22)

	rules := DefaultTefilaRules()
	assert.False(t, rules.MizmorLesodaRecited(c))

	rules.MizmorLesodaRecitedErevYomKippurAndPesach = true
	assert.True(t, rules.MizmorLesodaRecited(c))
}
