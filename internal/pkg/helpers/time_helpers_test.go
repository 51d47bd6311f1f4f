package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 90*time.Minute, ParseDuration("1h30m", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("not-a-duration", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("", time.Hour))
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-09-09", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.September, 9, 0, 0, 0, 0, time.UTC), date)

	_, err = ParseDate("09/09/2024", time.UTC)
	assert.Error(t, err)

	_, err = ParseDate("", time.UTC)
	assert.Error(t, err)
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		value   string
		minutes int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:15", 8*60 + 15, false},
		{"18:00", 18 * 60, false},
		{"23:59", 23*60 + 59, false},
		{"24:00", 0, true},
		{"8:15", 0, true},
		{"18.00", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		minutes, err := ParseClock(tt.value)
		if tt.wantErr {
			assert.Error(t, err, "value %q", tt.value)
			continue
		}
		require.NoError(t, err, "value %q", tt.value)
		assert.Equal(t, tt.minutes, minutes, "value %q", tt.value)
	}
}

func TestDateIn(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Midnight UTC keeps its calendar day when rebased west of UTC.
	utcMidnight := time.Date(2024, time.September, 9, 0, 0, 0, 0, time.UTC)
	got := DateIn(utcMidnight, loc)
	assert.Equal(t, time.Date(2024, time.September, 9, 0, 0, 0, 0, loc), got)

	got = DateIn(time.Date(2024, time.September, 9, 18, 30, 0, 0, time.UTC), time.UTC)
	assert.Equal(t, utcMidnight, got)
}

func TestAtClock(t *testing.T) {
	date := time.Date(2024, time.September, 11, 14, 45, 12, 0, time.UTC)

	got := AtClock(date, 18*60+30)
	assert.Equal(t, time.Date(2024, time.September, 11, 18, 30, 0, 0, time.UTC), got)

	got = AtClock(date, 0)
	assert.Equal(t, time.Date(2024, time.September, 11, 0, 0, 0, 0, time.UTC), got)
}
