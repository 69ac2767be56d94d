package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustClock(t *testing.T, s string) ClockTime {
	t.Helper()
	c, err := ParseClock(s)
	require.NoError(t, err)
	return c
}

func TestParseClock_Valid(t *testing.T) {
	cases := []struct {
		in   string
		want ClockTime
	}{
		{"00:00", 0},
		{"09:30", 570},
		{"23:59", 1439},
		{"7:05", 425},
		{" 12:00 ", 720},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		require.NoError(t, err, "input=%q", tc.in)
		assert.Equal(t, tc.want, got, "input=%q", tc.in)
	}
}

func TestParseClock_Invalid(t *testing.T) {
	for _, in := range []string{"", "12", "1200", "24:00", "12:60", "ab:cd", "12:", ":30", "-1:30"} {
		_, err := ParseClock(in)
		assert.Error(t, err, "input=%q", in)
	}
}

func TestNewClock_Range(t *testing.T) {
	c, err := NewClock(23, 59)
	require.NoError(t, err)
	assert.Equal(t, ClockTime(1439), c)

	_, err = NewClock(24, 0)
	require.Error(t, err)
	_, err = NewClock(-1, 0)
	require.Error(t, err)
	_, err = NewClock(12, 60)
	require.Error(t, err)
}

func TestClockTime_String(t *testing.T) {
	assert.Equal(t, "00:00", ClockTime(0).String())
	assert.Equal(t, "09:05", ClockTime(545).String())
	assert.Equal(t, "23:59", ClockTime(1439).String())
}

func TestClockTime_HourMinute(t *testing.T) {
	c := mustClock(t, "17:45")
	assert.Equal(t, 17, c.Hour())
	assert.Equal(t, 45, c.Minute())
}

func TestClockTime_Valid(t *testing.T) {
	assert.True(t, ClockTime(0).Valid())
	assert.True(t, ClockTime(1439).Valid())
	assert.False(t, ClockTime(1440).Valid())
	assert.False(t, ClockTime(-1).Valid())
}

func TestIntervalMinutes_SameDay(t *testing.T) {
	got, err := IntervalMinutes(mustClock(t, "09:00"), mustClock(t, "17:00"))
	require.NoError(t, err)
	assert.Equal(t, 480, got)
}

func TestIntervalMinutes_OneMinute(t *testing.T) {
	got, err := IntervalMinutes(mustClock(t, "00:00"), mustClock(t, "00:01"))
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestIntervalMinutes_WrapsMidnight(t *testing.T) {
	got, err := IntervalMinutes(mustClock(t, "23:00"), mustClock(t, "01:00"))
	require.NoError(t, err)
	assert.Equal(t, 120, got)
}

func TestIntervalMinutes_NearFullDayWrap(t *testing.T) {
	got, err := IntervalMinutes(mustClock(t, "00:01"), mustClock(t, "00:00"))
	require.NoError(t, err)
	assert.Equal(t, 1439, got, "longest expressible span is one minute short of a day")
}

func TestIntervalMinutes_EqualEndpoints(t *testing.T) {
	_, err := IntervalMinutes(mustClock(t, "09:00"), mustClock(t, "09:00"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}
