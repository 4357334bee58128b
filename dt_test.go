package gameclock

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ExampleDateTime_TryAdd() {
	dt, _ := mustDate(2024, 2, 28).AndHms(23, 30, 0)
	hour, _ := DurationFromHours(1)

	next, ok := dt.TryAdd(hour)
	fmt.Println(next, ok)

	_, ok = MaxDateTime.TryAdd(hour)
	fmt.Println(ok)
	// Output:
	// 2024-02-29 00:30:00 true
	// false
}

func TestDateTime_endToEnd(t *testing.T) {
	built, err := MaxDate.AndHms(23, 59, 59)
	require.NoError(t, err)
	assert.Equal(t, MaxDateTime, built)

	_, err = built.Add(mustSeconds(1))
	assert.ErrorIs(t, err, ErrRange)
	_, ok := built.TryAdd(mustSeconds(1))
	assert.False(t, ok)

	min, err := built.Sub(MaxDuration)
	require.NoError(t, err)
	assert.Equal(t, MinDateTime, min)

	min, ok = built.TrySub(MaxDuration)
	require.True(t, ok)
	assert.True(t, min.Eq(MinDateTime))

	max, err := MinDateTime.Add(MaxDuration)
	require.NoError(t, err)
	assert.Equal(t, MaxDateTime, max)

	_, err = MinDateTime.Sub(mustSeconds(1))
	assert.ErrorIs(t, err, ErrRange)
}

func TestDateTime_difference(t *testing.T) {
	span := MaxDateTime.SignedDurationSince(MinDateTime)
	assert.Equal(t, MaxDuration, span)

	dateSpan := MaxDate.SignedDurationSince(MinDate)
	assert.Equal(t, dateSpan.WholeSeconds()+86399, span.WholeSeconds())

	_, err := span.Add(mustSeconds(1))
	assert.ErrorIs(t, err, ErrRange)

	assert.Equal(t, MinDuration, MinDateTime.SignedDurationSince(MaxDateTime))

	a, _ := mustDate(2024, 1, 2).AndHms(1, 0, 0)
	b, _ := mustDate(2024, 1, 1).AndHms(23, 0, 0)
	assert.Equal(t, int64(7200), a.SignedDurationSince(b).WholeSeconds())
	assert.Equal(t, int64(-7200), b.SignedDurationSince(a).WholeSeconds())
}

func TestDateTime_carry(t *testing.T) {
	base, _ := mustDate(2023, 12, 31).AndHms(22, 0, 0)

	for idx, tc := range []struct {
		secs int64
		want string
	}{
		{0, "2023-12-31 22:00:00"},
		{7199, "2023-12-31 23:59:59"},
		{7200, "2024-01-01 00:00:00"},
		{86400*2 + 3600, "2024-01-02 23:00:00"},
		{-79200, "2023-12-31 00:00:00"},
		{-79201, "2023-12-30 23:59:59"},
		{-86400*365 - 1, "2022-12-31 21:59:59"},
	} {
		got, err := base.Add(mustSeconds(tc.secs))
		require.NoError(t, err, "case %d", idx)
		assert.Equal(t, tc.want, got.String(), "case %d", idx)

		// the difference recovers the duration
		assert.Equal(t, tc.secs, got.SignedDurationSince(base).WholeSeconds(), "case %d", idx)
	}

	// time part alone fits, the date does not
	late, _ := MaxDate.AndHms(12, 0, 0)
	_, ok := late.TryAdd(mustSeconds(43200))
	assert.False(t, ok)
	got, ok := late.TryAdd(mustSeconds(43199))
	assert.True(t, ok)
	assert.Equal(t, MaxDateTime, got)

	early, _ := MinDate.AndHms(0, 0, 30)
	_, ok = early.TrySub(mustSeconds(31))
	assert.False(t, ok)
	failed, ok := early.TryAdd(mustSeconds(-31))
	assert.False(t, ok)
	assert.Equal(t, DateTime{}, failed)
}

func TestDateTime_additiveInverse(t *testing.T) {
	a, _ := mustDate(1999, 12, 31).AndHms(23, 59, 59)
	for _, secs := range []int64{1, -1, 86400, 1 << 33, -(1 << 35)} {
		b := mustSeconds(secs)
		nb, _ := b.Neg()

		x, err := a.Sub(nb)
		require.NoError(t, err)
		y, err := a.Add(b)
		require.NoError(t, err)
		assert.Equal(t, y, x)
	}
}

func TestDateTime_accessors(t *testing.T) {
	dt, err := mustDate(-1, 7, 4).AndHms(13, 14, 15)
	require.NoError(t, err)

	assert.Equal(t, int32(-1), dt.Year())
	assert.Equal(t, 7, dt.Month())
	assert.Equal(t, 4, dt.Day())
	assert.Equal(t, 13, dt.Hour())
	assert.Equal(t, 14, dt.Minute())
	assert.Equal(t, 15, dt.Second())
	assert.Equal(t, mustTime(13, 14, 15), dt.Time())
	assert.Equal(t, "-0001-07-04 13:14:15", dt.String())
	assert.Equal(t, "0001-01-01 00:00:00", DateTime{}.String())

	later := mustDate(-1, 7, 4).AndTime(mustTime(13, 14, 16))
	assert.True(t, dt.Lt(later))
	assert.True(t, dt.Le(later))
	assert.True(t, later.Gt(dt))
	assert.True(t, later.Ge(dt))
	assert.True(t, dt.Ne(later))
	assert.Equal(t, -1, dt.Compare(later))
	assert.Equal(t, 1, mustDate(-1, 7, 5).AndTime(MinTime).Compare(later))
}
