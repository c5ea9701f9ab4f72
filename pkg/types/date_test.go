package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateStringFromString(t *testing.T) {
	d, err := NewDateStringFromString("2026-07-15")
	require.NoError(t, err)
	assert.Equal(t, "2026-07-15", d.String())

	for _, bad := range []string{"", "15-07-2026", "2026/07/15", "2026-13-01", "2026-02-30", "not-a-date"} {
		_, err := NewDateStringFromString(bad)
		assert.ErrorIs(t, err, ErrInvalidDateFormat, "input %q", bad)
	}
}

func TestDateStringTime(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		t.Skip("tzdata not available")
	}

	d := DateString("2026-07-15")
	got, err := d.Time(loc)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 7, 15, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}

func TestDateStringCompare(t *testing.T) {
	a := DateString("2026-07-01")
	b := DateString("2026-07-02")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsAfter(a))
}

func TestDateStringAddDays(t *testing.T) {
	d := DateString("2026-07-30")

	next, err := d.AddDays(2)
	require.NoError(t, err)
	assert.Equal(t, DateString("2026-08-01"), next)

	prev, err := d.AddDays(-30)
	require.NoError(t, err)
	assert.Equal(t, DateString("2026-06-30"), prev)
}

func TestDateStringIsZero(t *testing.T) {
	assert.True(t, DateString("").IsZero())
	assert.False(t, DateString("2026-07-15").IsZero())
}
