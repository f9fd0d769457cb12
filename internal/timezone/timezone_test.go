package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("Asia/Ho_Chi_Minh"))
	assert.True(t, IsValid("UTC"))

	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Not/AZone"))
}

func TestLocationFallsBack(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("garbage").String())
	assert.Equal(t, "UTC", Location("UTC").String())
}

func TestMidnight(t *testing.T) {
	loc := Location(DefaultTimezone)
	in := time.Date(2026, 9, 1, 17, 42, 13, 999, loc)

	got := Midnight(in)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, loc), got)
}

func TestTodayIsMidnight(t *testing.T) {
	today := Today()
	assert.Zero(t, today.Hour())
	assert.Zero(t, today.Minute())
	assert.Zero(t, today.Second())
}
