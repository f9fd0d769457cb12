package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allStatuses = []Status{
	StatusPending,
	StatusConfirmed,
	StatusCheckedIn,
	StatusCheckedOut,
	StatusCancelled,
}

func TestCanConfirm(t *testing.T) {
	for _, s := range allStatuses {
		err := CanConfirm(s)
		if s == StatusPending {
			assert.NoError(t, err, "from %s", s)
		} else {
			assert.Error(t, err, "from %s", s)
		}
	}
}

func TestCanCheckIn(t *testing.T) {
	for _, s := range allStatuses {
		err := CanCheckIn(s)
		if s == StatusConfirmed {
			assert.NoError(t, err, "from %s", s)
		} else {
			assert.Error(t, err, "from %s", s)
		}
	}
}

func TestCanCheckOut(t *testing.T) {
	for _, s := range allStatuses {
		err := CanCheckOut(s)
		if s == StatusCheckedIn {
			assert.NoError(t, err, "from %s", s)
		} else {
			assert.Error(t, err, "from %s", s)
		}
	}
}

func TestCanCancel(t *testing.T) {
	assert.NoError(t, CanCancel(StatusPending))
	assert.NoError(t, CanCancel(StatusConfirmed))
	assert.NoError(t, CanCancel(StatusCheckedIn))

	assert.Error(t, CanCancel(StatusCheckedOut))
	assert.Error(t, CanCancel(StatusCancelled))
}

func TestActive(t *testing.T) {
	assert.True(t, Active(StatusPending))
	assert.True(t, Active(StatusConfirmed))
	assert.True(t, Active(StatusCheckedIn))

	assert.False(t, Active(StatusCheckedOut))
	assert.False(t, Active(StatusCancelled))
}
