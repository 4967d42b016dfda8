package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michemobile/marketplace-api/internal/httperr"
	"github.com/michemobile/marketplace-api/internal/models"
)

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())
}

func TestTransitionTable(t *testing.T) {
	all := []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

	for _, s := range all {
		assert.Equal(t, s == StatusPending, CanConfirm(s) == nil, "confirm from %s", s)
		assert.Equal(t, s == StatusConfirmed, CanComplete(s) == nil, "complete from %s", s)
		assert.Equal(t,
			s == StatusPending || s == StatusConfirmed,
			CanCancel(s) == nil,
			"cancel from %s", s,
		)
	}
}

func TestConfirm(t *testing.T) {
	b := &models.Booking{Status: string(StatusPending)}

	require.NoError(t, Confirm(b))
	assert.Equal(t, string(StatusConfirmed), b.Status)

	err := Confirm(b)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestCompleteStampsTimestamp(t *testing.T) {
	now := time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)

	b := &models.Booking{Status: string(StatusConfirmed)}
	require.NoError(t, Complete(b, now))

	assert.Equal(t, string(StatusCompleted), b.Status)
	require.NotNil(t, b.CompletedAt)
	assert.Equal(t, now, *b.CompletedAt)
}

func TestCompleteRequiresConfirmed(t *testing.T) {
	b := &models.Booking{Status: string(StatusPending)}

	err := Complete(b, time.Now())
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.Nil(t, b.CompletedAt)
}

func TestCancelFromEitherActiveState(t *testing.T) {
	now := time.Now()

	for _, from := range []Status{StatusPending, StatusConfirmed} {
		b := &models.Booking{Status: string(from)}
		require.NoError(t, Cancel(b, now))
		assert.Equal(t, string(StatusCancelled), b.Status)
		assert.NotNil(t, b.CancelledAt)
	}

	for _, from := range []Status{StatusCompleted, StatusCancelled} {
		b := &models.Booking{Status: string(from)}
		err := Cancel(b, now)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"), "cancel from %s", from)
	}
}
