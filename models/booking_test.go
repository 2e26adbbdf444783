package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStatus(t *testing.T) {
	cases := []struct {
		from    BookingStatus
		action  BookingAction
		want    BookingStatus
		wantErr bool
	}{
		{StatusPending, ActionApprove, StatusConfirmed, false},
		{StatusPending, ActionDecline, StatusCancelled, false},
		{StatusPending, ActionComplete, "", true},
		{StatusPending, ActionCancel, "", true},
		{StatusConfirmed, ActionComplete, StatusCompleted, false},
		{StatusConfirmed, ActionCancel, StatusCancelled, false},
		{StatusConfirmed, ActionApprove, "", true},
		{StatusConfirmed, ActionDecline, "", true},
		{StatusCompleted, ActionApprove, "", true},
		{StatusCompleted, ActionCancel, "", true},
		{StatusCancelled, ActionApprove, "", true},
		{StatusCancelled, ActionComplete, "", true},
	}

	for _, tc := range cases {
		booking := Booking{Status: tc.from}
		got, err := booking.NextStatus(tc.action)
		if tc.wantErr {
			assert.Error(t, err, "%s via %s", tc.from, tc.action)
			// A failed transition never mutates the booking.
			assert.Equal(t, tc.from, booking.Status)
		} else {
			require.NoError(t, err, "%s via %s", tc.from, tc.action)
			assert.Equal(t, tc.want, got)
		}
	}
}

func TestEndsAt(t *testing.T) {
	booking := Booking{Date: "2025-11-02", Time: "10:00", Duration: 1.5}

	end, err := booking.EndsAt(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 11, 2, 11, 30, 0, 0, time.UTC), end)

	broken := Booking{Date: "not-a-date", Time: "10:00", Duration: 1}
	_, err = broken.EndsAt(time.UTC)
	assert.Error(t, err)
}
