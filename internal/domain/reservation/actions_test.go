//go:build unit

package reservation_test

import (
	"testing"

	"venue-admin/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedActions(t *testing.T) {
	expected := map[reservation.Status][]reservation.Action{
		reservation.StatusBooked:    {reservation.ActionCancel, reservation.ActionMarkAsDone},
		reservation.StatusCancelled: {reservation.ActionRestoreToBooked, reservation.ActionRestoreToPending},
		reservation.StatusCompleted: {reservation.ActionRestoreToBooked},
		reservation.StatusPending:   {reservation.ActionConfirm, reservation.ActionCancel, reservation.ActionMarkAsDone},
		reservation.StatusRequested: {reservation.ActionConfirm, reservation.ActionCancel, reservation.ActionMarkAsDone, reservation.ActionRestoreToBooked},
		reservation.StatusDone:      {reservation.ActionRestoreToBooked},
	}

	for status, actions := range expected {
		t.Run(status.String(), func(t *testing.T) {
			assert.Equal(t, actions, reservation.AllowedActions(status))
		})
	}

	t.Run("unknown status has no actions", func(t *testing.T) {
		assert.Empty(t, reservation.AllowedActions("Archived"))
	})

	t.Run("result is a copy", func(t *testing.T) {
		got := reservation.AllowedActions(reservation.StatusBooked)
		got[0] = reservation.ActionConfirm
		assert.Equal(t, reservation.ActionCancel, reservation.AllowedActions(reservation.StatusBooked)[0])
	})
}

func TestNextStatus(t *testing.T) {
	cases := []struct {
		name   string
		status reservation.Status
		action reservation.Action
		want   reservation.Status
		errIs  error
	}{
		{name: "confirm pending", status: reservation.StatusPending, action: reservation.ActionConfirm, want: reservation.StatusBooked},
		{name: "cancel booked", status: reservation.StatusBooked, action: reservation.ActionCancel, want: reservation.StatusCancelled},
		{name: "mark requested as done", status: reservation.StatusRequested, action: reservation.ActionMarkAsDone, want: reservation.StatusDone},
		{name: "restore cancelled to pending", status: reservation.StatusCancelled, action: reservation.ActionRestoreToPending, want: reservation.StatusPending},
		{name: "restore completed to booked", status: reservation.StatusCompleted, action: reservation.ActionRestoreToBooked, want: reservation.StatusBooked},
		{name: "confirm booked", status: reservation.StatusBooked, action: reservation.ActionConfirm, errIs: reservation.ErrActionNotAllowed},
		{name: "cancel done", status: reservation.StatusDone, action: reservation.ActionCancel, errIs: reservation.ErrActionNotAllowed},
		{name: "unknown status", status: "Archived", action: reservation.ActionCancel, errIs: reservation.ErrInvalidStatus},
		{name: "unknown action", status: reservation.StatusPending, action: "Delete", errIs: reservation.ErrInvalidAction},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := reservation.NextStatus(c.status, c.action)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestParseAction(t *testing.T) {
	a, err := reservation.ParseAction("MarkAsDone")
	require.NoError(t, err)
	assert.Equal(t, reservation.ActionMarkAsDone, a)

	a, err = reservation.ParseAction("Restore to Pending")
	require.NoError(t, err)
	assert.Equal(t, reservation.ActionRestoreToPending, a)
	assert.Equal(t, "Restore to Pending", a.Label())

	_, err = reservation.ParseAction("Archive")
	require.ErrorIs(t, err, reservation.ErrInvalidAction)
}

func TestParseStatus(t *testing.T) {
	s, err := reservation.ParseStatus(" Booked ")
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusBooked, s)

	_, err = reservation.ParseStatus("booked")
	require.ErrorIs(t, err, reservation.ErrInvalidStatus)
}
