package waste

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionRequest_PendingToInProgress(t *testing.T) {
	now := time.Now()

	change, err := TransitionRequest(RequestPending, RequestInProgress, now)
	require.NoError(t, err)

	assert.Equal(t, RequestInProgress, change.Status)
	assert.Nil(t, change.CompletedAt)
}

func TestTransitionRequest_InProgressToCompleted(t *testing.T) {
	now := time.Now()

	change, err := TransitionRequest(RequestInProgress, RequestCompleted, now)
	require.NoError(t, err)

	assert.Equal(t, RequestCompleted, change.Status)
	require.NotNil(t, change.CompletedAt)
	assert.Equal(t, now, *change.CompletedAt)
}

func TestTransitionRequest_FullLifecycle(t *testing.T) {
	started := time.Now()

	first, err := TransitionRequest(RequestPending, RequestInProgress, started)
	require.NoError(t, err)
	assert.Nil(t, first.CompletedAt)

	finished := started.Add(45 * time.Minute)
	second, err := TransitionRequest(first.Status, RequestCompleted, finished)
	require.NoError(t, err)
	require.NotNil(t, second.CompletedAt)
	assert.Equal(t, finished, *second.CompletedAt)
}

func TestTransitionRequest_RejectsIllegalMoves(t *testing.T) {
	now := time.Now()

	cases := []struct {
		current, next string
	}{
		{RequestPending, RequestCompleted},
		{RequestPending, RequestPending},
		{RequestInProgress, RequestPending},
		{RequestCompleted, RequestPending},
		{RequestCompleted, RequestInProgress},
		{RequestCompleted, RequestCompleted},
		{RequestPending, "Cancelled"},
		{"Cancelled", RequestInProgress},
	}

	for _, tc := range cases {
		_, err := TransitionRequest(tc.current, tc.next, now)
		assert.Error(t, err, "expected %q -> %q to be rejected", tc.current, tc.next)
	}
}

func TestValidVehicleStatus(t *testing.T) {
	assert.True(t, ValidVehicleStatus(VehicleActive))
	assert.True(t, ValidVehicleStatus(VehicleIdle))
	assert.True(t, ValidVehicleStatus(VehicleMaintenance))
	assert.False(t, ValidVehicleStatus("active"))
	assert.False(t, ValidVehicleStatus("Offline"))
	assert.False(t, ValidVehicleStatus(""))
}

func TestDefaultVehicleStatusIsIdle(t *testing.T) {
	assert.Equal(t, VehicleIdle, DefaultVehicleStatus)
}

func TestNeedsCollection(t *testing.T) {
	assert.False(t, NeedsCollection(89.9, 90))
	assert.True(t, NeedsCollection(90, 90))
	assert.True(t, NeedsCollection(100, 90))
	assert.True(t, NeedsCollection(75, 70))
}
