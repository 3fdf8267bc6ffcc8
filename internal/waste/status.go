package waste

import (
	"fmt"
	"time"
)

// Vehicle statuses. Operators may move a vehicle between any two of these;
// newly created vehicles default to Idle.
const (
	VehicleActive      = "Active"
	VehicleIdle        = "Idle"
	VehicleMaintenance = "Maintenance"
)

const DefaultVehicleStatus = VehicleIdle

var vehicleStatuses = map[string]bool{
	VehicleActive:      true,
	VehicleIdle:        true,
	VehicleMaintenance: true,
}

// ValidVehicleStatus reports whether s names a vehicle status.
func ValidVehicleStatus(s string) bool {
	return vehicleStatuses[s]
}

// Collection request statuses. Requests only move forward:
// Pending -> In Progress -> Completed, and Completed is terminal.
const (
	RequestPending    = "Pending"
	RequestInProgress = "In Progress"
	RequestCompleted  = "Completed"
)

// StatusChange is the persistence delta for a request transition.
// CompletedAt is non-nil only when the transition enters Completed.
type StatusChange struct {
	Status      string
	CompletedAt *time.Time
}

// TransitionRequest validates a request status transition and returns the
// fields to persist. Entering Completed stamps CompletedAt with now; every
// other legal transition leaves it untouched.
func TransitionRequest(current, next string, now time.Time) (StatusChange, error) {
	switch {
	case current == RequestPending && next == RequestInProgress:
		return StatusChange{Status: RequestInProgress}, nil
	case current == RequestInProgress && next == RequestCompleted:
		return StatusChange{Status: RequestCompleted, CompletedAt: &now}, nil
	}
	return StatusChange{}, fmt.Errorf("invalid status transition from %q to %q", current, next)
}

// NeedsCollection reports whether a dustbin fill level should open a
// collection request.
func NeedsCollection(fillPct, threshold float64) bool {
	return fillPct >= threshold
}
