package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CollectionRequest tracks one dustbin pickup through Pending, In Progress
// and Completed. CompletedAt is set exactly when the request completes and
// is never cleared afterwards.
type CollectionRequest struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	DustbinID   primitive.ObjectID  `bson:"dustbin_id" json:"dustbinId"`
	VehicleID   *primitive.ObjectID `bson:"vehicle_id,omitempty" json:"vehicleId,omitempty"`
	Status      string              `bson:"status" json:"status"`
	RequestedAt time.Time           `bson:"requested_at" json:"requestedAt"`
	CompletedAt *time.Time          `bson:"completed_at,omitempty" json:"completedAt,omitempty"`
}

// DustbinRef carries the dustbin fields the request list displays.
type DustbinRef struct {
	DustbinNumber string `bson:"dustbin_number" json:"dustbinNumber"`
	Location      string `bson:"location" json:"location"`
}

// VehicleRef carries the assigned vehicle fields, when a vehicle is assigned.
type VehicleRef struct {
	VehicleNumber string `bson:"vehicle_number" json:"vehicleNumber"`
	DriverName    string `bson:"driver_name" json:"driverName"`
}

// CollectionRequestView is a request joined with its dustbin and optional
// vehicle, as served to the request list.
type CollectionRequestView struct {
	CollectionRequest `bson:",inline"`
	Dustbin           *DustbinRef `bson:"dustbin,omitempty" json:"dustbin,omitempty"`
	Vehicle           *VehicleRef `bson:"vehicle,omitempty" json:"vehicle,omitempty"`
}
