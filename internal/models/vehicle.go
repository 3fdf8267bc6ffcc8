package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Vehicle struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VehicleNumber string             `bson:"vehicle_number" json:"vehicleNumber" validate:"required"`
	DriverName    string             `bson:"driver_name" json:"driverName" validate:"required"`
	VehicleType   string             `bson:"vehicle_type" json:"vehicleType" validate:"required"`
	Status        string             `bson:"status" json:"status"`
	Location      string             `bson:"location" json:"location" validate:"required"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}
