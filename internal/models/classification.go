package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WasteClassification is one AI-detected waste sighting. Records are
// append-only: there is no update path once a detection is stored.
type WasteClassification struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	WasteType     string             `bson:"waste_type" json:"wasteType" validate:"required"`
	Location      string             `bson:"location" json:"location" validate:"required"`
	CameraID      string             `bson:"camera_id" json:"cameraId" validate:"required"`
	Confidence    float64            `bson:"confidence" json:"confidence"`
	DetectionTime time.Time          `bson:"detection_time" json:"detectionTime"`
}
